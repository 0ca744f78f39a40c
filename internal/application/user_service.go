package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/tender-marketplace/internal/domain/entity"
	repo "github.com/oksasatya/tender-marketplace/internal/domain/repository"
	"github.com/oksasatya/tender-marketplace/pkg/helpers"
)

// ObjectStore persists uploaded files and returns their public URL.
type ObjectStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateAccessToken(userID, email string) (string, time.Time, error)
}

type UserService struct {
	Repo    repo.UserRepository
	JWT     TokenIssuer
	Storage ObjectStore
	Logger  *logrus.Logger

	now func() time.Time
}

func NewUserService(repo repo.UserRepository, jwt TokenIssuer, storage ObjectStore, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Storage: storage, Logger: logger, now: time.Now}
}

type LogoFile struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type SignupInput struct {
	Name                string
	Email               string
	Password            string
	CompanyName         string
	Industry            string
	IndustryDescription string
	Logo                *LogoFile
}

func (in SignupInput) complete() bool {
	for _, v := range []string{in.Name, in.Email, in.Password, in.CompanyName, in.Industry, in.IndustryDescription} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// Signup creates a user, uploading the optional logo first.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	if !in.complete() {
		return nil, ErrValidation
	}

	existing, err := s.Repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil && existing != nil:
		return nil, ErrEmailTaken
	case err != nil && !errors.Is(err, repo.ErrNotFound):
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}

	logoURL := ""
	if in.Logo != nil && in.Logo.Body != nil {
		logoURL, err = s.uploadLogo(ctx, in.Logo)
		if err != nil {
			helpers.LogError(s.Logger, "logo upload failed", err, logrus.Fields{"email": in.Email})
			return nil, fmt.Errorf("upload logo: %w", err)
		}
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		Email:               in.Email,
		Password:            hash,
		Name:                in.Name,
		CompanyName:         in.CompanyName,
		Industry:            in.Industry,
		IndustryDescription: in.IndustryDescription,
		LogoURL:             logoURL,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	helpers.LogInfo(s.Logger, "user signed up", logrus.Fields{"user_id": u.ID})
	return u, nil
}

// logoObjectPath is time-prefixed with a random suffix so concurrent uploads never collide.
func (s *UserService) logoObjectPath(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("logos/%d-%s%s", s.now().UnixNano(), uuid.NewString(), ext)
}

func (s *UserService) uploadLogo(ctx context.Context, logo *LogoFile) (string, error) {
	if s.Storage == nil {
		return "", errors.New("object storage not configured")
	}
	contentType := logo.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.Storage.Upload(ctx, s.logoObjectPath(logo.Filename), contentType, logo.Body)
}

// dummyHash keeps unknown-email logins as slow as wrong-password ones.
var dummyHash = sync.OnceValue(func() string {
	h, _ := helpers.HashPassword("tender-marketplace-dummy")
	return h
})

// Login never reveals whether the email or the password was wrong.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			helpers.CompareHashAndPassword(dummyHash(), password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		helpers.LogError(s.Logger, "generate access token failed", err, logrus.Fields{"user_id": u.ID})
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
