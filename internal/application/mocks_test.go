package application

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/tender-marketplace/internal/domain/entity"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type MockTenderRepository struct {
	mock.Mock
}

func (m *MockTenderRepository) Create(ctx context.Context, t *entity.Tender) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTenderRepository) GetByID(ctx context.Context, id string) (*entity.Tender, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tender), args.Error(1)
}

func (m *MockTenderRepository) ListByCreator(ctx context.Context, creatorID string) ([]entity.Tender, error) {
	args := m.Called(ctx, creatorID)
	return args.Get(0).([]entity.Tender), args.Error(1)
}

func (m *MockTenderRepository) ListExcludingCreator(ctx context.Context, creatorID string) ([]entity.Tender, error) {
	args := m.Called(ctx, creatorID)
	return args.Get(0).([]entity.Tender), args.Error(1)
}

func (m *MockTenderRepository) SearchExcludingCreator(ctx context.Context, creatorID, query string) ([]entity.Tender, error) {
	args := m.Called(ctx, creatorID, query)
	return args.Get(0).([]entity.Tender), args.Error(1)
}

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, a *entity.Application) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id string) (*entity.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Application), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id string, status entity.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockApplicationRepository) ListByTender(ctx context.Context, tenderID string) ([]entity.Application, error) {
	args := m.Called(ctx, tenderID)
	return args.Get(0).([]entity.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByTenders(ctx context.Context, tenderIDs []string) ([]entity.Application, error) {
	args := m.Called(ctx, tenderIDs)
	return args.Get(0).([]entity.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]entity.Application, error) {
	args := m.Called(ctx, applicantID)
	return args.Get(0).([]entity.Application), args.Error(1)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, objectPath, contentType, r)
	return args.String(0), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateAccessToken(userID, email string) (string, time.Time, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
