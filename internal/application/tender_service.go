package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/tender-marketplace/internal/domain/entity"
	repo "github.com/oksasatya/tender-marketplace/internal/domain/repository"
	"github.com/oksasatya/tender-marketplace/pkg/helpers"
)

// TenderService covers tenders and the applications submitted against them.
// Every read or write of another user's data goes through authorizeOwner.
type TenderService struct {
	Tenders      repo.TenderRepository
	Applications repo.ApplicationRepository
	Logger       *logrus.Logger
}

func NewTenderService(tenders repo.TenderRepository, applications repo.ApplicationRepository, logger *logrus.Logger) *TenderService {
	return &TenderService{Tenders: tenders, Applications: applications, Logger: logger}
}

type CreateTenderInput struct {
	Title       string
	Description string
	Budget      float64
	Deadline    time.Time
}

func (s *TenderService) CreateTender(ctx context.Context, callerID string, in CreateTenderInput) (*entity.Tender, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" || in.Deadline.IsZero() {
		return nil, ErrValidation
	}
	t := &entity.Tender{
		CreatorID:   callerID,
		Title:       in.Title,
		Description: in.Description,
		Budget:      in.Budget,
		Deadline:    in.Deadline,
	}
	if err := s.Tenders.Create(ctx, t); err != nil {
		return nil, s.storeErr("create tender", err, callerID)
	}
	return t, nil
}

func (s *TenderService) ListMine(ctx context.Context, callerID string) ([]entity.Tender, error) {
	tenders, err := s.Tenders.ListByCreator(ctx, callerID)
	if err != nil {
		return nil, s.storeErr("list own tenders", err, callerID)
	}
	return tenders, nil
}

func (s *TenderService) ListOthers(ctx context.Context, callerID string) ([]entity.Tender, error) {
	tenders, err := s.Tenders.ListExcludingCreator(ctx, callerID)
	if err != nil {
		return nil, s.storeErr("list other tenders", err, callerID)
	}
	return tenders, nil
}

// Apply submits a proposal. Tender owners are not prevented from applying
// to their own tenders.
func (s *TenderService) Apply(ctx context.Context, callerID, tenderID, proposal string) (*entity.Application, error) {
	if strings.TrimSpace(proposal) == "" {
		return nil, ErrValidation
	}
	a := &entity.Application{
		TenderID:     tenderID,
		ApplicantID:  callerID,
		ProposalText: proposal,
	}
	if err := s.Applications.Create(ctx, a); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTenderNotFound
		}
		return nil, s.storeErr("create application", err, callerID)
	}
	return a, nil
}

func (s *TenderService) ListApplications(ctx context.Context, callerID, tenderID string) ([]entity.Application, error) {
	if _, err := s.ownedTender(ctx, callerID, tenderID); err != nil {
		return nil, err
	}
	apps, err := s.Applications.ListByTender(ctx, tenderID)
	if err != nil {
		return nil, s.storeErr("list tender applications", err, callerID)
	}
	return apps, nil
}

// UpdateApplicationStatus lets the tender owner accept or reject an
// application. Already decided applications may be decided again.
func (s *TenderService) UpdateApplicationStatus(ctx context.Context, callerID, applicationID, status string) (*entity.Application, error) {
	next := entity.ApplicationStatus(status)
	if !next.IsDecision() {
		return nil, ErrInvalidStatus
	}
	app, err := s.Applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, s.storeErr("get application", err, callerID)
	}
	if _, err := s.ownedTender(ctx, callerID, app.TenderID); err != nil {
		return nil, err
	}
	if err := s.Applications.UpdateStatus(ctx, app.ID, next); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, s.storeErr("update application status", err, callerID)
	}
	app.Status = next
	helpers.LogInfo(s.Logger, "application decided", logrus.Fields{
		"application_id": app.ID, "tender_id": app.TenderID, "status": next,
	})
	return app, nil
}

func (s *TenderService) ListMyApplications(ctx context.Context, callerID string) ([]entity.Application, error) {
	apps, err := s.Applications.ListByApplicant(ctx, callerID)
	if err != nil {
		return nil, s.storeErr("list own applications", err, callerID)
	}
	return apps, nil
}

// ListMineWithApplications nests each tender's applications, newest first.
func (s *TenderService) ListMineWithApplications(ctx context.Context, callerID string) ([]entity.Tender, error) {
	tenders, err := s.ListMine(ctx, callerID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(tenders))
	for _, t := range tenders {
		ids = append(ids, t.ID)
	}
	apps, err := s.Applications.ListByTenders(ctx, ids)
	if err != nil {
		return nil, s.storeErr("list applications for own tenders", err, callerID)
	}
	byTender := make(map[string][]entity.Application, len(tenders))
	for _, a := range apps {
		byTender[a.TenderID] = append(byTender[a.TenderID], a)
	}
	for i := range tenders {
		tenders[i].Applications = byTender[tenders[i].ID]
		if tenders[i].Applications == nil {
			tenders[i].Applications = []entity.Application{}
		}
	}
	return tenders, nil
}

// Search returns other users' tenders matching q. The store narrows by
// title/description; the result is then re-checked here, where the owner's
// industry and company name also count as matches.
func (s *TenderService) Search(ctx context.Context, callerID, q string) ([]entity.Tender, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, ErrEmptyQuery
	}
	candidates, err := s.Tenders.SearchExcludingCreator(ctx, callerID, q)
	if err != nil {
		return nil, s.storeErr("search tenders", err, callerID)
	}
	needle := strings.ToLower(q)
	out := make([]entity.Tender, 0, len(candidates))
	for _, t := range candidates {
		if matchesQuery(t, needle) {
			out = append(out, t)
		}
	}
	return out, nil
}

func matchesQuery(t entity.Tender, needle string) bool {
	for _, field := range []string{t.Title, t.Description, t.OwnerIndustry, t.OwnerCompanyName} {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (s *TenderService) ownedTender(ctx context.Context, callerID, tenderID string) (*entity.Tender, error) {
	t, err := authorizeOwner(ctx, callerID, func(ctx context.Context) (*entity.Tender, error) {
		return s.Tenders.GetByID(ctx, tenderID)
	})
	if err != nil && !errors.Is(err, ErrAccessDenied) {
		return nil, s.storeErr("get tender", err, callerID)
	}
	return t, err
}

func (s *TenderService) storeErr(op string, err error, callerID string) error {
	helpers.LogError(s.Logger, op+" failed", err, logrus.Fields{"user_id": callerID})
	return fmt.Errorf("%s: %w", op, err)
}
