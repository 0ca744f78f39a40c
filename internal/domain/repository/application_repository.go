package repository

import (
	"context"

	"github.com/oksasatya/tender-marketplace/internal/domain/entity"
)

// ApplicationRepository lists are ordered by created_at descending.
type ApplicationRepository interface {
	Create(ctx context.Context, a *entity.Application) error
	GetByID(ctx context.Context, id string) (*entity.Application, error)
	UpdateStatus(ctx context.Context, id string, status entity.ApplicationStatus) error
	ListByTender(ctx context.Context, tenderID string) ([]entity.Application, error)
	ListByTenders(ctx context.Context, tenderIDs []string) ([]entity.Application, error)
	// ListByApplicant joins each application's tender title and deadline.
	ListByApplicant(ctx context.Context, applicantID string) ([]entity.Application, error)
}
