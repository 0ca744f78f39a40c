package repository

import (
	"context"

	"github.com/oksasatya/tender-marketplace/internal/domain/entity"
)

// TenderRepository lists are ordered by created_at descending.
type TenderRepository interface {
	Create(ctx context.Context, t *entity.Tender) error
	GetByID(ctx context.Context, id string) (*entity.Tender, error)
	ListByCreator(ctx context.Context, creatorID string) ([]entity.Tender, error)
	ListExcludingCreator(ctx context.Context, creatorID string) ([]entity.Tender, error)
	// SearchExcludingCreator matches query case-insensitively against title
	// or description and joins the owner's company_name and industry.
	SearchExcludingCreator(ctx context.Context, creatorID, query string) ([]entity.Tender, error)
}
