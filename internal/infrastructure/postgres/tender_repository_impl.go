package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/tender-marketplace/internal/domain/entity"
	"github.com/oksasatya/tender-marketplace/internal/domain/repository"
)

const tenderColumns = `t.id, t.creator_id, t.title, t.description, t.budget, t.deadline, t.created_at`

type TenderRepository struct {
	db DBTX
}

func NewTenderRepository(db DBTX) *TenderRepository {
	return &TenderRepository{db: db}
}

func (r *TenderRepository) Create(ctx context.Context, t *entity.Tender) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO tenders (creator_id, title, description, budget, deadline)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, t.CreatorID, t.Title, t.Description, t.Budget, t.Deadline)

	return translate(row.Scan(&t.ID, &t.CreatedAt))
}

func (r *TenderRepository) GetByID(ctx context.Context, id string) (*entity.Tender, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	t := &entity.Tender{}
	row := r.db.QueryRow(ctx, `SELECT `+tenderColumns+` FROM tenders t WHERE t.id = $1`, id)
	if err := row.Scan(&t.ID, &t.CreatorID, &t.Title, &t.Description, &t.Budget, &t.Deadline, &t.CreatedAt); err != nil {
		return nil, translate(err)
	}
	return t, nil
}

func (r *TenderRepository) ListByCreator(ctx context.Context, creatorID string) ([]entity.Tender, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+tenderColumns+`
		FROM tenders t
		WHERE t.creator_id = $1
		ORDER BY t.created_at DESC
	`, creatorID)
	if err != nil {
		return nil, err
	}
	return collectTenders(rows, false)
}

func (r *TenderRepository) ListExcludingCreator(ctx context.Context, creatorID string) ([]entity.Tender, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+tenderColumns+`
		FROM tenders t
		WHERE t.creator_id <> $1
		ORDER BY t.created_at DESC
	`, creatorID)
	if err != nil {
		return nil, err
	}
	return collectTenders(rows, false)
}

func (r *TenderRepository) SearchExcludingCreator(ctx context.Context, creatorID, query string) ([]entity.Tender, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+tenderColumns+`, COALESCE(u.company_name, ''), COALESCE(u.industry, '')
		FROM tenders t
		LEFT JOIN users u ON u.id = t.creator_id
		WHERE t.creator_id <> $1 AND (t.title ILIKE $2 OR t.description ILIKE $2)
		ORDER BY t.created_at DESC
	`, creatorID, containsPattern(query))
	if err != nil {
		return nil, err
	}
	return collectTenders(rows, true)
}

func collectTenders(rows pgx.Rows, withOwner bool) ([]entity.Tender, error) {
	defer rows.Close()
	tenders := []entity.Tender{}
	for rows.Next() {
		var t entity.Tender
		dest := []any{&t.ID, &t.CreatorID, &t.Title, &t.Description, &t.Budget, &t.Deadline, &t.CreatedAt}
		if withOwner {
			dest = append(dest, &t.OwnerCompanyName, &t.OwnerIndustry)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		tenders = append(tenders, t)
	}
	return tenders, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching q literally anywhere.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

var _ repository.TenderRepository = (*TenderRepository)(nil)
