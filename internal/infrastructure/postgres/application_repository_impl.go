package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/tender-marketplace/internal/domain/entity"
	"github.com/oksasatya/tender-marketplace/internal/domain/repository"
)

const applicationColumns = `a.id, a.tender_id, a.applicant_id, a.proposal_text, a.status, a.created_at`

type ApplicationRepository struct {
	db DBTX
}

func NewApplicationRepository(db DBTX) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *entity.Application) error {
	if _, err := uuid.Parse(a.TenderID); err != nil {
		return repository.ErrNotFound
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO applications (tender_id, applicant_id, proposal_text)
		VALUES ($1, $2, $3)
		RETURNING id, status, created_at
	`, a.TenderID, a.ApplicantID, a.ProposalText)

	return translate(row.Scan(&a.ID, &a.Status, &a.CreatedAt))
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*entity.Application, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	a := &entity.Application{}
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications a WHERE a.id = $1`, id)
	if err := row.Scan(&a.ID, &a.TenderID, &a.ApplicantID, &a.ProposalText, &a.Status, &a.CreatedAt); err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status entity.ApplicationStatus) error {
	res, err := r.db.Exec(ctx, `UPDATE applications SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) ListByTender(ctx context.Context, tenderID string) ([]entity.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+applicationColumns+`
		FROM applications a
		WHERE a.tender_id = $1
		ORDER BY a.created_at DESC
	`, tenderID)
	if err != nil {
		return nil, err
	}
	return collectApplications(rows, false)
}

func (r *ApplicationRepository) ListByTenders(ctx context.Context, tenderIDs []string) ([]entity.Application, error) {
	if len(tenderIDs) == 0 {
		return []entity.Application{}, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+applicationColumns+`
		FROM applications a
		WHERE a.tender_id = ANY($1::uuid[])
		ORDER BY a.created_at DESC
	`, tenderIDs)
	if err != nil {
		return nil, err
	}
	return collectApplications(rows, false)
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]entity.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+applicationColumns+`, t.title, t.deadline
		FROM applications a
		JOIN tenders t ON t.id = a.tender_id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC
	`, applicantID)
	if err != nil {
		return nil, err
	}
	return collectApplications(rows, true)
}

func collectApplications(rows pgx.Rows, withTender bool) ([]entity.Application, error) {
	defer rows.Close()
	apps := []entity.Application{}
	for rows.Next() {
		var a entity.Application
		dest := []any{&a.ID, &a.TenderID, &a.ApplicantID, &a.ProposalText, &a.Status, &a.CreatedAt}
		if withTender {
			dest = append(dest, &a.TenderTitle, &a.TenderDeadline)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

var _ repository.ApplicationRepository = (*ApplicationRepository)(nil)
