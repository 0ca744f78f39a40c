package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/oksasatya/tender-marketplace/internal/domain/entity"
	"github.com/oksasatya/tender-marketplace/internal/domain/repository"
)

const (
	userA   = "7f8a2a0e-4b7b-4c1e-9a55-0d2f3c1b9a01"
	userB   = "7f8a2a0e-4b7b-4c1e-9a55-0d2f3c1b9a02"
	tender1 = "2c1d9e44-1f0a-4d3b-8a6e-5b7c8d9e0f11"
	app1    = "9a0b1c2d-3e4f-4a5b-8c6d-7e8f9a0b1c21"
)

type RepositorySuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	users   *UserRepository
	tenders *TenderRepository
	apps    *ApplicationRepository
	ctx     context.Context
	now     time.Time
}

func (s *RepositorySuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	require.NoError(s.T(), err)
	s.mock = mock
	s.users = NewUserRepository(mock)
	s.tenders = NewTenderRepository(mock)
	s.apps = NewApplicationRepository(mock)
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RepositorySuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
	s.mock.Close()
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) TestUserCreate_Success() {
	u := &entity.User{Email: "a@example.com", Password: "hash", Name: "Ann", CompanyName: "Acme",
		Industry: "Construction", IndustryDescription: "Roofing"}

	s.mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(u.Email, u.Password, u.Name, u.CompanyName, u.Industry, u.IndustryDescription, "").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(userA, s.now))

	require.NoError(s.T(), s.users.Create(s.ctx, u))
	assert.Equal(s.T(), userA, u.ID)
	assert.Equal(s.T(), s.now, u.CreatedAt)
}

func (s *RepositorySuite) TestUserCreate_DuplicateEmail() {
	u := &entity.User{Email: "a@example.com"}
	s.mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := s.users.Create(s.ctx, u)
	assert.ErrorIs(s.T(), err, repository.ErrDuplicate)
}

func (s *RepositorySuite) TestUserGetByEmail_NotFound() {
	s.mock.ExpectQuery(`FROM users WHERE email = \$1`).
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	u, err := s.users.GetByEmail(s.ctx, "ghost@example.com")
	assert.Nil(s.T(), u)
	assert.ErrorIs(s.T(), err, repository.ErrNotFound)
}

func (s *RepositorySuite) TestUserGetByID_InvalidIDSkipsQuery() {
	u, err := s.users.GetByID(s.ctx, "not-a-uuid")
	assert.Nil(s.T(), u)
	assert.ErrorIs(s.T(), err, repository.ErrNotFound)
}

func (s *RepositorySuite) TestUserGetByID_Success() {
	s.mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(userA).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "name", "company_name",
			"industry", "industry_description", "logo", "created_at"}).
			AddRow(userA, "a@example.com", "hash", "Ann", "Acme", "Construction", "Roofing", "https://logo", s.now))

	u, err := s.users.GetByID(s.ctx, userA)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Acme", u.CompanyName)
	assert.Equal(s.T(), "https://logo", u.LogoURL)
}

func tenderRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "creator_id", "title", "description", "budget", "deadline", "created_at"})
}

func (s *RepositorySuite) TestTenderCreate_Success() {
	deadline := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	t := &entity.Tender{CreatorID: userA, Title: "Roof repair", Description: "Replace tiles", Budget: 1500, Deadline: deadline}

	s.mock.ExpectQuery(`INSERT INTO tenders`).
		WithArgs(userA, "Roof repair", "Replace tiles", 1500.0, deadline).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(tender1, s.now))

	require.NoError(s.T(), s.tenders.Create(s.ctx, t))
	assert.Equal(s.T(), tender1, t.ID)
}

func (s *RepositorySuite) TestTenderListByCreator_FiltersAndOrders() {
	s.mock.ExpectQuery(`WHERE t.creator_id = \$1\s+ORDER BY t.created_at DESC`).
		WithArgs(userA).
		WillReturnRows(tenderRows().
			AddRow(tender1, userA, "Newest", "d", 10.0, s.now, s.now).
			AddRow("2c1d9e44-1f0a-4d3b-8a6e-5b7c8d9e0f12", userA, "Older", "d", 20.0, s.now, s.now.Add(-time.Hour)))

	tenders, err := s.tenders.ListByCreator(s.ctx, userA)
	require.NoError(s.T(), err)
	require.Len(s.T(), tenders, 2)
	assert.Equal(s.T(), "Newest", tenders[0].Title)
}

func (s *RepositorySuite) TestTenderListExcludingCreator_Empty() {
	s.mock.ExpectQuery(`WHERE t.creator_id <> \$1`).
		WithArgs(userA).
		WillReturnRows(tenderRows())

	tenders, err := s.tenders.ListExcludingCreator(s.ctx, userA)
	require.NoError(s.T(), err)
	assert.NotNil(s.T(), tenders)
	assert.Empty(s.T(), tenders)
}

func (s *RepositorySuite) TestTenderSearch_EscapesPatternAndJoinsOwner() {
	s.mock.ExpectQuery(`LEFT JOIN users u ON u.id = t.creator_id`).
		WithArgs(userA, `%50\%\_off%`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "creator_id", "title", "description", "budget", "deadline",
			"created_at", "company_name", "industry"}).
			AddRow(tender1, userB, "50%_off roofing", "d", 10.0, s.now, s.now, "Acme", "Construction"))

	tenders, err := s.tenders.SearchExcludingCreator(s.ctx, userA, "50%_off")
	require.NoError(s.T(), err)
	require.Len(s.T(), tenders, 1)
	assert.Equal(s.T(), "Acme", tenders[0].OwnerCompanyName)
	assert.Equal(s.T(), "Construction", tenders[0].OwnerIndustry)
}

func (s *RepositorySuite) TestTenderGetByID_NotFound() {
	s.mock.ExpectQuery(`FROM tenders t WHERE t.id = \$1`).
		WithArgs(tender1).
		WillReturnError(pgx.ErrNoRows)

	_, err := s.tenders.GetByID(s.ctx, tender1)
	assert.ErrorIs(s.T(), err, repository.ErrNotFound)
}

func (s *RepositorySuite) TestApplicationCreate_DefaultsToPending() {
	a := &entity.Application{TenderID: tender1, ApplicantID: userB, ProposalText: "P1"}
	s.mock.ExpectQuery(`INSERT INTO applications`).
		WithArgs(tender1, userB, "P1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "status", "created_at"}).AddRow(app1, entity.StatusPending, s.now))

	require.NoError(s.T(), s.apps.Create(s.ctx, a))
	assert.Equal(s.T(), app1, a.ID)
	assert.Equal(s.T(), entity.StatusPending, a.Status)
}

func (s *RepositorySuite) TestApplicationCreate_UnknownTender() {
	a := &entity.Application{TenderID: tender1, ApplicantID: userB, ProposalText: "P1"}
	s.mock.ExpectQuery(`INSERT INTO applications`).
		WithArgs(tender1, userB, "P1").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	assert.ErrorIs(s.T(), s.apps.Create(s.ctx, a), repository.ErrNotFound)
}

func (s *RepositorySuite) TestApplicationUpdateStatus() {
	s.mock.ExpectExec(`UPDATE applications SET status = \$1 WHERE id = \$2`).
		WithArgs("accepted", app1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(s.T(), s.apps.UpdateStatus(s.ctx, app1, entity.StatusAccepted))
}

func (s *RepositorySuite) TestApplicationUpdateStatus_NoRows() {
	s.mock.ExpectExec(`UPDATE applications`).
		WithArgs("rejected", app1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(s.T(), s.apps.UpdateStatus(s.ctx, app1, entity.StatusRejected), repository.ErrNotFound)
}

func (s *RepositorySuite) TestApplicationListByTenders_EmptyInput() {
	apps, err := s.apps.ListByTenders(s.ctx, nil)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), apps)
}

func (s *RepositorySuite) TestApplicationListByApplicant_JoinsTender() {
	deadline := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	s.mock.ExpectQuery(`JOIN tenders t ON t.id = a.tender_id`).
		WithArgs(userB).
		WillReturnRows(pgxmock.NewRows([]string{"id", "tender_id", "applicant_id", "proposal_text", "status",
			"created_at", "title", "deadline"}).
			AddRow(app1, tender1, userB, "P1", entity.StatusAccepted, s.now, "Roof repair", deadline))

	apps, err := s.apps.ListByApplicant(s.ctx, userB)
	require.NoError(s.T(), err)
	require.Len(s.T(), apps, 1)
	assert.Equal(s.T(), "Roof repair", apps[0].TenderTitle)
	assert.Equal(s.T(), deadline, apps[0].TenderDeadline)
}

func (s *RepositorySuite) TestApplicationListByTender_QueryError() {
	s.mock.ExpectQuery(`WHERE a.tender_id = \$1`).
		WithArgs(tender1).
		WillReturnError(errors.New("connection reset"))

	_, err := s.apps.ListByTender(s.ctx, tender1)
	assert.EqualError(s.T(), err, "connection reset")
}
