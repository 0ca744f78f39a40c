// Package memory provides map-backed repositories for local runs and tests.
// It mirrors the postgres repositories: foreign keys are enforced, emails are
// unique and listings come back newest first.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/tender-marketplace/internal/domain/entity"
	repo "github.com/oksasatya/tender-marketplace/internal/domain/repository"
)

type Store struct {
	mu           sync.RWMutex
	users        []entity.User
	tenders      []entity.Tender
	applications []entity.Application

	now func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

func (s *Store) Users() repo.UserRepository               { return userRepo{s} }
func (s *Store) Tenders() repo.TenderRepository           { return tenderRepo{s} }
func (s *Store) Applications() repo.ApplicationRepository { return applicationRepo{s} }

func (s *Store) userIndex(id string) int {
	return slices.IndexFunc(s.users, func(u entity.User) bool { return u.ID == id })
}

func (s *Store) tenderIndex(id string) int {
	return slices.IndexFunc(s.tenders, func(t entity.Tender) bool { return t.ID == id })
}

// newestFirst walks items in reverse insertion order, which is created_at desc.
func newestFirst[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for i := len(items) - 1; i >= 0; i-- {
		if keep(items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = r.s.now()
	r.s.users = append(r.s.users, *u)
	return nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.s.userIndex(id)
	if i < 0 {
		return nil, repo.ErrNotFound
	}
	u := r.s.users[i]
	return &u, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repo.ErrNotFound
}

type tenderRepo struct{ s *Store }

func (r tenderRepo) Create(_ context.Context, t *entity.Tender) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.userIndex(t.CreatorID) < 0 {
		return repo.ErrNotFound
	}
	t.ID = uuid.NewString()
	t.CreatedAt = r.s.now()
	r.s.tenders = append(r.s.tenders, *t)
	return nil
}

func (r tenderRepo) GetByID(_ context.Context, id string) (*entity.Tender, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.s.tenderIndex(id)
	if i < 0 {
		return nil, repo.ErrNotFound
	}
	t := r.s.tenders[i]
	return &t, nil
}

func (r tenderRepo) ListByCreator(_ context.Context, creatorID string) ([]entity.Tender, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return newestFirst(r.s.tenders, func(t entity.Tender) bool { return t.CreatorID == creatorID }), nil
}

func (r tenderRepo) ListExcludingCreator(_ context.Context, creatorID string) ([]entity.Tender, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return newestFirst(r.s.tenders, func(t entity.Tender) bool { return t.CreatorID != creatorID }), nil
}

func (r tenderRepo) SearchExcludingCreator(_ context.Context, creatorID, query string) ([]entity.Tender, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	needle := strings.ToLower(query)
	out := newestFirst(r.s.tenders, func(t entity.Tender) bool {
		return t.CreatorID != creatorID &&
			(strings.Contains(strings.ToLower(t.Title), needle) || strings.Contains(strings.ToLower(t.Description), needle))
	})
	for i := range out {
		if u := r.s.userIndex(out[i].CreatorID); u >= 0 {
			out[i].OwnerCompanyName = r.s.users[u].CompanyName
			out[i].OwnerIndustry = r.s.users[u].Industry
		}
	}
	return out, nil
}

type applicationRepo struct{ s *Store }

func (r applicationRepo) Create(_ context.Context, a *entity.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.tenderIndex(a.TenderID) < 0 || r.s.userIndex(a.ApplicantID) < 0 {
		return repo.ErrNotFound
	}
	a.ID = uuid.NewString()
	a.Status = entity.StatusPending
	a.CreatedAt = r.s.now()
	r.s.applications = append(r.s.applications, *a)
	return nil
}

func (r applicationRepo) GetByID(_ context.Context, id string) (*entity.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.applications {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r applicationRepo) UpdateStatus(_ context.Context, id string, status entity.ApplicationStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.applications {
		if r.s.applications[i].ID == id {
			r.s.applications[i].Status = status
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r applicationRepo) ListByTender(_ context.Context, tenderID string) ([]entity.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return newestFirst(r.s.applications, func(a entity.Application) bool { return a.TenderID == tenderID }), nil
}

func (r applicationRepo) ListByTenders(_ context.Context, tenderIDs []string) ([]entity.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return newestFirst(r.s.applications, func(a entity.Application) bool {
		return slices.Contains(tenderIDs, a.TenderID)
	}), nil
}

func (r applicationRepo) ListByApplicant(_ context.Context, applicantID string) ([]entity.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := newestFirst(r.s.applications, func(a entity.Application) bool { return a.ApplicantID == applicantID })
	for i := range out {
		if t := r.s.tenderIndex(out[i].TenderID); t >= 0 {
			out[i].TenderTitle = r.s.tenders[t].Title
			out[i].TenderDeadline = r.s.tenders[t].Deadline
		}
	}
	return out, nil
}
