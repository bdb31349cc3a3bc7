package router_test

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/recipe-api/internal/domain"
	"github.com/pkordes/recipe-api/internal/repo"
)

// memStore is an in-memory stand-in for the Postgres repos, implementing the
// same contracts (owner scoping, name-descending order, unique email) so the
// full HTTP stack can be exercised without a database.
type memStore struct {
	mu        sync.Mutex
	users     map[uuid.UUID]domain.User
	tags      []domain.Tag
	tagReads  int
	tagWrites int
}

func newMemStore() *memStore {
	return &memStore{users: map[uuid.UUID]domain.User{}}
}

// memTags adapts memStore to repo.TagRepo.
type memTags struct{ *memStore }

// memUsers adapts memStore to repo.UserRepo.
type memUsers struct{ *memStore }

var (
	_ repo.TagRepo  = memTags{}
	_ repo.UserRepo = memUsers{}
)

func (s memTags) Create(_ context.Context, userID uuid.UUID, name string) (domain.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tagWrites++
	if _, ok := s.users[userID]; !ok {
		return domain.Tag{}, domain.ErrNotFound
	}
	t := domain.Tag{ID: uuid.New(), UserID: userID, Name: name, CreatedAt: time.Now()}
	s.tags = append(s.tags, t)
	return t, nil
}

func (s memTags) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tagReads++
	out := []domain.Tag{}
	for _, t := range s.tags {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b domain.Tag) int {
		if c := cmp.Compare(b.Name, a.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

func (s memTags) Exists(_ context.Context, userID uuid.UUID, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tags {
		if t.UserID == userID && t.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s memUsers) Create(_ context.Context, u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return domain.User{}, domain.ErrConflict
		}
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	s.users[u.ID] = u
	return u, nil
}

func (s memUsers) GetByID(_ context.Context, id uuid.UUID) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (s memUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}
