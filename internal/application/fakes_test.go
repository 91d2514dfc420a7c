package application

import (
	"context"
	"sync"
	"time"

	"github.com/stakeflow/stakeflow/internal/domain/entity"
	repo "github.com/stakeflow/stakeflow/internal/domain/repository"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	r.seq++
	u.ID = r.seq
	u.CreatedAt = time.Now().UTC()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	for id, existing := range r.users {
		if id != u.ID && existing.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type fakeStakeRepo struct {
	mu     sync.Mutex
	seq    int64
	stakes map[int64]*entity.Stake
	pools  map[int64]entity.Pool
}

func newFakeStakeRepo() *fakeStakeRepo {
	return &fakeStakeRepo{
		stakes: make(map[int64]*entity.Stake),
		pools:  make(map[int64]entity.Pool),
	}
}

func (r *fakeStakeRepo) addPool(p entity.Pool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pools[p.ID] = p
}

func (r *fakeStakeRepo) Create(_ context.Context, s *entity.Stake) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	s.ID = r.seq
	if s.StakedAt.IsZero() {
		s.StakedAt = time.Now().UTC()
	}
	if s.Status == "" {
		s.Status = entity.StakeActive
	}
	cp := *s
	r.stakes[s.ID] = &cp
	return nil
}

func (r *fakeStakeRepo) ListByUser(_ context.Context, userID int64) ([]entity.StakeWithPool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.StakeWithPool, 0)
	for _, s := range r.stakes {
		if s.UserID != userID {
			continue
		}
		p := r.pools[s.PoolID]
		out = append(out, entity.StakeWithPool{
			Stake:         *s,
			PoolName:      p.Name,
			APYPercentage: p.APYPercentage,
			MinLockPeriod: p.MinLockPeriod,
		})
	}
	return out, nil
}

func (r *fakeStakeRepo) Claim(_ context.Context, stakeID, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stakes[stakeID]
	if !ok || s.UserID != userID || s.Status == entity.StakeClaimed {
		return false, nil
	}
	s.Status = entity.StakeClaimed
	return true, nil
}

type fakePoolRepo struct {
	mu    sync.Mutex
	seq   int64
	pools []entity.Pool
}

func newFakePoolRepo() *fakePoolRepo { return &fakePoolRepo{} }

func (r *fakePoolRepo) Create(_ context.Context, p *entity.Pool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	p.ID = r.seq
	r.pools = append(r.pools, *p)
	return nil
}

func (r *fakePoolRepo) List(_ context.Context) ([]entity.Pool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Pool, len(r.pools))
	copy(out, r.pools)
	return out, nil
}
