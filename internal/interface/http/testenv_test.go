package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/stakeflow/stakeflow/internal/application"
	"github.com/stakeflow/stakeflow/internal/domain/entity"
	repo "github.com/stakeflow/stakeflow/internal/domain/repository"
	handlers "github.com/stakeflow/stakeflow/internal/interface/http"
	"github.com/stakeflow/stakeflow/internal/router/modules"
	"github.com/stakeflow/stakeflow/pkg/helpers"
	"github.com/stakeflow/stakeflow/pkg/validation"
)

// In-memory repositories driving the full handler stack over httptest.

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

type fakeStakeRepo struct {
	mu     sync.Mutex
	seq    int64
	stakes map[int64]*entity.Stake
	pools  *fakePoolRepo
}

func newFakeStakeRepo(pools *fakePoolRepo) *fakeStakeRepo {
	return &fakeStakeRepo{stakes: make(map[int64]*entity.Stake), pools: pools}
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
		row := entity.StakeWithPool{Stake: *s}
		for _, p := range r.pools.pools {
			if p.ID == s.PoolID {
				row.PoolName = p.Name
				row.APYPercentage = p.APYPercentage
				row.MinLockPeriod = p.MinLockPeriod
				break
			}
		}
		out = append(out, row)
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

type testServer struct {
	router  *gin.Engine
	users   *fakeUserRepo
	pools   *fakePoolRepo
	stakes  *fakeStakeRepo
	jwt     *helpers.JWTManager
	staking *application.StakingService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	jwt := helpers.NewJWTManager("testsecret", 2*time.Hour, 24*time.Hour)

	users := newFakeUserRepo()
	pools := newFakePoolRepo()
	stakes := newFakeStakeRepo(pools)

	authSvc := application.NewAuthService(users, jwt, logger)
	poolSvc := application.NewPoolService(pools)
	stakingSvc := application.NewStakingService(stakes, logger)

	r := gin.New()
	api := r.Group("/api")
	modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt).Register(api)
	modules.NewPoolModule(handlers.NewPoolHandler(poolSvc, logger), jwt).Register(api)
	modules.NewStakingModule(handlers.NewStakingHandler(stakingSvc, logger), jwt).Register(api)

	return &testServer{router: r, users: users, pools: pools, stakes: stakes, jwt: jwt, staking: stakingSvc}
}

// do issues a JSON request against the test router.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

// seedUser inserts a user directly and returns a session token.
func (ts *testServer) seedUser(t *testing.T, email, password string, role entity.Role) (int64, string) {
	t.Helper()
	hash, err := helpers.HashPassword(password)
	require.NoError(t, err)
	u := &entity.User{Email: email, Password: hash, Role: role}
	require.NoError(t, ts.users.Create(context.Background(), u))
	token, _, err := ts.jwt.GenerateSessionToken(u.ID, u.Email, string(u.Role))
	require.NoError(t, err)
	return u.ID, token
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func (ts *testServer) seedPool(t *testing.T, name string, apy float64, lock int, risk entity.RiskLevel) int64 {
	t.Helper()
	p := &entity.Pool{Name: name, APYPercentage: apy, MinLockPeriod: lock, RiskLevel: risk}
	require.NoError(t, ts.pools.Create(context.Background(), p))
	return p.ID
}
