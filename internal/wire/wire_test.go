package wire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"restaurant-booking/internal/data/repository"
	"restaurant-booking/pkg/middleware"
	"restaurant-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mapStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (s *mapStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *mapStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func newApp(t *testing.T, store *mapStore) *App {
	t.Helper()
	log := zap.NewNop()
	config := &utils.Config{Redis: utils.RedisConfig{TTL: time.Minute}}
	if store == nil {
		return Wiring(repository.NewFixtureRepository(log), nil, config, log)
	}
	return Wiring(repository.NewFixtureRepository(log), store, config, log)
}

func TestWiring_Routes(t *testing.T) {
	app := newApp(t, nil)

	routes := []struct {
		method string
		target string
		code   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/availability?date=2025-10-29&time=12:00&guests=2", http.StatusOK},
		{http.MethodGet, "/api/floors", http.StatusOK},
		{http.MethodGet, "/api/floors/2", http.StatusOK},
		{http.MethodGet, "/api/menu", http.StatusOK},
		{http.MethodGet, "/api/menu/categories", http.StatusOK},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, rt := range routes {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(rt.method, rt.target, nil))
		assert.Equal(t, rt.code, rec.Code, "%s %s", rt.method, rt.target)
	}
}

func TestWiring_RequestIDHeader(t *testing.T) {
	app := newApp(t, nil)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	_, err := uuid.Parse(rec.Header().Get(middleware.RequestIDHeader))
	assert.NoError(t, err)
}

func TestWiring_CORSPreflight(t *testing.T) {
	app := newApp(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/availability", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWiring_StoreEnablesCache(t *testing.T) {
	store := &mapStore{data: map[string][]byte{}}
	app := newApp(t, store)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/availability?date=2025-10-29&time=12:00&guests=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, store.data, 1)
}
