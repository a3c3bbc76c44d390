// Package tourtest runs the heroes API in-process for the tour's tests.
package tourtest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/heroes/internal/heroes/domain"
	heroeshttp "github.com/aussiebroadwan/heroes/internal/heroes/http"
	"github.com/aussiebroadwan/heroes/internal/heroes/service"
	"github.com/aussiebroadwan/heroes/internal/heroes/store"
	"github.com/aussiebroadwan/heroes/internal/heroes/store/drivers/memory"
	"github.com/aussiebroadwan/heroes/pkg/heroesdk"
	"github.com/aussiebroadwan/heroes/pkg/httpx"
	"github.com/aussiebroadwan/heroes/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// Server is a heroes API backed by a memory store.
type Server struct {
	*httptest.Server

	Client *heroesdk.SDKClient
	Store  store.Store

	requests atomic.Int64

	mu      sync.Mutex
	delay   time.Duration
	failing map[string]int // method -> status
}

// NewServer starts a server holding heroes. A nil slice seeds the mock roster.
func NewServer(t testing.TB, heroes []domain.Hero) *Server {
	t.Helper()

	if heroes == nil {
		heroes = domain.MockHeroes()
	}

	st := memory.NewStore()
	_, err := st.Heroes().Seed(context.Background(), heroes)
	require.NoError(t, err)

	router := heroeshttp.NewRouter("test", st,
		httpx.NewMetrics("tourtest", prometheus.NewRegistry()), slogx.Discard())
	router.HeroService = &service.HeroService{Store: st}
	router.ApplyRoutes()

	s := &Server{Store: st, failing: map[string]int{}}
	s.Server = httptest.NewServer(s.wrap(router))
	t.Cleanup(s.Close)

	s.Client = heroesdk.NewSDKClient(s.URL)
	return s
}

// Requests counts calls that reached /api/heroes.
func (s *Server) Requests() int64 { return s.requests.Load() }

// Fail makes every request with method answer status until Recover.
func (s *Server) Fail(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[method] = status
}

func (s *Server) Recover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.failing)
}

// Delay holds each hero request for d before answering, or until the
// client gives up.
func (s *Server) Delay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// Heroes returns the server-side roster.
func (s *Server) Heroes(t testing.TB) []domain.Hero {
	t.Helper()

	heroes, err := s.Store.Heroes().ListHeroes(context.Background())
	require.NoError(t, err)
	return heroes
}

func (s *Server) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/heroes") {
			next.ServeHTTP(w, r)
			return
		}
		s.requests.Add(1)

		s.mu.Lock()
		delay, status := s.delay, s.failing[r.Method]
		s.mu.Unlock()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		if status != 0 {
			httpx.WriteError(w, status, heroesdk.ErrorCodeServerError, "injected failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}
