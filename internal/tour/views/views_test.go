package views

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/heroes/internal/heroes/domain"
	"github.com/aussiebroadwan/heroes/internal/tour/heroservice"
	"github.com/aussiebroadwan/heroes/internal/tour/messages"
	"github.com/aussiebroadwan/heroes/internal/tour/router"
	"github.com/aussiebroadwan/heroes/internal/tour/tourtest"
	"github.com/aussiebroadwan/heroes/pkg/heroesdk"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	srv *tourtest.Server
	log *messages.Log
	svc *heroservice.Service
}

func newFixture(t *testing.T, heroes []domain.Hero) fixture {
	t.Helper()

	srv := tourtest.NewServer(t, heroes)
	log := messages.NewLog(0)
	return fixture{srv: srv, log: log, svc: heroservice.New(srv.Client, log)}
}

func values(heroes []*heroesdk.Hero) []heroesdk.Hero {
	out := make([]heroesdk.Hero, len(heroes))
	for i, h := range heroes {
		out[i] = *h
	}
	return out
}

func TestHeroesViewAdd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, []domain.Hero{{ID: 1, Name: "A"}})
	v := NewHeroesView(f.svc)
	v.Init(ctx, nil)
	v.Wait()

	v.Add(ctx, "  B ")
	v.Wait()
	require.Equal(t, []heroesdk.Hero{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, values(v.Heroes()))

	before := f.srv.Requests()
	v.Add(ctx, "   ")
	v.Wait()
	require.Equal(t, before, f.srv.Requests())
	require.Len(t, v.Heroes(), 2)
}

func TestHeroesViewAddFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, []domain.Hero{{ID: 1, Name: "A"}})
	v := NewHeroesView(f.svc)
	v.Init(ctx, nil)
	v.Wait()

	f.srv.Fail(http.MethodPost, http.StatusInternalServerError)
	v.Add(ctx, "B")
	v.Wait()
	require.Equal(t, []heroesdk.Hero{{ID: 1, Name: "A"}}, values(v.Heroes()))
}

func TestHeroesViewDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, []domain.Hero{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}})
	v := NewHeroesView(f.svc)
	v.Init(ctx, nil)
	v.Wait()

	v.Delete(ctx, v.Find(1))
	require.Equal(t, []heroesdk.Hero{{ID: 2, Name: "B"}}, values(v.Heroes()), "removal is immediate")

	v.Wait()
	require.Equal(t, []domain.Hero{{ID: 2, Name: "B"}}, f.srv.Heroes(t))
	require.Contains(t, f.log.Messages(), "HeroService: deleted hero id=1")
}

func TestHeroesViewDeleteMatchesByReference(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, []domain.Hero{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}})
	v := NewHeroesView(f.svc)
	v.Init(ctx, nil)
	v.Wait()

	// Equal values, different record: the list keeps its entry but the
	// server still deletes id 1.
	v.Delete(ctx, &heroesdk.Hero{ID: 1, Name: "A"})
	v.Wait()

	require.Len(t, v.Heroes(), 2)
	require.Equal(t, []domain.Hero{{ID: 2, Name: "B"}}, f.srv.Heroes(t))
}

func TestHeroesViewDeleteRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, []domain.Hero{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}})
	v := NewHeroesView(f.svc)
	v.Init(ctx, nil)
	v.Wait()

	f.srv.Fail(http.MethodDelete, http.StatusInternalServerError)
	hero := v.Find(2)
	v.Delete(ctx, hero)
	require.Len(t, v.Heroes(), 2)

	v.Wait()
	heroes := v.Heroes()
	require.Equal(t, []heroesdk.Hero{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}, values(heroes))
	require.Same(t, hero, heroes[1])
	require.Len(t, f.srv.Heroes(t), 3)

	msgs := f.log.Messages()
	require.Contains(t, msgs[len(msgs)-1], "HeroService: deleteHero failed: ")
}

// gatedService answers from memory. Calls block on their gate, when one is
// set, so tests decide the order responses land in.
type gatedService struct {
	HeroService

	mu          sync.Mutex
	list        []heroesdk.Hero
	listGate    chan struct{}
	deleteGates map[int]chan struct{}
	deleteErr   error
	nextID      int
}

func (s *gatedService) GetHeroes(ctx context.Context) ([]heroesdk.Hero, error) {
	s.mu.Lock()
	gate, list := s.listGate, slices.Clone(s.list)
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return list, nil
}

func (s *gatedService) AddHero(ctx context.Context, name string) (*heroesdk.Hero, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	return &heroesdk.Hero{ID: s.nextID, Name: name}, nil
}

func (s *gatedService) DeleteHeroRecord(ctx context.Context, hero heroesdk.Hero) (*heroesdk.Hero, error) {
	s.mu.Lock()
	gate, err := s.deleteGates[hero.ID], s.deleteErr
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

func TestHeroesViewRollbackKeepsOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	abc := []heroesdk.Hero{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}

	tests := []struct {
		name    string
		deletes []int
		release []int
	}{
		{"later hero fails first", []int{2, 3}, []int{3, 2}},
		{"earlier hero fails first", []int{2, 3}, []int{2, 3}},
		{"deleted back to front", []int{3, 2}, []int{3, 2}},
		{"first and last", []int{1, 3}, []int{3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &gatedService{
				list:        abc,
				deleteGates: map[int]chan struct{}{1: make(chan struct{}), 2: make(chan struct{}), 3: make(chan struct{})},
				deleteErr:   errors.New("server error"),
			}
			v := NewHeroesView(svc)
			v.Init(ctx, nil)
			v.Wait()

			for _, id := range tt.deletes {
				v.Delete(ctx, v.Find(id))
			}
			require.Len(t, v.Heroes(), 1)

			for i, id := range tt.release {
				close(svc.deleteGates[id])
				require.Eventually(t, func() bool { return len(v.Heroes()) == 2+i }, time.Second, time.Millisecond)
			}
			v.Wait()
			require.Equal(t, abc, values(v.Heroes()))
		})
	}
}

func TestHeroesViewInitKeepsLocalChanges(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := &gatedService{
		list:   []heroesdk.Hero{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}},
		nextID: 3,
	}
	v := NewHeroesView(svc)
	v.Init(ctx, nil)
	v.Wait()

	// The second fetch answers with the list as it was before the edits below.
	gate := make(chan struct{})
	svc.mu.Lock()
	svc.listGate = gate
	svc.mu.Unlock()
	v.Init(ctx, nil)

	v.Delete(ctx, v.Find(2))
	v.Add(ctx, "D")
	require.Eventually(t, func() bool { return v.Find(4) != nil }, time.Second, time.Millisecond)

	close(gate)
	v.Wait()
	require.Equal(t, []heroesdk.Hero{{ID: 1, Name: "A"}, {ID: 3, Name: "C"}, {ID: 4, Name: "D"}}, values(v.Heroes()))
}

func TestHeroesViewLatestInitWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	gate := make(chan struct{})
	svc := &gatedService{list: []heroesdk.Hero{{ID: 1, Name: "Stale"}}, listGate: gate}
	v := NewHeroesView(svc)
	v.Init(ctx, nil)

	svc.mu.Lock()
	svc.list, svc.listGate = []heroesdk.Hero{{ID: 1, Name: "Fresh"}}, nil
	svc.mu.Unlock()
	v.Init(ctx, nil)
	require.Eventually(t, func() bool { return v.Find(1) != nil }, time.Second, time.Millisecond)

	close(gate)
	v.Wait()
	require.Equal(t, []heroesdk.Hero{{ID: 1, Name: "Fresh"}}, values(v.Heroes()))
}

func newTour(f fixture) (*router.Router, *HeroesView, *DetailView, *DashboardView) {
	r := router.New()
	heroes := NewHeroesView(f.svc)
	detail := NewDetailView(f.svc, r)
	dashboard := NewDashboardView(f.svc)

	r.Redirect("/", "/dashboard")
	r.Handle("/dashboard", dashboard)
	r.Handle("/heroes", heroes)
	r.Handle("/detail/:id", detail, router.PositiveInt("id"))
	return r, heroes, detail, dashboard
}

func TestDetailViewSave(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, nil)
	r, heroes, detail, _ := newTour(f)

	_, err := r.Navigate(ctx, "/heroes")
	require.NoError(t, err)
	heroes.Wait()

	_, err = r.Navigate(ctx, "/detail/13")
	require.NoError(t, err)
	detail.Wait()
	require.Equal(t, &heroesdk.Hero{ID: 13, Name: "Bombasto"}, detail.Hero())

	require.True(t, detail.SetName("Bombastic"))
	detail.Save(ctx)
	detail.Wait()
	heroes.Wait()

	current, _ := r.Current()
	require.Equal(t, "/heroes", current.Path)
	require.Equal(t, "Bombastic", heroes.Find(13).Name)
	require.Contains(t, f.log.Messages(), "HeroService: updated hero id=13")
}

func TestDetailViewSaveFailureStillNavigatesBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, nil)
	r, heroes, detail, _ := newTour(f)

	_, err := r.Navigate(ctx, "/heroes")
	require.NoError(t, err)
	_, err = r.Navigate(ctx, "/detail/14")
	require.NoError(t, err)
	detail.Wait()
	heroes.Wait()

	f.srv.Fail(http.MethodPut, http.StatusInternalServerError)
	detail.SetName("Slowpoke")
	detail.Save(ctx)
	detail.Wait()
	heroes.Wait()

	current, _ := r.Current()
	require.Equal(t, "/heroes", current.Path)
	require.Equal(t, "Celeritas", heroes.Find(14).Name)
}

func TestDetailViewMissingHero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, nil)
	r, _, detail, dashboard := newTour(f)

	_, err := r.Navigate(ctx, "/")
	require.NoError(t, err)
	_, err = r.Navigate(ctx, "/detail/999")
	require.NoError(t, err)
	detail.Wait()

	require.Nil(t, detail.Hero())
	require.False(t, detail.SetName("Nobody"))

	detail.GoBack(ctx)
	dashboard.Wait()
	current, _ := r.Current()
	require.Equal(t, "/dashboard", current.Path)
}

func TestDashboardTopHeroes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, nil)
	v := NewDashboardView(f.svc)
	v.Init(ctx, nil)
	v.Wait()

	require.Equal(t, []heroesdk.Hero{
		{ID: 12, Name: "Narco"},
		{ID: 13, Name: "Bombasto"},
		{ID: 14, Name: "Celeritas"},
		{ID: 15, Name: "Magneta"},
	}, v.TopHeroes())

	small := newFixture(t, []domain.Hero{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}})
	v = NewDashboardView(small.svc)
	v.Init(ctx, nil)
	v.Wait()
	require.Equal(t, []heroesdk.Hero{{ID: 2, Name: "B"}}, v.TopHeroes())
}

func TestSearchViewDebounces(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, nil)
	v := NewSearchView(f.svc, 30*time.Millisecond)

	for _, term := range []string{"m", "ma", "mag"} {
		v.Search(ctx, term)
	}
	v.Wait()

	require.Equal(t, int64(1), f.srv.Requests())
	require.Equal(t, []heroesdk.Hero{{ID: 15, Name: "Magneta"}, {ID: 19, Name: "Magma"}}, v.Results())

	// Same term again is dropped
	v.Search(ctx, "mag")
	v.Wait()
	require.Equal(t, int64(1), f.srv.Requests())

	v.Search(ctx, "   ")
	v.Wait()
	require.Empty(t, v.Results())
	require.Equal(t, int64(1), f.srv.Requests())

	require.Equal(t, []string{`HeroService: found heroes matching "mag"`}, f.log.Messages())
}

func TestSearchViewSwitchesToLatest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, nil)
	f.srv.Delay(200 * time.Millisecond)
	v := NewSearchView(f.svc, 10*time.Millisecond)

	v.Search(ctx, "dr")
	require.Eventually(t, func() bool { return f.srv.Requests() == 1 }, time.Second, 5*time.Millisecond)

	v.Search(ctx, "tor")
	v.Wait()

	require.Equal(t, []heroesdk.Hero{{ID: 20, Name: "Tornado"}}, v.Results())
	require.Equal(t, []string{`HeroService: found heroes matching "tor"`}, f.log.Messages())
}

func TestMessagesView(t *testing.T) {
	t.Parallel()

	log := messages.NewLog(2)
	v := NewMessagesView(log)
	require.False(t, v.Visible())

	log.Add("one")
	log.Add("two")
	log.Add("three")
	require.True(t, v.Visible())
	require.Equal(t, []string{"two", "three"}, v.Messages())

	v.Clear()
	require.False(t, v.Visible())
}
