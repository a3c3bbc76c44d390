// Package shell is the tour's line-oriented front end. It owns the router
// and views and renders whichever view is current after every command.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/heroes/internal/tour/heroservice"
	"github.com/aussiebroadwan/heroes/internal/tour/messages"
	"github.com/aussiebroadwan/heroes/internal/tour/router"
	"github.com/aussiebroadwan/heroes/internal/tour/views"
)

const (
	pathDashboard = "/dashboard"
	pathHeroes    = "/heroes"
	patternDetail = "/detail/:id"
)

// Options configures New. Zero values take the defaults.
type Options struct {
	SearchDebounce time.Duration
	NoColor        bool
}

type Shell struct {
	out io.Writer
	r   *renderer

	router    *router.Router
	dashboard *views.DashboardView
	heroes    *views.HeroesView
	detail    *views.DetailView
	search    *views.SearchView
	messages  *views.MessagesView
}

func New(svc *heroservice.Service, log *messages.Log, out io.Writer, opts Options) *Shell {
	r := router.New()

	s := &Shell{
		out:       out,
		r:         &renderer{out: out, plain: opts.NoColor},
		router:    r,
		dashboard: views.NewDashboardView(svc),
		heroes:    views.NewHeroesView(svc),
		detail:    views.NewDetailView(svc, r),
		search:    views.NewSearchView(svc, opts.SearchDebounce),
		messages:  views.NewMessagesView(log),
	}

	r.Redirect("/", pathDashboard)
	r.Handle(pathDashboard, s.dashboard)
	r.Handle(pathHeroes, s.heroes)
	r.Handle(patternDetail, s.detail, router.PositiveInt("id"))

	return s
}

var errQuit = errors.New("quit")

// Run opens the dashboard, then reads commands from in until EOF, "quit" or
// ctx is cancelled.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	if err := s.Exec(ctx, "go /"); err != nil {
		return err
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		s.r.prompt()

		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if err := s.Exec(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				s.r.errorf("%v", err)
			}
		}
	}
}

// Exec runs one command line and renders the result. Errors are user
// mistakes (unknown command, wrong view) and leave state untouched.
func (s *Shell) Exec(ctx context.Context, line string) error {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
		return nil
	case "go":
		if _, err := s.router.Navigate(ctx, arg); err != nil {
			return err
		}
	case "back":
		s.router.Back(ctx)
	case "add":
		if err := s.require(pathHeroes); err != nil {
			return err
		}
		s.heroes.Add(ctx, arg)
	case "delete":
		if err := s.require(pathHeroes); err != nil {
			return err
		}
		id, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("delete wants a hero id, got %q", arg)
		}
		hero := s.heroes.Find(id)
		if hero == nil {
			return fmt.Errorf("no hero with id %d in the list", id)
		}
		s.heroes.Delete(ctx, hero)
	case "rename":
		if err := s.require(patternDetail); err != nil {
			return err
		}
		if !s.detail.SetName(arg) {
			return errors.New("no hero loaded")
		}
	case "save":
		if err := s.require(patternDetail); err != nil {
			return err
		}
		s.detail.Save(ctx)
	case "search":
		if err := s.require(pathDashboard); err != nil {
			return err
		}
		s.search.Search(ctx, arg)
		s.search.Wait()
	case "messages":
		s.r.messages(s.messages.Messages())
		return nil
	case "clear":
		s.messages.Clear()
	case "help":
		s.r.help()
		return nil
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}

	s.wait()
	s.render()
	return nil
}

// require reports an error unless pattern is the current route.
func (s *Shell) require(pattern string) error {
	current, ok := s.router.Current()
	if !ok || current.Pattern != pattern {
		return fmt.Errorf("that command only works on %s", pattern)
	}
	return nil
}

// wait settles all background work. Save navigates back from its own
// goroutine, so detail goes first.
func (s *Shell) wait() {
	s.detail.Wait()
	s.dashboard.Wait()
	s.heroes.Wait()
	s.search.Wait()
}

func (s *Shell) render() {
	current, ok := s.router.Current()
	if !ok {
		return
	}

	s.r.title()
	switch current.Pattern {
	case pathDashboard:
		s.r.dashboard(s.dashboard.TopHeroes(), s.search.Results())
	case pathHeroes:
		s.r.heroes(s.heroes.Heroes())
	case patternDetail:
		s.r.detail(s.detail.Hero())
	}

	if s.messages.Visible() {
		s.r.messages(s.messages.Messages())
	}
}
