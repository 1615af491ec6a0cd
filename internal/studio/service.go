package studio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"aura-ai/internal/batch"
	"aura-ai/internal/catalog"
	"aura-ai/internal/edit"
	"aura-ai/internal/i18n"
	"aura-ai/internal/session"
)

type Options struct {
	Store        session.Store
	Catalog      *catalog.Catalog
	Orchestrator *batch.Orchestrator
	WarningTTL   time.Duration
	// DefaultLocale is used for new sessions whose language is unsupported.
	DefaultLocale string
	Now           func() time.Time
	Logger        *slog.Logger
}

// Service applies user actions to sessions and runs generation batches.
type Service struct {
	store      session.Store
	catalog    *catalog.Catalog
	orch       *batch.Orchestrator
	warningTTL time.Duration
	locale     string
	now        func() time.Time
	logger     *slog.Logger
}

func New(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	ttl := opts.WarningTTL
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	c := opts.Catalog
	if c == nil {
		c = catalog.Default()
	}

	return &Service{
		store:      opts.Store,
		catalog:    c,
		orch:       opts.Orchestrator,
		warningTTL: ttl,
		locale:     i18n.Normalize(opts.DefaultLocale),
		now:        now,
		logger:     logger,
	}
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Service) Now() time.Time {
	return s.now()
}

// Create starts a session with a random id.
func (s *Service) Create(ctx context.Context, locale string) (session.State, error) {
	st := session.New(uuid.NewString())
	st.Locale = i18n.NormalizeOr(locale, s.locale)
	if err := s.store.Create(ctx, st); err != nil {
		return session.State{}, err
	}
	return s.store.Get(ctx, st.ID)
}

// Ensure returns the session with id, creating it when absent.
func (s *Service) Ensure(ctx context.Context, id string, locale string) (session.State, error) {
	st, err := s.store.Get(ctx, id)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, session.ErrNotFound) {
		return session.State{}, err
	}

	st = session.New(id)
	st.Locale = i18n.NormalizeOr(locale, s.locale)
	if err := s.store.Create(ctx, st); err != nil && !errors.Is(err, session.ErrExists) {
		return session.State{}, err
	}
	return s.store.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, id string) (session.State, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Upload(ctx context.Context, id string, img edit.Image, name string) (session.State, error) {
	return s.store.Update(ctx, id, func(st *session.State) error {
		st.Upload(img, name)
		return nil
	})
}

// ToggleStyle persists the limit warning even when the toggle is rejected;
// the rejection itself is returned as prompt.ErrSelectionLimit.
func (s *Service) ToggleStyle(ctx context.Context, id string, styleID string) (session.State, error) {
	if !s.catalog.Has(styleID) {
		return session.State{}, fmt.Errorf("%w: %q", catalog.ErrUnknownStyle, styleID)
	}

	var toggleErr error
	st, err := s.store.Update(ctx, id, func(st *session.State) error {
		err := st.ToggleStyle(styleID, s.now(), s.warningTTL)
		if errors.Is(err, session.ErrBusy) {
			return err
		}
		toggleErr = err
		return nil
	})
	if err != nil {
		return st, err
	}
	return st, toggleErr
}

func (s *Service) ClearSelection(ctx context.Context, id string) (session.State, error) {
	return s.store.Update(ctx, id, func(st *session.State) error {
		return st.ClearSelection()
	})
}

func (s *Service) SetCustomPrompt(ctx context.Context, id string, text string) (session.State, error) {
	return s.store.Update(ctx, id, func(st *session.State) error {
		return st.SetCustomPrompt(text)
	})
}

func (s *Service) SetLocale(ctx context.Context, id string, locale string) (session.State, error) {
	return s.store.Update(ctx, id, func(st *session.State) error {
		st.Locale = i18n.NormalizeOr(locale, s.locale)
		return nil
	})
}

func (s *Service) Back(ctx context.Context, id string) (session.State, error) {
	return s.store.Update(ctx, id, func(st *session.State) error {
		st.Back()
		return nil
	})
}

// Start moves the session to generating and returns the batch to run.
func (s *Service) Start(ctx context.Context, id string) (session.State, session.Ticket, error) {
	var ticket session.Ticket
	st, err := s.store.Update(ctx, id, func(st *session.State) error {
		t, err := st.Begin(s.catalog)
		if err != nil {
			return err
		}
		ticket = t
		return nil
	})
	if err != nil {
		return st, session.Ticket{}, err
	}
	return st, ticket, nil
}

// Run executes a started batch and records its outcome. Outcomes for a
// superseded epoch are dropped.
func (s *Service) Run(ctx context.Context, id string, ticket session.Ticket) (session.State, error) {
	results, runErr := s.orch.Run(ctx, ticket.Image, ticket.Instructions)
	// the outcome must be recorded even when ctx expired mid-batch
	return s.Finish(context.WithoutCancel(ctx), id, ticket.Epoch, results, runErr)
}

func (s *Service) Finish(ctx context.Context, id string, epoch uint64, results []edit.Result, runErr error) (session.State, error) {
	applied := false
	st, err := s.store.Update(ctx, id, func(st *session.State) error {
		if runErr != nil {
			applied = st.Fail(epoch, runErr)
		} else {
			applied = st.Complete(epoch, results)
		}
		return nil
	})
	if err != nil {
		return st, err
	}

	if !applied {
		s.logger.Info("stale batch outcome dropped", "session", id, "epoch", epoch, "current", st.Epoch)
		return st, nil
	}
	if runErr != nil {
		s.logger.Error("generation failed", "session", id, "kind", edit.KindOf(runErr), "err", runErr)
		return st, runErr
	}
	s.logger.Info("generation done", "session", id, "count", len(results))
	return st, nil
}

// Generate runs Start and Run synchronously.
func (s *Service) Generate(ctx context.Context, id string) (session.State, error) {
	st, ticket, err := s.Start(ctx, id)
	if err != nil {
		return st, err
	}
	return s.Run(ctx, id, ticket)
}
