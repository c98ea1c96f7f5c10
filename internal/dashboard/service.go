package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"queuesmart/internal/analytics"
	"queuesmart/internal/canteens"
	"queuesmart/internal/predictions"
	"queuesmart/pkg/logger"
)

// FormUpdate carries the form fields that changed; nil means untouched
type FormUpdate struct {
	Canteen *string
	Time    *string
}

type Service interface {
	// Open returns the session, creating it on first sight. The analytics
	// series is fetched in the background once per session.
	Open(ctx context.Context, sessionID string) (*Snapshot, error)
	SetForm(ctx context.Context, sessionID string, update FormUpdate) (*Snapshot, error)
	// Submit predicts for the form canteen and time and returns the
	// settled state
	Submit(ctx context.Context, sessionID string) (*Snapshot, error)
	// Locate resolves a position, selects the nearest canteen and then
	// predicts for it
	Locate(ctx context.Context, sessionID string, locator Locator) (*Snapshot, error)
	Unsupported(ctx context.Context, sessionID string) (*Snapshot, error)
	// Wait blocks until background analytics fetches have finished
	Wait()
}

type Options struct {
	GeolocationTimeout time.Duration
}

type service struct {
	store       Store
	directory   *canteens.Directory
	predictions predictions.Service
	analytics   analytics.Service
	log         *logger.Logger
	opts        Options

	background sync.WaitGroup
}

func NewService(store Store, directory *canteens.Directory, predictionService predictions.Service, analyticsService analytics.Service, log *logger.Logger, opts Options) Service {
	if opts.GeolocationTimeout <= 0 {
		opts.GeolocationTimeout = 10 * time.Second
	}
	return &service{
		store:       store,
		directory:   directory,
		predictions: predictionService,
		analytics:   analyticsService,
		log:         log.WithComponent("dashboard"),
		opts:        opts,
	}
}

func (s *service) snapshot(state *State) *Snapshot {
	return state.Snapshot(s.directory.Names())
}

func (s *service) Open(ctx context.Context, sessionID string) (*Snapshot, error) {
	startAnalytics := false
	state, err := s.store.Update(ctx, sessionID, func(st *State) error {
		startAnalytics = false
		if !st.AnalyticsStarted {
			st.AnalyticsStarted = true
			startAnalytics = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if startAnalytics {
		s.background.Add(1)
		go s.loadSeries(context.WithoutCancel(ctx), sessionID)
	}

	return s.snapshot(state), nil
}

func (s *service) loadSeries(ctx context.Context, sessionID string) {
	defer s.background.Done()

	series := s.analytics.Series(ctx)
	if _, err := s.store.Update(ctx, sessionID, func(st *State) error {
		st.SetSeries(series)
		return nil
	}); err != nil {
		s.log.WithSessionID(sessionID).WithError(err).ErrorContext(ctx, "Failed to store analytics series")
	}
}

func (s *service) Wait() {
	s.background.Wait()
}

func (s *service) SetForm(ctx context.Context, sessionID string, update FormUpdate) (*Snapshot, error) {
	state, err := s.store.Update(ctx, sessionID, func(st *State) error {
		if update.Canteen != nil {
			st.SetCanteen(*update.Canteen)
		}
		if update.Time != nil {
			st.SetTime(*update.Time)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.snapshot(state), nil
}

func (s *service) Submit(ctx context.Context, sessionID string) (*Snapshot, error) {
	state, err := s.predict(ctx, sessionID, "", nil)
	if err != nil {
		return nil, err
	}
	return s.snapshot(state), nil
}

// predict runs one prediction flow. extra is applied in the same update
// that settles the flow.
func (s *service) predict(ctx context.Context, sessionID, override string, extra func(*State)) (*State, error) {
	var (
		token       uint64
		canteen     string
		timeOfDay   string
		invalidForm bool
	)

	state, err := s.store.Update(ctx, sessionID, func(st *State) error {
		invalidForm = false
		if override != "" {
			st.SetCanteen(override)
		}
		t, c, err := st.BeginPrediction(override)
		if errors.Is(err, predictions.ErrValidation) {
			invalidForm = true
			if extra != nil {
				extra(st)
			}
			return nil
		}
		token, canteen, timeOfDay = t, c, st.Time
		return nil
	})
	if err != nil || invalidForm {
		return state, err
	}

	prediction, predictErr := s.predictions.Predict(ctx, predictions.Request{Canteen: canteen, Time: timeOfDay})

	// The settling write must land even if the client went away
	settleCtx := context.WithoutCancel(ctx)
	return s.store.Update(settleCtx, sessionID, func(st *State) error {
		var current bool
		if predictErr != nil {
			current = st.FailPrediction(token)
		} else {
			current = st.CompletePrediction(token, prediction)
		}
		if !current {
			s.log.WithSessionID(sessionID).DebugContext(ctx, "Discarded superseded prediction", "token", token, "latest", st.Token)
		}
		if extra != nil {
			extra(st)
		}
		return nil
	})
}

func (s *service) Locate(ctx context.Context, sessionID string, locator Locator) (*Snapshot, error) {
	if _, err := s.store.Update(ctx, sessionID, func(st *State) error {
		st.BeginLocate()
		return nil
	}); err != nil {
		return nil, err
	}

	locateCtx, cancel := context.WithTimeout(ctx, s.opts.GeolocationTimeout)
	position, err := locator.Locate(locateCtx)
	cancel()

	if err != nil {
		code := codeOf(err)
		s.log.WithSessionID(sessionID).InfoContext(ctx, "Geolocation failed", "code", string(code))
		state, updateErr := s.store.Update(context.WithoutCancel(ctx), sessionID, func(st *State) error {
			st.LocationFailed(code)
			return nil
		})
		if updateErr != nil {
			return nil, updateErr
		}
		return s.snapshot(state), nil
	}

	nearest, err := s.directory.Nearest(position.Latitude, position.Longitude)
	if err != nil {
		return nil, err
	}
	s.log.LogNearestCanteen(ctx, position.Latitude, position.Longitude, nearest.Name)

	state, err := s.predict(ctx, sessionID, nearest.Name, func(st *State) {
		st.FinishLocate()
	})
	if err != nil {
		return nil, err
	}
	return s.snapshot(state), nil
}

func (s *service) Unsupported(ctx context.Context, sessionID string) (*Snapshot, error) {
	state, err := s.store.Update(ctx, sessionID, func(st *State) error {
		st.GeolocationUnsupported()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.snapshot(state), nil
}
