package dashboard

import (
	"time"

	"queuesmart/internal/analytics"
	"queuesmart/internal/predictions"
)

const (
	DefaultCanteen = "North Spine Plaza"
	DefaultTime    = "12:30"
)

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseFailure Phase = "failure"
)

// State is one session's dashboard. It is mutated only through the
// transition methods below, inside Store.Update.
type State struct {
	Canteen    string                  `json:"canteen"`
	Time       string                  `json:"time"`
	Prediction *predictions.Prediction `json:"prediction,omitempty"`
	Error      string                  `json:"error,omitempty"`
	Loading    bool                    `json:"loading"`
	Locating   bool                    `json:"locating"`

	Series           []analytics.SeriesPoint `json:"series,omitempty"`
	SeriesReady      bool                    `json:"series_ready"`
	SeriesFallback   bool                    `json:"series_fallback"`
	AnalyticsStarted bool                    `json:"analytics_started"`

	// Token is the most recently issued prediction token
	Token     uint64    `json:"token"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewState() *State {
	return &State{
		Canteen: DefaultCanteen,
		Time:    DefaultTime,
	}
}

func (s *State) SetCanteen(name string) {
	s.Canteen = name
}

func (s *State) SetTime(t string) {
	s.Time = t
}

// BeginPrediction starts a prediction for override, or for the form canteen
// when override is empty. An empty canteen or time sets the validation
// message and returns predictions.ErrValidation; otherwise the previous
// result and error are cleared and a fresh token is issued.
func (s *State) BeginPrediction(override string) (token uint64, canteen string, err error) {
	canteen = override
	if canteen == "" {
		canteen = s.Canteen
	}
	if canteen == "" || s.Time == "" {
		s.Error = predictions.ValidationMessage
		return 0, "", predictions.ErrValidation
	}

	s.Token++
	s.Loading = true
	s.Error = ""
	s.Prediction = nil
	return s.Token, canteen, nil
}

// CompletePrediction stores p if token is still current. A superseded
// token is discarded and reported as false.
func (s *State) CompletePrediction(token uint64, p *predictions.Prediction) bool {
	if token != s.Token {
		return false
	}
	s.Prediction = p
	s.Loading = false
	return true
}

// FailPrediction records the generic failure if token is still current
func (s *State) FailPrediction(token uint64) bool {
	if token != s.Token {
		return false
	}
	s.Error = predictions.FailureMessage
	s.Loading = false
	return true
}

func (s *State) BeginLocate() {
	s.Locating = true
	s.Error = ""
}

func (s *State) LocationFailed(code LocationErrorCode) {
	s.Error = code.Message()
	s.Locating = false
}

func (s *State) FinishLocate() {
	s.Locating = false
}

func (s *State) GeolocationUnsupported() {
	s.Error = UnsupportedMessage
}

func (s *State) SetSeries(series *analytics.Series) {
	s.Series = series.Points
	s.SeriesFallback = series.Fallback
	s.SeriesReady = true
}

// Phase derives the display phase from the flags
func (s *State) Phase() Phase {
	switch {
	case s.Loading || s.Locating:
		return PhaseLoading
	case s.Error != "":
		return PhaseFailure
	case s.Prediction != nil:
		return PhaseSuccess
	default:
		return PhaseIdle
	}
}

func (s *State) clone() *State {
	c := *s
	if s.Series != nil {
		c.Series = make([]analytics.SeriesPoint, len(s.Series))
		copy(c.Series, s.Series)
	}
	if s.Prediction != nil {
		p := *s.Prediction
		c.Prediction = &p
	}
	return &c
}
