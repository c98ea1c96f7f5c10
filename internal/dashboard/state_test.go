package dashboard

import (
	"errors"
	"testing"

	"queuesmart/internal/analytics"
	"queuesmart/internal/predictions"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	if s.Canteen != "North Spine Plaza" || s.Time != "12:30" {
		t.Errorf("defaults = %q %q", s.Canteen, s.Time)
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %q, want idle", s.Phase())
	}
}

func TestBeginPredictionValidation(t *testing.T) {
	previous := &predictions.Prediction{QueueLength: "Short"}

	tests := []struct {
		name     string
		canteen  string
		time     string
		override string
		wantErr  bool
	}{
		{name: "empty time", canteen: "The Hive", time: "", wantErr: true},
		{name: "empty canteen", canteen: "", time: "12:00", wantErr: true},
		{name: "override fills empty canteen", canteen: "", time: "12:00", override: "The Hive"},
		{name: "both set", canteen: "The Hive", time: "12:00"},
		{name: "blank but not empty", canteen: " ", time: " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.Canteen, s.Time = tt.canteen, tt.time
			s.Prediction = previous
			s.Error = "old error"

			token, canteen, err := s.BeginPrediction(tt.override)
			if tt.wantErr {
				if !errors.Is(err, predictions.ErrValidation) {
					t.Fatalf("BeginPrediction() error = %v, want ErrValidation", err)
				}
				if s.Error != predictions.ValidationMessage || s.Loading {
					t.Errorf("state after validation failure = %+v", s)
				}
				if s.Phase() != PhaseFailure {
					t.Errorf("Phase() = %q, want failure", s.Phase())
				}
				return
			}

			if err != nil {
				t.Fatalf("BeginPrediction() error = %v", err)
			}
			if token != 1 || canteen == "" {
				t.Errorf("token, canteen = %d, %q", token, canteen)
			}
			if s.Error != "" || s.Prediction != nil || !s.Loading {
				t.Errorf("prior result not cleared: %+v", s)
			}
			if s.Phase() != PhaseLoading {
				t.Errorf("Phase() = %q, want loading", s.Phase())
			}
		})
	}
}

func TestPredictionTokenGuard(t *testing.T) {
	s := NewState()
	first, _, _ := s.BeginPrediction("")
	second, _, _ := s.BeginPrediction("")

	if s.CompletePrediction(first, &predictions.Prediction{QueueLength: "Long"}) {
		t.Error("superseded completion accepted")
	}
	if s.Prediction != nil || !s.Loading {
		t.Errorf("superseded completion changed state: %+v", s)
	}
	if s.FailPrediction(first) {
		t.Error("superseded failure accepted")
	}

	if !s.CompletePrediction(second, &predictions.Prediction{QueueLength: "Short"}) {
		t.Fatal("current completion rejected")
	}
	if s.Prediction.QueueLength != "Short" || s.Loading {
		t.Errorf("state = %+v", s)
	}
	if s.Phase() != PhaseSuccess {
		t.Errorf("Phase() = %q, want success", s.Phase())
	}
}

func TestFailPrediction(t *testing.T) {
	s := NewState()
	token, _, _ := s.BeginPrediction("")
	s.FailPrediction(token)

	if s.Error != predictions.FailureMessage || s.Loading || s.Prediction != nil {
		t.Errorf("state = %+v", s)
	}
}

func TestLocationTransitions(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"PERMISSION_DENIED", "You denied the request for Geolocation."},
		{"POSITION_UNAVAILABLE", "Location information is unavailable."},
		{"timeout", "The request to get user location timed out."},
		{"SOMETHING_ELSE", "An unknown error occurred while getting location."},
		{"", "An unknown error occurred while getting location."},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			s := NewState()
			s.Error = "previous"
			s.BeginLocate()
			if !s.Locating || s.Error != "" {
				t.Fatalf("BeginLocate() state = %+v", s)
			}

			s.LocationFailed(ParseLocationErrorCode(tt.code))
			if s.Locating || s.Error != tt.want {
				t.Errorf("state = locating %v error %q, want %q", s.Locating, s.Error, tt.want)
			}
		})
	}
}

func TestGeolocationUnsupported(t *testing.T) {
	s := NewState()
	s.GeolocationUnsupported()
	if s.Error != "Geolocation is not supported by your browser." {
		t.Errorf("Error = %q", s.Error)
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := NewState()
	s.SetSeries(&analytics.Series{Points: analytics.FallbackSeries(), Simulated: true, Fallback: true})
	token, _, _ := s.BeginPrediction("")
	s.CompletePrediction(token, &predictions.Prediction{QueueLength: "Very Long", WaitTimeMinutes: 30})

	snap := s.Snapshot([]string{"A"})
	s.Prediction.WaitTimeMinutes = 1
	s.Series[0].Time = "changed"

	if snap.Prediction.WaitTimeMinutes != 30 || snap.Prediction.Tone != predictions.ToneRed {
		t.Errorf("snapshot prediction = %+v", snap.Prediction)
	}
	if snap.Series.Points[0].Time != "08:00" || !snap.Series.Fallback || !snap.Series.Ready {
		t.Errorf("snapshot series = %+v", snap.Series)
	}
	if snap.Error != nil || snap.Busy {
		t.Errorf("snapshot = %+v", snap)
	}
}
