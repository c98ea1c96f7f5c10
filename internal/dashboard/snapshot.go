package dashboard

import (
	"queuesmart/internal/analytics"
	"queuesmart/internal/predictions"
)

type PredictionView struct {
	QueueLength     predictions.Category `json:"queueLength"`
	WaitTimeMinutes int                  `json:"waitTimeMinutes"`
	Justification   string               `json:"justification"`
	Tone            predictions.Tone     `json:"tone"`
}

type SeriesView struct {
	Ready     bool                    `json:"ready"`
	Simulated bool                    `json:"simulated"`
	Fallback  bool                    `json:"fallback"`
	Points    []analytics.SeriesPoint `json:"points"`
}

// Snapshot is the read-only view handed to the page
type Snapshot struct {
	Canteen    string          `json:"canteen"`
	Time       string          `json:"time"`
	Phase      Phase           `json:"phase"`
	Prediction *PredictionView `json:"prediction"`
	Error      *string         `json:"error"`
	Loading    bool            `json:"loading"`
	Locating   bool            `json:"locating"`
	Busy       bool            `json:"busy"`
	Canteens   []string        `json:"canteens"`
	Series     SeriesView      `json:"series"`
}

func (s *State) Snapshot(canteenNames []string) *Snapshot {
	c := s.clone()

	snap := &Snapshot{
		Canteen:  c.Canteen,
		Time:     c.Time,
		Phase:    c.Phase(),
		Loading:  c.Loading,
		Locating: c.Locating,
		Busy:     c.Loading || c.Locating,
		Canteens: append([]string(nil), canteenNames...),
		Series: SeriesView{
			Ready:     c.SeriesReady,
			Simulated: c.SeriesReady,
			Fallback:  c.SeriesFallback,
			Points:    c.Series,
		},
	}
	if snap.Series.Points == nil {
		snap.Series.Points = []analytics.SeriesPoint{}
	}
	if c.Error != "" {
		snap.Error = &c.Error
	}
	if c.Prediction != nil {
		snap.Prediction = &PredictionView{
			QueueLength:     c.Prediction.QueueLength,
			WaitTimeMinutes: c.Prediction.WaitTimeMinutes,
			Justification:   c.Prediction.Justification,
			Tone:            c.Prediction.QueueLength.Style(),
		}
	}
	return snap
}
