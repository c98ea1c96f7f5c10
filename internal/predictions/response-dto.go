package predictions

type PredictionResponse struct {
	Canteen         string   `json:"canteen"`
	Time            string   `json:"time"`
	QueueLength     Category `json:"queueLength"`
	WaitTimeMinutes int      `json:"waitTimeMinutes"`
	Justification   string   `json:"justification"`
	Tone            Tone     `json:"tone"`
}

func NewPredictionResponse(req Request, p *Prediction) *PredictionResponse {
	return &PredictionResponse{
		Canteen:         req.Canteen,
		Time:            req.Time,
		QueueLength:     p.QueueLength,
		WaitTimeMinutes: p.WaitTimeMinutes,
		Justification:   p.Justification,
		Tone:            p.QueueLength.Style(),
	}
}
