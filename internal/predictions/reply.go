package predictions

import "queuesmart/pkg/llm"

type reply struct {
	QueueLength     *string `json:"queueLength" validate:"required"`
	WaitTimeMinutes *int    `json:"waitTimeMinutes" validate:"required,min=0"`
	Justification   *string `json:"justification" validate:"required"`
}

// ParseReply decodes the model text into a Prediction. A reply missing any
// field never yields a partial result.
func ParseReply(text string) (*Prediction, error) {
	var r reply
	if err := llm.Decode(text, &r); err != nil {
		return nil, err
	}

	return &Prediction{
		QueueLength:     Category(*r.QueueLength),
		WaitTimeMinutes: *r.WaitTimeMinutes,
		Justification:   *r.Justification,
	}, nil
}
