package analytics

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"queuesmart/pkg/llm"
)

type replyPoint struct {
	Time      string         `validate:"required"`
	Occupancy map[string]int `validate:"required,dive,min=0"`
}

// ParseReply decodes the model text into series points. Every point must
// carry a time and a non-negative count for each of names and nothing else.
func ParseReply(text string, names []string) ([]SeriesPoint, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, llm.ErrEmptyReply
	}

	var points []SeriesPoint
	if err := json.Unmarshal([]byte(text), &points); err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrMalformedReply, err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no data points", llm.ErrMalformedReply)
	}

	for i, p := range points {
		if err := llm.Validator().Struct(replyPoint{Time: strings.TrimSpace(p.Time), Occupancy: p.Occupancy}); err != nil {
			return nil, fmt.Errorf("%w: point %d: %v", llm.ErrMalformedReply, i, err)
		}
		for _, name := range names {
			if _, ok := p.Occupancy[name]; !ok {
				return nil, fmt.Errorf("%w: point %d: missing count for %s", llm.ErrMalformedReply, i, name)
			}
		}
		if len(p.Occupancy) != len(names) {
			for key := range p.Occupancy {
				if !slices.Contains(names, key) {
					return nil, fmt.Errorf("%w: point %d: unknown canteen %s", llm.ErrMalformedReply, i, key)
				}
			}
		}
	}

	return points, nil
}
