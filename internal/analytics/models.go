package analytics

import (
	"encoding/json"
	"fmt"
)

// SeriesPoint is the queue occupancy of every canteen at one time of day.
// Its JSON form is a flat chart row: {"time":"08:00","The Hive":5,...}.
type SeriesPoint struct {
	Time      string
	Occupancy map[string]int
}

func (p SeriesPoint) MarshalJSON() ([]byte, error) {
	row := make(map[string]interface{}, len(p.Occupancy)+1)
	for name, count := range p.Occupancy {
		row[name] = count
	}
	row["time"] = p.Time
	return json.Marshal(row)
}

func (p *SeriesPoint) UnmarshalJSON(data []byte) error {
	var row map[string]json.RawMessage
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}

	var point SeriesPoint
	point.Occupancy = make(map[string]int, len(row))
	for key, raw := range row {
		if key == "time" {
			if err := json.Unmarshal(raw, &point.Time); err != nil {
				return fmt.Errorf("time: %w", err)
			}
			continue
		}
		var count *int
		if err := json.Unmarshal(raw, &count); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if count == nil {
			return fmt.Errorf("%s: null count", key)
		}
		point.Occupancy[key] = *count
	}

	*p = point
	return nil
}

// Series is the chart payload. Simulated is always set since occupancy is
// generated, not measured; Fallback marks the built-in series.
type Series struct {
	Points    []SeriesPoint `json:"points"`
	Simulated bool          `json:"simulated"`
	Fallback  bool          `json:"fallback"`
}

// FallbackSeries is shown when the generated series cannot be obtained
func FallbackSeries() []SeriesPoint {
	return []SeriesPoint{
		{Time: "08:00", Occupancy: map[string]int{"North Spine Plaza": 10, "The Hive": 5, "South Spine Canteen": 8}},
		{Time: "12:00", Occupancy: map[string]int{"North Spine Plaza": 50, "The Hive": 35, "South Spine Canteen": 45}},
		{Time: "18:00", Occupancy: map[string]int{"North Spine Plaza": 40, "The Hive": 25, "South Spine Canteen": 30}},
	}
}
