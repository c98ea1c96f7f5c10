package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"queuesmart/internal/canteens"
	"queuesmart/pkg/llm"
	"queuesmart/pkg/logger"

	"google.golang.org/genai"
)

type fakeResponder struct {
	reply  string
	err    error
	prompt string
	schema *genai.Schema
}

func (f *fakeResponder) Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	f.prompt = prompt
	f.schema = schema
	return f.reply, f.err
}

const validReply = `[
	{"time":"08:00","North Spine Plaza":12,"The Hive":4,"South Spine Canteen":9},
	{"time":"10:00","North Spine Plaza":20,"The Hive":10,"South Spine Canteen":15},
	{"time":"12:00","North Spine Plaza":55,"The Hive":38,"South Spine Canteen":47},
	{"time":"14:00","North Spine Plaza":25,"The Hive":15,"South Spine Canteen":18},
	{"time":"16:00","North Spine Plaza":14,"The Hive":9,"South Spine Canteen":11},
	{"time":"18:00","North Spine Plaza":42,"The Hive":27,"South Spine Canteen":33},
	{"time":"20:00","North Spine Plaza":8,"The Hive":3,"South Spine Canteen":0}
]`

func TestSeriesFromResponder(t *testing.T) {
	responder := &fakeResponder{reply: validReply}
	svc := NewService(responder, canteens.DefaultDirectory(), logger.Discard())

	series := svc.Series(context.Background())
	if series.Fallback {
		t.Fatal("Series() fell back on a valid reply")
	}
	if !series.Simulated {
		t.Error("Series() not marked simulated")
	}
	if len(series.Points) != 7 {
		t.Fatalf("len(points) = %d, want 7", len(series.Points))
	}
	if p := series.Points[6]; p.Time != "20:00" || p.Occupancy["South Spine Canteen"] != 0 {
		t.Errorf("last point = %+v", p)
	}

	wantPrompt := `Generate realistic mock live queue data for three canteens ("North Spine Plaza", "The Hive", "South Spine Canteen") for the current day. Provide data points for every 2 hours from 8:00 to 20:00. The data for each point should include the time and the number of people in the queue.`
	if responder.prompt != wantPrompt {
		t.Errorf("prompt = %q", responder.prompt)
	}
	if responder.schema.Type != genai.TypeArray || len(responder.schema.Items.Required) != 4 {
		t.Errorf("schema = %+v", responder.schema)
	}
}

func TestSeriesFallsBack(t *testing.T) {
	tests := []struct {
		name      string
		responder *fakeResponder
	}{
		{name: "responder error", responder: &fakeResponder{err: errors.New("network down")}},
		{name: "not json", responder: &fakeResponder{reply: "here is your data"}},
		{name: "empty array", responder: &fakeResponder{reply: "[]"}},
		{name: "missing canteen", responder: &fakeResponder{reply: `[{"time":"08:00","North Spine Plaza":1,"The Hive":2}]`}},
		{name: "missing time", responder: &fakeResponder{reply: `[{"North Spine Plaza":1,"The Hive":2,"South Spine Canteen":3}]`}},
		{name: "negative count", responder: &fakeResponder{reply: `[{"time":"08:00","North Spine Plaza":-1,"The Hive":2,"South Spine Canteen":3}]`}},
		{name: "string count", responder: &fakeResponder{reply: `[{"time":"08:00","North Spine Plaza":"many","The Hive":2,"South Spine Canteen":3}]`}},
		{name: "null count", responder: &fakeResponder{reply: `[{"time":"08:00","North Spine Plaza":null,"The Hive":2,"South Spine Canteen":3}]`}},
		{name: "unknown canteen", responder: &fakeResponder{reply: `[{"time":"08:00","North Spine Plaza":1,"The Hive":2,"South Spine Canteen":3,"Koufu":9}]`}},
		{name: "object instead of array", responder: &fakeResponder{reply: `{"time":"08:00"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.responder, canteens.DefaultDirectory(), logger.Discard())

			series := svc.Series(context.Background())
			if !series.Fallback || !series.Simulated {
				t.Fatalf("flags = fallback %v simulated %v, want both", series.Fallback, series.Simulated)
			}
			if !reflect.DeepEqual(series.Points, FallbackSeries()) {
				t.Errorf("points = %+v, want fallback series", series.Points)
			}
		})
	}
}

func TestFallbackSeriesValues(t *testing.T) {
	want := []struct {
		time            string
		nsp, hive, south int
	}{
		{"08:00", 10, 5, 8},
		{"12:00", 50, 35, 45},
		{"18:00", 40, 25, 30},
	}

	got := FallbackSeries()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		p := got[i]
		if p.Time != w.time ||
			p.Occupancy["North Spine Plaza"] != w.nsp ||
			p.Occupancy["The Hive"] != w.hive ||
			p.Occupancy["South Spine Canteen"] != w.south {
			t.Errorf("point %d = %+v", i, p)
		}
	}
}

func TestParseReplyErrors(t *testing.T) {
	names := canteens.DefaultDirectory().Names()

	tests := []struct {
		name    string
		reply   string
		wantErr error
	}{
		{name: "blank reply", reply: "  ", wantErr: llm.ErrEmptyReply},
		{name: "numeric rows", reply: "[1,2]", wantErr: llm.ErrMalformedReply},
		{name: "null count", reply: `[{"time":"08:00","North Spine Plaza":null,"The Hive":2,"South Spine Canteen":3}]`, wantErr: llm.ErrMalformedReply},
		{name: "null time", reply: `[{"time":null,"North Spine Plaza":1,"The Hive":2,"South Spine Canteen":3}]`, wantErr: llm.ErrMalformedReply},
		{name: "unknown canteen", reply: `[{"time":"08:00","North Spine Plaza":1,"The Hive":2,"South Spine Canteen":3,"Koufu":9}]`, wantErr: llm.ErrMalformedReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := ParseReply(tt.reply, names)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseReply() error = %v, want %v", err, tt.wantErr)
			}
			if points != nil {
				t.Errorf("ParseReply() points = %+v, want nil", points)
			}
		})
	}
}

func TestSeriesPointJSONIsFlat(t *testing.T) {
	raw, err := json.Marshal(FallbackSeries()[0])
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var row map[string]interface{}
	if err := json.Unmarshal(raw, &row); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if row["time"] != "08:00" || row["The Hive"] != float64(5) || len(row) != 4 {
		t.Errorf("row = %v", row)
	}
}
