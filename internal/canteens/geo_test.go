package canteens

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{name: "same point", lat1: 1.3479, lon1: 103.6804, lat2: 1.3479, lon2: 103.6804, want: 0, tolerance: 1e-12},
		{name: "one degree of longitude on the equator", lat1: 0, lon1: 0, lat2: 0, lon2: 1, want: 111.195, tolerance: 0.001},
		{name: "pole to pole", lat1: 90, lon1: 0, lat2: -90, lon2: 0, want: math.Pi * earthRadiusKm, tolerance: 1e-6},
		{name: "north spine to the hive", lat1: 1.3479, lon1: 103.6804, lat2: 1.3501, lon2: 103.6833, want: 0.4047, tolerance: 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Haversine() = %v, want %v ± %v", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestNearestEmpty(t *testing.T) {
	if _, err := Nearest(1, 1, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Nearest(nil) error = %v, want ErrInvalidInput", err)
	}
}

func TestNearestCampus(t *testing.T) {
	dir := DefaultDirectory()

	tests := []struct {
		name     string
		lat, lon float64
		want     string
	}{
		{name: "next to north spine", lat: 1.3480, lon: 103.6805, want: "North Spine Plaza"},
		{name: "next to the hive", lat: 1.3502, lon: 103.6834, want: "The Hive"},
		{name: "south of campus", lat: 1.3400, lon: 103.6826, want: "South Spine Canteen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dir.Nearest(tt.lat, tt.lon)
			if err != nil {
				t.Fatalf("Nearest() error = %v", err)
			}
			if got.Name != tt.want {
				t.Errorf("Nearest() = %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestNearestSingleCandidate(t *testing.T) {
	only := Canteen{Name: "A", Latitude: 1.0, Longitude: 1.0}
	points := [][2]float64{{1, 1}, {-45, 170}, {89.9, -179.9}, {0, 0}}

	for _, p := range points {
		got, err := Nearest(p[0], p[1], []Canteen{only})
		if err != nil {
			t.Fatalf("Nearest() error = %v", err)
		}
		if got != only {
			t.Errorf("Nearest(%v) = %+v, want %+v", p, got, only)
		}
	}
}

func TestNearestTieKeepsFirst(t *testing.T) {
	first := Canteen{Name: "First", Latitude: 1.35, Longitude: 103.68}
	second := Canteen{Name: "Second", Latitude: 1.35, Longitude: 103.68}
	points := [][2]float64{{1.35, 103.68}, {0, 0}, {-10, 50}, {60, -120}}

	for _, p := range points {
		got, err := Nearest(p[0], p[1], []Canteen{first, second})
		if err != nil {
			t.Fatalf("Nearest() error = %v", err)
		}
		if got.Name != "First" {
			t.Errorf("Nearest(%v) = %q, want First", p, got.Name)
		}

		got, _ = Nearest(p[0], p[1], []Canteen{second, first})
		if got.Name != "Second" {
			t.Errorf("Nearest(%v) with reversed order = %q, want Second", p, got.Name)
		}
	}
}

func TestNearestIsMinimal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(6)
		candidates := make([]Canteen, n)
		for j := range candidates {
			candidates[j] = Canteen{
				Name:      string(rune('A' + j)),
				Latitude:  rng.Float64()*180 - 90,
				Longitude: rng.Float64()*360 - 180,
			}
		}
		lat := rng.Float64()*180 - 90
		lon := rng.Float64()*360 - 180

		got, err := Nearest(lat, lon, candidates)
		if err != nil {
			t.Fatalf("Nearest() error = %v", err)
		}

		found := false
		best := Haversine(lat, lon, got.Latitude, got.Longitude)
		for _, c := range candidates {
			if c == got {
				found = true
			}
			if Haversine(lat, lon, c.Latitude, c.Longitude) < best {
				t.Fatalf("iteration %d: %q is closer than chosen %q", i, c.Name, got.Name)
			}
		}
		if !found {
			t.Fatalf("iteration %d: %+v is not among the candidates", i, got)
		}
	}
}

func TestDirectoryLookup(t *testing.T) {
	dir := DefaultDirectory()

	if c, ok := dir.Lookup("  the hive "); !ok || c.Name != "The Hive" {
		t.Errorf("Lookup(the hive) = %+v, %v", c, ok)
	}
	if _, ok := dir.Lookup("Koufu"); ok {
		t.Error("Lookup(Koufu) found an unknown canteen")
	}

	names := dir.Names()
	want := []string{"North Spine Plaza", "The Hive", "South Spine Canteen"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
