package canteens

import "strings"

// Canteen is a named dining venue at a fixed coordinate
type Canteen struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Directory is the ordered set of known canteens. Order matters: it is the
// tie-break order for Nearest.
type Directory struct {
	canteens []Canteen
}

func NewDirectory(canteens ...Canteen) *Directory {
	list := make([]Canteen, len(canteens))
	copy(list, canteens)
	return &Directory{canteens: list}
}

// DefaultDirectory returns the campus canteens
func DefaultDirectory() *Directory {
	return NewDirectory(
		Canteen{Name: "North Spine Plaza", Latitude: 1.3479, Longitude: 103.6804},
		Canteen{Name: "The Hive", Latitude: 1.3501, Longitude: 103.6833},
		Canteen{Name: "South Spine Canteen", Latitude: 1.3431, Longitude: 103.6826},
	)
}

// All returns a copy of the canteens in directory order
func (d *Directory) All() []Canteen {
	list := make([]Canteen, len(d.canteens))
	copy(list, d.canteens)
	return list
}

// Names returns canteen names in directory order
func (d *Directory) Names() []string {
	names := make([]string, 0, len(d.canteens))
	for _, c := range d.canteens {
		names = append(names, c.Name)
	}
	return names
}

// Lookup finds a canteen by name, ignoring case and surrounding whitespace
func (d *Directory) Lookup(name string) (Canteen, bool) {
	name = strings.TrimSpace(name)
	for _, c := range d.canteens {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Canteen{}, false
}

// Nearest resolves the closest canteen in the directory
func (d *Directory) Nearest(lat, lon float64) (Canteen, error) {
	return Nearest(lat, lon, d.canteens)
}
