package canteens

// NearestQuery binds the coordinates of GET /canteens/nearest. Pointers let
// a zero coordinate through the required check.
type NearestQuery struct {
	Latitude  *float64 `form:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"longitude" binding:"required,min=-180,max=180"`
}
