package canteens

type NearestResponse struct {
	Canteen    Canteen `json:"canteen"`
	DistanceKm float64 `json:"distance_km"`
}
