package dashboard

// FormRequest is the body of PATCH /dashboard/form
type FormRequest struct {
	Canteen *string `json:"canteen" example:"The Hive"`
	Time    *string `json:"time" example:"18:00"`
}

// LocateRequest carries either a position fix or a browser error code
type LocateRequest struct {
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	ErrorCode string   `json:"error_code" example:"PERMISSION_DENIED"`
}

// Locator turns the request into the locator the service consults
func (r LocateRequest) Locator() (Locator, bool) {
	if r.ErrorCode != "" {
		return FailedLocator(ParseLocationErrorCode(r.ErrorCode)), true
	}
	if r.Latitude == nil || r.Longitude == nil {
		return nil, false
	}
	return FixLocator{Latitude: *r.Latitude, Longitude: *r.Longitude}, true
}
