package predictions

// PredictRequest is the body of POST /predictions. Emptiness is checked by
// the service so the client gets the form validation message.
type PredictRequest struct {
	Canteen string `json:"canteen" example:"North Spine Plaza"`
	Time    string `json:"time" example:"12:30"`
}
