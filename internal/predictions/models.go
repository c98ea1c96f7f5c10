package predictions

import "strings"

// Category is the queue-length label chosen by the model. It is an open
// set; only the known labels get a dedicated display tone.
type Category string

const (
	CategoryShort    Category = "Short"
	CategoryMedium   Category = "Medium"
	CategoryLong     Category = "Long"
	CategoryVeryLong Category = "Very Long"
)

type Tone string

const (
	ToneGreen   Tone = "green"
	ToneYellow  Tone = "yellow"
	ToneOrange  Tone = "orange"
	ToneRed     Tone = "red"
	ToneNeutral Tone = "neutral"
)

var categoryTones = map[string]Tone{
	strings.ToLower(string(CategoryShort)):    ToneGreen,
	strings.ToLower(string(CategoryMedium)):   ToneYellow,
	strings.ToLower(string(CategoryLong)):     ToneOrange,
	strings.ToLower(string(CategoryVeryLong)): ToneRed,
}

// Style returns the display tone for the category
func (c Category) Style() Tone {
	if tone, ok := categoryTones[strings.ToLower(strings.TrimSpace(string(c)))]; ok {
		return tone
	}
	return ToneNeutral
}

// Prediction is a decoded model answer
type Prediction struct {
	QueueLength     Category `json:"queueLength"`
	WaitTimeMinutes int      `json:"waitTimeMinutes"`
	Justification   string   `json:"justification"`
}

// Request is the input to a prediction
type Request struct {
	Canteen string `json:"canteen"`
	Time    string `json:"time"`
}
