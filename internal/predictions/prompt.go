package predictions

import (
	"fmt"

	"google.golang.org/genai"
)

// BuildPrompt renders the natural-language prediction prompt. The time is
// passed through unparsed.
func BuildPrompt(canteen, timeOfDay string) string {
	return fmt.Sprintf("Based on typical crowd patterns for a university campus, predict the queue length and estimated wait time for the \"%s\" canteen at %s. Provide a brief justification. Consider factors like meal times (breakfast, lunch, dinner) and off-peak hours.", canteen, timeOfDay)
}

// ResponseSchema is the output shape imposed on the model
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"queueLength": {
				Type:        genai.TypeString,
				Description: "A descriptive queue length, e.g., 'Short', 'Medium', 'Long', 'Very Long'",
			},
			"waitTimeMinutes": {
				Type:        genai.TypeInteger,
				Description: "Estimated wait time in minutes, as a whole number.",
			},
			"justification": {
				Type:        genai.TypeString,
				Description: "A brief, user-friendly explanation for the prediction.",
			},
		},
		Required:         []string{"queueLength", "waitTimeMinutes", "justification"},
		PropertyOrdering: []string{"queueLength", "waitTimeMinutes", "justification"},
	}
}
