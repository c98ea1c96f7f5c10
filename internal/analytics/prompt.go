package analytics

import (
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/genai"
)

var numberWords = []string{"zero", "one", "two", "three", "four", "five", "six"}

func countWord(n int) string {
	if n >= 0 && n < len(numberWords) {
		return numberWords[n]
	}
	return strconv.Itoa(n)
}

// BuildPrompt asks for today's series at 2-hour steps from 08:00 to 20:00
func BuildPrompt(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, strconv.Quote(name))
	}

	return fmt.Sprintf("Generate realistic mock live queue data for %s canteens (%s) for the current day. Provide data points for every 2 hours from 8:00 to 20:00. The data for each point should include the time and the number of people in the queue.",
		countWord(len(names)), strings.Join(quoted, ", "))
}

// ResponseSchema describes an array of flat rows with one integer per canteen
func ResponseSchema(names []string) *genai.Schema {
	properties := map[string]*genai.Schema{
		"time": {
			Type:        genai.TypeString,
			Description: `Time in HH:MM format (e.g., "08:00")`,
		},
	}
	required := []string{"time"}
	for _, name := range names {
		properties[name] = &genai.Schema{
			Type:        genai.TypeInteger,
			Description: fmt.Sprintf("Number of people in the queue at %s.", name),
		}
		required = append(required, name)
	}

	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type:             genai.TypeObject,
			Properties:       properties,
			Required:         required,
			PropertyOrdering: required,
		},
	}
}
