package aiquiz

import "google.golang.org/genai"

const jsonMIMEType = "application/json"

var questionFields = []string{"id", "text", "options", "correctAnswerIndex", "explanation"}

// QuestionsSchema describes the JSON array of questions the model must return.
func QuestionsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"id":   {Type: genai.TypeInteger},
				"text": {Type: genai.TypeString},
				"options": {
					Type:     genai.TypeArray,
					Items:    &genai.Schema{Type: genai.TypeString},
					MinItems: genai.Ptr[int64](optionCount),
					MaxItems: genai.Ptr[int64](optionCount),
				},
				"correctAnswerIndex": {Type: genai.TypeInteger},
				"explanation":        {Type: genai.TypeString},
			},
			PropertyOrdering: questionFields,
			Required:         questionFields,
		},
	}
}
