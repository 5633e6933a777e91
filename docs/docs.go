// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ai-quiz/analysis": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ai-quiz"],
                "summary": "Summarize a quiz result",
                "parameters": [
                    {
                        "description": "Quiz result",
                        "name": "result",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/aiquiz.PerformanceResult"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/aiquiz.AnalysisResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ai-quiz/questions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ai-quiz"],
                "summary": "Generate quiz questions",
                "parameters": [
                    {
                        "description": "Quiz configuration",
                        "name": "config",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/aiquiz.QuizConfig"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "array", "items": {"$ref": "#/definitions/aiquiz.Question"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "aiquiz.AnalysisResponse": {
            "type": "object",
            "properties": {"analysis": {"type": "string"}}
        },
        "aiquiz.PerformanceResult": {
            "type": "object",
            "properties": {
                "score": {"type": "number"},
                "subTopic": {"type": "string"},
                "totalQuestions": {"type": "number"}
            }
        },
        "aiquiz.Question": {
            "type": "object",
            "properties": {
                "correctAnswerIndex": {"type": "integer"},
                "explanation": {"type": "string"},
                "id": {"type": "integer"},
                "options": {"type": "array", "items": {"type": "string"}},
                "text": {"type": "string"}
            }
        },
        "aiquiz.QuizConfig": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "difficulty": {"type": "string"},
                "questionCount": {"type": "integer"},
                "subTopic": {"type": "string"},
                "topic": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Chronos AI Quiz API",
	Description:      "Generates quiz questions and performance summaries with Gemini.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
