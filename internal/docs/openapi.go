// Package docs serves the OpenAPI description of the HTTP API.
package docs

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkowalczyk/flashcards/internal/httputil"
)

// Handler serves the OpenAPI document. The document is assembled once at
// construction; the error responses on mutating operations are enumerated
// from the status resolver so the docs always match runtime behavior.
type Handler struct {
	document gin.H
}

// NewHandler builds the OpenAPI document from the resolver's known statuses.
func NewHandler(resolver *httputil.StatusResolver) *Handler {
	return &Handler{document: buildDocument(resolver)}
}

// OpenAPI handles GET /openapi.json.
func (h *Handler) OpenAPI(c *gin.Context) {
	c.JSON(http.StatusOK, h.document)
}

func buildDocument(resolver *httputil.StatusResolver) gin.H {
	errorResponses := errorResponsesFor(resolver)

	registerOperation := func(operationID, summary string) gin.H {
		responses := gin.H{
			"201": gin.H{
				"description": "Created",
				"content": gin.H{
					"application/json": gin.H{
						"schema": gin.H{"$ref": "#/components/schemas/UserResponse"},
					},
				},
			},
		}
		for status, response := range errorResponses {
			responses[status] = response
		}

		return gin.H{
			"post": gin.H{
				"operationId": operationID,
				"summary":     summary,
				"requestBody": gin.H{
					"required": true,
					"content": gin.H{
						"application/json": gin.H{
							"schema": gin.H{"$ref": "#/components/schemas/RegisterUserRequest"},
						},
					},
				},
				"responses": responses,
			},
		}
	}

	return gin.H{
		"openapi": "3.0.3",
		"info": gin.H{
			"title":   "Flashcards API",
			"version": "1.0.0",
		},
		"paths": gin.H{
			"/api/users":         registerOperation("registerUser", "Register a new user"),
			"/api/auth/register": registerOperation("registerUserAlias", "Register a new user"),
			"/hello": gin.H{
				"get": gin.H{
					"operationId": "hello",
					"summary":     "Localized greeting",
					"responses": gin.H{
						"200": gin.H{"description": "OK"},
					},
				},
			},
			"/": gin.H{
				"get": gin.H{
					"operationId": "root",
					"summary":     "Localized welcome message",
					"responses": gin.H{
						"200": gin.H{"description": "OK"},
					},
				},
			},
		},
		"components": gin.H{
			"schemas": gin.H{
				"RegisterUserRequest": gin.H{
					"type":     "object",
					"required": []string{"username", "email", "password"},
					"properties": gin.H{
						"username": gin.H{"type": "string", "minLength": 4, "maxLength": 16},
						"email":    gin.H{"type": "string", "format": "email"},
						"password": gin.H{"type": "string", "format": "password"},
					},
				},
				"UserResponse": gin.H{
					"type": "object",
					"properties": gin.H{
						"username": gin.H{"type": "string"},
						"email":    gin.H{"type": "string"},
					},
				},
				"ApiError": gin.H{
					"type": "object",
					"properties": gin.H{
						"timestamp": gin.H{"type": "string", "format": "date-time"},
						"status":    gin.H{"type": "integer"},
						"code":      gin.H{"type": "string"},
						"message":   gin.H{"type": "string"},
						"path":      gin.H{"type": "string"},
						"errors": gin.H{
							"type": "array",
							"items": gin.H{
								"type": "object",
								"properties": gin.H{
									"field":   gin.H{"type": "string"},
									"message": gin.H{"type": "string"},
								},
							},
						},
					},
				},
			},
		},
	}
}

// errorResponsesFor maps every status the resolver can produce to an ApiError
// response entry, keyed by status code string.
func errorResponsesFor(resolver *httputil.StatusResolver) map[string]gin.H {
	responses := make(map[string]gin.H)
	for _, known := range resolver.KnownStatuses() {
		responses[strconv.Itoa(known.Status)] = gin.H{
			"description": known.Description,
			"content": gin.H{
				"application/json": gin.H{
					"schema": gin.H{"$ref": "#/components/schemas/ApiError"},
				},
			},
		}
	}
	return responses
}
