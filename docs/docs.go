// Package docs registers the swagger document served at /swagger-doc.json.
// Maintained by hand; keep in sync with the handler annotations (or
// regenerate with `swag init -g cmd/api/main.go`).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{escape .Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Page view model",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PageResponse"}}
                }
            }
        },
        "/signup": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [
                    {"type": "string", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "name": "password-repeat", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "See Other"}}
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"type": "string", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "See Other"}}
            }
        },
        "/logout": {
            "get": {
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {"303": {"description": "See Other"}}
            }
        },
        "/profile": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["profile"],
                "summary": "Update profile",
                "parameters": [
                    {"type": "string", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "name": "name", "in": "formData"},
                    {"type": "string", "name": "phone", "in": "formData"}
                ],
                "responses": {"303": {"description": "See Other"}}
            }
        },
        "/points": {
            "get": {
                "produces": ["application/json"],
                "tags": ["points"],
                "summary": "Current points ledger",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PointsResponse"}}
                }
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["points"],
                "summary": "Add points for a store",
                "parameters": [
                    {"type": "string", "name": "id", "in": "formData", "required": true},
                    {"type": "integer", "name": "points", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "See Other"}}
            }
        },
        "/stores": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stores"],
                "summary": "Participating stores",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListStoresResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.PageResponse": {
            "type": "object",
            "properties": {
                "logged_in": {"type": "boolean"},
                "user": {"$ref": "#/definitions/dto.UserResponse"},
                "points": {"$ref": "#/definitions/dto.PointsResponse"},
                "flash": {"type": "string"}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "card_number": {"type": "string"}
            }
        },
        "dto.PointsResponse": {
            "type": "object",
            "properties": {
                "card_number": {"type": "string"},
                "stores": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "dto.ListStoresResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.Store"}}
            }
        },
        "domain.Store": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "website": {"type": "string"},
                "promotion": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Loyalty API",
	Description:      "Loyalty-card backend: signup, login, profile, per-store points.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
