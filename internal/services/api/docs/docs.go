// Package docs holds the swagger document for the GSA API
//
// Regenerate with: swag init -g cmd/gsa-api/main.go -o internal/services/api/docs --v3.1=false
package docs

import "github.com/swaggo/swag/v2"

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
        "/entities/{entity_type}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Entities"],
                "summary": "List entities of a type through the management protocol backend",
                "parameters": [
                    {"type": "string", "description": "Entity type", "name": "entity_type", "in": "path", "required": true},
                    {"type": "string", "description": "Filter term, the type default applies when empty", "name": "filter", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Page"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/filters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Filters"],
                "summary": "List saved filters",
                "parameters": [
                    {"type": "string", "description": "Filter over saved filters", "name": "filter", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ListResult"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Filters"],
                "summary": "Save a filter",
                "parameters": [
                    {"description": "Filter to save", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.SaveInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.SavedFilter"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/filters/compose": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Filters"],
                "summary": "Combine two filters with and, or or not",
                "parameters": [
                    {"description": "Operands", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.ComposeInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ComposeResult"}}
                }
            }
        },
        "/filters/defaults/{entity_type}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Filters"],
                "summary": "Get the default filter of an entity type",
                "parameters": [
                    {"type": "string", "description": "Entity type", "name": "entity_type", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Default"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Filters"],
                "summary": "Set or clear the default filter of an entity type",
                "parameters": [
                    {"type": "string", "description": "Entity type", "name": "entity_type", "in": "path", "required": true},
                    {"description": "Saved filter id, empty clears", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.DefaultInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Default"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/filters/normalize": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Filters"],
                "summary": "Parse a filter and return its canonical parts",
                "parameters": [
                    {"description": "Filter term", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.FilterInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Normalized"}}
                }
            }
        },
        "/filters/page": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Filters"],
                "summary": "Build the refetch parameters for the first, next, previous or last page",
                "parameters": [
                    {"description": "Filter, cursors and direction", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.PageInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pagination.Params"}}
                }
            }
        },
        "/filters/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Filters"],
                "summary": "Get a saved filter",
                "parameters": [
                    {"type": "string", "description": "Filter id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SavedFilter"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Filters"],
                "summary": "Replace a saved filter",
                "parameters": [
                    {"type": "string", "description": "Filter id", "name": "id", "in": "path", "required": true},
                    {"description": "New contents", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.SaveInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SavedFilter"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Filters"],
                "summary": "Delete a saved filter",
                "parameters": [
                    {"type": "string", "description": "Filter id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/meta/filter-keywords": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Filter keywords that control presentation rather than selection",
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/http.KeywordsResponse"}}
                }
            }
        },
        "/meta/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/http.HealthResponse"}}
                }
            }
        },
        "/meta/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Readiness check with dependency pings",
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/http.ReadyResponse"}}
                }
            }
        },
        "/meta/service": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Service info and uptime",
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/http.ServiceResponse"}}
                }
            }
        },
        "/meta/version": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Build and version info",
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/version.BuildInfo"}}
                }
            }
        }
    },
    "definitions": {
        "domain.ComposeInput": {
            "type": "object",
            "required": ["op"],
            "properties": {
                "left": {"type": "string", "example": "severity>7"},
                "right": {"type": "string", "example": "name~web"},
                "op": {"type": "string", "enum": ["and", "or", "not"]}
            }
        },
        "domain.ComposeResult": {
            "type": "object",
            "properties": {
                "filter": {"type": "string", "example": "severity>7 and name~web"}
            }
        },
        "domain.Counts": {
            "type": "object",
            "properties": {
                "first": {"type": "integer", "example": 1},
                "rows": {"type": "integer", "example": 50},
                "length": {"type": "integer", "example": 50},
                "filtered": {"type": "integer", "example": 120}
            }
        },
        "domain.Default": {
            "type": "object",
            "properties": {
                "entity_type": {"type": "string", "example": "task"},
                "filter": {"$ref": "#/definitions/domain.SavedFilter"}
            }
        },
        "domain.DefaultInput": {
            "type": "object",
            "properties": {
                "filter_id": {"type": "string", "format": "uuid"}
            }
        },
        "domain.FilterInput": {
            "type": "object",
            "properties": {
                "filter": {"type": "string", "example": "name~web rows=10 first=1"}
            }
        },
        "domain.Links": {
            "type": "object",
            "properties": {
                "first": {"type": "string"},
                "previous": {"type": "string"},
                "next": {"type": "string"},
                "last": {"type": "string"}
            }
        },
        "domain.ListResult": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.SavedFilter"}},
                "counts": {"$ref": "#/definitions/domain.Counts"},
                "filter": {"type": "string", "example": "first=1 rows=50 sort=name"}
            }
        },
        "domain.Normalized": {
            "type": "object",
            "properties": {
                "canonical": {"type": "string"},
                "criteria": {"type": "string"},
                "settings": {"type": "string"},
                "terms": {"type": "array", "items": {"$ref": "#/definitions/filter.Term"}},
                "sort_by": {"type": "string"},
                "sort_order": {"type": "string"},
                "first": {"type": "integer"},
                "rows": {"type": "integer"}
            }
        },
        "domain.Page": {
            "type": "object",
            "properties": {
                "entity_type": {"type": "string", "example": "task"},
                "items": {"type": "array", "items": {"type": "object"}},
                "counts": {"type": "object"},
                "filter": {"type": "string"},
                "filter_id": {"type": "string"},
                "defaulted": {"type": "boolean"},
                "links": {"$ref": "#/definitions/domain.Links"}
            }
        },
        "domain.PageInput": {
            "type": "object",
            "required": ["direction"],
            "properties": {
                "filter": {"type": "string"},
                "page_info": {"$ref": "#/definitions/pagination.PageInfo"},
                "direction": {"type": "string", "enum": ["first", "next", "previous", "last"]}
            }
        },
        "domain.SaveInput": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 200, "minLength": 1},
                "comment": {"type": "string", "maxLength": 2000},
                "type": {"type": "string", "example": "task"},
                "term": {"type": "string", "maxLength": 4000}
            }
        },
        "domain.SavedFilter": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "name": {"type": "string", "example": "High severity"},
                "comment": {"type": "string"},
                "type": {"type": "string", "example": "result"},
                "term": {"type": "string", "example": "severity>7 rows=10 first=1 sort-reverse=severity"},
                "created_at": {"type": "string", "format": "date-time"},
                "modified_at": {"type": "string", "format": "date-time"}
            }
        },
        "filter.Term": {
            "type": "object",
            "properties": {
                "keyword": {"type": "string", "example": "severity"},
                "relation": {"type": "string", "example": ">"},
                "value": {"example": 7}
            }
        },
        "pagination.PageInfo": {
            "type": "object",
            "properties": {
                "start_cursor": {"type": "string"},
                "end_cursor": {"type": "string"},
                "last_page_cursor": {"type": "string"},
                "has_next_page": {"type": "boolean"},
                "has_previous_page": {"type": "boolean"}
            }
        },
        "pagination.Params": {
            "type": "object",
            "properties": {
                "filter_string": {"type": "string"},
                "after": {"type": "string"},
                "before": {"type": "string"},
                "first": {"type": "integer"},
                "last": {"type": "integer"}
            }
        },
        "http.HealthResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean", "example": true},
                "service": {"type": "string", "example": "gsa-api"},
                "started": {"type": "string"},
                "now": {"type": "string"}
            }
        },
        "http.KeywordsResponse": {
            "type": "object",
            "properties": {
                "settings": {"type": "array", "items": {"type": "string"}},
                "default_rows": {"type": "integer", "example": 50}
            }
        },
        "http.ReadyCheck": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "pg"},
                "status": {"type": "string", "example": "ok"},
                "latency_ms": {"type": "integer", "example": 3},
                "error": {"type": "string"}
            }
        },
        "http.ReadyResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "checks": {"type": "array", "items": {"$ref": "#/definitions/http.ReadyCheck"}},
                "now": {"type": "string"}
            }
        },
        "http.ServiceResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "gsa-api"},
                "started": {"type": "string"},
                "uptime": {"type": "integer", "example": 300}
            }
        },
        "version.BuildInfo": {
            "type": "object",
            "properties": {
                "service": {"type": "string"},
                "version": {"type": "string"},
                "commit": {"type": "string"},
                "date": {"type": "string"},
                "dirty": {"type": "boolean"},
                "go": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "GSA API",
	Description:      "Filter engine, saved filters and filtered entity listing for the management protocol backend",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
