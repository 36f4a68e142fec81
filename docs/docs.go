// Package docs holds the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/search": {
            "get": {
                "description": "Geocodes the query with proximity to lat/lon and enriches every match with travel duration and distance. Duration and distance are null when routing failed for that place.",
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "Search places near a point",
                "parameters": [
                    {"type": "string", "description": "Free-text place query", "name": "query", "in": "query", "required": true},
                    {"type": "number", "description": "Origin latitude", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Origin longitude", "name": "lon", "in": "query", "required": true},
                    {"type": "string", "default": "driving", "description": "Travel mode (driving, walking, cycling)", "name": "mode", "in": "query"},
                    {"type": "integer", "default": 5, "description": "Maximum number of results (1-10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.ResultRecord"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/generate_pdf": {
            "post": {
                "description": "Accepts the records returned by /search and writes a paginated PDF. The returned url serves the document.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Report"],
                "summary": "Render places into a PDF report",
                "parameters": [
                    {"description": "Places to include", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ReportRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ReportResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/api/route": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "Travel metrics between two points",
                "parameters": [
                    {"type": "number", "name": "from_lat", "in": "query", "required": true},
                    {"type": "number", "name": "from_lon", "in": "query", "required": true},
                    {"type": "number", "name": "to_lat", "in": "query", "required": true},
                    {"type": "number", "name": "to_lon", "in": "query", "required": true},
                    {"type": "string", "default": "driving", "name": "mode", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RouteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["History"],
                "summary": "Recent searches",
                "parameters": [
                    {"type": "integer", "description": "Maximum number of entries", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HistoryResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["History"],
                "summary": "Forget recent searches",
                "responses": {
                    "204": {"description": "No Content"},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/saved-searches": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Saved searches"],
                "summary": "List saved searches",
                "parameters": [
                    {"type": "integer", "default": 50, "description": "Maximum number of entries", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SavedSearchListResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Saved searches"],
                "summary": "Save a search",
                "parameters": [
                    {"description": "Search to save", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SavedSearchRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.SavedSearch"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/saved-searches/{id}": {
            "delete": {
                "tags": ["Saved searches"],
                "summary": "Delete a saved search",
                "parameters": [
                    {"type": "string", "description": "Saved search ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/saved-searches/{id}/results": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Saved searches"],
                "summary": "Re-run a saved search",
                "parameters": [
                    {"type": "string", "description": "Saved search ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.ResultRecord"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.ResultRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "place_name": {"type": "string"},
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "duration": {"type": "number", "x-nullable": true},
                "distance": {"type": "number", "x-nullable": true},
                "category": {"type": "string"}
            }
        },
        "domain.SavedSearch": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "query": {"type": "string"},
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "mode": {"type": "string"},
                "limit": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "domain.HistoryEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "query": {"type": "string"},
                "mode": {"type": "string"},
                "limit": {"type": "integer"},
                "origin_geohash": {"type": "string"},
                "result_count": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "dto.ReportRequest": {
            "type": "object",
            "properties": {
                "places": {"type": "array", "items": {"$ref": "#/definitions/domain.ResultRecord"}}
            }
        },
        "dto.ReportResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "filename": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "dto.RouteResponse": {
            "type": "object",
            "properties": {
                "mode": {"type": "string"},
                "duration": {"type": "number", "x-nullable": true},
                "distance": {"type": "number", "x-nullable": true}
            }
        },
        "dto.HistoryResponse": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/domain.HistoryEntry"}},
                "total": {"type": "integer"}
            }
        },
        "dto.SavedSearchRequest": {
            "type": "object",
            "required": ["name", "query", "lat", "lon"],
            "properties": {
                "name": {"type": "string", "maxLength": 100},
                "query": {"type": "string", "maxLength": 200},
                "lat": {"type": "number", "maximum": 90, "minimum": -90},
                "lon": {"type": "number", "maximum": 180, "minimum": -180},
                "mode": {"type": "string", "enum": ["driving", "walking", "cycling"]},
                "limit": {"type": "integer", "minimum": 1}
            }
        },
        "dto.SavedSearchListResponse": {
            "type": "object",
            "properties": {
                "saved_searches": {"type": "array", "items": {"$ref": "#/definitions/domain.SavedSearch"}},
                "total": {"type": "integer"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "provider": {"type": "string"},
                "token_configured": {"type": "boolean"},
                "time": {"type": "string"},
                "dependencies": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Place Search Service API",
	Description:      "Searches places near a point through Mapbox (or Google Maps), enriches every match with travel duration and distance, and renders result lists into PDF reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
