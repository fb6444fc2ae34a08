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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/auth/sign-in": {
            "post": {
                "description": "Exchanges the configured operator credentials for a bearer token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Operator sign-in",
                "parameters": [{"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}],
                "responses": {
                    "200": {"description": "token", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/playback/play": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "No-op when the dataset is empty, playback is running or finished.",
                "produces": ["application/json"],
                "tags": ["playback"],
                "summary": "Start playback",
                "responses": {"200": {"description": "status, state", "schema": {"type": "object"}}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/playback/pause": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["playback"],
                "summary": "Pause playback",
                "responses": {"200": {"description": "status, state", "schema": {"type": "object"}}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/playback/toggle": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["playback"],
                "summary": "Toggle play/pause",
                "responses": {"200": {"description": "status, state", "schema": {"type": "object"}}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/playback/reset": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Rewinds to the first row and clears the alert.",
                "produces": ["application/json"],
                "tags": ["playback"],
                "summary": "Reset playback",
                "responses": {"200": {"description": "status, state", "schema": {"type": "object"}}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/playback/state": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["playback"],
                "summary": "Get playback state",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PlaybackSnapshot"}}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/dataset": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Source, row counts and load error of the dataset loaded at startup.",
                "produces": ["application/json"],
                "tags": ["dataset"],
                "summary": "Dataset summary",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DatasetInfo"}}, "401": {"description": "Unauthorized"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/api/v1/dataset/readings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dataset"],
                "summary": "List readings",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "First row", "name": "offset", "in": "query"},
                    {"type": "integer", "default": 50, "description": "Page size (max 500)", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ReadingsPage"}}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/logs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Filter logs by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). If 'to' is date-only, it is treated as end-of-day inclusive.",
                "produces": ["application/json"],
                "tags": ["logs"],
                "summary": "List logs",
                "parameters": [
                    {"type": "string", "description": "Start of range", "name": "from", "in": "query"},
                    {"type": "string", "description": "End of range", "name": "to", "in": "query"},
                    {"enum": ["PLAY", "PAUSE", "RESET", "FINISHED", "ALERT", "DATASET_LOADED", "DATASET_FAILED"], "type": "string", "description": "Event type", "name": "type", "in": "query"}
                ],
                "responses": {"200": {"description": "count, events", "schema": {"type": "object"}}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}, "500": {"description": "Internal Server Error"}}
            }
        }
    },
    "definitions": {
        "handlers.authCredentials": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {"password": {"type": "string"}, "username": {"type": "string"}}
        },
        "models.Alert": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "severity": {"type": "string", "enum": ["info", "warning", "error"]}}
        },
        "models.SensorReading": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string"},
                "produce_type": {"type": "string", "enum": ["Tomato Slices", "Habanero Peppers", "Onion Slices"]},
                "temperature_c": {"type": "number"},
                "humidity_pct": {"type": "number"},
                "pressure_hpa": {"type": "number"},
                "dryness_pct": {"type": "number"},
                "anomaly_flag": {"type": "boolean"}
            }
        },
        "models.PlaybackSnapshot": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["idle", "playing", "paused", "finished"]},
                "index": {"type": "integer"},
                "is_playing": {"type": "boolean"},
                "total": {"type": "integer"},
                "reading": {"$ref": "#/definitions/models.SensorReading"},
                "bucket": {"type": "string", "enum": ["fresh", "partially_dry", "fully_dry", "mold", "discoloration"]},
                "image_url": {"type": "string"},
                "alert": {"$ref": "#/definitions/models.Alert"},
                "updated_at": {"type": "string"}
            }
        },
        "models.DatasetInfo": {
            "type": "object",
            "properties": {
                "source": {"type": "string"},
                "total_rows": {"type": "integer"},
                "dropped_rows": {"type": "integer"},
                "loaded": {"type": "boolean"},
                "error_kind": {"type": "string", "enum": ["FETCH_FAILED", "PARSE_FAILED"]},
                "error": {"type": "string"},
                "loaded_at": {"type": "string"}
            }
        },
        "service.ReadingsPage": {
            "type": "object",
            "properties": {
                "offset": {"type": "integer"},
                "limit": {"type": "integer"},
                "total": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.SensorReading"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dehydration Monitor API",
	Description:      "Replays recorded dehydrator sensor data and exposes playback controls.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
