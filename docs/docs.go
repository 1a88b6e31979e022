// Package docs holds the Swagger document served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Store unreachable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/parse": {"post": {"tags": ["Engine"], "summary": "Parse task text", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/dates/resolve": {"post": {"tags": ["Engine"], "summary": "Resolve a date expression", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/recurrence/parse": {"post": {"tags": ["Engine"], "summary": "Parse a recurrence code", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/urgency/score": {"post": {"tags": ["Engine"], "summary": "Score urgency", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/tasks": {
            "post": {"tags": ["Tasks"], "summary": "Create tasks from text", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "get": {"tags": ["Tasks"], "summary": "List tasks by urgency", "produces": ["application/json"], "parameters": [{"type": "string", "name": "status", "in": "query"}, {"type": "string", "name": "project", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/tasks/{uuid}": {"get": {"tags": ["Tasks"], "summary": "Get task detail", "parameters": [{"type": "string", "name": "uuid", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/tasks/{uuid}/dependencies": {"post": {"tags": ["Tasks"], "summary": "Add a dependency", "parameters": [{"type": "string", "name": "uuid", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict - dependency cycle"}}}},
        "/api/v1/tasks/{uuid}/instances": {"post": {"tags": ["Tasks"], "summary": "Generate recurring instances", "parameters": [{"type": "string", "name": "uuid", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/tasks/{uuid}/complete": {"post": {"tags": ["Tasks"], "summary": "Complete a task", "parameters": [{"type": "string", "name": "uuid", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict - task is not pending"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Task Intelligence API",
	Description:      "Task text parsing, date resolution, urgency ranking, recurrence and dependency checks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
