// Package docs registers the OpenAPI document served at /docs/*.
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
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analytics"],
                "summary": "Events inside a time window",
                "parameters": [
                    {"type": "integer", "name": "from", "in": "query", "required": true},
                    {"type": "integer", "name": "to", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Record an ad interaction",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/events/batch": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Record a batch of ad interactions",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analytics"],
                "summary": "Global view/click counts",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/analytics/packages/{packageId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analytics"],
                "summary": "Per-package analytics",
                "parameters": [
                    {"type": "string", "name": "packageId", "in": "path", "required": true},
                    {"type": "integer", "name": "from", "in": "query"},
                    {"type": "integer", "name": "to", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/analytics/ads/{adId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analytics"],
                "summary": "Per-ad analytics",
                "parameters": [
                    {"type": "string", "name": "adId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/analytics/daily-views": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analytics"],
                "summary": "Daily view counts",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "AdTrack Service API",
	Description:      "Records ad interaction events and serves aggregate analytics over them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
