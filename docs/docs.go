// Package docs provides generated swagger documentation.
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
        "/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Login",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/signup": {
            "post": {
                "tags": ["Auth"],
                "summary": "Sign up",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/add-fuel-record": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Fuel"],
                "summary": "Record fuel purchase",
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/vehicle-locations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["API"],
                "summary": "Vehicle locations",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/maintenance-alerts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["API"],
                "summary": "Maintenance alerts",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/driver-performance/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["API"],
                "summary": "Driver performance history",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Fleet Management API",
	Description:      "Fleet record keeping: vehicles, drivers, maintenance, fuel.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
