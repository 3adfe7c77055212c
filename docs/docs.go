// Package docs holds the OpenAPI document served at /api-docs.
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
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        },
        "/users/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.registerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/users/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "parameters": [
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userPageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [
                    {"type": "string", "description": "User id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/users/update/{id}": {
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "string", "description": "User id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/courses": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "List courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.courseView"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Create a course",
                "parameters": [
                    {"description": "Course", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.idResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Get a course",
                "parameters": [
                    {"type": "string", "description": "Course id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.courseView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Update a course",
                "parameters": [
                    {"type": "string", "description": "Course id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.idResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Delete a course",
                "parameters": [
                    {"type": "string", "description": "Course id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.successResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/images": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "List images",
                "parameters": [
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (max 100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Sort field", "name": "sort", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "order", "in": "query"},
                    {"type": "string", "description": "Comma separated fields to return", "name": "select", "in": "query"},
                    {"type": "string", "description": "Case-insensitive search on name and description", "name": "search", "in": "query"},
                    {"type": "string", "description": "Owner id (defaults to the caller)", "name": "user", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.imagePageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Create an image",
                "parameters": [
                    {"description": "Image", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createImageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.idResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/images/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Get an image",
                "parameters": [
                    {"type": "string", "description": "Image id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.imageView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Update an image",
                "parameters": [
                    {"type": "string", "description": "Image id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateImageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.idResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Delete an image",
                "parameters": [
                    {"type": "string", "description": "Image id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.successResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "debug": {"type": "string"}}
        },
        "handler.successResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}}
        },
        "handler.idResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "_id": {"type": "string"}}
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["firstname", "lastname", "username", "email", "password"],
            "properties": {
                "firstname": {"type": "string"},
                "lastname": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.registerResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "id": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "user": {"$ref": "#/definitions/handler.userView"},
                "accessToken": {"type": "string"}
            }
        },
        "handler.updateUserRequest": {
            "type": "object",
            "properties": {
                "firstname": {"type": "string"},
                "lastname": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["user", "admin"]},
                "status": {"type": "string", "enum": ["active", "disabled"]}
            }
        },
        "handler.userView": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "firstname": {"type": "string"},
                "lastname": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "status": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "user": {"$ref": "#/definitions/handler.userView"}}
        },
        "handler.userPageResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.userView"}},
                "totalItems": {"type": "integer"},
                "currentPage": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "hasNextPage": {"type": "boolean"},
                "nextPage": {"type": "integer"},
                "hasPrevPage": {"type": "boolean"},
                "prevPage": {"type": "integer"}
            }
        },
        "handler.createCourseRequest": {
            "type": "object",
            "required": ["name", "description", "content"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "content": {"type": "array", "items": {"type": "string"}},
                "tools": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.updateCourseRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "content": {"type": "array", "items": {"type": "string"}},
                "tools": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.courseView": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "content": {"type": "array", "items": {"type": "string"}},
                "tools": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.createImageRequest": {
            "type": "object",
            "required": ["name", "url"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "handler.updateImageRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "handler.imageView": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "url": {"type": "string"},
                "user": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handler.imagePageResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.imageView"}},
                "totalItems": {"type": "integer"},
                "currentPage": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "hasNextPage": {"type": "boolean"},
                "nextPage": {"type": "integer"},
                "hasPrevPage": {"type": "boolean"},
                "prevPage": {"type": "integer"}
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "error": {"type": "string"}}
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "UMD API",
	Description:      "Users, courses and images for the UMD ESIEA catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
