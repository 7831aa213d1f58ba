package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Study Planner API",
        "description": "Per-user tasks, events and assignments for students",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Auth", "description": "Accounts and session tokens"},
        {"name": "Tasks", "description": "To-do items"},
        {"name": "Events", "description": "Calendar entries such as lectures and exams"},
        {"name": "Assignments", "description": "Coursework tracked through todo, in-progress, submitted and graded"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "A dependency is down"}
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a new account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/AuthResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/APIError"}},
                    "409": {"description": "User already exists", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Sign in with email and password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AuthResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Rotate a refresh token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshTokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AuthResponse"}},
                    "401": {"description": "Refresh token invalid", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke the current session",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/RefreshTokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current user",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserInfo"}}
                }
            }
        },
        "/api/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Task"}}}
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create task",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Task"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Task"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/tasks/{id}": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Get task",
                "security": [{"BearerAuth": []}],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Task"}},
                    "403": {"description": "Owned by another user", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "put": {
                "tags": ["Tasks"],
                "summary": "Update task (partial merge)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Task"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Task"}},
                    "409": {"description": "Version conflict", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete task",
                "security": [{"BearerAuth": []}],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List events ordered by start time",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "from", "in": "query", "type": "string", "format": "date-time"},
                    {"name": "to", "in": "query", "type": "string", "format": "date-time"},
                    {"name": "type", "in": "query", "type": "string", "enum": ["lecture", "exam", "meeting", "assignment", "other"]},
                    {"name": "courseId", "in": "query", "type": "string"},
                    {"name": "priority", "in": "query", "type": "string", "enum": ["low", "medium", "high"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Event"}}},
                    "400": {"description": "Malformed filter", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create event",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Event"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Event"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/events/export": {
            "get": {
                "tags": ["Events"],
                "summary": "Export filtered events",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/api/events/{id}": {
            "get": {
                "tags": ["Events"],
                "summary": "Get event",
                "security": [{"BearerAuth": []}],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Event"}},
                    "403": {"description": "Not authorized to view this event", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Event not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "patch": {
                "tags": ["Events"],
                "summary": "Update event (partial merge)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Event"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Event"}},
                    "409": {"description": "Version conflict", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "delete": {
                "tags": ["Events"],
                "summary": "Delete event",
                "security": [{"BearerAuth": []}],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "Event deleted", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/assignments": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List assignments ordered by due date",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "enum": ["todo", "in-progress", "submitted", "graded"]},
                    {"name": "courseId", "in": "query", "type": "string"},
                    {"name": "due", "in": "query", "type": "string", "enum": ["today", "tomorrow", "week", "overdue"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Assignment"}}},
                    "400": {"description": "Malformed filter", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "post": {
                "tags": ["Assignments"],
                "summary": "Create assignment",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Assignment"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Assignment"}}
                }
            }
        },
        "/api/assignments/export": {
            "get": {
                "tags": ["Assignments"],
                "summary": "Export filtered assignments",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/api/assignments/{id}": {
            "get": {
                "tags": ["Assignments"],
                "summary": "Get assignment",
                "security": [{"BearerAuth": []}],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Assignment"}}
                }
            },
            "put": {
                "tags": ["Assignments"],
                "summary": "Update assignment (partial merge)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Assignment"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Assignment"}},
                    "400": {"description": "Invalid status transition", "schema": {"$ref": "#/definitions/APIError"}},
                    "409": {"description": "Version conflict", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "delete": {
                "tags": ["Assignments"],
                "summary": "Delete assignment",
                "security": [{"BearerAuth": []}],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        }
    },
    "parameters": {
        "id": {"name": "id", "in": "path", "required": true, "type": "string"}
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "required": ["name", "email", "password"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 8}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "RefreshTokenRequest": {
            "type": "object",
            "properties": {
                "refreshToken": {"type": "string"}
            }
        },
        "UserInfo": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "refreshToken": {"type": "string"},
                "expiresIn": {"type": "integer"},
                "issuedAt": {"type": "string", "format": "date-time"},
                "user": {"$ref": "#/definitions/UserInfo"}
            }
        },
        "Task": {
            "type": "object",
            "properties": {
                "_id": {"type": "string", "readOnly": true},
                "userId": {"type": "string", "readOnly": true},
                "title": {"type": "string", "maxLength": 120},
                "description": {"type": "string"},
                "completed": {"type": "boolean"},
                "deadline": {"type": "string", "format": "date-time"},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "version": {"type": "integer"},
                "createdAt": {"type": "string", "format": "date-time", "readOnly": true},
                "updatedAt": {"type": "string", "format": "date-time", "readOnly": true}
            }
        },
        "RecurrencePattern": {
            "type": "object",
            "properties": {
                "frequency": {"type": "string", "enum": ["daily", "weekly", "monthly", "none"]},
                "interval": {"type": "integer", "minimum": 1},
                "endDate": {"type": "string", "format": "date-time"}
            }
        },
        "Event": {
            "type": "object",
            "properties": {
                "_id": {"type": "string", "readOnly": true},
                "userId": {"type": "string", "readOnly": true},
                "title": {"type": "string", "maxLength": 100},
                "type": {"type": "string", "enum": ["lecture", "exam", "meeting", "assignment", "other"]},
                "startAt": {"type": "string", "format": "date-time"},
                "endAt": {"type": "string", "format": "date-time"},
                "courseId": {"type": "string", "maxLength": 50},
                "notes": {"type": "string", "maxLength": 500},
                "location": {"type": "string", "maxLength": 100},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "isRecurring": {"type": "boolean"},
                "recurrencePattern": {"$ref": "#/definitions/RecurrencePattern"},
                "version": {"type": "integer"},
                "createdAt": {"type": "string", "format": "date-time", "readOnly": true},
                "updatedAt": {"type": "string", "format": "date-time", "readOnly": true}
            }
        },
        "Assignment": {
            "type": "object",
            "properties": {
                "_id": {"type": "string", "readOnly": true},
                "userId": {"type": "string", "readOnly": true},
                "title": {"type": "string", "maxLength": 120},
                "description": {"type": "string"},
                "courseId": {"type": "string"},
                "dueAt": {"type": "string", "format": "date-time"},
                "status": {"type": "string", "enum": ["todo", "in-progress", "submitted", "graded"]},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "version": {"type": "integer"},
                "createdAt": {"type": "string", "format": "date-time", "readOnly": true},
                "updatedAt": {"type": "string", "format": "date-time", "readOnly": true}
            }
        },
        "Message": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "code": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
