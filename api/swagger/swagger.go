package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "AptiPro Teacher API",
        "description": "Teacher-facing backend for the AptiPro testing platform",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Accounts", "description": "Teacher signup, verification and login"},
        {"name": "Tests", "description": "Test creation"},
        {"name": "Questions", "description": "MCQ question bank"},
        {"name": "Results", "description": "Result feed and exports"}
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
                "summary": "Readiness check (pings the database)",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/signup": {
            "post": {
                "tags": ["Accounts"],
                "summary": "Register a teacher account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Missing field, duplicate or bad department", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/verify": {
            "post": {
                "tags": ["Accounts"],
                "summary": "Verify a teacher account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VerifyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Email not found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Accounts"],
                "summary": "Authenticate a teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Profile and token", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/Envelope"}},
                    "403": {"description": "Account not verified", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/me": {
            "get": {
                "tags": ["Accounts"],
                "summary": "Current teacher identity",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Missing or invalid token", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/create_test": {
            "post": {
                "tags": ["Tests"],
                "summary": "Create a test",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTestRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Missing field or invalid difficulty", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Teacher not found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/questions": {
            "post": {
                "tags": ["Questions"],
                "summary": "Create an MCQ",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateQuestionRequest"}}
                ],
                "responses": {
                    "200": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Missing field", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/results": {
            "get": {
                "tags": ["Results"],
                "summary": "List results for a teacher",
                "parameters": [
                    {"name": "email", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Missing email", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/results/export": {
            "get": {
                "tags": ["Results"],
                "summary": "Export results for a teacher",
                "parameters": [
                    {"name": "email", "in": "query", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Attachment"},
                    "400": {"description": "Missing email or bad format", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "SignupRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "department": {"type": "string"}
            },
            "required": ["id", "name", "email", "password", "department"]
        },
        "VerifyRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"}
            },
            "required": ["email"]
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "CreateTestRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "marks": {"type": "string"},
                "totalQuestions": {"type": "string"},
                "duration": {"type": "string"},
                "difficulty": {"type": "string", "enum": ["easy", "medium", "hard"]},
                "subject": {"type": "string"},
                "createdBy": {"type": "string"},
                "scheduleDate": {"type": "string"},
                "dept_name": {"type": "string"}
            },
            "required": ["id", "name", "marks", "totalQuestions", "duration", "difficulty", "subject", "createdBy", "scheduleDate", "dept_name"]
        },
        "CreateQuestionRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "question": {"type": "string"},
                "optionA": {"type": "string"},
                "optionB": {"type": "string"},
                "optionC": {"type": "string"},
                "optionD": {"type": "string"},
                "correctOption": {"type": "string"},
                "difficulty": {"type": "string"},
                "subject": {"type": "string"}
            },
            "required": ["id", "question", "optionA", "optionB", "optionC", "optionD", "correctOption", "difficulty", "subject"]
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "error": {"type": "string"},
                "user": {"type": "object"},
                "results": {"type": "array", "items": {"type": "object"}},
                "token": {"type": "string"}
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
