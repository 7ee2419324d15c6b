package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Idea submission portal with an integrated todo and calendar workspace",
        "title": "InnovatEPAM Portal API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/api",
    "schemes": ["http"],
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Account created"},
                    "400": {"description": "Email already registered"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in and receive tokens",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Access and refresh tokens"},
                    "401": {"description": "Incorrect email or password"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Rotate refresh token",
                "responses": {
                    "200": {"description": "New token pair"},
                    "401": {"description": "Invalid refresh token"}
                }
            }
        },
        "/ideas": {
            "get": {
                "tags": ["ideas"],
                "summary": "List my ideas",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Ideas"}}
            },
            "post": {
                "tags": ["ideas"],
                "summary": "Submit a new idea",
                "consumes": ["multipart/form-data"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Idea created"},
                    "422": {"description": "Validation error"}
                }
            }
        },
        "/admin/ideas": {
            "get": {
                "tags": ["admin"],
                "summary": "List all ideas",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Ideas"},
                    "403": {"description": "Not enough permissions"}
                }
            }
        },
        "/admin/ideas/{id}/evaluate": {
            "put": {
                "tags": ["admin"],
                "summary": "Evaluate an idea",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Evaluated idea"},
                    "404": {"description": "Idea not found"}
                }
            }
        },
        "/admin/stats": {
            "get": {
                "tags": ["admin"],
                "summary": "Portal-wide stats",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Counts and daily submissions"}}
            }
        },
        "/todos": {
            "get": {
                "tags": ["todos"],
                "summary": "List my todos",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Todos"}}
            },
            "post": {
                "tags": ["todos"],
                "summary": "Create a todo",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Todo created"},
                    "403": {"description": "Assignment requires admin role"}
                }
            }
        },
        "/todos/{id}": {
            "patch": {
                "tags": ["todos"],
                "summary": "Update a todo",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Updated todo"},
                    "404": {"description": "Todo not found or not yours."}
                }
            },
            "delete": {
                "tags": ["todos"],
                "summary": "Delete a todo",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Todo not found or not yours."}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["events"],
                "summary": "List my events",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Events"}}
            },
            "post": {
                "tags": ["events"],
                "summary": "Create an event",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Event created"}}
            }
        },
        "/events/capabilities": {
            "get": {
                "tags": ["events"],
                "summary": "Event store capabilities",
                "description": "Events are append-only; update and delete are reported as unsupported.",
                "responses": {"200": {"description": "Capability flags"}}
            }
        },
        "/notifications": {
            "get": {
                "tags": ["notifications"],
                "summary": "List my notifications",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Notifications"}}
            }
        },
        "/notifications/read": {
            "patch": {
                "tags": ["notifications"],
                "summary": "Mark all notifications read",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Acknowledged"}}
            }
        },
        "/users/me": {
            "get": {
                "tags": ["users"],
                "summary": "My profile",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Account profile"}}
            }
        },
        "/users/me/password": {
            "put": {
                "tags": ["users"],
                "summary": "Change my password",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Password updated"},
                    "400": {"description": "Wrong current password or unchanged new password"}
                }
            }
        },
        "/admin/users": {
            "get": {
                "tags": ["admin"],
                "summary": "List accounts",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "query", "name": "role", "type": "string"},
                    {"in": "query", "name": "limit", "type": "integer"},
                    {"in": "query", "name": "offset", "type": "integer"}
                ],
                "responses": {"200": {"description": "Paginated accounts"}}
            }
        },
        "/users/me/stats": {
            "get": {
                "tags": ["stats"],
                "summary": "My submission stats",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Counts and success rate"}}
            }
        },
        "/workspace/calendar": {
            "get": {
                "tags": ["workspace"],
                "summary": "Month calendar view",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "query", "name": "year", "type": "integer"},
                    {"in": "query", "name": "month", "type": "integer", "description": "0-indexed, January = 0"}
                ],
                "responses": {
                    "200": {"description": "Month grid with per-day indicators"},
                    "400": {"description": "Month must be between 0 and 11"}
                }
            }
        },
        "/workspace/day/{date}": {
            "get": {
                "tags": ["workspace"],
                "summary": "Day view",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "date", "type": "string", "required": true, "description": "YYYY-MM-DD"}
                ],
                "responses": {
                    "200": {"description": "Ideas, events and todos for the day"},
                    "400": {"description": "Invalid date key"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and JWT token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "InnovatEPAM Portal API",
	Description:      "Idea submission portal with an integrated todo and calendar workspace",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
