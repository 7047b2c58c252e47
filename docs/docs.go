// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
    "securityDefinitions": {
        "TokenAuth": {
            "type": "apiKey",
            "name": "x-auth-token",
            "in": "header"
        }
    },
    "paths": {
        "/api/users": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/auth": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["auth"],
                "summary": "Current user",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            },
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/inventory": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["inventory"],
                "summary": "List inventory items",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Filter by category", "name": "category", "in": "query"},
                    {"type": "boolean", "description": "Only items below their reorder level", "name": "low_stock", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.InventoryItem"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            },
            "post": {
                "security": [{"TokenAuth": []}],
                "tags": ["inventory"],
                "summary": "Create an inventory item",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.itemRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.InventoryItem"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.msgResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/inventory/{id}": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["inventory"],
                "summary": "Get an inventory item",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.InventoryItem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            },
            "put": {
                "security": [{"TokenAuth": []}],
                "tags": ["inventory"],
                "summary": "Replace an inventory item",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.itemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.InventoryItem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            },
            "delete": {
                "security": [{"TokenAuth": []}],
                "tags": ["inventory"],
                "summary": "Delete an inventory item",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.msgResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.msgResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/inventory/{id}/adjust": {
            "post": {
                "security": [{"TokenAuth": []}],
                "tags": ["inventory"],
                "summary": "Adjust stock level",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.adjustRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.InventoryItem"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/restocks": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["restocks"],
                "summary": "List restocks",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "pending or received", "name": "status", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Restock"}}}
                }
            },
            "post": {
                "security": [{"TokenAuth": []}],
                "tags": ["restocks"],
                "summary": "Request a restock",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.restockRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Restock"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.msgResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/restocks/{id}/receive": {
            "post": {
                "security": [{"TokenAuth": []}],
                "tags": ["restocks"],
                "summary": "Mark a restock as received",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Restock ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Restock"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.msgResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/email": {
            "post": {
                "security": [{"TokenAuth": []}],
                "tags": ["email"],
                "summary": "Send an email",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.emailRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.msgResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.msgResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/messages": {
            "post": {
                "security": [{"TokenAuth": []}],
                "tags": ["messages"],
                "summary": "Send a chat message",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.messageRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/messages/{userId}": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["messages"],
                "summary": "Conversation with another user",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Peer user ID", "name": "userId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Message"}}}
                }
            }
        }
    },
    "definitions": {
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.InventoryItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "sku": {"type": "string"},
                "category": {"type": "string"},
                "quantity": {"type": "integer"},
                "unit_price": {"type": "number"},
                "reorder_level": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.Restock": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "item_id": {"type": "string"},
                "quantity": {"type": "integer"},
                "supplier": {"type": "string"},
                "requested_by": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "received"]},
                "created_at": {"type": "string"},
                "received_at": {"type": "string"}
            }
        },
        "domain.Message": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "conversation_id": {"type": "string"},
                "sender": {"type": "string"},
                "receiver": {"type": "string"},
                "text": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "handler.msgResponse": {
            "type": "object",
            "properties": {"msg": {"type": "string"}}
        },
        "handler.tokenResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["name", "email", "password"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.itemRequest": {
            "type": "object",
            "required": ["name", "sku"],
            "properties": {
                "name": {"type": "string"},
                "sku": {"type": "string"},
                "category": {"type": "string"},
                "quantity": {"type": "integer", "minimum": 0},
                "unit_price": {"type": "number", "minimum": 0},
                "reorder_level": {"type": "integer", "minimum": 0}
            }
        },
        "handler.adjustRequest": {
            "type": "object",
            "required": ["delta"],
            "properties": {"delta": {"type": "integer"}}
        },
        "handler.restockRequest": {
            "type": "object",
            "required": ["item_id", "quantity"],
            "properties": {
                "item_id": {"type": "string"},
                "quantity": {"type": "integer"},
                "supplier": {"type": "string"}
            }
        },
        "handler.messageRequest": {
            "type": "object",
            "required": ["receiver", "text"],
            "properties": {
                "receiver": {"type": "string"},
                "text": {"type": "string", "maxLength": 2000}
            }
        },
        "handler.emailRequest": {
            "type": "object",
            "required": ["to", "subject", "text"],
            "properties": {
                "to": {"type": "string"},
                "subject": {"type": "string"},
                "text": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Handicraft Inventory API",
	Description:      "Inventory, restock, notification and chat backend behind a JWT gate.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
