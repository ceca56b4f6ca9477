// Package docs registers the OpenAPI document served by the API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://codeberg.org/tubespark/server"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/health.Response"}}
                }
            }
        },
        "/api/v1/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Ping",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/health.PingResponse"}}
                }
            }
        },
        "/api/v1/ideas": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ideas"],
                "summary": "List saved ideas",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ideas.ListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/ideas/generate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ideas"],
                "summary": "Generate video ideas",
                "parameters": [
                    {"description": "Generation parameters", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/generation.Request"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/generate.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/scripts/generate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["scripts"],
                "summary": "Generate a video script",
                "parameters": [
                    {"description": "Idea and script type", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/scripts.GenerateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/scripts.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/ideas/save": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ideas"],
                "summary": "Save an idea",
                "parameters": [
                    {"description": "Idea to save", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ideas.SaveRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ideas.IdeaResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/ideas/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ideas"],
                "summary": "Get a saved idea",
                "parameters": [{"type": "string", "description": "Idea ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ideas.IdeaResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ideas"],
                "summary": "Update a saved idea",
                "parameters": [
                    {"type": "string", "description": "Idea ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ideas.UpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ideas.IdeaResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ideas"],
                "summary": "Delete a saved idea",
                "parameters": [{"type": "string", "description": "Idea ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ideas.DeleteResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/usage/check": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["usage"],
                "summary": "Check one quota",
                "parameters": [
                    {"enum": ["idea", "script_basic", "script_premium", "api_call"], "type": "string", "description": "Resource kind", "name": "action", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/usage.CheckResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/usage/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["usage"],
                "summary": "Usage summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/usage.SummaryResponse"}}
                }
            }
        },
        "/api/v1/dashboard/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.StatsResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "string"},
                "code": {"type": "string"},
                "details": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}},
                "reason": {"type": "string"},
                "usage": {"$ref": "#/definitions/errors.UsageInfo"}
            }
        },
        "errors.UsageInfo": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "used": {"type": "integer"},
                "limit": {"type": "integer"}
            }
        },
        "generation.Request": {
            "type": "object",
            "required": ["niche", "channelType", "audienceAge", "contentStyle"],
            "properties": {
                "niche": {"type": "string"},
                "channelType": {"type": "string", "enum": ["educational", "entertainment", "gaming", "lifestyle", "tech", "business", "other"]},
                "audienceAge": {"type": "string", "enum": ["13-17", "18-24", "25-34", "35-44", "45-54", "55+"]},
                "contentStyle": {"type": "string"},
                "keywords": {"type": "string"},
                "language": {"type": "string", "enum": ["pt", "en", "es", "fr"]},
                "count": {"type": "integer", "minimum": 1, "maximum": 10}
            }
        },
        "generate.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "ideas": {"type": "array", "items": {"$ref": "#/definitions/ideas.Idea"}},
                "generatedAt": {"type": "string"},
                "usage": {"$ref": "#/definitions/generate.UsageInfo"}
            }
        },
        "generate.UsageInfo": {
            "type": "object",
            "properties": {
                "used": {"type": "integer"},
                "limit": {"type": "integer"}
            }
        },
        "scripts.GenerateRequest": {
            "type": "object",
            "required": ["ideaId", "scriptType"],
            "properties": {
                "ideaId": {"type": "string"},
                "scriptType": {"type": "string", "enum": ["basic", "premium"]},
                "tone": {"type": "string", "enum": ["professional", "casual", "energetic"]},
                "duration": {"type": "string", "enum": ["short", "medium", "long"]}
            }
        },
        "scripts.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "script": {"$ref": "#/definitions/scripts.Script"},
                "usage": {"$ref": "#/definitions/generate.UsageInfo"}
            }
        },
        "scripts.Script": {
            "type": "object",
            "properties": {
                "ideaId": {"type": "string"},
                "userId": {"type": "string"},
                "scriptType": {"type": "string"},
                "content": {"type": "object"},
                "generatedAt": {"type": "string"}
            }
        },
        "ideas.Idea": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "trendScore": {"type": "integer"},
                "estimatedViews": {"type": "string", "example": "10000+"},
                "difficultyScore": {"type": "integer"},
                "difficulty": {"type": "string", "enum": ["Easy", "Medium", "Hard"]},
                "tags": {"type": "array", "items": {"type": "string"}},
                "hooks": {"type": "array", "items": {"type": "string"}},
                "duration": {"type": "string"},
                "thumbnailIdea": {"type": "string"},
                "niche": {"type": "string"},
                "channelType": {"type": "string"},
                "status": {"type": "string", "enum": ["saved", "planned", "published"]},
                "notes": {"type": "string"},
                "createdAt": {"type": "string"},
                "scheduledAt": {"type": "string"}
            }
        },
        "ideas.SaveRequest": {
            "type": "object",
            "required": ["idea"],
            "properties": {
                "idea": {"type": "object", "additionalProperties": true}
            }
        },
        "ideas.UpdateRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "niche": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string", "enum": ["draft", "saved", "planned", "published"]},
                "notes": {"type": "string"},
                "scheduledAt": {"type": "string"}
            }
        },
        "ideas.IdeaResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "idea": {"$ref": "#/definitions/ideas.Idea"}
            }
        },
        "ideas.ListResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "ideas": {"type": "array", "items": {"$ref": "#/definitions/ideas.Idea"}}
            }
        },
        "ideas.DeleteResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
            }
        },
        "quota.Limit": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "planType": {"type": "string"},
                "used": {"type": "integer"},
                "limit": {"type": "integer"},
                "remaining": {"type": "integer"},
                "exceeded": {"type": "boolean"},
                "unlimited": {"type": "boolean"},
                "percent": {"type": "number"},
                "status": {"type": "string", "enum": ["unlimited", "safe", "warning", "critical"]},
                "cycleStart": {"type": "string"},
                "resetsAt": {"type": "string"}
            }
        },
        "usage.CheckResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "usage": {"$ref": "#/definitions/quota.Limit"}
            }
        },
        "usage.SummaryResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "usage": {
                    "type": "object",
                    "properties": {
                        "planType": {"type": "string"},
                        "perKind": {"type": "object", "additionalProperties": {"$ref": "#/definitions/quota.Limit"}},
                        "cycleStart": {"type": "string"},
                        "resetsAt": {"type": "string"}
                    }
                }
            }
        },
        "dashboard.StatsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "stats": {
                    "type": "object",
                    "properties": {
                        "totalIdeas": {"type": "integer"},
                        "ideasThisMonth": {"type": "integer"},
                        "draftIdeas": {"type": "integer"},
                        "plannedIdeas": {"type": "integer"},
                        "publishedIdeas": {"type": "integer"},
                        "planType": {"type": "string"},
                        "ideaUsage": {"$ref": "#/definitions/quota.Limit"}
                    }
                }
            }
        },
        "health.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "service": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "health.PingResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT token for authenticated requests. Format: Bearer {token}",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "api.tubespark.app",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "TubeSpark API",
	Description:      "Usage-gated YouTube video idea generation and idea management",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
