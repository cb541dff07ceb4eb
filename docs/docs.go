// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/compile": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["expressions"],
                "summary": "Compile an expression",
                "parameters": [
                    {
                        "description": "Expression",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.ExpressionRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CompileResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/truth-tables": {
            "get": {
                "produces": ["application/json"],
                "tags": ["truth-tables"],
                "summary": "List stored truth tables",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["truth-tables"],
                "summary": "Build a truth table",
                "parameters": [
                    {
                        "description": "Expression",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.ExpressionRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.EvaluationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/truth-tables/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["truth-tables"],
                "summary": "Get a stored truth table",
                "parameters": [
                    {"type": "string", "description": "Evaluation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EvaluationResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.ExpressionRequest": {
            "type": "object",
            "properties": {
                "expression": {"type": "string", "example": "A@B"}
            }
        },
        "dto.CompileResponse": {
            "type": "object",
            "properties": {
                "expression": {"type": "string", "example": "A@B"},
                "postfix": {"type": "string", "example": "A B @"},
                "variables": {"type": "array", "items": {"type": "string"}}
            }
        },
        "truthtable.Row": {
            "type": "object",
            "properties": {
                "values": {"type": "array", "items": {"type": "boolean"}},
                "result": {"type": "boolean"}
            }
        },
        "truthtable.Table": {
            "type": "object",
            "properties": {
                "header": {"type": "array", "items": {"type": "string"}},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/truthtable.Row"}},
                "function_vector": {"type": "array", "items": {"type": "boolean"}},
                "pdnf": {"type": "string"},
                "pcnf": {"type": "string"}
            }
        },
        "dto.EvaluationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "expression": {"type": "string"},
                "postfix": {"type": "string"},
                "variables": {"type": "array", "items": {"type": "string"}},
                "table": {"$ref": "#/definitions/truthtable.Table"},
                "createdAt": {"type": "string"},
                "vector": {"type": "string", "example": "1101"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Truth Table API",
	Description:      "Compiles propositional logic expressions and builds their truth tables, PDNF and PCNF",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
