// Package api contains the OpenAPI document of the API.
//
// The operations are annotated on the handlers in internal/controllers.
package api

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
		"/": {
			"get": {
				"tags": [
					"General"
				],
				"summary": "API root",
				"description": "Entrypoint for the API, listing all endpoints",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"options": {
				"tags": [
					"General"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/healthz": {
			"get": {
				"tags": [
					"General"
				],
				"summary": "Get health",
				"description": "Returns the application health and, if not healthy, an error",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"General"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/version": {
			"get": {
				"tags": [
					"General"
				],
				"summary": "API version",
				"description": "Returns the software version of the API",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"options": {
				"tags": [
					"General"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1": {
			"get": {
				"tags": [
					"v1"
				],
				"summary": "v1 API",
				"description": "Returns general information about the v1 API",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"options": {
				"tags": [
					"v1"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/users/register": {
			"post": {
				"tags": [
					"Users"
				],
				"summary": "Register",
				"description": "Creates a new user and returns an access token for it",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "User",
						"name": "user",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"Users"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/users/login": {
			"post": {
				"tags": [
					"Users"
				],
				"summary": "Login",
				"description": "Returns an access token for the user",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Credentials",
						"name": "credentials",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"Users"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/users/me": {
			"get": {
				"tags": [
					"Users"
				],
				"summary": "Get authenticated user",
				"description": "Returns the user the access token belongs to",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"Users"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/cards": {
			"get": {
				"tags": [
					"Cards"
				],
				"summary": "Get cards",
				"description": "Returns a list of cards",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Filter by name",
						"name": "name",
						"in": "query"
					},
					{
						"type": "boolean",
						"description": "Is the card archived?",
						"name": "archived",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Search for this text in name and note",
						"name": "search",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "The offset of the first resource returned. Defaults to 0.",
						"name": "offset",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Maximum number of resources to return. Defaults to 50.",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"post": {
				"tags": [
					"Cards"
				],
				"summary": "Create cards",
				"description": "Creates new cards",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Cards",
						"name": "cards",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"Cards"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/cards/{id}": {
			"get": {
				"tags": [
					"Cards"
				],
				"summary": "Get card",
				"description": "Returns a specific card",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"patch": {
				"tags": [
					"Cards"
				],
				"summary": "Update card",
				"description": "Updates a card. Only values to be updated need to be specified.",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Card",
						"name": "card",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"Cards"
				],
				"summary": "Delete card",
				"description": "Deletes a card",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"Cards"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/v1/expenses": {
			"get": {
				"tags": [
					"Expenses"
				],
				"summary": "Get expenses",
				"description": "Returns a list of expenses, most recent first",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Filter by card ID",
						"name": "card",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Filter by installment group ID",
						"name": "group",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Filter by status",
						"name": "status",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Filter by tag",
						"name": "tag",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Filter by description",
						"name": "description",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Expenses at and after this date",
						"name": "fromDate",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Expenses before and at this date",
						"name": "untilDate",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "The offset of the first resource returned. Defaults to 0.",
						"name": "offset",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Maximum number of resources to return. Defaults to 50.",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"post": {
				"tags": [
					"Expenses"
				],
				"summary": "Create expenses",
				"description": "Creates new expenses. Expenses with more than one installment are expanded into one expense per installment.",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Expenses",
						"name": "expenses",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"Expenses"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/expenses/{id}": {
			"get": {
				"tags": [
					"Expenses"
				],
				"summary": "Get expense",
				"description": "Returns a specific expense",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"patch": {
				"tags": [
					"Expenses"
				],
				"summary": "Update expense",
				"description": "Updates description, tag and status of an expense",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Expense",
						"name": "expense",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"Expenses"
				],
				"summary": "Delete expense",
				"description": "Deletes an expense",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"Expenses"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/v1/incomes": {
			"get": {
				"tags": [
					"Incomes"
				],
				"summary": "Get incomes",
				"description": "Returns a list of incomes, most recent first",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Filter by status",
						"name": "status",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Filter by tag",
						"name": "tag",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Filter by source",
						"name": "source",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Filter by description",
						"name": "description",
						"in": "query"
					},
					{
						"type": "boolean",
						"description": "Is the income recurring?",
						"name": "recurring",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Incomes at and after this date",
						"name": "fromDate",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Incomes before and at this date",
						"name": "untilDate",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "The offset of the first resource returned. Defaults to 0.",
						"name": "offset",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Maximum number of resources to return. Defaults to 50.",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"post": {
				"tags": [
					"Incomes"
				],
				"summary": "Create incomes",
				"description": "Creates new incomes. For recurring incomes, the next occurrence is calculated from the date and the frequency.",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Incomes",
						"name": "incomes",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"Incomes"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/incomes/{id}": {
			"get": {
				"tags": [
					"Incomes"
				],
				"summary": "Get income",
				"description": "Returns a specific income",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"patch": {
				"tags": [
					"Incomes"
				],
				"summary": "Update income",
				"description": "Updates an existing income. Date and recurrence cannot be updated.",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Income",
						"name": "income",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"Incomes"
				],
				"summary": "Delete income",
				"description": "Deletes an income",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"Incomes"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/v1/incomes/{id}/received": {
			"post": {
				"tags": [
					"Incomes"
				],
				"summary": "Mark income as received",
				"description": "Sets the status of an income to Received",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"Incomes"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/v1/reports": {
			"get": {
				"tags": [
					"Reports"
				],
				"summary": "Get stored reports",
				"description": "Returns a list of stored reports, most recent first",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Filter by type",
						"name": "type",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "The offset of the first resource returned. Defaults to 0.",
						"name": "offset",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Maximum number of resources to return. Defaults to 50.",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"post": {
				"tags": [
					"Reports"
				],
				"summary": "Store report",
				"description": "Calculates a report and stores a copy of it. Stored reports cannot be changed or deleted.",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Report",
						"name": "report",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"Reports"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/reports/expenses": {
			"get": {
				"tags": [
					"Reports"
				],
				"summary": "Expense report",
				"description": "Returns the sum of all expenses per month and tag in the period",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Start of the period. Defaults to 30 days before the end",
						"name": "startDate",
						"in": "query"
					},
					{
						"type": "string",
						"description": "End of the period. Defaults to now",
						"name": "endDate",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Only expenses on this card",
						"name": "card",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Only expenses with this tag",
						"name": "tag",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"Reports"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/reports/incomes": {
			"get": {
				"tags": [
					"Reports"
				],
				"summary": "Income report",
				"description": "Returns the sum of all incomes per month and source in the period",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Start of the period. Defaults to 30 days before the end",
						"name": "startDate",
						"in": "query"
					},
					{
						"type": "string",
						"description": "End of the period. Defaults to now",
						"name": "endDate",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Only incomes from this source",
						"name": "source",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Only incomes with this tag",
						"name": "tag",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"Reports"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/reports/summary": {
			"get": {
				"tags": [
					"Reports"
				],
				"summary": "Summary report",
				"description": "Returns the total income and the total expenses in the period",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Start of the period. Defaults to 30 days before the end",
						"name": "startDate",
						"in": "query"
					},
					{
						"type": "string",
						"description": "End of the period. Defaults to now",
						"name": "endDate",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"Reports"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/reports/{id}": {
			"get": {
				"tags": [
					"Reports"
				],
				"summary": "Get stored report",
				"description": "Returns a specific stored report",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/httperror.Error"
						}
					}
				}
			},
			"options": {
				"tags": [
					"Reports"
				],
				"summary": "Allowed HTTP verbs",
				"description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		}
	},
	"definitions": {
		"httperror.Error": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string",
					"example": "the database is not reachable"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Access token as returned by register and login, prefixed with \"Bearer \"",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "",
	Host:			 "",
	BasePath:		 "",
	Schemes:		  []string{},
	Title:			"",
	Description:	  "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
