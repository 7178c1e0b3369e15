// Package docs holds the Swagger 2.0 document served under /swagger.
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
        "/tenants/{tenant_id}/accounts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List the chart of accounts",
                "parameters": [{"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListAccountsResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Create a new account",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"description": "Account details", "name": "account", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateAccountRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AccountResponse"}},
                    "400": {"description": "Invalid input format or validation error"},
                    "404": {"description": "Parent account not found"},
                    "409": {"description": "Account code already exists"}
                }
            }
        },
        "/tenants/{tenant_id}/accounts/seed": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Seed a starter chart of accounts",
                "parameters": [{"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Chart already set up", "schema": {"$ref": "#/definitions/dto.SeedChartResponse"}},
                    "201": {"description": "Chart created", "schema": {"$ref": "#/definitions/dto.SeedChartResponse"}}
                }
            }
        },
        "/tenants/{tenant_id}/accounts/{account_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Get an account by ID",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "Account ID", "name": "account_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AccountResponse"}}, "404": {"description": "Account not found"}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Update an account",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "Account ID", "name": "account_id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "account", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateAccountRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AccountResponse"}}, "404": {"description": "Account not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"],
                "summary": "Deactivate an account",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "Account ID", "name": "account_id", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Account not found"}}
            }
        },
        "/tenants/{tenant_id}/fiscal-years": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["fiscal-years"],
                "summary": "List fiscal years",
                "parameters": [{"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListFiscalYearsResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["fiscal-years"],
                "summary": "Open a fiscal year",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"description": "Fiscal year details", "name": "fiscalYear", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateFiscalYearRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.FiscalYearResponse"}}, "400": {"description": "Invalid input or end date not after start date"}}
            }
        },
        "/tenants/{tenant_id}/fiscal-years/current": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["fiscal-years"],
                "summary": "Find the fiscal year containing a date",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "default": "today", "description": "Date (YYYY-MM-DD)", "name": "date", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FiscalYearResponse"}}, "404": {"description": "No fiscal year contains the date"}}
            }
        },
        "/tenants/{tenant_id}/fiscal-years/{fiscal_year_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["fiscal-years"],
                "summary": "Get a fiscal year by ID",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "Fiscal Year ID", "name": "fiscal_year_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FiscalYearResponse"}}, "404": {"description": "Fiscal year not found"}}
            }
        },
        "/tenants/{tenant_id}/fiscal-years/{fiscal_year_id}/lock": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["fiscal-years"],
                "summary": "Lock a fiscal year",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "Fiscal Year ID", "name": "fiscal_year_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FiscalYearResponse"}}, "409": {"description": "Draft entries remain"}}
            }
        },
        "/tenants/{tenant_id}/fiscal-years/{fiscal_year_id}/unlock": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["fiscal-years"],
                "summary": "Unlock a fiscal year",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "Fiscal Year ID", "name": "fiscal_year_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FiscalYearResponse"}}}
            }
        },
        "/tenants/{tenant_id}/fiscal-years/{fiscal_year_id}/ledger": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "General ledger for a fiscal year",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "Fiscal Year ID", "name": "fiscal_year_id", "in": "path", "required": true},
                    {"type": "string", "description": "Restrict to one account", "name": "account_id", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LedgerResponse"}}}
            }
        },
        "/tenants/{tenant_id}/fiscal-years/{fiscal_year_id}/reports/trial-balance": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Trial balance",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "Fiscal Year ID", "name": "fiscal_year_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TrialBalanceResponse"}}}
            }
        },
        "/tenants/{tenant_id}/fiscal-years/{fiscal_year_id}/reports/profit-and-loss": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Profit and loss",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "Fiscal Year ID", "name": "fiscal_year_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProfitAndLossResponse"}}}
            }
        },
        "/tenants/{tenant_id}/fiscal-years/{fiscal_year_id}/reports/balance-sheet": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Balance sheet",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "Fiscal Year ID", "name": "fiscal_year_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BalanceSheetResponse"}}}
            }
        },
        "/tenants/{tenant_id}/journal-entries": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["journal-entries"],
                "summary": "List journal entries",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "Restrict to a fiscal year", "name": "fiscal_year_id", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size (1-100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Token from the previous page", "name": "next_token", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListJournalEntriesResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["journal-entries"],
                "summary": "Record a journal entry",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"description": "Journal entry", "name": "entry", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PostJournalEntryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.JournalEntryResponse"}},
                    "400": {"description": "Unbalanced entry, too few lines or date out of range"},
                    "404": {"description": "Fiscal year or account not found"},
                    "409": {"description": "Fiscal year is locked"}
                }
            }
        },
        "/tenants/{tenant_id}/journal-entries/linked": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["journal-entries"],
                "summary": "Find the entry posted under a reference",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "External reference, e.g. INV:1002", "name": "reference", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LinkedEntryResponse"}}}
            }
        },
        "/tenants/{tenant_id}/journal-entries/{entry_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["journal-entries"],
                "summary": "Get a journal entry",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "Journal Entry ID", "name": "entry_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.JournalEntryResponse"}}, "404": {"description": "Journal entry not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["journal-entries"],
                "summary": "Delete a draft entry",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "Journal Entry ID", "name": "entry_id", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}, "409": {"description": "Entry posted or fiscal year locked"}}
            }
        },
        "/tenants/{tenant_id}/journal-entries/{entry_id}/post": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["journal-entries"],
                "summary": "Post a draft entry",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "Journal Entry ID", "name": "entry_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.JournalEntryResponse"}}, "409": {"description": "Already posted or fiscal year locked"}}
            }
        },
        "/tenants/{tenant_id}/journal-entries/{entry_id}/reverse": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["journal-entries"],
                "summary": "Reverse a posted entry",
                "parameters": [
                    {"type": "string", "description": "Tenant ID", "name": "tenant_id", "in": "path", "required": true},
                    {"type": "string", "description": "Journal Entry ID", "name": "entry_id", "in": "path", "required": true},
                    {"description": "Reversal date and memo overrides", "name": "reversal", "in": "body", "schema": {"$ref": "#/definitions/dto.ReverseJournalEntryRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.JournalEntryResponse"}}, "409": {"description": "Entry not posted, already reversed or period locked"}}
            }
        }
    },
    "definitions": {
        "dto.AccountResponse": {"type": "object"},
        "dto.BalanceSheetResponse": {"type": "object"},
        "dto.CreateAccountRequest": {
            "type": "object",
            "required": ["category", "code", "name"],
            "properties": {
                "category": {"type": "string", "enum": ["ASSET", "LIABILITY", "EQUITY", "REVENUE", "EXPENSE"]},
                "code": {"type": "string", "maxLength": 32},
                "description": {"type": "string"},
                "name": {"type": "string", "maxLength": 255},
                "parentAccountID": {"type": "string"}
            }
        },
        "dto.CreateFiscalYearRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "endDate": {"type": "string", "example": "2024-12-31"},
                "name": {"type": "string", "maxLength": 100},
                "startDate": {"type": "string", "example": "2024-01-01"}
            }
        },
        "dto.FiscalYearResponse": {"type": "object"},
        "dto.JournalEntryResponse": {"type": "object"},
        "dto.JournalLineRequest": {
            "type": "object",
            "required": ["accountID"],
            "properties": {
                "accountID": {"type": "string"},
                "credit": {"type": "string", "example": "0.00"},
                "debit": {"type": "string", "example": "100.00"},
                "memo": {"type": "string", "maxLength": 500}
            }
        },
        "dto.LedgerResponse": {"type": "object"},
        "dto.LinkedEntryResponse": {"type": "object"},
        "dto.ListAccountsResponse": {"type": "object"},
        "dto.ListFiscalYearsResponse": {"type": "object"},
        "dto.ListJournalEntriesResponse": {"type": "object"},
        "dto.PostJournalEntryRequest": {
            "type": "object",
            "required": ["fiscalYearID", "lines"],
            "properties": {
                "date": {"type": "string", "example": "2024-03-15"},
                "fiscalYearID": {"type": "string"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/dto.JournalLineRequest"}},
                "memo": {"type": "string", "maxLength": 1000},
                "post": {"type": "boolean", "default": true},
                "reference": {"type": "string", "maxLength": 128}
            }
        },
        "dto.ProfitAndLossResponse": {"type": "object"},
        "dto.ReverseJournalEntryRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2024-04-01"},
                "memo": {"type": "string", "maxLength": 1000}
            }
        },
        "dto.SeedChartResponse": {"type": "object"},
        "dto.TrialBalanceResponse": {"type": "object"},
        "dto.UpdateAccountRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "name": {"type": "string", "maxLength": 255}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Ledger Core API",
	Description:      "Multi-tenant double-entry accounting core: chart of accounts, fiscal years, journal entries, ledgers and financial reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
