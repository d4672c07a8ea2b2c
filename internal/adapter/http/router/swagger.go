package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Bank Ledger API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Bank Ledger API",
    "version": "1.0.0"
  },
  "paths": {
    "/register-user": {
      "post": {
        "summary": "Register a user",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["username", "password"],
                "properties": {
                  "username": {"type": "string"},
                  "password": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "User registered"}, "409": {"description": "Username already taken"}}
      }
    },
    "/login": {
      "post": {
        "summary": "Validate user credentials",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["username", "password"],
                "properties": {
                  "username": {"type": "string"},
                  "password": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {"200": {"description": "Login successful"}, "401": {"description": "Invalid credentials"}}
      }
    },
    "/open-account": {
      "post": {
        "summary": "Open an account",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["holderName", "accountType"],
                "properties": {
                  "holderName": {"type": "string"},
                  "accountType": {"type": "string", "enum": ["Savings", "Current"]},
                  "initialDeposit": {"type": "string", "example": "1000.00"}
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "Account opened"}}
      }
    },
    "/check-balance": {
      "get": {
        "summary": "Check an account balance",
        "security": [{"BasicAuth": []}],
        "parameters": [{"name": "accountNumber", "in": "query", "required": true, "schema": {"type": "integer"}}],
        "responses": {"200": {"description": "Balance fetched"}, "404": {"description": "Account not found"}}
      }
    },
    "/statement": {
      "get": {
        "summary": "Generate an account statement",
        "security": [{"BasicAuth": []}],
        "parameters": [{"name": "accountNumber", "in": "query", "required": true, "schema": {"type": "integer"}}],
        "responses": {"200": {"description": "Statement generated"}, "404": {"description": "Account not found"}}
      }
    },
    "/deposit-funds": {
      "post": {
        "summary": "Deposit funds",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accountNumber", "amount"],
                "properties": {
                  "accountNumber": {"type": "integer"},
                  "amount": {"type": "string", "example": "500.00"}
                }
              }
            }
          }
        },
        "responses": {"200": {"description": "Funds deposited"}, "404": {"description": "Account not found"}}
      }
    },
    "/withdraw-funds": {
      "post": {
        "summary": "Withdraw funds",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accountNumber", "amount"],
                "properties": {
                  "accountNumber": {"type": "integer"},
                  "amount": {"type": "string", "example": "200.00"}
                }
              }
            }
          }
        },
        "responses": {"200": {"description": "Funds withdrawn"}, "400": {"description": "Insufficient funds"}, "404": {"description": "Account not found"}}
      }
    },
    "/transfer-funds": {
      "post": {
        "summary": "Transfer funds between accounts",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["fromAccountNumber", "toAccountNumber", "amount"],
                "properties": {
                  "fromAccountNumber": {"type": "integer"},
                  "toAccountNumber": {"type": "integer"},
                  "amount": {"type": "string", "example": "100.00"}
                }
              }
            }
          }
        },
        "responses": {"200": {"description": "Funds transferred"}, "400": {"description": "Insufficient funds"}, "404": {"description": "Account not found"}}
      }
    },
    "/apply-interest": {
      "post": {
        "summary": "Apply monthly interest to a Savings account",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accountNumber"],
                "properties": {
                  "accountNumber": {"type": "integer"},
                  "rate": {"type": "string", "example": "0.05"}
                }
              }
            }
          }
        },
        "responses": {"200": {"description": "Interest accrual reported"}, "404": {"description": "Account not found"}}
      }
    }
  },
  "components": {
    "securitySchemes": {
      "BasicAuth": {
        "type": "http",
        "scheme": "basic"
      }
    }
  }
}`
