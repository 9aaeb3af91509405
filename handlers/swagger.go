package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers the OpenAPI endpoints for the portfolio API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>portfolio-api - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "portfolio-api", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Meta": { "type": "object", "properties": { "id": {"type":"string"}, "created_at": {"type":"string","format":"date-time"}, "updated_at": {"type":"string","format":"date-time"} } },
      "Profile": { "type": "object", "required": ["name","title","bio"], "properties": { "name": {"type":"string"}, "title": {"type":"string"}, "bio": {"type":"string"}, "location": {"type":"string"}, "email": {"type":"string","format":"email"}, "phone": {"type":"string"}, "socials": {"type":"object","additionalProperties":{"type":"string"}} } },
      "Skill": { "type": "object", "required": ["category","name"], "properties": { "category": {"type":"string"}, "name": {"type":"string"}, "level": {"type":"integer","minimum":1,"maximum":5} } },
      "Project": { "type": "object", "required": ["title","description"], "properties": { "title": {"type":"string"}, "description": {"type":"string"}, "tags": {"type":"array","items":{"type":"string"}}, "link": {"type":"string"}, "image": {"type":"string"} } },
      "Experience": { "type": "object", "required": ["company","role","start"], "properties": { "company": {"type":"string"}, "role": {"type":"string"}, "start": {"type":"string"}, "end": {"type":"string"}, "summary": {"type":"string"} } },
      "Education": { "type": "object", "required": ["school","degree","start"], "properties": { "school": {"type":"string"}, "degree": {"type":"string"}, "start": {"type":"string"}, "end": {"type":"string"} } },
      "Message": { "type": "object", "required": ["name","email","message"], "properties": { "name": {"type":"string"}, "email": {"type":"string","format":"email"}, "subject": {"type":"string"}, "message": {"type":"string"} } }
    }
  },
  "paths": {
    "/": { "get": { "summary": "Service status", "responses": { "200": { "description": "ok" } } } },
    "/test": { "get": { "summary": "Database connectivity probe", "responses": { "200": { "description": "status ok with collections, or status error with detail" } } } },
    "/seed": { "post": { "summary": "Insert demo data into empty collections", "responses": { "200": { "description": "seeded" } } } },
    "/profile": { "get": { "summary": "Portfolio owner profile (or {})", "responses": { "200": { "description": "profile", "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Profile"} } } } } } },
    "/skills": { "get": { "summary": "Skills (max 100)", "responses": { "200": { "description": "skills", "content": { "application/json": { "schema": {"type":"array","items":{"$ref":"#/components/schemas/Skill"}} } } } } } },
    "/projects": { "get": { "summary": "Projects (max 100)", "responses": { "200": { "description": "projects", "content": { "application/json": { "schema": {"type":"array","items":{"$ref":"#/components/schemas/Project"}} } } } } } },
    "/experience": { "get": { "summary": "Work experience (max 50)", "responses": { "200": { "description": "experience", "content": { "application/json": { "schema": {"type":"array","items":{"$ref":"#/components/schemas/Experience"}} } } } } } },
    "/education": { "get": { "summary": "Education (max 50)", "responses": { "200": { "description": "education", "content": { "application/json": { "schema": {"type":"array","items":{"$ref":"#/components/schemas/Education"}} } } } } } },
    "/contact": { "post": { "summary": "Submit a contact message", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Message"} } } }, "responses": { "200": { "description": "stored" }, "400": { "description": "validation failed" }, "429": { "description": "rate limited" }, "500": { "description": "message not saved" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
