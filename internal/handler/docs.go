package handler

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed swagger.html
var swaggerHTML []byte

const (
	openAPIPath = "/openapi.yaml"
	docsPath    = "/docs"
)

// RegisterDocs serves the embedded OpenAPI document and a Swagger UI page that loads it.
// With an empty document only the UI is mounted and /openapi.yaml answers 404.
func RegisterDocs(r gin.IRoutes, openAPI []byte) {
	r.GET(openAPIPath, func(c *gin.Context) {
		if len(openAPI) == 0 {
			c.Status(http.StatusNotFound)
			return
		}
		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", openAPI)
	})
	r.GET(docsPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", swaggerHTML)
	})
}
