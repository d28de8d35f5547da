package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed views/index.html
var defaultIndexPage []byte

// IndexHandler serves the landing page: indexFile when set, the embedded
// page otherwise.
func IndexHandler(indexFile string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if indexFile != "" {
			c.File(indexFile)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", defaultIndexPage)
	}
}
