package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// apikeyAuthentication only lets through requests carrying the key in the
// Api-Token header.
func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			abortWithEncoding(c, http.StatusForbidden, localized(c, errorInvalidToken))
			return
		}
		c.Next()
	}
}
