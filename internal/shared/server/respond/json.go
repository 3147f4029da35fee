package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status. Plan text carries
// characters such as '&' and '<', so HTML escaping is disabled.
func JSON(c *gin.Context, status int, payload any) {
	c.PureJSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}
