package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// baseURL resolves scheme and host the client used, honouring forwarding
// headers set by a reverse proxy.
func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := firstHeaderValue(c.GetHeader("X-Forwarded-Proto")); proto != "" {
		scheme = proto
	}

	host := c.Request.Host
	if fwd := firstHeaderValue(c.GetHeader("X-Forwarded-Host")); fwd != "" {
		host = fwd
	}
	return scheme + "://" + host
}

func firstHeaderValue(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

func usersURL(c *gin.Context) string {
	return baseURL(c) + usersPath
}

func userURL(c *gin.Context, id int64) string {
	return usersURL(c) + "/" + strconv.FormatInt(id, 10)
}
