package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const missingAttributesMessage = "The request object is missing at least one of the required attributes."

// requestBaseURL reconstructs the scheme://host prefix used for self links.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}

func parseID(s string) (uint64, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	return id, err == nil
}

func isJSONRequest(c *gin.Context) bool {
	return c.ContentType() == gin.MIMEJSON
}

func acceptsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEJSON) == gin.MIMEJSON
}

// stringField extracts a non-empty string value for key from a decoded
// request body. Absent, empty or mistyped values count as not provided.
func stringField(body map[string]any, key string) (string, bool) {
	v, ok := body[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// numberField extracts a non-zero numeric value for key from a decoded
// request body.
func numberField(body map[string]any, key string) (float64, bool) {
	v, ok := body[key].(float64)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}
