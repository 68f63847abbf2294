package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func QueryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// UUIDParam returns the named path param when it is a valid UUID. On failure it
// writes a 400 and returns ok=false.
func UUIDParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		BadRequest(c, "invalid "+name)
		return "", false
	}
	return id, true
}

// UUIDQuery returns an optional query param. Empty is allowed; anything else
// must be a UUID or a 400 is written and ok is false.
func UUIDQuery(c *gin.Context, name string) (string, bool) {
	id := c.Query(name)
	if id == "" {
		return "", true
	}
	if _, err := uuid.Parse(id); err != nil {
		BadRequest(c, "invalid "+name)
		return "", false
	}
	return id, true
}

// IsUUID reports whether s parses as a UUID.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
