package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// BindJSON binds the request body to obj. Field rules are checked by the
// services; this only rejects malformed JSON. On failure it sends a
// BadRequest response and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, "Invalid request payload: "+err.Error())
		return false
	}
	return true
}

// ParamID reads a positive integer path parameter. On failure it sends a
// BadRequest response and returns false.
func ParamID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, "Invalid "+name+": "+raw)
		return 0, false
	}
	return uint(id), true
}
