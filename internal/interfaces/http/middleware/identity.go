package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"praxis/internal/shared/constants"
	"praxis/internal/shared/utils"
)

// Identity trusts the identity headers injected by the platform gateway.
// Authentication happens upstream; this service only sees the resolved
// user, organization and role.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIDHeader(c, constants.HeaderXUserID)
		if !ok {
			abortUnauthorized(c, "missing or invalid "+constants.HeaderXUserID+" header")
			return
		}

		orgID, ok := parseIDHeader(c, constants.HeaderXOrgID)
		if !ok {
			abortUnauthorized(c, "missing or invalid "+constants.HeaderXOrgID+" header")
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyOrgID, orgID)
		c.Set(constants.ContextKeyUserRole, c.GetHeader(constants.HeaderXUserRole))

		c.Next()
	}
}

func parseIDHeader(c *gin.Context, header string) (uint, bool) {
	raw := c.GetHeader(header)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func abortUnauthorized(c *gin.Context, message string) {
	utils.ErrorResponse(c, http.StatusUnauthorized, message)
	c.Abort()
}
