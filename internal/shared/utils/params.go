package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
)

// undefinedIDPlaceholder is the literal value some clients serialize into
// the path when the target id only travels in the request body.
const undefinedIDPlaceholder = "undefined"

// ParseIDParam parses a numeric id from a URL path parameter.
// entityName is used in error messages (e.g., "user", "ticket").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// ResolveIDParam parses a numeric id from the path, falling back to
// bodyID when the path carries the "undefined" placeholder. The path value
// wins whenever it is a real id; the body id is only consulted for the
// placeholder case.
func ResolveIDParam(c *gin.Context, paramName, entityName string, bodyID uint) (uint, error) {
	raw := c.Param(paramName)
	if raw == undefinedIDPlaceholder {
		if bodyID == 0 {
			return 0, errors.NewValidationError(entityName + " ID is required")
		}
		return bodyID, nil
	}

	return ParseIDParam(c, paramName, entityName)
}
