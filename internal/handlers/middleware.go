package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// operatorIDKey holds the authenticated operator's ID in the gin context.
const operatorIDKey = "operatorId"

const bearerScheme = "Bearer"

var (
	errMissingAuthHeader = errors.New("missing Authorization header")
	errBadAuthHeader     = errors.New("invalid Authorization header format")
)

// operatorMiddleware admits requests carrying a valid operator token.
func (h *Handler) operatorMiddleware(c *gin.Context) {
	token, err := bearerToken(c.GetHeader("Authorization"))
	if err != nil {
		h.rejectOperator(c, err.Error(), nil)
		return
	}

	operatorID, err := h.services.ParseToken(token)
	if err != nil {
		h.rejectOperator(c, "invalid or expired token", err)
		return
	}

	c.Set(operatorIDKey, operatorID)
	c.Next()
}

func (h *Handler) rejectOperator(c *gin.Context, msg string, err error) {
	h.logAndJSONError(c, http.StatusUnauthorized, msg, "operator_token_rejected", err, "path", c.FullPath())
	c.Abort()
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" value.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingAuthHeader
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || scheme != bearerScheme || strings.TrimSpace(token) == "" {
		return "", errBadAuthHeader
	}
	return strings.TrimSpace(token), nil
}

// operatorID returns the ID set by operatorMiddleware, if any.
func operatorID(c *gin.Context) (int, bool) {
	v, ok := c.Get(operatorIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
