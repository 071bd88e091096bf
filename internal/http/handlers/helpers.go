package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amcdental/dentalhub-backend/internal/platform/apierr"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func pathUUID(c *gin.Context, name, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, apierr.BadRequest("invalid_id", "invalid "+what+" id")
	}
	return id, nil
}

// optionalUserID reads ?userId=. Absent means no viewer.
func optionalUserID(c *gin.Context) (*int64, error) {
	raw := strings.TrimSpace(c.Query("userId"))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, apierr.BadRequest("invalid_user_id", "userId must be a positive integer")
	}
	return &id, nil
}

func requiredUserID(c *gin.Context) (int64, error) {
	id, err := optionalUserID(c)
	if err != nil {
		return 0, err
	}
	if id == nil {
		return 0, apierr.BadRequest("invalid_user_id", "userId is required")
	}
	return *id, nil
}

func listLimit(c *gin.Context) (int, error) {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return defaultListLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, apierr.BadRequest("invalid_limit", "limit must be a positive integer")
	}
	if n > maxListLimit {
		n = maxListLimit
	}
	return n, nil
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apierr.BadRequest("invalid_body", "invalid JSON body: "+err.Error())
	}
	return nil
}

// jsonObject accepts an absent/null value or a JSON object.
func jsonObject(raw json.RawMessage, field string) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, apierr.BadRequest("invalid_body", field+" must be a JSON object")
	}
	return trimmed, nil
}
