package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/response"
)

// pathID parses a positive integer path parameter, writing a 400 when it is malformed.
func pathID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid %s: %s", name, raw)))
		return 0, false
	}
	return id, true
}

// pathInt is pathID for small integer parameters such as a semester count.
func pathInt(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid %s: %s", name, raw)))
		return 0, false
	}
	return n, true
}

func bindJSON(c *gin.Context, dest interface{}, entity string) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid "+entity+" payload"))
		return false
	}
	return true
}

func nameQuery(c *gin.Context) string {
	return strings.TrimSpace(c.Query("name"))
}

func boolPtr(v bool) *bool {
	return &v
}
