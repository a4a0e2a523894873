// Package controller provides the HTTP handlers of the priceboard API.
// Controllers bind and validate request payloads, call services, and map
// service errors to response codes.
package controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/aurify/priceboard/logger"
	"github.com/aurify/priceboard/web/entity"

	"github.com/gin-gonic/gin"
)

// jsonMsg sends the envelope with a message. Success is derived from the
// status code.
func jsonMsg(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: statusCode < http.StatusBadRequest,
		Message: msg,
	})
}

// jsonData sends a successful envelope carrying a data payload.
func jsonData(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, entity.Msg{
		Success: true,
		Data:    data,
	})
}

// jsonErrors sends a failure envelope carrying a field-to-message mapping.
func jsonErrors(c *gin.Context, statusCode int, errs map[string]string) {
	c.JSON(statusCode, entity.Msg{
		Success: false,
		Errors:  errs,
	})
}

// jsonInternal logs the error server-side and answers with a generic
// message, never leaking internals.
func jsonInternal(c *gin.Context, msg string, err error) {
	logger.Warning(msg+":", err)
	jsonMsg(c, http.StatusInternalServerError, msg)
}

// isFalsy mirrors loose JSON truthiness: absent values, null, false, empty
// strings and zero are all falsy.
func isFalsy(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case bool:
		return !value
	case string:
		return value == ""
	case float64:
		return value == 0
	default:
		return false
	}
}

// stringify renders a JSON scalar the way a display string would be built
// from it, so a numeric purity or unit is accepted as its decimal form.
func stringify(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

// toNumber applies loose numeric coercion: numbers pass through, numeric
// strings are parsed, booleans map to 0/1, and everything else, including
// non-finite results, collapses to 0.
func toNumber(v any) float64 {
	var n float64
	switch value := v.(type) {
	case float64:
		n = value
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		n = parsed
	case bool:
		if value {
			n = 1
		}
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
