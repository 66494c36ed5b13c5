package api

import (
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/commerce-survey/utils"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1200: "survey response is incomplete or invalid",

		1300: "response store is unavailable",
		1301: "response could not be saved",
	}

	errorInternalServer = errorJSON(999)
	errorInvalidToken   = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorInvalidResponse = errorJSON(1200)

	errorStoreUnavailable = errorJSON(1300)
	errorWriteFailed      = errorJSON(1301)
)

// messageIDs holds the localized text of errors shown to respondents.
var messageIDs = map[int64]string{
	1003: "error.api_token",
	1010: "error.bad_request",
	1011: "error.bad_request",
	1300: "error.store_unavailable",
	1301: "error.write_failed",
}

type ErrorResponse struct {
	Code      int64    `json:"code"`
	Message   string   `json:"message"`
	Detail    string   `json:"detail,omitempty"`
	Retryable bool     `json:"retryable,omitempty"`
	Missing   []string `json:"missing,omitempty"`
	Invalid   []string `json:"invalid,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:      code,
		Message:   message,
		Retryable: code == 1300 || code == 1301,
	}
}

// localized fills the detail with the text of the error in the language of
// the request.
func localized(c *gin.Context, e ErrorResponse) ErrorResponse {
	if id, ok := messageIDs[e.Code]; ok {
		e.Detail = utils.Localize(requestLanguage(c), id, nil)
	}
	return e
}

// requestLanguage prefers the `lang` query over the Accept-Language header.
func requestLanguage(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	return c.GetHeader("Accept-Language")
}
