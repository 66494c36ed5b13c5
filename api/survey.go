package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/commerce-survey/consts"
	"github.com/bitmark-inc/commerce-survey/logmodule"
	"github.com/bitmark-inc/commerce-survey/schema"
	"github.com/bitmark-inc/commerce-survey/survey"
	"github.com/bitmark-inc/commerce-survey/utils"
)

// surveyForm returns the question catalog with its conditional rules.
func (s *Server) surveyForm(c *gin.Context) {
	fields := make([]schema.Field, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		if f.Key == schema.FieldTimestamp || f.Key == schema.FieldCanton {
			continue
		}
		fields = append(fields, f)
	}

	c.JSON(http.StatusOK, gin.H{
		"canton": consts.Canton,
		"fields": fields,
		"rules":  survey.Rules,
		"map": gin.H{
			"latitude":  consts.MapCenterLatitude,
			"longitude": consts.MapCenterLongitude,
			"zoom":      consts.MapZoom,
		},
	})
}

// surveyVisibility evaluates which questions are shown for partial answers.
func (s *Server) surveyVisibility(c *gin.Context) {
	var resp schema.SurveyResponse
	if err := c.ShouldBindJSON(&resp); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, localized(c, errorCannotParseRequest), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"visible": survey.VisibleFields(&resp)})
}

// submitResponse validates a submission and appends it as one row.
func (s *Server) submitResponse(c *gin.Context) {
	var resp schema.SurveyResponse
	if err := c.ShouldBindJSON(&resp); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, localized(c, errorCannotParseRequest), err)
		return
	}

	if err := survey.Validate(&resp); err != nil {
		var verr *survey.ValidationError
		if !errors.As(err, &verr) {
			shouldInterupt(err, c)
			return
		}
		abortWithEncoding(c, http.StatusBadRequest, validationError(c, verr), err)
		return
	}

	survey.Prune(&resp)
	resp.Timestamp = utils.FormatTimestamp(time.Now(), viper.GetString("survey.timezone"))
	resp.Canton = consts.Canton

	if err := s.store.Append(c.Request.Context(), resp.Row()); err != nil {
		logmodule.RequestLogger(c, "survey").Errorf("append response with error: %s", err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		abortWithEncoding(c, http.StatusServiceUnavailable, localized(c, errorWriteFailed), err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"result":  "OK",
		"message": utils.Localize(requestLanguage(c), "survey.submitted", nil),
	})
}

func validationError(c *gin.Context, verr *survey.ValidationError) ErrorResponse {
	e := errorInvalidResponse
	e.Missing = verr.Missing
	e.Invalid = verr.Invalid

	lang := requestLanguage(c)
	details := []string{}
	if len(verr.Missing) > 0 {
		details = append(details, utils.Localize(lang, "error.missing_fields",
			map[string]interface{}{"Fields": strings.Join(verr.Missing, ", ")}))
	}
	if len(verr.Invalid) > 0 {
		details = append(details, utils.Localize(lang, "error.invalid_fields",
			map[string]interface{}{"Fields": strings.Join(verr.Invalid, ", ")}))
	}
	e.Detail = strings.Join(details, " ")
	return e
}
