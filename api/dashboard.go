package api

import (
	"bytes"
	"fmt"
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/commerce-survey/consts"
	"github.com/bitmark-inc/commerce-survey/geo"
	"github.com/bitmark-inc/commerce-survey/logmodule"
	"github.com/bitmark-inc/commerce-survey/report"
	"github.com/bitmark-inc/commerce-survey/schema"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// loadDashboard reads every stored row and builds the report of the
// requested district. It aborts the request on failure.
func (s *Server) loadDashboard(c *gin.Context) (*schema.Snapshot, *report.Dashboard, bool) {
	records, err := s.store.ReadAll(c.Request.Context())
	if err != nil {
		logmodule.RequestLogger(c, "dashboard").Errorf("read responses with error: %s", err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		abortWithEncoding(c, http.StatusServiceUnavailable, localized(c, errorStoreUnavailable), err)
		return nil, nil, false
	}

	snapshot := schema.NewSnapshot(records)
	district := c.DefaultQuery("district", report.AllCategories)
	d := report.Build(snapshot, district)

	if !d.Empty && d.District != report.AllCategories && !contains(d.Districts, d.District) {
		abortWithEncoding(c, http.StatusBadRequest, localized(c, errorInvalidParameters),
			fmt.Errorf("unknown district: %s", d.District))
		return nil, nil, false
	}

	return snapshot, d, true
}

// dashboard returns every widget computed over the stored responses.
func (s *Server) dashboard(c *gin.Context) {
	_, d, ok := s.loadDashboard(c)
	if !ok {
		return
	}

	if viper.GetBool("map.geocode") {
		resolveAddresses(c, d)
	}

	d.Localize(requestLanguage(c))
	c.JSON(http.StatusOK, d)
}

// exportDashboard returns the filtered responses as an xlsx workbook.
func (s *Server) exportDashboard(c *gin.Context) {
	snapshot, d, ok := s.loadDashboard(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, snapshot.Header, d.Records()); shouldInterupt(err, c) {
		return
	}

	name := "todos"
	if key, err := consts.DistrictKey(d.District); err == nil {
		name = key
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="respuestas_%s.xlsx"`, name))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// resolveAddresses attaches postal addresses to map points. Points that
// cannot be resolved keep an empty address.
func resolveAddresses(c *gin.Context, d *report.Dashboard) {
	for i := range d.Widgets {
		for j, p := range d.Widgets[i].Points {
			addr, err := geo.ResolveAddress(c.Request.Context(), p.Coordinate())
			if err != nil {
				continue
			}
			d.Widgets[i].Points[j].Address = addr.Formatted
		}
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
