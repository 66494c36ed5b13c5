package report

import (
	"strconv"

	"github.com/montanaflynn/stats"

	"github.com/bitmark-inc/commerce-survey/schema"
	"github.com/bitmark-inc/commerce-survey/utils"
)

// AgeSummary describes the ages that could be parsed.
type AgeSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Dashboard is the report over one filtered snapshot.
type Dashboard struct {
	Title     string       `json:"title"`
	District  string       `json:"district"`
	Districts []string     `json:"districts"`
	Total     int          `json:"total"`
	Empty     bool         `json:"empty"`
	Message   string       `json:"message,omitempty"`
	Age       *AgeSummary  `json:"age,omitempty"`
	Widgets   []WidgetData `json:"widgets"`
	Missing   []string     `json:"missing,omitempty"`
	Warnings  []string     `json:"warnings,omitempty"`

	records []schema.Record
}

// Records returns the filtered records the dashboard was computed from.
func (d *Dashboard) Records() []schema.Record {
	return d.records
}

// Build computes every default widget over the records of district. Widgets
// whose column is absent are listed in Missing and skipped.
func Build(s *schema.Snapshot, district string) *Dashboard {
	if district == "" {
		district = AllCategories
	}

	d := &Dashboard{
		Title:     "dashboard.title",
		District:  district,
		Districts: []string{},
		Widgets:   []WidgetData{},
	}

	if len(s.Records) == 0 {
		d.Empty = true
		d.Message = "dashboard.empty"
		return d
	}

	if column, ok := s.Column(schema.FieldDistrict); ok {
		d.Districts = Categories(s.Records, column)
		s = s.WithRecords(FilterByCategory(s.Records, column, district))
	}

	d.records = s.Records
	d.Total = len(s.Records)
	d.Age = summarizeAges(s.Values(schema.FieldAge))

	for _, w := range DefaultWidgets {
		data, ok := w.compute(s)
		if !ok {
			f, _ := schema.FieldByKey(w.Field)
			d.Missing = append(d.Missing, f.Column)
			continue
		}
		d.Widgets = append(d.Widgets, data)
	}

	return d
}

func summarizeAges(values []string) *AgeSummary {
	ages := stats.Float64Data{}
	for _, v := range values {
		age, err := strconv.ParseFloat(v, 64)
		if err != nil || age <= 0 {
			continue
		}
		ages = append(ages, age)
	}

	if len(ages) == 0 {
		return nil
	}

	summary := &AgeSummary{Count: len(ages)}
	summary.Mean, _ = stats.Mean(ages)
	summary.Median, _ = stats.Median(ages)
	summary.Min, _ = stats.Min(ages)
	summary.Max, _ = stats.Max(ages)
	return summary
}

// Localize replaces message ids with text in lang.
func (d *Dashboard) Localize(lang string) {
	d.Title = utils.Localize(lang, d.Title, nil)
	if d.Message != "" {
		d.Message = utils.Localize(lang, d.Message, nil)
	}
	for i := range d.Widgets {
		d.Widgets[i].Title = utils.Localize(lang, d.Widgets[i].Title, nil)
	}
	d.Warnings = d.Warnings[:0]
	for _, column := range d.Missing {
		d.Warnings = append(d.Warnings, utils.Localize(lang, "dashboard.column_missing", map[string]interface{}{"Column": column}))
	}
}
