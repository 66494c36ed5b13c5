package report

import "github.com/bitmark-inc/commerce-survey/schema"

type ChartKind string

const (
	ChartPie       ChartKind = "pie"
	ChartHistogram ChartKind = "histogram"
	ChartLine      ChartKind = "line"
	ChartMap       ChartKind = "map"
)

// Widget binds a chart to the catalog field it is computed from.
type Widget struct {
	ID    string
	Field string
	Chart ChartKind
}

// TitleID is the message id of the widget title.
func (w Widget) TitleID() string {
	return "widget." + w.ID
}

var DefaultWidgets = []Widget{
	{ID: "safety_perception", Field: schema.FieldSafetyPerception, Chart: ChartPie},
	{ID: "insecurity_factors", Field: schema.FieldInsecurityFactors, Chart: ChartHistogram},
	{ID: "social_factors", Field: schema.FieldSocialFactors, Chart: ChartHistogram},
	{ID: "social_investment", Field: schema.FieldSocialInvestment, Chart: ChartHistogram},
	{ID: "zone_crimes", Field: schema.FieldZoneCrimes, Chart: ChartHistogram},
	{ID: "victimization", Field: schema.FieldVictim, Chart: ChartPie},
	{ID: "crime_type", Field: schema.FieldCrimeType, Chart: ChartHistogram},
	{ID: "no_report_reasons", Field: schema.FieldNoReportReasons, Chart: ChartHistogram},
	{ID: "crime_schedule", Field: schema.FieldCrimeSchedule, Chart: ChartLine},
	{ID: "operating_mode", Field: schema.FieldOperatingMode, Chart: ChartHistogram},
	{ID: "business_type", Field: schema.FieldBusinessType, Chart: ChartPie},
	{ID: "police_rating", Field: schema.FieldPoliceRating, Chart: ChartPie},
	{ID: "locations", Field: schema.FieldLocation, Chart: ChartMap},
}

// WidgetData is a computed widget.
type WidgetData struct {
	ID     string     `json:"id"`
	Chart  ChartKind  `json:"chart"`
	Title  string     `json:"title"`
	Column string     `json:"column"`
	Total  int        `json:"total"`
	Counts []Count    `json:"counts,omitempty"`
	Points []GeoPoint `json:"points,omitempty"`
}

func (w Widget) compute(s *schema.Snapshot) (WidgetData, bool) {
	column, ok := s.Column(w.Field)
	if !ok {
		return WidgetData{}, false
	}

	data := WidgetData{
		ID:     w.ID,
		Chart:  w.Chart,
		Title:  w.TitleID(),
		Column: column,
	}

	values := s.Values(w.Field)
	switch w.Chart {
	case ChartPie:
		data.Counts = CountFrequency(values)
	case ChartHistogram:
		data.Counts = CountFrequency(SplitMultiValued(values))
	case ChartLine:
		buckets := make([]string, 0, len(values))
		for _, v := range values {
			if b, ok := schema.TimeBucket(v); ok {
				buckets = append(buckets, b)
			}
		}
		data.Counts = CountOrdered(buckets, schema.TimeBuckets)
	case ChartMap:
		category, _ := s.Column(schema.FieldDistrict)
		data.Points = CollectGeoPoints(s.Records, column, category)
		data.Total = len(data.Points)
		return data, true
	}

	data.Total = TotalCount(data.Counts)
	return data, true
}
