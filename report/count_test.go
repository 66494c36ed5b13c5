package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/commerce-survey/schema"
)

func TestSplitMultiValued(t *testing.T) {
	records := []schema.Record{
		{"Factores de inseguridad": "Robos frecuentes, Poca iluminación"},
		{"Factores de inseguridad": ""},
		{"Distrito": "Tamarindo"},
	}

	values := []string{}
	for _, r := range records {
		values = append(values, r["Factores de inseguridad"])
	}

	assert.Equal(t, []string{"Robos frecuentes", "Poca iluminación"}, SplitMultiValued(values))
	assert.Empty(t, SplitMultiValued(nil))
	assert.Empty(t, SplitMultiValued([]string{"", ""}))
}

func TestSplitMultiValuedRoundTrip(t *testing.T) {
	for _, f := range schema.Fields {
		if f.Kind != schema.KindMulti {
			continue
		}
		joined := schema.Selection(f.Options).String()
		assert.Equal(t, f.Options, SplitMultiValued([]string{joined}), f.Key)
	}
}

func TestCountFrequency(t *testing.T) {
	values := []string{"Hurto", "Estafa", "Asalto", "Estafa", "", "Hurto", "Estafa"}
	counts := CountFrequency(values)

	assert.Equal(t, []Count{
		{Label: "Estafa", Count: 3},
		{Label: "Hurto", Count: 2},
		{Label: "Asalto", Count: 1},
	}, counts)
	assert.Equal(t, 6, TotalCount(counts))
}

func TestCountFrequencyTiesKeepFirstAppearance(t *testing.T) {
	counts := CountFrequency([]string{"b", "a", "c", "a", "b", "c"})
	assert.Equal(t, []Count{{"b", 2}, {"a", 2}, {"c", 2}}, counts)
	assert.Empty(t, CountFrequency(nil))
}

func TestCountOrdered(t *testing.T) {
	values := []string{"Desconocido", "18:00-20:59", "00:00-02:59", "18:00-20:59", "mediodía"}
	counts := CountOrdered(values, schema.TimeBuckets)

	assert.Equal(t, []Count{
		{Label: "00:00-02:59", Count: 1},
		{Label: "18:00-20:59", Count: 2},
		{Label: "Desconocido", Count: 1},
	}, counts)

	position := map[string]int{}
	for i, b := range schema.TimeBuckets {
		position[b] = i
	}
	for i := 1; i < len(counts); i++ {
		assert.Less(t, position[counts[i-1].Label], position[counts[i].Label])
	}

	assert.Empty(t, CountOrdered(nil, schema.TimeBuckets))
}
