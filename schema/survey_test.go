package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	header := Header()
	assert.Len(t, header, 38)
	assert.Equal(t, "Fecha y hora", header[0])
	assert.Equal(t, "Distrito", header[2])
	assert.Equal(t, "Factores de inseguridad (selección múltiple)", header[9])
	assert.Equal(t, "Información adicional", header[37])
}

func TestResponseRow(t *testing.T) {
	r := SurveyResponse{
		Timestamp:         "2025-05-01T10:00:00.000000",
		Canton:            "Santa Cruz",
		District:          "Tamarindo",
		Age:               34,
		Location:          &Coordinate{Latitude: 10.3, Longitude: -85.8},
		SafetyPerception:  PerceptionUnsafe,
		InsecurityFactors: Selection{"Poca iluminación en la zona", "Robos frecuentes"},
		AdditionalInfo:    "nada",
	}

	row := r.Row()
	assert.Len(t, row, len(Fields))
	assert.Equal(t, "2025-05-01T10:00:00.000000", row[0])
	assert.Equal(t, "Santa Cruz", row[1])
	assert.Equal(t, "Tamarindo", row[2])
	assert.Equal(t, "34", row[3])
	assert.Equal(t, "https://www.google.com/maps?q=10.3,-85.8", row[7])
	assert.Equal(t, PerceptionUnsafe, row[8])
	assert.Equal(t, "Poca iluminación en la zona, Robos frecuentes", row[9])
	assert.Equal(t, "", row[10])
	assert.Equal(t, "nada", row[37])
}

func TestResponseClear(t *testing.T) {
	r := SurveyResponse{
		Age:              20,
		Location:         &Coordinate{Latitude: 1, Longitude: 2},
		Quota:            QuotaDemanded,
		QuotaDescription: "cada semana",
		CrimeType:        Selection{"Hurto"},
	}

	for _, key := range []string{FieldAge, FieldLocation, FieldQuotaDescription, FieldCrimeType} {
		assert.True(t, r.Answered(key), key)
		r.Clear(key)
		assert.False(t, r.Answered(key), key)
	}
	assert.Equal(t, QuotaDemanded, r.Quota)
	assert.Nil(t, r.Selected(FieldCrimeType))
}

func TestEveryFieldIsAddressable(t *testing.T) {
	r := SurveyResponse{}
	for _, f := range Fields {
		switch f.Kind {
		case KindMulti:
			_, ok := r.selections()[f.Key]
			assert.True(t, ok, f.Key)
		case KindNumber, KindLocation:
		default:
			_, ok := r.texts()[f.Key]
			assert.True(t, ok, f.Key)
		}
	}
}
