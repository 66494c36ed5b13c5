package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	r := NewRecord([]string{"Distrito", "Edad", "Sexo"}, []string{"Tamarindo", "40"})
	assert.Equal(t, Record{"Distrito": "Tamarindo", "Edad": "40", "Sexo": ""}, r)

	r = NewRecord([]string{"Distrito"}, []string{"Cartagena", "extra"})
	assert.Equal(t, Record{"Distrito": "Cartagena"}, r)
}

func TestSnapshotResolvesAliases(t *testing.T) {
	s := NewSnapshot([]Record{
		{"Distrito": " Tamarindo ", "Factores de inseguridad": "Robos frecuentes", "Extra": "x"},
		{"Distrito": "Cartagena", "Factores de inseguridad": "", "Cantón": "Santa Cruz"},
	})

	c, ok := s.Column(FieldInsecurityFactors)
	assert.True(t, ok)
	assert.Equal(t, "Factores de inseguridad", c)

	c, ok = s.Column(FieldCanton)
	assert.True(t, ok)
	assert.Equal(t, "Cantón", c)

	_, ok = s.Column(FieldCrimeSchedule)
	assert.False(t, ok)
	assert.Nil(t, s.Values(FieldCrimeSchedule))

	assert.Equal(t, []string{"Tamarindo", "Cartagena"}, s.Values(FieldDistrict))
	assert.Equal(t, []string{"Cantón", "Distrito", "Factores de inseguridad", "Extra"}, s.Header)
}

func TestSnapshotWithRecords(t *testing.T) {
	s := NewSnapshot([]Record{{"Distrito": "Tamarindo"}, {"Distrito": "Cartagena"}})
	sub := s.WithRecords(s.Records[1:])
	assert.Equal(t, []string{"Cartagena"}, sub.Values(FieldDistrict))
	assert.Len(t, s.Records, 2)
}

func TestCells(t *testing.T) {
	c := Cells{"a", "b, c"}
	v, err := c.Value()
	assert.NoError(t, err)

	var scanned Cells
	assert.NoError(t, scanned.Scan(v))
	assert.Equal(t, c, scanned)

	assert.NoError(t, scanned.Scan(`["x"]`))
	assert.Equal(t, Cells{"x"}, scanned)

	assert.Error(t, scanned.Scan(42))
}
