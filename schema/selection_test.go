package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSelection(t *testing.T) {
	assert.Equal(t, Selection{}, SplitSelection(""))
	assert.Equal(t, Selection{"Hurto", "Estafa"}, SplitSelection("Hurto, Estafa"))
	assert.Equal(t, Selection{"Hurto", "Estafa"}, SplitSelection(", Hurto, , Estafa"))
	assert.Equal(t, Selection{"Otro"}, SplitSelection("Otro"))
}

func TestSelectionRoundTrip(t *testing.T) {
	s := Selection{"Poca iluminación en la zona", "Robos frecuentes"}
	assert.Equal(t, "Poca iluminación en la zona, Robos frecuentes", s.String())
	assert.Equal(t, s, SplitSelection(s.String()))
	assert.True(t, s.Contains("Robos frecuentes"))
	assert.False(t, s.Contains("Otro"))
}

func TestMultiSelectVocabulariesAreSplittable(t *testing.T) {
	for _, f := range Fields {
		if f.Kind != KindMulti {
			continue
		}
		for _, o := range f.Options {
			assert.False(t, strings.Contains(o, JoinDelimiter), "%s: %q", f.Key, o)
			assert.NotEmpty(t, o, f.Key)
		}
	}
}
