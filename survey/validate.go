package survey

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/commerce-survey/schema"
)

// requiredOrder is the order missing answers are reported in.
var requiredOrder = []string{
	schema.FieldLocation,
	schema.FieldDistrict,
	schema.FieldSex,
	schema.FieldEducation,
	schema.FieldBusinessType,
	schema.FieldSafetyPerception,
	schema.FieldVictim,
	schema.FieldCrimeSchedule,
	schema.FieldQuota,
	schema.FieldPoliceRating,
	schema.FieldServiceChange,
	schema.FieldPoliceAcquaintance,
	schema.FieldProgram,
}

// ValidationError lists every problem of a submission at once.
type ValidationError struct {
	Missing []string `json:"missing,omitempty"`
	Invalid []string `json:"invalid,omitempty"`
}

func (e *ValidationError) Error() string {
	parts := []string{}
	if len(e.Missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid: "+strings.Join(e.Invalid, ", "))
	}
	return fmt.Sprintf("invalid survey response (%s)", strings.Join(parts, "; "))
}

// Validate checks required answers, closed vocabularies and the age range.
// Hidden conditional fields are not checked. Entries are field labels.
func Validate(resp *schema.SurveyResponse) error {
	e := &ValidationError{}

	for _, key := range requiredOrder {
		if !resp.Answered(key) {
			f, _ := schema.FieldByKey(key)
			e.Missing = append(e.Missing, f.Label)
		}
	}

	for _, f := range schema.Fields {
		if !IsVisible(resp, f.Key) {
			continue
		}

		switch f.Kind {
		case schema.KindSingle:
			if v := resp.Value(f.Key); v != "" && !f.HasOption(v) {
				e.Invalid = append(e.Invalid, f.Label)
			}
		case schema.KindMulti:
			for _, v := range resp.Selected(f.Key) {
				if !f.HasOption(v) {
					e.Invalid = append(e.Invalid, f.Label)
					break
				}
			}
		case schema.KindNumber:
			if resp.Age != 0 && (resp.Age < schema.MinAge || resp.Age > schema.MaxAge) {
				e.Invalid = append(e.Invalid, f.Label)
			}
		case schema.KindLocation:
			if resp.Location != nil && !resp.Location.Valid() {
				e.Invalid = append(e.Invalid, f.Label)
			}
		}
	}

	if len(e.Missing) == 0 && len(e.Invalid) == 0 {
		return nil
	}
	return e
}
