package survey

import "github.com/bitmark-inc/commerce-survey/schema"

// Rule shows a conditional field when the answer of its parent is one of
// Values.
type Rule struct {
	Field  string   `json:"field"`
	Parent string   `json:"parent"`
	Values []string `json:"values"`
}

// Rules lists every conditional question of the form.
var Rules = []Rule{
	{
		Field:  schema.FieldInsecurityFactors,
		Parent: schema.FieldSafetyPerception,
		Values: []string{schema.PerceptionUnsafe, schema.PerceptionVeryUnsafe},
	},
	{
		Field:  schema.FieldControlDescription,
		Parent: schema.FieldControlObservation,
		Values: []string{schema.ControlObserved},
	},
	{
		Field:  schema.FieldNoReportReasons,
		Parent: schema.FieldVictim,
		Values: []string{schema.VictimNotReported},
	},
	{
		Field:  schema.FieldCrimeType,
		Parent: schema.FieldVictim,
		Values: []string{schema.VictimReported},
	},
	{
		Field:  schema.FieldQuotaDescription,
		Parent: schema.FieldQuota,
		Values: []string{schema.QuotaDemanded},
	},
	{
		Field:  schema.FieldProgramContact,
		Parent: schema.FieldProgram,
		Values: []string{schema.ProgramWouldParticipate, schema.ProgramKnownNotParticipating},
	},
}

var ruleByField = map[string]Rule{}

func init() {
	for _, r := range Rules {
		ruleByField[r.Field] = r
	}
}

// IsVisible reports whether the form shows the field for the given answers.
func IsVisible(resp *schema.SurveyResponse, key string) bool {
	rule, ok := ruleByField[key]
	if !ok {
		return true
	}

	answer := resp.Value(rule.Parent)
	for _, v := range rule.Values {
		if answer == v {
			return true
		}
	}
	return false
}

// VisibleFields returns the keys of the fields shown for the given answers,
// in form order. Stamped fields are not part of the form.
func VisibleFields(resp *schema.SurveyResponse) []string {
	keys := make([]string, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		if stamped(f.Key) {
			continue
		}
		if IsVisible(resp, f.Key) {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// Prune clears answers left behind in fields that are hidden now.
func Prune(resp *schema.SurveyResponse) {
	for _, r := range Rules {
		if !IsVisible(resp, r.Field) {
			resp.Clear(r.Field)
		}
	}
}

func stamped(key string) bool {
	return key == schema.FieldTimestamp || key == schema.FieldCanton
}
