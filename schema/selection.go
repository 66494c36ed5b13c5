package schema

import "strings"

// JoinDelimiter separates the labels of a multi-select answer in a stored row.
const JoinDelimiter = ", "

// Selection is an ordered set of option labels picked for a multi-select question.
type Selection []string

// String joins the labels the way they are persisted.
func (s Selection) String() string {
	return strings.Join(s, JoinDelimiter)
}

// Contains reports whether label was picked.
func (s Selection) Contains(label string) bool {
	for _, v := range s {
		if v == label {
			return true
		}
	}
	return false
}

// SplitSelection reverses String. Empty parts are dropped, so a blank cell
// yields an empty selection.
func SplitSelection(raw string) Selection {
	if raw == "" {
		return Selection{}
	}

	parts := strings.Split(raw, JoinDelimiter)
	s := make(Selection, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			s = append(s, p)
		}
	}
	return s
}
