package report

import "github.com/bitmark-inc/commerce-survey/schema"

// AllCategories is the filter value that keeps every record.
const AllCategories = "Todos"

// FilterByCategory keeps the records whose column equals value, in order.
// AllCategories, an empty value or a column absent from every record return
// the input unchanged.
func FilterByCategory(records []schema.Record, column, value string) []schema.Record {
	if value == "" || value == AllCategories || !hasColumn(records, column) {
		return records
	}

	filtered := make([]schema.Record, 0, len(records))
	for _, r := range records {
		if r[column] == value {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func hasColumn(records []schema.Record, column string) bool {
	for _, r := range records {
		if _, ok := r[column]; ok {
			return true
		}
	}
	return false
}

// Categories lists the distinct non-empty values of a column in order of
// first appearance.
func Categories(records []schema.Record, column string) []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, r := range records {
		v, ok := r[column]
		if !ok || v == "" || seen[v] {
			continue
		}
		seen[v] = true
		categories = append(categories, v)
	}
	return categories
}
