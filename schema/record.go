package schema

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Record is one stored row keyed by its header. All values are strings.
type Record map[string]string

// NewRecord zips a header with a row. Missing trailing cells are blank and
// cells beyond the header are dropped.
func NewRecord(header, row []string) Record {
	r := make(Record, len(header))
	for i, h := range header {
		if h == "" {
			continue
		}
		if i < len(row) {
			r[h] = row[i]
		} else {
			r[h] = ""
		}
	}
	return r
}

// Snapshot is a read-only view over every stored record with the catalog
// fields resolved against the header that is actually present.
type Snapshot struct {
	Header  []string
	Records []Record

	columns map[string]string
}

// NewSnapshot normalizes values to trimmed NFC text and resolves the column
// of each catalog field through its aliases. The header lists catalog columns
// in row order followed by unknown columns sorted by name.
func NewSnapshot(records []Record) *Snapshot {
	s := &Snapshot{
		Records: make([]Record, 0, len(records)),
		columns: map[string]string{},
	}

	seen := map[string]bool{}
	for _, rec := range records {
		normalized := make(Record, len(rec))
		for k, v := range rec {
			k = normalize(k)
			normalized[k] = normalize(v)
			seen[k] = true
		}
		s.Records = append(s.Records, normalized)
	}

	known := map[string]bool{}
	for _, f := range Fields {
		for _, c := range f.Columns() {
			if seen[normalize(c)] {
				s.columns[f.Key] = normalize(c)
				s.Header = append(s.Header, normalize(c))
				known[normalize(c)] = true
				break
			}
		}
	}

	extra := []string{}
	for k := range seen {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	s.Header = append(s.Header, extra...)

	return s
}

func normalize(v string) string {
	return strings.TrimSpace(norm.NFC.String(v))
}

// Column returns the header name holding the field, false when no accepted
// name is present.
func (s *Snapshot) Column(key string) (string, bool) {
	c, ok := s.columns[key]
	return c, ok
}

// Values lists the field's cells in record order.
func (s *Snapshot) Values(key string) []string {
	c, ok := s.Column(key)
	if !ok {
		return nil
	}

	values := make([]string, 0, len(s.Records))
	for _, r := range s.Records {
		values = append(values, r[c])
	}
	return values
}

// WithRecords returns a snapshot over a subset of the records sharing the
// same column resolution.
func (s *Snapshot) WithRecords(records []Record) *Snapshot {
	return &Snapshot{
		Header:  s.Header,
		Records: records,
		columns: s.columns,
	}
}
