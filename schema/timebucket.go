package schema

import "strings"

// UnknownTimeBucket is the answer of a respondent who does not know when the
// crime happened.
const UnknownTimeBucket = "Desconocido"

// TimeBuckets is the canonical order of the crime schedule chart.
var TimeBuckets = []string{
	"00:00-02:59",
	"03:00-05:59",
	"06:00-08:59",
	"09:00-11:59",
	"12:00-14:59",
	"15:00-17:59",
	"18:00-20:59",
	"21:00-23:59",
	UnknownTimeBucket,
}

// TimeBucket canonicalizes a stored schedule answer such as
// "00:00 - 02:59 a.m." into its bucket label. Values outside the canonical
// order report false.
func TimeBucket(raw string) (string, bool) {
	v := strings.ToLower(strings.Join(strings.Fields(raw), ""))
	for _, suffix := range []string{"a.m.", "p.m.", "am", "pm"} {
		v = strings.TrimSuffix(v, suffix)
	}

	for _, b := range TimeBuckets {
		if strings.ToLower(b) == v {
			return b, true
		}
	}
	return "", false
}
