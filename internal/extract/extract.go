// internal/extract/extract.go
package extract

import (
	"regexp"
	"strings"
)

// Compiled identifier patterns. Each pattern captures the identifier in
// group 1; matching is against the raw query text, and the captured
// value is uppercased before use so downstream lookups are uniform.
var (
	// Quote identifiers in the QTID form. Quote-scoped flows accept a
	// short numeric suffix, ship-and-debit flows accept longer ones.
	QuoteShort = regexp.MustCompile(`QTID(\d{1,3})`)
	QuoteLong  = regexp.MustCompile(`QTID(\d{1,13})`)

	// Piggyback request identifiers.
	PiggybackRequest = regexp.MustCompile(`(PBK\d+|P\d+|REQ\d+)`)
	PartAddition     = regexp.MustCompile(`(ADD\d+|PGB-\d+)`)

	// Nine-digit opportunity numbers, optionally prefixed with "#".
	OpportunityNumber = regexp.MustCompile(`#?(\d{9})`)

	// Ten-digit quote numbers, optionally prefixed with "#".
	QuoteNumber = regexp.MustCompile(`#?(\d{10})`)

	// Customer data request identifiers.
	DataRequest = regexp.MustCompile(`(REQ\d+|CUST\d+|CDE\d+)`)

	// Labelled identifiers, e.g. "opportunity id: 123456789" or
	// "claim # CLM-42". The label tolerates an optional id/# token and
	// an optional separator.
	LabelledOpportunity = regexp.MustCompile(`(?i)opportunity\s+(?:id|#)?\s*[:=]?\s*(\d{9})`)
	LabelledClaim       = regexp.MustCompile(`(?i)claim\s+(?:id|#)?\s*[:=]?\s*(\w+[-\d]*)`)
	LabelledQuote       = regexp.MustCompile(`(?i)quote\s+(?:id|#)?\s*[:=]?\s*#?(\d{10})`)
	LabelledAgreement   = regexp.MustCompile(`(?i)agreement\s+(?:id|#)?\s*[:=]?\s*(\w+[-\d]*)`)
	LabelledPart        = regexp.MustCompile(`(?i)(?:part|pn|p/n)\s+(?:number|#)?\s*[:=]?\s*(\w+[-\d]*)`)
	LabelledIssue       = regexp.MustCompile(`(?i)issue\s+(?:id|#|ticket)?\s*[:=]?\s*(\w+[-\d]*)`)
)

// First runs re against query and returns the first capture group
// uppercased. The second return is false when nothing matched; an
// absent identifier is an expected outcome, not an error.
func First(re *regexp.Regexp, query string) (string, bool) {
	m := re.FindStringSubmatch(query)
	if m == nil || len(m) < 2 {
		return "", false
	}
	return strings.ToUpper(m[1]), true
}
