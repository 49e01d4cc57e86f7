// internal/respond/formatter.go
package respond

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"support-responder/internal/models"
)

// dateLayout renders like "August 31, 2026".
const dateLayout = "January 02, 2006"

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Formatter turns a template and a record into the final reply body.
// Every reply carries the same frame: a date line on top and the
// signature block at the bottom. Downstream consumers parse the section
// labels, so the frame and labels are a contract. Now is injectable so
// tests can pin the date line.
type Formatter struct {
	Now       func() time.Time
	Signature string
}

func NewFormatter(signature string) *Formatter {
	return &Formatter{Now: time.Now, Signature: signature}
}

// Render substitutes every {{field}} placeholder in template from
// fields and wraps the result in the date/signature frame. Placeholders
// with no value render as "N/A". Substitution is literal; choosing
// between alternate templates is the handler's job.
func (f *Formatter) Render(template string, fields models.Record) string {
	body := placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := placeholderPattern.FindStringSubmatch(m)[1]
		return fields.Field(name, "N/A")
	})
	return f.wrap(body)
}

// NotFound builds the reply for a lookup that matched no record. The
// wording is the same for every category apart from the identifier
// label.
func (f *Formatter) NotFound(label, id string) string {
	body := fmt.Sprintf(
		"No information found for %s: %s\n\n"+
			"Possible reasons:\n"+
			"- The %s may not exist in our database\n"+
			"- The %s format might be incorrect\n\n"+
			"Please verify the %s and try again.",
		label, id, strings.ToLower(label), strings.ToLower(label), strings.ToLower(label))
	return f.wrap(body)
}

// Guidance wraps a fixed instructional text, used when no usable
// identifier could be extracted from the query.
func (f *Formatter) Guidance(text string) string {
	return f.wrap(text)
}

// StoreUnavailable is the terminal reply when the record store cannot
// be reached for this request.
func (f *Formatter) StoreUnavailable() string {
	return f.wrap("Unable to access our records at the moment. Please try again later.")
}

func (f *Formatter) wrap(body string) string {
	var b strings.Builder
	b.WriteString("Date: ")
	b.WriteString(f.Now().Format(dateLayout))
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n\nBest Regards,\n")
	b.WriteString(f.Signature)
	return b.String()
}
