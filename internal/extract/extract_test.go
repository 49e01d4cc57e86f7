package extract

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	tests := []struct {
		name    string
		pattern *regexp.Regexp
		query   string
		want    string
		wantOK  bool
	}{
		{
			name:    "short quote id",
			pattern: QuoteShort,
			query:   "I need to update the POS on my quote QTID1",
			want:    "1",
			wantOK:  true,
		},
		{
			name:    "short quote id caps at three digits",
			pattern: QuoteShort,
			query:   "pricing for QTID123456",
			want:    "123",
			wantOK:  true,
		},
		{
			name:    "long quote id",
			pattern: QuoteLong,
			query:   "ship and debit for QTID1234567890123",
			want:    "1234567890123",
			wantOK:  true,
		},
		{
			name:    "piggyback request id uppercased",
			pattern: PiggybackRequest,
			query:   "please create the piggyback for PBK4451",
			want:    "PBK4451",
			wantOK:  true,
		},
		{
			name:    "part addition id with hyphen",
			pattern: PartAddition,
			query:   "add parts under PGB-4023 as discussed",
			want:    "PGB-4023",
			wantOK:  true,
		},
		{
			name:    "opportunity number with hash prefix",
			pattern: OpportunityNumber,
			query:   "opportunity #123456789 was rejected in sfdc",
			want:    "123456789",
			wantOK:  true,
		},
		{
			name:    "ten digit quote number",
			pattern: QuoteNumber,
			query:   "quote 1234567890 closed in gpms with no document",
			want:    "1234567890",
			wantOK:  true,
		},
		{
			name:    "customer data request id",
			pattern: DataRequest,
			query:   "status of data request CDE20391",
			want:    "CDE20391",
			wantOK:  true,
		},
		{
			name:    "labelled opportunity tolerates separator",
			pattern: LabelledOpportunity,
			query:   "Opportunity ID: 987654321 is pending on sfdc",
			want:    "987654321",
			wantOK:  true,
		},
		{
			name:    "labelled claim",
			pattern: LabelledClaim,
			query:   "my claim # CLM-4432 was rejected",
			want:    "CLM-4432",
			wantOK:  true,
		},
		{
			name:    "labelled part number",
			pattern: LabelledPart,
			query:   "issues with part number 1-2345678-9 on te.com",
			want:    "1-2345678-9",
			wantOK:  true,
		},
		{
			name:    "no match is a clean miss",
			pattern: QuoteShort,
			query:   "general question about products",
			want:    "",
			wantOK:  false,
		},
		{
			name:    "first match wins among candidates",
			pattern: OpportunityNumber,
			query:   "opps 111111111 and 222222222 both rejected",
			want:    "111111111",
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := First(tt.pattern, tt.query)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstUppercasesCapture(t *testing.T) {
	_, ok := First(PiggybackRequest, "status of req5512 please")
	assert.False(t, ok, "bare identifier patterns are case sensitive")

	got, ok := First(LabelledClaim, "my claim id: clm-4432 was rejected")
	assert.True(t, ok)
	assert.Equal(t, "CLM-4432", got)
}
