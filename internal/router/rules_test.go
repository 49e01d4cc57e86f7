package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"support-responder/internal/models"
)

func TestMatchRules(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    models.Category
		matched bool
	}{
		{
			name:    "pos with update",
			query:   "i need to update the pos on my quote qtid1",
			want:    models.CategoryPosReplace,
			matched: true,
		},
		{
			name:    "pos with replace",
			query:   "please replace the pos customer",
			want:    models.CategoryPosReplace,
			matched: true,
		},
		{
			name:    "pricing keyword",
			query:   "what is the validity of my quote",
			want:    models.CategoryGeneralPricing,
			matched: true,
		},
		{
			name:    "piggyback creation",
			query:   "requesting creation of a piggyback",
			want:    models.CategoryPiggybackCreation,
			matched: true,
		},
		{
			name:    "add parts to piggyback",
			query:   "please add these parts to the piggyback",
			want:    models.CategoryAddingPartsToPiggyback,
			matched: true,
		},
		{
			name:    "ship and debit without claim",
			query:   "fsa conversion status please",
			want:    models.CategoryShipAndDebit,
			matched: true,
		},
		{
			name:    "ship keyword with claim goes past rule five",
			query:   "my ship claim was rejected",
			want:    models.CategorySADClaimRejection,
			matched: true,
		},
		{
			name:    "rejected on sfdc",
			query:   "why was my opportunity reject(ed) on sfdc",
			want:    models.CategoryOpportunitiesRejectedSFDC,
			matched: true,
		},
		{
			name:    "incorrect rejection skips plain rejection rule",
			query:   "opportunity reject on sfdc was incorrect",
			want:    models.CategoryOppRejectedIncorrectlySFDC,
			matched: true,
		},
		{
			name:    "pending approval on sfdc",
			query:   "opportunity pending approval with dmm on sfdc",
			want:    models.CategoryPendingApprovalSFDC,
			matched: true,
		},
		{
			name:    "quote closed in gpms without document",
			query:   "quote closed in gpms but no document generated",
			want:    models.CategoryQuoteClosedGPMSNoDocument,
			matched: true,
		},
		{
			name:    "customer data enquiry",
			query:   "following up on my data request",
			want:    models.CategoryCustomerDataEnquiries,
			matched: true,
		},
		{
			name:    "pending on gpms",
			query:   "quote pending review on gpms",
			want:    models.CategoryQuotesPendingReviewGPMS,
			matched: true,
		},
		{
			name:    "loa",
			query:   "status of my letter of authorization",
			want:    models.CategoryLOARelated,
			matched: true,
		},
		{
			name:    "agreement part number",
			query:   "agreement pn addition request",
			want:    models.CategoryAgreementPNAdditionRemoval,
			matched: true,
		},
		{
			name:    "website issue",
			query:   "the website search does not work",
			want:    models.CategoryTEComIssues,
			matched: true,
		},
		{
			name:    "product enquiry",
			query:   "product specifications for connector",
			want:    models.CategoryProductEnquiry,
			matched: true,
		},
		{
			name:    "feedback",
			query:   "i have a suggestion for your team",
			want:    models.CategoryFeedback,
			matched: true,
		},
		{
			name:    "complaint",
			query:   "i am dissatisfied with the service",
			want:    models.CategoryComplaint,
			matched: true,
		},
		{
			name:    "no rule fires",
			query:   "hello there",
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matched := matchRules(tt.query)
			assert.Equal(t, tt.matched, matched)
			if tt.matched {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// The rule order is a contract: "pricing" alone belongs to general
// pricing, but "pos" plus "update" must win even when pricing words
// are present later in the table order.
func TestMatchRulesOrder(t *testing.T) {
	got, matched := matchRules("update pos and confirm pricing")
	assert.True(t, matched)
	assert.Equal(t, models.CategoryPosReplace, got)

	got, matched = matchRules("pricing validity for piggyback creation")
	assert.True(t, matched)
	assert.Equal(t, models.CategoryGeneralPricing, got)
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name  string
		query string
		start models.Category
		want  models.Category
	}{
		{
			name:  "bare ten digit token forces ship and debit",
			query: "please check 1234567890 for me",
			start: models.CategoryFallback,
			want:  models.CategoryShipAndDebit,
		},
		{
			name:  "ship keyword with reject forces claim rejection",
			query: "debit claim was rejected again",
			start: models.CategoryFallback,
			want:  models.CategorySADClaimRejection,
		},
		{
			name:  "website keywords force te com",
			query: "spr creation failing on te.com",
			start: models.CategoryGeneralPricing,
			want:  models.CategoryTEComIssues,
		},
		{
			name:  "agreement with pn forces agreement category",
			query: "remove pn from our agreement",
			start: models.CategoryFallback,
			want:  models.CategoryAgreementPNAdditionRemoval,
		},
		{
			name:  "no override keywords leaves category alone",
			query: "general question",
			start: models.CategoryProductEnquiry,
			want:  models.CategoryProductEnquiry,
		},
		{
			name:  "te com override outranks ship override",
			query: "ship issue reported via website",
			start: models.CategoryFallback,
			want:  models.CategoryTEComIssues,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, applyOverrides(tt.query, tt.start))
		})
	}
}
