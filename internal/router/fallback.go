// internal/router/fallback.go
package router

import (
	"fmt"
	"regexp"
	"strings"

	"support-responder/internal/models"
)

// systemPrompt instructs the completion model to answer with exactly
// one category label.
const systemPrompt = "You are a routing assistant for TE Connectivity's support team. " +
	"Classify the user's query into exactly one of the listed categories and reply with only the category name."

// buildUserPrompt enumerates every category in fixed order so the model
// sees a stable menu.
func buildUserPrompt(query string) string {
	var b strings.Builder
	b.WriteString("Categories:\n")
	for _, c := range models.AllCategories {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	b.WriteString("\nQuery: ")
	b.WriteString(query)
	return b.String()
}

// hint maps a category to the phrases that identify it inside a model
// reply.
type hint struct {
	category models.Category
	keywords []string
}

// categoryHints is scanned in order against the lowercased model reply;
// the first category with a matching phrase wins. Order matters for the
// same reason the rule table is ordered.
var categoryHints = []hint{
	{models.CategoryPosReplace, []string{"pos replace", "pos replacement", "pos update"}},
	{models.CategoryGeneralPricing, []string{"pricing", "price adjust", "volume discount", "validity", "quote extension"}},
	{models.CategoryPiggybackCreation, []string{"piggyback creation", "create piggyback", "new piggyback"}},
	{models.CategoryAddingPartsToPiggyback, []string{"add part", "add to piggyback", "existing piggyback"}},
	{models.CategoryShipAndDebit, []string{"ship", "debit", "s&d", "fsa to s&d", "fsa conversion"}},
	{models.CategoryOpportunitiesRejectedSFDC, []string{"rejected opportunity", "sfdc rejection"}},
	{models.CategoryPendingApprovalSFDC, []string{"pending approval", "approve opportunity"}},
	{models.CategoryQuoteClosedGPMSNoDocument, []string{"closed quote", "no document", "quote document"}},
	{models.CategoryQuoteNotReachingPricing, []string{"quote not reaching", "not reached pricing"}},
	{models.CategoryCustomerDataEnquiries, []string{"customer data", "data enquiry", "data request"}},
	{models.CategoryQuotesPendingReviewGPMS, []string{"quote pending", "gpms review"}},
	{models.CategoryOppsPendingReviewSFDC, []string{"opportunity pending", "sfdc review"}},
	{models.CategoryOppRejectedIncorrectlySFDC, []string{"incorrectly rejected", "wrong rejection"}},
	{models.CategoryLOARelated, []string{"loa", "letter of authorization"}},
	{models.CategorySADClaimRejection, []string{"claim rejection", "s&d claim", "rejected claim"}},
	{models.CategoryAgreementPNAdditionRemoval, []string{"agreement", "pn addition", "pn removal"}},
	{models.CategoryTEComIssues, []string{"te.com", "website issue", "spr"}},
	{models.CategoryProductEnquiry, []string{"product", "product specs", "product details"}},
	{models.CategoryFeedback, []string{"feedback", "suggestion"}},
	{models.CategoryComplaint, []string{"complaint", "dissatisfied"}},
}

// categoryFromReply maps a raw model reply to a category. An exact
// label takes precedence; otherwise the hint table is scanned in order.
// Anything unrecognizable lands in the catch-all category.
func categoryFromReply(reply string) models.Category {
	text := strings.ToLower(strings.TrimSpace(reply))

	if c := models.Category(text); c.IsValid() {
		return c
	}
	for _, h := range categoryHints {
		for _, kw := range h.keywords {
			if strings.Contains(text, kw) {
				return h.category
			}
		}
	}
	return models.CategoryFallback
}

// tenDigitToken matches a bare 10-digit number, treated as a quote
// number in the override pass.
var tenDigitToken = regexp.MustCompile(`\b\d{10}\b`)

// applyOverrides runs the hard-override pass on the lowercased query.
// It runs unconditionally after the classifier, regardless of what the
// completion service replied, and can only narrow the result toward
// the domains it guards.
func applyOverrides(q string, category models.Category) models.Category {
	if containsAny(q, "ship", "debit", "s&d", "fsa", "sandd") || tenDigitToken.MatchString(q) {
		if containsAny(q, "claim", "reject") {
			category = models.CategorySADClaimRejection
		} else {
			category = models.CategoryShipAndDebit
		}
	}
	if containsAny(q, "te.com", "website", "spr") {
		category = models.CategoryTEComIssues
	}
	if strings.Contains(q, "agreement") && containsAny(q, "part", "pn") {
		category = models.CategoryAgreementPNAdditionRemoval
	}
	return category
}
