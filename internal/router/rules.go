// internal/router/rules.go
package router

import (
	"strings"

	"support-responder/internal/models"
)

// Rule pairs a category with its keyword predicate. Predicates run
// against the lowercased query text.
type Rule struct {
	Category models.Category
	Match    func(q string) bool
}

func containsAny(q string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}

func containsAll(q string, words ...string) bool {
	for _, w := range words {
		if !strings.Contains(q, w) {
			return false
		}
	}
	return true
}

// rules is the ordered keyword routing table. Order is part of the
// contract: the first matching rule wins, so broader patterns sit
// below the narrower ones they would otherwise swallow.
var rules = []Rule{
	{models.CategoryPosReplace, func(q string) bool {
		return strings.Contains(q, "pos") && containsAny(q, "replace", "update")
	}},
	{models.CategoryGeneralPricing, func(q string) bool {
		return containsAny(q, "price", "pricing", "discount", "validity")
	}},
	{models.CategoryPiggybackCreation, func(q string) bool {
		return strings.Contains(q, "piggyback") && containsAny(q, "create", "creation", "new")
	}},
	{models.CategoryAddingPartsToPiggyback, func(q string) bool {
		return containsAll(q, "add", "piggyback")
	}},
	{models.CategoryShipAndDebit, func(q string) bool {
		return containsAny(q, "ship", "debit", "s&d", "fsa", "sandd") && !strings.Contains(q, "claim")
	}},
	{models.CategoryOpportunitiesRejectedSFDC, func(q string) bool {
		return containsAll(q, "reject", "sfdc") && !strings.Contains(q, "incorrect")
	}},
	{models.CategoryPendingApprovalSFDC, func(q string) bool {
		return containsAll(q, "pending approval", "sfdc")
	}},
	{models.CategoryQuoteClosedGPMSNoDocument, func(q string) bool {
		return containsAll(q, "closed", "gpms", "document")
	}},
	{models.CategoryQuoteNotReachingPricing, func(q string) bool {
		return containsAll(q, "not reach", "pricing")
	}},
	{models.CategoryCustomerDataEnquiries, func(q string) bool {
		return containsAny(q, "customer data", "data enquiry", "data request")
	}},
	{models.CategoryQuotesPendingReviewGPMS, func(q string) bool {
		return containsAll(q, "pending", "gpms")
	}},
	{models.CategoryOppsPendingReviewSFDC, func(q string) bool {
		return containsAll(q, "pending", "sfdc", "opportunity")
	}},
	{models.CategoryOppRejectedIncorrectlySFDC, func(q string) bool {
		return containsAll(q, "incorrect", "reject")
	}},
	{models.CategoryLOARelated, func(q string) bool {
		return containsAny(q, "loa", "letter of authorization")
	}},
	{models.CategorySADClaimRejection, func(q string) bool {
		return strings.Contains(q, "claim") && containsAny(q, "s&d", "ship", "debit", "reject")
	}},
	{models.CategoryAgreementPNAdditionRemoval, func(q string) bool {
		return strings.Contains(q, "agreement") && containsAny(q, "part", "pn")
	}},
	{models.CategoryTEComIssues, func(q string) bool {
		return containsAny(q, "te.com", "website", "spr")
	}},
	{models.CategoryProductEnquiry, func(q string) bool {
		return strings.Contains(q, "product") && containsAny(q, "spec", "detail", "information", "available")
	}},
	{models.CategoryFeedback, func(q string) bool {
		return containsAny(q, "feedback", "suggestion")
	}},
	{models.CategoryComplaint, func(q string) bool {
		return containsAny(q, "complaint", "dissatisfied")
	}},
}

// matchRules returns the first rule category matching the lowercased
// query, or false when no rule fires.
func matchRules(q string) (models.Category, bool) {
	for _, r := range rules {
		if r.Match(q) {
			return r.Category, true
		}
	}
	return "", false
}
