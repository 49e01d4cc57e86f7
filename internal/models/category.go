// internal/models/category.go
package models

// Category is one of the fixed labels classifying a support query's intent.
// The set is closed: routing, dispatch and analytics all iterate over
// AllCategories and nothing else.
type Category string

const (
	CategoryPosReplace                  Category = "pos_replace"
	CategoryGeneralPricing              Category = "general_pricing_queries"
	CategoryPiggybackCreation           Category = "piggyback_creation"
	CategoryAddingPartsToPiggyback      Category = "adding_parts_to_piggyback"
	CategoryShipAndDebit                Category = "ship_and_debit_queries"
	CategoryOpportunitiesRejectedSFDC   Category = "opportunities_rejected_sfdc"
	CategoryPendingApprovalSFDC         Category = "pending_approval_sfdc"
	CategoryQuoteClosedGPMSNoDocument   Category = "quote_closed_gpms_no_document"
	CategoryQuoteNotReachingPricing     Category = "quote_not_reaching_pricing"
	CategoryCustomerDataEnquiries       Category = "customer_data_enquiries"
	CategoryQuotesPendingReviewGPMS     Category = "quotes_pending_review_gpms"
	CategoryOppsPendingReviewSFDC       Category = "opportunities_pending_review_sfdc"
	CategoryOppRejectedIncorrectlySFDC  Category = "opportunity_rejected_incorrectly_sfdc"
	CategoryLOARelated                  Category = "loa_related_queries"
	CategorySADClaimRejection           Category = "s_and_d_claim_rejection"
	CategoryAgreementPNAdditionRemoval  Category = "agreement_pn_addition_removal"
	CategoryTEComIssues                 Category = "te_com_issues"
	CategoryProductEnquiry              Category = "product_enquiry"
	CategoryFeedback                    Category = "feedback"
	CategoryComplaint                   Category = "complaint"
	CategoryFallback                    Category = "fallback"
)

// AllCategories lists every category in prompt-enumeration order.
var AllCategories = []Category{
	CategoryPosReplace,
	CategoryGeneralPricing,
	CategoryPiggybackCreation,
	CategoryAddingPartsToPiggyback,
	CategoryShipAndDebit,
	CategoryOpportunitiesRejectedSFDC,
	CategoryPendingApprovalSFDC,
	CategoryQuoteClosedGPMSNoDocument,
	CategoryQuoteNotReachingPricing,
	CategoryCustomerDataEnquiries,
	CategoryQuotesPendingReviewGPMS,
	CategoryOppsPendingReviewSFDC,
	CategoryOppRejectedIncorrectlySFDC,
	CategoryLOARelated,
	CategorySADClaimRejection,
	CategoryAgreementPNAdditionRemoval,
	CategoryTEComIssues,
	CategoryProductEnquiry,
	CategoryFeedback,
	CategoryComplaint,
	CategoryFallback,
}

// IsValid reports whether c belongs to the closed category set.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
