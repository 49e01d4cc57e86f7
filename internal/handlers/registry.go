// internal/handlers/registry.go
package handlers

import (
	"context"
	"time"

	"support-responder/internal/common/metrics"
	"support-responder/internal/models"
)

// HandlerFunc resolves one query for one category into response text.
// Every failure mode is folded into the text; a handler never returns
// an error to the caller.
type HandlerFunc func(ctx context.Context, d *Deps, query string) (string, Outcome)

// Registry maps every category to its handler. Dispatch refuses labels
// outside this map, which is exactly the closed category set.
var Registry = map[models.Category]HandlerFunc{
	models.CategoryPosReplace:                 handlePosReplace,
	models.CategoryGeneralPricing:             handleGeneralPricing,
	models.CategoryPiggybackCreation:          handlePiggybackCreation,
	models.CategoryAddingPartsToPiggyback:     handleAddingPartsToPiggyback,
	models.CategoryShipAndDebit:               handleShipAndDebit,
	models.CategoryOpportunitiesRejectedSFDC:  handleOpportunitiesRejectedSFDC,
	models.CategoryPendingApprovalSFDC:        handlePendingApprovalSFDC,
	models.CategoryQuoteClosedGPMSNoDocument:  handleQuoteClosedGPMSNoDocument,
	models.CategoryQuoteNotReachingPricing:    handleQuoteNotReachingPricing,
	models.CategoryCustomerDataEnquiries:      handleCustomerDataEnquiries,
	models.CategoryQuotesPendingReviewGPMS:    handleQuotesPendingReviewGPMS,
	models.CategoryOppsPendingReviewSFDC:      handleOppsPendingReviewSFDC,
	models.CategoryOppRejectedIncorrectlySFDC: handleOppRejectedIncorrectlySFDC,
	models.CategoryLOARelated:                 handleLOARelated,
	models.CategorySADClaimRejection:          handleSADClaimRejection,
	models.CategoryAgreementPNAdditionRemoval: handleAgreementPNAdditionRemoval,
	models.CategoryTEComIssues:                handleTEComIssues,
	models.CategoryProductEnquiry:             handleProductEnquiry,
	models.CategoryFeedback:                   handleFeedback,
	models.CategoryComplaint:                  handleComplaint,
	models.CategoryFallback:                   handleFallback,
}

// Dispatch runs the handler registered for category and records the
// outcome and duration. An unknown category resolves through the
// catch-all handler so a response is always produced.
func Dispatch(ctx context.Context, d *Deps, category models.Category, query string) (string, Outcome) {
	handler, ok := Registry[category]
	if !ok {
		d.Logger.Warn("no handler registered for category", map[string]interface{}{
			"category": category.String(),
		})
		handler = handleFallback
		category = models.CategoryFallback
	}

	start := time.Now()
	body, outcome := handler(ctx, d, query)
	metrics.HandlerDuration.WithLabelValues(category.String()).Observe(time.Since(start).Seconds())
	metrics.ResponsesBuilt.WithLabelValues(category.String(), string(outcome)).Inc()
	return body, outcome
}
