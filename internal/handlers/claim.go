// internal/handlers/claim.go
package handlers

import (
	"context"

	"support-responder/internal/extract"
	"support-responder/internal/models"
)

const tableClaimRejection = "15_s_d_claim_rejection"

const claimRejectionTemplate = `Claim ID: {{claim_id}}
Associated Quote ID: {{quote_id}}
Rejection Reason: {{rejection_reason}}

Next Steps:
{{next_action_required}}

Additional Information: {{additional_findings}}

Please contact the S&D team for further assistance if needed.`

// handleSADClaimRejection accepts either identifier kind: the claim ID
// is tried first, then the quote ID as a fallback lookup key.
func handleSADClaimRejection(ctx context.Context, d *Deps, query string) (string, Outcome) {
	claimID, hasClaim := extract.First(extract.LabelledClaim, query)
	quoteID, hasQuote := extract.First(extract.LabelledQuote, query)

	if !hasClaim && !hasQuote {
		return d.Format.Guidance("Could not find a valid Claim ID or Quote ID in your query. Please provide either a Claim ID or a 10-digit Quote ID."), OutcomeGuidance
	}

	var record models.Record
	var err error
	if hasClaim {
		record, err = d.Store.Lookup(ctx, tableClaimRejection, "claim_id", claimID)
		if err != nil {
			return d.Format.StoreUnavailable(), OutcomeStoreError
		}
	}
	if record == nil && hasQuote {
		record, err = d.Store.Lookup(ctx, tableClaimRejection, "quote_id", quoteID)
		if err != nil {
			return d.Format.StoreUnavailable(), OutcomeStoreError
		}
	}

	if record == nil {
		if hasClaim {
			return d.Format.NotFound("Claim ID", claimID), OutcomeNotFound
		}
		return d.Format.NotFound("Quote ID", quoteID), OutcomeNotFound
	}

	fields := models.Record{
		"claim_id":             record.Field("claim_id", "N/A"),
		"quote_id":             record.Field("quote_id", "N/A"),
		"rejection_reason":     record.Field("rejection_reason", "N/A"),
		"next_action_required": record.Field("next_action_required", "The claim rejection has been verified. Please address the rejection reason and resubmit if applicable."),
		"additional_findings":  record.Field("additional_findings", "N/A"),
	}
	return d.Format.Render(claimRejectionTemplate, fields), OutcomeRendered
}
