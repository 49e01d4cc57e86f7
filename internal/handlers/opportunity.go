// internal/handlers/opportunity.go
package handlers

import (
	"context"
	"strings"

	"support-responder/internal/extract"
	"support-responder/internal/models"
)

const (
	tableSFDCRejection       = "06_sfdc_rejection_queries"
	tableSFDCPendingApproval = "07_sfdc_pendingapproval_queries"
	tableSFDCPendingOpps     = "12_sfdc_pending_opp_queries"
	tableReplyToRequestor    = "13_reply_to_requestor"
)

const opportunityIDGuidance = "Could not find a valid Opportunity ID in the query. Please provide a 9-digit Opportunity ID."

const sfdcRejectionTemplate = `Opportunity ID: {{opportunity_id}}
Rejection Reason: {{rejection_reason}}
Rejected By: {{rejected_by}}

Next Steps:
{{next_action_required}}

Additional Information: {{additional_findings}}`

const sfdcRejectionDMMTemplate = `Opportunity ID: {{opportunity_id}}
Rejection Reason: {{rejection_reason}}

This opportunity has been rejected by DMM.

Next Steps:
{{next_action_required}}

Additional Information: {{additional_findings}}

Please direct further queries to DMM for more information.`

func handleOpportunitiesRejectedSFDC(ctx context.Context, d *Deps, query string) (string, Outcome) {
	opportunityID, ok := extract.First(extract.OpportunityNumber, query)
	if !ok {
		return d.Format.Guidance(opportunityIDGuidance), OutcomeGuidance
	}

	record, err := d.Store.Lookup(ctx, tableSFDCRejection, "opportunity_id", opportunityID)
	if err != nil {
		return d.Format.StoreUnavailable(), OutcomeStoreError
	}
	if record == nil {
		return d.Format.NotFound("Opportunity ID", opportunityID), OutcomeNotFound
	}

	record["opportunity_id"] = opportunityID
	template := sfdcRejectionTemplate
	if strings.Contains(strings.ToLower(record["rejected_by"]), "dmm") {
		template = sfdcRejectionDMMTemplate
	}
	return d.Format.Render(template, record), OutcomeRendered
}

const pendingApprovalTemplate = `Opportunity ID: {{opportunity_id}}
Pending With: {{pending_with}}
Approval Status: {{approval_status}}

Next Steps:
{{next_action_required}}

Additional Information: {{additional_findings}}

This opportunity is currently pending with DMM for approval. DMM has been notified to review and approve.`

func handlePendingApprovalSFDC(ctx context.Context, d *Deps, query string) (string, Outcome) {
	opportunityID, ok := extract.First(extract.OpportunityNumber, query)
	if !ok {
		return d.Format.Guidance(opportunityIDGuidance), OutcomeGuidance
	}

	record, err := d.Store.Lookup(ctx, tableSFDCPendingApproval, "opportunity_id", opportunityID)
	if err != nil {
		return d.Format.StoreUnavailable(), OutcomeStoreError
	}
	if record == nil {
		return d.Format.NotFound("Opportunity ID", opportunityID), OutcomeNotFound
	}

	record["opportunity_id"] = opportunityID
	return d.Format.Render(pendingApprovalTemplate, record), OutcomeRendered
}

const sfdcPendingOppTemplate = `Opportunity ID: {{opportunity_id}}
Pending With: {{pending_with}}
Review Status: {{review_status}}

Could you please approve the opportunity #{{opportunity_id}} pending with you for review on SFDC and push it to pricing.

Next Steps:
{{next_action_required}}

Additional Findings: {{additional_findings}}

Please let us know if you need any further assistance.`

// handleOppsPendingReviewSFDC requires the labelled form of the
// opportunity number, e.g. "opportunity id: 123456789", so a bare
// nine-digit token elsewhere in the query does not misfire.
func handleOppsPendingReviewSFDC(ctx context.Context, d *Deps, query string) (string, Outcome) {
	opportunityID, ok := extract.First(extract.LabelledOpportunity, query)
	if !ok {
		return d.Format.Guidance(opportunityIDGuidance), OutcomeGuidance
	}

	record, err := d.Store.Lookup(ctx, tableSFDCPendingOpps, "opportunity_id", opportunityID)
	if err != nil {
		return d.Format.StoreUnavailable(), OutcomeStoreError
	}
	if record == nil {
		return d.Format.NotFound("Opportunity ID", opportunityID), OutcomeNotFound
	}

	record["opportunity_id"] = opportunityID
	return d.Format.Render(sfdcPendingOppTemplate, record), OutcomeRendered
}

const oppRejectedIncorrectlyTemplate = `Opportunity ID: {{opportunity_id}}

The opportunity #{{opportunity_id}} has been rejected on SFDC and unfortunately this cannot be revoked, kindly ask the customer to raise another new opportunity with correct customer chain and share with us the reference number immediately to avoid potential rejections again.

Next Steps:
{{next_action_required}}

Additional Findings: {{additional_findings}}`

func handleOppRejectedIncorrectlySFDC(ctx context.Context, d *Deps, query string) (string, Outcome) {
	opportunityID, ok := extract.First(extract.LabelledOpportunity, query)
	if !ok {
		return d.Format.Guidance(opportunityIDGuidance), OutcomeGuidance
	}

	record, err := d.Store.Lookup(ctx, tableReplyToRequestor, "opportunity_id", opportunityID)
	if err != nil {
		return d.Format.StoreUnavailable(), OutcomeStoreError
	}
	if record == nil {
		return d.Format.NotFound("Opportunity ID", opportunityID), OutcomeNotFound
	}

	fields := models.Record{
		"opportunity_id":       opportunityID,
		"next_action_required": record.Field("next_action_required", "N/A"),
		"additional_findings":  record.Field("additional_findings", "N/A"),
	}
	return d.Format.Render(oppRejectedIncorrectlyTemplate, fields), OutcomeRendered
}
