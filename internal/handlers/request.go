// internal/handlers/request.go
package handlers

import (
	"context"
	"strings"

	"support-responder/internal/extract"
)

const (
	tableCustomerData = "10_customer_data_enquiries"
	tableLOAQueries   = "14_loa_queries"
)

const customerDataTemplate = `Request ID: {{request_id}}
Requested By: {{requested_by}}
Data Type Requested: {{data_type_requested}}
Verification Status: {{verification_status}}

Next Steps:
{{next_action_required}}

Additional Information: {{additional_findings}}`

func handleCustomerDataEnquiries(ctx context.Context, d *Deps, query string) (string, Outcome) {
	requestID, ok := extract.First(extract.DataRequest, query)
	if !ok {
		return d.Format.Guidance("Could not find a valid Customer Data Request ID in the query. Please provide a valid Request ID."), OutcomeGuidance
	}

	record, err := d.Store.Lookup(ctx, tableCustomerData, "request_id", requestID)
	if err != nil {
		return d.Format.StoreUnavailable(), OutcomeStoreError
	}
	if record == nil {
		return d.Format.NotFound("Request ID", requestID), OutcomeNotFound
	}

	return d.Format.Render(customerDataTemplate, record), OutcomeRendered
}

const loaVerifiedTemplate = `LOA Request ID: {{loa_request_id}}
Received From: {{received_from}}
LOA Verification Status: {{loa_verification_status}}

The LOA has been verified as correct.

Next Steps:
{{next_action_required}}

Additional Findings: {{additional_findings}}`

const loaIssuesTemplate = `LOA Request ID: {{loa_request_id}}
Received From: {{received_from}}
LOA Verification Status: {{loa_verification_status}}

The LOA verification found issues that need to be addressed.

Next Steps:
{{next_action_required}}

Additional Findings: {{additional_findings}}

Please provide an updated LOA with the correct information.`

func handleLOARelated(ctx context.Context, d *Deps, query string) (string, Outcome) {
	loaRequestID, ok := extract.First(extract.QuoteNumber, query)
	if !ok {
		return d.Format.Guidance("Could not find a valid LOA Request ID in the query. Please provide the LOA Request ID."), OutcomeGuidance
	}

	record, err := d.Store.Lookup(ctx, tableLOAQueries, "loa_request_id", loaRequestID)
	if err != nil {
		return d.Format.StoreUnavailable(), OutcomeStoreError
	}
	if record == nil {
		return d.Format.NotFound("LOA Request ID", loaRequestID), OutcomeNotFound
	}

	record["loa_request_id"] = loaRequestID
	status := strings.ToLower(record["loa_verification_status"])
	template := loaIssuesTemplate
	if strings.Contains(status, "correct") || strings.Contains(status, "valid") {
		template = loaVerifiedTemplate
	}
	return d.Format.Render(template, record), OutcomeRendered
}
