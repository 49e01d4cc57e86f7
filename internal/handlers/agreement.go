// internal/handlers/agreement.go
package handlers

import (
	"context"
	"regexp"
	"strings"

	"support-responder/internal/extract"
	"support-responder/internal/models"
)

const tableAgreementPN = "16_agreement_pn_addition"

var (
	additionWords = regexp.MustCompile(`(?i)add|addition|include`)
	removalWords  = regexp.MustCompile(`(?i)remov|delet|exclud`)
)

const agreementPNTemplate = `Agreement ID: {{agreement_id}}
Part Number: {{part_number}}
Request Type: {{request_type}}
Requested By: {{requested_by}}
Approval Status: {{approval_status}}

Next Steps:
{{next_action_required}}

Additional Information: {{additional_findings}}`

// handleAgreementPNAdditionRemoval accepts an agreement ID or a part
// number; the agreement ID is the preferred lookup key. The request
// type defaults to a keyword reading of the query when the record
// carries none.
func handleAgreementPNAdditionRemoval(ctx context.Context, d *Deps, query string) (string, Outcome) {
	agreementID, hasAgreement := extract.First(extract.LabelledAgreement, query)
	partNumber, hasPart := extract.First(extract.LabelledPart, query)

	if !hasAgreement && !hasPart {
		return d.Format.Guidance("Could not find a valid Agreement ID or Part Number in your query. Please provide at least one of these identifiers."), OutcomeGuidance
	}

	requestType := "Unknown"
	if additionWords.MatchString(query) {
		requestType = "Addition"
	} else if removalWords.MatchString(query) {
		requestType = "Removal"
	}

	var record models.Record
	var err error
	if hasAgreement {
		record, err = d.Store.Lookup(ctx, tableAgreementPN, "agreement_id", agreementID)
		if err != nil {
			return d.Format.StoreUnavailable(), OutcomeStoreError
		}
	}
	if record == nil && hasPart {
		record, err = d.Store.Lookup(ctx, tableAgreementPN, "part_number", partNumber)
		if err != nil {
			return d.Format.StoreUnavailable(), OutcomeStoreError
		}
	}

	if record == nil {
		var used []string
		if hasAgreement {
			used = append(used, "Agreement ID: "+agreementID)
		}
		if hasPart {
			used = append(used, "Part Number: "+partNumber)
		}
		return d.Format.NotFound("identifier", strings.Join(used, " and ")), OutcomeNotFound
	}

	fields := models.Record{
		"agreement_id":         record.Field("agreement_id", "N/A"),
		"part_number":          record.Field("part_number", "N/A"),
		"request_type":         record.Field("request_type", requestType),
		"requested_by":         record.Field("requested_by", "N/A"),
		"approval_status":      record.Field("approval_status", "N/A"),
		"next_action_required": record.Field("next_action_required", "This request has been forwarded to the agreement owner for review."),
		"additional_findings":  record.Field("additional_findings", "N/A"),
	}
	return d.Format.Render(agreementPNTemplate, fields), OutcomeRendered
}
