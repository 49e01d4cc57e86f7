// internal/handlers/quote.go
//
// Handlers for the quote-centric categories. Each follows the same
// skeleton: extract the identifier, look up the backing table, pick a
// template variant off one record field, render.
package handlers

import (
	"context"
	"strings"

	"support-responder/internal/extract"
	"support-responder/internal/models"
)

const (
	tablePosReplacement    = "01_pos_replacemnt"
	tableGeneralPricing    = "02_general_pricing_queries"
	tableShipDebit         = "05_ship_debit_queries"
	tableQuoteClosedGPMS   = "08_cases_where_gpms"
	tableQuoteNotReaching  = "09_gpms_sfdc"
	tableGPMSPendingQuotes = "11_gpms_pending_quotes_queries"
)

const quoteIDGuidance = "Could not find a valid Quote ID in the query. Please provide a 10-digit Quote ID."

// closedByThirdParty reports whether the closing/pending party field
// names the external business partner desk.
func closedByThirdParty(v string) bool {
	v = strings.ToLower(v)
	return strings.Contains(v, "bupa") || strings.Contains(v, "business partner")
}

const posReplaceTemplate = `Quote ID: {{quote_id}}
Current POS Customer: {{current_pos_customer}}
New POS Customer: {{new_pos_customer}}
Conflict Found: {{conflict_found}}

Next Steps:
{{next_action_required}}

Additional Information: {{additional_findings}}`

func handlePosReplace(ctx context.Context, d *Deps, query string) (string, Outcome) {
	quoteID, ok := extract.First(extract.QuoteShort, query)
	if !ok {
		return d.Format.Guidance(quoteIDGuidance), OutcomeGuidance
	}

	record, err := d.Store.Lookup(ctx, tablePosReplacement, "quote_id", quoteID)
	if err != nil {
		return d.Format.StoreUnavailable(), OutcomeStoreError
	}
	if record == nil {
		return d.Format.NotFound("Quote ID", quoteID), OutcomeNotFound
	}

	record["quote_id"] = quoteID
	return d.Format.Render(posReplaceTemplate, record), OutcomeRendered
}

const generalPricingTemplate = `Quote ID: {{quote_id}}
Query Type: {{query_type}}
Quote Status: {{quote_status}}
Closed By: {{closed_by}}

Next Steps:
{{next_action_required}}`

const generalPricingBupaTemplate = `Quote ID: {{quote_id}}
Query Type: {{query_type}}
Quote Status: {{quote_status}}

This quote has been closed by BUPA.

Next Steps:
{{next_action_required}}

Please direct further queries to BUPA for more information.`

func handleGeneralPricing(ctx context.Context, d *Deps, query string) (string, Outcome) {
	quoteID, ok := extract.First(extract.QuoteShort, query)
	if !ok {
		return d.Format.Guidance(quoteIDGuidance), OutcomeGuidance
	}

	record, err := d.Store.Lookup(ctx, tableGeneralPricing, "quote_id", quoteID)
	if err != nil {
		return d.Format.StoreUnavailable(), OutcomeStoreError
	}
	if record == nil {
		return d.Format.NotFound("Quote ID", quoteID), OutcomeNotFound
	}

	record["quote_id"] = quoteID
	template := generalPricingTemplate
	if closedByThirdParty(record["closed_by"]) {
		template = generalPricingBupaTemplate
	}
	return d.Format.Render(template, record), OutcomeRendered
}

const shipDebitTemplate = `Quote ID: {{quote_id}}
FSA to S&D Conversion: {{fsa_to_sandd_conversion}}
POS Customer: {{pos_customer}}
End Customer: {{end_customer}}
Address Issue: {{address_issue}}
Quote Closed By: {{quote_closed_by}}

Next Steps:
{{next_action_required}}

Additional Information: {{additional_findings}}`

const shipDebitBupaTemplate = `Quote ID: {{quote_id}}
FSA to S&D Conversion: {{fsa_to_sandd_conversion}}
POS Customer: {{pos_customer}}
End Customer: {{end_customer}}
Address Issue: {{address_issue}}

This quote has been closed by BUPA.

Next Steps:
{{next_action_required}}

Additional Information: {{additional_findings}}

Please direct further queries to BUPA for more information.`

func handleShipAndDebit(ctx context.Context, d *Deps, query string) (string, Outcome) {
	quoteID, ok := extract.First(extract.QuoteLong, query)
	if !ok {
		return d.Format.Guidance(quoteIDGuidance), OutcomeGuidance
	}

	record, err := d.Store.Lookup(ctx, tableShipDebit, "quote_id", quoteID)
	if err != nil {
		return d.Format.StoreUnavailable(), OutcomeStoreError
	}
	if record == nil {
		return d.Format.NotFound("Quote ID", quoteID), OutcomeNotFound
	}

	record["quote_id"] = quoteID
	template := shipDebitTemplate
	if closedByThirdParty(record["quote_closed_by"]) {
		template = shipDebitBupaTemplate
	}
	return d.Format.Render(template, record), OutcomeRendered
}

const quoteClosedGPMSTemplate = `Quote ID: {{quote_id}}
Issue Type: {{issue_type}}
System Affected: {{system_affected}}

Next Steps:
{{next_action_required}}

Additional Information: {{additional_findings}}

A TEIS ticket has been created to re-trigger the quote to SAP. You will be notified once the document is available.`

func handleQuoteClosedGPMSNoDocument(ctx context.Context, d *Deps, query string) (string, Outcome) {
	quoteID, ok := extract.First(extract.QuoteNumber, query)
	if !ok {
		return d.Format.Guidance(quoteIDGuidance), OutcomeGuidance
	}

	record, err := d.Store.Lookup(ctx, tableQuoteClosedGPMS, "quote_id", quoteID)
	if err != nil {
		return d.Format.StoreUnavailable(), OutcomeStoreError
	}
	if record == nil {
		return d.Format.NotFound("Quote ID", quoteID), OutcomeNotFound
	}

	fields := models.Record{
		"quote_id":             quoteID,
		"issue_type":           record.Field("issue_type", "Document Not Available"),
		"system_affected":      record.Field("system_affected", "GPMS -> SAP"),
		"next_action_required": record.Field("next_action_required", "TEIS ticket created to re-trigger the quote."),
		"additional_findings":  record.Field("additional_findings", "N/A"),
	}
	return d.Format.Render(quoteClosedGPMSTemplate, fields), OutcomeRendered
}

const quoteNotReachingTemplate = `Quote ID: {{quote_id}}
Issue Type: {{issue_type}}
System Affected: {{system_affected}}

Next Steps:
{{next_action_required}}

Additional Information: {{additional_findings}}

A TEIS ticket has been created to re-trigger the quote from SAP and remove any pricing blocks.`

func handleQuoteNotReachingPricing(ctx context.Context, d *Deps, query string) (string, Outcome) {
	quoteID, ok := extract.First(extract.QuoteNumber, query)
	if !ok {
		return d.Format.Guidance(quoteIDGuidance), OutcomeGuidance
	}

	record, err := d.Store.Lookup(ctx, tableQuoteNotReaching, "quote_id", quoteID)
	if err != nil {
		return d.Format.StoreUnavailable(), OutcomeStoreError
	}
	if record == nil {
		return d.Format.NotFound("Quote ID", quoteID), OutcomeNotFound
	}

	fields := models.Record{
		"quote_id":             quoteID,
		"issue_type":           record.Field("issue_type", "Quote Not Reaching Pricing"),
		"system_affected":      record.Field("system_affected", "SAP -> GPMS/SFDC"),
		"next_action_required": record.Field("next_action_required", "TEIS ticket created to investigate."),
		"additional_findings":  record.Field("additional_findings", "N/A"),
	}
	return d.Format.Render(quoteNotReachingTemplate, fields), OutcomeRendered
}

const gpmsPendingTemplate = `Quote ID: {{quote_id}}
Pending With: {{pending_with}}
Review Status: {{review_status}}

Next Steps:
{{next_action_required}}

Additional Findings: {{additional_findings}}

Please let us know if you need any further assistance.`

const gpmsPendingBupaTemplate = `Quote ID: {{quote_id}}
Pending With: {{pending_with}}
Review Status: {{review_status}}

This quote is pending with BUPA.

Next Steps:
{{next_action_required}}

Additional Findings: {{additional_findings}}

Please direct further queries to BUPA for more information.`

func handleQuotesPendingReviewGPMS(ctx context.Context, d *Deps, query string) (string, Outcome) {
	quoteID, ok := extract.First(extract.QuoteNumber, query)
	if !ok {
		return d.Format.Guidance(quoteIDGuidance), OutcomeGuidance
	}

	record, err := d.Store.Lookup(ctx, tableGPMSPendingQuotes, "quote_id", quoteID)
	if err != nil {
		return d.Format.StoreUnavailable(), OutcomeStoreError
	}
	if record == nil {
		return d.Format.NotFound("Quote ID", quoteID), OutcomeNotFound
	}

	record["quote_id"] = quoteID
	template := gpmsPendingTemplate
	if closedByThirdParty(record["pending_with"]) {
		template = gpmsPendingBupaTemplate
	}
	return d.Format.Render(template, record), OutcomeRendered
}
