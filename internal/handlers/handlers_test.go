package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"support-responder/internal/common/logger"
	"support-responder/internal/models"
	"support-responder/internal/respond"
)

// ==========================
// Test Helper Functions
// ==========================

// fakeStore serves canned records keyed by "table/field/value".
type fakeStore struct {
	records  map[string]models.Record
	firstRow map[string]models.Record
	err      error
	calls    int
}

func (f *fakeStore) Lookup(_ context.Context, table, field, value string) (models.Record, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records[table+"/"+field+"/"+value], nil
}

func (f *fakeStore) LookupLike(ctx context.Context, table, field, value string) (models.Record, error) {
	return f.Lookup(ctx, table, field, value)
}

func (f *fakeStore) LookupFirst(_ context.Context, table string) (models.Record, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.firstRow[table], nil
}

func testDeps(t *testing.T, store *fakeStore) *Deps {
	formatter := respond.NewFormatter("TE Connectivity Support Team")
	formatter.Now = func() time.Time {
		return time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC)
	}
	d := NewDeps(store, formatter, logger.NewZapAdapter(zaptest.NewLogger(t)))
	d.Now = formatter.Now
	return d
}

// ==========================
// Skeleton Behaviour Tests
// ==========================

func TestHandlerGuidanceWithoutStoreCall(t *testing.T) {
	store := &fakeStore{}
	d := testDeps(t, store)

	body, outcome := handlePosReplace(context.Background(), d, "update the pos please, no id here")

	assert.Equal(t, OutcomeGuidance, outcome)
	assert.Contains(t, body, "Could not find a valid Quote ID")
	assert.Zero(t, store.calls, "guidance must not touch the store")
}

func TestHandlerStoreErrorYieldsTryAgainLater(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	d := testDeps(t, store)

	body, outcome := handleGeneralPricing(context.Background(), d, "pricing for QTID12")

	assert.Equal(t, OutcomeStoreError, outcome)
	assert.Contains(t, body, "Please try again later")
	assert.NotContains(t, body, "connection refused", "raw errors never reach the response")
}

func TestHandlerNotFoundMarker(t *testing.T) {
	store := &fakeStore{}
	d := testDeps(t, store)

	body, outcome := handleShipAndDebit(context.Background(), d, "s&d status for QTID9999")

	assert.Equal(t, OutcomeNotFound, outcome)
	assert.Contains(t, body, "No information found for Quote ID: 9999")
	assert.Contains(t, body, "Best Regards,\nTE Connectivity Support Team")
}

// ==========================
// Template Variant Tests
// ==========================

func TestGeneralPricingBupaVariant(t *testing.T) {
	store := &fakeStore{records: map[string]models.Record{
		"02_general_pricing_queries/quote_id/12": {
			"query_type":           "Validity Extension",
			"quote_status":         "Closed",
			"closed_by":            "BUPA desk",
			"next_action_required": "Contact BUPA.",
		},
	}}
	d := testDeps(t, store)

	body, outcome := handleGeneralPricing(context.Background(), d, "pricing validity for QTID12")

	assert.Equal(t, OutcomeRendered, outcome)
	assert.Contains(t, body, "This quote has been closed by BUPA.")
	assert.Contains(t, body, "Please direct further queries to BUPA")
	assert.NotContains(t, body, "Closed By:", "the BUPA variant omits the closed-by line")
}

func TestGeneralPricingGenericVariant(t *testing.T) {
	store := &fakeStore{records: map[string]models.Record{
		"02_general_pricing_queries/quote_id/12": {
			"query_type":   "Discount",
			"quote_status": "Open",
			"closed_by":    "pricing analyst",
		},
	}}
	d := testDeps(t, store)

	body, _ := handleGeneralPricing(context.Background(), d, "pricing for QTID12")

	assert.Contains(t, body, "Closed By: pricing analyst")
	assert.NotContains(t, body, "closed by BUPA")
	assert.Contains(t, body, "Next Steps:\nN/A", "missing next action renders the default placeholder")
}

func TestSFDCRejectionDMMVariant(t *testing.T) {
	store := &fakeStore{records: map[string]models.Record{
		"06_sfdc_rejection_queries/opportunity_id/123456789": {
			"rejection_reason": "Wrong customer chain",
			"rejected_by":      "DMM reviewer",
		},
	}}
	d := testDeps(t, store)

	body, _ := handleOpportunitiesRejectedSFDC(context.Background(), d, "opportunity #123456789 rejected on sfdc")

	assert.Contains(t, body, "This opportunity has been rejected by DMM.")
	assert.Contains(t, body, "Please direct further queries to DMM")
}

func TestLOAVerifiedVariant(t *testing.T) {
	store := &fakeStore{records: map[string]models.Record{
		"14_loa_queries/loa_request_id/1234567890": {
			"received_from":           "Distributor X",
			"loa_verification_status": "Verified correct",
		},
	}}
	d := testDeps(t, store)

	body, _ := handleLOARelated(context.Background(), d, "loa status for 1234567890")

	assert.Contains(t, body, "The LOA has been verified as correct.")
	assert.NotContains(t, body, "issues that need to be addressed")
}

// ==========================
// Defaulted Field Tests
// ==========================

func TestQuoteClosedGPMSDefaults(t *testing.T) {
	store := &fakeStore{records: map[string]models.Record{
		"08_cases_where_gpms/quote_id/1234567890": {},
	}}
	d := testDeps(t, store)

	body, _ := handleQuoteClosedGPMSNoDocument(context.Background(), d, "quote 1234567890 closed in gpms, no document")

	assert.Contains(t, body, "Issue Type: Document Not Available")
	assert.Contains(t, body, "System Affected: GPMS -> SAP")
	assert.Contains(t, body, "TEIS ticket created to re-trigger the quote.")
}

func TestAddingPartsDefaultRowAndViewMapping(t *testing.T) {
	store := &fakeStore{firstRow: map[string]models.Record{
		"04_adding_parts_pos_queries": {
			"add88632":                   "ADD90021",
			"pgb-4023":                   "PGB-5511",
			"distributor_m_ltd":          "Distributor K",
			"pn-515629":                  "PN-778899",
			"pos-customer_w_inc":         "Customer Z",
			"rejected":                   "Yes",
			"duplicate_request_detected": "Yes",
		},
	}}
	d := testDeps(t, store)

	// No identifier in the query: the first row stands in.
	body, outcome := handleAddingPartsToPiggyback(context.Background(), d, "please add parts to the piggyback")

	assert.Equal(t, OutcomeRendered, outcome)
	assert.Contains(t, body, "Request ID: ADD90021")
	assert.Contains(t, body, "Status: Rejected")
	assert.Contains(t, body, "Duplicate request detected.")
}

// ==========================
// Two-Identifier Lookup Tests
// ==========================

func TestClaimRejectionQuoteFallbackLookup(t *testing.T) {
	store := &fakeStore{records: map[string]models.Record{
		"15_s_d_claim_rejection/quote_id/1234567890": {
			"claim_id":         "CLM-7",
			"quote_id":         "1234567890",
			"rejection_reason": "Missing POS proof",
		},
	}}
	d := testDeps(t, store)

	body, outcome := handleSADClaimRejection(context.Background(), d, "claim for quote id 1234567890 was rejected")

	assert.Equal(t, OutcomeRendered, outcome)
	assert.Contains(t, body, "Claim ID: CLM-7")
	assert.Contains(t, body, "Rejection Reason: Missing POS proof")
	assert.Contains(t, body, "The claim rejection has been verified", "default next step applies")
}

func TestClaimRejectionNeitherIdentifier(t *testing.T) {
	d := testDeps(t, &fakeStore{})

	body, outcome := handleSADClaimRejection(context.Background(), d, "my s&d submission bounced")

	assert.Equal(t, OutcomeGuidance, outcome)
	assert.Contains(t, body, "Claim ID or Quote ID")
}

func TestAgreementRequestTypeFromQuery(t *testing.T) {
	store := &fakeStore{records: map[string]models.Record{
		"16_agreement_pn_addition/agreement_id/AGR-11": {
			"agreement_id": "AGR-11",
		},
	}}
	d := testDeps(t, store)

	body, _ := handleAgreementPNAdditionRemoval(context.Background(), d, "please remove pn from agreement AGR-11")

	assert.Contains(t, body, "Request Type: Removal")
	assert.Contains(t, body, "forwarded to the agreement owner")
}

// ==========================
// Store-Independent Handler Tests
// ==========================

func TestTEComIssuesPortalResponseWhenNoRecord(t *testing.T) {
	store := &fakeStore{}
	d := testDeps(t, store)

	body, outcome := handleTEComIssues(context.Background(), d, "issue ID-123 with spr creation on te.com")

	assert.Equal(t, OutcomeNotFound, outcome)
	assert.Contains(t, body, "No information found for Issue ID: ID-123")
	assert.Contains(t, body, "TE.com support portal", "untracked website issues get portal instructions instead of the generic failure reasons")
}

func TestTEComIssuesPortalResponseWithoutIdentifier(t *testing.T) {
	store := &fakeStore{}
	d := testDeps(t, store)

	body, outcome := handleTEComIssues(context.Background(), d, "your website is broken")

	assert.Equal(t, OutcomeGuidance, outcome)
	assert.Contains(t, body, "TE.com support portal")
	assert.NotContains(t, body, "No information found")
	assert.Zero(t, store.calls)
}

func TestStaticHandlersNeverTouchStore(t *testing.T) {
	store := &fakeStore{err: errors.New("store must not be called")}
	d := testDeps(t, store)

	for _, h := range []HandlerFunc{handleProductEnquiry, handleFeedback, handleComplaint, handleFallback} {
		body, outcome := h(context.Background(), d, "anything")
		assert.Equal(t, OutcomeStatic, outcome)
		assert.NotEmpty(t, body)
	}
	assert.Zero(t, store.calls)
}

func TestComplaintReferenceFormat(t *testing.T) {
	d := testDeps(t, &fakeStore{})

	body, _ := handleComplaint(context.Background(), d, "this is a complaint")

	assert.Contains(t, body, "Reference number: COM-20260305103000")
}

// ==========================
// Dispatch Tests
// ==========================

func TestDispatchCoversEveryCategory(t *testing.T) {
	for _, c := range models.AllCategories {
		assert.Contains(t, Registry, c, "category %s has no handler", c)
	}
	assert.Len(t, Registry, len(models.AllCategories))
}

func TestDispatchUnknownCategoryFallsBack(t *testing.T) {
	d := testDeps(t, &fakeStore{})

	body, outcome := Dispatch(context.Background(), d, models.Category("made_up"), "whatever")

	assert.Equal(t, OutcomeStatic, outcome)
	assert.Contains(t, body, "couldn't classify your request")
}

func TestDispatchIdempotent(t *testing.T) {
	store := &fakeStore{records: map[string]models.Record{
		"01_pos_replacemnt/quote_id/1": {
			"current_pos_customer": "A Corp",
			"new_pos_customer":     "B Corp",
		},
	}}
	d := testDeps(t, store)

	first, _ := Dispatch(context.Background(), d, models.CategoryPosReplace, "update pos for QTID1")
	second, _ := Dispatch(context.Background(), d, models.CategoryPosReplace, "update pos for QTID1")
	assert.Equal(t, first, second)
}
