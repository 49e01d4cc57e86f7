// internal/handlers/static.go
//
// The store-independent handlers. These never touch the record store:
// each returns fixed informational text.
package handlers

import (
	"context"
	"fmt"
)

const productEnquiryResponse = `Thank you for your product inquiry.

To better assist you, I'll need some additional information:
- Specific part number(s) you're interested in
- Application requirements
- Quantity needed
- Any specific technical specifications

Once I have these details, I can provide you with the appropriate product information or connect you with a product specialist.`

func handleProductEnquiry(_ context.Context, d *Deps, _ string) (string, Outcome) {
	return d.Format.Guidance(productEnquiryResponse), OutcomeStatic
}

const feedbackResponse = `Thank you for sharing your feedback with TE Connectivity!

Your input is valuable to us and helps improve our products and services. Your feedback has been recorded and will be forwarded to the appropriate team for review.

Is there anything else you'd like to share or any other way we can assist you today?`

func handleFeedback(_ context.Context, d *Deps, _ string) (string, Outcome) {
	return d.Format.Guidance(feedbackResponse), OutcomeStatic
}

// complaintRefLayout yields a 14-digit timestamp reference like
// COM-20260901153000.
const complaintRefLayout = "20060102150405"

const complaintResponse = `We are sorry to hear about your experience with TE Connectivity.

Your complaint has been logged and will be escalated to the appropriate department for immediate review. A customer service representative will contact you within 24-48 business hours to address your concerns.

Reference number: COM-%s

Thank you for bringing this to our attention.`

func handleComplaint(_ context.Context, d *Deps, _ string) (string, Outcome) {
	ref := d.Now().Format(complaintRefLayout)
	return d.Format.Guidance(fmt.Sprintf(complaintResponse, ref)), OutcomeStatic
}

const fallbackResponse = `We're sorry, but we couldn't classify your request into one of our standard categories.

Could you please provide more specific details about your query? For example:
- If it's about a quote, please provide the quote ID
- If it's about an opportunity, please provide the opportunity ID
- If it's about a specific agreement or part number, please include those details

This will help us route your query to the appropriate team for resolution.`

func handleFallback(_ context.Context, d *Deps, _ string) (string, Outcome) {
	return d.Format.Guidance(fallbackResponse), OutcomeStatic
}
