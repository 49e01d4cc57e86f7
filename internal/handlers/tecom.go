// internal/handlers/tecom.go
package handlers

import (
	"context"
	"regexp"

	"support-responder/internal/extract"
	"support-responder/internal/models"
)

const tableTEComIssues = "17_te_com_issues_queries"

var (
	sprWords    = regexp.MustCompile(`(?i)spr|special\s+price`)
	loginWords  = regexp.MustCompile(`(?i)login|sign\s+in`)
	orderWords  = regexp.MustCompile(`(?i)order|purchas`)
	searchWords = regexp.MustCompile(`(?i)search|find`)
)

// teComPortalResponse is returned when no record matches. Website
// issues get portal instructions instead of the generic failure
// reasons; when an identifier was extracted, the not-found marker
// still precedes them.
const teComPortalResponse = `Regarding your TE.com Website Issue

We have received your query regarding an issue with TE.com. For website technical issues, we recommend creating a support ticket through the TE.com support portal:

1. Go to TE.com and log in to your account
2. Navigate to "Support" > "Contact Support"
3. Complete the support form with details of the issue you're experiencing

If you are unable to access the support form, please email support@te.com with:
- A detailed description of the issue
- Screenshots showing the problem (if applicable)
- Your account information
- Part numbers affected (if applicable)`

const teComIssueTemplate = `Issue ID: {{issue_id}}
Part Number Affected: {{part_number}}
Issue Type: {{issue_type}}

Next Steps:
{{next_action_required}}

Additional Information: {{additional_findings}}`

func classifyIssueType(query string) string {
	switch {
	case sprWords.MatchString(query):
		return "SPR Creation"
	case loginWords.MatchString(query):
		return "Login Issue"
	case orderWords.MatchString(query):
		return "Order Placement"
	case searchWords.MatchString(query):
		return "Search Functionality"
	}
	return "General"
}

func handleTEComIssues(ctx context.Context, d *Deps, query string) (string, Outcome) {
	issueID, hasIssue := extract.First(extract.LabelledIssue, query)
	partNumber, hasPart := extract.First(extract.LabelledPart, query)

	var record models.Record
	var err error
	if hasIssue {
		record, err = d.Store.Lookup(ctx, tableTEComIssues, "issue_id", issueID)
		if err != nil {
			return d.Format.StoreUnavailable(), OutcomeStoreError
		}
	}
	if record == nil && hasPart {
		record, err = d.Store.Lookup(ctx, tableTEComIssues, "part_number", partNumber)
		if err != nil {
			return d.Format.StoreUnavailable(), OutcomeStoreError
		}
	}

	if record == nil {
		switch {
		case hasIssue:
			return d.Format.Guidance("No information found for Issue ID: "+issueID+"\n\n"+teComPortalResponse), OutcomeNotFound
		case hasPart:
			return d.Format.Guidance("No information found for Part Number: "+partNumber+"\n\n"+teComPortalResponse), OutcomeNotFound
		}
		return d.Format.Guidance(teComPortalResponse), OutcomeGuidance
	}

	fields := models.Record{
		"issue_id":             record.Field("issue_id", "N/A"),
		"part_number":          record.Field("part_number", "N/A"),
		"issue_type":           record.Field("issue_type", classifyIssueType(query)),
		"next_action_required": record.Field("next_action_required", "Please create a support ticket through the TE.com portal for faster resolution of your issue."),
		"additional_findings":  record.Field("additional_findings", "N/A"),
	}
	return d.Format.Render(teComIssueTemplate, fields), OutcomeRendered
}
