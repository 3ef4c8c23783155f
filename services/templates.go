package services

import (
	"fmt"
	"html"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/Gautam3767/Website_Onboarding_Backend/models"
)

const (
	ProposalSubject = "Your Website Proposal"
	InternalSubject = "New Onboarding Submission"
)

// ProposalLinks are the absolute URLs embedded in the client proposal.
type ProposalLinks struct {
	// BrandingURL is where the client approves the proposal and adds branding.
	BrandingURL string
	LogoURL     string
}

// NewProposalLinks builds the links for submission id.
func NewProposalLinks(clientAppURL, publicBaseURL, id string) ProposalLinks {
	return ProposalLinks{
		BrandingURL: strings.TrimRight(clientAppURL, "/") + "/client-details/" + url.PathEscape(id),
		LogoURL:     strings.TrimRight(publicBaseURL, "/") + "/public/logo.png",
	}
}

// FormatBudget renders a budget with a dollar prefix. NaN is kept visible so a
// bad input is obvious to whoever reads the mail.
func FormatBudget(v float64) string {
	switch {
	case math.IsNaN(v):
		return "$NaN"
	case math.IsInf(v, 1):
		return "$Infinity"
	case math.IsInf(v, -1):
		return "$-Infinity"
	}
	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderProposalHTML renders the client-facing proposal. Every submission field
// is escaped before interpolation.
func RenderProposalHTML(sub *models.Submission, links ProposalLinks) string {
	esc := html.EscapeString

	var features strings.Builder
	if len(sub.Features) == 0 {
		features.WriteString(`<p style="margin:0;color:#6b7280;">No features selected</p>`)
	} else {
		features.WriteString(`<ul style="margin:0;padding-left:20px;">`)
		for _, f := range sub.Features {
			fmt.Fprintf(&features, `<li style="margin-bottom:4px;">%s</li>`, esc(f))
		}
		features.WriteString(`</ul>`)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body style="margin:0;padding:0;background:#f4f5f7;font-family:Arial,Helvetica,sans-serif;color:#1f2937;">
  <div style="max-width:600px;margin:24px auto;background:#ffffff;border-radius:8px;overflow:hidden;">
    <div style="background:#111827;padding:24px;text-align:center;">
      <img src="%s" alt="Logo" style="max-height:48px;">
    </div>
    <div style="padding:24px;">
      <h2 style="margin-top:0;">Your Website Proposal</h2>
      <p>Thank you for telling us about your project. Here is a summary of what we discussed:</p>
      <table style="width:100%%;border-collapse:collapse;margin:16px 0;">
        <tr><td style="padding:8px;font-weight:bold;">Website Type</td><td style="padding:8px;">%s</td></tr>
        <tr><td style="padding:8px;font-weight:bold;">Build Method</td><td style="padding:8px;">%s</td></tr>
        <tr><td style="padding:8px;font-weight:bold;">Budget</td><td style="padding:8px;">%s</td></tr>
        <tr><td style="padding:8px;font-weight:bold;">Deadline</td><td style="padding:8px;">%s</td></tr>
      </table>
      <h3>Features</h3>
      %s
      <p style="margin-top:24px;">If this looks right, approve the proposal and send us your branding details:</p>
      <p style="text-align:center;">
        <a href="%s" style="display:inline-block;background:#2563eb;color:#ffffff;padding:12px 24px;border-radius:6px;text-decoration:none;">Approve &amp; Add Branding</a>
      </p>
    </div>
  </div>
</body>
</html>`,
		ProposalSubject,
		esc(links.LogoURL),
		esc(sub.WebsiteType),
		esc(sub.BuildMethod),
		esc(FormatBudget(sub.Budget)),
		esc(sub.Deadline),
		features.String(),
		esc(links.BrandingURL),
	)
}

// RenderInternalSummary renders the plain-text digest sent to the team.
func RenderInternalSummary(sub *models.Submission) string {
	features := strings.Join(sub.Features, ", ")
	if features == "" {
		features = "None"
	}

	return fmt.Sprintf(`New onboarding submitted:

Website Type: %s
Build Method: %s
Features: %s
Budget: %s
Deadline: %s
Client Email: %s
`,
		sub.WebsiteType,
		sub.BuildMethod,
		features,
		FormatBudget(sub.Budget),
		sub.Deadline,
		sub.Email,
	)
}
