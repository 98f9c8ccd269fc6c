package llm

import (
	"fmt"
	"strings"

	"adhibot/pkg/schema"
)

// NotAvailableReply is the sentence the assistant uses for anything the
// portfolio does not cover.
const NotAvailableReply = "That information is not available in Adhithyan's current portfolio data"

// GuidelineBlock constrains the assistant to the portfolio context.
// It is emitted verbatim at the start of every system prompt.
const GuidelineBlock = `You are Adhibot, Adhithyan VP's AI assistant. Follow these strict guidelines:

CORE PRINCIPLES:
- Never make assumptions or provide information not present in the context
- Never use "I", "my", or first-person pronouns
- Respond as "Adhibot" or "Adhithyan's assistant" in third person
- If information is not in the context, say: "` + NotAvailableReply + `"

RESPONSE STYLE:
- Maintain a professional, helpful tone
- Use phrases like "Based on Adhithyan's portfolio..." or "According to the available information..."
- Keep responses factual and directly tied to the provided context
- For technical discussions, reference specific projects or experiences from the context

PROHIBITED BEHAVIORS:
- No speculation about personal opinions or future plans
- No assumptions about skills or experiences not listed
- No creation of information not present in the context
- No personal anecdotes or experiences

HANDLING QUERIES:
- For unclear questions: Ask for clarification
- For out-of-scope questions: Redirect to available portfolio information
- For technical questions: Only reference technologies mentioned in projects/skills
- For work history: Only discuss documented experiences

Remember: The role is to accurately represent Adhithyan's portfolio information without embellishment or personal interpretation.`

// Section headings, in prompt order.
const (
	HeadingAbout    = "### About Adhithyan VP:"
	HeadingSkills   = "### Skills:"
	HeadingWork     = "### Work Experience:"
	HeadingProjects = "### Projects:"
	HeadingEvents   = "### Events:"
)

// ComposeSystemPrompt renders the guideline block followed by the portfolio
// sections. Entries keep the snapshot's order and empty fields render as
// empty text.
func ComposeSystemPrompt(snap schema.PortfolioSnapshot) string {
	var sb strings.Builder

	sb.WriteString(GuidelineBlock)
	sb.WriteString("\n\n")

	sb.WriteString(HeadingAbout + "\n")
	sb.WriteString(snap.About + "\n\n")

	sb.WriteString(HeadingSkills + "\n")
	sb.WriteString(strings.Join(snap.Skills, ", ") + "\n\n")

	sb.WriteString(HeadingWork + "\n")
	for _, job := range snap.Jobs {
		sb.WriteString(fmt.Sprintf("- **%s** at %s (%s)\n", job.Title, job.Company, job.DateRange))
		sb.WriteString(fmt.Sprintf("  %s\n", job.Description))
	}
	sb.WriteString("\n")

	sb.WriteString(HeadingProjects + "\n")
	for _, project := range snap.Projects {
		sb.WriteString(fmt.Sprintf("- **%s**\n", project.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", project.Description))
		sb.WriteString(fmt.Sprintf("  **Technologies:** %s\n", strings.Join(project.Technologies, ", ")))
	}
	sb.WriteString("\n")

	sb.WriteString(HeadingEvents + "\n")
	for _, event := range snap.Events {
		sb.WriteString(fmt.Sprintf("- **%s** (%s)\n", event.Title, event.Date))
		sb.WriteString(fmt.Sprintf("  **Location:** %s\n", event.Location))
		sb.WriteString(fmt.Sprintf("  %s\n", event.Description))
	}

	return sb.String()
}

// Composer caches the composed prompt for one snapshot and recomposes only
// when handed a different snapshot.
type Composer struct {
	snap   *schema.PortfolioSnapshot
	prompt string
}

// Prompt returns the system prompt for snap.
func (c *Composer) Prompt(snap *schema.PortfolioSnapshot) string {
	if snap == nil {
		snap = &schema.PortfolioSnapshot{}
	}
	if c.snap != snap {
		c.snap = snap
		c.prompt = ComposeSystemPrompt(*snap)
	}
	return c.prompt
}
