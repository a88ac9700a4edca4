// Package chunker turns correlation clusters into the text fragments the
// retrieval layer embeds. Rendering is deterministic: the same cluster
// always produces the same fragments, which keeps re-ingestion idempotent.
package chunker

import (
	"fmt"
	"strings"
	"time"

	"github.com/teamlens/teamlens/internal/cluster"
	"github.com/teamlens/teamlens/internal/source"
)

// RenderTaskCluster produces the text profile of one task cluster.
func RenderTaskCluster(c cluster.TaskCluster) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Task: %s\n", c.TaskID)
	fmt.Fprintf(&sb, "Summary: %s\n", c.Ticket.Summary)
	fmt.Fprintf(&sb, "Status: %s\n", c.Ticket.Status)
	if c.Ticket.Assignee != "" {
		fmt.Fprintf(&sb, "Assignee: %s\n", c.Ticket.Assignee)
	}
	if c.Ticket.Resolution != "" {
		fmt.Fprintf(&sb, "Resolution: %s\n", c.Ticket.Resolution)
	}

	if len(c.Commits) > 0 {
		sb.WriteString("Commits:\n")
		for _, commit := range c.Commits {
			fmt.Fprintf(&sb, "- %s by %s: %s\n", commit.ID, commit.Author, commit.Message)
		}
	}

	if len(c.Emails) > 0 {
		sb.WriteString("Emails:\n")
		for _, email := range c.Emails {
			fmt.Fprintf(&sb, "- %s from %s to %s: %s\n",
				email.ThreadID, email.Sender, strings.Join(email.Recipients, ", "), email.Subject)
		}
	}

	renderTimeline(&sb, c.Timeline)
	return sb.String()
}

// RenderEmployeeCluster produces the text profile of one employee cluster.
func RenderEmployeeCluster(c cluster.EmployeeCluster) string {
	var sb strings.Builder
	summary := c.ActivitySummary()

	fmt.Fprintf(&sb, "Employee: %s\n", c.Person)
	fmt.Fprintf(&sb, "Activity: %d tickets assigned, %d tickets resolved, %d commits, %d emails sent, %d emails received (total %d)\n",
		summary.Assigned, summary.Resolved, summary.Commits, summary.Sent, summary.Received, summary.Total)

	if len(c.Assigned) > 0 {
		sb.WriteString("Assigned tickets:\n")
		renderTickets(&sb, c.Assigned)
	}
	if len(c.Resolved) > 0 {
		sb.WriteString("Resolved tickets:\n")
		renderTickets(&sb, c.Resolved)
	}
	if len(c.Commits) > 0 {
		sb.WriteString("Commits:\n")
		for _, commit := range c.Commits {
			fmt.Fprintf(&sb, "- %s", commit.ID)
			if commit.Ticket != "" {
				fmt.Fprintf(&sb, " (%s)", commit.Ticket)
			}
			fmt.Fprintf(&sb, ": %s\n", commit.Message)
		}
	}
	if len(c.Sent) > 0 {
		sb.WriteString("Emails sent:\n")
		for _, email := range c.Sent {
			fmt.Fprintf(&sb, "- to %s: %s\n", strings.Join(email.Recipients, ", "), email.Subject)
		}
	}
	if len(c.Received) > 0 {
		sb.WriteString("Emails received:\n")
		for _, email := range c.Received {
			fmt.Fprintf(&sb, "- from %s: %s\n", email.Sender, email.Subject)
		}
	}

	renderTimeline(&sb, c.Timeline)
	return sb.String()
}

func renderTickets(sb *strings.Builder, tickets []source.Ticket) {
	for _, ticket := range tickets {
		fmt.Fprintf(sb, "- %s [%s]: %s\n", ticket.ID, ticket.Status, ticket.Summary)
	}
}

func renderTimeline(sb *strings.Builder, events []cluster.Event) {
	if len(events) == 0 {
		return
	}
	sb.WriteString("Timeline:\n")
	for _, event := range events {
		fmt.Fprintf(sb, "- %s %s %s\n", event.Timestamp.Format(time.RFC3339), event.Type, event.RefID)
	}
}
