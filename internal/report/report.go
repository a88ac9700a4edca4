// Package report renders team analytics as markdown and HTML.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/teamlens/teamlens/internal/analytics"
)

// Markdown renders the full team activity report as a markdown document.
func Markdown(r *analytics.Report) string {
	var b strings.Builder

	b.WriteString("# Team Activity Report\n\n")
	fmt.Fprintf(&b, "_Generated %s_\n\n", time.Now().UTC().Format("2006-01-02 15:04 UTC"))

	writeStats(&b, &r.Stats)
	writeRoles(&b, &r.Roles)
	writeCollaboration(&b, r.Collaboration)
	writeSkills(&b, r.Skills)

	return b.String()
}

func writeStats(b *strings.Builder, s *analytics.TeamStats) {
	b.WriteString("## Overview\n\n")
	b.WriteString("| Metric | Count |\n|---|---|\n")
	fmt.Fprintf(b, "| Team members | %d |\n", s.TotalEmployees)
	fmt.Fprintf(b, "| Tickets assigned | %d |\n", s.TotalAssigned)
	fmt.Fprintf(b, "| Tickets resolved | %d |\n", s.TotalResolved)
	fmt.Fprintf(b, "| Commits | %d |\n", s.TotalCommits)
	fmt.Fprintf(b, "| Emails sent | %d |\n", s.TotalSent)
	fmt.Fprintf(b, "| Emails received | %d |\n\n", s.TotalReceived)

	if len(s.TopCommitters) > 0 {
		b.WriteString("### Top committers\n\n")
		for i, person := range s.TopCommitters {
			fmt.Fprintf(b, "%d. %s\n", i+1, person)
		}
		b.WriteString("\n")
	}
	if len(s.TopResolvers) > 0 {
		b.WriteString("### Top resolvers\n\n")
		for i, person := range s.TopResolvers {
			fmt.Fprintf(b, "%d. %s\n", i+1, person)
		}
		b.WriteString("\n")
	}
}

func writeRoles(b *strings.Builder, roles *analytics.RoleTags) {
	b.WriteString("## Roles\n\n")
	writeRoleList(b, "Developers", roles.Developers)
	writeRoleList(b, "Communicators", roles.Communicators)
	writeRoleList(b, "Managers", roles.Managers)
}

func writeRoleList(b *strings.Builder, label string, people []string) {
	if len(people) == 0 {
		fmt.Fprintf(b, "**%s:** none identified\n\n", label)
		return
	}
	fmt.Fprintf(b, "**%s:** %s\n\n", label, strings.Join(people, ", "))
}

func writeCollaboration(b *strings.Builder, profiles []analytics.CollaborationProfile) {
	b.WriteString("## Collaboration\n\n")
	if len(profiles) == 0 {
		b.WriteString("No collaboration observed.\n\n")
		return
	}
	for _, p := range profiles {
		fmt.Fprintf(b, "### %s (%d interactions)\n\n", p.Person, p.Total)
		for _, c := range p.Collaborators {
			fmt.Fprintf(b, "- %s: %d\n", c.Person, c.Strength)
		}
		b.WriteString("\n")
	}
}

func writeSkills(b *strings.Builder, profiles []analytics.SkillProfile) {
	b.WriteString("## Skills\n\n")
	if len(profiles) == 0 {
		b.WriteString("No skill signals found.\n\n")
		return
	}
	for _, p := range profiles {
		if len(p.Skills) == 0 {
			continue
		}
		terms := make([]string, 0, len(p.Skills))
		for _, s := range p.Skills {
			terms = append(terms, fmt.Sprintf("%s (%d)", s.Term, s.Mentions))
		}
		fmt.Fprintf(b, "- **%s:** %s\n", p.Person, strings.Join(terms, ", "))
	}
	b.WriteString("\n")
}

// HTML converts markdown report content to a standalone HTML page.
func HTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}

	var page strings.Builder
	page.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Team Activity Report</title>
<style>
body { font-family: -apple-system, sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #1f2328; }
table { border-collapse: collapse; }
th, td { border: 1px solid #d0d7de; padding: 0.4rem 0.8rem; }
h1, h2 { border-bottom: 1px solid #d0d7de; padding-bottom: 0.3rem; }
</style>
</head>
<body>
`)
	page.Write(body.Bytes())
	page.WriteString("\n</body>\n</html>\n")
	return page.String(), nil
}
