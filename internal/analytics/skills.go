package analytics

import (
	"sort"
	"strings"

	"github.com/teamlens/teamlens/internal/cluster"
)

// techTerms is the fixed technology vocabulary scanned in commit messages
// and ticket summaries.
var techTerms = []string{
	"python", "javascript", "react", "node", "api", "database",
	"sql", "aws", "docker", "kubernetes", "frontend", "backend",
}

// actionTerms is the fixed action vocabulary, scanned in commit messages
// only.
var actionTerms = []string{
	"fix", "implement", "refactor", "optimize", "test", "deploy",
}

// Skill is one vocabulary term with its mention count.
type Skill struct {
	Term     string `json:"term"`
	Mentions int    `json:"mentions"`
}

// SkillProfile holds the inferred skill mentions for one person, most
// mentioned first.
type SkillProfile struct {
	Person string  `json:"person"`
	Skills []Skill `json:"skills"`
}

// ExtractSkills scans each person's commit messages and ticket summaries for
// the fixed vocabularies, case-insensitively. Every occurrence counts, so a
// term repeated within one message is counted each time. Profiles follow the
// cluster order; skills are ordered by mentions descending, ties by term.
func ExtractSkills(clusters []cluster.EmployeeCluster) []SkillProfile {
	profiles := make([]SkillProfile, 0, len(clusters))

	for _, c := range clusters {
		counts := make(map[string]int)

		for _, commit := range c.Commits {
			message := strings.ToLower(commit.Message)
			countTerms(counts, message, techTerms)
			countTerms(counts, message, actionTerms)
		}

		for _, ticket := range c.Assigned {
			countTerms(counts, strings.ToLower(ticket.Summary), techTerms)
		}
		for _, ticket := range c.Resolved {
			countTerms(counts, strings.ToLower(ticket.Summary), techTerms)
		}

		skills := make([]Skill, 0, len(counts))
		for term, mentions := range counts {
			skills = append(skills, Skill{Term: term, Mentions: mentions})
		}
		sort.Slice(skills, func(i, j int) bool {
			if skills[i].Mentions != skills[j].Mentions {
				return skills[i].Mentions > skills[j].Mentions
			}
			return skills[i].Term < skills[j].Term
		})

		profiles = append(profiles, SkillProfile{Person: c.Person, Skills: skills})
	}

	return profiles
}

func countTerms(counts map[string]int, text string, terms []string) {
	for _, term := range terms {
		if n := strings.Count(text, term); n > 0 {
			counts[term] += n
		}
	}
}
