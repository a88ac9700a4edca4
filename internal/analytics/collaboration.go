package analytics

import (
	"sort"

	"github.com/teamlens/teamlens/internal/source"
)

// Collaborator is one edge endpoint with its interaction strength.
type Collaborator struct {
	Person   string `json:"person"`
	Strength int    `json:"strength"`
}

// CollaborationProfile lists one person's collaborators, strongest first.
type CollaborationProfile struct {
	Person        string         `json:"person"`
	Total         int            `json:"total_collaborations"`
	Collaborators []Collaborator `json:"collaborators"`
}

// BuildCollaborationGraph derives a symmetric weighted graph over person
// identifiers. Each email between a distinct sender/recipient pair adds one
// to the edge in both directions; each unordered pair of distinct authors
// committing against the same ticket adds one more. Profiles are ordered
// descending by total strength; ties and equal-strength collaborators fall
// back to name order so output is deterministic.
func BuildCollaborationGraph(commits []source.Commit, emails []source.Email) []CollaborationProfile {
	graph := make(map[string]map[string]int)

	increment := func(a, b string) {
		if graph[a] == nil {
			graph[a] = make(map[string]int)
		}
		if graph[b] == nil {
			graph[b] = make(map[string]int)
		}
		graph[a][b]++
		graph[b][a]++
	}

	// Email exchanges.
	for _, email := range emails {
		for _, recipient := range email.Recipients {
			if email.Sender != "" && recipient != "" && email.Sender != recipient {
				increment(email.Sender, recipient)
			}
		}
	}

	// Shared ticket contributions: every unordered pair within a ticket's
	// contributor set is connected, not just adjacent ones.
	contributors := make(map[string][]string)
	for _, commit := range commits {
		if commit.Ticket == "" || commit.Author == "" {
			continue
		}
		if !containsString(contributors[commit.Ticket], commit.Author) {
			contributors[commit.Ticket] = append(contributors[commit.Ticket], commit.Author)
		}
	}
	for _, people := range contributors {
		for i := 0; i < len(people); i++ {
			for j := i + 1; j < len(people); j++ {
				increment(people[i], people[j])
			}
		}
	}

	profiles := make([]CollaborationProfile, 0, len(graph))
	for person, edges := range graph {
		profile := CollaborationProfile{Person: person}
		for colleague, strength := range edges {
			profile.Total += strength
			profile.Collaborators = append(profile.Collaborators, Collaborator{
				Person:   colleague,
				Strength: strength,
			})
		}
		sort.Slice(profile.Collaborators, func(i, j int) bool {
			a, b := profile.Collaborators[i], profile.Collaborators[j]
			if a.Strength != b.Strength {
				return a.Strength > b.Strength
			}
			return a.Person < b.Person
		})
		profiles = append(profiles, profile)
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].Total != profiles[j].Total {
			return profiles[i].Total > profiles[j].Total
		}
		return profiles[i].Person < profiles[j].Person
	})

	return profiles
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
