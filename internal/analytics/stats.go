// Package analytics derives team-level insight from employee clusters:
// aggregate statistics, heuristic role tags, a collaboration graph, and
// keyword-based skill profiles. Every derivation is a pure function over its
// inputs; re-running on the same snapshot yields identical output.
package analytics

import (
	"sort"

	"github.com/teamlens/teamlens/internal/cluster"
)

const topContributorCount = 3

// TeamStats aggregates activity across all employee clusters.
type TeamStats struct {
	TotalEmployees int `json:"total_employees"`
	TotalAssigned  int `json:"total_tickets_assigned"`
	TotalResolved  int `json:"total_tickets_resolved"`
	TotalCommits   int `json:"total_commits"`
	TotalSent      int `json:"total_emails_sent"`
	TotalReceived  int `json:"total_emails_received"`

	// Top contributors, at most three each, ties kept in cluster order.
	TopCommitters []string `json:"top_committers"`
	TopResolvers  []string `json:"top_resolvers"`
}

// Summarize computes aggregate statistics over the employee clusters.
func Summarize(clusters []cluster.EmployeeCluster) TeamStats {
	stats := TeamStats{TotalEmployees: len(clusters)}

	for _, c := range clusters {
		s := c.ActivitySummary()
		stats.TotalAssigned += s.Assigned
		stats.TotalResolved += s.Resolved
		stats.TotalCommits += s.Commits
		stats.TotalSent += s.Sent
		stats.TotalReceived += s.Received
	}

	stats.TopCommitters = topBy(clusters, func(s cluster.ActivitySummary) int { return s.Commits })
	stats.TopResolvers = topBy(clusters, func(s cluster.ActivitySummary) int { return s.Resolved })

	return stats
}

// topBy returns up to three person names ranked descending by the given
// metric. The sort is stable so input order breaks ties.
func topBy(clusters []cluster.EmployeeCluster, metric func(cluster.ActivitySummary) int) []string {
	ranked := make([]cluster.EmployeeCluster, len(clusters))
	copy(ranked, clusters)
	sort.SliceStable(ranked, func(i, j int) bool {
		return metric(ranked[i].ActivitySummary()) > metric(ranked[j].ActivitySummary())
	})

	n := topContributorCount
	if len(ranked) < n {
		n = len(ranked)
	}
	top := make([]string, 0, n)
	for _, c := range ranked[:n] {
		top = append(top, c.Person)
	}
	return top
}

// RoleTags holds the heuristic, non-exclusive role candidates. The
// conditions are independent best-effort signals, not a partition; a person
// may carry zero, one, or several tags.
type RoleTags struct {
	Developers    []string `json:"potential_developers"`
	Communicators []string `json:"potential_communicators"`
	Managers      []string `json:"potential_managers"`
}

// ClassifyRoles tags people by simple activity-shape heuristics: developers
// commit more than they email, communicators send more than twice as many
// emails as they commit, and managers are communicators who hold tickets but
// never commit.
func ClassifyRoles(clusters []cluster.EmployeeCluster) RoleTags {
	var tags RoleTags

	for _, c := range clusters {
		s := c.ActivitySummary()

		if s.Commits > s.Sent+s.Received {
			tags.Developers = append(tags.Developers, c.Person)
		}
		if s.Sent > s.Commits*2 {
			tags.Communicators = append(tags.Communicators, c.Person)
			if s.Assigned > 0 && s.Commits == 0 {
				tags.Managers = append(tags.Managers, c.Person)
			}
		}
	}

	return tags
}
