package cluster

import (
	"sort"

	"github.com/teamlens/teamlens/internal/source"
)

// EmployeeCluster aggregates every record attributable to one person.
type EmployeeCluster struct {
	Person   string          `json:"person"`
	Assigned []source.Ticket `json:"assigned"`
	Resolved []source.Ticket `json:"resolved"`
	Commits  []source.Commit `json:"commits"`
	Sent     []source.Email  `json:"sent"`
	Received []source.Email  `json:"received"`
	Timeline []Event         `json:"timeline"`
}

// ActivitySummary holds the per-category counts for one person. Counts are
// always derived from the record lists, never stored alongside them.
type ActivitySummary struct {
	Assigned int `json:"tickets_assigned"`
	Resolved int `json:"tickets_resolved"`
	Commits  int `json:"commits"`
	Sent     int `json:"emails_sent"`
	Received int `json:"emails_received"`
	Total    int `json:"total_activity_count"`
}

// ActivitySummary computes the category counts and their additive total.
func (c *EmployeeCluster) ActivitySummary() ActivitySummary {
	s := ActivitySummary{
		Assigned: len(c.Assigned),
		Resolved: len(c.Resolved),
		Commits:  len(c.Commits),
		Sent:     len(c.Sent),
		Received: len(c.Received),
	}
	s.Total = s.Assigned + s.Resolved + s.Commits + s.Sent + s.Received
	return s
}

// EmployeeCorrelator clusters records around person identifiers.
type EmployeeCorrelator struct {
	resolver ResolverExtractor
}

// NewEmployeeCorrelator builds a correlator using the given resolver
// extractor for resolution-note attribution.
func NewEmployeeCorrelator(resolver ResolverExtractor) *EmployeeCorrelator {
	return &EmployeeCorrelator{resolver: resolver}
}

// Correlate builds one cluster per person seen anywhere in the input.
// Tickets attach to their assignee and, when the resolution note names one,
// to their resolver; commits attach to their author; emails attach to the
// sender and independently to every recipient. People with no records at all
// are omitted. Output is sorted descending by total activity count, stable.
func (c *EmployeeCorrelator) Correlate(tickets []source.Ticket, commits []source.Commit, emails []source.Email) []EmployeeCluster {
	accs := make(map[string]*EmployeeCluster)
	var order []string

	get := func(person string) *EmployeeCluster {
		acc, ok := accs[person]
		if !ok {
			acc = &EmployeeCluster{Person: person}
			accs[person] = acc
			order = append(order, person)
		}
		return acc
	}

	for _, ticket := range tickets {
		if ticket.Assignee != "" {
			acc := get(ticket.Assignee)
			acc.Assigned = append(acc.Assigned, ticket)
			acc.Timeline = append(acc.Timeline, Event{
				Type:      EventTicketAssigned,
				RefID:     ticket.ID,
				Timestamp: ticket.CreatedAt.Time,
			})
		}

		// Resolver attribution is best-effort text mining; no match is a
		// normal, silent outcome.
		if ticket.Resolution != "" {
			if resolver, ok := c.resolver.Extract(ticket.Resolution); ok {
				acc := get(resolver)
				acc.Resolved = append(acc.Resolved, ticket)
				acc.Timeline = append(acc.Timeline, Event{
					Type:      EventTicketResolved,
					RefID:     ticket.ID,
					Timestamp: ticket.UpdatedAt.Time,
				})
			}
		}
	}

	for _, commit := range commits {
		acc := get(commit.Author)
		acc.Commits = append(acc.Commits, commit)
		acc.Timeline = append(acc.Timeline, Event{
			Type:      EventCommit,
			RefID:     commit.ID,
			Timestamp: commit.Timestamp.Time,
		})
	}

	for _, email := range emails {
		acc := get(email.Sender)
		acc.Sent = append(acc.Sent, email)
		acc.Timeline = append(acc.Timeline, Event{
			Type:      EventEmailSent,
			RefID:     email.ThreadID,
			Timestamp: email.Timestamp.Time,
		})

		for _, recipient := range email.Recipients {
			racc := get(recipient)
			racc.Received = append(racc.Received, email)
			racc.Timeline = append(racc.Timeline, Event{
				Type:      EventEmailReceived,
				RefID:     email.ThreadID,
				Timestamp: email.Timestamp.Time,
			})
		}
	}

	clusters := make([]EmployeeCluster, 0, len(order))
	for _, person := range order {
		acc := accs[person]
		if acc.ActivitySummary().Total == 0 {
			continue
		}
		sortTimeline(acc.Timeline)
		clusters = append(clusters, *acc)
	}

	// Most active people first; the stable sort keeps encounter order on
	// ties.
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].ActivitySummary().Total > clusters[j].ActivitySummary().Total
	})

	return clusters
}
