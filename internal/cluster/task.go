// Package cluster reconstructs entity-centric views from the three loosely
// linked record streams. Tickets, commits, and emails are independently
// keyed; the correlators join them through direct foreign keys where they
// exist and through text-mined references everywhere else.
package cluster

import (
	"github.com/teamlens/teamlens/internal/source"
)

// IDExtractor finds record identifiers inside free text.
type IDExtractor interface {
	Extract(text string) []string
}

// ResolverExtractor finds the resolver name inside a resolution note.
type ResolverExtractor interface {
	Extract(text string) (string, bool)
}

// TaskCluster aggregates every record that belongs to one task. The seeding
// ticket is required; clusters that never receive one are discarded.
type TaskCluster struct {
	TaskID   string          `json:"task_id"`
	Ticket   source.Ticket   `json:"ticket"`
	Commits  []source.Commit `json:"commits"`
	Emails   []source.Email  `json:"emails"`
	Timeline []Event         `json:"timeline"`
}

// TaskCorrelator clusters records around task identifiers.
type TaskCorrelator struct {
	taskIDs   IDExtractor
	commitIDs IDExtractor
}

// NewTaskCorrelator builds a correlator from the two text extractors.
func NewTaskCorrelator(taskIDs, commitIDs IDExtractor) *TaskCorrelator {
	return &TaskCorrelator{taskIDs: taskIDs, commitIDs: commitIDs}
}

// taskAccumulator is the mutable build state for one cluster. Accumulation
// and finalization are separate phases so no cluster is mutated while the
// output sequence is being assembled.
type taskAccumulator struct {
	ticket   *source.Ticket
	commits  []source.Commit
	emails   []source.Email
	emailIDs map[string]bool
	timeline []Event
}

// Correlate builds one cluster per ticket and attaches commits and emails to
// them. Commits join via their ticket reference; emails join via task IDs
// mined from subject and body, falling back to commit-UUID references only
// when no task ID was found at all. Output order follows ticket input order.
func (c *TaskCorrelator) Correlate(tickets []source.Ticket, commits []source.Commit, emails []source.Email) []TaskCluster {
	accs := make(map[string]*taskAccumulator)
	var order []string

	// Tickets seed the clusters.
	for i := range tickets {
		ticket := tickets[i]
		acc, ok := accs[ticket.ID]
		if !ok {
			acc = &taskAccumulator{emailIDs: make(map[string]bool)}
			accs[ticket.ID] = acc
			order = append(order, ticket.ID)
		}
		acc.ticket = &ticket
		acc.timeline = append(acc.timeline, Event{
			Type:      EventTicketCreated,
			RefID:     ticket.ID,
			Timestamp: ticket.CreatedAt.Time,
		})
	}

	// Commits join through their ticket reference. A commit without one, or
	// whose reference matches no ticket, is dropped; placeholder clusters are
	// never invented for unresolvable references.
	for _, commit := range commits {
		if commit.Ticket == "" {
			continue
		}
		acc, ok := accs[commit.Ticket]
		if !ok {
			continue
		}
		acc.commits = append(acc.commits, commit)
		acc.timeline = append(acc.timeline, Event{
			Type:      EventCommit,
			RefID:     commit.ID,
			Timestamp: commit.Timestamp.Time,
		})
	}

	for _, email := range emails {
		c.attachEmail(accs, email)
	}

	// Finalize into the immutable output sequence.
	clusters := make([]TaskCluster, 0, len(order))
	for _, taskID := range order {
		acc := accs[taskID]
		if acc.ticket == nil {
			continue
		}
		sortTimeline(acc.timeline)
		clusters = append(clusters, TaskCluster{
			TaskID:   taskID,
			Ticket:   *acc.ticket,
			Commits:  acc.commits,
			Emails:   acc.emails,
			Timeline: acc.timeline,
		})
	}
	return clusters
}

// attachEmail links one email to every cluster it references. An email may
// legitimately land in several clusters when its text names several tasks;
// within a single cluster it is attached at most once.
func (c *TaskCorrelator) attachEmail(accs map[string]*taskAccumulator, email source.Email) {
	taskIDs := c.taskIDs.Extract(email.Subject + email.Body)

	for _, taskID := range taskIDs {
		if acc, ok := accs[taskID]; ok {
			acc.addEmail(email)
		}
	}

	// Commit-UUID fallback runs only when the text contained no task ID at
	// all, matched or not.
	if len(taskIDs) > 0 {
		return
	}
	for _, commitID := range c.commitIDs.Extract(email.Body) {
		for _, acc := range accs {
			if acc.hasCommit(commitID) {
				acc.addEmail(email)
			}
		}
	}
}

func (a *taskAccumulator) addEmail(email source.Email) {
	key := emailKey(email)
	if a.emailIDs[key] {
		return
	}
	a.emailIDs[key] = true
	a.emails = append(a.emails, email)
	a.timeline = append(a.timeline, Event{
		Type:      EventEmail,
		RefID:     email.ThreadID,
		Timestamp: email.Timestamp.Time,
	})
}

func (a *taskAccumulator) hasCommit(commitID string) bool {
	for _, commit := range a.commits {
		if commit.ID == commitID {
			return true
		}
	}
	return false
}

// emailKey identifies an email within a cluster. Thread IDs repeat across
// messages in a thread, so the timestamp participates too.
func emailKey(email source.Email) string {
	return email.ThreadID + "|" + email.Sender + "|" + email.Timestamp.UTC().String()
}
