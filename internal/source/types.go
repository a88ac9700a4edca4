package source

import (
	"fmt"
	"strings"
	"time"
)

// timeLayouts are the accepted timestamp formats. Snapshots exported from
// Python tooling carry zone-less ISO-8601 strings, so plain RFC 3339 parsing
// is not enough.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Time is a time.Time that unmarshals from both RFC 3339 and zone-less
// ISO-8601 JSON strings. Zone-less values are interpreted as UTC.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(time.RFC3339) + `"`), nil
}

// Ticket is a single issue-tracker ticket. Assignee and Resolution are
// optional; everything else is required. Tickets are immutable once loaded.
type Ticket struct {
	ID         string `json:"id"`
	Summary    string `json:"summary"`
	Status     string `json:"status"`
	Assignee   string `json:"assignee,omitempty"`
	Resolution string `json:"resolution,omitempty"`
	CreatedAt  Time   `json:"created_at"`
	UpdatedAt  Time   `json:"updated_at"`
}

// Commit is a single source-control commit. Ticket is the optional
// issue-tracker reference placed in the commit metadata.
type Commit struct {
	ID        string `json:"commit_id"`
	Author    string `json:"author"`
	Ticket    string `json:"ticket,omitempty"`
	Message   string `json:"message"`
	Timestamp Time   `json:"timestamp"`
}

// Email is a single message in an email thread.
type Email struct {
	ThreadID   string   `json:"thread_id"`
	Sender     string   `json:"sender"`
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	Timestamp  Time     `json:"timestamp"`
}

// Snapshot is one batch of input records. A new snapshot triggers a full
// rebuild of every derived structure; there is no update path.
type Snapshot struct {
	Tickets []Ticket `json:"jira"`
	Commits []Commit `json:"git"`
	Emails  []Email  `json:"emails"`
}

// Merge appends the records of other onto s, preserving input order.
func (s *Snapshot) Merge(other Snapshot) {
	s.Tickets = append(s.Tickets, other.Tickets...)
	s.Commits = append(s.Commits, other.Commits...)
	s.Emails = append(s.Emails, other.Emails...)
}
