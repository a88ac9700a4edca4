package cluster

import (
	"testing"

	"github.com/teamlens/teamlens/internal/extract"
	"github.com/teamlens/teamlens/internal/source"
)

func newEmployeeCorrelator(t *testing.T) *EmployeeCorrelator {
	t.Helper()
	resolver, err := extract.NewResolver("")
	if err != nil {
		t.Fatal(err)
	}
	return NewEmployeeCorrelator(resolver)
}

func findCluster(t *testing.T, clusters []EmployeeCluster, person string) *EmployeeCluster {
	t.Helper()
	for i := range clusters {
		if clusters[i].Person == person {
			return &clusters[i]
		}
	}
	t.Fatalf("no cluster for %s", person)
	return nil
}

func TestEmployeeCorrelateAttribution(t *testing.T) {
	c := newEmployeeCorrelator(t)

	tickets := []source.Ticket{
		{ID: "PROJ-1", Assignee: "alice", Resolution: "Resolved by bob", CreatedAt: ts(1, 9), UpdatedAt: ts(2, 9)},
	}
	commits := []source.Commit{
		{ID: "c1", Author: "alice", Ticket: "PROJ-1", Timestamp: ts(1, 12)},
	}
	emails := []source.Email{
		{ThreadID: "t1", Sender: "alice", Recipients: []string{"bob"}, Timestamp: ts(1, 14)},
	}

	clusters := c.Correlate(tickets, commits, emails)
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2", len(clusters))
	}

	alice := findCluster(t, clusters, "alice")
	s := alice.ActivitySummary()
	if s.Assigned != 1 || s.Commits != 1 || s.Sent != 1 || s.Resolved != 0 || s.Received != 0 {
		t.Errorf("alice summary = %+v", s)
	}
	if s.Total != 3 {
		t.Errorf("alice total = %d, want 3 (additive across categories)", s.Total)
	}

	bob := findCluster(t, clusters, "bob")
	bs := bob.ActivitySummary()
	if bs.Resolved != 1 || bs.Received != 1 || bs.Total != 2 {
		t.Errorf("bob summary = %+v", bs)
	}

	// Most active first.
	if clusters[0].Person != "alice" {
		t.Errorf("first cluster = %s, want alice (total 3 > 2)", clusters[0].Person)
	}
}

func TestEmployeeCorrelateResolverNoMatch(t *testing.T) {
	c := newEmployeeCorrelator(t)

	tickets := []source.Ticket{
		{ID: "PROJ-1", Assignee: "alice", Resolution: "Fixed upstream", CreatedAt: ts(1, 9), UpdatedAt: ts(2, 9)},
	}

	clusters := c.Correlate(tickets, nil, nil)
	if len(clusters) != 1 {
		t.Fatalf("got %d clusters, want 1; unmatched resolution is silent", len(clusters))
	}
	if got := clusters[0].ActivitySummary().Resolved; got != 0 {
		t.Errorf("resolved = %d, want 0", got)
	}
}

func TestEmployeeCorrelateRecipientsEachGetCluster(t *testing.T) {
	c := newEmployeeCorrelator(t)

	emails := []source.Email{
		{ThreadID: "t1", Sender: "alice", Recipients: []string{"bob", "carol"}, Timestamp: ts(1, 14)},
	}

	clusters := c.Correlate(nil, nil, emails)
	if len(clusters) != 3 {
		t.Fatalf("got %d clusters, want 3", len(clusters))
	}
	for _, person := range []string{"bob", "carol"} {
		if got := findCluster(t, clusters, person).ActivitySummary().Received; got != 1 {
			t.Errorf("%s received = %d, want 1", person, got)
		}
	}
}

func TestEmployeeCorrelateOmitsInactive(t *testing.T) {
	c := newEmployeeCorrelator(t)

	// An unassigned ticket with no resolution names nobody.
	tickets := []source.Ticket{
		{ID: "PROJ-1", CreatedAt: ts(1, 9), UpdatedAt: ts(2, 9)},
	}
	clusters := c.Correlate(tickets, nil, nil)
	if len(clusters) != 0 {
		t.Errorf("got %d clusters, want 0", len(clusters))
	}
}

func TestEmployeeCorrelateStableOrderOnTies(t *testing.T) {
	c := newEmployeeCorrelator(t)

	commits := []source.Commit{
		{ID: "c1", Author: "zoe", Timestamp: ts(1, 10)},
		{ID: "c2", Author: "adam", Timestamp: ts(1, 11)},
	}

	clusters := c.Correlate(nil, commits, nil)
	if clusters[0].Person != "zoe" || clusters[1].Person != "adam" {
		t.Errorf("tie order = %s, %s; want encounter order zoe, adam",
			clusters[0].Person, clusters[1].Person)
	}
}

func TestEmployeeCorrelateIdempotent(t *testing.T) {
	c := newEmployeeCorrelator(t)

	tickets := []source.Ticket{
		{ID: "PROJ-1", Assignee: "alice", Resolution: "Resolved by bob", CreatedAt: ts(1, 9), UpdatedAt: ts(2, 9)},
		{ID: "PROJ-2", Assignee: "bob", CreatedAt: ts(1, 10), UpdatedAt: ts(2, 10)},
	}
	commits := []source.Commit{
		{ID: "c1", Author: "alice", Ticket: "PROJ-1", Timestamp: ts(1, 12)},
	}
	emails := []source.Email{
		{ThreadID: "t1", Sender: "bob", Recipients: []string{"alice"}, Timestamp: ts(1, 14)},
	}

	first := c.Correlate(tickets, commits, emails)
	second := c.Correlate(tickets, commits, emails)

	if len(first) != len(second) {
		t.Fatalf("cluster counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Person != second[i].Person {
			t.Errorf("order differs at %d: %s vs %s", i, first[i].Person, second[i].Person)
		}
		if first[i].ActivitySummary() != second[i].ActivitySummary() {
			t.Errorf("summary differs for %s", first[i].Person)
		}
	}
}
