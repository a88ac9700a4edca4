package analytics

import (
	"reflect"
	"testing"
	"time"

	"github.com/teamlens/teamlens/internal/cluster"
	"github.com/teamlens/teamlens/internal/source"
)

func ts(day int) source.Time {
	return source.Time{Time: time.Date(2024, 3, day, 12, 0, 0, 0, time.UTC)}
}

func clusterWith(person string, assigned, resolved, commits, sent, received int) cluster.EmployeeCluster {
	c := cluster.EmployeeCluster{Person: person}
	for i := 0; i < assigned; i++ {
		c.Assigned = append(c.Assigned, source.Ticket{ID: "PROJ-1"})
	}
	for i := 0; i < resolved; i++ {
		c.Resolved = append(c.Resolved, source.Ticket{ID: "PROJ-2"})
	}
	for i := 0; i < commits; i++ {
		c.Commits = append(c.Commits, source.Commit{ID: "c", Author: person})
	}
	for i := 0; i < sent; i++ {
		c.Sent = append(c.Sent, source.Email{ThreadID: "t", Sender: person})
	}
	for i := 0; i < received; i++ {
		c.Received = append(c.Received, source.Email{ThreadID: "t"})
	}
	return c
}

func TestSummarize(t *testing.T) {
	clusters := []cluster.EmployeeCluster{
		clusterWith("alice", 2, 1, 5, 1, 0),
		clusterWith("bob", 1, 3, 2, 4, 2),
		clusterWith("carol", 0, 0, 8, 0, 1),
		clusterWith("dave", 0, 2, 1, 0, 0),
	}

	stats := Summarize(clusters)
	if stats.TotalEmployees != 4 {
		t.Errorf("TotalEmployees = %d, want 4", stats.TotalEmployees)
	}
	if stats.TotalAssigned != 3 || stats.TotalResolved != 6 || stats.TotalCommits != 16 ||
		stats.TotalSent != 5 || stats.TotalReceived != 3 {
		t.Errorf("totals = %+v", stats)
	}

	if want := []string{"carol", "alice", "bob"}; !reflect.DeepEqual(stats.TopCommitters, want) {
		t.Errorf("TopCommitters = %v, want %v", stats.TopCommitters, want)
	}
	if want := []string{"bob", "dave", "alice"}; !reflect.DeepEqual(stats.TopResolvers, want) {
		t.Errorf("TopResolvers = %v, want %v", stats.TopResolvers, want)
	}
}

func TestTopByTiesKeepClusterOrder(t *testing.T) {
	clusters := []cluster.EmployeeCluster{
		clusterWith("first", 0, 0, 3, 0, 0),
		clusterWith("second", 0, 0, 3, 0, 0),
	}
	stats := Summarize(clusters)
	if want := []string{"first", "second"}; !reflect.DeepEqual(stats.TopCommitters, want) {
		t.Errorf("TopCommitters = %v, want stable %v", stats.TopCommitters, want)
	}
}

func TestClassifyRoles(t *testing.T) {
	clusters := []cluster.EmployeeCluster{
		// Developer: commits outweigh all email traffic.
		clusterWith("dev", 0, 0, 10, 2, 3),
		// Communicator: sends far more than committing, but still commits.
		clusterWith("comm", 0, 0, 1, 5, 0),
		// Manager: communicator holding tickets with zero commits.
		clusterWith("mgr", 2, 0, 0, 6, 1),
		// Mixed: high commits and high email, neither condition holds.
		clusterWith("mixed", 1, 0, 4, 3, 2),
	}

	roles := ClassifyRoles(clusters)
	if want := []string{"dev"}; !reflect.DeepEqual(roles.Developers, want) {
		t.Errorf("Developers = %v, want %v", roles.Developers, want)
	}
	if want := []string{"comm", "mgr"}; !reflect.DeepEqual(roles.Communicators, want) {
		t.Errorf("Communicators = %v, want %v", roles.Communicators, want)
	}
	if want := []string{"mgr"}; !reflect.DeepEqual(roles.Managers, want) {
		t.Errorf("Managers = %v, want %v", roles.Managers, want)
	}
}

func TestClassifyRolesManagerNeedsCommunicatorSignal(t *testing.T) {
	// Assigned tickets and zero commits, but not enough sent email to be a
	// communicator; no manager tag.
	clusters := []cluster.EmployeeCluster{
		clusterWith("quiet", 3, 0, 0, 0, 5),
	}
	roles := ClassifyRoles(clusters)
	if len(roles.Managers) != 0 {
		t.Errorf("Managers = %v, want empty", roles.Managers)
	}
}

func TestBuildCollaborationGraphEmailEdges(t *testing.T) {
	emails := []source.Email{
		{ThreadID: "t1", Sender: "alice", Recipients: []string{"bob"}, Timestamp: ts(1)},
	}

	profiles := BuildCollaborationGraph(nil, emails)
	if len(profiles) != 2 {
		t.Fatalf("got %d profiles, want 2", len(profiles))
	}

	// Symmetric edge of strength 1 in both directions.
	for _, p := range profiles {
		if p.Total != 1 || len(p.Collaborators) != 1 || p.Collaborators[0].Strength != 1 {
			t.Errorf("profile %+v, want single edge of strength 1", p)
		}
	}
	// Equal totals fall back to name order.
	if profiles[0].Person != "alice" || profiles[1].Person != "bob" {
		t.Errorf("order = %s, %s; want alice, bob", profiles[0].Person, profiles[1].Person)
	}
}

func TestBuildCollaborationGraphSharedTickets(t *testing.T) {
	commits := []source.Commit{
		{ID: "c1", Author: "alice", Ticket: "PROJ-1", Timestamp: ts(1)},
		{ID: "c2", Author: "bob", Ticket: "PROJ-1", Timestamp: ts(2)},
		{ID: "c3", Author: "alice", Ticket: "PROJ-1", Timestamp: ts(3)},
		{ID: "c4", Author: "carol", Ticket: "PROJ-2", Timestamp: ts(4)},
	}
	emails := []source.Email{
		{ThreadID: "t1", Sender: "alice", Recipients: []string{"bob"}, Timestamp: ts(5)},
	}

	profiles := BuildCollaborationGraph(commits, emails)

	var alice *CollaborationProfile
	for i := range profiles {
		if profiles[i].Person == "alice" {
			alice = &profiles[i]
		}
	}
	if alice == nil {
		t.Fatal("no profile for alice")
	}
	// One email edge plus one shared-ticket edge; repeat commits by the same
	// author on the same ticket do not add weight.
	if alice.Total != 2 {
		t.Errorf("alice total = %d, want 2", alice.Total)
	}
	if len(alice.Collaborators) != 1 || alice.Collaborators[0].Person != "bob" || alice.Collaborators[0].Strength != 2 {
		t.Errorf("alice collaborators = %+v", alice.Collaborators)
	}

	// carol committed alone; she never enters the graph.
	for _, p := range profiles {
		if p.Person == "carol" {
			t.Error("carol should not appear: solo commits create no edges")
		}
	}
}

func TestBuildCollaborationGraphIgnoresSelfAndEmpty(t *testing.T) {
	emails := []source.Email{
		{ThreadID: "t1", Sender: "alice", Recipients: []string{"alice", ""}, Timestamp: ts(1)},
	}
	if profiles := BuildCollaborationGraph(nil, emails); len(profiles) != 0 {
		t.Errorf("got %d profiles, want 0", len(profiles))
	}
}

func TestExtractSkills(t *testing.T) {
	clusters := []cluster.EmployeeCluster{
		{
			Person: "alice",
			Commits: []source.Commit{
				{ID: "c1", Author: "alice", Message: "Fix API timeout in backend"},
				{ID: "c2", Author: "alice", Message: "fix docker build, fix tests"},
			},
			Assigned: []source.Ticket{
				{ID: "PROJ-1", Summary: "Backend API returns 500"},
			},
		},
	}

	profiles := ExtractSkills(clusters)
	if len(profiles) != 1 {
		t.Fatalf("got %d profiles, want 1", len(profiles))
	}

	got := make(map[string]int)
	for _, s := range profiles[0].Skills {
		got[s.Term] = s.Mentions
	}
	// "fix" appears three times across the two commit messages; every
	// occurrence counts.
	if got["fix"] != 3 {
		t.Errorf("fix mentions = %d, want 3", got["fix"])
	}
	// "api" and "backend" appear once in commits and once in the assigned
	// ticket summary.
	if got["api"] != 2 || got["backend"] != 2 {
		t.Errorf("api = %d, backend = %d, want 2 each", got["api"], got["backend"])
	}
	if got["docker"] != 1 {
		t.Errorf("docker mentions = %d, want 1", got["docker"])
	}
	// Action terms are not scanned in ticket summaries, tech terms are.
	if _, ok := got["test"]; !ok {
		t.Error("expected test from commit message")
	}

	// Mentions descending, ties by term.
	skills := profiles[0].Skills
	for i := 1; i < len(skills); i++ {
		if skills[i].Mentions > skills[i-1].Mentions {
			t.Errorf("skills out of order at %d: %+v", i, skills)
		}
		if skills[i].Mentions == skills[i-1].Mentions && skills[i].Term < skills[i-1].Term {
			t.Errorf("tie not broken by term at %d: %+v", i, skills)
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	clusters := []cluster.EmployeeCluster{
		clusterWith("alice", 1, 0, 2, 1, 0),
		clusterWith("bob", 0, 1, 1, 2, 1),
	}
	commits := []source.Commit{
		{ID: "c1", Author: "alice", Ticket: "PROJ-1", Timestamp: ts(1)},
		{ID: "c2", Author: "bob", Ticket: "PROJ-1", Timestamp: ts(2)},
	}
	emails := []source.Email{
		{ThreadID: "t1", Sender: "bob", Recipients: []string{"alice"}, Timestamp: ts(3)},
	}

	first := Analyze(clusters, commits, emails)
	second := Analyze(clusters, commits, emails)
	if !reflect.DeepEqual(first, second) {
		t.Error("Analyze is not deterministic for identical input")
	}
}
