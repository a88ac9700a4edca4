package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Load reads and validates a single snapshot file. A validation failure on
// any record rejects the whole batch; partial ingestion is never visible.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}

	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("validating snapshot %s: %w", path, err)
	}

	return &snap, nil
}

// LoadGlobs resolves one or more doublestar glob patterns and merges every
// matching snapshot file in sorted path order.
func LoadGlobs(patterns []string) (*Snapshot, error) {
	var paths []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.ToSlash(pattern))
		if err != nil {
			return nil, fmt.Errorf("resolving pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no snapshot files match %v", patterns)
	}
	sort.Strings(paths)

	merged := &Snapshot{}
	for _, path := range paths {
		snap, err := Load(path)
		if err != nil {
			return nil, err
		}
		merged.Merge(*snap)
	}

	return merged, nil
}

// Validate checks every record for required fields. Optional fields are
// assignee, resolution, and the commit ticket reference; free-text fields
// such as summary and body may legitimately be empty.
func (s *Snapshot) Validate() error {
	for i, t := range s.Tickets {
		switch {
		case t.ID == "":
			return fmt.Errorf("jira[%d]: missing required field %q", i, "id")
		case t.CreatedAt.IsZero():
			return fmt.Errorf("jira[%d] (%s): missing required field %q", i, t.ID, "created_at")
		case t.UpdatedAt.IsZero():
			return fmt.Errorf("jira[%d] (%s): missing required field %q", i, t.ID, "updated_at")
		}
	}

	for i, c := range s.Commits {
		switch {
		case c.ID == "":
			return fmt.Errorf("git[%d]: missing required field %q", i, "commit_id")
		case c.Author == "":
			return fmt.Errorf("git[%d] (%s): missing required field %q", i, c.ID, "author")
		case c.Timestamp.IsZero():
			return fmt.Errorf("git[%d] (%s): missing required field %q", i, c.ID, "timestamp")
		}
	}

	for i, e := range s.Emails {
		switch {
		case e.ThreadID == "":
			return fmt.Errorf("emails[%d]: missing required field %q", i, "thread_id")
		case e.Sender == "":
			return fmt.Errorf("emails[%d] (%s): missing required field %q", i, e.ThreadID, "sender")
		case e.Timestamp.IsZero():
			return fmt.Errorf("emails[%d] (%s): missing required field %q", i, e.ThreadID, "timestamp")
		}
	}

	return nil
}
