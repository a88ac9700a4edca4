// Package extract implements the text-mining side of record correlation:
// pulling task identifiers, commit identifiers, and resolver names out of
// free text. The patterns are deliberately pluggable so correlation logic
// can be tested against any identifier scheme.
package extract

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// DefaultTaskIDPattern matches issue-tracker keys like PROJ-123.
const DefaultTaskIDPattern = `PROJ-\d+`

// DefaultResolverPattern captures the resolver name from resolution notes.
const DefaultResolverPattern = `Resolved by (\w+)`

// uuidPattern matches UUID-shaped tokens; candidates are additionally
// validated with uuid.Parse before they are treated as commit references.
var uuidPattern = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// TaskIDs extracts task identifiers from free text.
type TaskIDs struct {
	re *regexp.Regexp
}

// NewTaskIDs compiles a task-ID extractor from the given pattern.
func NewTaskIDs(pattern string) (*TaskIDs, error) {
	if pattern == "" {
		pattern = DefaultTaskIDPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling task id pattern %q: %w", pattern, err)
	}
	return &TaskIDs{re: re}, nil
}

// Extract returns the unique task identifiers found in text, in first-seen
// order.
func (e *TaskIDs) Extract(text string) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, match := range e.re.FindAllString(text, -1) {
		if !seen[match] {
			seen[match] = true
			ids = append(ids, match)
		}
	}
	return ids
}

// CommitIDs extracts UUID-shaped commit identifiers from free text.
type CommitIDs struct{}

// Extract returns every valid commit UUID found in text, in first-seen order.
func (CommitIDs) Extract(text string) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, match := range uuidPattern.FindAllString(text, -1) {
		if _, err := uuid.Parse(match); err != nil {
			continue
		}
		if !seen[match] {
			seen[match] = true
			ids = append(ids, match)
		}
	}
	return ids
}

// Resolver extracts the resolver name from a ticket resolution note.
type Resolver struct {
	re *regexp.Regexp
}

// NewResolver compiles a resolver extractor from the given pattern. The
// pattern must contain exactly one capture group for the name.
func NewResolver(pattern string) (*Resolver, error) {
	if pattern == "" {
		pattern = DefaultResolverPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling resolver pattern %q: %w", pattern, err)
	}
	if re.NumSubexp() != 1 {
		return nil, fmt.Errorf("resolver pattern %q must have exactly one capture group", pattern)
	}
	return &Resolver{re: re}, nil
}

// Extract returns the resolver name and true on a match. Absence of a match
// is a normal outcome, never an error.
func (e *Resolver) Extract(text string) (string, bool) {
	m := e.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
