// Package merge classifies files for a three-way merge and builds conflict content.
package merge

import (
	"bytes"
	"maps"
	"slices"

	"github.com/KostasZigo/gogitlet/internal/objects"
)

// Action is what the merge does to one file name.
type Action int

const (
	// Keep leaves the current branch's version in place (or its absence).
	Keep Action = iota
	// Take checks out the given branch's version.
	Take
	// Delete removes a file the given branch deleted.
	Delete
	// Conflict marks a name both sides changed differently.
	Conflict
)

func (a Action) String() string {
	switch a {
	case Keep:
		return "keep"
	case Take:
		return "take"
	case Delete:
		return "delete"
	case Conflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Conflict markers wrapped around both sides of a conflicted file.
const (
	markerCurrent   = "<<<<<<< HEAD\n"
	markerSeparator = "=======\n"
	markerEnd       = ">>>>>>>\n"
)

// Decision is the outcome for one name. Hashes are empty when that side lacks the file.
type Decision struct {
	Name    string
	Action  Action
	Split   string
	Current string
	Given   string
}

// Result is the classification of every name in the union of the three tables.
type Result struct {
	// Files is the merged table without conflicted names.
	Files     objects.FileTable
	Decisions []Decision
}

// Conflicts returns the conflicted decisions in name order.
func (r Result) Conflicts() []Decision {
	var conflicts []Decision
	for _, d := range r.Decisions {
		if d.Action == Conflict {
			conflicts = append(conflicts, d)
		}
	}
	return conflicts
}

// HasConflicts reports whether any name conflicted.
func (r Result) HasConflicts() bool {
	return len(r.Conflicts()) > 0
}

// ThreeWay merges given into current relative to their split point.
// Decisions are sorted by name.
func ThreeWay(split, current, given objects.FileTable) Result {
	names := map[string]struct{}{}
	for _, table := range []objects.FileTable{split, current, given} {
		for name := range table {
			names[name] = struct{}{}
		}
	}

	result := Result{Files: objects.FileTable{}}
	for _, name := range slices.Sorted(maps.Keys(names)) {
		d := Decision{
			Name:    name,
			Split:   split[name],
			Current: current[name],
			Given:   given[name],
		}

		switch {
		case d.Current == d.Given:
			d.Action = Keep
		case d.Split == d.Current && d.Given == "":
			d.Action = Delete
		case d.Split == d.Current:
			d.Action = Take
		case d.Split == d.Given:
			d.Action = Keep
		default:
			d.Action = Conflict
		}

		switch d.Action {
		case Keep:
			if d.Current != "" {
				result.Files[name] = d.Current
			}
		case Take:
			result.Files[name] = d.Given
		}

		result.Decisions = append(result.Decisions, d)
	}

	return result
}

// ConflictContent wraps both versions of a file in conflict markers.
// A missing side contributes nothing between its markers.
func ConflictContent(current, given []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(markerCurrent)
	buf.Write(current)
	buf.WriteString(markerSeparator)
	buf.Write(given)
	buf.WriteString(markerEnd)
	return buf.Bytes()
}
