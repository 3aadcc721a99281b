package merge

import (
	"testing"

	"github.com/KostasZigo/gogitlet/internal/objects"
	"github.com/stretchr/testify/assert"
)

const (
	hashA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	hashB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	hashC = "cccccccccccccccccccccccccccccccccccccccc"
)

func table(hash string) objects.FileTable {
	if hash == "" {
		return objects.FileTable{}
	}
	return objects.FileTable{"f.txt": hash}
}

func TestThreeWay_Classification(t *testing.T) {
	tests := []struct {
		name    string
		split   string
		current string
		given   string
		action  Action
		merged  string
	}{
		{"unchanged everywhere", hashA, hashA, hashA, Keep, hashA},
		{"modified in given only", hashA, hashA, hashB, Take, hashB},
		{"modified in current only", hashA, hashB, hashA, Keep, hashB},
		{"modified identically", hashA, hashB, hashB, Keep, hashB},
		{"added in current only", "", hashA, "", Keep, hashA},
		{"added in given only", "", "", hashA, Take, hashA},
		{"added identically", "", hashA, hashA, Keep, hashA},
		{"deleted in given, unmodified in current", hashA, hashA, "", Delete, ""},
		{"deleted in current, unmodified in given", hashA, "", hashA, Keep, ""},
		{"deleted on both sides", hashA, "", "", Keep, ""},
		{"modified differently", hashA, hashB, hashC, Conflict, ""},
		{"added differently", "", hashB, hashC, Conflict, ""},
		{"modified in current, deleted in given", hashA, hashB, "", Conflict, ""},
		{"deleted in current, modified in given", hashA, "", hashC, Conflict, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ThreeWay(table(tt.split), table(tt.current), table(tt.given))

			if assert.Len(t, result.Decisions, 1) {
				d := result.Decisions[0]
				assert.Equal(t, tt.action, d.Action, "got %s", d.Action)
				assert.Equal(t, "f.txt", d.Name)
				assert.Equal(t, tt.current, d.Current)
				assert.Equal(t, tt.given, d.Given)
			}

			hash, tracked := result.Files.Lookup("f.txt")
			assert.Equal(t, tt.merged != "", tracked)
			assert.Equal(t, tt.merged, hash)
			assert.Equal(t, tt.action == Conflict, result.HasConflicts())
		})
	}
}

func TestThreeWay_DecisionsSortedByName(t *testing.T) {
	split := objects.FileTable{"b.txt": hashA, "c.txt": hashA}
	current := objects.FileTable{"b.txt": hashB, "c.txt": hashA, "a.txt": hashA}
	given := objects.FileTable{"b.txt": hashC, "d.txt": hashC}

	result := ThreeWay(split, current, given)

	var names []string
	for _, d := range result.Decisions {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt", "d.txt"}, names)

	conflicts := result.Conflicts()
	if assert.Len(t, conflicts, 1) {
		assert.Equal(t, "b.txt", conflicts[0].Name)
	}
	assert.Equal(t, objects.FileTable{"a.txt": hashA, "d.txt": hashC}, result.Files)
}

func TestConflictContent(t *testing.T) {
	tests := []struct {
		name    string
		current string
		given   string
		want    string
	}{
		{"both sides", "B\n", "C\n", "<<<<<<< HEAD\nB\n=======\nC\n>>>>>>>\n"},
		{"no trailing newline", "B", "C", "<<<<<<< HEAD\nB=======\nC>>>>>>>\n"},
		{"given deleted", "B\n", "", "<<<<<<< HEAD\nB\n=======\n>>>>>>>\n"},
		{"current deleted", "", "C\n", "<<<<<<< HEAD\n=======\nC\n>>>>>>>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConflictContent([]byte(tt.current), []byte(tt.given))
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "keep", Keep.String())
	assert.Equal(t, "take", Take.String())
	assert.Equal(t, "delete", Delete.String())
	assert.Equal(t, "conflict", Conflict.String())
	assert.Equal(t, "unknown", Action(42).String())
}
