package objects

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/utils"
)

// ErrInvalidFileName is returned for names the line-based commit format cannot hold.
var ErrInvalidFileName = errors.New("invalid file name")

// Commit is an immutable snapshot of the tracked file set plus metadata.
// A root commit has no parents, a regular commit one, a merge commit two.
type Commit struct {
	hash      string
	message   string
	timestamp string
	parents   []string
	files     FileTable
}

// NewCommit creates a regular commit on top of parentHash.
func NewCommit(message, timestamp, parentHash string, files FileTable) (*Commit, error) {
	if parentHash == "" {
		return nil, fmt.Errorf("commit requires a parent hash")
	}
	return newCommit(message, timestamp, []string{parentHash}, files)
}

// NewMergeCommit creates a commit with a first parent (the merged-into branch)
// and a second parent (the merged-in branch).
func NewMergeCommit(message, timestamp, parentHash, secondParentHash string, files FileTable) (*Commit, error) {
	if parentHash == "" || secondParentHash == "" {
		return nil, fmt.Errorf("merge commit requires two parent hashes")
	}
	return newCommit(message, timestamp, []string{parentHash, secondParentHash}, files)
}

// NewInitialCommit creates the parentless root commit every repository starts from.
// Its timestamp is fixed so all fresh repositories share the same root hash.
func NewInitialCommit() (*Commit, error) {
	return newCommit(constants.InitialCommitMessage, constants.InitialCommitTimestamp, nil, nil)
}

func newCommit(message, timestamp string, parents []string, files FileTable) (*Commit, error) {
	for name := range files {
		if name == "" || strings.ContainsAny(name, "\r\n") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFileName, name)
		}
	}
	files = files.Clone()

	content := buildCommitContent(message, timestamp, parents, files)
	hash, err := utils.ComputeHash(content, utils.CommitObjectType)
	if err != nil {
		return nil, fmt.Errorf("failed to compute hash for commit: %v", err)
	}

	return &Commit{
		hash:      hash,
		message:   message,
		timestamp: timestamp,
		parents:   parents,
		files:     files,
	}, nil
}

// FormatTimestamp renders t the way commit dates are stored and logged.
func FormatTimestamp(t time.Time) string {
	return t.Format(constants.TimestampLayout)
}

// buildCommitContent creates the canonical commit text:
// parent <hash>
// merge-parent <hash>
// date <timestamp>
// file <blob hash> <name>
//
// <message>
func buildCommitContent(message, timestamp string, parents []string, files FileTable) []byte {
	var buf bytes.Buffer

	if len(parents) > 0 {
		fmt.Fprintf(&buf, "%s%s\n", constants.CommitParentPrefix, parents[0])
	}
	if len(parents) > 1 {
		fmt.Fprintf(&buf, "%s%s\n", constants.CommitMergeParentPrefix, parents[1])
	}

	fmt.Fprintf(&buf, "%s%s\n", constants.CommitDatePrefix, timestamp)

	// Names are sorted so equal tables always serialize identically
	for _, name := range files.Names() {
		fmt.Fprintf(&buf, "%s%s %s\n", constants.CommitFilePrefix, files[name], name)
	}

	// Blank line before message
	buf.WriteByte('\n')
	buf.WriteString(message)

	return buf.Bytes()
}

// ParseCommit rebuilds a commit from its canonical content.
func ParseCommit(content []byte) (*Commit, error) {
	header, message, found := bytes.Cut(content, []byte("\n\n"))
	if !found {
		return nil, fmt.Errorf("invalid commit format: no message separator")
	}

	var (
		parents   []string
		timestamp string
		files     = FileTable{}
	)

	// Split on '\n' only so a trailing '\r' stays part of the line
	for _, line := range strings.Split(string(header), "\n") {
		switch {
		case strings.HasPrefix(line, constants.CommitParentPrefix):
			parents = append(parents, strings.TrimPrefix(line, constants.CommitParentPrefix))
		case strings.HasPrefix(line, constants.CommitMergeParentPrefix):
			if len(parents) != 1 {
				return nil, fmt.Errorf("invalid commit format: merge parent without parent")
			}
			parents = append(parents, strings.TrimPrefix(line, constants.CommitMergeParentPrefix))
		case strings.HasPrefix(line, constants.CommitDatePrefix):
			timestamp = strings.TrimPrefix(line, constants.CommitDatePrefix)
		case strings.HasPrefix(line, constants.CommitFilePrefix):
			hash, name, ok := strings.Cut(strings.TrimPrefix(line, constants.CommitFilePrefix), " ")
			if !ok || len(hash) != constants.HashStringLength {
				return nil, fmt.Errorf("invalid commit file entry: %q", line)
			}
			files[name] = hash
		case line == "":
		default:
			return nil, fmt.Errorf("invalid commit line: %q", line)
		}
	}

	return newCommit(string(message), timestamp, parents, files)
}

func (c *Commit) Hash() string {
	return c.hash
}

func (c *Commit) Message() string {
	return c.message
}

func (c *Commit) Timestamp() string {
	return c.timestamp
}

// Parent returns the first parent, absent for the root commit.
func (c *Commit) Parent() (string, bool) {
	if len(c.parents) == 0 {
		return "", false
	}
	return c.parents[0], true
}

// SecondParent returns the merged-in parent, present only on merge commits.
func (c *Commit) SecondParent() (string, bool) {
	if len(c.parents) < 2 {
		return "", false
	}
	return c.parents[1], true
}

// Parents returns all parent hashes, first parent first.
func (c *Commit) Parents() []string {
	return append([]string(nil), c.parents...)
}

// Files returns a copy of the commit's file table.
func (c *Commit) Files() FileTable {
	return c.files.Clone()
}

// Tracks reports whether the commit tracks name, and at which blob hash.
func (c *Commit) Tracks(name string) (string, bool) {
	return c.files.Lookup(name)
}

func (c *Commit) Type() utils.ObjectType {
	return utils.CommitObjectType
}

func (c *Commit) Content() []byte {
	return buildCommitContent(c.message, c.timestamp, c.parents, c.files)
}

func (c *Commit) Size() int {
	return len(c.Content())
}

func (c *Commit) Data() []byte {
	return utils.WithHeader(c.Content(), utils.CommitObjectType)
}

func (c *Commit) IsInitialCommit() bool {
	return len(c.parents) == 0
}

func (c *Commit) IsMergeCommit() bool {
	return len(c.parents) == 2
}

func (c *Commit) String() string {
	return fmt.Sprintf("Commit{hash: %s, parents: %v, files: %d, message: %q}",
		c.hash, c.parents, len(c.files), c.message)
}
