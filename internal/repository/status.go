package repository

import "sort"

// ChangeKind describes an unstaged difference between the working tree and
// what the next commit would record.
type ChangeKind string

const (
	ChangeModified ChangeKind = "modified"
	ChangeDeleted  ChangeKind = "deleted"
)

type Change struct {
	Name string
	Kind ChangeKind
}

// Status is a snapshot of branches, staging and the working tree. Every list is sorted.
type Status struct {
	CurrentBranch string
	Branches      []string
	Staged        []string
	Removed       []string
	Unstaged      []Change
	Untracked     []string
}

// Status compares the working tree against the staging area and the active commit.
func (r *Repository) Status() (*Status, error) {
	current, err := r.refs.CurrentBranch()
	if err != nil {
		return nil, err
	}
	branches, err := r.refs.ListBranches()
	if err != nil {
		return nil, err
	}
	head, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	files, err := r.tree.PlainFiles()
	if err != nil {
		return nil, err
	}

	status := &Status{
		CurrentBranch: current,
		Branches:      branches,
		Staged:        r.index.AddedNames(),
		Removed:       r.index.RemovedNames(),
	}

	working := make(map[string]string, len(files))
	for _, name := range files {
		blob, err := r.tree.Blob(name)
		if err != nil {
			return nil, err
		}
		working[name] = blob.Hash()
	}

	for _, name := range status.Staged {
		staged, _ := r.index.AddedHash(name)
		hash, present := working[name]
		switch {
		case !present:
			status.Unstaged = append(status.Unstaged, Change{name, ChangeDeleted})
		case hash != staged:
			status.Unstaged = append(status.Unstaged, Change{name, ChangeModified})
		}
	}

	tracked := head.Files()
	for _, name := range tracked.Names() {
		if _, staged := r.index.AddedHash(name); staged {
			continue
		}
		hash, present := working[name]
		switch {
		case !present && !r.index.Removed(name):
			status.Unstaged = append(status.Unstaged, Change{name, ChangeDeleted})
		case present && hash != tracked[name] && !r.index.Removed(name):
			status.Unstaged = append(status.Unstaged, Change{name, ChangeModified})
		}
	}
	sort.Slice(status.Unstaged, func(i, j int) bool {
		return status.Unstaged[i].Name < status.Unstaged[j].Name
	})

	for _, name := range files {
		_, staged := r.index.AddedHash(name)
		if staged {
			continue
		}
		if !tracked.Tracks(name) || r.index.Removed(name) {
			status.Untracked = append(status.Untracked, name)
		}
	}

	return status, nil
}
