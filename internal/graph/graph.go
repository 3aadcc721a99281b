// Package graph walks the commit DAG: ancestry, first-parent history and split points.
package graph

import (
	"fmt"

	"github.com/KostasZigo/gogitlet/internal/logging"
	"github.com/KostasZigo/gogitlet/internal/objects"
	"go.uber.org/zap"
)

// CommitReader loads commits by full hash.
type CommitReader interface {
	ReadCommit(hash string) (*objects.Commit, error)
}

type Graph struct {
	reader CommitReader
	logger *logging.Logger
}

func New(reader CommitReader, logger *logging.Logger) *Graph {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Graph{
		reader: reader,
		logger: logger.Named("graph"),
	}
}

// Ancestors returns start and every commit reachable from it through first or
// second parents, in breadth-first order. Each commit appears once.
func (g *Graph) Ancestors(start string) ([]string, error) {
	visited := map[string]bool{start: true}
	queue := []string{start}
	order := make([]string, 0, 16)

	for len(queue) > 0 {
		hash := queue[0]
		queue = queue[1:]
		order = append(order, hash)

		commit, err := g.reader.ReadCommit(hash)
		if err != nil {
			return nil, fmt.Errorf("failed to walk ancestors of %s: %w", start, err)
		}

		for _, parent := range commit.Parents() {
			if !visited[parent] {
				visited[parent] = true
				queue = append(queue, parent)
			}
		}
	}

	return order, nil
}

// History follows first parents from start back to the root commit.
func (g *Graph) History(start string) ([]*objects.Commit, error) {
	var history []*objects.Commit

	hash, ok := start, true
	for ok {
		commit, err := g.reader.ReadCommit(hash)
		if err != nil {
			return nil, fmt.Errorf("failed to read history of %s: %w", start, err)
		}
		history = append(history, commit)
		hash, ok = commit.Parent()
	}

	return history, nil
}

// IsAncestor reports whether candidate is reachable from of. A commit is its own ancestor.
func (g *Graph) IsAncestor(candidate, of string) (bool, error) {
	if candidate == of {
		return true, nil
	}

	ancestors, err := g.Ancestors(of)
	if err != nil {
		return false, err
	}
	for _, hash := range ancestors {
		if hash == candidate {
			return true, nil
		}
	}
	return false, nil
}

// SplitPoint returns the lowest common ancestor of a and b.
// Common ancestors are taken in breadth-first order from a. Any of them that is a
// proper ancestor of another common ancestor is discarded, and the first survivor wins.
func (g *Graph) SplitPoint(a, b string) (string, error) {
	fromA, err := g.Ancestors(a)
	if err != nil {
		return "", err
	}
	fromB, err := g.Ancestors(b)
	if err != nil {
		return "", err
	}

	reachableFromB := make(map[string]bool, len(fromB))
	for _, hash := range fromB {
		reachableFromB[hash] = true
	}

	var candidates []string
	for _, hash := range fromA {
		if reachableFromB[hash] {
			candidates = append(candidates, hash)
		}
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("commits %s and %s share no ancestor", a, b)
	}

	dominated := map[string]bool{}
	for _, candidate := range candidates {
		if dominated[candidate] {
			continue
		}
		ancestors, err := g.Ancestors(candidate)
		if err != nil {
			return "", err
		}
		for _, hash := range ancestors[1:] {
			dominated[hash] = true
		}
	}

	for _, candidate := range candidates {
		if !dominated[candidate] {
			g.logger.Debug("Split point found",
				zap.String("current", a),
				zap.String("given", b),
				zap.String("split", candidate),
				zap.Int("candidates", len(candidates)))
			return candidate, nil
		}
	}

	// A DAG always leaves at least one candidate undominated.
	return candidates[0], nil
}
