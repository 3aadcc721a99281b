// Package refs manages named branch pointers and the HEAD pointer to the active branch.
package refs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/internal/logging"
	"github.com/KostasZigo/gogitlet/utils"
	"go.uber.org/zap"
)

var (
	ErrBranchNotFound    = errors.New("branch does not exist")
	ErrBranchExists      = errors.New("branch already exists")
	ErrCurrentBranch     = errors.New("branch is the current branch")
	ErrInvalidBranchName = errors.New("invalid branch name")
	ErrInvalidHead       = errors.New("invalid HEAD")
)

// Manager reads and writes .gitlet/HEAD and .gitlet/branches/<name>.
// HEAD holds "ref: branches/<name>", each branch file a full commit hash.
type Manager struct {
	gitletDir string
	logger    *logging.Logger
}

func NewManager(gitletDir string, logger *logging.Logger) *Manager {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Manager{
		gitletDir: gitletDir,
		logger:    logger.Named("refs"),
	}
}

func (m *Manager) headPath() string {
	return filepath.Join(m.gitletDir, constants.Head)
}

func (m *Manager) branchesDir() string {
	return filepath.Join(m.gitletDir, constants.Branches)
}

func (m *Manager) branchPath(name string) string {
	return filepath.Join(m.branchesDir(), name)
}

// Init creates the default branch at rootHash and points HEAD at it.
func (m *Manager) Init(rootHash string) error {
	if err := m.writeBranch(constants.DefaultBranch, rootHash); err != nil {
		return err
	}
	return m.writeHead(constants.DefaultBranch)
}

// CurrentBranch returns the name of the branch HEAD points to.
func (m *Manager) CurrentBranch() (string, error) {
	data, err := os.ReadFile(m.headPath())
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", constants.Head, err)
	}

	ref, ok := strings.CutPrefix(strings.TrimSpace(string(data)), constants.HeadRefPrefix)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidHead, data)
	}
	name, ok := strings.CutPrefix(ref, constants.Branches+"/")
	if !ok || validateName(name) != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidHead, data)
	}

	return name, nil
}

// SetCurrentBranch repoints HEAD at an existing branch.
func (m *Manager) SetCurrentBranch(name string) error {
	if !m.BranchExists(name) {
		return fmt.Errorf("%w: %s", ErrBranchNotFound, name)
	}
	if err := m.writeHead(name); err != nil {
		return err
	}

	m.logger.Debug("HEAD moved", zap.String("branch", name))
	return nil
}

// HeadCommitHash resolves HEAD through the active branch.
func (m *Manager) HeadCommitHash() (string, error) {
	branch, err := m.CurrentBranch()
	if err != nil {
		return "", err
	}
	return m.BranchCommit(branch)
}

// BranchCommit returns the commit hash a branch points to.
func (m *Manager) BranchCommit(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", fmt.Errorf("%w: %s", ErrBranchNotFound, name)
	}

	data, err := os.ReadFile(m.branchPath(name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrBranchNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read branch %s: %w", name, err)
	}

	hash := strings.TrimSpace(string(data))
	if len(hash) != constants.HashStringLength {
		return "", fmt.Errorf("branch %s holds invalid commit hash %q", name, hash)
	}
	return hash, nil
}

// AdvanceHead moves the active branch to hash without switching branches.
func (m *Manager) AdvanceHead(hash string) error {
	branch, err := m.CurrentBranch()
	if err != nil {
		return err
	}
	return m.SetBranchCommit(branch, hash)
}

// SetBranchCommit rewrites an existing branch pointer.
func (m *Manager) SetBranchCommit(name, hash string) error {
	if !m.BranchExists(name) {
		return fmt.Errorf("%w: %s", ErrBranchNotFound, name)
	}
	if err := m.writeBranch(name, hash); err != nil {
		return err
	}

	m.logger.Debug("Branch moved", zap.String("branch", name), zap.String("commit", hash))
	return nil
}

// CreateBranch adds a new branch pointing at hash.
func (m *Manager) CreateBranch(name, hash string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if m.BranchExists(name) {
		return fmt.Errorf("%w: %s", ErrBranchExists, name)
	}
	if err := m.writeBranch(name, hash); err != nil {
		return err
	}

	m.logger.Debug("Branch created", zap.String("branch", name), zap.String("commit", hash))
	return nil
}

// DeleteBranch removes a branch pointer. The active branch can never be deleted.
func (m *Manager) DeleteBranch(name string) error {
	if !m.BranchExists(name) {
		return fmt.Errorf("%w: %s", ErrBranchNotFound, name)
	}

	current, err := m.CurrentBranch()
	if err != nil {
		return err
	}
	if current == name {
		return fmt.Errorf("%w: %s", ErrCurrentBranch, name)
	}

	if err := os.Remove(m.branchPath(name)); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", name, err)
	}

	m.logger.Debug("Branch deleted", zap.String("branch", name))
	return nil
}

// BranchExists checks for a branch file.
func (m *Manager) BranchExists(name string) bool {
	if validateName(name) != nil {
		return false
	}
	info, err := os.Stat(m.branchPath(name))
	return err == nil && info.Mode().IsRegular()
}

// ListBranches returns all branch names sorted lexically.
func (m *Manager) ListBranches() ([]string, error) {
	entries, err := os.ReadDir(m.branchesDir())
	if err != nil {
		return nil, fmt.Errorf("failed to read branches directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() && validateName(entry.Name()) == nil {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *Manager) writeHead(branch string) error {
	content := constants.HeadRefPrefix + constants.Branches + "/" + branch + "\n"
	if err := utils.SafeWrite(m.headPath(), []byte(content), constants.FilePerms); err != nil {
		return fmt.Errorf("failed to write %s: %w", constants.Head, err)
	}
	return nil
}

func (m *Manager) writeBranch(name, hash string) error {
	if len(hash) != constants.HashStringLength {
		return fmt.Errorf("invalid commit hash %q for branch %s", hash, name)
	}
	if err := utils.SafeWrite(m.branchPath(name), []byte(hash+"\n"), constants.FilePerms); err != nil {
		return fmt.Errorf("failed to write branch %s: %w", name, err)
	}
	return nil
}

// validateName rejects names that cannot be stored as a single file under branches/.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.HasPrefix(name, ".") ||
		strings.ContainsAny(name, `/\`) ||
		strings.ContainsAny(name, "\x00\n\r") {
		return fmt.Errorf("%w: %q", ErrInvalidBranchName, name)
	}
	return nil
}
