package constants

import "os"

// Command name constants used in tests and error messages.
// Cobra Use fields remain inline for CLI discoverability.
const (
	InitCmdName       = "init"
	AddCmdName        = "add"
	RmCmdName         = "rm"
	CommitCmdName     = "commit"
	LogCmdName        = "log"
	GlobalLogCmdName  = "global-log"
	StatusCmdName     = "status"
	FindCmdName       = "find"
	CheckoutCmdName   = "checkout"
	BranchCmdName     = "branch"
	RmBranchCmdName   = "rm-branch"
	ResetCmdName      = "reset"
	MergeCmdName      = "merge"
	HashObjectCmdName = "hash-object"
)

// Repository directory and file names define the gitlet metadata structure.
const (
	// Gitlet is the repository metadata directory.
	Gitlet = ".gitlet"

	// Objects stores content-addressable blobs.
	Objects = "objects"

	// Commits stores one file per commit, named by its full hash.
	Commits = "commits"

	// Branches stores one file per branch holding a commit hash.
	Branches = "branches"

	// Staging holds the pending-add and pending-remove files.
	Staging = "staging"

	// StagingAdd is the pending-add file under staging/.
	StagingAdd = "add"

	// StagingRm is the pending-remove file under staging/.
	StagingRm = "rm"

	// Head points to the active branch.
	Head = "HEAD"

	// ConfigFile is the optional repository configuration.
	ConfigFile = "config.json"
)

// Default repository values.
const (
	// DefaultBranch is the initial branch name for new repositories.
	DefaultBranch = "master"

	// HeadRefPrefix is prepended to the branch reference in HEAD.
	HeadRefPrefix = "ref: "

	// InitialCommitMessage is the message of the root commit.
	InitialCommitMessage = "initial commit"

	// TimestampLayout formats commit dates, e.g. "Wed Dec 31 16:00:00 1969 -0800".
	TimestampLayout = "Mon Jan 02 15:04:05 2006 -0700"

	// InitialCommitTimestamp is the fixed date of every root commit.
	InitialCommitTimestamp = "Wed Dec 31 16:00:00 1969 -0800"

	// DefaultLogLevel keeps diagnostics off the terminal unless asked for.
	DefaultLogLevel = "error"

	// LogLevelEnv overrides the configured log level.
	LogLevelEnv = "GITLET_LOG_LEVEL"
)

// File system permissions for created files and directories.
const (
	// DirPerms grants read/write/execute to owner, read/execute to others (rwxr-xr-x).
	DirPerms os.FileMode = 0755

	// FilePerms grants read/write to owner, read-only to others (rw-r--r--).
	FilePerms os.FileMode = 0644
)

// Cryptographic hash properties.
const (
	// HashByteLength is byte length of SHA-1 hash (20 bytes).
	HashByteLength = 20

	// HashStringLength is hex string length of SHA-1 hash (40 characters).
	HashStringLength = 40

	// HashDirPrefixLength is subdirectory prefix length under objects/ (2 characters).
	HashDirPrefixLength = 2

	// ShortHashLength is the abbreviation used on merge lines in log output.
	ShortHashLength = 7
)

// Object header and commit line prefixes.
const (
	// BlobPrefix identifies blob objects in headers ("blob <size>\0").
	BlobPrefix = "blob "

	// CommitPrefix identifies commit objects in headers ("commit <size>\0").
	CommitPrefix = "commit "

	// CommitParentPrefix marks the first parent line.
	CommitParentPrefix = "parent "

	// CommitMergeParentPrefix marks the second parent line of merge commits.
	CommitMergeParentPrefix = "merge-parent "

	// CommitDatePrefix marks the timestamp line.
	CommitDatePrefix = "date "

	// CommitFilePrefix marks one file table entry ("file <hash> <name>").
	CommitFilePrefix = "file "
)

// Object format constants.
const (
	// NullByte separates header from content in stored objects.
	NullByte = '\x00'
)

// User-facing messages. Each failure prints exactly one of these.
const (
	MsgNoCommand           = "Please enter a command."
	MsgUnknownCommand      = "No command with that name exists."
	MsgIncorrectOperands   = "Incorrect operands."
	MsgNotInitialized      = "Not in an initialized Gitlet directory."
	MsgAlreadyInitialized  = "A Gitlet version-control system already exists in the current directory."
	MsgEmptyCommitMessage  = "Please enter a commit message."
	MsgFileDoesNotExist    = "File does not exist."
	MsgNoReasonToRemove    = "No reason to remove the file."
	MsgNoChanges           = "No changes added to the commit."
	MsgNoCommitWithMessage = "Found no commit with that message."
	MsgFileNotInCommit     = "File does not exist in that commit."
	MsgNoCommitWithID      = "No commit with that id exists."
	MsgNoSuchBranch        = "No such branch exists."
	MsgCheckoutCurrent     = "No need to checkout the current branch."
	MsgUntrackedInWay      = "There is an untracked file in the way; delete it, or add and commit it first."
	MsgBranchExists        = "A branch with that name already exists."
	MsgBranchMissing       = "A branch with that name does not exist."
	MsgRemoveCurrentBranch = "Cannot remove the current branch."
	MsgUncommittedChanges  = "You have uncommitted changes."
	MsgMergeSelf           = "Cannot merge a branch with itself."
	MsgGivenIsAncestor     = "Given branch is an ancestor of the current branch."
	MsgFastForwarded       = "Current branch fast-forwarded."
	MsgMergeConflict       = "Encountered a merge conflict."
)
