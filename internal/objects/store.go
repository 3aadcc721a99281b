package objects

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/internal/logging"
	"github.com/KostasZigo/gogitlet/utils"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/klauspost/compress/zlib"
	"go.uber.org/zap"
)

// commitCacheSize bounds how many decoded commits stay in memory during graph walks.
const commitCacheSize = 512

// ObjectStore manages storage of gitlet objects.
// Blobs live under .gitlet/objects/<first 2 chars>/<rest>,
// commits under .gitlet/commits/<full hash>.
type ObjectStore struct {
	repoPath string // Path to repository root
	commits  *lru.Cache[string, *Commit]
	logger   *logging.Logger
}

func NewObjectStore(repoPath string, logger *logging.Logger) (*ObjectStore, error) {
	cache, err := lru.New[string, *Commit](commitCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create commit cache: %w", err)
	}
	if logger == nil {
		logger = logging.Nop()
	}

	return &ObjectStore{
		repoPath: repoPath,
		commits:  cache,
		logger:   logger.Named("objects"),
	}, nil
}

func (store *ObjectStore) objectsDir() string {
	return filepath.Join(store.repoPath, constants.Gitlet, constants.Objects)
}

func (store *ObjectStore) commitsDir() string {
	return filepath.Join(store.repoPath, constants.Gitlet, constants.Commits)
}

// objectPath resolves where an object of the given type and hash is stored.
func (store *ObjectStore) objectPath(objectType utils.ObjectType, hash string) string {
	if objectType == utils.CommitObjectType {
		return filepath.Join(store.commitsDir(), hash)
	}
	return filepath.Join(store.objectsDir(), hash[:constants.HashDirPrefixLength], hash[constants.HashDirPrefixLength:])
}

// Store saves an object under its hash.
// Returns nil if object already exists
func (store *ObjectStore) Store(object Object) error {
	hash := object.Hash()
	if !isFullHash(hash) {
		return fmt.Errorf("invalid object hash %q", hash)
	}
	objectFile := store.objectPath(object.Type(), hash)

	// Check if object already exists (content-addressable)
	_, err := os.Stat(objectFile)
	if err == nil {
		store.logger.Debug("Object with this hash already exists",
			zap.String("type", string(object.Type())),
			zap.String("hash", hash))
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(objectFile), constants.DirPerms); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	compressedData, err := compressObject(object)
	if err != nil {
		return fmt.Errorf("failed to compress object: %w", err)
	}

	if err := utils.SafeWrite(objectFile, compressedData, constants.FilePerms); err != nil {
		return fmt.Errorf("failed to write object file: %w", err)
	}

	if commit, ok := object.(*Commit); ok {
		store.commits.Add(hash, commit)
	}

	store.logger.Debug("Stored object",
		zap.String("type", string(object.Type())),
		zap.String("hash", hash))
	return nil
}

func compressObject(object Object) ([]byte, error) {
	var buffer bytes.Buffer
	writer := zlib.NewWriter(&buffer)

	if _, err := writer.Write(object.Data()); err != nil {
		return nil, err
	}

	// Call Close in order to flush any buffered data
	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// readObject decompresses a stored object and returns the content after its header.
func (store *ObjectStore) readObject(objectType utils.ObjectType, hash string) ([]byte, error) {
	objectFile := store.objectPath(objectType, hash)

	compressedData, err := os.ReadFile(objectFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s %s", ErrObjectNotFound, objectType, hash)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read object file %s: %w", hash, err)
	}

	reader, err := zlib.NewReader(bytes.NewReader(compressedData))
	if err != nil {
		return nil, fmt.Errorf("failed to create new reader for decompressed data: %w", err)
	}
	defer reader.Close()

	var buffer bytes.Buffer
	if _, err := buffer.ReadFrom(reader); err != nil {
		return nil, fmt.Errorf("failed to read decompressed data: %w", err)
	}

	data := buffer.Bytes()

	// Find null byte separator
	nullByteIndex := bytes.IndexByte(data, constants.NullByte)
	if nullByteIndex == -1 {
		return nil, fmt.Errorf("invalid object format: no null byte found")
	}

	header := string(data[:nullByteIndex])
	prefix := string(objectType) + " "
	if !strings.HasPrefix(header, prefix) {
		return nil, fmt.Errorf("invalid object header %q: expected %s object", header, objectType)
	}

	content := data[nullByteIndex+1:]
	size, err := strconv.Atoi(strings.TrimPrefix(header, prefix))
	if err != nil || size != len(content) {
		return nil, fmt.Errorf("invalid object header %q: size mismatch", header)
	}

	return content, nil
}

// ReadBlob reads a blob from storage by hash
func (store *ObjectStore) ReadBlob(hash string) (*Blob, error) {
	if !isFullHash(hash) {
		return nil, fmt.Errorf("%w: blob %s", ErrObjectNotFound, hash)
	}

	payload, err := store.readObject(utils.BlobObjectType, hash)
	if err != nil {
		return nil, err
	}

	blob, err := parseBlobPayload(payload)
	if err != nil {
		return nil, err
	}

	if blob.Hash() != hash {
		return nil, fmt.Errorf("hash mismatch: expected %s, got %s", hash, blob.Hash())
	}

	return blob, nil
}

// ReadCommit reads a commit by its full hash.
func (store *ObjectStore) ReadCommit(hash string) (*Commit, error) {
	if commit, ok := store.commits.Get(hash); ok {
		return commit, nil
	}
	if !isFullHash(hash) {
		return nil, fmt.Errorf("%w: commit %s", ErrObjectNotFound, hash)
	}

	content, err := store.readObject(utils.CommitObjectType, hash)
	if err != nil {
		return nil, err
	}

	commit, err := ParseCommit(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse commit %s: %w", hash, err)
	}

	if commit.Hash() != hash {
		return nil, fmt.Errorf("hash mismatch: expected %s, got %s", hash, commit.Hash())
	}

	store.commits.Add(hash, commit)
	return commit, nil
}

// ResolveCommit finds a commit by full hash or by unique-or-not prefix.
// With several matches the first in directory listing order wins.
func (store *ObjectStore) ResolveCommit(id string) (*Commit, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty commit id", ErrObjectNotFound)
	}
	if store.CommitExists(id) {
		return store.ReadCommit(id)
	}

	hashes, err := store.ListCommits()
	if err != nil {
		return nil, err
	}
	for _, hash := range hashes {
		if strings.HasPrefix(hash, id) {
			store.logger.Debug("Resolved abbreviated commit id",
				zap.String("id", id),
				zap.String("hash", hash))
			return store.ReadCommit(hash)
		}
	}

	return nil, fmt.Errorf("%w: commit %s", ErrObjectNotFound, id)
}

// ListCommits returns every stored commit hash in lexical order.
func (store *ObjectStore) ListCommits() ([]string, error) {
	entries, err := os.ReadDir(store.commitsDir())
	if err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}

	hashes := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() && isFullHash(entry.Name()) {
			hashes = append(hashes, entry.Name())
		}
	}
	return hashes, nil
}

// Exists checks if a blob exists in storage
func (store *ObjectStore) Exists(hash string) bool {
	if !isFullHash(hash) {
		return false
	}
	_, err := os.Stat(store.objectPath(utils.BlobObjectType, hash))
	return err == nil
}

// CommitExists checks if a commit with exactly this hash exists.
func (store *ObjectStore) CommitExists(hash string) bool {
	if !isFullHash(hash) {
		return false
	}
	_, err := os.Stat(store.objectPath(utils.CommitObjectType, hash))
	return err == nil
}

func isFullHash(hash string) bool {
	if len(hash) != constants.HashStringLength {
		return false
	}
	for _, r := range hash {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
