package objects

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/testutils"
)

func TestObjectStore_Store(t *testing.T) {
	store, repoPath := newTestStore(t)
	blob := NewBlob("test.txt", []byte("test content\n"))

	if err := store.Store(blob); err != nil {
		t.Fatalf("Failed to store blob: %v", err)
	}

	// Verify file was created
	hash := blob.Hash()
	objectPath := filepath.Join(repoPath, constants.Gitlet, constants.Objects, hash[:2], hash[2:])

	if _, err := os.Stat(objectPath); errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Object file was not created at %s", objectPath)
	}
}

func TestObjectStore_Compression(t *testing.T) {
	store, repoPath := newTestStore(t)

	// Use larger content to ensure compression is effective
	largeContent := bytes.Repeat([]byte("This is repeated content. "), 100)
	blob := NewBlob("large.txt", largeContent)

	if err := store.Store(blob); err != nil {
		t.Fatalf("Failed to store blob: %v", err)
	}

	// Read the raw file to verify compression
	hash := blob.Hash()
	objectPath := filepath.Join(repoPath, constants.Gitlet, constants.Objects, hash[:2], hash[2:])
	compressedData, err := os.ReadFile(objectPath)
	if err != nil {
		t.Fatalf("Failed to read stored object: %v", err)
	}

	originalSize := len(blob.Data())
	compressedSize := len(compressedData)

	if compressedSize >= originalSize {
		t.Errorf("Data doesn't appear to be compressed: compressed size (%d) >= original size (%d)",
			compressedSize, originalSize)
	}

	t.Logf("Compression effective: %d bytes -> %d bytes (%.1f%% reduction)",
		originalSize, compressedSize, 100*(1-float64(compressedSize)/float64(originalSize)))

	readBlob, err := store.ReadBlob(blob.Hash())
	if err != nil {
		t.Fatalf("Failed to read blob: %v", err)
	}

	assertBlobContent(t, readBlob, "large.txt", largeContent)
	if readBlob.Hash() != blob.Hash() {
		t.Errorf("Hash mismatch: expected %s, got %s", blob.Hash(), readBlob.Hash())
	}
}

// TestObjectStore_StoreIdempotent verifies re-storing identical content leaves the stored bytes untouched.
func TestObjectStore_StoreIdempotent(t *testing.T) {
	store, repoPath := newTestStore(t)
	blob := NewBlob("test.txt", []byte("test\n"))

	if err := store.Store(blob); err != nil {
		t.Fatalf("First store failed: %v", err)
	}

	hash := blob.Hash()
	objectPath := filepath.Join(repoPath, constants.Gitlet, constants.Objects, hash[:2], hash[2:])
	first, err := os.ReadFile(objectPath)
	if err != nil {
		t.Fatalf("Object file should exist: %v", err)
	}

	again := NewBlob("test.txt", []byte("test\n"))
	if again.Hash() != hash {
		t.Fatalf("Expected identical hash on re-derivation, got %s and %s", hash, again.Hash())
	}
	if err := store.Store(again); err != nil {
		t.Fatalf("Second store failed: %v", err)
	}

	second, err := os.ReadFile(objectPath)
	if err != nil {
		t.Fatalf("Object file should still exist: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("Stored bytes changed on second store")
	}

	entries, err := os.ReadDir(filepath.Dir(objectPath))
	if err != nil {
		t.Fatalf("Failed to list object dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected exactly one object file, found %d", len(entries))
	}
}

func TestObjectStore_Exists(t *testing.T) {
	store, _ := newTestStore(t)
	blob := NewBlob("test.txt", []byte("test\n"))

	if store.Exists(blob.Hash()) {
		t.Error("Blob should not exist before storing")
	}

	if err := store.Store(blob); err != nil {
		t.Fatalf("Failed to store blob: %v", err)
	}

	if !store.Exists(blob.Hash()) {
		t.Error("Blob should exist after storing")
	}

	if store.Exists("ab") {
		t.Error("Short hash should never exist")
	}
}

func TestObjectStore_ReadNonExistent(t *testing.T) {
	store, _ := newTestStore(t)

	fakeHash := "0000000000000000000000000000000000000000"
	if _, err := store.ReadBlob(fakeHash); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("Expected ErrObjectNotFound for blob, got: %v", err)
	}
	if _, err := store.ReadCommit(fakeHash); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("Expected ErrObjectNotFound for commit, got: %v", err)
	}
	if _, err := store.ReadBlob("abc"); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("Expected ErrObjectNotFound for short hash, got: %v", err)
	}
}

func TestObjectStore_StoreAndReadCommit(t *testing.T) {
	store, repoPath := newTestStore(t)

	initial := createAndStoreInitialCommit(t, store)
	commit := createAndStoreCommit(t, initial.Hash(), FileTable{"a.txt": testutils.RandomHash()}, store)

	testutils.AssertFileExists(t, filepath.Join(repoPath, constants.Gitlet, constants.Commits, commit.Hash()))

	// A fresh store has an empty cache, so this exercises the disk path
	fresh, err := NewObjectStore(repoPath, nil)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	read, err := fresh.ReadCommit(commit.Hash())
	if err != nil {
		t.Fatalf("Failed to read commit: %v", err)
	}
	assertCommitEqual(t, read, commit)

	if !fresh.CommitExists(commit.Hash()) {
		t.Error("Expected commit to exist")
	}
	if fresh.Exists(commit.Hash()) {
		t.Error("Commit must not be reported as a blob")
	}
}

func TestObjectStore_ReadCommit_CorruptedFile(t *testing.T) {
	store, repoPath := newTestStore(t)
	commit := createAndStoreInitialCommit(t, store)

	path := filepath.Join(repoPath, constants.Gitlet, constants.Commits, commit.Hash())
	if err := os.WriteFile(path, []byte("not zlib"), constants.FilePerms); err != nil {
		t.Fatalf("Failed to corrupt commit: %v", err)
	}

	fresh, _ := NewObjectStore(repoPath, nil)
	if _, err := fresh.ReadCommit(commit.Hash()); err == nil {
		t.Fatal("Expected error reading corrupted commit")
	}
}

func TestObjectStore_ResolveCommit(t *testing.T) {
	store, _ := newTestStore(t)
	initial := createAndStoreInitialCommit(t, store)
	commit := createAndStoreCommit(t, initial.Hash(), nil, store)

	tests := []struct {
		name string
		id   string
		want string
	}{
		{"full hash", commit.Hash(), commit.Hash()},
		{"abbreviated", commit.Hash()[:8], commit.Hash()},
		{"six chars", initial.Hash()[:6], initial.Hash()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := store.ResolveCommit(tt.id)
			if err != nil {
				t.Fatalf("Failed to resolve %s: %v", tt.id, err)
			}
			if resolved.Hash() != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, resolved.Hash())
			}
		})
	}
}

func TestObjectStore_ResolveCommit_Missing(t *testing.T) {
	store, _ := newTestStore(t)
	createAndStoreInitialCommit(t, store)

	for _, id := range []string{"", "zzzz", "0000000000000000000000000000000000000000"} {
		if _, err := store.ResolveCommit(id); !errors.Is(err, ErrObjectNotFound) {
			t.Errorf("Expected ErrObjectNotFound for %q, got %v", id, err)
		}
	}
}

func TestObjectStore_ListCommits(t *testing.T) {
	store, _ := newTestStore(t)
	initial := createAndStoreInitialCommit(t, store)
	second := createAndStoreCommit(t, initial.Hash(), nil, store)
	third := createAndStoreCommit(t, second.Hash(), nil, store)

	hashes, err := store.ListCommits()
	if err != nil {
		t.Fatalf("Failed to list commits: %v", err)
	}

	if len(hashes) != 3 {
		t.Fatalf("Expected 3 commits, got %d", len(hashes))
	}
	for i := 1; i < len(hashes); i++ {
		if hashes[i-1] >= hashes[i] {
			t.Errorf("Expected lexical order, got %v", hashes)
		}
	}

	seen := map[string]bool{}
	for _, hash := range hashes {
		seen[hash] = true
	}
	for _, c := range []*Commit{initial, second, third} {
		if !seen[c.Hash()] {
			t.Errorf("Missing commit %s", c.Hash())
		}
	}
}
