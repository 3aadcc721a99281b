package utils

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type ObjectType string

const (
	BlobObjectType   ObjectType = "blob"
	CommitObjectType ObjectType = "commit"
)

func (ot ObjectType) IsValid() bool {
	switch ot {
	case BlobObjectType, CommitObjectType:
		return true
	default:
		return false
	}
}

// ComputeHash calculates SHA-1 hash for Object content
func ComputeHash(content []byte, objectType ObjectType) (string, error) {
	if !objectType.IsValid() {
		return "", fmt.Errorf("invalid object type: %s - hash not computed", objectType)
	}

	// format: "ObjectType <size>\0<content>"
	hash := sha1.Sum(WithHeader(content, objectType))
	return fmt.Sprintf("%x", hash), nil
}

// WithHeader prefixes content with its "<type> <size>\0" object header.
func WithHeader(content []byte, objectType ObjectType) []byte {
	header := fmt.Sprintf("%v %d\x00", objectType, len(content))
	data := make([]byte, 0, len(header)+len(content))
	data = append(data, header...)
	return append(data, content...)
}

// BuildDirPath constructs os-agnostic display directory path with trailing separator preserving all components.
// Unlike filepath.Join, does not normalize "." or remove redundant separators.
func BuildDirPath(dirs ...string) string {
	return strings.Join(dirs, string(filepath.Separator)) + string(filepath.Separator)
}

// TempFilePrefix names the scratch files SafeWrite leaves behind if interrupted.
const TempFilePrefix = ".tmp-"

// SafeWrite writes data to path atomically: tempfile -> fsync -> rename.
// The tempfile lives next to path so the rename stays on one filesystem.
func SafeWrite(path string, data []byte, perm os.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()

	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("fsync temp file: %w", err)
	}
	if err = f.Chmod(perm); err != nil {
		f.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp to target: %w", err)
	}
	return nil
}
