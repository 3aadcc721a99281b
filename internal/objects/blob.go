package objects

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/utils"
)

// Blob is an immutable snapshot of one file: its name and its bytes.
// Two blobs share a hash only when both name and content match.
type Blob struct {
	name    string
	content []byte
	hash    string
}

func NewBlob(name string, content []byte) *Blob {
	if content == nil {
		content = []byte{}
	}
	hash, _ := utils.ComputeHash(blobPayload(name, content), utils.BlobObjectType)
	return &Blob{
		name:    name,
		content: content,
		hash:    hash,
	}
}

// NewBlobFromFile reads path and names the blob after its base name.
func NewBlobFromFile(path string) (*Blob, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return NewBlob(filepath.Base(path), content), nil
}

// blobPayload is the canonical serialization hashed and stored: "<name>\0<content>".
func blobPayload(name string, content []byte) []byte {
	payload := make([]byte, 0, len(name)+1+len(content))
	payload = append(payload, name...)
	payload = append(payload, constants.NullByte)
	return append(payload, content...)
}

// parseBlobPayload splits a stored payload back into name and content.
func parseBlobPayload(payload []byte) (*Blob, error) {
	idx := bytes.IndexByte(payload, constants.NullByte)
	if idx == -1 {
		return nil, fmt.Errorf("invalid blob payload: no name separator")
	}
	return NewBlob(string(payload[:idx]), payload[idx+1:]), nil
}

func (b *Blob) Hash() string {
	return b.hash
}

func (b *Blob) Name() string {
	return b.name
}

func (b *Blob) Content() []byte {
	return b.content
}

func (b *Blob) Type() utils.ObjectType {
	return utils.BlobObjectType
}

func (b *Blob) Size() int {
	return len(b.content)
}

func (b *Blob) Data() []byte {
	return utils.WithHeader(blobPayload(b.name, b.content), utils.BlobObjectType)
}

func (b *Blob) String() string {
	return fmt.Sprintf("Blob{name: %s, hash: %s, size: %d bytes}", b.name, b.hash, b.Size())
}
