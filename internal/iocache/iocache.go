package iocache

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/huangsam/gitpulse/schema"
)

// CollectionKey builds the cache key for one extraction run. The HEAD
// hash is part of the key, so any new commit invalidates the entry
// naturally.
func CollectionKey(sourceName, headSHA string, limit int) string {
	return fmt.Sprintf("%s@%s|limit=%d", sourceName, headSHA, limit)
}

// EncodeCollection serializes a collection for cache storage.
func EncodeCollection(collection schema.CommitCollection) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(collection); err != nil {
		return nil, fmt.Errorf("failed to encode collection: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeCollection deserializes a cached collection.
func DecodeCollection(data []byte) (schema.CommitCollection, error) {
	var collection schema.CommitCollection
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&collection); err != nil {
		return nil, fmt.Errorf("failed to decode cached collection: %w", err)
	}
	return collection, nil
}
