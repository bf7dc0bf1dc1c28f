package geometry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// DocumentCache provides thread-safe caching of parsed geometry documents
// to avoid redundant disk reads and JSON parsing.
//
// Documents are cached by the exact path string used to load them. Different
// paths to the same file (relative vs absolute) result in separate entries.
//
// Cached documents remain in memory until explicitly removed via Evict() or
// Clear(). Documents are treated as immutable once loaded; callers must not
// modify a cached *Document.
type DocumentCache struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewDocumentCache creates and initializes a new empty document cache.
func NewDocumentCache() *DocumentCache {
	return &DocumentCache{
		docs: make(map[string]*Document),
	}
}

// Load retrieves a document from the cache or parses it from disk if not
// cached.
//
// The file must contain a JSON geometry document as emitted by the upstream
// geometry engine (see Document). A document with no declared units is given
// DefaultUnits.
func (c *DocumentCache) Load(path string) (*Document, error) {
	c.mu.RLock()
	if doc, ok := c.docs[path]; ok {
		c.mu.RUnlock()
		return doc, nil
	}
	c.mu.RUnlock()

	doc, err := ParseDocumentFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.docs[path] = doc
	c.mu.Unlock()

	return doc, nil
}

// Clear removes all documents from the cache.
func (c *DocumentCache) Clear() {
	c.mu.Lock()
	c.docs = make(map[string]*Document)
	c.mu.Unlock()
}

// Evict removes a specific document from the cache by its path.
// If the path is not cached, this method does nothing.
func (c *DocumentCache) Evict(path string) {
	c.mu.Lock()
	delete(c.docs, path)
	c.mu.Unlock()
}

// ParseDocumentFile reads and parses a geometry document from disk.
func ParseDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read geometry document: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument parses a geometry document from raw JSON.
//
// Validation is structural only: the JSON must decode and every segment kind
// must be a known name. Dimensional plausibility is the upstream engine's
// responsibility.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode geometry document: %w", err)
	}
	if doc.Units == "" {
		doc.Units = DefaultUnits
	}
	return &doc, nil
}

// DocumentInfo contains metadata about a loaded geometry document file.
type DocumentInfo struct {
	// GroupCount is the number of hole groups in the document.
	GroupCount int `json:"group_count"`

	// HoleCount is the total number of holes across all groups.
	HoleCount int `json:"hole_count"`

	// Units is the internal length unit the document's values are
	// expressed in.
	Units string `json:"units"`

	// FileSizeBytes is the size of the document file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadDocumentInfo loads a document into the cache (if not already cached)
// and returns metadata about it.
func LoadDocumentInfo(cache *DocumentCache, path string) (*DocumentInfo, error) {
	doc, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &DocumentInfo{
		GroupCount:    len(doc.Groups),
		HoleCount:     doc.HoleCount(),
		Units:         doc.Units,
		FileSizeBytes: stat.Size(),
	}, nil
}
