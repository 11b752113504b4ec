package scenario

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type cacheEntry struct {
	Hash      string
	Outcomes  []Outcome
	CreatedAt time.Time
}

// CachedRunner reuses the outcomes of a file while its content is
// unchanged. Editors often emit writes that leave a file as it was, and
// watch mode would otherwise re-run it each time.
type CachedRunner struct {
	runner  Runner
	entries map[string]cacheEntry
	mutex   sync.Mutex
	maxAge  time.Duration
}

// NewCachedRunner wraps runner. A zero maxAge keeps entries until the
// file changes.
func NewCachedRunner(runner Runner, maxAge time.Duration) *CachedRunner {
	return &CachedRunner{
		runner:  runner,
		entries: make(map[string]cacheEntry),
		maxAge:  maxAge,
	}
}

// RunFile returns cached outcomes for path when its hash matches the last
// successful run, and runs the wrapped Runner otherwise. Errors are not
// cached.
func (c *CachedRunner) RunFile(path string) ([]Outcome, error) {
	hash, err := getFileHash(path)
	if err != nil {
		return nil, err
	}

	if outcomes, ok := c.lookup(path, hash); ok {
		return outcomes, nil
	}

	outcomes, err := c.runner.RunFile(path)
	if err != nil {
		return nil, err
	}

	c.mutex.Lock()
	c.entries[path] = cacheEntry{Hash: hash, Outcomes: outcomes, CreatedAt: time.Now()}
	c.mutex.Unlock()
	return outcomes, nil
}

func (c *CachedRunner) lookup(path, hash string) ([]Outcome, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.entries[path]
	if !exists {
		return nil, false
	}
	// too old, or the file changed
	if (c.maxAge > 0 && time.Since(entry.CreatedAt) > c.maxAge) || entry.Hash != hash {
		delete(c.entries, path)
		return nil, false
	}
	return entry.Outcomes, true
}

// Len returns the number of cached files.
func (c *CachedRunner) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.entries)
}

// InvalidateAll drops every entry.
func (c *CachedRunner) InvalidateAll() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = make(map[string]cacheEntry)
}

func getFileHash(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}
	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}
