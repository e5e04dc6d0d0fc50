package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type seenEntry struct {
	Fingerprint string `json:"fingerprint"`
	Timestamp   int64  `json:"timestamp"`
}

// PostCache remembers which post fingerprints were already captured. With an
// empty cacheDir it dedups within the current run only; otherwise entries are
// persisted to disk and expire after thirty days.
type PostCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
}

const thirtyDaysMs = int64(30 * 24 * 60 * 60 * 1000)

// NewPostCache creates or loads a post cache
func NewPostCache(cacheDir string) *PostCache {
	cache := &PostCache{
		seen: make(map[string]int64),
	}
	if cacheDir == "" {
		return cache
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
		return cache
	}
	cache.filePath = filepath.Join(cacheDir, "seen_posts.json")
	cache.load()
	return cache
}

// IsSeen checks if a fingerprint has already been captured
func (pc *PostCache) IsSeen(fingerprint string) bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	_, exists := pc.seen[fingerprint]
	return exists
}

// MarkSeen records a fingerprint and reports whether it was new.
func (pc *PostCache) MarkSeen(fingerprint string) bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if _, exists := pc.seen[fingerprint]; exists {
		return false
	}
	pc.seen[fingerprint] = time.Now().UnixMilli()
	return true
}

// Flush writes the cache to disk when persistence is enabled.
func (pc *PostCache) Flush() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.filePath == "" {
		return
	}
	pc.save()
}

// load reads the cache from disk into the in-memory map
func (pc *PostCache) load() {
	data, err := os.ReadFile(pc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read seen_posts.json: %v", err)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse seen_posts.json: %v", err)
		return
	}

	thirtyDaysAgo := time.Now().UnixMilli() - thirtyDaysMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > thirtyDaysAgo {
			pc.seen[e.Fingerprint] = e.Timestamp
			loaded++
		}
	}
	log.Printf("📋 Loaded %d previously seen posts (%d expired and removed)", loaded, len(entries)-loaded)
}

// save writes the current cache to disk
func (pc *PostCache) save() {
	entries := make([]seenEntry, 0, len(pc.seen))
	for fp, ts := range pc.seen {
		entries = append(entries, seenEntry{Fingerprint: fp, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal seen posts: %v", err)
		return
	}
	if err := os.WriteFile(pc.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write seen_posts.json: %v", err)
	}
}

var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeText strips accents, folds case and collapses whitespace so that
// cosmetic rendering differences don't change a fingerprint.
func normalizeText(str string) string {
	result, _, _ := transform.String(normalizer, str)
	return strings.Join(strings.Fields(strings.ToLower(result)), " ")
}

// Fingerprint derives a stable identity for a post. The feed markup exposes
// no persistent post ID, so body+author+timestamp is the closest we get.
func Fingerprint(body, author, timestamp string) string {
	h := sha256.New()
	h.Write([]byte(normalizeText(body)))
	h.Write([]byte{0})
	h.Write([]byte(normalizeText(author)))
	h.Write([]byte{0})
	h.Write([]byte(normalizeText(timestamp)))
	return hex.EncodeToString(h.Sum(nil))
}
