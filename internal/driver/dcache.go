package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"axlint/internal/diag"
	"axlint/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит готовые диагностики по (hash файла, digest конфига).
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores the cached diagnostics of one unchanged file.
// Spans are stored as byte offsets only; the FileID is reassigned on
// load because IDs are not stable across runs.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path  string
	Diags []DiagPayload
}

// DiagPayload is one serialized diagnostic.
type DiagPayload struct {
	Code     uint16
	Severity uint8
	Start    uint32
	End      uint32
	Message  string
	Notes    []NotePayload
	Hints    []string
}

// NotePayload is one serialized secondary note.
type NotePayload struct {
	Start   uint32
	End     uint32
	Message string
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "files".
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key [32]byte, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err = os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Printf("failed to remove temp file: %v", err)
		}
	}()

	enc := msgpack.NewEncoder(f)
	err = enc.Encode(payload)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key [32]byte, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим в фоне
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey mixes the schema version, the file content hash and the
// configuration digest; a change to any of the three misses.
func cacheKey(fileHash, cfgDigest [32]byte) [32]byte {
	h := sha256.New()
	h.Write([]byte{byte(diskCacheSchemaVersion >> 8), byte(diskCacheSchemaVersion)})
	h.Write(fileHash[:])
	h.Write(cfgDigest[:])
	var key [32]byte
	copy(key[:], h.Sum(nil))
	return key
}

// cacheLookup restores a bag from the cache, reassigning the current
// FileID to all spans. Cache read failures degrade to a miss.
func cacheLookup(c *DiskCache, key [32]byte, fileID source.FileID, maxDiagnostics int) (*diag.Bag, bool) {
	if c == nil {
		return nil, false
	}
	var payload DiskPayload
	ok, err := c.Get(key, &payload)
	if err != nil || !ok || payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}
	bag := diag.NewBag(max(len(payload.Diags), maxDiagnostics))
	for _, d := range payload.Diags {
		restored := diag.Diagnostic{
			Severity: diag.Severity(d.Severity),
			Code:     diag.Code(d.Code),
			Message:  d.Message,
			Primary:  source.Span{File: fileID, Start: d.Start, End: d.End},
		}
		for _, n := range d.Notes {
			restored.Notes = append(restored.Notes, diag.Note{
				Span: source.Span{File: fileID, Start: n.Start, End: n.End},
				Msg:  n.Message,
			})
		}
		for _, h := range d.Hints {
			restored.Hints = append(restored.Hints, diag.FixHint{Title: h})
		}
		bag.Add(restored)
	}
	return bag, true
}

// cacheStore persists a bag. Write failures are ignored: the cache is an
// optimization, never a source of truth.
func cacheStore(c *DiskCache, key [32]byte, path string, bag *diag.Bag) {
	if c == nil {
		return
	}
	payload := DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   path,
	}
	for _, d := range bag.Items() {
		stored := DiagPayload{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		}
		for _, n := range d.Notes {
			stored.Notes = append(stored.Notes, NotePayload{
				Start:   n.Span.Start,
				End:     n.Span.End,
				Message: n.Msg,
			})
		}
		for _, h := range d.Hints {
			stored.Hints = append(stored.Hints, h.Title)
		}
		payload.Diags = append(payload.Diags, stored)
	}
	_ = c.Put(key, &payload)
}
