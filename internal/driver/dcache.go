package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/project"
	"pseudo/internal/source"
)

// diskCacheSchemaVersion invalidates old payloads when the format changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores finished conversions keyed by content and option hash.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached form of one conversion.
type DiskPayload struct {
	Schema uint16

	Lang   uint8
	Output string
	Diags  []CachedDiag
}

// CachedDiag keeps a diagnostic without its file binding; spans rebind to
// the current file on restore.
type CachedDiag struct {
	Code  uint16
	Sev   uint8
	Msg   string
	Start uint32
	End   uint32
}

// OpenDiskCache initializes a cache at the standard user cache location.
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

// OpenDiskCacheAt initializes a cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "conv", hexKey+".mp")
}

// Put serializes and writes a payload, replacing atomically.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
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
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload. The boolean reports a hit; schema mismatches read
// as misses.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey derives the cache key from file content and every option that
// shapes the output.
func cacheKey(file *source.File, opts Options) project.Digest {
	optText := fmt.Sprintf("v%d|%s|%d|%d|%t|%t",
		diskCacheSchemaVersion, opts.Lang, opts.MaxDiagnostics,
		opts.Gen.IndentWidth, opts.Gen.IncludeAnnotationComments, opts.Gen.Strict)
	return project.Combine(project.Digest(file.Hash), project.HashBytes([]byte(optText)))
}

// payloadFromResult captures a conversion for caching.
func payloadFromResult(res *ConvertResult) *DiskPayload {
	p := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Lang:   uint8(res.Lang),
		Output: res.Output,
	}
	for _, d := range res.Bag.Items() {
		p.Diags = append(p.Diags, CachedDiag{
			Code:  uint16(d.Code),
			Sev:   uint8(d.Severity),
			Msg:   d.Message,
			Start: d.Primary.Start,
			End:   d.Primary.End,
		})
	}
	return p
}

// resultFromPayload restores a cached conversion, rebinding diagnostic
// spans to the freshly loaded file.
func resultFromPayload(payload *DiskPayload, fs *source.FileSet, file *source.File, maxDiagnostics int) *ConvertResult {
	bag := diag.NewBag(maxDiagnostics)
	for _, d := range payload.Diags {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(d.Sev),
			Code:     diag.Code(d.Code),
			Message:  d.Msg,
			Primary:  source.Span{File: file.ID, Start: d.Start, End: d.End},
		})
	}
	return &ConvertResult{
		Lang:    dialect.Kind(payload.Lang),
		Output:  payload.Output,
		Bag:     bag,
		FileSet: fs,
		File:    file,
		Cached:  true,
	}
}
