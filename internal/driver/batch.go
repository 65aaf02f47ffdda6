package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"pseudo/internal/diag"
	"pseudo/internal/source"
)

// BatchOptions configures ConvertPaths.
type BatchOptions struct {
	// Jobs bounds worker parallelism; zero means GOMAXPROCS.
	Jobs int
	// Cache, when set, skips conversions whose content and options were
	// seen before.
	Cache *DiskCache
	// OnResult observes each finished file. It is called from worker
	// goroutines; implementations must be safe for concurrent use.
	OnResult func(*ConvertResult)
}

// ListSourceFiles returns the sorted convertible files under dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".js", ".mjs", ".cjs", ".jsx", ".java":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ConvertPaths converts files in parallel, results in input order. A file
// that fails to load yields a result with an I/O diagnostic instead of
// aborting the batch; the returned error is reserved for cancellation.
func ConvertPaths(ctx context.Context, paths []string, opts Options, batch BatchOptions) ([]*ConvertResult, error) {
	opts = opts.withDefaults()
	jobs := batch.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if len(paths) == 0 {
		return nil, nil
	}

	results := make([]*ConvertResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res := convertOne(path, opts, batch.Cache)
			results[i] = res
			if batch.OnResult != nil {
				batch.OnResult(res)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func convertOne(path string, opts Options, cache *DiskCache) *ConvertResult {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		bag := diag.NewBag(opts.MaxDiagnostics)
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, err.Error()))
		return &ConvertResult{Path: path, Bag: bag, FileSet: fs}
	}
	file := fs.Get(fileID)

	key := cacheKey(file, opts)
	if cache != nil {
		var payload DiskPayload
		if hit, err := cache.Get(key, &payload); err == nil && hit {
			res := resultFromPayload(&payload, fs, file, opts.MaxDiagnostics)
			res.Path = path
			return res
		}
	}

	res := convert(fs, file, opts)
	res.Path = path
	if cache != nil {
		// best-effort: a failed write never fails the conversion
		_ = cache.Put(key, payloadFromResult(res))
	}
	return res
}
