// Package scanner walks a directory tree and aggregates per-extension
// file statistics plus a largest-files ranking.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"hostsnap/internal/logger"
)

var scanLogger = logger.PackageLogger("SCAN", "📁 SCAN")

// Scan walks rootPath recursively and aggregates statistics for the
// tracked extensions. A missing root is created empty and yields a
// zero-valued result rather than an error. Files that vanish or deny
// access mid-walk are dropped; a file whose size cannot be read still
// counts as visited, contributing zero bytes. Symlink loops are not
// guarded against.
func Scan(rootPath string, tracked []TrackedExtension, largestLimit int) (Result, error) {
	res := Result{Buckets: make(map[string]*ExtensionBucket, len(tracked))}
	for _, te := range tracked {
		res.Buckets[te.Ext] = &ExtensionBucket{}
	}

	if _, err := os.Stat(rootPath); os.IsNotExist(err) {
		scanLogger.Warn("Directory %q not found, creating it", rootPath)
		if err := os.MkdirAll(rootPath, 0755); err != nil {
			return Result{}, err
		}
		return res, nil
	}

	var candidates []FileRecord

	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: drop it, keep scanning.
			return nil
		}
		if d.IsDir() {
			return nil
		}

		res.TotalFiles++

		var size int64
		sizeKnown := false
		if info, err := d.Info(); err == nil {
			size = info.Size()
			sizeKnown = true
			res.TotalBytes += size
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if bucket, ok := res.Buckets[ext]; ok {
			bucket.Count++
			bucket.TotalBytes += size
		}

		if sizeKnown {
			candidates = append(candidates, FileRecord{
				Name:      d.Name(),
				Path:      path,
				SizeBytes: size,
			})
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	// Stable keeps first-encountered order between equal sizes so the
	// ranking is reproducible across runs.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].SizeBytes > candidates[j].SizeBytes
	})
	if largestLimit < 0 {
		largestLimit = 0
	}
	if len(candidates) > largestLimit {
		candidates = candidates[:largestLimit]
	}
	res.LargestFiles = candidates

	return res, nil
}
