package scanner

// TrackedExtension pairs a normalized extension (lowercase, leading
// dot) with the display name the report uses for it.
type TrackedExtension struct {
	Ext   string
	Label string
}

// DefaultTracked returns the extension set the dashboard reports on,
// in display order.
func DefaultTracked() []TrackedExtension {
	return []TrackedExtension{
		{".txt", "Text Documents"},
		{".py", "Python Scripts"},
		{".pdf", "PDF Documents"},
		{".jpg", "JPEG Images"},
		{".png", "PNG Images"},
		{".md", "Markdown Files"},
		{".css", "Stylesheets"},
		{".exe", "Executables"},
		{".json", "JSON Files"},
		{".html", "HTML Pages"},
	}
}

// ExtensionBucket accumulates per-extension counts and sizes during a
// single scan pass.
type ExtensionBucket struct {
	Count      int
	TotalBytes int64
}

// FileRecord describes one file visited during a scan. Immutable once
// created; ordered transiently for the largest-files ranking.
type FileRecord struct {
	Name      string
	Path      string
	SizeBytes int64
}

// Result is the outcome of one scan pass.
type Result struct {
	// TotalFiles counts every file visited, tracked or not.
	TotalFiles int
	// TotalBytes sums the sizes of every file whose size was readable.
	TotalBytes int64
	// Buckets holds one entry per tracked extension, zero-valued when
	// no file matched.
	Buckets map[string]*ExtensionBucket
	// LargestFiles is sorted by size descending, ties in
	// first-encountered order, truncated to the configured limit.
	LargestFiles []FileRecord
}

// FilesDenominator is TotalFiles clamped to minimum 1, for
// percentage-of-total computations on empty directories.
func (r Result) FilesDenominator() int {
	if r.TotalFiles < 1 {
		return 1
	}
	return r.TotalFiles
}

// BytesDenominator mirrors FilesDenominator for size percentages.
func (r Result) BytesDenominator() int64 {
	if r.TotalBytes < 1 {
		return 1
	}
	return r.TotalBytes
}
