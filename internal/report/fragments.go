package report

import (
	"fmt"
	"strings"

	"hostsnap/internal/procs"
	"hostsnap/internal/scanner"
	"hostsnap/internal/status"
)

// Fragment fallbacks for degraded collectors. The column spans match
// the tables in the shipped template.
const (
	perCoreUnavailableRow = "<tr><td colspan='3'>CPU per-core data unavailable</td></tr>"
	noProcessesRow        = "<tr><td colspan='4'>No processes found</td></tr>"
	processErrorRow       = "<tr><td colspan='4'>Error collecting process data</td></tr>"
	noFilesRow            = "<tr><td colspan='3'>No files found</td></tr>"
	fileStatsErrorItem    = "<div class='file-stat-item'>Error analyzing files</div>"
	fileSizesErrorItem    = "<div class='file-stat-item'>Error calculating sizes</div>"
)

// perCoreRows renders one table row per logical CPU, each with its
// own status color and progress bar. The indentation nests the rows
// under the template's table markup.
func perCoreRows(perCore []float64) string {
	var b strings.Builder
	for i, pct := range perCore {
		color := status.ColorFor(pct)
		fmt.Fprintf(&b, "                        <tr>\n")
		fmt.Fprintf(&b, "                            <td>Core %d</td>\n", i+1)
		fmt.Fprintf(&b, "                            <td class=\"status-%s\">%.1f%%</td>\n", color, pct)
		fmt.Fprintf(&b, "                            <td><div class=\"progress-bar\"><div class=\"progress-fill status-%s\" style=\"width: %.1f%%\"></div></div></td>\n", color, pct)
		fmt.Fprintf(&b, "                        </tr>\n")
	}
	return b.String()
}

// processRows renders the ranked process table body.
func processRows(top []procs.Sample) string {
	var b strings.Builder
	for _, p := range top {
		fmt.Fprintf(&b, "                        <tr>\n")
		fmt.Fprintf(&b, "                            <td>%s</td>\n", p.Name)
		fmt.Fprintf(&b, "                            <td>%d</td>\n", p.PID)
		fmt.Fprintf(&b, "                            <td>%.1f%%</td>\n", p.CPUPercent)
		fmt.Fprintf(&b, "                            <td>%.1f%%</td>\n", p.MemoryPercent)
		fmt.Fprintf(&b, "                        </tr>\n")
	}
	return b.String()
}

// fileStatItems renders one distribution block per tracked extension,
// in display order, counting against the clamped file total.
func fileStatItems(res scanner.Result, tracked []scanner.TrackedExtension) string {
	var b strings.Builder
	denom := float64(res.FilesDenominator())
	for _, te := range tracked {
		bucket := res.Buckets[te.Ext]
		if bucket == nil {
			bucket = &scanner.ExtensionBucket{}
		}
		pct := float64(bucket.Count) / denom * 100
		fmt.Fprintf(&b, "                <div class=\"file-stat-item\">\n")
		fmt.Fprintf(&b, "                    <div class=\"extension\">%s</div>\n", te.Ext)
		fmt.Fprintf(&b, "                    <div class=\"count\">%d</div>\n", bucket.Count)
		fmt.Fprintf(&b, "                    <div class=\"percentage\">%.1f%%</div>\n", pct)
		fmt.Fprintf(&b, "                </div>\n")
	}
	return b.String()
}

// fileSizeItems renders one size block per tracked extension with its
// share of the total scanned bytes.
func fileSizeItems(res scanner.Result, tracked []scanner.TrackedExtension) string {
	var b strings.Builder
	denom := float64(res.BytesDenominator())
	for _, te := range tracked {
		bucket := res.Buckets[te.Ext]
		if bucket == nil {
			bucket = &scanner.ExtensionBucket{}
		}
		sizeMB := float64(bucket.TotalBytes) / (1 << 20)
		share := float64(bucket.TotalBytes) / denom * 100
		fmt.Fprintf(&b, "                <div class=\"file-stat-item\">\n")
		fmt.Fprintf(&b, "                    <div class=\"extension\">%s</div>\n", te.Ext)
		fmt.Fprintf(&b, "                    <div class=\"count\">%.2f MB</div>\n", sizeMB)
		fmt.Fprintf(&b, "                    <div class=\"percentage\">%.1f%% of total</div>\n", share)
		fmt.Fprintf(&b, "                </div>\n")
	}
	return b.String()
}

// largestFileRows renders the rank-numbered largest-files table body.
func largestFileRows(files []scanner.FileRecord) string {
	var b strings.Builder
	for rank, f := range files {
		fmt.Fprintf(&b, "                        <tr>\n")
		fmt.Fprintf(&b, "                            <td>%d</td>\n", rank+1)
		fmt.Fprintf(&b, "                            <td>%s</td>\n", f.Name)
		fmt.Fprintf(&b, "                            <td>%.2f MB</td>\n", float64(f.SizeBytes)/(1<<20))
		fmt.Fprintf(&b, "                        </tr>\n")
	}
	return b.String()
}
