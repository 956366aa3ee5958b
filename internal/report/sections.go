package report

import (
	"fmt"
	"strconv"
	"time"

	"hostsnap/internal/metrics"
	"hostsnap/internal/procs"
	"hostsnap/internal/render"
	"hostsnap/internal/scanner"
	"hostsnap/internal/status"
)

// unavailable is the sentinel shown for readings the host could not
// supply.
const unavailable = "N/A"

const timestampLayout = "2006-01-02 15:04:05"

// CPUSection carries the CPU placeholders, already formatted.
type CPUSection struct {
	Cores     string
	Frequency string
	Percent   string
	Status    string
	PerCore   string
}

// BuildCPUSection formats a CPU snapshot, substituting the documented
// fallback for each degraded reading. The status band for a degraded
// utilization is the neutral green.
func BuildCPUSection(c metrics.CPU) CPUSection {
	sec := CPUSection{
		Cores:     unavailable,
		Frequency: unavailable,
		Percent:   "0",
		Status:    status.ColorFor(0),
		PerCore:   perCoreUnavailableRow,
	}
	if c.CoresOK {
		sec.Cores = strconv.Itoa(c.Cores)
	}
	if c.FreqOK {
		sec.Frequency = fmt.Sprintf("%.0f MHz", c.FreqMHz)
	}
	if c.PercentOK {
		sec.Percent = fmt.Sprintf("%.1f", c.Percent)
		sec.Status = status.ColorFor(c.Percent)
	}
	if c.PerCoreOK {
		sec.PerCore = perCoreRows(c.PerCore)
	}
	return sec
}

func (s CPUSection) Entries() []render.Entry {
	return []render.Entry{
		{Key: "cpu_cores", Value: s.Cores},
		{Key: "cpu_frequency", Value: s.Frequency},
		{Key: "cpu_percent", Value: s.Percent},
		{Key: "cpu_status", Value: s.Status},
		{Key: "cpu_per_core", Value: s.PerCore},
	}
}

// MemorySection carries the memory placeholders.
type MemorySection struct {
	RAMTotal string
	RAMUsed  string
	Percent  string
	Status   string
}

// BuildMemorySection formats a memory snapshot; the whole section
// degrades together since its readings come from one call.
func BuildMemorySection(m metrics.Memory) MemorySection {
	if !m.OK {
		return MemorySection{
			RAMTotal: unavailable,
			RAMUsed:  unavailable,
			Percent:  "0",
			Status:   status.ColorFor(0),
		}
	}
	return MemorySection{
		RAMTotal: fmt.Sprintf("%.2f GB", float64(m.TotalBytes)/(1<<30)),
		RAMUsed:  fmt.Sprintf("%.2f GB", float64(m.UsedBytes)/(1<<30)),
		Percent:  fmt.Sprintf("%.1f", m.Percent),
		Status:   status.ColorFor(m.Percent),
	}
}

func (s MemorySection) Entries() []render.Entry {
	return []render.Entry{
		{Key: "ram_total", Value: s.RAMTotal},
		{Key: "ram_used", Value: s.RAMUsed},
		{Key: "memory_percent", Value: s.Percent},
		{Key: "memory_status", Value: s.Status},
	}
}

// SystemSection carries host identity and pressure placeholders.
type SystemSection struct {
	Hostname        string
	OperatingSystem string
	Uptime          string
	UserCount       string
	PrimaryIP       string
	Load1           string
	Load5           string
	Load15          string
	Timestamp       string
	GenerationDate  string
}

// BuildSystemSection formats a system snapshot. Absent load averages
// fall back to a single CPU sample for the 1-minute figure and mark
// the 5/15-minute figures unavailable.
func BuildSystemSection(sys metrics.System) SystemSection {
	sec := SystemSection{
		Hostname:        unavailable,
		OperatingSystem: unavailable,
		Uptime:          unavailable,
		UserCount:       unavailable,
		PrimaryIP:       sys.PrimaryIP,
		Load1:           fmt.Sprintf("%.2f", sys.Load1Fallback),
		Load5:           unavailable,
		Load15:          unavailable,
		Timestamp:       sys.CollectedAt.Format(timestampLayout),
		GenerationDate:  sys.CollectedAt.Format(timestampLayout),
	}
	if sec.PrimaryIP == "" {
		sec.PrimaryIP = "127.0.0.1"
	}
	if sys.HostnameOK {
		sec.Hostname = sys.Hostname
	}
	if sys.OSOK {
		sec.OperatingSystem = sys.OS
	}
	if sys.UptimeOK {
		sec.Uptime = formatUptime(sys.Uptime)
	}
	if sys.UsersOK {
		sec.UserCount = strconv.Itoa(sys.Users)
	}
	if sys.LoadOK {
		sec.Load1 = fmt.Sprintf("%.2f", sys.Load1)
		sec.Load5 = fmt.Sprintf("%.2f", sys.Load5)
		sec.Load15 = fmt.Sprintf("%.2f", sys.Load15)
	}
	return sec
}

func (s SystemSection) Entries() []render.Entry {
	return []render.Entry{
		{Key: "hostname", Value: s.Hostname},
		{Key: "operating_system", Value: s.OperatingSystem},
		{Key: "uptime", Value: s.Uptime},
		{Key: "user_count", Value: s.UserCount},
		{Key: "primary_ip", Value: s.PrimaryIP},
		{Key: "load_average_1", Value: s.Load1},
		{Key: "load_average_5", Value: s.Load5},
		{Key: "load_average_15", Value: s.Load15},
		{Key: "timestamp", Value: s.Timestamp},
		{Key: "generation_date", Value: s.GenerationDate},
	}
}

// ProcessSection carries the ranked process table body.
type ProcessSection struct {
	Rows string
}

// BuildProcessSection renders the top processes; an empty ranking
// gets the documented placeholder row.
func BuildProcessSection(top []procs.Sample) ProcessSection {
	rows := processRows(top)
	if rows == "" {
		rows = noProcessesRow
	}
	return ProcessSection{Rows: rows}
}

// DegradedProcessSection is the fallback when enumeration itself
// failed.
func DegradedProcessSection() ProcessSection {
	return ProcessSection{Rows: processErrorRow}
}

func (s ProcessSection) Entries() []render.Entry {
	return []render.Entry{{Key: "top_processes", Value: s.Rows}}
}

// FilesSection carries the file statistics placeholders.
type FilesSection struct {
	TotalFiles        string
	AnalysisDirectory string
	FileStats         string
	TotalSizeMB       string
	FileSizes         string
}

// BuildFilesSection formats a scan result against the tracked
// extension set in display order.
func BuildFilesSection(res scanner.Result, dir string, tracked []scanner.TrackedExtension) FilesSection {
	return FilesSection{
		TotalFiles:        strconv.Itoa(res.TotalFiles),
		AnalysisDirectory: dir,
		FileStats:         fileStatItems(res, tracked),
		TotalSizeMB:       fmt.Sprintf("%.2f", float64(res.TotalBytes)/(1<<20)),
		FileSizes:         fileSizeItems(res, tracked),
	}
}

// DegradedFilesSection is the fallback when the scan itself failed.
func DegradedFilesSection() FilesSection {
	return FilesSection{
		TotalFiles:        "0",
		AnalysisDirectory: unavailable,
		FileStats:         fileStatsErrorItem,
		TotalSizeMB:       "0.00",
		FileSizes:         fileSizesErrorItem,
	}
}

func (s FilesSection) Entries() []render.Entry {
	return []render.Entry{
		{Key: "total_files", Value: s.TotalFiles},
		{Key: "analysis_directory", Value: s.AnalysisDirectory},
		{Key: "file_stats", Value: s.FileStats},
		{Key: "total_size_mb", Value: s.TotalSizeMB},
		{Key: "file_sizes", Value: s.FileSizes},
	}
}

// LargestSection carries the largest-files table body.
type LargestSection struct {
	Rows string
}

// BuildLargestSection renders the ranked largest files; an empty
// ranking gets the documented placeholder row.
func BuildLargestSection(files []scanner.FileRecord) LargestSection {
	rows := largestFileRows(files)
	if rows == "" {
		rows = noFilesRow
	}
	return LargestSection{Rows: rows}
}

// DegradedLargestSection is the fallback when the scan itself failed.
func DegradedLargestSection(err error) LargestSection {
	return LargestSection{Rows: fmt.Sprintf("<tr><td colspan='3'>Error: %v</td></tr>", err)}
}

func (s LargestSection) Entries() []render.Entry {
	return []render.Entry{{Key: "largest_files_html", Value: s.Rows}}
}

// formatUptime renders a duration as the dashboard's "3d 4h 27m".
func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
}
