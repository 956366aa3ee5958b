// Package report sequences the collectors, merges their output into
// one template context, and renders the snapshot document. One call
// to Run is one complete snapshot; there is no scheduling, history,
// or state between runs.
package report

import (
	"fmt"
	"time"

	"hostsnap/internal/config"
	"hostsnap/internal/logger"
	"hostsnap/internal/metrics"
	"hostsnap/internal/procs"
	"hostsnap/internal/render"
	"hostsnap/internal/scanner"
)

var reportLogger = logger.PackageLogger("REPORT", "📋 REPORT")

// Generator drives one snapshot run.
type Generator struct {
	cfg config.Config
	// DryRun renders the full report but skips the final write.
	DryRun bool
	// SampleInterval overrides how long CPU sampling blocks. Zero
	// means metrics.DefaultSampleInterval.
	SampleInterval time.Duration
}

// Summary is what a finished run reports back to its caller.
type Summary struct {
	Output        string
	DryRun        bool
	Hostname      string
	CPUPercent    string
	MemoryPercent string
	TotalFiles    string
	Placeholders  int
}

func New(cfg config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Run collects every metric in sequence, renders the template, and
// writes the output document. Collector failures degrade to their
// documented fallbacks; only a missing template aborts, in which case
// nothing is written.
func (g *Generator) Run() (*Summary, error) {
	interval := g.SampleInterval
	if interval <= 0 {
		interval = metrics.DefaultSampleInterval
	}

	reportLogger.Info("Collecting CPU information...")
	cpuSec := BuildCPUSection(metrics.CollectCPU(interval))
	reportLogger.Info("CPU cores: %s, frequency: %s, usage: %s%%", cpuSec.Cores, cpuSec.Frequency, cpuSec.Percent)

	reportLogger.Info("Collecting memory information...")
	memSec := BuildMemorySection(metrics.CollectMemory())
	reportLogger.Info("RAM total: %s, used: %s (%s%%)", memSec.RAMTotal, memSec.RAMUsed, memSec.Percent)

	reportLogger.Info("Collecting system information...")
	sysSec := BuildSystemSection(metrics.CollectSystem(interval))
	reportLogger.Info("Host: %s (%s), uptime %s, load %s / %s / %s",
		sysSec.Hostname, sysSec.PrimaryIP, sysSec.Uptime, sysSec.Load1, sysSec.Load5, sysSec.Load15)

	reportLogger.Info("Collecting process information...")
	var procSec ProcessSection
	samples, err := procs.Snapshot()
	if err != nil {
		reportLogger.Error("Process table unavailable, reporting degraded ranking: %v", err)
		procSec = DegradedProcessSection()
	} else {
		top := procs.RankTop(samples, g.cfg.TopProcesses)
		procSec = BuildProcessSection(top)
		reportLogger.Info("Ranked top %d of %d sampled processes", len(top), len(samples))
	}

	tracked := scanner.DefaultTracked()
	var filesSec FilesSection
	var largestSec LargestSection
	var scanRes scanner.Result
	var scanErr error
	reportLogger.Timed(fmt.Sprintf("file analysis under %s", g.cfg.ScanDir), func() {
		scanRes, scanErr = scanner.Scan(g.cfg.ScanDir, tracked, g.cfg.LargestFiles)
	})
	if scanErr != nil {
		reportLogger.Error("File scan failed, reporting degraded statistics: %v", scanErr)
		filesSec = DegradedFilesSection()
		largestSec = DegradedLargestSection(scanErr)
	} else {
		filesSec = BuildFilesSection(scanRes, g.cfg.ScanDir, tracked)
		largestSec = BuildLargestSection(scanRes.LargestFiles)
		reportLogger.Info("Scanned %s files (%s MB)", filesSec.TotalFiles, filesSec.TotalSizeMB)
	}

	reportLogger.Info("Loading template %s...", g.cfg.Template)
	template, err := render.LoadTemplate(g.cfg.Template)
	if err != nil {
		// The one fatal path: without a template there is nothing to
		// render, so no output may be produced.
		return nil, fmt.Errorf("cannot generate report: %w", err)
	}

	ctx := render.NewContext()
	ctx.SetAll(cpuSec.Entries())
	ctx.SetAll(memSec.Entries())
	ctx.SetAll(sysSec.Entries())
	ctx.SetAll(procSec.Entries())
	ctx.SetAll(filesSec.Entries())
	ctx.SetAll(largestSec.Entries())
	for _, key := range ctx.Collisions() {
		reportLogger.Warn("Placeholder %q bound more than once, keeping the later value", key)
	}
	reportLogger.Info("Substituting %d placeholders...", ctx.Len())

	html := render.Render(template, ctx)

	if err := NewWriter(g.DryRun).Write(g.cfg.Output, []byte(html)); err != nil {
		return nil, err
	}

	return &Summary{
		Output:        g.cfg.Output,
		DryRun:        g.DryRun,
		Hostname:      sysSec.Hostname,
		CPUPercent:    cpuSec.Percent,
		MemoryPercent: memSec.Percent,
		TotalFiles:    filesSec.TotalFiles,
		Placeholders:  ctx.Len(),
	}, nil
}
