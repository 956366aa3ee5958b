package cmd

import (
	"fmt"

	"hostsnap/internal/config"
	"hostsnap/internal/logger"
	"hostsnap/internal/report"

	"github.com/spf13/cobra"
)

var (
	reportDryRun   bool
	reportScanDir  string
	reportTemplate string
	reportOutput   string
	reportTopN     int
	reportLargestN int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Collect every metric and render the HTML dashboard",
	Long: `
Runs one complete snapshot: CPU, memory, system identity, process
ranking, and file statistics are collected in sequence, substituted
into the HTML template, and written to the output path.

Collector failures degrade to documented placeholder values; the run
only aborts when the template itself cannot be read, in which case
nothing is written.

Configuration:
  Create a 'hostsnap.yml' file to customize behavior:

  scan_dir: sample_data     # Directory the file statistics walk
  template: template.html   # HTML template with {{ name }} placeholders
  output: index.html        # Rendered report path
  top_processes: 3          # Ranked processes shown
  largest_files: 10         # Ranked files shown
  log_level: info

Examples:
  # Snapshot with defaults
  hostsnap report

  # Render without writing anything
  hostsnap report --dry-run
`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVar(&reportDryRun, "dry-run", false, "Render the report but do not write the output file")
	reportCmd.Flags().StringVarP(&reportScanDir, "dir", "d", "", "Directory to analyze (overrides config)")
	reportCmd.Flags().StringVarP(&reportTemplate, "template", "t", "", "Template path (overrides config)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Output path (overrides config)")
	reportCmd.Flags().IntVar(&reportTopN, "top", 0, "Ranked processes to include (overrides config)")
	reportCmd.Flags().IntVar(&reportLargestN, "largest", 0, "Largest files to include (overrides config)")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyReportFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	applyLogLevel(cfg)

	cmd.Println(divider())
	cmd.Printf("%s %s\n", bold("📸 hostsnap"), "system snapshot")
	cmd.Println(divider())

	gen := report.New(cfg)
	gen.DryRun = reportDryRun

	summary, err := gen.Run()
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}

	cmd.Println(divider())
	cmd.Printf("  Host:     %s\n", bold(summary.Hostname))
	cmd.Printf("  CPU:      %s%%\n", summary.CPUPercent)
	cmd.Printf("  Memory:   %s%%\n", summary.MemoryPercent)
	cmd.Printf("  Files:    %s analyzed\n", summary.TotalFiles)
	if summary.DryRun {
		cmd.Printf("\n%s %s\n", yellow("Dry run:"), "no file written")
	} else {
		cmd.Printf("\n%s Dashboard ready! Open %s in your browser.\n", green("✓"), cyan(summary.Output))
	}
	cmd.Println(divider())

	return nil
}

// applyReportFlags lets explicitly set flags win over file and
// environment configuration.
func applyReportFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("dir") {
		cfg.ScanDir = reportScanDir
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = reportTemplate
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = reportOutput
	}
	if cmd.Flags().Changed("top") {
		cfg.TopProcesses = reportTopN
	}
	if cmd.Flags().Changed("largest") {
		cfg.LargestFiles = reportLargestN
	}
}

// applyLogLevel resolves the effective log level, with --verbose
// forcing debug output plus file:line annotations on every log line.
func applyLogLevel(cfg config.Config) {
	level := logger.ParseLevel(cfg.LogLevel)
	if verbose {
		level = logger.LevelDebug
		logger.SetGlobalCallerInfo(true)
	}
	logger.SetGlobalLevel(level)
}
