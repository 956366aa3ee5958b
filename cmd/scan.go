package cmd

import (
	"fmt"

	"hostsnap/internal/config"
	"hostsnap/internal/scanner"

	"github.com/spf13/cobra"
)

var (
	scanDir      string
	scanLargestN int
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Print file statistics for a directory to the console",
	Long: `
Walks the configured directory recursively and prints per-extension
counts, sizes, and the largest files, without rendering any HTML.
The directory is created empty if it does not exist yet.
`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVarP(&scanDir, "dir", "d", "", "Directory to analyze (overrides config)")
	scanCmd.Flags().IntVar(&scanLargestN, "largest", 0, "Largest files to list (overrides config)")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("dir") {
		cfg.ScanDir = scanDir
	}
	if cmd.Flags().Changed("largest") {
		cfg.LargestFiles = scanLargestN
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	applyLogLevel(cfg)

	tracked := scanner.DefaultTracked()
	res, err := scanner.Scan(cfg.ScanDir, tracked, cfg.LargestFiles)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	cmd.Println(divider())
	cmd.Printf("%s %s\n", bold("📁 File statistics for"), cyan(cfg.ScanDir))
	cmd.Println(divider())
	cmd.Printf("  Total files: %d\n", res.TotalFiles)
	cmd.Printf("  Total size:  %.2f MB\n\n", float64(res.TotalBytes)/(1<<20))

	cmd.Printf("  %-8s %-18s %8s %12s %9s\n", "EXT", "TYPE", "COUNT", "SIZE (MB)", "SHARE")
	for _, te := range tracked {
		bucket := res.Buckets[te.Ext]
		if bucket == nil {
			bucket = &scanner.ExtensionBucket{}
		}
		share := float64(bucket.Count) / float64(res.FilesDenominator()) * 100
		line := fmt.Sprintf("  %-8s %-18s %8d %12.2f %8.1f%%",
			te.Ext, te.Label, bucket.Count, float64(bucket.TotalBytes)/(1<<20), share)
		if bucket.Count > 0 {
			cmd.Println(green(line))
		} else {
			cmd.Println(line)
		}
	}

	if len(res.LargestFiles) > 0 {
		cmd.Printf("\n%s\n", bold("  Largest files:"))
		for i, f := range res.LargestFiles {
			cmd.Printf("  %2d. %-40s %10.2f MB\n", i+1, f.Name, float64(f.SizeBytes)/(1<<20))
		}
	}
	cmd.Println(divider())

	return nil
}
