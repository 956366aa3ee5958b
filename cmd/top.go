package cmd

import (
	"fmt"

	"hostsnap/internal/config"
	"hostsnap/internal/procs"
	"hostsnap/internal/status"

	"github.com/spf13/cobra"
)

var topN int

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Print the busiest processes to the console",
	Long: `
Snapshots the process table once and prints the processes with the
highest combined CPU and memory usage. Processes that vanish or deny
access during sampling are skipped.
`,
	RunE: runTop,
}

func init() {
	rootCmd.AddCommand(topCmd)
	topCmd.Flags().IntVarP(&topN, "top", "n", 0, "Processes to show (overrides config)")
}

func runTop(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("top") {
		cfg.TopProcesses = topN
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	applyLogLevel(cfg)

	samples, err := procs.Snapshot()
	if err != nil {
		return fmt.Errorf("process snapshot failed: %w", err)
	}
	top := procs.RankTop(samples, cfg.TopProcesses)

	cmd.Println(divider())
	cmd.Printf("%s (%d of %d sampled)\n", bold("📊 Busiest processes"), len(top), len(samples))
	cmd.Println(divider())

	if len(top) == 0 {
		cmd.Println(yellow("  No processes found"))
		cmd.Println(divider())
		return nil
	}

	cmd.Printf("  %-28s %8s %9s %9s %9s\n", "NAME", "PID", "CPU", "MEM", "SCORE")
	for _, p := range top {
		score := fmt.Sprintf("%9.1f", p.Composite())
		cmd.Printf("  %-28s %8d %8.1f%% %8.1f%% %s\n",
			truncateName(p.Name, 28), p.PID, p.CPUPercent, p.MemoryPercent,
			statusColor(status.ColorFor(p.Composite()), score))
	}
	cmd.Println(divider())

	return nil
}

// truncateName shortens a process name to max runes, cutting on a
// rune boundary so multibyte names stay valid UTF-8.
func truncateName(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max-1]) + "…"
}
