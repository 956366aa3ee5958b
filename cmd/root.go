/*
hostsnap - one-shot host metrics snapshots rendered to static HTML
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hostsnap",
	Short: "Generate a static HTML dashboard of this host's current state.",
	Long: fmt.Sprintf(`%s

Collect CPU, memory, system, process, and file statistics from the
local machine and render them into a single self-contained HTML page.

%s
%s  CPU cores, frequency, aggregate and per-core load
%s  Memory usage with severity coloring
%s  Top processes ranked by combined CPU and memory pressure
%s  Recursive file statistics with largest-file ranking

%s
Run '%s' to see available commands.
`,
		bold("📸 hostsnap"),
		bold("Collected:"),
		green("✓"),
		green("✓"),
		green("✓"),
		green("✓"),
		yellow("👋 Tip:"),
		cyan("hostsnap --help"),
	),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("\n%s %s\n\n",
			green("✨ Welcome to"), bold("hostsnap"),
		)

		if len(args) == 0 {
			fmt.Println(bold("Quick Start:"))
			fmt.Printf("  %s - Generate the HTML dashboard\n", cyan("hostsnap report"))
			fmt.Printf("  %s - Print file statistics for a directory\n", cyan("hostsnap scan"))
			fmt.Printf("  %s - Print the busiest processes\n\n", cyan("hostsnap top"))
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("\n%s %s\n\n",
			red("❌ Error:"), err,
		)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default hostsnap.yml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.SetHelpTemplate(fmt.Sprintf(`%s
%s
{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}`,
		cyan("📸 hostsnap"),
		yellow("Usage: {{.UseLine}}"),
	))

	rootCmd.SetUsageTemplate(`{{.UseLine}}

  {{.Short}}

{{if .HasAvailableFlags}}Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}

{{if .HasAvailableSubCommands}}Commands:
{{range .Commands}}{{if .IsAvailableCommand}}  {{rpad .Name .NamePadding }} {{.Short}}
{{end}}{{end}}{{end}}

Run '{{.CommandPath}} [command] --help' for more information about a command.
`)
}

// statusColor wraps s in the console color matching a dashboard
// status color name.
func statusColor(name, s string) string {
	switch name {
	case "green":
		return green(s)
	case "orange":
		return yellow(s)
	default:
		return red(s)
	}
}

func divider() string {
	return strings.Repeat("─", 60)
}
