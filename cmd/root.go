// Package cmd is the CLI surface.
package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ftahirops/irqtop/collector"
	"github.com/ftahirops/irqtop/config"
	"github.com/ftahirops/irqtop/engine"
	"github.com/ftahirops/irqtop/ui"
)

// Command-line flags; config-file values fill anything left unset.
var (
	cfgFile       string
	filterFlag    string
	intervalFlag  float64
	countFlag     int
	totalFlag     bool
	noTotalFlag   bool
	detailsFlag   bool
	noDetailsFlag bool
	cpusFlag      string
	sortFlag      string
	batchFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "irqtop",
	Short: "Display the top sources of interrupts",
	Long: `irqtop samples /proc/interrupts and shows per-IRQ interrupt rates,
live, fitted to the terminal.

Interactive keys:
  f   filter IRQs by regex (blank clears)
  s   change sort key (t T n N d D; uppercase reverses)
  c   choose CPU columns (e.g. 0,1,5-7; + all, - none, blank startup default)
  t   toggle the TOTAL column
  d   cycle device details: hide, show, show-if-room
  D   show device details only if there is room
  i   change the sampling interval
  q   quit

When stdout is not a terminal (or with -b) irqtop prints the full table
every interval instead of running the interactive view.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default ~/.config/irqtop/config.yaml)")
	f.StringVarP(&filterFlag, "filter", "f", "", "only display IRQ sources matching regex")
	f.Float64VarP(&intervalFlag, "interval", "i", 1.0, "sample every N seconds")
	f.IntVarP(&countFlag, "count", "n", 0, "update the results N times and then exit")
	f.BoolVarP(&totalFlag, "total", "t", false, "only display the total count, not per CPU")
	f.BoolVar(&noTotalFlag, "no-total", false, "hide the total IRQ count")
	f.BoolVarP(&detailsFlag, "details", "d", false, "force display of device details")
	f.BoolVar(&noDetailsFlag, "no-details", false, "hide the device details")
	f.StringVarP(&cpusFlag, "cpus", "c", "", "display just listed CPUs (e.g. 0,1,5-7)")
	f.StringVarP(&sortFlag, "sort", "s", "t", "sort by (t)otal, (n)ame or (d)evice; upper case reverses")
	f.BoolVarP(&batchFlag, "batch", "b", false, "plain output mode, no interactive view")
}

// Run executes the root command.
func Run() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	opts := config.Load(cfgFile)

	// Explicit flags win over the config file.
	f := cmd.Flags()
	if f.Changed("filter") {
		opts.Filter = filterFlag
	}
	if f.Changed("interval") {
		opts.Interval = intervalFlag
	}
	if f.Changed("count") {
		opts.Count = countFlag
	}
	if f.Changed("total") {
		opts.Total = totalFlag
	}
	if f.Changed("no-total") && noTotalFlag {
		opts.Total = false
	}
	if f.Changed("details") && detailsFlag {
		opts.Details = "show"
	}
	if f.Changed("no-details") && noDetailsFlag {
		opts.Details = "hide"
	}
	if f.Changed("cpus") {
		opts.CPUs = cpusFlag
	}
	if f.Changed("sort") {
		opts.Sort = sortFlag
	}
	if f.Changed("batch") {
		opts.Batch = batchFlag
	}

	pol, startup, err := opts.Policy()
	if err != nil {
		return err
	}

	sampler := engine.NewSampler(collector.NewProcSource())

	if opts.Batch || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runBatch(sampler, pol)
	}

	m := ui.NewModel(sampler, pol, startup)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
