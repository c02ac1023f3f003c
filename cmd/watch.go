package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3pick/balancer"
	"github.com/Mohsinsiddi/w3pick/internal/ui"
)

var watchPlain bool

var watchCmd = &cobra.Command{
	Use:   "watch [url...]",
	Short: "Continuously measure providers in a live table",
	Long: `Start the background measurement loop and show a live table of every
provider's latency, with the current fastest highlighted. Press q to quit.

With --plain there is no TUI: the loop runs until interrupted and selection
events are logged to stderr (add --verbose), which is handy under a process
supervisor.

Examples:
  w3pick watch https://eth.llamarpc.com https://rpc.ankr.com/eth
  w3pick watch --file providers.yaml --interval 5s
  w3pick watch --file providers.yaml --plain --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		urls, interval, err := resolveProviders(args, providersFile, flagInterval)
		if err != nil {
			return err
		}

		if watchPlain {
			return runPlainWatch(cmd.Context(), urls, interval)
		}
		return runWatchTUI(urls, interval)
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchPlain, "plain", false, "no TUI; run until interrupted, logging events")
	rootCmd.AddCommand(watchCmd)
}

func runWatchTUI(urls []string, interval time.Duration) error {
	// The TUI owns the terminal, so the balancer stays quiet and the view
	// polls its state instead.
	b, err := balancer.New(urls, interval)
	if err != nil {
		return err
	}
	defer b.Destroy()

	m := ui.WatchModel{
		Interval: interval,
		Refresh:  func() ui.StatusMsg { return balancerStatus(b) },
	}

	prog := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	_, err = prog.Run()
	return err
}

// runPlainWatch runs the balancer until SIGINT/SIGTERM, relying on the
// structured log for visibility.
func runPlainWatch(ctx context.Context, urls []string, interval time.Duration) error {
	b, err := balancer.New(urls, interval, balancer.WithLogger(log))
	if err != nil {
		return err
	}
	defer b.Destroy()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	return nil
}

// balancerStatus snapshots the balancer into the watch view's shape.
func balancerStatus(b *balancer.Balancer) ui.StatusMsg {
	snap, _ := b.Current()

	status := ui.StatusMsg{
		FastestURL: snap.FastestURL,
		Generation: snap.Generation,
		Ready:      b.IsReady(),
	}

	marked := false
	for _, p := range b.Providers() {
		row := ui.ProviderRow{
			URL:                 p.URL,
			Latency:             p.Latency,
			Checked:             p.Checked,
			Failing:             p.Err != nil,
			ConsecutiveFailures: p.ConsecutiveFailures,
		}
		if p.Err != nil {
			row.ErrMsg = p.Err.Error()
		}
		// Duplicate URLs: only the first occurrence carries the marker.
		if !marked && p.URL == snap.FastestURL && snap.FastestURL != "" {
			row.Fastest = true
			marked = true
		}
		status.Rows = append(status.Rows, row)
	}
	return status
}
