package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3pick/internal/ui"
	"github.com/Mohsinsiddi/w3pick/probe"
)

var pickCmd = &cobra.Command{
	Use:   "pick [url...]",
	Short: "Benchmark providers once and print the fastest",
	Long: `Run a single measurement round over the given providers and print them
ranked by latency, fastest first.

Examples:
  w3pick pick https://eth.llamarpc.com https://rpc.ankr.com/eth
  w3pick pick --file providers.yaml --interval 5s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		urls, interval, err := resolveProviders(args, providersFile, flagInterval)
		if err != nil {
			return err
		}

		fmt.Println(ui.Meta(fmt.Sprintf("probing %d providers…", len(urls))))

		results := probe.Round(cmd.Context(), probe.ClientVersionPinger{}, urls, interval/2)

		// Rank: successes by latency, then failures in input order.
		ranked := append([]probe.Result(nil), results...)
		sort.SliceStable(ranked, func(i, j int) bool {
			if (ranked[i].Err == nil) != (ranked[j].Err == nil) {
				return ranked[i].Err == nil
			}
			if ranked[i].Err != nil {
				return false
			}
			return ranked[i].Latency < ranked[j].Latency
		})

		for pos, r := range ranked {
			if r.Err != nil {
				fmt.Printf("  %2d. %s  %s\n", pos+1, ui.URL(r.URL), ui.Err(r.Err.Error()))
				continue
			}
			lat := ui.LatencyStyle(r.Latency).Render(ui.FormatLatency(r.Latency))
			fmt.Printf("  %2d. %s  %s\n", pos+1, ui.URL(r.URL), lat)
		}
		fmt.Println()

		if ranked[0].Err != nil {
			return fmt.Errorf("no provider responded")
		}
		fmt.Println(ui.Success(fmt.Sprintf("fastest: %s (%s)",
			ranked[0].URL, ui.FormatLatency(ranked[0].Latency))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
}
