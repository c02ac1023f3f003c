package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3pick/internal/config"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/w3pick/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	providersFile string
	flagInterval  time.Duration
	verbose       bool
	log           zerolog.Logger = zerolog.Nop()
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "w3pick",
	Short: "Pick the fastest web3 JSON-RPC provider",
	Long: `w3pick — measure your web3 JSON-RPC providers and always use the fastest one.

Give it a list of equivalent provider URLs (args or a YAML file) and it
benchmarks them with a minimal web3_clientVersion round trip. "pick" runs a
single round; "watch" keeps measuring in the background and shows a live
table, the same loop the library runs for embedding applications.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = zerolog.Nop()
		if verbose {
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().Timestamp().Logger()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// W3PICK_PROVIDERS_FILE env var overrides --file's default.
	if env := os.Getenv("W3PICK_PROVIDERS_FILE"); env != "" {
		providersFile = env
	}

	rootCmd.PersistentFlags().StringVarP(&providersFile, "file", "f", providersFile, "providers file (YAML)")
	rootCmd.PersistentFlags().DurationVarP(&flagInterval, "interval", "i", 0, "checking interval (overrides the file; default 10s)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log measurement events to stderr")
}

// resolveProviders merges URLs from args and the providers file, and settles
// the checking interval: flag > file > default.
func resolveProviders(args []string, file string, flag time.Duration) ([]string, time.Duration, error) {
	urls := append([]string(nil), args...)
	interval := config.DefaultInterval

	if file != "" {
		f, err := config.Load(file)
		if err != nil {
			return nil, 0, err
		}
		urls = append(urls, f.Providers...)
		interval, err = f.CheckInterval()
		if err != nil {
			return nil, 0, err
		}
	}
	if flag > 0 {
		interval = flag
	}

	if len(urls) == 0 {
		return nil, 0, fmt.Errorf("no providers given — pass URLs as arguments or use --file")
	}
	return urls, interval, nil
}
