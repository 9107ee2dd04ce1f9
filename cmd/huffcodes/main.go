package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/chronos-tachyon/hufftree/internal/app"
	"github.com/chronos-tachyon/hufftree/internal/cliconfig"
	"github.com/chronos-tachyon/hufftree/internal/logging"
)

var longHelp = strings.TrimSpace(`
Print the Huffman code of every byte value that occurs in a file.

Counts byte frequencies, builds the Huffman tree by repeatedly merging the two
least frequent nodes, and prints one codeword per byte ("0" for left edges,
"1" for right edges). Configure via file, HUFFCODES_* env, or flags.
`)

var exampleUsage = strings.TrimSpace(`
  huffcodes notes.txt
  huffcodes --format json --order code notes.txt
  huffcodes --watch --compare notes.txt
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := logging.Default()

	root := &cobra.Command{
		Use:           "huffcodes [file]",
		Short:         "Print the Huffman code of every byte in a file",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			if len(args) == 1 {
				cfg.Input = args[0]
				changed["input"] = true
			}

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			l, err := logging.New(os.Stderr, cfg.LogLevel)
			if err != nil {
				return err
			}
			log = l
			log.Debug().Interface("config", cfg).Msg("configuration")

			a, err := app.New(cfg, cmd.OutOrStdout(), log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.Run(ctx)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.huffcodes/config.toml)")
	root.Flags().StringVar(&cfg.Input, "input", cfg.Input, "input file (alternative to the positional argument)")
	root.Flags().StringVar(&cfg.Format, "format", cfg.Format, "output format: text or json")
	root.Flags().StringVar(&cfg.Order, "order", cfg.Order, "entry order: symbol, count or code")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "print again whenever the input file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay after a change before printing again")
	root.Flags().BoolVar(&cfg.Compare, "compare", cfg.Compare, "pack the input and report the huff0 reference size")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("huffcodes")
		os.Exit(1)
	}
}
