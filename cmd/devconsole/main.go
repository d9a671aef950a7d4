// Package main provides a terminal host for the console engine: a small
// REPL that drives a console session the same way an embedded game
// overlay would, with line editing, history keys, and tab completion.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"devconsole/internal/config"
	"devconsole/internal/console"
	"devconsole/internal/logger"
	"devconsole/internal/styledtext"
	"devconsole/internal/version"
)

var (
	logLevel   string
	logFile    string
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "devconsole",
	Short: "Interactive developer console shell",
	Long: `devconsole runs the embedded developer console engine as a standalone
terminal shell. Registered commands, autocomplete, history navigation,
and styled scrollback behave exactly as they do inside a host
application.`,
	RunE: runConsole,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.Get().String())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file")

	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(func() {
		if err := logger.Configure(logLevel, logFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
			os.Exit(1)
		}
	})
}

func runConsole(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	session := console.NewSession(cfg)
	session.Open()

	running := true
	session.SetQuitHandler(func() { running = false })

	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)
	rl.SetCompleter(func(line string) []string {
		return session.Suggest(line)
	})

	renderer := newRenderer(os.Stdout)
	session.Printf("devconsole v%s - type 'help' for commands", version.Version)
	renderer.flush(session)

	for running {
		input, err := rl.Prompt(cfg.PromptSymbol)
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Println()
			return nil
		default:
			return err
		}

		if input != "" {
			rl.AppendHistory(input)
			// The echo line carries the input with ANSI stripped, so the
			// skip string must be stripped the same way or it never matches.
			renderer.skipEcho(cfg.PromptSymbol + styledtext.Strip(input))
		}
		session.Dispatch(input)
		renderer.flush(session)
	}
	return nil
}
