package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/LFroesch/fap/internal/activate"
	"github.com/LFroesch/fap/internal/config"
	"github.com/LFroesch/fap/internal/guard"
	"github.com/LFroesch/fap/internal/logger"
)

func newRootCmd() *cobra.Command {
	var (
		logFile    string
		logDefault bool
		showHidden bool
	)

	rootCmd := &cobra.Command{
		Use:   "fap [directory]",
		Short: "Browse directories with vim keys and print the one you pick",
		Long: `fap opens a full-screen listing of a directory. Move with h/j/k/l
(with counts), gg/G/H/M/L, search with / and n/N, enter directories or
open files with enter. Space prints the current directory, escape prints
the directory fap was started from.

Wrap it in your shell to change directory:

    cd "$(fap)"`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.Default()
			if err != nil {
				return err
			}
			opts.ShowHidden = showHidden
			if len(args) == 1 {
				opts.StartDir = args[0]
			}
			opts.LogFile = logFile
			if logDefault && opts.LogFile == "" {
				if opts.LogFile, err = config.DefaultLogPath(); err != nil {
					return err
				}
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			dir, err := run(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}

	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write a log to this file")
	rootCmd.Flags().BoolVar(&logDefault, "log", false, "write a log to $HOME/.config/fap/fap.log")
	rootCmd.Flags().BoolVarP(&showHidden, "all", "a", true, "list entries starting with a dot")

	return rootCmd
}

// run drives one browsing session on out and returns the chosen directory.
// The terminal is restored before any panic report is printed.
func run(opts *config.Options, out io.Writer) (string, error) {
	if opts.LogFile != "" {
		if err := logger.Init(opts.LogFile); err != nil {
			return "", err
		}
	}

	var result string
	logGuard := guard.New(logger.Close)
	err := logGuard.Protect(func() error {
		m, err := initialModel(opts, activate.SystemLauncher{}, out)
		if err != nil {
			return err
		}

		p := tea.NewProgram(m,
			tea.WithAltScreen(),
			tea.WithOutput(out),
			tea.WithoutCatchPanics(),
		)
		termGuard := guard.New(func() { _ = p.ReleaseTerminal() })
		return termGuard.Protect(func() error {
			final, err := p.Run()
			// Run restores the terminal itself when it returns
			termGuard.Dismiss()
			if err != nil {
				return err
			}
			fm := final.(*model)
			if fm.err != nil {
				return fm.err
			}
			result = fm.result
			return nil
		})
	})
	return result, err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
