package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"unhex/internal/config"
	"unhex/internal/editor"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "unhex <file>",
		Short:         "Terminal hex viewer and byte editor",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errors.New("stdin and stdout must be a terminal")
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				log.Printf("config: %v (using defaults)", err)
			}

			s, err := editor.NewSession(args[0], editor.WithConfig(cfg))
			if err != nil {
				return err
			}
			return s.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.ConfigPath()+")")
	return cmd
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	if path := os.Getenv("UNHEX_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "unhex")
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
