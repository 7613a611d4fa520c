// Package cli implements the vcbrief command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pep299/vc-briefing/internal/application"
	"github.com/pep299/vc-briefing/internal/config"
)

// buildApp creates the application the commands run against
var buildApp = func(ctx context.Context) (*application.Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return application.New(ctx, cfg)
}

// NewRootCmd assembles the vcbrief command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vcbrief",
		Short:         "Summarize pitch decks and generate investor-ready VC briefs",
		Version:       application.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newGenerateCmd(), newBulletsCmd(), newVersionCmd())
	return rootCmd
}

func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vcbrief %s\n", application.Version)
		},
	}
}

// readDeck reads the deck from a file, or from stdin when path is "-"
func readDeck(cmd *cobra.Command, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--deck is required (a file path, or - for stdin)")
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading deck: %w", err)
	}

	deck := string(data)
	if strings.TrimSpace(deck) == "" {
		return "", fmt.Errorf("deck is empty")
	}
	return deck, nil
}
