package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pep299/vc-briefing/internal/model"
)

func newGenerateCmd() *cobra.Command {
	var (
		deckPath string
		persona  string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Summarize a deck and write a VC brief",
		Long: `Summarize a pitch deck into five bullets, then draft a brief of
about 300 words tailored to an investor persona.

Examples:
  vcbrief generate --deck deck.txt
  vcbrief generate --deck deck.txt --persona "Series A fintech investor"
  pbpaste | vcbrief generate --deck - --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := readDeck(cmd, deckPath)
			if err != nil {
				return err
			}

			app, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}

			if persona == "" {
				persona = app.Config.DefaultPersona
			}

			result, err := app.Generator.Generate(cmd.Context(), deck, persona)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&deckPath, "deck", "d", "", "pitch deck text file (- for stdin)")
	cmd.Flags().StringVarP(&persona, "persona", "p", "", "investor persona (default from DEFAULT_PERSONA)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func newBulletsCmd() *cobra.Command {
	var deckPath string

	cmd := &cobra.Command{
		Use:   "bullets",
		Short: "Summarize a deck into bullets only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := readDeck(cmd, deckPath)
			if err != nil {
				return err
			}

			app, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}

			bullets, err := app.Summarizer.Summarize(cmd.Context(), deck)
			if err != nil {
				return err
			}

			for _, b := range bullets {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", b)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&deckPath, "deck", "d", "", "pitch deck text file (- for stdin)")
	return cmd
}

func printResult(w io.Writer, result *model.GenerationResult) {
	fmt.Fprintln(w, "Key Takeaways")
	for _, b := range result.Bullets {
		fmt.Fprintf(w, "  - %s\n", b)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "VC Brief")
	fmt.Fprintln(w, result.Brief)
}
