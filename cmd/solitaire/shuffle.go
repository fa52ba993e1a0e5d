package main

import (
	"fmt"
	"strings"

	"github.com/phrazzld/solitaire/internal/service"
	"github.com/spf13/cobra"
)

func newShuffleCmd(opts *cliOptions) *cobra.Command {
	var (
		req    service.ShuffleRequest
		method string
	)

	methods := make([]string, len(service.ShuffleMethods))
	for i, m := range service.ShuffleMethods {
		methods[i] = string(m)
	}

	cmd := &cobra.Command{
		Use:   "shuffle",
		Short: "Shuffle a fresh stack and report how well shuffled it is",
		Long: `Build a stack of new decks, shuffle it, and print the cards top first followed
by its rising sequence count. A freshly opened deck has one rising sequence;
a well shuffled 52 card deck has about 26.

Flags left unset take the deck defaults from configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := service.DefaultShuffleRequest(opts.config.Deck)
			flags := cmd.Flags()
			if !flags.Changed("decks") {
				req.Decks = defaults.Decks
			}
			if !flags.Changed("jokers") {
				req.Jokers = defaults.Jokers
			}
			if !flags.Changed("riffles") {
				req.Riffles = defaults.Riffles
			}
			if !flags.Changed("noise") {
				req.Noise = defaults.Noise
			}
			req.Method = service.ShuffleMethod(method)

			res, err := service.NewDeckService(opts.logger).Shuffle(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Deck.String())
			fmt.Fprintf(out, "rising sequences: %d\n", res.RisingSequences)
			fmt.Fprintf(out, "seed: %d\n", res.Seed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", string(service.MethodRiffle),
		"shuffle method ("+strings.Join(methods, ", ")+")")
	cmd.Flags().IntVar(&req.Decks, "decks", 1, "number of decks in the stack")
	cmd.Flags().IntVar(&req.Jokers, "jokers", 2, "jokers per deck (0-2)")
	cmd.Flags().IntVarP(&req.Riffles, "riffles", "r", 7, "number of riffles, or faro shuffles for in/out")
	cmd.Flags().IntVar(&req.Noise, "noise", 5, "riffle imprecision (0-10)")
	cmd.Flags().Int64Var(&req.Seed, "seed", 0, "random seed; 0 picks one")
	return cmd
}
