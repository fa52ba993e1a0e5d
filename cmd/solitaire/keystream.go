package main

import (
	"fmt"

	"github.com/phrazzld/solitaire/internal/service"
	"github.com/spf13/cobra"
)

func newKeyStreamCmd(opts *cliOptions) *cobra.Command {
	var (
		passphrase string
		length     int
	)

	cmd := &cobra.Command{
		Use:   "keystream",
		Short: "Print keystream letters for a passphrase",
		Long: `Print keystream letters for a passphrase in groups of five. The length is
rounded up to a multiple of five. An empty passphrase uses the unkeyed deck.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := service.NewCipherService(opts.logger).KeyStream(cmd.Context(), passphrase, length)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ks)
			return err
		},
	}

	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase (letters only); empty for the unkeyed deck")
	cmd.Flags().IntVarP(&length, "length", "n", 10, "number of keystream letters")
	return cmd
}
