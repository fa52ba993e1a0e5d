package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/solitaire/internal/vectors"
	"github.com/spf13/cobra"
)

func newVerifyCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Check the cipher against a file of published test vectors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := vectors.Load(args[0])
			if err != nil {
				return err
			}
			if len(vs) == 0 {
				return fmt.Errorf("%s: no test vectors found", args[0])
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, v := range vs {
				if err := v.Verify(); err != nil {
					failed++
					opts.logger.Debug("vector failed", slog.String("vector", v.Name()), slog.String("error", err.Error()))
					fmt.Fprintf(out, "FAIL %s: %v\n", v.Name(), err)
					continue
				}
				fmt.Fprintf(out, "ok   %s\n", v.Name())
			}
			fmt.Fprintf(out, "%d passed, %d failed\n", len(vs)-failed, failed)

			if failed > 0 {
				return fmt.Errorf("%d of %d test vectors failed", failed, len(vs))
			}
			return nil
		},
	}
}
