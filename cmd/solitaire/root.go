package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/phrazzld/solitaire/internal/config"
	"github.com/phrazzld/solitaire/internal/platform/logger"
	"github.com/phrazzld/solitaire/internal/service"
	"github.com/spf13/cobra"
)

// cliOptions is the state shared by the root command and its subcommands.
type cliOptions struct {
	logLevel string

	// Set by the persistent pre-run hook.
	config *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	var (
		encrypt    bool
		decrypt    bool
		passphrase string
	)

	cmd := &cobra.Command{
		Use:   "solitaire --passphrase <PASSPHRASE> <--encrypt|--decrypt>",
		Short: "Encrypt or decrypt stdin with the Solitaire cipher",
		Long: `Encrypt or decrypt stdin with a keystream generated from a passphrase,
using the playing card cipher by Bruce Schneier featured in "Cryptonomicon".

  $ echo "SOLITAIRE" | solitaire --passphrase cryptonomicon --encrypt
  KIRAK SFJAN
  $ echo "KIRAK SFJAN" | solitaire --passphrase cryptonomicon --decrypt
  SOLITAIREX`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			text := stripWhitespace(string(input))

			svc := service.NewCipherService(opts.logger)
			var out string
			if encrypt {
				out, err = svc.Encrypt(cmd.Context(), passphrase, text)
			} else {
				out, err = svc.Decrypt(cmd.Context(), passphrase, text)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVarP(&encrypt, "encrypt", "e", false, "Encrypt stdin with keystream generated from passphrase")
	cmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "Decrypt stdin with keystream generated from passphrase")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase (letters only) for key generation")
	cmd.MarkFlagsMutuallyExclusive("encrypt", "decrypt")
	cmd.MarkFlagsOneRequired("encrypt", "decrypt")
	_ = cmd.MarkFlagRequired("passphrase")

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error); logs go to stderr")

	cmd.AddCommand(
		newVerifyCmd(opts),
		newKeyStreamCmd(opts),
		newShuffleCmd(opts),
	)
	return cmd
}

// setup loads configuration and sends logs to the command's stderr.
func (o *cliOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	serverCfg := cfg.Server
	serverCfg.LogLevel = o.logLevel
	serverCfg.LogFormat = "text"
	l, err := logger.SetupWithWriter(serverCfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	o.config = cfg
	o.logger = l
	return nil
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
