package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/solitaire/internal/domain/solitaire"
	"github.com/phrazzld/solitaire/internal/platform/logger"
	"github.com/phrazzld/solitaire/internal/redact"
)

// MaxKeyStreamLength bounds a single keystream request.
const MaxKeyStreamLength = 1 << 16

// CipherService runs the Solitaire cipher for a passphrase.
type CipherService interface {
	// Encrypt returns the ciphertext of text in groups of five letters.
	Encrypt(ctx context.Context, passphrase, text string) (string, error)

	// Decrypt returns the plaintext of text, X padding included.
	Decrypt(ctx context.Context, passphrase, text string) (string, error)

	// KeyStream returns length letters (rounded up to a multiple of five)
	// of keystream for the passphrase, in groups of five.
	KeyStream(ctx context.Context, passphrase string, length int) (string, error)
}

// Verify interface compliance at compile time
var _ CipherService = (*cipherServiceImpl)(nil)

type cipherServiceImpl struct {
	logger *slog.Logger
}

// NewCipherService creates a CipherService. A nil logger falls back to
// slog.Default().
func NewCipherService(logger *slog.Logger) CipherService {
	if logger == nil {
		logger = slog.Default()
	}
	return &cipherServiceImpl{
		logger: logger.With(slog.String("component", "cipher_service")),
	}
}

// Encrypt implements CipherService.Encrypt.
func (s *cipherServiceImpl) Encrypt(ctx context.Context, passphrase, text string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	log.Debug("encrypting message",
		slog.String("passphrase", redact.Passphrase(passphrase)),
		slog.String("text", redact.Text(text)))

	ct, err := solitaire.EncryptString(passphrase, text)
	if err != nil {
		log.Warn("encryption rejected", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}

	log.Debug("message encrypted", slog.Int("letters", len(solitaire.ParseCypherText(ct))))
	return ct, nil
}

// Decrypt implements CipherService.Decrypt.
func (s *cipherServiceImpl) Decrypt(ctx context.Context, passphrase, text string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	log.Debug("decrypting message",
		slog.String("passphrase", redact.Passphrase(passphrase)),
		slog.String("text", redact.Text(text)))

	pt, err := solitaire.DecryptString(passphrase, text)
	if err != nil {
		log.Warn("decryption rejected", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	log.Debug("message decrypted", slog.Int("letters", len(pt)))
	return pt, nil
}

// KeyStream implements CipherService.KeyStream.
func (s *cipherServiceImpl) KeyStream(ctx context.Context, passphrase string, length int) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if length < 1 || length > MaxKeyStreamLength {
		return "", fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidLength, length, MaxKeyStreamLength)
	}

	pp, err := solitaire.ParsePassphrase(passphrase)
	if err != nil {
		log.Warn("keystream rejected", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to key deck: %w", err)
	}

	log.Debug("generating keystream",
		slog.String("passphrase", redact.Passphrase(passphrase)),
		slog.Int("length", length))

	return solitaire.KeyFromPassphrase(pp).KeyStream(length).String(), nil
}
