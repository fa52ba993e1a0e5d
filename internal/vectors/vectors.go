// Package vectors loads Solitaire test vectors from the line oriented text
// format the cipher's published vectors are distributed in, and checks them
// against the cipher implementation.
//
// A vector is a run of lines such as
//
//	Plaintext:  AAAAAAAAAAAAAAA
//	Key:        'foo'
//	Ciphertext: ITHZU JIWGR FARMW
//
// where the key is either a quoted lower case word or <null key>. The
// Ciphertext line closes the vector. Any other line is ignored.
package vectors

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/phrazzld/solitaire/internal/domain/solitaire"
)

// Common errors
var (
	ErrMalformed = errors.New("malformed test vector")
	ErrMismatch  = errors.New("test vector mismatch")
)

const (
	plaintextPrefix  = "Plaintext:"
	keyPrefix        = "Key:"
	ciphertextPrefix = "Ciphertext:"
)

var (
	plaintextLine  = regexp.MustCompile(`^Plaintext: +([A-Z]+) *$`)
	keyLine        = regexp.MustCompile(`^Key: +(?:'([a-z]+)'|(<null key>)) *$`)
	ciphertextLine = regexp.MustCompile(`^Ciphertext: +([A-Z][A-Z ]*?) *$`)
)

// Vector is one published plaintext, key and ciphertext triple.
type Vector struct {
	Plaintext  string
	Key        string // empty for the null key
	Ciphertext string
	Line       int // line of the Ciphertext entry
}

// Name identifies the vector in reports.
func (v Vector) Name() string {
	key := v.Key
	if key == "" {
		key = "<null key>"
	}
	return fmt.Sprintf("line %d key %s", v.Line, key)
}

// Verify encrypts the plaintext and decrypts the ciphertext with the
// vector's key and compares both results with the published values.
func (v Vector) Verify() error {
	ct, err := solitaire.EncryptString(v.Key, v.Plaintext)
	if err != nil {
		return fmt.Errorf("encrypting %s: %w", v.Name(), err)
	}
	if want := solitaire.ParseCypherText(v.Ciphertext).String(); ct != want {
		return fmt.Errorf("%w: %s encrypted to %q, want %q", ErrMismatch, v.Name(), ct, want)
	}

	pt, err := solitaire.DecryptString(v.Key, v.Ciphertext)
	if err != nil {
		return fmt.Errorf("decrypting %s: %w", v.Name(), err)
	}
	if want := solitaire.ParsePlainText(v.Plaintext).String(); pt != want {
		return fmt.Errorf("%w: %s decrypted to %q, want %q", ErrMismatch, v.Name(), pt, want)
	}
	return nil
}

// Load reads the vectors in the file at path.
func Load(path string) ([]Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vector file: %w", err)
	}
	defer func() { _ = f.Close() }()

	vectors, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vectors, nil
}

// Parse reads vectors from r.
func Parse(r io.Reader) ([]Vector, error) {
	var (
		vectors []Vector
		current Vector
		haveKey bool
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case strings.HasPrefix(line, plaintextPrefix):
			m := plaintextLine.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("%w: line %d: bad plaintext", ErrMalformed, lineNo)
			}
			current = Vector{Plaintext: m[1]}
			haveKey = false

		case strings.HasPrefix(line, keyPrefix):
			m := keyLine.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("%w: line %d: bad key", ErrMalformed, lineNo)
			}
			current.Key = m[1]
			haveKey = true

		case strings.HasPrefix(line, ciphertextPrefix):
			m := ciphertextLine.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("%w: line %d: bad ciphertext", ErrMalformed, lineNo)
			}
			if current.Plaintext == "" || !haveKey {
				return nil, fmt.Errorf("%w: line %d: ciphertext without plaintext and key", ErrMalformed, lineNo)
			}
			current.Ciphertext = m[1]
			current.Line = lineNo
			vectors = append(vectors, current)
			current = Vector{}
			haveKey = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vectors: %w", err)
	}
	return vectors, nil
}
