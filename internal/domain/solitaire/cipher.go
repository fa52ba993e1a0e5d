package solitaire

import "fmt"

// Encrypt adds the keystream to the plaintext letter by letter. A plus A is
// B: values run 1..26 and the sum wraps after Z.
func Encrypt(pt PlainText, ks KeyStream) (CypherText, error) {
	if len(ks) < len(pt) {
		return nil, fmt.Errorf("%w: need %d letters, have %d", ErrKeyStreamTooShort, len(pt), len(ks))
	}
	ct := make(CypherText, len(pt))
	for i, p := range pt {
		ct[i] = letterFromOffset(int(p.Value()) + int(ks[i].Value()) - 1)
	}
	return ct, nil
}

// Decrypt subtracts the keystream from the ciphertext letter by letter,
// undoing Encrypt.
func Decrypt(ct CypherText, ks KeyStream) (PlainText, error) {
	if len(ks) < len(ct) {
		return nil, fmt.Errorf("%w: need %d letters, have %d", ErrKeyStreamTooShort, len(ct), len(ks))
	}
	pt := make(PlainText, len(ct))
	for i, c := range ct {
		pt[i] = letterFromOffset(int(c.Value()) - int(ks[i].Value()) - 1)
	}
	return pt, nil
}

// EncryptString keys a deck from passphrase and encrypts text with it,
// returning the ciphertext in groups of five.
func EncryptString(passphrase, text string) (string, error) {
	pp, err := ParsePassphrase(passphrase)
	if err != nil {
		return "", err
	}
	pt := ParsePlainText(text)
	ct, err := Encrypt(pt, KeyFromPassphrase(pp).KeyStream(len(pt)))
	if err != nil {
		return "", err
	}
	return ct.String(), nil
}

// DecryptString keys a deck from passphrase and decrypts text with it.
func DecryptString(passphrase, text string) (string, error) {
	pp, err := ParsePassphrase(passphrase)
	if err != nil {
		return "", err
	}
	ct := ParseCypherText(text)
	pt, err := Decrypt(ct, KeyFromPassphrase(pp).KeyStream(len(ct)))
	if err != nil {
		return "", err
	}
	return pt.String(), nil
}
