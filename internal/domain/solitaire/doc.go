// Package solitaire implements Bruce Schneier's Solitaire cipher (also known
// as Pontifex), the hand cipher carried out with a deck of 52 playing cards
// and two jokers.
//
// A passphrase keys the deck, the keyed deck is stepped to produce a stream
// of letters, and the stream is added to (or subtracted from) the message one
// letter at a time, modulo 26. Messages are restricted to the letters A-Z;
// plaintext is padded with X to a multiple of five letters and ciphertext is
// written in groups of five.
//
// The package is pure and deterministic: it does no I/O and never logs.
package solitaire
