// Package cards models french-suited playing cards and ordered stacks of them.
//
// It supports the physical operations used when handling a deck: cutting
// (exactly or with human imprecision), riffle merging, perfect faro shuffles,
// Fisher-Yates randomization, moving individual cards, drawing, and a
// rising-sequence metric that measures how well a stack has been shuffled.
//
// Positions are zero based and count from the top of the stack. Randomness is
// always injected through the Rand interface so results are reproducible in
// tests.
package cards
