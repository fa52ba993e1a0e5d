package api

// Common request/response structures

// CipherRequest is the payload for the encrypt and decrypt endpoints.
type CipherRequest struct {
	// Passphrase keys the deck; empty means the unkeyed deck.
	Passphrase string `json:"passphrase"`
	Text       string `json:"text"       validate:"required,max=65536"`
}

// TextResponse carries the result of an encryption or decryption.
type TextResponse struct {
	Text string `json:"text"`
}

// KeyStreamRequest is the payload for the keystream endpoint.
type KeyStreamRequest struct {
	Passphrase string `json:"passphrase"`
	Length     int    `json:"length"     validate:"required,gte=1,lte=65536"`
}

// KeyStreamResponse carries keystream letters in groups of five.
type KeyStreamResponse struct {
	KeyStream string `json:"keystream"`
}

// ShuffleRequest is the payload for the shuffle endpoint. Omitted fields take
// the configured deck defaults.
type ShuffleRequest struct {
	Decks   *int   `json:"decks,omitempty"   validate:"omitempty,gte=1,lte=64"`
	Jokers  *int   `json:"jokers,omitempty"  validate:"omitempty,gte=0,lte=2"`
	Riffles *int   `json:"riffles,omitempty" validate:"omitempty,gte=0,lte=1000"`
	Noise   *int   `json:"noise,omitempty"   validate:"omitempty,gte=0,lte=10"`
	Seed    int64  `json:"seed,omitempty"`
	Method  string `json:"method,omitempty"  validate:"omitempty,oneof=riffle fisher-yates in out"`
}

// ShuffleResponse describes a shuffled deck.
type ShuffleResponse struct {
	// Deck lists the cards top first, separated by spaces.
	Deck            string `json:"deck"`
	Cards           int    `json:"cards"`
	RisingSequences int    `json:"rising_sequences"`
	Seed            int64  `json:"seed"`
}
