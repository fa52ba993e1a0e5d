package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/solitaire/internal/api/shared"
	"github.com/phrazzld/solitaire/internal/service"
)

// DeckHandler handles deck shuffling requests.
type DeckHandler struct {
	deckService service.DeckService
	defaults    service.ShuffleRequest
}

// NewDeckHandler creates a new DeckHandler. Fields a request leaves out are
// taken from defaults.
func NewDeckHandler(deckService service.DeckService, defaults service.ShuffleRequest) *DeckHandler {
	return &DeckHandler{
		deckService: deckService,
		defaults:    defaults,
	}
}

// Shuffle handles POST /api/deck/shuffle requests. An empty body shuffles
// with the defaults.
func (h *DeckHandler) Shuffle(w http.ResponseWriter, r *http.Request) {
	var req ShuffleRequest
	if err := shared.DecodeJSON(r, &req); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	result, err := h.deckService.Shuffle(r.Context(), h.toServiceRequest(req))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ShuffleResponse{
		Deck:            result.Deck.String(),
		Cards:           result.Deck.Len(),
		RisingSequences: result.RisingSequences,
		Seed:            result.Seed,
	})
}

// toServiceRequest overlays the fields set in req on the defaults.
func (h *DeckHandler) toServiceRequest(req ShuffleRequest) service.ShuffleRequest {
	out := h.defaults
	if req.Decks != nil {
		out.Decks = *req.Decks
	}
	if req.Jokers != nil {
		out.Jokers = *req.Jokers
	}
	if req.Riffles != nil {
		out.Riffles = *req.Riffles
	}
	if req.Noise != nil {
		out.Noise = *req.Noise
	}
	if req.Method != "" {
		out.Method = service.ShuffleMethod(req.Method)
	}
	out.Seed = req.Seed
	return out
}
