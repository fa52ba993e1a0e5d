package api

import (
	"context"
	"net/http"

	"github.com/phrazzld/solitaire/internal/api/shared"
	"github.com/phrazzld/solitaire/internal/service"
)

// CipherHandler handles encrypt, decrypt and keystream requests.
type CipherHandler struct {
	cipherService service.CipherService
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(cipherService service.CipherService) *CipherHandler {
	return &CipherHandler{cipherService: cipherService}
}

// Encrypt handles POST /api/encrypt requests
func (h *CipherHandler) Encrypt(w http.ResponseWriter, r *http.Request) {
	h.transform(w, r, h.cipherService.Encrypt)
}

// Decrypt handles POST /api/decrypt requests
func (h *CipherHandler) Decrypt(w http.ResponseWriter, r *http.Request) {
	h.transform(w, r, h.cipherService.Decrypt)
}

func (h *CipherHandler) transform(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, passphrase, text string) (string, error),
) {
	var req CipherRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	text, err := op(r.Context(), req.Passphrase, req.Text)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TextResponse{Text: text})
}

// KeyStream handles POST /api/keystream requests
func (h *CipherHandler) KeyStream(w http.ResponseWriter, r *http.Request) {
	var req KeyStreamRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	ks, err := h.cipherService.KeyStream(r.Context(), req.Passphrase, req.Length)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, KeyStreamResponse{KeyStream: ks})
}
