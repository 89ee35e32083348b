package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-platform/inkwell-backend/errs"
)

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newUploadHandler() uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

// submitImageURL validates that the submitted string is a well-formed
// http(s) URL and echoes it back. Image hosting itself is external; nothing
// is stored here.
func (h uploadHandler) submitImageURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req uploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode upload request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"url": req.ImageURL})
	}
}
