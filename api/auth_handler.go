package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-platform/inkwell-backend/database"
	"github.com/inkwell-platform/inkwell-backend/errs"
	"github.com/inkwell-platform/inkwell-backend/models"
)

const bcryptCost = 10

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
}

func newAuthHandler(userRepo *database.UserRepo) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
	}
}

// register creates a new user. Session issuance itself is delegated to the
// external identity provider; this endpoint only stores the account.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode register request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.userRepo.FindByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("user already exists"))
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}

		user := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: string(hashed),
		}

		if err := h.userRepo.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create user", "user", err))
			return
		}

		h.responder.WriteJSON(w, registeredUser{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Avatar: user.Avatar,
		})
	}
}
