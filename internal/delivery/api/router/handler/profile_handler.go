package handler

import (
	"log/slog"

	"nursehub/internal/delivery/api/response"
	deliverycontext "nursehub/internal/delivery/context"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the cached profile of the signed-in caller
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// ProfileResponse is the cached profile as returned to the caller
type ProfileResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	FullName  string `json:"fullName,omitempty"`
	Username  string `json:"username,omitempty"`
}

// GetProfile handles GET /api/profile. The session profile is synced first; a failed
// sync is logged and the last cached copy is served.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrAuthenticationRequired
	}

	ctx := c.Request().Context()
	if err := h.profileUC.EnsureProfile(ctx, identity); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to sync profile", slog.Any("error", err))
	}

	profile, err := h.profileUC.GetProfile(ctx, identity.ID)
	if err != nil {
		return err
	}

	return response.OK(c, ProfileResponse{
		ID:        profile.ID,
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		FullName:  profile.FullName,
		Username:  profile.Username,
	})
}
