// file: handler/auth_handler.go

package handler

import (
	"net/http"
	"snapgram-api/common"
	"snapgram-api/model"
	"snapgram-api/service"
)

// AuthHandler holds dependencies for the session lifecycle endpoints.
type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Login godoc
// @Summary      Authenticate a user
// @Description  Verifies email and password, stores a fresh refresh token and returns a token pair. Unknown email and wrong password produce the identical error body.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Login credentials"
// @Success      200  {object}  common.Envelope{data=service.LoginResult}
// @Failure      400  {object}  common.Envelope "Invalid input or invalid email/password"
// @Failure      500  {object}  common.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return common.NewAppError(http.StatusBadRequest, "invalid input", err.Err)
	}

	result, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		switch err {
		case service.ErrInvalidCredentials:
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		case service.ErrSessionUpdateFailed:
			return common.NewAppError(http.StatusInternalServerError, "Failed to update token", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process login", err)
		}
	}

	common.Respond(w, http.StatusOK, true, "success", result)
	return nil
}

// RefreshAccessToken godoc
// @Summary      Exchange a refresh token for a new access token
// @Description  Looks the refresh token up by stored value, verifies it with the refresh secret and mints a new access token. The refresh token is not rotated.
// @Tags         auth
// @Produce      json
// @Param        refreshToken path string true "Refresh token previously returned by login"
// @Success      200  {object}  common.Envelope "data.accessToken holds the new token"
// @Failure      401  {object}  common.Envelope "Stored token failed verification"
// @Failure      404  {object}  common.Envelope "Token not found"
// @Router       /auth/AccessToken/{refreshToken} [get]
func (h *AuthHandler) RefreshAccessToken(w http.ResponseWriter, r *http.Request) *common.AppError {
	refreshToken := r.PathValue("refreshToken")
	if refreshToken == "" {
		return common.NewAppError(http.StatusNotFound, "NOT FOUND", nil)
	}

	accessToken, err := h.service.RefreshAccessToken(refreshToken)
	if err != nil {
		switch err {
		case service.ErrRefreshTokenNotFound:
			return common.NewAppError(http.StatusNotFound, "NOT FOUND", nil)
		case service.ErrInvalidToken:
			return common.NewAppError(http.StatusUnauthorized, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not refresh token", err)
		}
	}

	common.Respond(w, http.StatusOK, true, "success", map[string]string{"accessToken": accessToken})
	return nil
}

// Logout godoc
// @Summary      Log the current user out
// @Description  Clears the stored refresh token. The access token stays valid until it expires.
// @Tags         auth
// @Security     BearerAuth
// @Success      204  "Refresh token cleared"
// @Failure      401  {object}  common.Envelope
// @Failure      500  {object}  common.Envelope
// @Router       /auth/logout [delete]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	if err := h.service.Logout(userID); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Failed to update token", err)
	}

	common.Respond(w, http.StatusNoContent, true, "success", nil)
	return nil
}

// ChangePassword godoc
// @Summary      Change the password of the authenticated user
// @Description  Requires a verified email and the correct old password. Both failing conditions produce the same error body.
// @Tags         auth
// @Accept       json
// @Security     BearerAuth
// @Param        passwords body model.ChangePasswordRequest true "Old and new passwords"
// @Success      204  "Password updated"
// @Failure      400  {object}  common.Envelope
// @Failure      401  {object}  common.Envelope
// @Failure      500  {object}  common.Envelope
// @Router       /auth/ChangePassword [patch]
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	var req model.ChangePasswordRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid Inputes", err.Err)
	}

	err := h.service.ChangePassword(userID, req.OldPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		switch err {
		case service.ErrPasswordMismatch, service.ErrWrongOldPassword:
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not change password", err)
		}
	}

	common.Respond(w, http.StatusNoContent, true, "success", nil)
	return nil
}
