package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"snapgram-api/common"
	"snapgram-api/model"
	"snapgram-api/service"

	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates an unverified account, stores a 6-digit verification code and mails it. A mail delivery failure still yields 201, only the message differs.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body model.RegisterRequest true "New user payload"
// @Success      201  {object}  common.Envelope
// @Failure      400  {object}  common.Envelope "Missing fields, bad email format or duplicate username/email"
// @Failure      500  {object}  common.Envelope
// @Router       /auth/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return common.NewAppError(http.StatusBadRequest, registerValidationMessage(err.Err), err.Err)
	}

	_, mailSent, err := h.service.Register(&req)
	if err != nil {
		switch err {
		case service.ErrUsernameTaken, service.ErrEmailTaken:
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not register user", err)
		}
	}

	message := "User registered successfully and Verification email sent"
	if !mailSent {
		message = "User registered successfully but failed to send verification email"
	}
	common.Respond(w, http.StatusCreated, true, message, nil)
	return nil
}

// registerValidationMessage keeps the generic missing-fields message but
// calls out a present-yet-malformed email address specifically.
func registerValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			if fieldErr.Field() == "Email" && fieldErr.Tag() == "email" {
				return "Invalid email format"
			}
		}
	}
	return "All fields are required"
}

// Me godoc
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.Envelope{data=model.Profile}
// @Failure      401  {object}  common.Envelope
// @Failure      404  {object}  common.Envelope
// @Router       /api/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	profile, err := h.service.GetProfile(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return common.NewAppError(http.StatusNotFound, "User not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not load profile", err)
	}

	common.Respond(w, http.StatusOK, true, "success", profile)
	return nil
}
