// file: handler/verification_handler.go

package handler

import (
	"net/http"
	"snapgram-api/common"
	"snapgram-api/model"
	"snapgram-api/service"
)

// VerificationHandler serves the code-based flows: password reset and email
// verification.
type VerificationHandler struct {
	service *service.VerificationService
}

func NewVerificationHandler(s *service.VerificationService) *VerificationHandler {
	return &VerificationHandler{service: s}
}

// RequestPasswordReset godoc
// @Summary      Request a password reset code
// @Description  Generates a 6-digit code valid for 5 minutes and mails it to the account's address.
// @Tags         password-reset
// @Param        email query string true "Account email"
// @Success      204  "Reset code sent"
// @Failure      400  {object}  common.Envelope "Unknown email"
// @Failure      500  {object}  common.Envelope "Code could not be stored or mail could not be sent"
// @Router       /auth/reset_password [get]
func (h *VerificationHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) *common.AppError {
	email := r.URL.Query().Get("email")

	err := h.service.RequestPasswordReset(email)
	if err != nil {
		switch err {
		case service.ErrEmailNotRegistered:
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, err.Error(), err)
		}
	}

	common.Respond(w, http.StatusNoContent, true, "email sent successfully", nil)
	return nil
}

// VerifyResetCode godoc
// @Summary      Verify a password reset code
// @Description  Accepts the code only if it equals the newest stored code for the user and has not expired, then deletes the user's codes.
// @Tags         password-reset
// @Accept       json
// @Produce      json
// @Param        payload body model.VerifyCodeRequest true "Email and code"
// @Success      200  {object}  common.Envelope
// @Failure      400  {object}  common.Envelope "Wrong or expired code"
// @Failure      404  {object}  common.Envelope "Unknown email or no code on file"
// @Router       /auth/reset_password [post]
func (h *VerificationHandler) VerifyResetCode(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.VerifyCodeRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Email and code are required", err.Err)
	}

	if err := h.service.VerifyResetCode(req.Email, req.Code); err != nil {
		return mapCodeFlowError(err)
	}

	common.Respond(w, http.StatusOK, true, "Code verified successfully", nil)
	return nil
}

// ResetPassword godoc
// @Summary      Commit a new password after a reset
// @Description  Overwrites the password keyed by email. The code check of the previous step is not re-verified here.
// @Tags         password-reset
// @Accept       json
// @Param        payload body model.ResetPasswordRequest true "Email and new password"
// @Success      204  "Password replaced"
// @Failure      400  {object}  common.Envelope
// @Router       /auth/reset_password [patch]
func (h *VerificationHandler) ResetPassword(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.ResetPasswordRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return common.NewAppError(http.StatusBadRequest, "email, password and confirmPassword are required", err.Err)
	}

	if err := h.service.ResetPassword(req.Email, req.Password, req.ConfirmPassword); err != nil {
		switch err {
		case service.ErrPasswordMismatch:
			return common.NewAppError(http.StatusBadRequest, "password and confirmPassword not match", nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not reset password", err)
		}
	}

	common.Respond(w, http.StatusNoContent, true, "Your password has been changed successfully", nil)
	return nil
}

// VerifyEmail godoc
// @Summary      Verify a registered email address
// @Description  Flips email_verified exactly once inside a transaction and deletes the user's codes. Re-invoking returns "Email already verified".
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload body model.VerifyCodeRequest true "Email and code"
// @Success      200  {object}  common.Envelope
// @Failure      400  {object}  common.Envelope "Already verified, wrong or expired code"
// @Failure      404  {object}  common.Envelope "Unknown email or no code on file"
// @Failure      500  {object}  common.Envelope
// @Router       /auth/verify_email [post]
func (h *VerificationHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.VerifyCodeRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Email and code are required", err.Err)
	}

	if err := h.service.VerifyEmail(req.Email, req.Code); err != nil {
		switch err {
		case service.ErrAlreadyVerified:
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		case service.ErrVerifyNotPersisted:
			return common.NewAppError(http.StatusInternalServerError, err.Error(), err)
		default:
			return mapCodeFlowError(err)
		}
	}

	common.Respond(w, http.StatusOK, true, "Email verified successfully", nil)
	return nil
}

// mapCodeFlowError translates the shared code-checking sentinels to HTTP.
func mapCodeFlowError(err error) *common.AppError {
	switch err {
	case service.ErrEmailNotFound, service.ErrCodeNotFound:
		return common.NewAppError(http.StatusNotFound, err.Error(), nil)
	case service.ErrInvalidCode, service.ErrCodeExpired:
		return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
	default:
		return common.NewAppError(http.StatusInternalServerError, "Could not process verification", err)
	}
}
