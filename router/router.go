package router

import (
	"net/http"
	"snapgram-api/handler"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "snapgram-api/docs" // swagger spec registration
)

// NewRouter builds the explicit (method, path) route table. A wrong verb on a
// registered path is answered with 405 by the mux itself.
func NewRouter(userHandler *handler.UserHandler, authHandler *handler.AuthHandler, verificationHandler *handler.VerificationHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Session lifecycle
	mux.Handle("POST /auth/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("POST /auth/register", handler.ErrorHandlingMiddleware(userHandler.Register))
	mux.Handle("GET /auth/AccessToken/{refreshToken}", handler.ErrorHandlingMiddleware(authHandler.RefreshAccessToken))
	mux.Handle("DELETE /auth/logout", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(authHandler.Logout)))
	mux.Handle("PATCH /auth/ChangePassword", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(authHandler.ChangePassword)))

	// Code-based flows
	mux.Handle("GET /auth/reset_password", handler.ErrorHandlingMiddleware(verificationHandler.RequestPasswordReset))
	mux.Handle("POST /auth/reset_password", handler.ErrorHandlingMiddleware(verificationHandler.VerifyResetCode))
	mux.Handle("PATCH /auth/reset_password", handler.ErrorHandlingMiddleware(verificationHandler.ResetPassword))
	mux.Handle("POST /auth/verify_email", handler.ErrorHandlingMiddleware(verificationHandler.VerifyEmail))

	// Protected API
	mux.Handle("GET /api/me", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(userHandler.Me)))

	return mux
}
