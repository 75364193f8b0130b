package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/carbontrade/carboncert/internal/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the carbon
// certificate API. It applies JSON content-type enforcement and request
// logging globally, and bearer-token authentication on the certificate
// routes.
//
// Routes:
//
//	POST /authentication/register       → authHandler.Register
//	POST /authentication/log-in         → authHandler.Login
//	GET  /carbon-certificates/my        → certHandler.My        (bearer)
//	GET  /carbon-certificates/ownerless → certHandler.Ownerless (bearer)
//	PUT  /carbon-certificates/my        → certHandler.Update    (bearer)
//	POST /carbon-certificates           → certHandler.Create    (bearer)
func NewRouter(
	authHandler *AuthHandler,
	certHandler *CertificateHandler,
	decoder middleware.TokenDecoder,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/authentication", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/log-in", authHandler.Login)
	})

	// Protected group: requires a valid bearer token
	r.Route("/carbon-certificates", func(r chi.Router) {
		r.Use(middleware.BearerAuth(decoder))

		r.Get("/my", certHandler.My)
		r.Get("/ownerless", certHandler.Ownerless)
		r.Put("/my", certHandler.Update)
		r.Post("/", certHandler.Create)
	})

	return r
}
