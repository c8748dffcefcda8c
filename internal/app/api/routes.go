// Package api предоставляет маршруты HTTP-сервиса управления паутами.
package api

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/matheusvidal/gestor-pautas/internal/http/handlers/health"
	identityhandler "github.com/matheusvidal/gestor-pautas/internal/http/handlers/identity"
	"github.com/matheusvidal/gestor-pautas/internal/http/handlers/pauta/create"
	"github.com/matheusvidal/gestor-pautas/internal/http/handlers/pauta/list"
	"github.com/matheusvidal/gestor-pautas/internal/http/handlers/pauta/read"
	"github.com/matheusvidal/gestor-pautas/internal/http/handlers/pauta/remove"
	"github.com/matheusvidal/gestor-pautas/internal/http/handlers/pauta/report"
	"github.com/matheusvidal/gestor-pautas/internal/http/handlers/pauta/stream"
	"github.com/matheusvidal/gestor-pautas/internal/http/handlers/pauta/update"
	"github.com/matheusvidal/gestor-pautas/internal/http/middlewarectx"
	"github.com/matheusvidal/gestor-pautas/internal/lib/jwt"
	identityservice "github.com/matheusvidal/gestor-pautas/internal/services/identity"
	pautaservice "github.com/matheusvidal/gestor-pautas/internal/services/pauta"
	reportservice "github.com/matheusvidal/gestor-pautas/internal/services/report"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	tokens jwt.Maker,
	pautaService *pautaservice.PautaService,
	reportService *reportservice.ReportService,
	identityService *identityservice.IdentityService,
	snapshots stream.Subscriber,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/identity", identityhandler.New(logger, identityService).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(tokens, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/pautas", create.New(logger, pautaService).ServeHTTP)
			r.Get("/pautas", list.New(logger, pautaService).ServeHTTP)
			r.Get("/pautas/stream", stream.New(logger, snapshots).ServeHTTP)
			r.Post("/pautas/report", report.New(logger, reportService).ServeHTTP)
			r.Get("/pautas/{id}", read.New(logger, pautaService).ServeHTTP)
			r.Put("/pautas/{id}", update.New(logger, pautaService).ServeHTTP)
			r.Delete("/pautas/{id}", remove.New(logger, pautaService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
