package routes

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/matchdaybr/campeonato-system/handlers"
	"github.com/matchdaybr/campeonato-system/metrics"
	"github.com/matchdaybr/campeonato-system/middleware"
)

// SetupRoutes wires every HTTP surface of the service onto the router.
func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	auth *middleware.Auth,
	competitionHandler *handlers.CompetitionHandler,
	namingHandler *handlers.NamingHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)
	router.Use(metricsMiddleware)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	router.Handle("/metrics", metrics.Handler())

	router.Get("/swagger/doc.json", swaggerDocHandler)
	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Route("/competitions", func(r chi.Router) {
		r.Get("/{competitionID}/view", competitionHandler.GetViewHandler)
		r.Get("/{competitionID}/stages", competitionHandler.GetStagesHandler)
		r.Get("/{competitionID}/knockout", competitionHandler.GetKnockoutHandler)

		// Cache-busting refresh is restricted to organizers.
		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(auth.Authorize("organizer"))
			r.Post("/{competitionID}/refresh", competitionHandler.RefreshHandler)
		})
	})

	router.Route("/naming", func(r chi.Router) {
		r.Get("/elimination-rounds", namingHandler.EliminationRoundNamesHandler)
		r.Get("/knockout-phases", namingHandler.KnockoutPhasesHandler)
	})

	router.Get("/ws/competitions/{competitionID}", webSocketHandler.ServeWs)
}

// metricsMiddleware records request counts and latency per chi route
// pattern.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(route, r.Method, strconv.Itoa(ww.Status()))
		metrics.ObserveHTTPRequest(route, r.Method, time.Since(start).Seconds())
	})
}
