package server

import (
	"net/http"
	"time"

	"foodapp/internal/commons"
	"foodapp/internal/config"
	"foodapp/internal/diagnostics"
	"foodapp/internal/menu"
	ordercontroller "foodapp/internal/order/controller"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Controllers struct {
	Diagnostics *diagnostics.Controller
	Menu        *menu.Controller
	Orders      *ordercontroller.OrderController
}

func NewRouter(cfg config.ServerConfig, ctrls Controllers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(traceID)
	r.Use(accessLog(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{commons.TraceHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", ctrls.Diagnostics.HandleRoot)
	r.Get("/schema", ctrls.Diagnostics.HandleSchema)
	r.Get("/test", ctrls.Diagnostics.HandleTest)

	r.Route("/menu", func(r chi.Router) {
		r.Get("/", ctrls.Menu.HandleListMenu)
		r.Post("/", ctrls.Menu.HandleCreateMenuItem)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", ctrls.Orders.HandleListOrders)
		r.Post("/", ctrls.Orders.HandleCreateOrder)
	})

	return r
}

// traceID tags each request with an id, reusing the caller's X-Trace-Id
// when present.
func traceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(commons.TraceHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(commons.TraceHeader, id)
		next.ServeHTTP(w, r.WithContext(commons.WithTraceID(r.Context(), id)))
	})
}

func accessLog(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				commons.Logger(r.Context(), logger).Info("http request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
