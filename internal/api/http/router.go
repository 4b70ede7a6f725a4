package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"rent-a-tool/internal/service"
)

// Options tunes the middleware around the API
type Options struct {
	// AllowedOrigins enables CORS for the listed origins; empty disables CORS
	AllowedOrigins []string
	// RateLimit is the sustained requests per second; 0 disables limiting
	RateLimit float64
	RateBurst int
}

// NewRouter assembles the API routes, the /metrics endpoint and the
// middleware chain
func NewRouter(svc service.CheckoutService, metrics *Metrics, opts Options) http.Handler {
	router := mux.NewRouter()
	router.Use(metrics.instrument)
	RegisterRoutes(router, NewHandler(svc, metrics))
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	chain := alice.New(requestID, recoverPanic, logRequest)
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		chain = chain.Append(rateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit), burst)))
	}
	handler := chain.Then(router)

	if len(opts.AllowedOrigins) > 0 {
		c := cors.New(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", RequestIDHeader},
			ExposedHeaders: []string{RequestIDHeader},
		})
		handler = c.Handler(handler)
	}
	return handler
}
