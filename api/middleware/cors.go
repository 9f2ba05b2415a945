package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",                // local dev
	"https://trinhquocthinh.github.io",     // static site
	"https://foodhub-restaurant.vercel.app", // Vercel deployment
}

// CORS returns middleware that applies the API's allowed origin policy.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   defaultCORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-FH-Session", "X-Requested-With"},
		ExposedHeaders:   []string{"X-FH-Session"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
