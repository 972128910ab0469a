package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "github.com/Sellaris/chat-frontend-journey/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures the chi router with all application
// routes.
func NewRouter(chatHandler *ChatHandler, credentialHandler *CredentialHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The chat frontend runs in the browser on a different origin during
	// development.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Liveness probe for container orchestration.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Standard JSON routes get a request timeout so client
		// connections cannot hang indefinitely.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			r.Get("/agents", chatHandler.GetAgents)

			r.Get("/chats", chatHandler.GetChats)
			r.Post("/chats", chatHandler.CreateChat)
			r.Get("/chats/{chatID}/messages", chatHandler.GetMessages)
			r.Delete("/chats/{chatID}", chatHandler.DeleteChat)

			r.Get("/credentials", credentialHandler.ListProfiles)
			r.Post("/credentials", credentialHandler.AddProfile)
			r.Get("/credentials/status", credentialHandler.GetStatus)
			r.Delete("/credentials/{name}", credentialHandler.DeleteProfile)
			r.Post("/credentials/{name}/select", credentialHandler.SelectProfile)
		})

		// The turn stream holds its connection open for the whole
		// retrieval phase plus the completion, so it must not carry a
		// timeout.
		r.Group(func(r chi.Router) {
			r.Post("/chats/{chatID}/messages", chatHandler.HandleStreamMessage)
		})
	})

	// Serves the static frontend build for simplified local development;
	// production puts a real web server in front.
	fileServer := http.FileServer(http.Dir("./frontend/dist"))
	r.Handle("/*", http.StripPrefix("/", fileServer))

	return r
}
