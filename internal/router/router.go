package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"mrvl-backend/internal/handlers"
	"mrvl-backend/internal/middleware"
	"mrvl-backend/internal/websocket"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	newsHandler *handlers.NewsHandler,
	embedHandler *handlers.EmbedHandler,
	vlrHandler *handlers.VLRHandler,
	mentionHandler *handlers.MentionHandler,
	esportsHandler *handlers.EsportsHandler,
	forumHandler *handlers.ForumHandler,
	wsHub *websocket.Hub,
	authLimiter *middleware.RateLimiter,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Public surface: reads and the editor's embed pipeline.
		r.Route("/public", func(r chi.Router) {
			r.Route("/news", func(r chi.Router) {
				r.Get("/", newsHandler.List)
				r.Get("/{id}", newsHandler.Get)
			})

			// Embed pipeline: used by the editor for paste preview.
			r.Route("/embeds", func(r chi.Router) {
				r.Post("/detect", embedHandler.Detect)
				r.Post("/scan", embedHandler.Scan)
				r.Post("/process", embedHandler.Process)
			})

			// Cached VLR.gg proxy.
			r.Route("/vlr", func(r chi.Router) {
				r.Get("/news", vlrHandler.News)
				r.Get("/matches", vlrHandler.Matches)
				r.Get("/matches/{id}", vlrHandler.Match)
				r.Get("/teams", vlrHandler.SearchTeams)
				r.Get("/teams/{id}", vlrHandler.Team)
				r.Get("/events", vlrHandler.Events)
				r.Post("/enrich", vlrHandler.Enrich)
				r.Get("/health", vlrHandler.Health)
			})

			// Mention autocomplete.
			r.Route("/mentions", func(r chi.Router) {
				r.Get("/search", mentionHandler.Search)
				r.Get("/popular", mentionHandler.Popular)
			})
		})

		// Author/admin surface.
		r.Route("/admin", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Use(middleware.RequireRole("author", "admin"))

			r.Route("/news", func(r chi.Router) {
				r.Post("/", newsHandler.Create)
				r.Get("/mine", newsHandler.ListMine)
				r.Put("/{id}", newsHandler.Update)
				r.Delete("/{id}", newsHandler.Delete)
				r.Get("/{id}/edit", newsHandler.GetForEdit)
			})

			r.Put("/matches/{id}/score", esportsHandler.UpdateScore)
		})

		// Esports data.
		r.Route("/teams", func(r chi.Router) {
			r.Get("/", esportsHandler.ListTeams)
			r.Get("/{id}", esportsHandler.GetTeam)
			r.Get("/{id}/roster", esportsHandler.GetTeamRoster)
		})
		r.Get("/players/{id}", esportsHandler.GetPlayer)
		r.Get("/events", esportsHandler.ListEvents)

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", esportsHandler.ListMatches)
			r.Get("/{id}", esportsHandler.GetMatch)
		})

		// Forums: reads are public, posting needs a logged-in user.
		r.Route("/forums", func(r chi.Router) {
			r.Get("/threads", forumHandler.ListThreads)
			r.Get("/threads/{id}", forumHandler.GetThread)
			r.Get("/threads/{id}/posts", forumHandler.ListPosts)

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/threads", forumHandler.CreateThread)
				r.Post("/threads/{id}/posts", forumHandler.CreatePost)
			})
		})
	})

	// Live scores push channel.
	r.Get("/ws/scores", wsHub.HandleWebSocket)

	return r
}
