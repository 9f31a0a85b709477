package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stayvia/stayvia-server/internal/adapters/controller/httpapi"
)

type Handlers struct {
	Feed          *FeedHandler
	Posts         *PostHandler
	Requests      *RequestHandler
	Users         *UserHandler
	Verification  *VerificationHandler
	Uploads       *UploadHandler
	Conversations *ConversationHandler
}

// NewRouter mounts every API route. Everything under /api sits behind the
// bearer-token middleware; /healthz stays open for probes.
func NewRouter(auth *httpapi.Auth, h Handlers) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware)

		r.Get("/feed", h.Feed.Get)

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.Posts.List)
			r.Post("/", h.Posts.Create)
			r.Get("/mine", h.Posts.Mine)
			r.Get("/{id}", h.Posts.Get)
			r.Put("/{id}", h.Posts.Update)
			r.Delete("/{id}", h.Posts.Delete)
			r.Get("/{id}/qr", h.Posts.ShareQR)
			r.Post("/{id}/requests", h.Requests.Create)
			r.Get("/{id}/requests", h.Requests.Status)
		})

		r.Route("/requests", func(r chi.Router) {
			r.Get("/approved", h.Requests.Approved)
			r.Post("/{id}/approve", h.Requests.Approve)
			r.Delete("/{id}", h.Requests.Disapprove)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.Users.Create)
			r.Get("/me", h.Users.Me)
			r.Patch("/me", h.Users.Update)
			r.Get("/stats", h.Users.Stats)
			r.Get("/{id}/avatar", h.Users.InitialAvatar)
		})

		r.Route("/verification", func(r chi.Router) {
			r.Get("/messages", h.Verification.History)
			r.Post("/{id}/approve", h.Verification.Approve)
			r.Post("/{id}/reject", h.Verification.Reject)
		})

		r.Route("/uploads", func(r chi.Router) {
			r.Post("/images", h.Uploads.Image)
			r.Post("/avatar", h.Uploads.Avatar)
		})

		r.Route("/conversations", func(r chi.Router) {
			r.Post("/{userID}", h.Conversations.Open)
			r.Get("/{id}/messages", h.Conversations.Messages)
			r.Post("/{id}/messages", h.Conversations.Send)
		})
	})

	return r
}
