package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/auctions-be/internal/api/handlers"
	"github.com/isdelr/auctions-be/internal/auth"
	"github.com/isdelr/auctions-be/internal/services"
	"github.com/isdelr/auctions-be/internal/websocket"
)

// Services bundles the service layer the router dispatches to.
type Services struct {
	Listings  services.ListingServiceProvider
	Bids      services.BidServiceProvider
	Comments  services.CommentServiceProvider
	Watchlist services.WatchlistServiceProvider
	Users     services.UserServiceProvider
	Events    services.EventServiceProvider
}

// Options holds the HTTP-facing settings.
type Options struct {
	AllowedOrigins []string
	SecureCookies  bool
}

// NewRouter creates and configures a new Chi router.
func NewRouter(hub *websocket.Hub, tokens *auth.TokenManager, svc Services, opts Options) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	listingHandler := handlers.NewListingHandler(svc.Listings)
	bidHandler := handlers.NewBidHandler(svc.Bids)
	commentHandler := handlers.NewCommentHandler(svc.Comments)
	watchlistHandler := handlers.NewWatchlistHandler(svc.Watchlist)
	userHandler := handlers.NewUserHandler(svc.Users, tokens, opts.SecureCookies)
	eventHandler := handlers.NewEventHandler(svc.Events)
	wsHandler := handlers.NewWebSocketHandler(hub, svc.Listings, opts.AllowedOrigins)

	requireAuth := tokens.Middleware()
	optionalAuth := tokens.OptionalMiddleware()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.With(requireAuth).Post("/logout", userHandler.Logout)
			r.With(requireAuth).Get("/me", userHandler.GetMe)
		})

		r.Route("/listings", func(r chi.Router) {
			r.Get("/", listingHandler.GetAll)
			r.With(requireAuth).Post("/", listingHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.With(optionalAuth).Get("/", listingHandler.Get)
				r.Get("/price", bidHandler.GetPrice)
				r.Get("/bids", bidHandler.GetAllForListing)
				r.Get("/comments", commentHandler.GetAllForListing)
				r.Get("/ws", wsHandler.Serve)

				r.Group(func(r chi.Router) {
					r.Use(requireAuth)
					r.Post("/close", listingHandler.Close)
					r.Post("/bids", bidHandler.Create)
					r.Post("/comments", commentHandler.Create)
					r.Post("/watch", watchlistHandler.Toggle)
				})
			})
		})

		r.With(requireAuth).Get("/watchlist", watchlistHandler.GetAll)

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", listingHandler.GetCategories)
			r.Get("/{name}", listingHandler.GetByCategory)
		})

		r.With(requireAuth).Get("/events", eventHandler.GetRecent)
	})

	return r
}
