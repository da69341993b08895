// This is the main entry point of the application: it loads configuration,
// connects to the database, runs migrations, wires the services and handlers
// together, sets up the HTTP router and middleware, and starts the server
// with graceful shutdown.
//
// The security wiring happens here and only here: the identity middleware is
// applied router-wide so every request gets its identity (or anonymity)
// decided exactly once, and the administrator-only route group is wrapped
// with the admin guard at registration, so no guarded handler can run without
// the check.
//
// @title Association Records API
// @version 1.0
// @description Records-management backend for association staff. Authentication issues a signed identity token; administrator-only operations are guarded on every call.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_TOKEN' to authorize
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/globe42-go/apperror"
	"github.com/user/globe42-go/auth"
	"github.com/user/globe42-go/config"
	"github.com/user/globe42-go/db"
	_ "github.com/user/globe42-go/docs" // Generated Swagger docs
	"github.com/user/globe42-go/users"
)

func main() {
	// .env is a development convenience; production sets real environment
	// variables.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Wire the auth core. The signing secret, token lifetime and bcrypt cost
	// were loaded once above and are immutable from here on.
	userStore := users.NewPostgresStore(pool)
	digester := auth.NewPasswordDigester(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenService(cfg.Auth.TokenSecret, cfg.Auth.TokenMaxLifetime)
	authService := auth.NewAuthService(userStore, digester, tokens)
	authHandlers := auth.NewHandlers(authService)
	guard := auth.NewAdminGuard(userStore)

	userService := users.NewUserService(userStore, digester)
	userHandlers := users.NewUserHandlers(userService)

	r := chi.NewRouter()

	// Global middleware. Chi requires all middleware to be registered before
	// any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	// Bounded request worker pool: at most MaxConcurrentRequests handlers run
	// at once, further requests queue up to QueueBacklog, and anything beyond
	// that is shed instead of piling up.
	r.Use(middleware.ThrottleBacklog(cfg.Server.MaxConcurrentRequests, cfg.Server.QueueBacklog, time.Minute))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic-to-JSON error middleware, so even a panicking handler answers
	// with the standard error payload.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	// Every request passes the identity middleware: a valid bearer token
	// populates the request identity, anything else leaves the call
	// anonymous. Rejection decisions belong to the route groups below.
	r.Use(auth.IdentityMiddleware(tokens))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Login is the one operation open to anonymous callers.
	r.Post("/api/authentication", authHandlers.HandleAuthenticate())

	r.Route("/api/users", func(r chi.Router) {
		// Self-service routes need an identity, any identity.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuthenticated)
			r.Get("/me", userHandlers.HandleGetCurrentUser())
			r.Put("/me/passwords", userHandlers.HandleChangePassword())
		})

		// Account management is administrator-only; the guard runs before
		// every handler in this group, on every invocation.
		r.Group(func(r chi.Router) {
			r.Use(guard.AdminOnly)
			r.Get("/", userHandlers.HandleListUsers())
			r.Post("/", userHandlers.HandleCreateUser())
			r.Get("/{userId}", userHandlers.HandleGetUser())
			r.Delete("/{userId}", userHandlers.HandleDeleteUser())
			r.Post("/{userId}/password-resets", userHandlers.HandleResetPassword())
		})
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware, kept
// separate from the auth package helpers to avoid pulling request context
// into the recovery path.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"failed to encode error response"}`, http.StatusInternalServerError)
	}
}
