package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/ogusta/ripple/internal/config"
	"github.com/ogusta/ripple/internal/storage"
	"github.com/ogusta/ripple/internal/store"
	"github.com/ogusta/ripple/internal/transport/http/handlers"
	"github.com/ogusta/ripple/internal/transport/http/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	initLogger(cfg.LogLevel)

	// Storage
	st, err := storage.OpenPebble(cfg.DataDir)
	if err != nil {
		slog.Error("opening state db", "error", err)
		os.Exit(1)
	}
	defer st.Close()
	slog.Info("state db ready", "path", cfg.DataDir)

	// Stores
	userStore := store.NewUserStore(st)
	postStore := store.NewPostStore(st, userStore)
	messageStore := store.NewMessageStore(st, userStore)

	// Handlers
	userHandler := handlers.NewUserHandler(userStore)
	postHandler := handlers.NewPostHandler(postStore)
	messageHandler := handlers.NewMessageHandler(userStore, messageStore)
	notificationHandler := handlers.NewNotificationHandler(userStore, postStore)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	// Profile & users
	mux.HandleFunc("POST /api/v1/profile", userHandler.SaveProfile)
	mux.HandleFunc("GET /api/v1/me", userHandler.Me)
	mux.HandleFunc("GET /api/v1/users", userHandler.List)
	mux.HandleFunc("POST /api/v1/users/{id}/follow", userHandler.Follow)
	mux.HandleFunc("DELETE /api/v1/users/{id}/follow", userHandler.Unfollow)

	// Feed
	mux.HandleFunc("GET /api/v1/posts", postHandler.List)
	mux.HandleFunc("POST /api/v1/posts", postHandler.Create)
	mux.HandleFunc("DELETE /api/v1/posts/{id}", postHandler.Delete)
	mux.HandleFunc("POST /api/v1/posts/{id}/like", postHandler.Like)
	mux.HandleFunc("DELETE /api/v1/posts/{id}/like", postHandler.Unlike)
	mux.HandleFunc("POST /api/v1/posts/{id}/comments", postHandler.AddComment)
	mux.HandleFunc("POST /api/v1/posts/{id}/comments/{cid}/like", postHandler.LikeComment)
	mux.HandleFunc("DELETE /api/v1/posts/{id}/comments/{cid}/like", postHandler.UnlikeComment)

	// Messaging
	mux.HandleFunc("GET /api/v1/chats", messageHandler.ListChats)
	mux.HandleFunc("GET /api/v1/chats/{id}/messages", messageHandler.Transcript)
	mux.HandleFunc("POST /api/v1/messages", messageHandler.Send)

	// Notifications
	mux.HandleFunc("GET /api/v1/notifications", notificationHandler.List)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	slog.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, middleware.CORS(mux)); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
