package handlers

import (
	"net/http"

	"github.com/ogusta/ripple/internal/domain"
	"github.com/ogusta/ripple/internal/store"
)

type NotificationHandler struct {
	users *store.UserStore
	posts *store.PostStore
}

func NewNotificationHandler(users *store.UserStore, posts *store.PostStore) *NotificationHandler {
	return &NotificationHandler{users: users, posts: posts}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	cu, ok := h.users.CurrentUser()
	if !ok {
		writeError(w, http.StatusUnauthorized, "NOT_LOGGED_IN", "Log in to see your notifications")
		return
	}
	notifs := store.Notifications(cu, h.posts.Posts())
	if notifs == nil {
		notifs = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, notifs)
}
