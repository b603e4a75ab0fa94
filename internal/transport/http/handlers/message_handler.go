package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ogusta/ripple/internal/store"
	"github.com/ogusta/ripple/pkg/validator"
)

type MessageHandler struct {
	users    *store.UserStore
	messages *store.MessageStore
}

func NewMessageHandler(users *store.UserStore, messages *store.MessageStore) *MessageHandler {
	return &MessageHandler{users: users, messages: messages}
}

func (h *MessageHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	cu, ok := h.users.CurrentUser()
	if !ok {
		writeError(w, http.StatusUnauthorized, "NOT_LOGGED_IN", "Log in to see your messages")
		return
	}
	writeJSON(w, http.StatusOK, h.messages.ChatsFor(cu.ID))
}

func (h *MessageHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	cu, ok := h.users.CurrentUser()
	if !ok {
		writeError(w, http.StatusUnauthorized, "NOT_LOGGED_IN", "Log in to see your messages")
		return
	}
	writeJSON(w, http.StatusOK, h.messages.TranscriptFor(cu.ID, r.PathValue("id")))
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ReceiverID string `json:"receiverId"`
		Content    string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateMessage(input.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	msg, err := h.messages.Send(input.ReceiverID, input.Content)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotLoggedIn):
			writeError(w, http.StatusUnauthorized, "NOT_LOGGED_IN", "You need a profile to send messages")
		case errors.Is(err, store.ErrNoRecipient):
			writeError(w, http.StatusBadRequest, "NO_RECIPIENT", "Select a conversation first")
		case errors.Is(err, store.ErrEmptyMessage):
			writeError(w, http.StatusBadRequest, "EMPTY_MESSAGE", "Message content is required")
		case errors.Is(err, store.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}
