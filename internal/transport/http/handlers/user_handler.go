package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ogusta/ripple/internal/store"
	"github.com/ogusta/ripple/pkg/validator"
)

type UserHandler struct {
	users *store.UserStore
}

func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var input store.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateProfile(input.Username, input.Bio); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	user, err := h.users.SaveProfile(input)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameRequired):
			writeError(w, http.StatusBadRequest, "USERNAME_REQUIRED", "Username is required")
		case errors.Is(err, store.ErrUsernameTaken):
			writeError(w, http.StatusConflict, "USERNAME_TAKEN", "Username is already in use")
		default:
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	cu, ok := h.users.CurrentUser()
	if !ok {
		writeError(w, http.StatusUnauthorized, "NOT_LOGGED_IN", "No profile saved yet")
		return
	}
	writeJSON(w, http.StatusOK, cu)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users := h.users.Search(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	h.writeFollowResult(w, h.users.Follow(r.PathValue("id")))
}

func (h *UserHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.writeFollowResult(w, h.users.Unfollow(r.PathValue("id")))
}

func (h *UserHandler) writeFollowResult(w http.ResponseWriter, err error) {
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotLoggedIn):
			writeError(w, http.StatusUnauthorized, "NOT_LOGGED_IN", "You need a profile to follow users")
		case errors.Is(err, store.ErrSelfFollow):
			writeError(w, http.StatusBadRequest, "SELF_FOLLOW", "Cannot follow yourself")
		case errors.Is(err, store.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	cu, _ := h.users.CurrentUser()
	writeJSON(w, http.StatusOK, cu)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error": map[string]any{
			"code":   "VALIDATION",
			"fields": errs,
		},
	})
}
