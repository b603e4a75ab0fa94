package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ogusta/ripple/internal/store"
	"github.com/ogusta/ripple/pkg/validator"
)

type PostHandler struct {
	posts *store.PostStore
}

func NewPostHandler(posts *store.PostStore) *PostHandler {
	return &PostHandler{posts: posts}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.posts.Posts())
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidatePost(input.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	post, err := h.posts.AddPost(input.Content)
	if err != nil {
		writePostError(w, err, "You need a profile to publish")
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.posts.DeletePost(r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotAdmin) {
			writeError(w, http.StatusForbidden, "NOT_ADMIN", "Only admins can delete posts")
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.writeLikeResult(w, h.posts.LikePost(r.PathValue("id")))
}

func (h *PostHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.writeLikeResult(w, h.posts.UnlikePost(r.PathValue("id")))
}

func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateComment(input.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	comment, err := h.posts.AddComment(r.PathValue("id"), input.Content)
	if err != nil {
		writePostError(w, err, "You need a profile to comment")
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (h *PostHandler) LikeComment(w http.ResponseWriter, r *http.Request) {
	h.writeLikeResult(w, h.posts.LikeComment(r.PathValue("id"), r.PathValue("cid")))
}

func (h *PostHandler) UnlikeComment(w http.ResponseWriter, r *http.Request) {
	h.writeLikeResult(w, h.posts.UnlikeComment(r.PathValue("id"), r.PathValue("cid")))
}

func (h *PostHandler) writeLikeResult(w http.ResponseWriter, err error) {
	if err != nil {
		writePostError(w, err, "You need a profile to like")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writePostError(w http.ResponseWriter, err error, loginMessage string) {
	switch {
	case errors.Is(err, store.ErrNotLoggedIn):
		writeError(w, http.StatusUnauthorized, "NOT_LOGGED_IN", loginMessage)
	case errors.Is(err, store.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
	case errors.Is(err, store.ErrCommentNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Comment not found")
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
