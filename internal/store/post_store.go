package store

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/ogusta/ripple/internal/domain"
	"github.com/ogusta/ripple/internal/storage"
)

var (
	ErrNotAdmin        = errors.New("only admins can delete posts")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// PostStore owns the feed: posts and their nested comments. Every mutation
// replaces the collection copy-on-write at the post/comment level, so
// snapshots handed out earlier never change under the caller.
type PostStore struct {
	mu    sync.RWMutex
	st    storage.Store
	users *UserStore
	posts []domain.Post
}

func NewPostStore(st storage.Store, users *UserStore) *PostStore {
	s := &PostStore{st: st, users: users}
	if _, err := st.Load(storage.KeyPosts, &s.posts); err != nil {
		slog.Warn("loading posts failed, starting empty", "error", err)
	}
	return s
}

// Posts returns the feed snapshot, newest first.
func (s *PostStore) Posts() []domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Post{}, s.posts...)
}

// AddPost publishes a post to the top of the feed, stamping the author
// snapshot from the current user.
func (s *PostStore) AddPost(content string) (*domain.Post, error) {
	cu, ok := s.users.CurrentUser()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	post := domain.Post{
		ID:           uuid.New().String(),
		Content:      strings.TrimSpace(content),
		UserID:       cu.ID,
		Username:     cu.Username,
		ProfileImage: cu.ProfileImage,
		IsVerified:   cu.IsVerified,
		Likes:        []string{},
		Comments:     []domain.Comment{},
		CreatedAt:    time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]domain.Post{post}, s.posts...)
	s.persist()
	return &post, nil
}

// DeletePost removes a post from the feed. Admin only; removing an id that
// is not in the feed is a no-op.
func (s *PostStore) DeletePost(postID string) error {
	cu, ok := s.users.CurrentUser()
	if !ok || !cu.IsAdmin {
		return ErrNotAdmin
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = lo.Reject(s.posts, func(p domain.Post, _ int) bool { return p.ID == postID })
	s.persist()
	return nil
}

// LikePost records a like by the current user. Liking twice collapses to a
// single entry; Likes keeps set semantics.
func (s *PostStore) LikePost(postID string) error {
	cu, ok := s.users.CurrentUser()
	if !ok {
		return ErrNotLoggedIn
	}
	return s.updatePost(postID, func(p domain.Post) domain.Post {
		p.Likes = appendUnique(p.Likes, cu.ID)
		return p
	})
}

func (s *PostStore) UnlikePost(postID string) error {
	cu, ok := s.users.CurrentUser()
	if !ok {
		return ErrNotLoggedIn
	}
	return s.updatePost(postID, func(p domain.Post) domain.Post {
		p.Likes = lo.Without(p.Likes, cu.ID)
		return p
	})
}

// AddComment appends a comment to the post, stamping the author snapshot
// from the current user.
func (s *PostStore) AddComment(postID, content string) (*domain.Comment, error) {
	cu, ok := s.users.CurrentUser()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	comment := domain.Comment{
		ID:           uuid.New().String(),
		Content:      strings.TrimSpace(content),
		UserID:       cu.ID,
		Username:     cu.Username,
		ProfileImage: cu.ProfileImage,
		IsVerified:   cu.IsVerified,
		Likes:        []string{},
		CreatedAt:    time.Now(),
	}

	err := s.updatePost(postID, func(p domain.Post) domain.Post {
		comments := make([]domain.Comment, 0, len(p.Comments)+1)
		comments = append(comments, p.Comments...)
		p.Comments = append(comments, comment)
		return p
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *PostStore) LikeComment(postID, commentID string) error {
	cu, ok := s.users.CurrentUser()
	if !ok {
		return ErrNotLoggedIn
	}
	return s.updateComment(postID, commentID, func(c domain.Comment) domain.Comment {
		c.Likes = appendUnique(c.Likes, cu.ID)
		return c
	})
}

func (s *PostStore) UnlikeComment(postID, commentID string) error {
	cu, ok := s.users.CurrentUser()
	if !ok {
		return ErrNotLoggedIn
	}
	return s.updateComment(postID, commentID, func(c domain.Comment) domain.Comment {
		c.Likes = lo.Without(c.Likes, cu.ID)
		return c
	})
}

func (s *PostStore) updatePost(postID string, apply func(domain.Post) domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	s.posts = lo.Map(s.posts, func(p domain.Post, _ int) domain.Post {
		if p.ID != postID {
			return p
		}
		found = true
		return apply(p)
	})
	if !found {
		return ErrPostNotFound
	}
	s.persist()
	return nil
}

func (s *PostStore) updateComment(postID, commentID string, apply func(domain.Comment) domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	foundPost, foundComment := false, false
	s.posts = lo.Map(s.posts, func(p domain.Post, _ int) domain.Post {
		if p.ID != postID {
			return p
		}
		foundPost = true
		p.Comments = lo.Map(p.Comments, func(c domain.Comment, _ int) domain.Comment {
			if c.ID != commentID {
				return c
			}
			foundComment = true
			return apply(c)
		})
		return p
	})
	if !foundPost {
		return ErrPostNotFound
	}
	if !foundComment {
		return ErrCommentNotFound
	}
	s.persist()
	return nil
}

func (s *PostStore) persist() {
	if err := s.st.Save(storage.KeyPosts, s.posts); err != nil {
		slog.Error("persisting posts", "error", err)
	}
}
