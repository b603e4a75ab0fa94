package store

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/ogusta/ripple/internal/domain"
	"github.com/ogusta/ripple/internal/storage"
)

var (
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameTaken    = errors.New("username is already in use")
	ErrUserNotFound     = errors.New("user not found")
	ErrSelfFollow       = errors.New("cannot follow yourself")
)

// reservedUsername gets verified+admin flags on profile save. This is the
// bootstrap-admin mechanism, not a role system.
const reservedUsername = "ogusta"

// UserStore owns the user roster and the current-user reference. The current
// user is the single context treated as logged in for authorization and
// attribution.
type UserStore struct {
	mu      sync.RWMutex
	st      storage.Store
	users   []domain.User
	current *domain.User
}

// NewUserStore loads the roster and current user from st, falling back to
// empty state when nothing (or nothing readable) is persisted.
func NewUserStore(st storage.Store) *UserStore {
	s := &UserStore{st: st}
	if _, err := st.Load(storage.KeyUsers, &s.users); err != nil {
		slog.Warn("loading users failed, starting empty", "error", err)
	}
	var cu domain.User
	if ok, err := st.Load(storage.KeyCurrentUser, &cu); err != nil {
		slog.Warn("loading current user failed, starting logged out", "error", err)
	} else if ok {
		s.current = &cu
	}
	return s
}

type ProfileInput struct {
	Username     string `json:"username"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
}

// SaveProfile creates the user on first save and updates it in place after
// that; either way the saved record becomes the current user. The username
// must be non-empty and unique among other users (case-sensitive).
func (s *UserStore) SaveProfile(input ProfileInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username && (s.current == nil || u.ID != s.current.ID) {
			return nil, ErrUsernameTaken
		}
	}

	profileImage := strings.TrimSpace(input.ProfileImage)
	if profileImage == "" {
		profileImage = defaultProfileImage(username)
	}

	reserved := strings.EqualFold(username, reservedUsername)
	updated := domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		Bio:          input.Bio,
		ProfileImage: profileImage,
		IsVerified:   reserved,
		IsAdmin:      reserved,
		Followers:    []string{},
		Following:    []string{},
	}

	if s.current != nil {
		updated.ID = s.current.ID
		updated.Followers = s.current.Followers
		updated.Following = s.current.Following
		s.users = lo.Map(s.users, func(u domain.User, _ int) domain.User {
			if u.ID == updated.ID {
				return updated
			}
			return u
		})
	} else {
		s.users = append(s.users, updated)
	}

	cu := updated
	s.current = &cu
	s.persist()
	return &updated, nil
}

// Follow adds the current user to target's followers and the target to the
// current user's following, then refreshes the current-user snapshot from
// the roster. Following twice is a no-op.
func (s *UserStore) Follow(targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNotLoggedIn
	}
	if targetID == s.current.ID {
		return ErrSelfFollow
	}
	if !s.inRoster(targetID) {
		return ErrUserNotFound
	}

	me := s.current.ID
	s.users = lo.Map(s.users, func(u domain.User, _ int) domain.User {
		switch u.ID {
		case targetID:
			u.Followers = appendUnique(u.Followers, me)
		case me:
			u.Following = appendUnique(u.Following, targetID)
		}
		return u
	})
	s.refreshCurrent()
	s.persist()
	return nil
}

// Unfollow reverses Follow. Unfollowing someone not followed is a no-op.
func (s *UserStore) Unfollow(targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNotLoggedIn
	}

	me := s.current.ID
	s.users = lo.Map(s.users, func(u domain.User, _ int) domain.User {
		switch u.ID {
		case targetID:
			u.Followers = lo.Without(u.Followers, me)
		case me:
			u.Following = lo.Without(u.Following, targetID)
		}
		return u
	})
	s.refreshCurrent()
	s.persist()
	return nil
}

// CurrentUser returns a snapshot of the logged-in user, if any.
func (s *UserStore) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.User{}, false
	}
	return *s.current, true
}

// Users returns a snapshot of the full roster.
func (s *UserStore) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User{}, s.users...)
}

func (s *UserStore) UserByID(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.users, func(u domain.User) bool { return u.ID == id })
}

// Search matches usernames by case-insensitive substring. An empty term
// returns the full roster.
func (s *UserStore) Search(term string) []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	term = strings.ToLower(term)
	return lo.Filter(s.users, func(u domain.User, _ int) bool {
		return strings.Contains(strings.ToLower(u.Username), term)
	})
}

func (s *UserStore) inRoster(id string) bool {
	return lo.ContainsBy(s.users, func(u domain.User) bool { return u.ID == id })
}

// refreshCurrent re-reads the current-user snapshot from the roster after a
// roster mutation. Callers must hold the write lock.
func (s *UserStore) refreshCurrent() {
	if s.current == nil {
		return
	}
	if cur, ok := lo.Find(s.users, func(u domain.User) bool { return u.ID == s.current.ID }); ok {
		s.current = &cur
	}
}

func (s *UserStore) persist() {
	if err := s.st.Save(storage.KeyUsers, s.users); err != nil {
		slog.Error("persisting users", "error", err)
	}
	if s.current != nil {
		if err := s.st.Save(storage.KeyCurrentUser, s.current); err != nil {
			slog.Error("persisting current user", "error", err)
		}
	}
}

func defaultProfileImage(username string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s", url.QueryEscape(username))
}
