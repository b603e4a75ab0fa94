package store

import (
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/ogusta/ripple/internal/domain"
	"github.com/ogusta/ripple/internal/storage"
)

var (
	ErrNoRecipient  = errors.New("no conversation selected")
	ErrEmptyMessage = errors.New("message content is required")
)

// MessageStore owns the flat message log. Chats and transcripts are derived
// from the log on every read.
type MessageStore struct {
	mu       sync.RWMutex
	st       storage.Store
	users    *UserStore
	messages []domain.Message
}

func NewMessageStore(st storage.Store, users *UserStore) *MessageStore {
	s := &MessageStore{st: st, users: users}
	if _, err := st.Load(storage.KeyMessages, &s.messages); err != nil {
		slog.Warn("loading messages failed, starting empty", "error", err)
	}
	return s
}

// Send appends a message from the current user to the log.
func (s *MessageStore) Send(receiverID, content string) (*domain.Message, error) {
	cu, ok := s.users.CurrentUser()
	if !ok {
		return nil, ErrNotLoggedIn
	}
	if receiverID == "" {
		return nil, ErrNoRecipient
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	if _, ok := s.users.UserByID(receiverID); !ok {
		return nil, ErrUserNotFound
	}

	msg := domain.Message{
		ID:         uuid.New().String(),
		SenderID:   cu.ID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	s.persist()
	return &msg, nil
}

// ChatsFor returns one chat per distinct counterpart in any message involving
// userID. The list keeps the order counterparts first appear in the log; the
// last message is the newest by timestamp, and the unread count is the total
// number of messages the counterpart has sent to userID.
func (s *MessageStore) ChatsFor(userID string) []domain.Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var order []string
	last := make(map[string]domain.Message)
	received := make(map[string]int)

	for _, m := range s.messages {
		var other string
		switch userID {
		case m.SenderID:
			other = m.ReceiverID
		case m.ReceiverID:
			other = m.SenderID
		default:
			continue
		}

		if prev, seen := last[other]; !seen {
			order = append(order, other)
			last[other] = m
		} else if m.CreatedAt.After(prev.CreatedAt) {
			last[other] = m
		}
		if m.SenderID == other && m.ReceiverID == userID {
			received[other]++
		}
	}

	return lo.Map(order, func(id string, _ int) domain.Chat {
		return domain.Chat{
			UserID:      id,
			LastMessage: last[id],
			UnreadCount: received[id],
		}
	})
}

// TranscriptFor returns every message between the two users, oldest first.
func (s *MessageStore) TranscriptFor(userID, counterpartID string) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := lo.Filter(s.messages, func(m domain.Message, _ int) bool {
		return (m.SenderID == userID && m.ReceiverID == counterpartID) ||
			(m.SenderID == counterpartID && m.ReceiverID == userID)
	})
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	return msgs
}

func (s *MessageStore) persist() {
	if err := s.st.Save(storage.KeyMessages, s.messages); err != nil {
		slog.Error("persisting messages", "error", err)
	}
}
