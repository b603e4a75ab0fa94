package domain

import "time"

// Message is one entry in the flat, append-only log shared by all
// conversations. Immutable once created.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Chat summarizes the conversation with one counterpart: the most recent
// message exchanged and how many messages they have sent this user. Derived
// from the log on every read, never stored.
type Chat struct {
	UserID      string  `json:"userId"`
	LastMessage Message `json:"lastMessage"`
	UnreadCount int     `json:"unreadCount"`
}
