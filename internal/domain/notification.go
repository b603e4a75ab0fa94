package domain

import "time"

type NotificationType string

const (
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
	NotificationFollow  NotificationType = "follow"
)

// Notification is derived from posts and follower data on every read. There
// is no stored notification entity and no read/unread state.
type Notification struct {
	Type     NotificationType `json:"type"`
	UserID   string           `json:"userId"`   // acting user
	TargetID string           `json:"targetId"` // post for like/comment, profile for follow
	// Content carries the comment text for comment notifications.
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
