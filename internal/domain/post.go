package domain

import "time"

type Post struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	UserID  string `json:"userId"`
	// Author snapshot, captured at creation time. Later profile edits do not
	// back-propagate to published posts.
	Username     string `json:"username"`
	ProfileImage string `json:"profileImage"`
	IsVerified   bool   `json:"isVerified"`

	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment lives inside its parent post. Comments are appended in order and
// never edited or removed.
type Comment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	UserID  string `json:"userId"`
	// Author snapshot
	Username     string `json:"username"`
	ProfileImage string `json:"profileImage"`
	IsVerified   bool   `json:"isVerified"`

	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}
