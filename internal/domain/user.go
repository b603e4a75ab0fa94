package domain

// User is a member of the roster. Followers and Following hold user ids and
// stay symmetric across the roster: b lists a as a follower exactly when a
// lists b under following.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Bio          string   `json:"bio"`
	ProfileImage string   `json:"profileImage"`
	IsVerified   bool     `json:"isVerified"`
	IsAdmin      bool     `json:"isAdmin"`
	Followers    []string `json:"followers"`
	Following    []string `json:"following"`
}
