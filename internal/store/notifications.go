package store

import (
	"sort"
	"time"

	"github.com/ogusta/ripple/internal/domain"
)

// Notifications derives the unified feed for current from the post
// collection and follower set, newest first. Recomputed on every call;
// nothing is stored and nothing is marked read.
func Notifications(current domain.User, posts []domain.Post) []domain.Notification {
	var out []domain.Notification

	for _, p := range posts {
		if p.UserID != current.ID {
			continue
		}
		for _, likerID := range p.Likes {
			// A like carries no timestamp of its own; the post's creation
			// time stands in.
			out = append(out, domain.Notification{
				Type:      domain.NotificationLike,
				UserID:    likerID,
				TargetID:  p.ID,
				CreatedAt: p.CreatedAt,
			})
		}
		for _, c := range p.Comments {
			out = append(out, domain.Notification{
				Type:      domain.NotificationComment,
				UserID:    c.UserID,
				TargetID:  p.ID,
				Content:   c.Content,
				CreatedAt: c.CreatedAt,
			})
		}
	}

	now := time.Now()
	for _, followerID := range current.Followers {
		// Follows are not timestamped in the roster, so they surface at the
		// top of the feed.
		out = append(out, domain.Notification{
			Type:      domain.NotificationFollow,
			UserID:    followerID,
			TargetID:  current.ID,
			CreatedAt: now,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
