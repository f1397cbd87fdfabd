package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const guestSequenceKey = "users:guest_seq"

// GuestSequence hands out guest account numbers backed by Redis INCR.
// INCR is atomic server-side, so concurrent RegisterGuest calls each receive
// a distinct number, unlike a count-then-use scheme.
type GuestSequence struct {
	client *redis.Client
}

// NewGuestSequence creates a GuestSequence wrapping the given Redis client.
func NewGuestSequence(client *redis.Client) *GuestSequence {
	return &GuestSequence{client: client}
}

// Next returns the next guest number, starting at 1.
func (s *GuestSequence) Next(ctx context.Context) (int64, error) {
	n, err := s.client.Incr(ctx, guestSequenceKey).Result()
	if err != nil {
		return 0, fmt.Errorf("guest sequence incr: %w", err)
	}
	return n, nil
}
