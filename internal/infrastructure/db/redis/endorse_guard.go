package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const endorseTTL = time.Hour

// EndorseGuard provides a fast idempotency check for judge endorsements,
// backed by Redis. Key format: endorse:<judge_id>:<case_id>. The guard is an
// optimization only; the unique notification index is the hard guarantee.
type EndorseGuard struct {
	client *redis.Client
}

// NewEndorseGuard creates an EndorseGuard wrapping the given Redis client.
func NewEndorseGuard(client *redis.Client) *EndorseGuard {
	return &EndorseGuard{client: client}
}

// Seen reports whether this judge has already been endorsed onto this case.
func (g *EndorseGuard) Seen(ctx context.Context, judgeID, caseID string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(judgeID, caseID)).Result()
	if err != nil {
		return false, fmt.Errorf("endorse guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records the endorsement (expires after endorseTTL).
func (g *EndorseGuard) Mark(ctx context.Context, judgeID, caseID string) error {
	return g.client.Set(ctx, g.key(judgeID, caseID), "1", endorseTTL).Err()
}

func (g *EndorseGuard) key(judgeID, caseID string) string {
	return fmt.Sprintf("endorse:%s:%s", judgeID, caseID)
}
