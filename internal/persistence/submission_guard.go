package persistence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bridge/internal/domain"
)

// SubmissionGuard deduplicates dialog submissions. Mattermost can deliver
// the same submission twice (double-click, webhook redelivery); the guard
// claims a short-lived key per (user, channel, field digest) so only the
// first delivery creates a ticket.
type SubmissionGuard struct {
	redis  *Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewSubmissionGuard builds a guard on top of the shared Redis client.
func NewSubmissionGuard(redis *Redis, ttl time.Duration, logger *zap.Logger) *SubmissionGuard {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SubmissionGuard{redis: redis, ttl: ttl, logger: logger}
}

// Claim returns true if the submission is new. A Redis failure is logged
// and treated as new: losing deduplication is preferable to losing tickets.
func (g *SubmissionGuard) Claim(ctx context.Context, sub domain.Submission) bool {
	if g == nil || g.redis == nil || g.redis.Client == nil {
		return true
	}

	ok, err := g.redis.Client.SetNX(ctx, guardKey(sub), 1, g.ttl).Result()
	if err != nil {
		g.logger.Warn("submission guard unavailable, allowing submission", zap.Error(err))
		return true
	}
	return ok
}

func guardKey(sub domain.Submission) string {
	h := sha256.New()
	for _, part := range []string{sub.UserID, sub.ChannelID, sub.Cluster, sub.Resource, sub.Problem, sub.Network} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return "ticket-bridge:submission:" + hex.EncodeToString(h.Sum(nil))
}
