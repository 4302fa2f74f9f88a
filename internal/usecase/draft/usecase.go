package draft

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	domain "scholarhub-backend/internal/domain/application"
	"scholarhub-backend/internal/infrastructure/logger"
)

// Draft is the remote tier of the two-tier draft cache the wizard writes
// through. Drafts are ephemeral, so they live in redis with a TTL instead of
// a relational table.
type Draft struct {
	ScholarshipID string         `json:"scholarshipId"`
	Payload       domain.Payload `json:"payload"`
	SavedAt       time.Time      `json:"savedAt"`
}

type Usecase struct {
	rdb *redis.Client
	ttl time.Duration
	log logger.Logger
}

func NewUsecase(rdb *redis.Client, ttl time.Duration, log logger.Logger) *Usecase {
	return &Usecase{rdb: rdb, ttl: ttl, log: log}
}

func key(userID, scholarshipID string) string {
	return "draft:" + userID + ":" + scholarshipID
}

// Save stores the draft snapshot. Failures are reported but the caller treats
// them as best-effort; a broken draft store must never block the UI.
func (u *Usecase) Save(ctx context.Context, userID string, d Draft) error {
	d.SavedAt = time.Now().UTC()
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if err := u.rdb.Set(ctx, key(userID, d.ScholarshipID), payload, u.ttl).Err(); err != nil {
		u.log.Warn("draft save failed", map[string]interface{}{
			"userId":        userID,
			"scholarshipId": d.ScholarshipID,
			"error":         err.Error(),
		})
		return err
	}
	return nil
}

// Get returns the saved draft, or (nil, nil) when none exists.
func (u *Usecase) Get(ctx context.Context, userID, scholarshipID string) (*Draft, error) {
	b, err := u.rdb.Get(ctx, key(userID, scholarshipID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var d Draft
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Clear removes the draft after a confirmed submission.
func (u *Usecase) Clear(ctx context.Context, userID, scholarshipID string) error {
	return u.rdb.Del(ctx, key(userID, scholarshipID)).Err()
}
