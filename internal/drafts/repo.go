// Package drafts keeps the latest unsaved edit per (user, project) in Redis
// so a crashed session can recover what the debouncer had not yet flushed
// to the document store.
package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trekfolio/brochure-backend/internal/projects/domain"
)

const (
	draftKeyPrefix     = "brochure:draft:"      // Draft payload: brochure:draft:{user_id}:{project_id}
	userDraftSetPrefix = "brochure:draft:user:" // Set of project IDs with a pending draft: brochure:draft:user:{user_id}
	draftTTL           = 24 * time.Hour
)

// Repo handles Redis operations for pending drafts.
type Repo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRepo creates a draft repository with the default TTL.
func NewRepo(client *redis.Client) *Repo {
	return &Repo{client: client, ttl: draftTTL}
}

// Save stores patch as the pending draft for the project, replacing any
// prior one and refreshing the TTL.
func (r *Repo) Save(ctx context.Context, userID, projectID string, patch domain.ProjectUpdate) error {
	payload, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}

	setKey := r.userSetKey(userID)

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.draftKey(userID, projectID), payload, r.ttl)
	pipe.SAdd(ctx, setKey, projectID)
	pipe.Expire(ctx, setKey, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Load returns the pending draft, or domain.ErrNotFound when there is none.
func (r *Repo) Load(ctx context.Context, userID, projectID string) (domain.ProjectUpdate, error) {
	payload, err := r.client.Get(ctx, r.draftKey(userID, projectID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}

	var patch domain.ProjectUpdate
	if err := json.Unmarshal(payload, &patch); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return patch, nil
}

// Clear removes the pending draft, typically after a successful flush.
// Clearing a nonexistent draft is a no-op.
func (r *Repo) Clear(ctx context.Context, userID, projectID string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.draftKey(userID, projectID))
	pipe.SRem(ctx, r.userSetKey(userID), projectID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

// PendingIDs lists the project IDs that still have an unflushed draft.
func (r *Repo) PendingIDs(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, r.userSetKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	return ids, nil
}

func (r *Repo) draftKey(userID, projectID string) string {
	return draftKeyPrefix + userID + ":" + projectID
}

func (r *Repo) userSetKey(userID string) string {
	return userDraftSetPrefix + userID
}
