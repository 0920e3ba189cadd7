package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"crimecam-core/internal/domain/entity"
)

// RedisReportStore persists shareable report records as JSON blobs with a
// bounded lifetime.
type RedisReportStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisReportStore(client *redis.Client, ttl time.Duration) *RedisReportStore {
	return &RedisReportStore{
		client: client,
		ttl:    ttl,
	}
}

func reportKey(id string) string { return "report:" + id }

func (s *RedisReportStore) Save(ctx context.Context, r *entity.StoredReport) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal stored report: %w", err)
	}
	if err := s.client.Set(ctx, reportKey(r.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save report %s: %w", r.ID, err)
	}
	return nil
}

func (s *RedisReportStore) Get(ctx context.Context, id string) (*entity.StoredReport, error) {
	val, err := s.client.Get(ctx, reportKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, entity.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load report %s: %w", id, err)
	}
	var r entity.StoredReport
	if err := json.Unmarshal([]byte(val), &r); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", id, err)
	}
	return &r, nil
}
