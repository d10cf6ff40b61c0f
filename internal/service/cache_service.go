package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const chapitreDetailTTL = 5 * time.Minute

// ChapitreCache is what the entity services need from the cache layer.
// *CacheService implements it over Redis; tests substitute an in-memory
// map to observe hits and evictions.
type ChapitreCache interface {
	GetChapitreDetail(ctx context.Context, id uint) (map[string]any, bool)
	SetChapitreDetail(ctx context.Context, id uint, payload map[string]any)
	InvalidateChapitre(ctx context.Context, id uint)
}

// CacheService keeps the assembled chapter-detail payload in Redis; every
// mutation under a chapter invalidates its entry. A nil client disables
// caching (tests, minimal deployments).
type CacheService struct {
	Redis *redis.Client
}

func NewCacheService(rdb *redis.Client) *CacheService {
	return &CacheService{Redis: rdb}
}

func chapitreDetailKey(id uint) string {
	return fmt.Sprintf("chapitre:detail:%d", id)
}

func (s *CacheService) GetChapitreDetail(ctx context.Context, id uint) (map[string]any, bool) {
	if s == nil || s.Redis == nil {
		return nil, false
	}
	raw, err := s.Redis.Get(ctx, chapitreDetailKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	return payload, true
}

func (s *CacheService) SetChapitreDetail(ctx context.Context, id uint, payload map[string]any) {
	if s == nil || s.Redis == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	s.Redis.Set(ctx, chapitreDetailKey(id), raw, chapitreDetailTTL)
}

func (s *CacheService) InvalidateChapitre(ctx context.Context, id uint) {
	if s == nil || s.Redis == nil {
		return
	}
	s.Redis.Del(ctx, chapitreDetailKey(id))
}
