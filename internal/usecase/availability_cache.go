package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"time"

	"restaurant-booking/internal/dto/request"
	"restaurant-booking/internal/dto/response"
	"restaurant-booking/pkg/cache"

	"go.uber.org/zap"
)

type cachedAvailabilityService struct {
	next  AvailabilityService
	store cache.Store
	ttl   time.Duration
	log   *zap.Logger
}

// NewCachedAvailabilityService serves repeated queries from store for ttl.
// Cache failures are logged and fall through to next.
func NewCachedAvailabilityService(next AvailabilityService, store cache.Store, ttl time.Duration, log *zap.Logger) AvailabilityService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return &cachedAvailabilityService{
		next:  next,
		store: store,
		ttl:   ttl,
		log:   log.With(zap.String("service", "availability_cache")),
	}
}

func availabilityCacheKey(req *request.AvailabilityRequest) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s\x00%s\x00%d", req.Date, req.Time, req.Guests)))
	return fmt.Sprintf("availability:%x", sum[:])
}

func (s *cachedAvailabilityService) CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error) {
	if req == nil {
		req = &request.AvailabilityRequest{}
	}
	key := availabilityCacheKey(req)

	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Warn("Availability cache read failed", zap.Error(err), zap.String("key", key))
	}
	if ok {
		var cached response.AvailabilityResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
		s.log.Warn("Discarding malformed availability cache entry", zap.String("key", key))
	}

	result, err := s.next.CheckAvailability(ctx, req)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		s.log.Warn("Failed to encode availability for cache", zap.Error(err))
		return result, nil
	}

	if err := s.store.Set(ctx, key, payload, s.ttl); err != nil {
		s.log.Warn("Availability cache write failed", zap.Error(err), zap.String("key", key))
	}

	return result, nil
}
