package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/mensonones/service-pro-api/internal/domain/entity"
)

const (
	// Redis key prefix for cached catalog services
	serviceCacheKeyPrefix = "catalog:service:"

	// Cached entries expire on their own even if invalidation is missed
	serviceCacheTTL = 10 * time.Minute
)

// CatalogCache is a read-through Redis cache for catalog services.
// Appointment pricing reads the service on every create and save, so the
// hot path avoids hitting Postgres for a record that rarely changes.
//
// Cache failures are never fatal: a miss or a Redis error falls back to
// the database.
type CatalogCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewCatalogCache(client *redis.Client, log *logrus.Logger) *CatalogCache {
	return &CatalogCache{
		client: client,
		log:    log,
	}
}

func (c *CatalogCache) key(id uuid.UUID) string {
	return fmt.Sprintf("%s%s", serviceCacheKeyPrefix, id)
}

// Get returns the cached service or nil on miss.
func (c *CatalogCache) Get(ctx context.Context, id uuid.UUID) *entity.Service {
	payload, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Catalog cache read failed for service %s: %+v", id, err)
		}
		return nil
	}

	var service entity.Service
	if err := json.Unmarshal(payload, &service); err != nil {
		c.log.Warnf("Catalog cache entry for service %s is corrupt, dropping: %+v", id, err)
		c.Invalidate(ctx, id)
		return nil
	}

	return &service
}

// Set stores the service, best-effort.
func (c *CatalogCache) Set(ctx context.Context, service *entity.Service) {
	payload, err := json.Marshal(service)
	if err != nil {
		c.log.Warnf("Failed to marshal service %s for cache: %+v", service.ID, err)
		return
	}

	if err := c.client.Set(ctx, c.key(service.ID), payload, serviceCacheTTL).Err(); err != nil {
		c.log.Warnf("Catalog cache write failed for service %s: %+v", service.ID, err)
	}
}

// Invalidate drops the cached entry, best-effort. Called on every catalog
// update so price edits are visible to the next pricing read.
func (c *CatalogCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Warnf("Catalog cache invalidation failed for service %s: %+v", id, err)
	}
}
