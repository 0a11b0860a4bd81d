package repository

import (
	"context"
	"fmt"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/constants"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/database"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
	"github.com/eshaatri/homewash-dispatch/internal/utils"
)

// nearbyGeohashPrecision yields cells of roughly 150m, enough to group
// professionals per block on the ops dashboard.
const nearbyGeohashPrecision = 7

// GeoRepo maintains the Redis geo mirror of professional positions
type GeoRepo struct {
	redisClient *database.RedisClient
}

// NewGeoRepo creates a new geo repository
func NewGeoRepo(redisClient *database.RedisClient) *GeoRepo {
	return &GeoRepo{
		redisClient: redisClient,
	}
}

// UpsertPosition records the professional's position in the geo set
func (r *GeoRepo) UpsertPosition(ctx context.Context, id string, latitude, longitude float64) error {
	err := r.redisClient.GeoAdd(ctx, constants.KeyProfessionalGeo, longitude, latitude, id)
	if err != nil {
		return fmt.Errorf("failed to upsert professional position: %w", err)
	}
	return nil
}

// RemovePosition removes the professional from the geo set
func (r *GeoRepo) RemovePosition(ctx context.Context, id string) error {
	err := r.redisClient.GeoRemove(ctx, constants.KeyProfessionalGeo, id)
	if err != nil {
		return fmt.Errorf("failed to remove professional position: %w", err)
	}
	return nil
}

// Nearby returns the professionals within radiusKm of the given point,
// closest first
func (r *GeoRepo) Nearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]*models.NearbyProfessional, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyProfessionalGeo, longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby professionals: %w", err)
	}

	nearby := make([]*models.NearbyProfessional, 0, len(locations))
	for _, loc := range locations {
		nearby = append(nearby, &models.NearbyProfessional{
			ID:         loc.Name,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			DistanceKm: loc.Dist,
			Geohash:    utils.EncodeLocation(loc.Latitude, loc.Longitude, nearbyGeohashPrecision),
		})
	}

	return nearby, nil
}
