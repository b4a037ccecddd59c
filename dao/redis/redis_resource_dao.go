package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lindseystead/kelowna-resource-finder-sub001/db"
	"github.com/lindseystead/kelowna-resource-finder-sub001/models"
)

const RESOURCES_GEO_KEY_V1 = "resources_geo_v1"
const RESOURCES_GEO_PLACE_MEMBER_FORMAT_V1 = "resources_geo_place_v1:%s"

// RedisResourceDAO handles resource listing operations using Redis. Listings
// live in one geo index; each geo member key also holds the listing's JSON.
type RedisResourceDAO struct {
	client db.RedisClient
}

// NewRedisResourceDAO initializes a RedisResourceDAO with the Redis client.
func NewRedisResourceDAO(client db.RedisClient) *RedisResourceDAO {
	return &RedisResourceDAO{client: client}
}

// UpsertResource stores the resource as a geolocation with its JSON data.
func (dao *RedisResourceDAO) UpsertResource(r models.Resource) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(RESOURCES_GEO_PLACE_MEMBER_FORMAT_V1, r.ResourceID)
	return dao.client.AddLocationWithJSON(ctx, RESOURCES_GEO_KEY_V1, memberKey, r.Lat, r.Lng, r)
}

// GetResource retrieves a single resource by its ID.
func (dao *RedisResourceDAO) GetResource(resourceID string) (*models.Resource, error) {
	memberKey := fmt.Sprintf(RESOURCES_GEO_PLACE_MEMBER_FORMAT_V1, resourceID)
	data, err := dao.client.Get(memberKey)
	if err != nil {
		return nil, fmt.Errorf("[RedisResourceDAO] failed to get resource %s: %w", resourceID, err)
	}
	var r models.Resource
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resource JSON: %w", err)
	}
	return &r, nil
}

// GetNearbyResources retrieves resources within a given radius (in km).
func (dao *RedisResourceDAO) GetNearbyResources(lat, lon, radius float64) ([]models.Resource, error) {
	resourcesJSON, err := dao.client.GetLocationsWithinRadius(RESOURCES_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisResourceDAO] failed to get resources: %w", err)
	}

	resources := make([]models.Resource, len(resourcesJSON))
	for i, resourceJSON := range resourcesJSON {
		if err := json.Unmarshal([]byte(resourceJSON), &resources[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resource JSON: %w", err)
		}
	}
	return resources, nil
}

// ListAllResources returns every stored listing.
func (dao *RedisResourceDAO) ListAllResources() ([]models.Resource, error) {
	pattern := fmt.Sprintf(RESOURCES_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list resource keys: %w", err)
	}

	resources := make([]models.Resource, 0, len(keys))
	for _, key := range keys {
		data, err := dao.client.Get(key)
		if err != nil {
			// Key may have been dropped between Keys and Get.
			continue
		}
		var r models.Resource
		if err := json.Unmarshal([]byte(data), &r); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resource JSON: %w", err)
		}
		resources = append(resources, r)
	}
	return resources, nil
}

// ListResourcesByCategory returns stored listings matching the category.
func (dao *RedisResourceDAO) ListResourcesByCategory(category string) ([]models.Resource, error) {
	all, err := dao.ListAllResources()
	if err != nil {
		return nil, err
	}
	matched := make([]models.Resource, 0, len(all))
	for _, r := range all {
		if strings.EqualFold(r.Category, category) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// ListAllResourceIDs returns all resource IDs present in the geo index.
func (dao *RedisResourceDAO) ListAllResourceIDs() ([]string, error) {
	pattern := fmt.Sprintf(RESOURCES_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list resource geo keys: %w", err)
	}
	ids := make([]string, 0, len(keys))
	prefix := fmt.Sprintf(RESOURCES_GEO_PLACE_MEMBER_FORMAT_V1, "")
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// DeleteResource removes a listing from the geo index and its JSON data.
func (dao *RedisResourceDAO) DeleteResource(resourceID string) error {
	memberKey := fmt.Sprintf(RESOURCES_GEO_PLACE_MEMBER_FORMAT_V1, resourceID)
	if err := dao.client.RemoveLocation(RESOURCES_GEO_KEY_V1, memberKey); err != nil {
		return fmt.Errorf("failed to delete resource %s: %w", resourceID, err)
	}
	return nil
}
