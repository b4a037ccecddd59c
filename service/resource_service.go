package services

import (
	"sort"
	"strings"

	"github.com/lindseystead/kelowna-resource-finder-sub001/dao/redis"
	"github.com/lindseystead/kelowna-resource-finder-sub001/hours"
	"github.com/lindseystead/kelowna-resource-finder-sub001/models"
)

// ResourceService serves directory listings with their computed open status
// attached, ordered so that listings open right now lead the list.
type ResourceService struct {
	resourceDao *redis.RedisResourceDAO
	evaluator   *hours.Evaluator
}

// NewResourceService constructs a new ResourceService with its dependencies.
func NewResourceService(
	resourceDao *redis.RedisResourceDAO,
	evaluator *hours.Evaluator) *ResourceService {

	return &ResourceService{
		resourceDao: resourceDao,
		evaluator:   evaluator,
	}
}

// ListResources returns all listings, optionally filtered by category,
// sorted open-first.
func (rs *ResourceService) ListResources(category string) ([]models.ResourceWithStatus, error) {
	var resources []models.Resource
	var err error
	if category != "" {
		resources, err = rs.resourceDao.ListResourcesByCategory(category)
	} else {
		resources, err = rs.resourceDao.ListAllResources()
	}
	if err != nil {
		return nil, err
	}
	return rs.withStatuses(resources), nil
}

// GetResourcesNearby returns listings within the radius (km), sorted
// open-first.
func (rs *ResourceService) GetResourcesNearby(lat, lon, radius float64) ([]models.ResourceWithStatus, error) {
	resources, err := rs.resourceDao.GetNearbyResources(lat, lon, radius)
	if err != nil {
		return nil, err
	}
	return rs.withStatuses(resources), nil
}

// GetResource returns one listing with its computed status.
func (rs *ResourceService) GetResource(resourceID string) (*models.ResourceWithStatus, error) {
	resource, err := rs.resourceDao.GetResource(resourceID)
	if err != nil {
		return nil, err
	}
	return &models.ResourceWithStatus{
		Resource:   *resource,
		OpenStatus: rs.evaluator.Evaluate(resource.Hours),
	}, nil
}

// UpsertResource stores a listing. The hours text is stored as-is; it is
// interpreted at read time, never validated here.
func (rs *ResourceService) UpsertResource(r models.Resource) error {
	return rs.resourceDao.UpsertResource(r)
}

// DeleteResource removes a listing.
func (rs *ResourceService) DeleteResource(resourceID string) error {
	return rs.resourceDao.DeleteResource(resourceID)
}

// withStatuses evaluates each listing's hours text at the current instant
// and orders the result. The name pass runs first so the status pass, being
// stable, keeps names ordered within each status tier.
func (rs *ResourceService) withStatuses(resources []models.Resource) []models.ResourceWithStatus {
	out := make([]models.ResourceWithStatus, 0, len(resources))
	for _, r := range resources {
		out = append(out, models.ResourceWithStatus{
			Resource:   r,
			OpenStatus: rs.evaluator.Evaluate(r.Hours),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Resource.Name) < strings.ToLower(out[j].Resource.Name)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return hours.CompareByOpenStatus(out[i].OpenStatus, out[j].OpenStatus) < 0
	})
	return out
}
