package directory

import (
	"github.com/lindseystead/kelowna-resource-finder-sub001/models"
)

// DirectoryAPI defines the interface for the upstream community-services
// feed the refresher imports listings from.
type DirectoryAPI interface {
	FetchListings(page int) (*models.DirectoryFeedResponse, error)
	FetchListing(resourceID string) (*models.Resource, error)
	SetAPIKey(apiKey string)
}
