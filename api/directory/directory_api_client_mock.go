package directory

import (
	"fmt"

	"github.com/lindseystead/kelowna-resource-finder-sub001/models"
	"github.com/lindseystead/kelowna-resource-finder-sub001/util"
)

// DirectoryApiClientMock serves the feed from a JSON fixture on disk, for
// local development without the upstream feed.
type DirectoryApiClientMock struct {
	fixturePath string
}

// NewDirectoryApiClientMock creates a mock backed by the given fixture file.
func NewDirectoryApiClientMock(fixturePath string) *DirectoryApiClientMock {
	return &DirectoryApiClientMock{fixturePath: fixturePath}
}

// FetchListings returns the fixture feed regardless of the requested page.
func (c *DirectoryApiClientMock) FetchListings(page int) (*models.DirectoryFeedResponse, error) {
	response, err := util.ReadDirectoryFeedFromJSON(c.fixturePath)
	if err != nil {
		fmt.Println("Could not read directory feed response from json")
		return nil, err
	}
	return response, nil
}

// FetchListing returns the first fixture listing with a matching ID.
func (c *DirectoryApiClientMock) FetchListing(resourceID string) (*models.Resource, error) {
	response, err := util.ReadDirectoryFeedFromJSON(c.fixturePath)
	if err != nil {
		fmt.Println("Could not read directory feed response from json")
		return nil, err
	}
	for _, r := range response.Resources {
		if r.ResourceID == resourceID {
			resource := r
			return &resource, nil
		}
	}
	return nil, fmt.Errorf("no fixture listing with id %s", resourceID)
}

// SetAPIKey is a no-op for the mock.
func (c *DirectoryApiClientMock) SetAPIKey(apiKey string) {}
