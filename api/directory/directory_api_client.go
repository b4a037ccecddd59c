package directory

import (
	"fmt"

	"github.com/lindseystead/kelowna-resource-finder-sub001/api"
	"github.com/lindseystead/kelowna-resource-finder-sub001/models"
)

// DirectoryApiClient talks to the upstream community-services feed through
// the shared HTTPClient.
type DirectoryApiClient struct {
	*api.HTTPClient
}

// NewDirectoryApiClient creates a new instance of DirectoryApiClient
func NewDirectoryApiClient(httpClient *api.HTTPClient) *DirectoryApiClient {
	return &DirectoryApiClient{
		HTTPClient: httpClient,
	}
}

// SetAPIKey attaches the feed's key header to every request. An empty key
// clears it.
func (c *DirectoryApiClient) SetAPIKey(apiKey string) {
	c.SetDefaultHeader("X-Api-Key", apiKey)
}

// FetchListings retrieves one page of directory listings.
func (c *DirectoryApiClient) FetchListings(page int) (*models.DirectoryFeedResponse, error) {
	var response models.DirectoryFeedResponse
	endpoint := fmt.Sprintf("/resources?page=%d", page)
	if err := c.Request("GET", endpoint, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// FetchListing retrieves a single listing by its resource ID.
func (c *DirectoryApiClient) FetchListing(resourceID string) (*models.Resource, error) {
	var response models.Resource
	if err := c.Request("GET", "/resources/"+resourceID, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
