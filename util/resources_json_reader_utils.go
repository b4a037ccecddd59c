package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/lindseystead/kelowna-resource-finder-sub001/models"
)

// ReadDirectoryFeedFromJSON loads a DirectoryFeedResponse from JSON on disk.
func ReadDirectoryFeedFromJSON(filePath string) (*models.DirectoryFeedResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.DirectoryFeedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DirectoryFeedResponse: %w", err)
	}
	return &resp, nil
}

// ReadResourceFromJSON loads a single Resource from JSON on disk.
func ReadResourceFromJSON(filePath string) (*models.Resource, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var r models.Resource
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Resource: %w", err)
	}
	return &r, nil
}

// ReadResourcesFromJSON loads a slice of Resources from JSON on disk.
func ReadResourcesFromJSON(filePath string) ([]models.Resource, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resources []models.Resource
	if err := json.Unmarshal(data, &resources); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resources: %w", err)
	}
	return resources, nil
}

// PrintDirectoryFeedPartially prints key fields of a DirectoryFeedResponse.
func PrintDirectoryFeedPartially(resp *models.DirectoryFeedResponse) {
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Printf("Page: %d/%d\n", resp.Page, resp.PageCount)
	fmt.Printf("Returned: %d/%d\n", resp.CountReturned, resp.CountTotal)
	if len(resp.Resources) > 0 {
		r := resp.Resources[0]
		fmt.Printf("First resource: %s (%s) at %s\n", r.Name, r.Category, r.Address)
	}
}
