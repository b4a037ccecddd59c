package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// The directory serves a single operating region, so every open/closed
// decision is made in its civil timezone. DST handling comes from the host
// timezone database.
const DIRECTORY_TIMEZONE = "America/Vancouver"

// HTTP server config
const HTTP_SERVER_ADDRESS = ":8080"

// Listings Refresher config
const LISTINGS_REFRESHER_SCHEDULE_MINUTES = 60

// Community directory feed
const DIRECTORY_FEED_ENDPOINT_BASE_V1 = "https://feed.kelownacommunityservices.ca/api/v1"
const DIRECTORY_FEED_API_KEY = ""

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const DIRECTORY_FEED_RESPONSE_RESOURCE = "directory_feed_response.json"
const STATIC_RESOURCES_RESOURCE = "static_resources.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
