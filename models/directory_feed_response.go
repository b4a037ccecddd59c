package models

// DirectoryFeedResponse is the top-level JSON returned by the upstream
// community-services feed, one page of listings at a time.
type DirectoryFeedResponse struct {
	Status        string     `json:"status"`
	Page          int        `json:"page"`
	PageCount     int        `json:"page_count"`
	CountTotal    int        `json:"count_total"`
	CountReturned int        `json:"count_returned"`
	Resources     []Resource `json:"resources"`
}
