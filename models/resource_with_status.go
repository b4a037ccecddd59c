package models

import "github.com/lindseystead/kelowna-resource-finder-sub001/hours"

// ResourceWithStatus pairs a Resource with its computed open status. The
// status pointer is nil when the listing's hours text was missing or
// unrecognized; consumers must treat that as "unknown", not "closed".
type ResourceWithStatus struct {
	Resource   Resource          `json:"resource"`
	OpenStatus *hours.OpenStatus `json:"open_status,omitempty"`
}
