package services

import (
	"log"
	"time"

	"github.com/lindseystead/kelowna-resource-finder-sub001/api/directory"
	"github.com/lindseystead/kelowna-resource-finder-sub001/dao/redis"
)

// ListingsRefresherService periodically re-imports the upstream directory
// feed so the local index does not drift from the source of truth.
type ListingsRefresherService struct {
	resourceDao  *redis.RedisResourceDAO
	directoryAPI directory.DirectoryAPI
}

// NewListingsRefresherService constructs a new Refresher with dependencies.
func NewListingsRefresherService(
	resourceDao *redis.RedisResourceDAO,
	directoryAPI directory.DirectoryAPI,
) *ListingsRefresherService {
	return &ListingsRefresherService{
		resourceDao:  resourceDao,
		directoryAPI: directoryAPI,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (lr *ListingsRefresherService) StartPeriodicJob(interval time.Duration) {
	go lr.startPeriodicJob(interval)
}

func (lr *ListingsRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[ListingsRefresherService] Running periodic listings refresher job.")
		if err := lr.RefreshListings(); err != nil {
			log.Printf("[ListingsRefresherService] RefreshListings returned error: %v", err)
		} else {
			log.Println("[ListingsRefresherService] RefreshListings completed successfully.")
		}
	}
}

// RefreshListings walks every page of the upstream feed, dedupes the
// listings and upserts them into the local index.
func (lr *ListingsRefresherService) RefreshListings() error {
	seenIDs := make(map[string]struct{})
	seenNames := make(map[string]struct{})
	imported := 0

	for page := 1; ; page++ {
		log.Printf("[ListingsRefresherService] Fetching feed page %d", page)
		feed, err := lr.directoryAPI.FetchListings(page)
		if err != nil {
			log.Printf("[ListingsRefresherService] Failed fetching page %d: %v", page, err)
			return err
		}

		log.Printf("[ListingsRefresherService] Page %d/%d: returned=%d total=%d",
			feed.Page, feed.PageCount, feed.CountReturned, feed.CountTotal)

		for _, r := range feed.Resources {
			if _, dup := seenIDs[r.ResourceID]; dup {
				log.Printf("[ListingsRefresherService] Skipping duplicate resource ID=%s", r.ResourceID)
				continue
			}
			if _, dup := seenNames[r.Name]; dup {
				log.Printf("[ListingsRefresherService] Skipping duplicate resource Name=%q", r.Name)
				continue
			}

			seenIDs[r.ResourceID] = struct{}{}
			seenNames[r.Name] = struct{}{}

			if err := lr.resourceDao.UpsertResource(r); err != nil {
				log.Printf("[ListingsRefresherService] Upsert failed for %s: %v", r.ResourceID, err)
				continue
			}
			imported++
		}

		if feed.PageCount == 0 || page >= feed.PageCount || len(feed.Resources) == 0 {
			break
		}
	}

	log.Printf("[ListingsRefresherService] Imported %d listings", imported)
	return nil
}
