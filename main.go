package main

import (
	"fmt"
	"log"
	"time"

	"github.com/lindseystead/kelowna-resource-finder-sub001/config"
	"github.com/lindseystead/kelowna-resource-finder-sub001/di"
	"github.com/lindseystead/kelowna-resource-finder-sub001/util"
)

// seedStaticResources loads the bundled listings fixture into the index so a
// fresh install serves something before the first feed refresh lands.
func seedStaticResources(container *di.Container) {
	path := config.GetResourcePath(config.STATIC_RESOURCES_RESOURCE)
	resources, err := util.ReadResourcesFromJSON(path)
	if err != nil {
		log.Printf("[MAIN] No static resources seeded: %v", err)
		return
	}
	for _, r := range resources {
		if err := container.RedisResourceDao.UpsertResource(r); err != nil {
			log.Printf("[MAIN] Failed to seed resource %s: %v", r.ResourceID, err)
		}
	}
	log.Printf("[MAIN] Seeded %d static resources", len(resources))
}

func main() {
	container := di.NewContainer("prod")

	seedStaticResources(container)

	// Regenerate the admin chart from whatever is currently indexed.
	if resources, err := container.RedisResourceDao.ListAllResources(); err == nil {
		util.PlotOpenHoursHistogram(resources, time.Now().Weekday())
	}

	fmt.Println("refreshing listings!")
	if err := container.ListingsRefresherService.RefreshListings(); err != nil {
		log.Printf("[MAIN] Initial listings refresh failed: %v", err)
	}

	fmt.Println("starting periodic job!")
	container.ListingsRefresherService.StartPeriodicJob(config.LISTINGS_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.ResourceFinderHttpServer.Start()
}
