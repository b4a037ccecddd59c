package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"github.com/lindseystead/kelowna-resource-finder-sub001/api"
	"github.com/lindseystead/kelowna-resource-finder-sub001/api/directory"
	"github.com/lindseystead/kelowna-resource-finder-sub001/config"
	"github.com/lindseystead/kelowna-resource-finder-sub001/dao/redis"
	"github.com/lindseystead/kelowna-resource-finder-sub001/db"
	"github.com/lindseystead/kelowna-resource-finder-sub001/hours"
	"github.com/lindseystead/kelowna-resource-finder-sub001/server"
	"github.com/lindseystead/kelowna-resource-finder-sub001/server/handlers"
	services "github.com/lindseystead/kelowna-resource-finder-sub001/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient              db.RedisClient
	RedisResourceDao         *redis.RedisResourceDAO
	DirectoryClock           hours.Clock
	HoursEvaluator           *hours.Evaluator
	ResourceService          *services.ResourceService
	DirectoryAPI             directory.DirectoryAPI
	ResourceHandler          *handlers.ResourceHandler
	MuxRouter                *mux.Router
	Router                   *server.Router
	ResourceFinderHttpServer *server.ResourceFinderHttpServer
	ListingsRefresherService *services.ListingsRefresherService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis Resource DAO
	redisResourceDao := redis.NewRedisResourceDAO(redisClient)

	// The clock must come from the host timezone database; a load failure is
	// fatal because a guessed offset would misclassify every listing.
	directoryClock, err := hours.NewLocationClock(config.DIRECTORY_TIMEZONE)
	if err != nil {
		panic(fmt.Sprintf("Failed to load directory timezone: %v", err))
	}
	hoursEvaluator := hours.NewEvaluator(directoryClock)

	// Initialize directory feed client - fixture-backed mock outside prod
	var directoryAPI directory.DirectoryAPI
	if env != "prod" {
		directoryAPI = directory.NewDirectoryApiClientMock(
			config.GetResourcePath(config.DIRECTORY_FEED_RESPONSE_RESOURCE))
		log.Printf("Using mock directory feed api")
	} else {
		log.Printf("Using prod directory feed api")
		httpClient := api.NewHTTPClient(config.DIRECTORY_FEED_ENDPOINT_BASE_V1)

		client := directory.NewDirectoryApiClient(httpClient)
		client.SetAPIKey(config.DIRECTORY_FEED_API_KEY)
		directoryAPI = client
	}

	// Initialize service layer
	resourceService := services.NewResourceService(redisResourceDao, hoursEvaluator)

	// Initialize resource handler
	resourceHandler := handlers.NewResourceHandler(resourceService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(resourceHandler, muxRouter)

	// Initialize resource finder server
	resourceFinderHttpServer := server.NewResourceFinderHttpServer(router, muxRouter, config.HTTP_SERVER_ADDRESS)

	listingsRefresherService := services.NewListingsRefresherService(redisResourceDao, directoryAPI)

	return &Container{
		RedisClient:              redisClient,
		RedisResourceDao:         redisResourceDao,
		DirectoryClock:           directoryClock,
		HoursEvaluator:           hoursEvaluator,
		ResourceService:          resourceService,
		DirectoryAPI:             directoryAPI,
		ResourceHandler:          resourceHandler,
		MuxRouter:                muxRouter,
		Router:                   router,
		ResourceFinderHttpServer: resourceFinderHttpServer,
		ListingsRefresherService: listingsRefresherService,
	}
}
