package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lindseystead/kelowna-resource-finder-sub001/models"
	services "github.com/lindseystead/kelowna-resource-finder-sub001/service"
)

const (
	LAT_QUERY_ARG      = "lat"
	LON_QUERY_ARG      = "lon"
	RADIUS_QUERY_ARG   = "radius"
	CATEGORY_QUERY_ARG = "category"
	VERBOSE_QUERY_ARG  = "verbose"
)

// MinifiedResource is the small form returned when verbose=false.
type MinifiedResource struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Address      string `json:"address"`
	IsOpen       bool   `json:"is_open"`
	Status       string `json:"status"`
	NextOpenTime string `json:"next_open_time,omitempty"`
}

type ResourceHandler struct {
	resourceService *services.ResourceService
}

func NewResourceHandler(resourceService *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// GetResources handles GET /v1/resources. With lat/lon/radius present it
// serves a nearby query; otherwise the whole directory, optionally filtered
// by category. Results arrive already ordered open-first.
func (h *ResourceHandler) GetResources(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	vals := r.URL.Query()
	category := vals.Get(CATEGORY_QUERY_ARG)
	verbose := false
	if v := vals.Get(VERBOSE_QUERY_ARG); v != "" {
		verbose, _ = strconv.ParseBool(v)
	}

	// 2) Load listings with computed statuses
	var listings []models.ResourceWithStatus
	var err error
	if vals.Get(LAT_QUERY_ARG) != "" || vals.Get(LON_QUERY_ARG) != "" {
		lat, lon, radius, ok := h.parseGeoArgs(vals, w)
		if !ok {
			return // error already written
		}
		listings, err = h.resourceService.GetResourcesNearby(lat, lon, radius)
	} else {
		listings, err = h.resourceService.ListResources(category)
	}
	if err != nil {
		log.Println("Error loading resources:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// 3) Transform according to verbose flag and write JSON
	writeJSON(w, http.StatusOK, h.transform(listings, verbose))
}

// GetResource handles GET /v1/resources/{id}
func (h *ResourceHandler) GetResource(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["id"]
	listing, err := h.resourceService.GetResource(resourceID)
	if err != nil {
		http.Error(w, "Resource not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// UpsertResource handles POST /v1/resources
func (h *ResourceHandler) UpsertResource(w http.ResponseWriter, r *http.Request) {
	var resource models.Resource
	if err := json.NewDecoder(r.Body).Decode(&resource); err != nil {
		http.Error(w, "Invalid resource body", http.StatusBadRequest)
		return
	}
	if resource.ResourceID == "" || resource.Name == "" {
		http.Error(w, "resource_id and name are required", http.StatusBadRequest)
		return
	}

	// The hours text is stored verbatim; it is interpreted on reads.
	if err := h.resourceService.UpsertResource(resource); err != nil {
		log.Println("Error upserting resource:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DeleteResource handles DELETE /v1/resources/{id}
func (h *ResourceHandler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["id"]
	if err := h.resourceService.DeleteResource(resourceID); err != nil {
		log.Println("Error deleting resource:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Ping handles GET /ping
func (h *ResourceHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func (h *ResourceHandler) parseGeoArgs(vals url.Values, w http.ResponseWriter) (
	lat, lon, radius float64, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}

func (h *ResourceHandler) transform(listings []models.ResourceWithStatus, verbose bool) interface{} {
	if verbose {
		return listings
	}
	// minify; listings without a computed status keep an empty status text
	min := make([]MinifiedResource, 0, len(listings))
	for _, l := range listings {
		m := MinifiedResource{
			Name:     l.Resource.Name,
			Category: l.Resource.Category,
			Address:  l.Resource.Address,
		}
		if l.OpenStatus != nil {
			m.IsOpen = l.OpenStatus.IsOpen
			m.Status = l.OpenStatus.Status
			m.NextOpenTime = l.OpenStatus.NextOpenTime
		}
		min = append(min, m)
	}
	return min
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
