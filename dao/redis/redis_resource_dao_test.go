package redis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/lindseystead/kelowna-resource-finder-sub001/db"
	"github.com/lindseystead/kelowna-resource-finder-sub001/models"
)

func TestRedisResourceDAO_UpsertResource_Success(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisResourceDAO(mockClient)

	testResource := models.Resource{
		ResourceID: "resource123",
		Name:       "Kelowna Food Bank",
		Category:   "food",
		Lat:        49.8844,
		Lng:        -119.4944,
		Hours:      "Mon-Fri 9am-5pm",
	}

	// Act
	err := dao.UpsertResource(testResource)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Verify data stored in mock Redis
	expectedKey := "resources_geo_place_v1:resource123"
	storedValue, err := mockClient.Get(expectedKey)
	if err != nil {
		t.Fatalf("Expected data to be stored, got error: %v", err)
	}

	var storedResource models.Resource
	if err := json.Unmarshal([]byte(storedValue), &storedResource); err != nil {
		t.Fatalf("Failed to unmarshal stored resource data: %v", err)
	}

	if storedResource.ResourceID != testResource.ResourceID {
		t.Errorf("Expected ResourceID %s, got %s", testResource.ResourceID, storedResource.ResourceID)
	}
	if storedResource.Hours != testResource.Hours {
		t.Errorf("Expected Hours %q, got %q", testResource.Hours, storedResource.Hours)
	}
}

func TestRedisResourceDAO_GetResource(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisResourceDAO(mockClient)

	testResource := models.Resource{ResourceID: "resource123", Name: "Community Kitchen"}
	_ = dao.UpsertResource(testResource)

	// Act
	got, err := dao.GetResource("resource123")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Name != "Community Kitchen" {
		t.Errorf("Expected name 'Community Kitchen', got %s", got.Name)
	}

	if _, err := dao.GetResource("missing"); err == nil {
		t.Error("Expected an error for a missing resource")
	}
}

func TestRedisResourceDAO_GetNearbyResources_Success(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisResourceDAO(mockClient)

	testResource1 := models.Resource{
		ResourceID: "resource123",
		Name:       "Test Resource 1",
		Lat:        49.8844,
		Lng:        -119.4944,
	}
	testResource2 := models.Resource{
		ResourceID: "resource456",
		Name:       "Test Resource 2",
		Lat:        49.8850,
		Lng:        -119.4930,
	}
	_ = dao.UpsertResource(testResource1)
	_ = dao.UpsertResource(testResource2)

	// Act
	resources, err := dao.GetNearbyResources(49.8844, -119.4944, 10)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(resources) != 2 {
		t.Errorf("Expected 2 resources, got %d", len(resources))
	}

	expectedIDs := map[string]bool{
		"resource123": true,
		"resource456": true,
	}
	for _, r := range resources {
		if !expectedIDs[r.ResourceID] {
			t.Errorf("Unexpected resource ID: %s", r.ResourceID)
		}
	}
}

func TestRedisResourceDAO_GetNearbyResources_NoResults(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisResourceDAO(mockClient)

	// Act
	resources, err := dao.GetNearbyResources(49.8844, -119.4944, 10)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(resources) != 0 {
		t.Errorf("Expected no resources, got %d", len(resources))
	}
}

func TestRedisResourceDAO_ListResourcesByCategory(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisResourceDAO(mockClient)

	_ = dao.UpsertResource(models.Resource{ResourceID: "a", Name: "Food Bank", Category: "food"})
	_ = dao.UpsertResource(models.Resource{ResourceID: "b", Name: "Shelter", Category: "housing"})
	_ = dao.UpsertResource(models.Resource{ResourceID: "c", Name: "Community Fridge", Category: "Food"})

	// Act
	matched, err := dao.ListResourcesByCategory("food")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(matched) != 2 {
		t.Errorf("Expected 2 food resources, got %d", len(matched))
	}
	for _, r := range matched {
		if r.Category != "food" && r.Category != "Food" {
			t.Errorf("Unexpected category %s", r.Category)
		}
	}
}

func TestRedisResourceDAO_ListAllResourceIDs(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisResourceDAO(mockClient)

	_ = dao.UpsertResource(models.Resource{ResourceID: "a"})
	_ = dao.UpsertResource(models.Resource{ResourceID: "b"})

	ids, err := dao.ListAllResourceIDs()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("Expected 2 IDs, got %d", len(ids))
	}
	seen := map[string]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("Expected IDs a and b, got %v", ids)
	}
}

func TestRedisResourceDAO_DeleteResource(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisResourceDAO(mockClient)

	_ = dao.UpsertResource(models.Resource{ResourceID: "a", Lat: 49.88, Lng: -119.49})

	// Act
	if err := dao.DeleteResource("a"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Assert
	if _, err := dao.GetResource("a"); err == nil {
		t.Error("Expected resource to be deleted")
	}
	resources, err := dao.GetNearbyResources(49.88, -119.49, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(resources) != 0 {
		t.Errorf("Expected no resources after delete, got %d", len(resources))
	}
}
