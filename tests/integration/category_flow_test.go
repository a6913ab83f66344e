package integration

import (
	"fmt"
	"net/http"
	"testing"

	"budgety/internal/models"
)

// createCategory creates a catalog category over HTTP and returns its ID.
func createCategory(t *testing.T, app *testApp, token, name string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/categories", fmt.Sprintf(`{"name":%q}`, name), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
	}
	category := parseJSON(t, rec)["category"].(map[string]interface{})
	return category["id"].(string)
}

// createAllocation creates a budgeted category over HTTP and returns its ID.
func createAllocation(t *testing.T, app *testApp, token, periodID, categoryName, amount string) string {
	t.Helper()
	body := fmt.Sprintf(`{"budget_period_id":%q,"category_name":%q,"amount":%q}`,
		periodID, categoryName, amount)
	rec := app.request("POST", "/api/v1/budgetedcategories", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create budgeted category failed: %d %s", rec.Code, rec.Body.String())
	}
	bc := parseJSON(t, rec)["budgeted_category"].(map[string]interface{})
	return bc["id"].(string)
}

func TestCategoryFlow_RenameFansOutToAllocations(t *testing.T) {
	app := setupApp(t)
	firstToken, _, _ := app.registerUser(t, "fanout1@test.com", "password123")
	secondToken, _, _ := app.registerUser(t, "fanout2@test.com", "password123")

	categoryID := createCategory(t, app, firstToken, "Groceries")
	createCategory(t, app, firstToken, "Rent")

	firstPeriodID := app.registerPeriod(t, firstToken, "June - 2025")
	secondPeriodID := app.registerPeriod(t, secondToken, "June - 2025")

	// Allocations in both users' periods reference the category by name
	firstAllocID := createAllocation(t, app, firstToken, firstPeriodID, "Groceries", "300.00")
	secondAllocID := createAllocation(t, app, secondToken, secondPeriodID, "Groceries", "150.00")
	rentAllocID := createAllocation(t, app, firstToken, firstPeriodID, "Rent", "900.00")

	// Rename the catalog entry
	rec := app.request("PATCH", "/api/v1/categories/"+categoryID+"/rename",
		`{"name":"Food"}`, firstToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("rename failed: %d %s", rec.Code, rec.Body.String())
	}
	renamed := parseJSON(t, rec)["category"].(map[string]interface{})
	if renamed["name"] != "Food" {
		t.Errorf("expected renamed category Food, got %v", renamed["name"])
	}

	// Every allocation that carried the old name now carries the new one
	for token, id := range map[string]string{firstToken: firstAllocID, secondToken: secondAllocID} {
		rec = app.request("GET", "/api/v1/budgetedcategories/"+id, "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("get allocation failed: %d %s", rec.Code, rec.Body.String())
		}
		bc := parseJSON(t, rec)["budgeted_category"].(map[string]interface{})
		if bc["category_name"] != "Food" {
			t.Errorf("expected category_name Food, got %v", bc["category_name"])
		}
	}

	// Allocations under other names are untouched
	rec = app.request("GET", "/api/v1/budgetedcategories/"+rentAllocID, "", firstToken)
	bc := parseJSON(t, rec)["budgeted_category"].(map[string]interface{})
	if bc["category_name"] != "Rent" {
		t.Errorf("expected category_name Rent, got %v", bc["category_name"])
	}
}

func TestCategoryFlow_DeleteLeavesAllocationNames(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "catdelete@test.com", "password123")

	categoryID := createCategory(t, app, token, "Travel")
	periodID := app.registerPeriod(t, token, "July - 2025")
	allocID := createAllocation(t, app, token, periodID, "Travel", "500.00")

	rec := app.request("DELETE", "/api/v1/categories/"+categoryID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete category failed: %d %s", rec.Code, rec.Body.String())
	}

	// The denormalized name copy survives catalog deletion
	rec = app.request("GET", "/api/v1/budgetedcategories/"+allocID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get allocation failed: %d %s", rec.Code, rec.Body.String())
	}
	bc := parseJSON(t, rec)["budgeted_category"].(map[string]interface{})
	if bc["category_name"] != "Travel" {
		t.Errorf("expected category_name Travel, got %v", bc["category_name"])
	}

	var count int64
	app.DB.Model(&models.Category{}).Where("name = ?", "Travel").Count(&count)
	if count != 0 {
		t.Errorf("expected catalog entry gone, found %d", count)
	}
}
