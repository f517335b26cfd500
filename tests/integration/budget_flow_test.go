package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestBudgetLifecycle(t *testing.T) {
	app := setupApp(t)
	token := app.registerUser(t, "owner", "password123")

	// Create a budget.
	rec := app.request("POST", "/api/budget/create",
		`{"name":"Test","gross_income":"1000","month_duration":"1"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("create budget failed: %d %s", rec.Code, rec.Body.String())
	}
	budget := parseJSON(t, rec)["budget"].(map[string]interface{})
	if budget["gross_income"] != "$1,000.00" {
		t.Errorf("expected gross income $1,000.00, got %v", budget["gross_income"])
	}
	budgetID := budget["id"].(float64)

	// Add an item.
	rec = app.request("POST", "/api/budget/item/create",
		fmt.Sprintf(`{"name":"Rent","category":"bills","total":"1200","budget_id":%v}`, budgetID), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("create item failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	itemID := result["budget_item_id"].(float64)
	items := result["budget"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0].(map[string]interface{})
	if item["total"] != "$1,200.00" || item["category"] != "bills" {
		t.Errorf("unexpected item: %v", item)
	}

	// Edit the budget partially.
	rec = app.request("POST", "/api/budget/edit",
		fmt.Sprintf(`{"budget_id":%v,"gross_income":2000}`, budgetID), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("edit budget failed: %d %s", rec.Code, rec.Body.String())
	}
	budget = parseJSON(t, rec)["budget"].(map[string]interface{})
	if budget["gross_income"] != "$2,000.00" {
		t.Errorf("expected gross income $2,000.00, got %v", budget["gross_income"])
	}
	if budget["name"] != "Test" || budget["month_duration"].(float64) != 1 {
		t.Errorf("untouched attributes changed: %v", budget)
	}

	// Edit the item.
	rec = app.request("POST", "/api/budget/item/edit",
		fmt.Sprintf(`{"budget_id":%v,"item_id":%v,"total":"1300"}`, budgetID, itemID), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("edit item failed: %d %s", rec.Code, rec.Body.String())
	}

	// Delete the item.
	rec = app.request("POST", "/api/budget/item/delete",
		fmt.Sprintf(`{"item_id":%v,"budget_id":%v}`, itemID, budgetID), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete item failed: %d %s", rec.Code, rec.Body.String())
	}
	message := parseJSON(t, rec)["message"].(string)
	want := "Budget item in Category: 'bills' and with Name: 'Rent' and its contents has been deleted."
	if message != want {
		t.Errorf("expected %q, got %q", want, message)
	}

	// Delete the budget.
	rec = app.request("POST", "/api/budget/delete",
		fmt.Sprintf(`{"budget_id":%v}`, budgetID), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete budget failed: %d %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["message"] != "Budget 'Test' and its contents has been deleted" {
		t.Errorf("unexpected confirmation: %s", rec.Body.String())
	}

	// Gone now.
	rec = app.request("GET", fmt.Sprintf("/api/budget/%v", budgetID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get budget failed: %d %s", rec.Code, rec.Body.String())
	}
	gone := parseJSON(t, rec)["budget"].(map[string]interface{})
	if len(gone) != 0 {
		t.Errorf("expected empty object after delete, got %v", gone)
	}
}

func TestOwnershipIsolation(t *testing.T) {
	app := setupApp(t)
	ownerToken := app.registerUser(t, "owner", "password123")
	strangerToken := app.registerUser(t, "stranger", "password123")

	rec := app.request("POST", "/api/budget/create",
		`{"name":"Private","gross_income":"500","month_duration":"12"}`, ownerToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("create budget failed: %d %s", rec.Code, rec.Body.String())
	}
	budgetID := parseJSON(t, rec)["budget"].(map[string]interface{})["id"].(float64)

	// Foreign reads come back as an empty object, not an error.
	rec = app.request("GET", fmt.Sprintf("/api/budget/%v", budgetID), "", strangerToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("get budget failed: %d %s", rec.Code, rec.Body.String())
	}
	budget := parseJSON(t, rec)["budget"].(map[string]interface{})
	if len(budget) != 0 {
		t.Errorf("foreign budget leaked: %v", budget)
	}

	// Foreign writes fail with the ownership message.
	rec = app.request("POST", "/api/budget/item/create",
		fmt.Sprintf(`{"name":"Sneaky","category":"bills","total":"1","budget_id":%v}`, budgetID), strangerToken)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["message"] != "Invalid budget." {
		t.Errorf("unexpected message: %s", rec.Body.String())
	}

	// Same name under a different owner is allowed.
	rec = app.request("POST", "/api/budget/create",
		`{"name":"Private","gross_income":"500","month_duration":"12"}`, strangerToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected same name under other owner to succeed: %d %s", rec.Code, rec.Body.String())
	}

	// Duplicate under the same owner is rejected.
	rec = app.request("POST", "/api/budget/create",
		`{"name":"Private","gross_income":"500","month_duration":"12"}`, ownerToken)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["message"] != "You already have a budget with that name." {
		t.Errorf("unexpected message: %s", rec.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := setupApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/budgets"},
		{"GET", "/api/budget/1"},
		{"POST", "/api/budget/create"},
		{"POST", "/api/budget/edit"},
		{"POST", "/api/budget/delete"},
		{"GET", "/api/budget/item/categories"},
		{"POST", "/api/budget/item/create"},
		{"POST", "/api/budget/item/edit"},
		{"POST", "/api/budget/item/delete"},
		{"GET", "/api/auth/authenticated"},
	}
	for _, p := range paths {
		rec := app.request(p.method, p.path, "{}", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", p.method, p.path, rec.Code)
			continue
		}
		if parseJSON(t, rec)["message"] != "You must be authenticated to use this route." {
			t.Errorf("%s %s: unexpected body %s", p.method, p.path, rec.Body.String())
		}
	}
}

func TestListBudgets(t *testing.T) {
	app := setupApp(t)
	token := app.registerUser(t, "lister", "password123")

	rec := app.request("GET", "/api/budgets", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	budgets := parseJSON(t, rec)["budgets"].([]interface{})
	if len(budgets) != 0 {
		t.Fatalf("expected empty list, got %d", len(budgets))
	}

	for _, name := range []string{"First", "Second", "Third"} {
		rec = app.request("POST", "/api/budget/create",
			fmt.Sprintf(`{"name":%q,"gross_income":"100","month_duration":"1"}`, name), token)
		if rec.Code != http.StatusOK {
			t.Fatalf("create %s failed: %d %s", name, rec.Code, rec.Body.String())
		}
	}

	rec = app.request("GET", "/api/budgets", "", token)
	budgets = parseJSON(t, rec)["budgets"].([]interface{})
	if len(budgets) != 3 {
		t.Fatalf("expected 3 budgets, got %d", len(budgets))
	}
	for i, name := range []string{"First", "Second", "Third"} {
		b := budgets[i].(map[string]interface{})
		if b["name"] != name {
			t.Errorf("expected budget %d to be %q, got %v", i, name, b["name"])
		}
	}
}
