package user

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/smarket/storefront-bff/internal/gateway/gatewaytest"
)

func makeApp(stub *gatewaytest.Stub) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(stub)).RegisterAdminRoutes(app.Group("/api/v1/admin"))
	return app
}

func TestListForwardsFiltersAndPagination(t *testing.T) {
	stub := gatewaytest.NewStub()
	stub.Reply(http.MethodGet, "/users?limit=5&page=2&search=jen&status=active", Page{
		Users:      []User{{ID: "u1", Name: "Jenny", Email: "j@example.com", Status: "active"}},
		Pagination: Pagination{Page: 2, Pages: 4, HasNext: true, HasPrev: true, Total: 17},
	})
	app := makeApp(stub)

	req := httptest.NewRequest("GET", "/api/v1/admin/users?status=active&search=jen&page=2&limit=5", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var page Page
	if err := json.NewDecoder(res.Body).Decode(&page); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(page.Users) != 1 || page.Users[0].Email != "j@example.com" {
		t.Fatalf("unexpected users: %+v", page.Users)
	}
	if page.Pagination.Total != 17 || !page.Pagination.HasNext {
		t.Fatalf("pagination envelope lost: %+v", page.Pagination)
	}
}

func TestUpdateStatusRequiresStatus(t *testing.T) {
	stub := gatewaytest.NewStub()
	app := makeApp(stub)

	req := httptest.NewRequest("PUT", "/api/v1/admin/users/u1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing status, got %d", res.StatusCode)
	}
	if len(stub.Calls) != 0 {
		t.Fatalf("validation failure must not reach upstream")
	}
}

func TestUpdateStatusProxiesUpstream(t *testing.T) {
	stub := gatewaytest.NewStub()
	stub.Reply(http.MethodPut, "/users/u1", User{ID: "u1", Status: "inactive"})
	app := makeApp(stub)

	req := httptest.NewRequest("PUT", "/api/v1/admin/users/u1", strings.NewReader(`{"status":"inactive"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "inactive") {
		t.Fatalf("expected updated user in response, got %s", string(b))
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	stub := gatewaytest.NewStub()
	stub.Reply(http.MethodDelete, "/users/u9", map[string]string{"message": "deleted"})
	app := makeApp(stub)

	req := httptest.NewRequest("DELETE", "/api/v1/admin/users/u9", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without confirm, got %d", res.StatusCode)
	}
	if len(stub.CallsTo(http.MethodDelete, "/users/u9")) != 0 {
		t.Fatalf("unconfirmed delete must not reach upstream")
	}

	req = httptest.NewRequest("DELETE", "/api/v1/admin/users/u9?confirm=true", nil)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with confirm, got %d", res.StatusCode)
	}
}
