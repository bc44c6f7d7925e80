// file: internals/helpers/json_response_test.go
package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func doRequest(t *testing.T, h fiber.Handler) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", h)

	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal %q: %v", raw, err)
	}
	return resp.StatusCode, body
}

func TestJsonOK(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonOK(c, "saved", fiber.Map{"status": "pending"})
	})
	if status != fiber.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if body["success"] != true || body["message"] != "saved" {
		t.Errorf("body = %v", body)
	}
	if data, ok := body["data"].(map[string]any); !ok || data["status"] != "pending" {
		t.Errorf("data = %v", body["data"])
	}
}

func TestJsonErrorCode(t *testing.T) {
	cases := []struct {
		status int
		code   string
	}{
		{fiber.StatusBadRequest, "BAD_REQUEST"},
		{fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{fiber.StatusForbidden, "FORBIDDEN"},
		{fiber.StatusNotFound, "NOT_FOUND"},
		{fiber.StatusConflict, "CONFLICT"},
		{fiber.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		status, body := doRequest(t, func(c *fiber.Ctx) error {
			return JsonError(c, tc.status, "boom")
		})
		if status != tc.status {
			t.Errorf("status = %d, want %d", status, tc.status)
		}
		if body["error_code"] != tc.code {
			t.Errorf("error_code = %v, want %s", body["error_code"], tc.code)
		}
		if body["success"] != false {
			t.Errorf("success = %v, want false", body["success"])
		}
	}
}

func TestJsonValidationError(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonValidationError(c, map[string][]string{
			"score": {"must be between 0 and 4"},
		})
	})
	if status != fiber.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", status)
	}
	if body["error_code"] != "VALIDATION_ERROR" {
		t.Errorf("error_code = %v, want VALIDATION_ERROR", body["error_code"])
	}
	errs, ok := body["errors"].(map[string]any)
	if !ok {
		t.Fatalf("errors = %v", body["errors"])
	}
	if _, ok := errs["score"]; !ok {
		t.Error("field errors missing score entry")
	}
}

func TestJsonConflictCarriesData(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonConflict(c, "already assessed", fiber.Map{"care_plan_score": 18})
	})
	if status != fiber.StatusConflict {
		t.Errorf("status = %d, want 409", status)
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("data = %v, want the locked record", body["data"])
	}
	if data["care_plan_score"] != float64(18) {
		t.Errorf("care_plan_score = %v, want 18", data["care_plan_score"])
	}
}
