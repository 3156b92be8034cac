package helpers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) *fiber.App {
	app := fiber.New()
	handler := NewHandler(newTestService(t))
	handler.RegisterRoutes(app)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestHandleColor(t *testing.T) {
	app := setupTestApp(t)

	status, body := post(t, app, "/helpers/color", `{"text": "a"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "#613232", body["color"])

	status, _ = post(t, app, "/helpers/color", `{"text": ""}`)
	assert.Equal(t, 422, status)

	status, _ = post(t, app, "/helpers/color", `{`)
	assert.Equal(t, 400, status)
}

func TestHandleInitials(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		body   string
		status int
		want   any
	}{
		{`{"name": "Jane Doe"}`, 200, "JD"},
		{`{"name": "Madonna"}`, 200, "MA"},
		{`{"name": "J"}`, 422, nil},
		{`{"name": ""}`, 422, nil},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			status, body := post(t, app, "/helpers/initials", tt.body)
			assert.Equal(t, tt.status, status)
			if tt.want != nil {
				assert.Equal(t, tt.want, body["initials"])
			}
		})
	}
}

func TestHandleTextTransforms(t *testing.T) {
	app := setupTestApp(t)

	_, body := post(t, app, "/helpers/camel", `{"text": "Hello World"}`)
	assert.Equal(t, "helloWorld", body["result"])

	_, body = post(t, app, "/helpers/hyphenate", `{"text": "a  b c"}`)
	assert.Equal(t, "a-b-c", body["result"])
}

func TestHandlePrune(t *testing.T) {
	app := setupTestApp(t)

	status, body := post(t, app, "/helpers/prune", `{"a": "", "b": 1, "c": []}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, map[string]any{"b": float64(1)}, body)

	status, body = post(t, app, "/helpers/prune?deep=true", `{"a": {"b": ""}, "c": [1, {}]}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, map[string]any{"c": []any{float64(1)}}, body)

	status, _ = post(t, app, "/helpers/prune", `"scalar"`)
	assert.Equal(t, 400, status)
}

func TestHandleErrorMessage(t *testing.T) {
	app := setupTestApp(t)

	status, body := post(t, app, "/helpers/errors", `{"password": ["too short", "needs a digit"], "email": "taken"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "too short needs a digit", body["message"])

	status, _ = post(t, app, "/helpers/errors", `{}`)
	assert.Equal(t, 422, status)

	status, _ = post(t, app, "/helpers/errors", `[]`)
	assert.Equal(t, 400, status)
}

func TestHandleTypeOf(t *testing.T) {
	app := setupTestApp(t)

	tests := map[string]string{
		`[]`:   "array",
		`{}`:   "object",
		`"x"`:  "string",
		`1`:    "number",
		`true`: "boolean",
		`null`: "object",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			_, body := post(t, app, "/helpers/typeof", in)
			assert.Equal(t, want, body["type"])
		})
	}
}

func TestHandleFindAndMatch(t *testing.T) {
	app := setupTestApp(t)
	records := `[{"id": 1, "name": "ada"}, {"id": 2, "name": "linus"}]`

	status, body := post(t, app, "/helpers/find", `{"records": `+records+`, "key": 2}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "linus", body["record"].(map[string]any)["name"])

	status, _ = post(t, app, "/helpers/find", `{"records": `+records+`, "key": 9}`)
	assert.Equal(t, 422, status)

	status, body = post(t, app, "/helpers/match", `{"records": `+records+`, "candidates": [{"name": "ada"}], "field": "name"}`)
	assert.Equal(t, 200, status)
	assert.Len(t, body["records"], 1)

	status, _ = post(t, app, "/helpers/match", `{"records": `+records+`, "candidates": [{"id": 5}]}`)
	assert.Equal(t, 422, status)
}

func TestHandleEqualAndLast(t *testing.T) {
	app := setupTestApp(t)

	_, body := post(t, app, "/helpers/equal", `{"a": [1, 2, 3], "b": [1, 2, 3]}`)
	assert.Equal(t, true, body["equal"])

	_, body = post(t, app, "/helpers/equal", `{"a": [1, 2], "b": [2, 1]}`)
	assert.Equal(t, false, body["equal"])

	_, body = post(t, app, "/helpers/equal", `{"a": [1]}`)
	assert.Equal(t, false, body["equal"])

	status, body := post(t, app, "/helpers/last", `[1, "two", 3]`)
	assert.Equal(t, 200, status)
	assert.Equal(t, float64(3), body["item"])

	status, _ = post(t, app, "/helpers/last", `[]`)
	assert.Equal(t, 422, status)
}
