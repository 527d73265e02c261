package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/users/register", "", fiber.Map{
		"name": "A", "email": email, "password": "p12345",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestChildrenAPI_CRUDFlow(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "a@x.com")

	resp, created := doJSON(t, app, http.MethodPost, "/api/children", token, fiber.Map{
		"name": "Mia", "age": 7,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	childID, _ := created["id"].(string)
	require.NotEmpty(t, childID)
	assert.Equal(t, "Mia", created["name"])

	resp, fetched := doJSON(t, app, http.MethodGet, "/api/children/"+childID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, childID, fetched["id"])

	resp, updated := doJSON(t, app, http.MethodPatch, "/api/children/"+childID, token, fiber.Map{
		"name": "Mia Rose",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Mia Rose", updated["name"])
	assert.Equal(t, float64(7), updated["age"])

	req, _ := doJSON(t, app, http.MethodDelete, "/api/children/"+childID, token, nil)
	assert.Equal(t, http.StatusNoContent, req.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/children/"+childID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestChildrenAPI_RequiresAuth(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/children", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

func TestChildrenAPI_ScopedToOwner(t *testing.T) {
	app := newTestApp(t)
	tokenA := registerAndLogin(t, app, "a@x.com")
	tokenB := registerAndLogin(t, app, "b@x.com")

	resp, created := doJSON(t, app, http.MethodPost, "/api/children", tokenA, fiber.Map{"name": "Mia"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	childID, _ := created["id"].(string)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/children/"+childID, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
