package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"pinboard-backend/internal/blobstore"
	"pinboard-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	return New(store.NewMemoryStores(), blobstore.NewMemoryStore(), []byte("test-secret"))
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && json.Valid(raw) {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func registerAndLogin(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()

	resp, _ := doJSON(t, app, http.MethodPost, "/api/register", "", fiber.Map{"username": username, "password": password})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/login", "", fiber.Map{"username": username, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createPlace(t *testing.T, app *fiber.App, token, name string, image []byte) string {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", name))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="bg.png"`)
	header.Set("Content-Type", "image/png")
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(image)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/places", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	id, _ := body["_id"].(string)
	require.Len(t, id, 24)
	return id
}

func TestRegisterLoginErrors(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodPost, "/api/register", "", fiber.Map{"username": "alice", "password": "pw"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/register", "", fiber.Map{"username": "alice", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "already exists")

	resp, _ = doJSON(t, app, http.MethodPost, "/api/login", "", fiber.Map{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCheckUsername(t *testing.T) {
	app := newTestApp()

	resp, body := doJSON(t, app, http.MethodGet, "/api/check_username/alice", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["exists"])

	registerAndLogin(t, app, "alice", "pw")

	resp, body = doJSON(t, app, http.MethodGet, "/api/check_username/alice", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["exists"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodGet, "/api/last_place", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/last_place", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPlacePinLifecycle(t *testing.T) {
	app := newTestApp()
	token := registerAndLogin(t, app, "alice", "pw")

	image := []byte{0x89, 'P', 'N', 'G', 1, 2, 3, 4}
	placeID := createPlace(t, app, token, "home", image)

	// Place metadata carries a relative image URL, never bytes.
	resp, body := doJSON(t, app, http.MethodGet, "/api/places/"+placeID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "home", body["name"])
	assert.Equal(t, fmt.Sprintf("/api/places/%s/image", placeID), body["image_url"])

	// Image round-trips byte for byte.
	req := httptest.NewRequest(http.MethodGet, "/api/places/"+placeID+"/image", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	imgResp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, imgResp.StatusCode)
	assert.Equal(t, "image/png", imgResp.Header.Get("Content-Type"))
	data, err := io.ReadAll(imgResp.Body)
	require.NoError(t, err)
	assert.Equal(t, image, data)

	// Create a pin, list it, delete it, list again.
	resp, body = doJSON(t, app, http.MethodPost, "/api/places/"+placeID+"/pins", token, fiber.Map{
		"name": "door", "emoji": "🚪", "color": "red", "x": 1, "y": 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	pinID, _ := body["_id"].(string)
	require.Len(t, pinID, 24)

	req = httptest.NewRequest(http.MethodGet, "/api/places/"+placeID+"/pins", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	listResp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var pins []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&pins))
	require.Len(t, pins, 1)
	assert.Equal(t, pinID, pins[0]["_id"])
	assert.Equal(t, "door", pins[0]["name"])

	resp, body = doJSON(t, app, http.MethodDelete, "/api/pins/"+pinID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "deleted", body["status"])

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/pins/"+pinID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/places/"+placeID+"/pins", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	listResp, err = app.Test(req)
	require.NoError(t, err)
	pins = nil
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&pins))
	assert.Empty(t, pins)
}

func TestUpdatePinEndpoint(t *testing.T) {
	app := newTestApp()
	token := registerAndLogin(t, app, "alice", "pw")
	placeID := createPlace(t, app, token, "home", []byte{1, 2, 3})

	resp, body := doJSON(t, app, http.MethodPost, "/api/places/"+placeID+"/pins", token, fiber.Map{
		"name": "door", "emoji": "🚪", "color": "red", "x": 1, "y": 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	pinID := body["_id"].(string)

	resp, _ = doJSON(t, app, http.MethodPut, "/api/pins/"+pinID, token, fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPut, "/api/pins/"+pinID, token, fiber.Map{"color": "blue"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "blue", body["color"])
	assert.Equal(t, "door", body["name"])

	resp, _ = doJSON(t, app, http.MethodPut, "/api/pins/badid", token, fiber.Map{"color": "blue"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHistoryEndpoints(t *testing.T) {
	app := newTestApp()
	token := registerAndLogin(t, app, "alice", "pw")
	placeID := createPlace(t, app, token, "home", []byte{1, 2, 3})

	resp, body := doJSON(t, app, http.MethodPost, "/api/places/"+placeID+"/pins", token, fiber.Map{
		"name": "door", "emoji": "🚪", "color": "red", "x": 1, "y": 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	pinID := body["_id"].(string)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/places/"+placeID+"/history", token, fiber.Map{"pin_id": pinID, "x": 3})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/places/"+placeID+"/history", token, fiber.Map{"pin_id": pinID, "x": 3, "y": 4})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/places/"+placeID+"/history", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	listResp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var entries []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&entries))
	require.Len(t, entries, 1)
	assert.Equal(t, pinID, entries[0]["pin_id"])
	assert.Equal(t, 3.0, entries[0]["x"])
}

func TestLastPlaceEndpoints(t *testing.T) {
	app := newTestApp()
	token := registerAndLogin(t, app, "alice", "pw")

	resp, body := doJSON(t, app, http.MethodGet, "/api/last_place", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, body["placeId"])
	assert.Nil(t, body["placeName"])

	resp, body = doJSON(t, app, http.MethodPut, "/api/last_place", token, fiber.Map{"placeId": "p1", "placeName": "home"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "saved", body["message"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/last_place", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "p1", body["placeId"])
	assert.Equal(t, "home", body["placeName"])

	resp, body = doJSON(t, app, http.MethodDelete, "/api/last_place", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "cleared", body["message"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/last_place", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, body["placeId"])
}

func TestMoveEndpoint(t *testing.T) {
	app := newTestApp()
	token := registerAndLogin(t, app, "alice", "pw")

	resp, _ := doJSON(t, app, http.MethodPost, "/items/item-1/move", token, fiber.Map{"newX": 5})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/items/item-1/move", token, fiber.Map{"newX": 5, "newY": 6})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["id"])
}

func TestOwnershipIsolation(t *testing.T) {
	app := newTestApp()
	aliceToken := registerAndLogin(t, app, "alice", "pw")
	bobToken := registerAndLogin(t, app, "bob", "pw")

	placeID := createPlace(t, app, aliceToken, "home", []byte{1, 2, 3})

	resp, _ := doJSON(t, app, http.MethodGet, "/api/places/"+placeID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
