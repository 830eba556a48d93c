package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pleone55/CS493-Final/internal/dto"
	"github.com/stretchr/testify/require"
)

func TestBoatHandler_CreateBoat(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	w := doJSON(t, r, http.MethodPost, "/boats", map[string]any{
		"name":   "Orca",
		"type":   "Sloop",
		"length": 30,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	boat := decodeBody[dto.BoatDTO](t, w)
	require.Equal(t, "Orca", boat.Name)
	require.Equal(t, "Sloop", boat.Type)
	require.Equal(t, float64(30), boat.Length)
	require.Equal(t, "u1", boat.Owner)
	require.Empty(t, boat.Containers)
	require.NotNil(t, boat.Containers, "containers must render as an empty list, not null")
	require.Equal(t, fmt.Sprintf("http://example.com/boats/%d", boat.ID), boat.Self)
}

func TestBoatHandler_CreateBoat_MissingAttributes(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	w := doJSON(t, r, http.MethodPost, "/boats", map[string]any{
		"name": "Orca",
		"type": "Sloop",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBoatHandler_CreateBoat_WrongContentType(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	req := httptest.NewRequest(http.MethodPost, "/boats", strings.NewReader("name=Orca"))
	req.Header.Set("Content-Type", "text/plain")
	w := do(t, r, req)
	require.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestBoatHandler_OwnerIsImmutable(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	boat, err := env.boatService.Create("Orca", "Sloop", 30, "u1")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/boats/%d", boat.ID), map[string]any{
		"owner": "u2",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/boats/%d", boat.ID), map[string]any{
		"name": "Orca II", "type": "Sloop", "length": 31, "owner": "u2",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	got, err := env.boatService.Get(boat.ID)
	require.NoError(t, err)
	require.Equal(t, "u1", got.Owner)
	require.Equal(t, "Orca", got.Name)
}

func TestBoatHandler_PutBoat_RequiresAllFields(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	boat, err := env.boatService.Create("Orca", "Sloop", 30, "u1")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/boats/%d", boat.ID), map[string]any{
		"name": "Orca II",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/boats/%d", boat.ID), map[string]any{
		"name": "Orca II", "type": "Ketch", "length": 35,
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	got, err := env.boatService.Get(boat.ID)
	require.NoError(t, err)
	require.Equal(t, "Orca II", got.Name)
	require.Equal(t, "Ketch", got.Type)
	require.Equal(t, float64(35), got.Length)
}

func TestBoatHandler_PatchBoat_MergesPresentFields(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	boat, err := env.boatService.Create("Orca", "Sloop", 30, "u1")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/boats/%d", boat.ID), map[string]any{
		"name": "Orca II",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	got, err := env.boatService.Get(boat.ID)
	require.NoError(t, err)
	require.Equal(t, "Orca II", got.Name)
	require.Equal(t, "Sloop", got.Type)
	require.Equal(t, float64(30), got.Length)
}

func TestBoatHandler_UpdateForbiddenForNonOwner(t *testing.T) {
	env := setupTestEnv(t)

	boat, err := env.boatService.Create("Orca", "Sloop", 30, "u1")
	require.NoError(t, err)

	r := env.router("someone-else")
	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/boats/%d", boat.ID), map[string]any{
		"name": "Stolen",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/boats/%d", boat.ID), nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestBoatHandler_GetBoat(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	boat, err := env.boatService.Create("Orca", "Sloop", 30, "u1")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/boats/%d", boat.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeBody[dto.BoatDTO](t, w)
	require.Equal(t, boat.ID, got.ID)
	require.Equal(t, "Orca", got.Name)

	w = doJSON(t, r, http.MethodGet, "/boats/99999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestBoatHandler_GetBoat_NotAcceptable(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	boat, err := env.boatService.Create("Orca", "Sloop", 30, "u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/boats/%d", boat.ID), nil)
	req.Header.Set("Accept", "text/html")
	w := do(t, r, req)
	require.Equal(t, http.StatusNotAcceptable, w.Code)
}

func TestBoatHandler_DeleteBoat(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	boat, err := env.boatService.Create("Orca", "Sloop", 30, "u1")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/boats/%d", boat.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/boats/%d", boat.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/boats/%d", boat.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestBoatHandler_CollectionMethodNotAllowed(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	w := doJSON(t, r, http.MethodDelete, "/boats", nil)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	require.Equal(t, "GET, POST", w.Header().Get("Allow"))

	w = doJSON(t, r, http.MethodPut, "/boats", nil)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	require.Equal(t, "GET, POST", w.Header().Get("Allow"))
}

func TestBoatHandler_ListBoats_Pagination(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	for i := 0; i < 12; i++ {
		_, err := env.boatService.Create(fmt.Sprintf("Boat %d", i), "Sloop", 20+float64(i), "u1")
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := env.boatService.Create(fmt.Sprintf("Other %d", i), "Yawl", 40, "u2")
		require.NoError(t, err)
	}

	seen := map[uint64]bool{}
	path := "/boats"
	pages := 0
	for {
		w := doJSON(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)
		page := decodeBody[dto.BoatListResponse](t, w)
		require.LessOrEqual(t, len(page.Items), 5)
		for _, item := range page.Items {
			require.Equal(t, "u1", item.Owner)
			require.False(t, seen[item.ID], "boat %d returned on two pages", item.ID)
			seen[item.ID] = true
		}
		pages++
		if page.Next == "" {
			break
		}
		next, err := url.Parse(page.Next)
		require.NoError(t, err)
		path = "/boats?cursor=" + url.QueryEscape(next.Query().Get("cursor"))
	}

	require.Equal(t, 3, pages)
	require.Len(t, seen, 12)
}

func TestBoatHandler_ListBoats_InvalidCursor(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	w := doJSON(t, r, http.MethodGet, "/boats?cursor=%21%21%21", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
