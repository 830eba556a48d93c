package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pleone55/CS493-Final/internal/dto"
	"github.com/stretchr/testify/require"
)

func TestLink_AttachDetachLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	boat, err := env.boatService.Create("Orca", "Sloop", 30, "u1")
	require.NoError(t, err)
	container, err := env.containerService.Create(1, 500, "grain")
	require.NoError(t, err)

	linkPath := fmt.Sprintf("/boats/%d/containers/%d", boat.ID, container.ID)

	// Attach
	w := doJSON(t, r, http.MethodPut, linkPath, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/boats/%d", boat.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	gotBoat := decodeBody[dto.BoatDTO](t, w)
	require.Len(t, gotBoat.Containers, 1)
	require.Equal(t, container.ID, gotBoat.Containers[0].ID)
	require.Equal(t, float64(500), gotBoat.Containers[0].Weight)
	require.Equal(t, fmt.Sprintf("http://example.com/containers/%d", container.ID), gotBoat.Containers[0].Self)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/containers/%d", container.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	gotContainer := decodeBody[dto.ContainerDTO](t, w)
	require.NotNil(t, gotContainer.Boat.ID)
	require.Equal(t, boat.ID, *gotContainer.Boat.ID)
	require.NotNil(t, gotContainer.Boat.Name)
	require.Equal(t, "Orca", *gotContainer.Boat.Name)

	// Attaching again is a conflict
	w = doJSON(t, r, http.MethodPut, linkPath, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Detach
	w = doJSON(t, r, http.MethodDelete, linkPath, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/boats/%d", boat.ID), nil)
	gotBoat = decodeBody[dto.BoatDTO](t, w)
	require.Empty(t, gotBoat.Containers)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/containers/%d", container.ID), nil)
	gotContainer = decodeBody[dto.ContainerDTO](t, w)
	require.Nil(t, gotContainer.Boat.ID)
	require.Nil(t, gotContainer.Boat.Name)
	require.Nil(t, gotContainer.Boat.Self)

	// The cycle is repeatable
	w = doJSON(t, r, http.MethodPut, linkPath, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestLink_AttachToSecondBoatIsConflict(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	first, err := env.boatService.Create("Orca", "Sloop", 30, "u1")
	require.NoError(t, err)
	second, err := env.boatService.Create("Beluga", "Ketch", 40, "u1")
	require.NoError(t, err)
	container, err := env.containerService.Create(1, 500, "grain")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/boats/%d/containers/%d", first.ID, container.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/boats/%d/containers/%d", second.ID, container.ID), nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// The second boat must not have picked up the container
	got, err := env.boatService.Get(second.ID)
	require.NoError(t, err)
	require.Empty(t, got.Containers)
}

func TestLink_AttachMissingEntities(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	boat, err := env.boatService.Create("Orca", "Sloop", 30, "u1")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/boats/%d/containers/99999", boat.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, "/boats/99999/containers/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLink_BoatDeleteDetachesContainers(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	boat, err := env.boatService.Create("Orca", "Sloop", 30, "u1")
	require.NoError(t, err)
	first, err := env.containerService.Create(1, 500, "grain")
	require.NoError(t, err)
	second, err := env.containerService.Create(2, 750, "coal")
	require.NoError(t, err)

	for _, id := range []uint64{first.ID, second.ID} {
		w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/boats/%d/containers/%d", boat.ID, id), nil)
		require.Equal(t, http.StatusNoContent, w.Code)
	}

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/boats/%d", boat.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	for _, id := range []uint64{first.ID, second.ID} {
		got, err := env.containerService.Get(id)
		require.NoError(t, err)
		require.Nil(t, got.Boat.ID, "container %d still references the deleted boat", id)
	}
}

func TestLink_ContainerDeleteDetachesFromBoat(t *testing.T) {
	env := setupTestEnv(t)
	r := env.router("u1")

	boat, err := env.boatService.Create("Orca", "Sloop", 30, "u1")
	require.NoError(t, err)
	container, err := env.containerService.Create(1, 500, "grain")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/boats/%d/containers/%d", boat.ID, container.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/containers/%d", container.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	got, err := env.boatService.Get(boat.ID)
	require.NoError(t, err)
	require.Empty(t, got.Containers)
}
