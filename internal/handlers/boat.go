package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pleone55/CS493-Final/internal/dto"
	apierrors "github.com/pleone55/CS493-Final/internal/errors"
	"github.com/pleone55/CS493-Final/internal/middleware"
	"github.com/pleone55/CS493-Final/internal/services"
)

type BoatHandler struct {
	service *services.BoatService
}

func NewBoatHandler(service *services.BoatService) *BoatHandler {
	return &BoatHandler{
		service: service,
	}
}

// CreateBoat creates a boat owned by the caller
func (h *BoatHandler) CreateBoat(c *gin.Context) {
	if !isJSONRequest(c) {
		apierrors.UnsupportedMediaType(c)
		return
	}
	owner, exists := middleware.GetOwner(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req struct {
		Name   string  `json:"name"`
		Type   string  `json:"type"`
		Length float64 `json:"length"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.Name == "" || req.Type == "" || req.Length == 0 {
		apierrors.BadRequest(c, missingAttributesMessage)
		return
	}

	boat, err := h.service.Create(req.Name, req.Type, req.Length, owner)
	if err != nil {
		apierrors.InternalError(c, "Could not create boat")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBoatDTO(*boat, requestBaseURL(c)))
}

// ListBoats returns one page of the caller's boats
func (h *BoatHandler) ListBoats(c *gin.Context) {
	owner, exists := middleware.GetOwner(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	boats, next, err := h.service.List(owner, c.Query("cursor"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCursor) {
			apierrors.BadRequest(c, "Invalid pagination cursor")
			return
		}
		apierrors.InternalError(c, "Could not receive boats")
		return
	}

	c.JSON(http.StatusOK, dto.ToBoatListResponse(boats, requestBaseURL(c), next))
}

// GetBoat returns a single boat by ID. JSON is the only supported
// representation.
func (h *BoatHandler) GetBoat(c *gin.Context) {
	id, ok := parseID(c.Param("boat_id"))
	if !ok {
		apierrors.NotFound(c, "No boat with this boat_id exists.")
		return
	}
	if !acceptsJSON(c) {
		apierrors.NotAcceptable(c)
		return
	}

	boat, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrBoatNotFound) {
			apierrors.NotFound(c, "No boat with this boat_id exists.")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToBoatDTO(*boat, requestBaseURL(c)))
}

// PatchBoat updates the fields present in the body
func (h *BoatHandler) PatchBoat(c *gin.Context) {
	h.updateBoat(c, false)
}

// PutBoat replaces all mutable fields
func (h *BoatHandler) PutBoat(c *gin.Context) {
	h.updateBoat(c, true)
}

func (h *BoatHandler) updateBoat(c *gin.Context, full bool) {
	if !isJSONRequest(c) {
		apierrors.UnsupportedMediaType(c)
		return
	}
	owner, exists := middleware.GetOwner(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}
	id, ok := parseID(c.Param("boat_id"))
	if !ok {
		apierrors.NotFound(c, "No boat with boat_id exists")
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if _, present := body["owner"]; present {
		apierrors.BadRequest(c, "Cannot update the owner of the boat.")
		return
	}

	update := services.BoatUpdate{}
	if v, ok := stringField(body, "name"); ok {
		update.Name = &v
	}
	if v, ok := stringField(body, "type"); ok {
		update.Type = &v
	}
	if v, ok := numberField(body, "length"); ok {
		update.Length = &v
	}

	if err := h.service.Update(id, owner, update, full); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingAttributes):
			apierrors.BadRequest(c, missingAttributesMessage)
		case errors.Is(err, services.ErrBoatNotFound):
			apierrors.NotFound(c, "No boat with boat_id exists")
		case errors.Is(err, services.ErrNotOwner):
			apierrors.Forbidden(c, "Boat is owned by someone else")
		default:
			apierrors.InternalError(c, "Could not update boat entity")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteBoat removes a boat owned by the caller, detaching its containers
func (h *BoatHandler) DeleteBoat(c *gin.Context) {
	owner, exists := middleware.GetOwner(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}
	id, ok := parseID(c.Param("boat_id"))
	if !ok {
		apierrors.NotFound(c, "No boat with this boat_id exists")
		return
	}

	if err := h.service.Delete(id, owner); err != nil {
		switch {
		case errors.Is(err, services.ErrBoatNotFound):
			apierrors.NotFound(c, "No boat with this boat_id exists")
		case errors.Is(err, services.ErrNotOwner):
			apierrors.Forbidden(c, "Boat is owned by someone else")
		default:
			apierrors.InternalError(c, "Could not delete boat")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// AttachContainer links a container to a boat on both sides
func (h *BoatHandler) AttachContainer(c *gin.Context) {
	boatID, ok1 := parseID(c.Param("boat_id"))
	containerID, ok2 := parseID(c.Param("container_id"))
	if !ok1 || !ok2 {
		apierrors.NotFound(c, "No boat with boat_id and/or container with container_id exists")
		return
	}

	if err := h.service.AttachContainer(boatID, containerID, requestBaseURL(c)); err != nil {
		switch {
		case errors.Is(err, services.ErrLinkNotFound):
			apierrors.NotFound(c, "No boat with boat_id and/or container with container_id exists")
		case errors.Is(err, services.ErrAlreadyAssigned):
			apierrors.Forbidden(c, "Container is already assigned a boat. Remove before assigning.")
		default:
			apierrors.InternalError(c, "Could not add container and/or boat")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// DetachContainer removes the link from both sides
func (h *BoatHandler) DetachContainer(c *gin.Context) {
	boatID, ok1 := parseID(c.Param("boat_id"))
	containerID, ok2 := parseID(c.Param("container_id"))
	if !ok1 || !ok2 {
		apierrors.NotFound(c, "No boat with boat_id and/or container with container_id exists")
		return
	}

	if err := h.service.DetachContainer(boatID, containerID); err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			apierrors.NotFound(c, "No boat with boat_id and/or container with container_id exists")
			return
		}
		apierrors.InternalError(c, "Could not remove container and/or boat")
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAll rejects collection-level deletes
func (h *BoatHandler) DeleteAll(c *gin.Context) {
	apierrors.MethodNotAllowed(c, "GET, POST", "Cannot delete all boats")
}

// UpdateAll rejects collection-level updates
func (h *BoatHandler) UpdateAll(c *gin.Context) {
	apierrors.MethodNotAllowed(c, "GET, POST", "Cannot update all boats")
}
