package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pleone55/CS493-Final/internal/dto"
	apierrors "github.com/pleone55/CS493-Final/internal/errors"
	"github.com/pleone55/CS493-Final/internal/services"
)

type ContainerHandler struct {
	service *services.ContainerService
}

func NewContainerHandler(service *services.ContainerService) *ContainerHandler {
	return &ContainerHandler{
		service: service,
	}
}

// CreateContainer creates a container with no boat assigned
func (h *ContainerHandler) CreateContainer(c *gin.Context) {
	if !isJSONRequest(c) {
		apierrors.UnsupportedMediaType(c)
		return
	}

	var req struct {
		Number  float64 `json:"number"`
		Weight  float64 `json:"weight"`
		Content string  `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.Number == 0 || req.Weight == 0 || req.Content == "" {
		apierrors.BadRequest(c, missingAttributesMessage)
		return
	}

	container, err := h.service.Create(req.Number, req.Weight, req.Content)
	if err != nil {
		apierrors.InternalError(c, "Could not create container")
		return
	}

	c.JSON(http.StatusCreated, dto.ToContainerDTO(*container, requestBaseURL(c)))
}

// ListContainers returns one page of containers
func (h *ContainerHandler) ListContainers(c *gin.Context) {
	containers, next, err := h.service.List(c.Query("cursor"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCursor) {
			apierrors.BadRequest(c, "Invalid pagination cursor")
			return
		}
		apierrors.InternalError(c, "Could not receive containers")
		return
	}

	c.JSON(http.StatusOK, dto.ToContainerListResponse(containers, requestBaseURL(c), next))
}

// GetContainer returns a single container by ID. JSON is the only
// supported representation.
func (h *ContainerHandler) GetContainer(c *gin.Context) {
	id, ok := parseID(c.Param("container_id"))
	if !ok {
		apierrors.NotFound(c, "No container with container_id exists")
		return
	}
	if !acceptsJSON(c) {
		apierrors.NotAcceptable(c)
		return
	}

	container, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrContainerNotFound) {
			apierrors.NotFound(c, "No container with container_id exists")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToContainerDTO(*container, requestBaseURL(c)))
}

// PatchContainer updates the fields present in the body
func (h *ContainerHandler) PatchContainer(c *gin.Context) {
	h.updateContainer(c, false)
}

// PutContainer replaces all mutable fields
func (h *ContainerHandler) PutContainer(c *gin.Context) {
	h.updateContainer(c, true)
}

func (h *ContainerHandler) updateContainer(c *gin.Context, full bool) {
	if !isJSONRequest(c) {
		apierrors.UnsupportedMediaType(c)
		return
	}
	id, ok := parseID(c.Param("container_id"))
	if !ok {
		apierrors.NotFound(c, "No container with container_id exists")
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	// Clients may never set the back-reference directly.
	if _, present := body["boat"]; present {
		apierrors.BadRequest(c, "Cannot update the boat property directly.")
		return
	}

	update := services.ContainerUpdate{}
	if v, ok := numberField(body, "number"); ok {
		update.Number = &v
	}
	if v, ok := numberField(body, "weight"); ok {
		update.Weight = &v
	}
	if v, ok := stringField(body, "content"); ok {
		update.Content = &v
	}

	if err := h.service.Update(id, update, full); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingAttributes):
			apierrors.BadRequest(c, missingAttributesMessage)
		case errors.Is(err, services.ErrContainerNotFound):
			apierrors.NotFound(c, "No container with container_id exists")
		default:
			apierrors.InternalError(c, "Could not update entity")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteContainer removes a container, detaching it from its boat first
func (h *ContainerHandler) DeleteContainer(c *gin.Context) {
	id, ok := parseID(c.Param("container_id"))
	if !ok {
		apierrors.NotFound(c, "No container with container_id exists")
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrContainerNotFound) {
			apierrors.NotFound(c, "No container with container_id exists")
			return
		}
		apierrors.InternalError(c, "Could not delete container")
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAll rejects collection-level deletes
func (h *ContainerHandler) DeleteAll(c *gin.Context) {
	apierrors.MethodNotAllowed(c, "GET, POST", "Cannot delete all containers")
}

// UpdateAll rejects collection-level updates
func (h *ContainerHandler) UpdateAll(c *gin.Context) {
	apierrors.MethodNotAllowed(c, "GET, POST", "Cannot update all containers")
}
