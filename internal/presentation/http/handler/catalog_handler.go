package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/application/service"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles settings catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListAll returns every pick list keyed by kind
// @Summary List Catalogs
// @Tags catalogs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /catalogs [get]
func (h *CatalogHandler) ListAll(c *gin.Context) {
	catalogs, err := h.catalogService.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Catalogs retrieved successfully", catalogs)
}

// ListByKind returns the entries of one catalog
// @Summary List Catalog Entries
// @Tags catalogs
// @Security BearerAuth
// @Produce json
// @Param kind path string true "Catalog kind (accessory, model, trim, color)"
// @Success 200 {object} response.APIResponse
// @Router /catalogs/{kind} [get]
func (h *CatalogHandler) ListByKind(c *gin.Context) {
	items, err := h.catalogService.ListByKind(c.Request.Context(), enum.CatalogKind(c.Param("kind")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Catalog retrieved successfully", items)
}

// CatalogItemRequest represents the create/update catalog entry request body
type CatalogItemRequest struct {
	Kind     string `json:"kind" binding:"required"`
	Label    string `json:"label" binding:"required"`
	Position int    `json:"position"`
	Active   *bool  `json:"active"`
}

func (r *CatalogItemRequest) input() *service.CatalogItemInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &service.CatalogItemInput{
		Kind:     enum.CatalogKind(r.Kind),
		Label:    r.Label,
		Position: r.Position,
		Active:   active,
	}
}

// Create handles adding a catalog entry
// @Summary Create Catalog Entry
// @Tags catalogs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /catalogs [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	var req CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.catalogService.CreateItem(c.Request.Context(), req.input())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Catalog entry created successfully", item)
}

// Update handles updating a catalog entry
// @Summary Update Catalog Entry
// @Tags catalogs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Catalog entry ID"
// @Success 200 {object} response.APIResponse
// @Router /catalogs/items/{id} [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid catalog entry ID")
		return
	}

	var req CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.catalogService.UpdateItem(c.Request.Context(), id, req.input())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Catalog entry updated successfully", item)
}

// Delete handles removing a catalog entry
// @Summary Delete Catalog Entry
// @Tags catalogs
// @Security BearerAuth
// @Param id path string true "Catalog entry ID"
// @Success 204
// @Router /catalogs/items/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid catalog entry ID")
		return
	}

	if err := h.catalogService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
