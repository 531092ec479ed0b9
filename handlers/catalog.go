package handlers

import (
	"net/http"

	"washex/models"
	"washex/services/catalog"
	"washex/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes service-definition CRUD.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var payload models.ServiceDefinition
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service payload", err.Error())
		return
	}
	created, err := h.Service.CreateService(c.Request.Context(), payload)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Service.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	activeOnly := c.Query("all") == ""
	services, err := h.Service.ListServices(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload", err.Error())
		return
	}
	svc, err := h.Service.UpdateService(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Service.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
