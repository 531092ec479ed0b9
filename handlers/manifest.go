package handlers

import (
	"fmt"
	"net/http"
	"time"

	"washex/services/manifest"
	"washex/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ManifestHandler renders pickup/delivery manifests.
type ManifestHandler struct {
	Service manifest.ManifestService
}

// NewManifestHandler creates a ManifestHandler.
func NewManifestHandler(svc manifest.ManifestService) *ManifestHandler {
	return &ManifestHandler{Service: svc}
}

// GetManifestRowsHandler handles GET /api/manifests/:kind?date=YYYY-MM-DD,
// returning the row projection as JSON for on-screen review.
func (h *ManifestHandler) GetManifestRowsHandler(c *gin.Context) {
	kind, day, ok := h.parseParams(c)
	if !ok {
		return
	}
	rows, err := h.Service.BuildRows(c.Request.Context(), kind, day)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

// GetManifestPDFHandler handles GET /api/manifests/:kind/pdf?date=YYYY-MM-DD.
func (h *ManifestHandler) GetManifestPDFHandler(c *gin.Context) {
	kind, day, ok := h.parseParams(c)
	if !ok {
		return
	}
	pdf, err := h.Service.RenderPDF(c.Request.Context(), kind, day)
	if err != nil {
		utils.GetLogger().Error("Manifest render failed", zap.String("kind", kind), zap.Error(err))
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("%s-manifest-%s.pdf", kind, day.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *ManifestHandler) parseParams(c *gin.Context) (string, time.Time, bool) {
	kind := c.Param("kind")
	dateStr := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", "expected YYYY-MM-DD")
		return "", time.Time{}, false
	}
	return kind, day, true
}
