package audit

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/navcare/navcare/internal/platform/auth"
)

type Handler struct {
	svc *Service
	log zerolog.Logger
}

func NewHandler(svc *Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole("admin", "navigator", "clinician"))
	readGroup.GET("/audit/stats", h.Stats)

	writeGroup := api.Group("", auth.RequireRole("admin", "navigator"))
	writeGroup.POST("/audit/fix-dates", h.FixDates)
	writeGroup.POST("/audit/merge-duplicates", h.MergeDuplicates)
	writeGroup.DELETE("/audit/fix-duplicates", h.PurgeDuplicates)
}

type statsResponse struct {
	Success    bool                `json:"success"`
	Stats      Stats               `json:"stats"`
	Duplicates []*DuplicateCluster `json:"duplicates"`
}

type actionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Fixed   int    `json:"fixed,omitempty"`
	Merged  int    `json:"merged,omitempty"`
	Deleted int    `json:"deleted,omitempty"`
	Failed  int    `json:"failed,omitempty"`
}

// Stats runs a scan. A store failure degrades to zero-valued stats with
// success:false so the dashboard still renders.
func (h *Handler) Stats(c echo.Context) error {
	report, err := h.svc.Scan(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("integrity scan failed")
		return c.JSON(http.StatusOK, statsResponse{
			Success:    false,
			Duplicates: []*DuplicateCluster{},
		})
	}
	return c.JSON(http.StatusOK, statsResponse{
		Success:    true,
		Stats:      report.Stats,
		Duplicates: report.Duplicates,
	})
}

func (h *Handler) FixDates(c echo.Context) error {
	fixed, err := h.svc.FixInvertedDates(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, actionResponse{
			Success: false,
			Message: "could not fix inverted dates",
		})
	}
	return c.JSON(http.StatusOK, actionResponse{
		Success: true,
		Message: fmt.Sprintf("%d followups with inverted dates fixed", fixed),
		Fixed:   fixed,
	})
}

func (h *Handler) MergeDuplicates(c echo.Context) error {
	res, err := h.svc.MergeDuplicates(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, actionResponse{
			Success: false,
			Message: "could not merge duplicates",
		})
	}
	return c.JSON(http.StatusOK, actionResponse{
		Success: true,
		Message: fmt.Sprintf("%d clusters merged, %d rows absorbed, %d failed", res.Clusters, res.Merged, res.Failed),
		Merged:  res.Merged,
		Failed:  res.Failed,
	})
}

func (h *Handler) PurgeDuplicates(c echo.Context) error {
	res, err := h.svc.PurgeDuplicates(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, actionResponse{
			Success: false,
			Message: "could not purge duplicates",
		})
	}
	return c.JSON(http.StatusOK, actionResponse{
		Success: true,
		Message: fmt.Sprintf("%d clusters purged, %d rows deleted, %d failed", res.Clusters, res.Deleted, res.Failed),
		Deleted: res.Deleted,
		Failed:  res.Failed,
	})
}
