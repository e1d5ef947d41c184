package handlers

import (
	"github.com/gin-gonic/gin"

	"healthtrack/internal/service"
)

type createMeasurementRequest struct {
	MeasurementDate   string   `json:"measurementDate" binding:"required"`
	WeightKg          float64  `json:"weightKg" binding:"required"`
	BodyFatPercentage *float64 `json:"bodyFatPercentage"`
}

type updateMeasurementRequest struct {
	MeasurementDate   string   `json:"measurementDate"`
	WeightKg          *float64 `json:"weightKg"`
	BodyFatPercentage *float64 `json:"bodyFatPercentage"`
}

// @Summary      List body measurements
// @Tags         body-measurement
// @Produce      json
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Items per page (max 100)"
// @Param        userId  query  string  false  "Owner filter (admin only)"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/v1/body-measurement [get]
// @Security     BearerAuth
func (h *Handler) listMeasurements(c *gin.Context) {
	page, limit := pageParams(c)
	ms, total, err := h.services.Measurements.List(c.Request.Context(), service.ListMeasurementsParams{
		Page:   page,
		Limit:  limit,
		UserID: ownerScope(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.paginated(c, "Body measurements retrieved successfully", ms, total, page, limit)
}

// @Summary      Get the recent measurement trend
// @Description  Returns the caller's bounded recent-measurements list, ascending by date.
// @Tags         body-measurement
// @Produce      json
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/v1/body-measurement/recent [get]
// @Security     BearerAuth
func (h *Handler) recentMeasurements(c *gin.Context) {
	recent, err := h.services.Measurements.Recent(c.Request.Context(), requesterID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Recent measurements retrieved successfully", recent)
}

// @Summary      Create a body measurement
// @Tags         body-measurement
// @Accept       json
// @Produce      json
// @Param        body  body  createMeasurementRequest  true  "Measurement payload"
// @Success      201  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/v1/body-measurement [post]
// @Security     BearerAuth
func (h *Handler) createMeasurement(c *gin.Context) {
	var req createMeasurementRequest
	if !h.bindJSON(c, &req) {
		return
	}
	measurementDate, ok := h.parseBodyTime(c, "measurementDate", req.MeasurementDate)
	if !ok {
		return
	}

	m, err := h.services.Measurements.Create(c.Request.Context(), service.CreateMeasurementParams{
		MeasurementDate:   measurementDate,
		WeightKg:          req.WeightKg,
		BodyFatPercentage: req.BodyFatPercentage,
	}, requesterID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.created(c, "Body measurement created successfully", m)
}

// @Summary      Get a body measurement by id
// @Tags         body-measurement
// @Produce      json
// @Param        id  path  string  true  "Measurement id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/body-measurement/{id} [get]
// @Security     BearerAuth
func (h *Handler) getMeasurement(c *gin.Context) {
	m, err := h.services.Measurements.GetByID(c.Request.Context(), c.Param("id"), requesterID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Body measurement retrieved successfully", m)
}

// @Summary      Update a body measurement
// @Tags         body-measurement
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Measurement id"
// @Param        body  body  updateMeasurementRequest  true  "Patch payload"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/body-measurement/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateMeasurement(c *gin.Context) {
	var req updateMeasurementRequest
	if !h.bindJSON(c, &req) {
		return
	}
	measurementDate, ok := h.parseBodyTime(c, "measurementDate", req.MeasurementDate)
	if !ok {
		return
	}

	m, err := h.services.Measurements.Update(c.Request.Context(), c.Param("id"), service.UpdateMeasurementParams{
		MeasurementDate:   timePtr(measurementDate),
		WeightKg:          req.WeightKg,
		BodyFatPercentage: req.BodyFatPercentage,
	}, requesterID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Body measurement updated successfully", m)
}

// @Summary      Delete a body measurement
// @Tags         body-measurement
// @Produce      json
// @Param        id  path  string  true  "Measurement id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/body-measurement/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteMeasurement(c *gin.Context) {
	if err := h.services.Measurements.Delete(c.Request.Context(), c.Param("id"), requesterID(c)); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Body measurement deleted successfully", nil)
}
