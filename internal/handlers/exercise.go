package handlers

import (
	"github.com/gin-gonic/gin"

	"healthtrack/internal/service"
)

type createExerciseRequest struct {
	ExerciseDate    string   `json:"exerciseDate" binding:"required"`
	ExerciseType    string   `json:"exerciseType"`
	DurationMinutes *int     `json:"durationMinutes"`
	CaloriesBurned  *float64 `json:"caloriesBurned"`
	Description     string   `json:"description"`
}

type updateExerciseRequest struct {
	ExerciseDate    string   `json:"exerciseDate"`
	ExerciseType    *string  `json:"exerciseType"`
	DurationMinutes *int     `json:"durationMinutes"`
	CaloriesBurned  *float64 `json:"caloriesBurned"`
	Description     *string  `json:"description"`
}

// @Summary      List exercise records
// @Tags         exercise
// @Produce      json
// @Param        page          query  int     false  "Page number"
// @Param        limit         query  int     false  "Items per page (max 100)"
// @Param        search        query  string  false  "Substring over description"
// @Param        exerciseType  query  string  false  "Exercise type filter"  Enums(CARDIO,STRENGTH,FLEXIBILITY,SPORTS,OTHER)
// @Param        userId        query  string  false  "Owner filter (admin only)"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/v1/exercise-record [get]
// @Security     BearerAuth
func (h *Handler) listExercises(c *gin.Context) {
	page, limit := pageParams(c)
	recs, total, err := h.services.Exercises.List(c.Request.Context(), service.ListExercisesParams{
		Page:         page,
		Limit:        limit,
		Search:       c.Query("search"),
		ExerciseType: c.Query("exerciseType"),
		UserID:       ownerScope(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.paginated(c, "Exercise records retrieved successfully", recs, total, page, limit)
}

// @Summary      Create an exercise record
// @Tags         exercise
// @Accept       json
// @Produce      json
// @Param        body  body  createExerciseRequest  true  "Exercise payload"
// @Success      201  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/v1/exercise-record [post]
// @Security     BearerAuth
func (h *Handler) createExercise(c *gin.Context) {
	var req createExerciseRequest
	if !h.bindJSON(c, &req) {
		return
	}
	exerciseDate, ok := h.parseBodyTime(c, "exerciseDate", req.ExerciseDate)
	if !ok {
		return
	}

	rec, err := h.services.Exercises.Create(c.Request.Context(), service.CreateExerciseParams{
		ExerciseDate:    exerciseDate,
		ExerciseType:    req.ExerciseType,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		Description:     req.Description,
	}, requesterID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.created(c, "Exercise record created successfully", rec)
}

// @Summary      Get an exercise record by id
// @Tags         exercise
// @Produce      json
// @Param        id  path  string  true  "Exercise record id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/exercise-record/{id} [get]
// @Security     BearerAuth
func (h *Handler) getExercise(c *gin.Context) {
	rec, err := h.services.Exercises.GetByID(c.Request.Context(), c.Param("id"), requesterID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Exercise record retrieved successfully", rec)
}

// @Summary      Update an exercise record
// @Tags         exercise
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Exercise record id"
// @Param        body  body  updateExerciseRequest  true  "Patch payload"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/exercise-record/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateExercise(c *gin.Context) {
	var req updateExerciseRequest
	if !h.bindJSON(c, &req) {
		return
	}
	exerciseDate, ok := h.parseBodyTime(c, "exerciseDate", req.ExerciseDate)
	if !ok {
		return
	}

	rec, err := h.services.Exercises.Update(c.Request.Context(), c.Param("id"), service.UpdateExerciseParams{
		ExerciseDate:    timePtr(exerciseDate),
		ExerciseType:    req.ExerciseType,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		Description:     req.Description,
	}, requesterID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Exercise record updated successfully", rec)
}

// @Summary      Delete an exercise record
// @Tags         exercise
// @Produce      json
// @Param        id  path  string  true  "Exercise record id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/exercise-record/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteExercise(c *gin.Context) {
	if err := h.services.Exercises.Delete(c.Request.Context(), c.Param("id"), requesterID(c)); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Exercise record deleted successfully", nil)
}
