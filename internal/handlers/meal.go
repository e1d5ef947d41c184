package handlers

import (
	"github.com/gin-gonic/gin"

	"healthtrack/internal/service"
)

type createMealRequest struct {
	MealType      string   `json:"mealType" binding:"required"`
	MealDate      string   `json:"mealDate" binding:"required"`
	ImageURL      string   `json:"imageUrl"`
	Description   string   `json:"description"`
	Calories      *float64 `json:"calories"`
	Protein       *float64 `json:"protein"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Fats          *float64 `json:"fats"`
}

type updateMealRequest struct {
	MealType      *string  `json:"mealType"`
	MealDate      string   `json:"mealDate"`
	ImageURL      *string  `json:"imageUrl"`
	Description   *string  `json:"description"`
	Calories      *float64 `json:"calories"`
	Protein       *float64 `json:"protein"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Fats          *float64 `json:"fats"`
}

// @Summary      List meal entries
// @Tags         meal
// @Produce      json
// @Param        page      query  int     false  "Page number"
// @Param        limit     query  int     false  "Items per page (max 100)"
// @Param        search    query  string  false  "Substring over description"
// @Param        mealType  query  string  false  "Meal type filter"  Enums(BREAKFAST,LUNCH,DINNER,SNACK)
// @Param        userId    query  string  false  "Owner filter (admin only)"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/v1/meal [get]
// @Security     BearerAuth
func (h *Handler) listMeals(c *gin.Context) {
	page, limit := pageParams(c)
	meals, total, err := h.services.Meals.List(c.Request.Context(), service.ListMealsParams{
		Page:     page,
		Limit:    limit,
		Search:   c.Query("search"),
		MealType: c.Query("mealType"),
		UserID:   ownerScope(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.paginated(c, "Meal entries retrieved successfully", meals, total, page, limit)
}

// @Summary      Create a meal entry
// @Tags         meal
// @Accept       json
// @Produce      json
// @Param        body  body  createMealRequest  true  "Meal payload"
// @Success      201  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/v1/meal [post]
// @Security     BearerAuth
func (h *Handler) createMeal(c *gin.Context) {
	var req createMealRequest
	if !h.bindJSON(c, &req) {
		return
	}
	mealDate, ok := h.parseBodyTime(c, "mealDate", req.MealDate)
	if !ok {
		return
	}

	m, err := h.services.Meals.Create(c.Request.Context(), service.CreateMealParams{
		MealType:      req.MealType,
		MealDate:      mealDate,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
		Calories:      req.Calories,
		Protein:       req.Protein,
		Carbohydrates: req.Carbohydrates,
		Fats:          req.Fats,
	}, requesterID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.created(c, "Meal entry created successfully", m)
}

// @Summary      Get a meal entry by id
// @Tags         meal
// @Produce      json
// @Param        id  path  string  true  "Meal entry id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/meal/{id} [get]
// @Security     BearerAuth
func (h *Handler) getMeal(c *gin.Context) {
	m, err := h.services.Meals.GetByID(c.Request.Context(), c.Param("id"), requesterID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Meal entry retrieved successfully", m)
}

// @Summary      Update a meal entry
// @Tags         meal
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Meal entry id"
// @Param        body  body  updateMealRequest  true  "Patch payload"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/meal/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateMeal(c *gin.Context) {
	var req updateMealRequest
	if !h.bindJSON(c, &req) {
		return
	}
	mealDate, ok := h.parseBodyTime(c, "mealDate", req.MealDate)
	if !ok {
		return
	}

	m, err := h.services.Meals.Update(c.Request.Context(), c.Param("id"), service.UpdateMealParams{
		MealType:      req.MealType,
		MealDate:      timePtr(mealDate),
		ImageURL:      req.ImageURL,
		Description:   req.Description,
		Calories:      req.Calories,
		Protein:       req.Protein,
		Carbohydrates: req.Carbohydrates,
		Fats:          req.Fats,
	}, requesterID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Meal entry updated successfully", m)
}

// @Summary      Delete a meal entry
// @Tags         meal
// @Produce      json
// @Param        id  path  string  true  "Meal entry id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/meal/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteMeal(c *gin.Context) {
	if err := h.services.Meals.Delete(c.Request.Context(), c.Param("id"), requesterID(c)); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Meal entry deleted successfully", nil)
}
