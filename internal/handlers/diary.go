package handlers

import (
	"github.com/gin-gonic/gin"

	"healthtrack/internal/service"
)

type createDiaryRequest struct {
	EntryDate string `json:"entryDate" binding:"required"`
	Title     string `json:"title"`
	Content   string `json:"content" binding:"required"`
}

type updateDiaryRequest struct {
	EntryDate string  `json:"entryDate"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
}

// @Summary      List diary entries
// @Tags         diary
// @Produce      json
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Items per page (max 100)"
// @Param        search  query  string  false  "Substring over title and content"
// @Param        userId  query  string  false  "Owner filter (admin only)"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/v1/diary [get]
// @Security     BearerAuth
func (h *Handler) listDiaries(c *gin.Context) {
	page, limit := pageParams(c)
	entries, total, err := h.services.Diaries.List(c.Request.Context(), service.ListDiariesParams{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		UserID: ownerScope(c),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.paginated(c, "Diary entries retrieved successfully", entries, total, page, limit)
}

// @Summary      Create a diary entry
// @Tags         diary
// @Accept       json
// @Produce      json
// @Param        body  body  createDiaryRequest  true  "Diary payload"
// @Success      201  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/v1/diary [post]
// @Security     BearerAuth
func (h *Handler) createDiary(c *gin.Context) {
	var req createDiaryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	entryDate, ok := h.parseBodyTime(c, "entryDate", req.EntryDate)
	if !ok {
		return
	}

	d, err := h.services.Diaries.Create(c.Request.Context(), service.CreateDiaryParams{
		EntryDate: entryDate,
		Title:     req.Title,
		Content:   req.Content,
	}, requesterID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.created(c, "Diary entry created successfully", d)
}

// @Summary      Get a diary entry by id
// @Tags         diary
// @Produce      json
// @Param        id  path  string  true  "Diary entry id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/diary/{id} [get]
// @Security     BearerAuth
func (h *Handler) getDiary(c *gin.Context) {
	d, err := h.services.Diaries.GetByID(c.Request.Context(), c.Param("id"), requesterID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Diary entry retrieved successfully", d)
}

// @Summary      Update a diary entry
// @Tags         diary
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "Diary entry id"
// @Param        body  body  updateDiaryRequest  true  "Patch payload"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/diary/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateDiary(c *gin.Context) {
	var req updateDiaryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	entryDate, ok := h.parseBodyTime(c, "entryDate", req.EntryDate)
	if !ok {
		return
	}

	d, err := h.services.Diaries.Update(c.Request.Context(), c.Param("id"), service.UpdateDiaryParams{
		EntryDate: timePtr(entryDate),
		Title:     req.Title,
		Content:   req.Content,
	}, requesterID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Diary entry updated successfully", d)
}

// @Summary      Delete a diary entry
// @Tags         diary
// @Produce      json
// @Param        id  path  string  true  "Diary entry id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/diary/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteDiary(c *gin.Context) {
	if err := h.services.Diaries.Delete(c.Request.Context(), c.Param("id"), requesterID(c)); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Diary entry deleted successfully", nil)
}
