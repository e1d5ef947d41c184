package handlers

import (
	"github.com/gin-gonic/gin"

	"healthtrack/internal/service"
)

type createArticleRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category"`
	PublishDate string `json:"publishDate" binding:"required"`
	ImageURL    string `json:"imageUrl"`
	Content     string `json:"content" binding:"required"`
	Author      string `json:"author"`
}

type updateArticleRequest struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	PublishDate string  `json:"publishDate"`
	ImageURL    *string `json:"imageUrl"`
	Content     *string `json:"content"`
	Author      *string `json:"author"`
	ViewsCount  *int    `json:"viewsCount"`
}

// @Summary      List articles
// @Tags         article
// @Produce      json
// @Param        page      query  int     false  "Page number"
// @Param        limit     query  int     false  "Items per page (max 100)"
// @Param        search    query  string  false  "Substring over title and content"
// @Param        category  query  string  false  "Category filter"  Enums(NUTRITION,EXERCISE,MENTAL_HEALTH,SLEEP,OTHER)
// @Success      200  {object}  envelope
// @Router       /api/v1/article [get]
func (h *Handler) listArticles(c *gin.Context) {
	page, limit := pageParams(c)
	articles, total, err := h.services.Articles.List(c.Request.Context(), service.ListArticlesParams{
		Page:     page,
		Limit:    limit,
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.paginated(c, "Articles retrieved successfully", articles, total, page, limit)
}

// @Summary      Get an article by id
// @Tags         article
// @Produce      json
// @Param        id  path  string  true  "Article id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/article/{id} [get]
func (h *Handler) getArticle(c *gin.Context) {
	a, err := h.services.Articles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Article retrieved successfully", a)
}

// @Summary      Create an article
// @Tags         article
// @Accept       json
// @Produce      json
// @Param        body  body  createArticleRequest  true  "Article payload"
// @Success      201  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /api/v1/article [post]
// @Security     BearerAuth
func (h *Handler) createArticle(c *gin.Context) {
	var req createArticleRequest
	if !h.bindJSON(c, &req) {
		return
	}
	publishDate, ok := h.parseBodyTime(c, "publishDate", req.PublishDate)
	if !ok {
		return
	}

	a, err := h.services.Articles.Create(c.Request.Context(), service.CreateArticleParams{
		Title:       req.Title,
		Category:    req.Category,
		PublishDate: publishDate,
		ImageURL:    req.ImageURL,
		Content:     req.Content,
		Author:      req.Author,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.created(c, "Article created successfully", a)
}

// @Summary      Update an article
// @Tags         article
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "Article id"
// @Param        body  body  updateArticleRequest  true  "Patch payload"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/article/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateArticle(c *gin.Context) {
	var req updateArticleRequest
	if !h.bindJSON(c, &req) {
		return
	}
	publishDate, ok := h.parseBodyTime(c, "publishDate", req.PublishDate)
	if !ok {
		return
	}

	a, err := h.services.Articles.Update(c.Request.Context(), c.Param("id"), service.UpdateArticleParams{
		Title:       req.Title,
		Category:    req.Category,
		PublishDate: timePtr(publishDate),
		ImageURL:    req.ImageURL,
		Content:     req.Content,
		Author:      req.Author,
		ViewsCount:  req.ViewsCount,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Article updated successfully", a)
}

// @Summary      Delete an article
// @Tags         article
// @Produce      json
// @Param        id  path  string  true  "Article id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/article/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteArticle(c *gin.Context) {
	if err := h.services.Articles.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Article deleted successfully", nil)
}
