package handlers

import (
	"github.com/gin-gonic/gin"

	"healthtrack/internal/service"
)

type createUserRequest struct {
	Email     string `json:"email" binding:"required"`
	UserName  string `json:"userName" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

type updateUserRequest struct {
	Email     *string `json:"email"`
	UserName  *string `json:"userName"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Password  *string `json:"password"`
	Phone     *string `json:"phone"`
}

func (r updateUserRequest) params() service.UpdateUserParams {
	return service.UpdateUserParams{
		Email:     r.Email,
		UserName:  r.UserName,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Password:  r.Password,
		Phone:     r.Phone,
	}
}

// @Summary      List users
// @Tags         user
// @Produce      json
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Items per page (max 100)"
// @Param        search  query  string  false  "Substring over name and email"
// @Param        role    query  string  false  "Role filter"  Enums(USER,ADMIN)
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /api/v1/user [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	page, limit := pageParams(c)
	users, total, err := h.services.Users.List(c.Request.Context(), service.ListUsersParams{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		Role:   c.Query("role"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.paginated(c, "Users retrieved successfully", users, total, page, limit)
}

// @Summary      Create a user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  createUserRequest  true  "User payload"
// @Success      201  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      409  {object}  envelope
// @Router       /api/v1/user [post]
// @Security     BearerAuth
func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	u, err := h.services.Users.Create(c.Request.Context(), service.CreateUserParams{
		Email:     req.Email,
		UserName:  req.UserName,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Phone:     req.Phone,
		Role:      req.Role,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.created(c, "User created successfully", u)
}

// @Summary      Get a user by id
// @Tags         user
// @Produce      json
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/user/{id} [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	u, err := h.services.Users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "User retrieved successfully", u)
}

// @Summary      Update a user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "User id"
// @Param        body  body  updateUserRequest  true  "Patch payload"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Failure      409  {object}  envelope
// @Router       /api/v1/user/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateUser(c *gin.Context) {
	var req updateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	u, err := h.services.Users.Update(c.Request.Context(), c.Param("id"), req.params())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "User updated successfully", u)
}

// @Summary      Delete a user
// @Tags         user
// @Produce      json
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/user/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	if err := h.services.Users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "User deleted successfully", nil)
}

// @Summary      Get the authenticated user's profile
// @Tags         user
// @Produce      json
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/v1/user/me [get]
// @Security     BearerAuth
func (h *Handler) getMe(c *gin.Context) {
	u, err := h.services.Users.GetByID(c.Request.Context(), requesterID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "User retrieved successfully", u)
}

// @Summary      Update the authenticated user's profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  updateUserRequest  true  "Patch payload"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      409  {object}  envelope
// @Router       /api/v1/user/me [put]
// @Security     BearerAuth
func (h *Handler) updateMe(c *gin.Context) {
	var req updateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	u, err := h.services.Users.Update(c.Request.Context(), requesterID(c), req.params())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "User updated successfully", u)
}
