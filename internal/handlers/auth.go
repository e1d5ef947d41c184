package handlers

import (
	"github.com/gin-gonic/gin"

	"healthtrack/internal/service"
)

type registerRequest struct {
	Email     string `json:"email" binding:"required"`
	UserName  string `json:"userName" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	Token string `json:"token"`
}

// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "Registration payload"
// @Success      201  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      409  {object}  envelope
// @Router       /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	u, err := h.services.Register(c.Request.Context(), service.CreateUserParams{
		Email:     req.Email,
		UserName:  req.UserName,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.created(c, "User registered successfully", u)
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	res, err := h.services.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Login successful", res)
}

// @Summary      Refresh an access token
// @Description  Accepts the token in the body or the Authorization header.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  refreshRequest  false  "Token payload"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /auth/refresh [post]
func (h *Handler) refresh(c *gin.Context) {
	var req refreshRequest
	_ = c.ShouldBindJSON(&req)
	token := req.Token
	if token == "" {
		token = service.ExtractBearer(c.GetHeader("Authorization"))
	}

	res, err := h.services.Refresh(c.Request.Context(), token)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, "Token refreshed", res)
}
