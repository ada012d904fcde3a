package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/litreview-go/internal/api/middleware"
	"github.com/linskybing/litreview-go/internal/application"
	"github.com/linskybing/litreview-go/internal/config"
	"github.com/linskybing/litreview-go/internal/domain/user"
	"github.com/linskybing/litreview-go/pkg/response"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param input body user.CreateUserInput true "User registration info"
// @Success 201 {object} user.UserDTO
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Username already taken"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}

	usr, err := h.svc.RegisterUser(input)
	if err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user.ToDTO(usr))
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid username or password"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}

	usr, token, err := h.svc.LoginUser(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid username or password"})
			return
		}
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.TokenCookie,
		token,
		int(config.TokenTTL.Seconds()),
		"/",
		"",
		config.IsProduction,
		true,
	)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      usr.UID,
		Username: usr.Username,
	})
}

// Logout godoc
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", config.IsProduction, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// Me godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} user.UserDTO
// @Failure 401 {object} response.ErrorResponse
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	usr, err := h.svc.FindUserByID(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTO(usr))
}

// GetUserByID godoc
// @Summary Public profile of a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} user.UserDTO
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	usr, err := h.svc.FindUserByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTO(usr))
}
