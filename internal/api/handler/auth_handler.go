package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/dto"
	"github.com/magicvilla/villa-api/internal/core/ports"
)

const msgInvalidCredentials = "Username or password is invalid"

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegistrationRequest  true  "User registration details"
// @Success      200   {object}  APIResponse{result=dto.UserDTO}
// @Failure      400   {object}  APIResponse
// @Failure      409   {object}  APIResponse
// @Failure      500   {object}  APIResponse
// @Router       /api/UsersAuth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegistrationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	unique, err := h.authService.IsUniqueUser(ctx, req.UserName)
	if err != nil {
		return err
	}
	if !unique {
		return domain.Errorf(domain.ErrConflict, "Username already exists")
	}

	user, err := h.authService.Register(ctx, req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user)
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Login credentials"
// @Success      200   {object}  APIResponse{result=dto.LoginResponse}
// @Failure      400   {object}  APIResponse
// @Router       /api/UsersAuth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	if resp == nil || resp.User == nil || resp.Token == "" {
		return c.JSON(http.StatusBadRequest, Failure(http.StatusBadRequest, msgInvalidCredentials))
	}
	return respond(c, http.StatusOK, resp)
}
