package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/magicvilla/villa-api/internal/core/dto"
	"github.com/magicvilla/villa-api/internal/core/ports"
)

// VillaNumberHandler handles HTTP requests for villa numbers. The :id path
// parameter is the villa number itself.
type VillaNumberHandler struct {
	service ports.VillaNumberService
}

func NewVillaNumberHandler(service ports.VillaNumberService) *VillaNumberHandler {
	return &VillaNumberHandler{service: service}
}

// GetString handles GET /api/v1/VillaNumberAPI/GetString.
//
// @Summary      Static sample strings
// @Tags         villa-numbers
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/v1/VillaNumberAPI/GetString [get]
func (h *VillaNumberHandler) GetString(c echo.Context) error {
	return c.JSON(http.StatusOK, []string{"string1", "string2"})
}

// ListV2 handles GET /api/v2/VillaNumberAPI.
//
// @Summary      Static sample values
// @Tags         villa-numbers
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/v2/VillaNumberAPI [get]
func (h *VillaNumberHandler) ListV2(c echo.Context) error {
	return c.JSON(http.StatusOK, []string{"value1", "value2"})
}

// List handles GET /api/v1/VillaNumberAPI.
//
// @Summary      List villa numbers
// @Tags         villa-numbers
// @Produce      json
// @Success      200  {object}  APIResponse{result=[]dto.VillaNumberDTO}
// @Router       /api/v1/VillaNumberAPI [get]
func (h *VillaNumberHandler) List(c echo.Context) error {
	numbers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, numbers)
}

// Get handles GET /api/v1/VillaNumberAPI/:id.
//
// @Summary      Get a villa number
// @Tags         villa-numbers
// @Produce      json
// @Param        id   path      int  true  "Villa number"
// @Success      200  {object}  APIResponse{result=dto.VillaNumberDTO}
// @Failure      400  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Router       /api/v1/VillaNumberAPI/{id} [get]
func (h *VillaNumberHandler) Get(c echo.Context) error {
	villaNo, err := pathID(c)
	if err != nil {
		return err
	}
	number, err := h.service.Get(c.Request().Context(), villaNo)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, number)
}

// Create handles POST /api/v1/VillaNumberAPI.
//
// @Summary      Create a villa number
// @Tags         villa-numbers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.VillaNumberCreateDTO  true  "Villa number"
// @Success      201   {object}  APIResponse{result=dto.VillaNumberDTO}
// @Failure      400   {object}  APIResponse
// @Failure      409   {object}  APIResponse
// @Router       /api/v1/VillaNumberAPI [post]
func (h *VillaNumberHandler) Create(c echo.Context) error {
	var req dto.VillaNumberCreateDTO
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	number, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return created(c, number.VillaNo, number)
}

// Update handles PUT /api/v1/VillaNumberAPI/:id.
//
// @Summary      Replace a villa number
// @Tags         villa-numbers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Villa number"
// @Param        body  body      dto.VillaNumberUpdateDTO  true  "Villa number"
// @Success      200   {object}  APIResponse{result=dto.VillaNumberDTO}
// @Failure      400   {object}  APIResponse
// @Failure      404   {object}  APIResponse
// @Router       /api/v1/VillaNumberAPI/{id} [put]
func (h *VillaNumberHandler) Update(c echo.Context) error {
	villaNo, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.VillaNumberUpdateDTO
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	number, err := h.service.Update(c.Request().Context(), villaNo, req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, number)
}

// Patch handles PATCH /api/v1/VillaNumberAPI/:id with a JSON Patch body.
//
// @Summary      Patch a villa number
// @Tags         villa-numbers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int       true  "Villa number"
// @Param        body  body      []object  true  "JSON Patch document"
// @Success      200   {object}  APIResponse{result=dto.VillaNumberDTO}
// @Failure      400   {object}  APIResponse
// @Failure      404   {object}  APIResponse
// @Router       /api/v1/VillaNumberAPI/{id} [patch]
func (h *VillaNumberHandler) Patch(c echo.Context) error {
	villaNo, err := pathID(c)
	if err != nil {
		return err
	}
	document, err := readPatch(c)
	if err != nil {
		return err
	}
	number, err := h.service.Patch(c.Request().Context(), villaNo, document)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, number)
}

// Delete handles DELETE /api/v1/VillaNumberAPI/:id.
//
// @Summary      Delete a villa number
// @Tags         villa-numbers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Villa number"
// @Success      200  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Router       /api/v1/VillaNumberAPI/{id} [delete]
func (h *VillaNumberHandler) Delete(c echo.Context) error {
	villaNo, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), villaNo); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil)
}
