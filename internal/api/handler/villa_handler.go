package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/dto"
	"github.com/magicvilla/villa-api/internal/core/ports"
)

// VillaHandler handles HTTP requests for villas.
type VillaHandler struct {
	service ports.VillaService
}

func NewVillaHandler(service ports.VillaService) *VillaHandler {
	return &VillaHandler{service: service}
}

// List handles GET /api/v1/villaAPI.
//
// @Summary      List villas
// @Tags         villas
// @Produce      json
// @Success      200  {object}  APIResponse{result=[]dto.VillaDTO}
// @Failure      500  {object}  APIResponse
// @Router       /api/v1/villaAPI [get]
func (h *VillaHandler) List(c echo.Context) error {
	villas, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, villas)
}

// Get handles GET /api/v1/villaAPI/:id.
//
// @Summary      Get a villa
// @Tags         villas
// @Produce      json
// @Param        id   path      int  true  "Villa id"
// @Success      200  {object}  APIResponse{result=dto.VillaDTO}
// @Failure      400  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Router       /api/v1/villaAPI/{id} [get]
func (h *VillaHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	villa, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, villa)
}

// Create handles POST /api/v1/villaAPI.
//
// @Summary      Create a villa
// @Tags         villas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.VillaCreateDTO  true  "Villa"
// @Success      201   {object}  APIResponse{result=dto.VillaDTO}
// @Failure      400   {object}  APIResponse
// @Failure      401   {object}  APIResponse
// @Failure      403   {object}  APIResponse
// @Failure      409   {object}  APIResponse
// @Router       /api/v1/villaAPI [post]
func (h *VillaHandler) Create(c echo.Context) error {
	var req dto.VillaCreateDTO
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	villa, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return created(c, villa.ID, villa)
}

// Update handles PUT /api/v1/villaAPI/:id.
//
// @Summary      Replace a villa
// @Tags         villas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Villa id"
// @Param        body  body      dto.VillaUpdateDTO  true  "Villa"
// @Success      200   {object}  APIResponse{result=dto.VillaDTO}
// @Failure      400   {object}  APIResponse
// @Failure      404   {object}  APIResponse
// @Failure      409   {object}  APIResponse
// @Router       /api/v1/villaAPI/{id} [put]
func (h *VillaHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.VillaUpdateDTO
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	villa, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, villa)
}

// Patch handles PATCH /api/v1/villaAPI/:id with a JSON Patch body.
//
// @Summary      Patch a villa
// @Tags         villas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int     true  "Villa id"
// @Param        body  body      []object  true  "JSON Patch document"
// @Success      200   {object}  APIResponse{result=dto.VillaDTO}
// @Failure      400   {object}  APIResponse
// @Failure      404   {object}  APIResponse
// @Failure      409   {object}  APIResponse
// @Router       /api/v1/villaAPI/{id} [patch]
func (h *VillaHandler) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	document, err := readPatch(c)
	if err != nil {
		return err
	}
	villa, err := h.service.Patch(c.Request().Context(), id, document)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, villa)
}

// Delete handles DELETE /api/v1/villaAPI/:id.
//
// @Summary      Delete a villa
// @Tags         villas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Villa id"
// @Success      200  {object}  APIResponse
// @Failure      400  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Router       /api/v1/villaAPI/{id} [delete]
func (h *VillaHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil)
}

func readPatch(c echo.Context) ([]byte, error) {
	document, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}
	if len(document) == 0 {
		return nil, domain.NewValidationError("patch document is required")
	}
	return document, nil
}
