package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/enterprise-api/internal/application/dto"
	"github.com/jhoicas/enterprise-api/internal/application/usecase"
	"github.com/jhoicas/enterprise-api/internal/domain"
)

// EnterpriseHandler maneja las peticiones HTTP para el recurso Enterprise.
type EnterpriseHandler struct {
	uc       *usecase.EnterpriseUseCase
	validate *validator.Validate
}

// NewEnterpriseHandler construye el handler inyectando el caso de uso.
func NewEnterpriseHandler(uc *usecase.EnterpriseUseCase) *EnterpriseHandler {
	return &EnterpriseHandler{uc: uc, validate: validator.New()}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         enterprises
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEnterpriseRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.EnterpriseDto
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/enterprises [post]
func (h *EnterpriseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEnterpriseRequest
	if ok, err := h.parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateEnterprise(c.UserContext(), in.Name, in.Type, in.TaxID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         enterprises
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID de la empresa"
// @Param        body  body  dto.CreateEnterpriseRequest  true  "Nuevos datos"
// @Success      200   {object}  dto.EnterpriseDto
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/enterprises/{id} [put]
func (h *EnterpriseHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CreateEnterpriseRequest
	if ok, err := h.parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateEnterprise(c.UserContext(), dto.UpdateEnterpriseDto{
		ID:    id,
		Name:  in.Name,
		Type:  in.Type,
		TaxID: in.TaxID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         enterprises
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.EnterpriseDto
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/enterprises/{id} [get]
func (h *EnterpriseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         enterprises
// @Produce      json
// @Success      200  {object}  dto.EnterpriseListResponse
// @Router       /api/enterprises [get]
func (h *EnterpriseHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.FindAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.EnterpriseListResponse{Items: items})
}

// ListByParty godoc
// @Summary      Listar empresas de un party
// @Tags         parties
// @Produce      json
// @Param        partyId  path  string  true  "ID del party"
// @Success      200      {object}  dto.EnterpriseListResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Router       /api/parties/{partyId}/enterprises [get]
func (h *EnterpriseHandler) ListByParty(c *fiber.Ctx) error {
	partyID := c.Params("partyId")
	if err := checkPartyScope(c, partyID); err != nil {
		return writeError(c, err)
	}
	items, err := h.uc.FindAllByPartyID(c.UserContext(), partyID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.EnterpriseListResponse{Items: items})
}

// AssignToParty godoc
// @Summary      Vincular empresa a un party
// @Tags         parties
// @Param        partyId  path  string  true  "ID del party"
// @Param        id       path  string  true  "ID de la empresa"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parties/{partyId}/enterprises/{id} [post]
func (h *EnterpriseHandler) AssignToParty(c *fiber.Ctx) error {
	partyID := c.Params("partyId")
	if err := checkPartyScope(c, partyID); err != nil {
		return writeError(c, err)
	}
	if err := h.uc.AssignToParty(c.UserContext(), partyID, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseBody decodifica y valida el cuerpo. Si devuelve false la respuesta 400 ya está escrita.
func (h *EnterpriseHandler) parseBody(c *fiber.Ctx, in *dto.CreateEnterpriseRequest) (bool, error) {
	if err := c.BodyParser(in); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return true, nil
}

// checkPartyScope rechaza operar sobre un party distinto al del token.
// Sin token (auth deshabilitada) o sin claim de party no restringe.
func checkPartyScope(c *fiber.Ctx, partyID string) error {
	if claimed := GetPartyID(c); claimed != "" && claimed != partyID {
		return domain.ErrForbidden
	}
	return nil
}

// writeError traduce errores de dominio a códigos HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "party fuera del alcance del token"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "empresa con ese tax id ya existe"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
