package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/enterprise-api/internal/application/dto"
	"github.com/jhoicas/enterprise-api/internal/application/mapper"
	"github.com/jhoicas/enterprise-api/internal/application/validation"
	"github.com/jhoicas/enterprise-api/internal/domain"
	"github.com/jhoicas/enterprise-api/internal/domain/entity"
	"github.com/jhoicas/enterprise-api/internal/domain/repository"
	"github.com/jhoicas/enterprise-api/pkg/logger"
)

const (
	msgInvalidEnterpriseType = "invalid enterprise type"
	msgInvalidTaxID          = "invalid tax id"
)

// EnterpriseValidator predicados de validación que usa el caso de uso.
// validation.EnterpriseRules es la implementación por defecto.
type EnterpriseValidator interface {
	IsValidEnterpriseType(t string) bool
	IsValidTaxID(taxID string) bool
}

// EnterpriseUseCase valida, construye la entidad, delega en el puerto y mapea el resultado.
// No guarda estado mutable: es seguro para uso concurrente si el repositorio lo es.
type EnterpriseUseCase struct {
	repo      repository.EnterpriseRepository
	validator EnterpriseValidator
	log       *logger.Logger
}

// NewEnterpriseUseCase construye el caso de uso. validator y log pueden ser nil.
func NewEnterpriseUseCase(repo repository.EnterpriseRepository, validator EnterpriseValidator, log *logger.Logger) *EnterpriseUseCase {
	if validator == nil {
		validator = validation.EnterpriseRules{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &EnterpriseUseCase{repo: repo, validator: validator, log: log.Named("enterprise")}
}

// CreateEnterprise valida tipo y tax id (en ese orden) y persiste una empresa nueva.
// Un NIT se guarda normalizado, así la unicidad no depende del formato de entrada.
func (uc *EnterpriseUseCase) CreateEnterprise(ctx context.Context, name, enterpriseType, taxID string) (*dto.EnterpriseDto, error) {
	if err := uc.validate(name, enterpriseType, taxID, "create"); err != nil {
		return nil, err
	}

	newEnterprise := entity.NewEnterprise(name, entity.EnterpriseType(enterpriseType), validation.NormalizeTaxID(taxID))
	saved, err := uc.repo.SaveEnterprise(ctx, newEnterprise)
	if err != nil {
		return nil, err
	}
	return mapper.EnterpriseEntityToDto(saved), nil
}

// UpdateEnterprise valida los valores nuevos y reconstruye la entidad bajo el ID existente.
func (uc *EnterpriseUseCase) UpdateEnterprise(ctx context.Context, in dto.UpdateEnterpriseDto) (*dto.EnterpriseDto, error) {
	if err := uc.validate(in.Name, in.Type, in.TaxID, "update"); err != nil {
		return nil, err
	}

	adjusted := entity.NewEnterprise(in.Name, entity.EnterpriseType(in.Type), validation.NormalizeTaxID(in.TaxID))
	adjusted.ID = in.ID
	updated, err := uc.repo.UpdateEnterprise(ctx, adjusted)
	if err != nil {
		return nil, err
	}
	return mapper.EnterpriseEntityToDto(updated), nil
}

// FindByID obtiene una empresa. Devuelve domain.ErrNotFound si el repositorio no la encuentra.
func (uc *EnterpriseUseCase) FindByID(ctx context.Context, enterpriseID string) (*dto.EnterpriseDto, error) {
	enterprise, err := uc.repo.FindByEnterpriseID(ctx, enterpriseID)
	if err != nil {
		return nil, err
	}
	if enterprise == nil {
		return nil, fmt.Errorf("enterprise %s: %w", enterpriseID, domain.ErrNotFound)
	}
	return mapper.EnterpriseEntityToDto(enterprise), nil
}

// FindAll lista todas las empresas en el orden del repositorio.
func (uc *EnterpriseUseCase) FindAll(ctx context.Context) ([]dto.EnterpriseDto, error) {
	list, err := uc.repo.FindAllEnterprises(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.EnterpriseEntitiesToDtos(list), nil
}

// FindAllByPartyID lista las empresas vinculadas al party, filtradas por el repositorio.
func (uc *EnterpriseUseCase) FindAllByPartyID(ctx context.Context, partyID string) ([]dto.EnterpriseDto, error) {
	list, err := uc.repo.FindAllEnterprisesByPartyID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	return mapper.EnterpriseEntitiesToDtos(list), nil
}

// AssignToParty vincula una empresa existente a un party.
func (uc *EnterpriseUseCase) AssignToParty(ctx context.Context, partyID, enterpriseID string) error {
	if strings.TrimSpace(partyID) == "" {
		return domain.NewValidationError("party_id", partyID, "party id is required")
	}
	if strings.TrimSpace(enterpriseID) == "" {
		return domain.NewValidationError("enterprise_id", enterpriseID, "enterprise id is required")
	}
	enterprise, err := uc.repo.FindByEnterpriseID(ctx, enterpriseID)
	if err != nil {
		return err
	}
	if enterprise == nil {
		return fmt.Errorf("enterprise %s: %w", enterpriseID, domain.ErrNotFound)
	}
	return uc.repo.AssignToParty(ctx, partyID, enterpriseID)
}

func (uc *EnterpriseUseCase) validate(name, enterpriseType, taxID, op string) error {
	if !uc.validator.IsValidEnterpriseType(enterpriseType) {
		uc.log.Error().
			Str("op", op).
			Str("enterprise_type", enterpriseType).
			Str("enterprise_name", name).
			Msg("tipo de empresa inválido")
		return domain.NewValidationError("type", enterpriseType, msgInvalidEnterpriseType)
	}
	if !uc.validator.IsValidTaxID(taxID) {
		uc.log.Error().
			Str("op", op).
			Str("tax_id", taxID).
			Str("enterprise_name", name).
			Msg("tax id inválido")
		return domain.NewValidationError("tax_id", taxID, msgInvalidTaxID)
	}
	return nil
}
