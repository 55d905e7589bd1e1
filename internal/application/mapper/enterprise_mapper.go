// Package mapper convierte entidades de dominio en DTOs de salida.
package mapper

import (
	"github.com/jhoicas/enterprise-api/internal/application/dto"
	"github.com/jhoicas/enterprise-api/internal/domain/entity"
)

// EnterpriseEntityToDto proyecta la entidad al DTO de salida. Devuelve nil si e es nil.
func EnterpriseEntityToDto(e *entity.Enterprise) *dto.EnterpriseDto {
	if e == nil {
		return nil
	}
	return &dto.EnterpriseDto{
		ID:    e.ID,
		Name:  e.Name,
		Type:  string(e.Type),
		TaxID: e.TaxID,
	}
}

// EnterpriseEntitiesToDtos mapea cada elemento conservando orden y cardinalidad.
func EnterpriseEntitiesToDtos(list []*entity.Enterprise) []dto.EnterpriseDto {
	out := make([]dto.EnterpriseDto, 0, len(list))
	for _, e := range list {
		if d := EnterpriseEntityToDto(e); d != nil {
			out = append(out, *d)
			continue
		}
		out = append(out, dto.EnterpriseDto{})
	}
	return out
}
