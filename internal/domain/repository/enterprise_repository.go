package repository

import (
	"context"

	"github.com/jhoicas/enterprise-api/internal/domain/entity"
)

// EnterpriseRepository define el puerto de persistencia para Enterprise (DIP).
// Las implementaciones viven en infrastructure (postgres, memory).
type EnterpriseRepository interface {
	// SaveEnterprise persiste una empresa nueva y devuelve la versión con ID asignado.
	SaveEnterprise(ctx context.Context, enterprise *entity.Enterprise) (*entity.Enterprise, error)
	UpdateEnterprise(ctx context.Context, enterprise *entity.Enterprise) (*entity.Enterprise, error)
	// FindByEnterpriseID devuelve nil, nil si no existe.
	FindByEnterpriseID(ctx context.Context, enterpriseID string) (*entity.Enterprise, error)
	FindAllEnterprises(ctx context.Context) ([]*entity.Enterprise, error)
	FindAllEnterprisesByPartyID(ctx context.Context, partyID string) ([]*entity.Enterprise, error)
	// AssignToParty vincula la empresa a un party. Idempotente.
	AssignToParty(ctx context.Context, partyID, enterpriseID string) error
}
