// Package memory implementa los puertos de persistencia en memoria (desarrollo local y demos).
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/enterprise-api/internal/domain"
	"github.com/jhoicas/enterprise-api/internal/domain/entity"
	"github.com/jhoicas/enterprise-api/internal/domain/repository"
)

var _ repository.EnterpriseRepository = (*EnterpriseRepo)(nil)

// EnterpriseRepo guarda empresas en un mapa protegido por mutex. Conserva el orden de inserción.
type EnterpriseRepo struct {
	mu      sync.RWMutex
	byID    map[string]entity.Enterprise
	order   []string
	parties map[string][]string
	newID   func() string
}

// NewEnterpriseRepository construye el repositorio vacío.
func NewEnterpriseRepository() *EnterpriseRepo {
	return &EnterpriseRepo{
		byID:    make(map[string]entity.Enterprise),
		parties: make(map[string][]string),
		newID:   func() string { return uuid.New().String() },
	}
}

// SaveEnterprise asigna un ID nuevo. Devuelve domain.ErrDuplicate si el tax id ya existe.
func (r *EnterpriseRepo) SaveEnterprise(ctx context.Context, e *entity.Enterprise) (*entity.Enterprise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taxIDTaken(e.TaxID, "") {
		return nil, domain.ErrDuplicate
	}
	stored := *e
	stored.ID = r.newID()
	r.byID[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return &stored, nil
}

// UpdateEnterprise reemplaza la empresa existente. Devuelve domain.ErrNotFound si el ID no existe.
func (r *EnterpriseRepo) UpdateEnterprise(ctx context.Context, e *entity.Enterprise) (*entity.Enterprise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	if r.taxIDTaken(e.TaxID, e.ID) {
		return nil, domain.ErrDuplicate
	}
	stored := *e
	r.byID[stored.ID] = stored
	return &stored, nil
}

// FindByEnterpriseID devuelve una copia; nil, nil si no existe.
func (r *EnterpriseRepo) FindByEnterpriseID(ctx context.Context, enterpriseID string) (*entity.Enterprise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[enterpriseID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// FindAllEnterprises lista en orden de inserción.
func (r *EnterpriseRepo) FindAllEnterprises(ctx context.Context) ([]*entity.Enterprise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(r.order), nil
}

// FindAllEnterprisesByPartyID lista en orden de vinculación.
func (r *EnterpriseRepo) FindAllEnterprisesByPartyID(ctx context.Context, partyID string) ([]*entity.Enterprise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(r.parties[partyID]), nil
}

// AssignToParty vincula la empresa al party; repetir el vínculo no hace nada.
func (r *EnterpriseRepo) AssignToParty(ctx context.Context, partyID, enterpriseID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[enterpriseID]; !ok {
		return domain.ErrNotFound
	}
	for _, id := range r.parties[partyID] {
		if id == enterpriseID {
			return nil
		}
	}
	r.parties[partyID] = append(r.parties[partyID], enterpriseID)
	return nil
}

// taxIDTaken requiere r.mu tomado.
func (r *EnterpriseRepo) taxIDTaken(taxID, exceptID string) bool {
	for id, e := range r.byID {
		if id != exceptID && e.TaxID == taxID {
			return true
		}
	}
	return false
}

// collect requiere r.mu tomado.
func (r *EnterpriseRepo) collect(ids []string) []*entity.Enterprise {
	out := make([]*entity.Enterprise, 0, len(ids))
	for _, id := range ids {
		e := r.byID[id]
		out = append(out, &e)
	}
	return out
}
