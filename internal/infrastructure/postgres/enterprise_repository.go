package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/enterprise-api/internal/domain"
	"github.com/jhoicas/enterprise-api/internal/domain/entity"
	"github.com/jhoicas/enterprise-api/internal/domain/repository"
)

// Asegura que EnterpriseRepo implementa repository.EnterpriseRepository.
var _ repository.EnterpriseRepository = (*EnterpriseRepo)(nil)

const enterpriseColumns = `id, name, type, tax_id`

// EnterpriseRepo implementación del puerto EnterpriseRepository sobre PostgreSQL (pool o tx).
type EnterpriseRepo struct {
	q Querier
}

// NewEnterpriseRepository construye el adaptador de persistencia para empresas.
func NewEnterpriseRepository(q Querier) *EnterpriseRepo {
	return &EnterpriseRepo{q: q}
}

// SaveEnterprise inserta la empresa con un ID nuevo y devuelve la fila persistida.
func (r *EnterpriseRepo) SaveEnterprise(ctx context.Context, e *entity.Enterprise) (*entity.Enterprise, error) {
	query := `
		INSERT INTO enterprises (id, name, type, tax_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + enterpriseColumns
	saved, err := scanEnterprise(r.q.QueryRow(ctx, query,
		uuid.New().String(), e.Name, string(e.Type), e.TaxID,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert enterprise: %w", err)
	}
	return saved, nil
}

// UpdateEnterprise reemplaza nombre, tipo y tax id. Devuelve domain.ErrNotFound si el ID no existe.
func (r *EnterpriseRepo) UpdateEnterprise(ctx context.Context, e *entity.Enterprise) (*entity.Enterprise, error) {
	query := `
		UPDATE enterprises SET name = $2, type = $3, tax_id = $4, updated_at = now()
		WHERE id = $1
		RETURNING ` + enterpriseColumns
	updated, err := scanEnterprise(r.q.QueryRow(ctx, query,
		e.ID, e.Name, string(e.Type), e.TaxID,
	))
	if err != nil {
		if isNoRows(err) || isInvalidID(err) {
			return nil, domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update enterprise: %w", err)
	}
	return updated, nil
}

// FindByEnterpriseID obtiene una empresa por ID; nil, nil si no existe.
func (r *EnterpriseRepo) FindByEnterpriseID(ctx context.Context, enterpriseID string) (*entity.Enterprise, error) {
	query := `SELECT ` + enterpriseColumns + ` FROM enterprises WHERE id = $1`
	found, err := scanEnterprise(r.q.QueryRow(ctx, query, enterpriseID))
	if err != nil {
		if isNoRows(err) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get enterprise: %w", err)
	}
	return found, nil
}

// FindAllEnterprises lista todas las empresas, más antiguas primero.
func (r *EnterpriseRepo) FindAllEnterprises(ctx context.Context) ([]*entity.Enterprise, error) {
	query := `SELECT ` + enterpriseColumns + ` FROM enterprises ORDER BY created_at, id`
	return r.list(ctx, "list enterprises", query)
}

// FindAllEnterprisesByPartyID lista las empresas vinculadas al party en orden de vinculación.
func (r *EnterpriseRepo) FindAllEnterprisesByPartyID(ctx context.Context, partyID string) ([]*entity.Enterprise, error) {
	query := `
		SELECT e.id, e.name, e.type, e.tax_id
		FROM enterprises e
		JOIN party_enterprises pe ON pe.enterprise_id = e.id
		WHERE pe.party_id = $1
		ORDER BY pe.created_at, e.id`
	return r.list(ctx, "list enterprises by party", query, partyID)
}

// AssignToParty vincula la empresa al party; si el vínculo ya existe no hace nada.
func (r *EnterpriseRepo) AssignToParty(ctx context.Context, partyID, enterpriseID string) error {
	query := `
		INSERT INTO party_enterprises (party_id, enterprise_id)
		VALUES ($1, $2)
		ON CONFLICT (party_id, enterprise_id) DO NOTHING`
	if _, err := r.q.Exec(ctx, query, partyID, enterpriseID); err != nil {
		return fmt.Errorf("assign enterprise to party: %w", err)
	}
	return nil
}

func (r *EnterpriseRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Enterprise, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	list := make([]*entity.Enterprise, 0)
	for rows.Next() {
		e, err := scanEnterprise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan enterprise: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

func scanEnterprise(row pgxScanner) (*entity.Enterprise, error) {
	var (
		e              entity.Enterprise
		enterpriseType string
	)
	if err := row.Scan(&e.ID, &e.Name, &enterpriseType, &e.TaxID); err != nil {
		return nil, err
	}
	e.Type = entity.EnterpriseType(enterpriseType)
	return &e, nil
}
