// Package validation contiene los predicados de validación de empresas.
package validation

import (
	"github.com/jhoicas/enterprise-api/internal/domain/entity"
	"github.com/jhoicas/enterprise-api/pkg/taxid"
)

// IsValidEnterpriseType informa si t es uno de los tipos reconocidos (comparación exacta).
func IsValidEnterpriseType(t string) bool {
	for _, known := range entity.EnterpriseTypes() {
		if string(known) == t {
			return true
		}
	}
	return false
}

// NormalizeTaxID lleva el tax id a la forma con la que se persiste y se compara unicidad.
func NormalizeTaxID(taxID string) string {
	return taxid.Normalize(taxID)
}

// IsValidTaxID acepta un EIN (NN-NNNNNNN) o un NIT con dígito de verificación correcto.
func IsValidTaxID(taxID string) bool {
	if taxid.IsEIN(taxID) {
		return true
	}
	return taxid.ValidateNIT(taxID) == nil
}

// EnterpriseRules implementación por defecto de los predicados, inyectable en el caso de uso.
type EnterpriseRules struct{}

func (EnterpriseRules) IsValidEnterpriseType(t string) bool { return IsValidEnterpriseType(t) }
func (EnterpriseRules) IsValidTaxID(taxID string) bool      { return IsValidTaxID(taxID) }
