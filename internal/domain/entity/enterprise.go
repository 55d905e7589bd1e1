package entity

// EnterpriseType categoría jurídica de una empresa. Conjunto cerrado.
type EnterpriseType string

const (
	EnterpriseTypeCorporation        EnterpriseType = "CORPORATION"
	EnterpriseTypeLLC                EnterpriseType = "LLC"
	EnterpriseTypePartnership        EnterpriseType = "PARTNERSHIP"
	EnterpriseTypeSoleProprietorship EnterpriseType = "SOLE_PROPRIETORSHIP"
	EnterpriseTypeNonProfit          EnterpriseType = "NON_PROFIT"
	EnterpriseTypeCooperative        EnterpriseType = "COOPERATIVE"
)

// EnterpriseTypes devuelve los tipos reconocidos en orden estable.
func EnterpriseTypes() []EnterpriseType {
	return []EnterpriseType{
		EnterpriseTypeCorporation,
		EnterpriseTypeLLC,
		EnterpriseTypePartnership,
		EnterpriseTypeSoleProprietorship,
		EnterpriseTypeNonProfit,
		EnterpriseTypeCooperative,
	}
}

// Enterprise representa una organización de negocio (razón social, tipo e identificación tributaria).
type Enterprise struct {
	ID    string // vacío hasta que la capa de persistencia lo asigna
	Name  string
	Type  EnterpriseType
	TaxID string // EIN (NN-NNNNNNN) o NIT con dígito de verificación
}

// NewEnterprise construye una empresa sin ID. No valida: la validación ocurre antes, en el caso de uso.
func NewEnterprise(name string, enterpriseType EnterpriseType, taxID string) *Enterprise {
	return &Enterprise{
		Name:  name,
		Type:  enterpriseType,
		TaxID: taxID,
	}
}
