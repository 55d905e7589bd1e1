package dto

// CreateEnterpriseRequest entrada HTTP para crear una empresa.
type CreateEnterpriseRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Type  string `json:"type" validate:"required,max=40"`
	TaxID string `json:"tax_id" validate:"required,max=20"`
}

// UpdateEnterpriseDto entrada para actualizar una empresa. El ID se copia sobre la entidad reconstruida.
type UpdateEnterpriseDto struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Type  string `json:"type" validate:"required,max=40"`
	TaxID string `json:"tax_id" validate:"required,max=20"`
}

// EnterpriseDto salida de una empresa. Solo la produce el mapper.
type EnterpriseDto struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	TaxID string `json:"tax_id"`
}

// EnterpriseListResponse lista de empresas en el orden devuelto por el repositorio.
type EnterpriseListResponse struct {
	Items []EnterpriseDto `json:"items"`
}
