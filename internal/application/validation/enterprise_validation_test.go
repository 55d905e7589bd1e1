package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/enterprise-api/internal/application/validation"
	"github.com/jhoicas/enterprise-api/internal/domain/entity"
)

func TestIsValidEnterpriseType(t *testing.T) {
	for _, known := range entity.EnterpriseTypes() {
		assert.True(t, validation.IsValidEnterpriseType(string(known)), "%s debe ser válido", known)
	}
	for _, bad := range []string{"", "NOT_A_TYPE", "corporation", " CORPORATION"} {
		assert.False(t, validation.IsValidEnterpriseType(bad), "%q no debe ser válido", bad)
	}
}

func TestIsValidTaxID(t *testing.T) {
	assert.True(t, validation.IsValidTaxID("12-3456789"), "EIN")
	assert.True(t, validation.IsValidTaxID("900.123.456-8"), "NIT con dígito correcto")

	assert.False(t, validation.IsValidTaxID(""))
	assert.False(t, validation.IsValidTaxID("not-a-tax-id"))
	assert.False(t, validation.IsValidTaxID("900123456-7"))
}

func TestEnterpriseRules(t *testing.T) {
	var rules validation.EnterpriseRules
	assert.True(t, rules.IsValidEnterpriseType("LLC"))
	assert.True(t, rules.IsValidTaxID("12-3456789"))
	assert.False(t, rules.IsValidTaxID("123"))
}
