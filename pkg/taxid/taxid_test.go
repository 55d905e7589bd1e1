package taxid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/enterprise-api/pkg/taxid"
)

func TestIsEIN(t *testing.T) {
	cases := map[string]bool{
		"12-3456789":  true,
		"98-7654321":  true,
		"00-1234567":  false,
		"123456789":   false,
		"12-345678":   false,
		"12-34567890": false,
		"1a-3456789":  false,
		" 12-3456789": false,
		"":            false,
	}
	for in, want := range cases {
		assert.Equal(t, want, taxid.IsEIN(in), "IsEIN(%q)", in)
	}
}

// 900123456: 9*41+0*37+0*29+1*23+2*19+3*17+4*13+5*7+6*3 = 369+23+38+51+52+35+18 = 586
// 586 % 11 = 3 → dígito 11-3 = 8.
func TestComputeNITVerificationDigit(t *testing.T) {
	d, err := taxid.ComputeNITVerificationDigit("900.123.456")
	require.NoError(t, err)
	assert.Equal(t, byte('8'), d)

	_, err = taxid.ComputeNITVerificationDigit("12345")
	assert.Error(t, err)
}

func TestValidateNIT(t *testing.T) {
	assert.NoError(t, taxid.ValidateNIT("900123456-8"))
	assert.NoError(t, taxid.ValidateNIT("900.123.456-8"))
	assert.NoError(t, taxid.ValidateNIT("9001234568"))

	assert.Error(t, taxid.ValidateNIT("900123456-7"), "dígito incorrecto")
	assert.Error(t, taxid.ValidateNIT("900123456"), "sin dígito de verificación")
	assert.Error(t, taxid.ValidateNIT("900123456-8X"), "carácter no permitido")
	assert.Error(t, taxid.ValidateNIT(""))
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"900.123.456-8": "9001234568",
		"900123456-8":   "9001234568",
		"9001234568":    "9001234568",
		"12-3456789":    "12-3456789",
		"900123456-7":   "900123456-7",
		"abc":           "abc",
	}
	for in, want := range cases {
		assert.Equal(t, want, taxid.Normalize(in), "Normalize(%q)", in)
	}
}
