package taxid

import (
	"fmt"
	"unicode"
)

// pesos del dígito de verificación NIT (Orden Administrativa 4 de 1989, DIAN),
// aplicados a los 9 dígitos base de izquierda a derecha.
var nitWeights = [9]int{41, 37, 29, 23, 19, 17, 13, 7, 3}

// ValidateNIT valida un NIT colombiano de persona jurídica: 9 dígitos base más dígito de
// verificación módulo 11. Acepta "900123456-8", "900.123.456-8" o "9001234568".
// Cualquier carácter distinto de dígito, punto, guion o espacio lo invalida.
func ValidateNIT(taxID string) error {
	digits, err := nitDigits(taxID)
	if err != nil {
		return err
	}
	if len(digits) != 10 {
		return fmt.Errorf("taxid: NIT debe tener 10 dígitos (9 + verificación), se encontraron %d", len(digits))
	}
	expected := checkDigit(digits[:9])
	if digits[9] != expected {
		return fmt.Errorf("taxid: dígito de verificación del NIT inválido: esperado %c, recibido %c", expected, digits[9])
	}
	return nil
}

// Normalize devuelve la forma canónica de un tax id: un NIT válido queda en sus 10 dígitos
// ("900.123.456-8" y "900123456-8" → "9001234568"). Cualquier otro valor se devuelve igual.
func Normalize(taxID string) string {
	if ValidateNIT(taxID) != nil {
		return taxID
	}
	digits, _ := nitDigits(taxID)
	return string(digits)
}

// ComputeNITVerificationDigit calcula el dígito de verificación para los 9 primeros dígitos del NIT.
func ComputeNITVerificationDigit(taxID string) (byte, error) {
	digits, err := nitDigits(taxID)
	if err != nil {
		return 0, err
	}
	if len(digits) < 9 {
		return 0, fmt.Errorf("taxid: se requieren al menos 9 dígitos para calcular el dígito de verificación, se encontraron %d", len(digits))
	}
	return checkDigit(digits[:9]), nil
}

func checkDigit(base []byte) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * nitWeights[i]
	}
	remainder := sum % 11
	if remainder == 0 || remainder == 1 {
		return byte('0' + remainder)
	}
	return byte('0' + (11 - remainder))
}

func nitDigits(s string) ([]byte, error) {
	var out []byte
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			out = append(out, byte(r))
		case r == '.' || r == '-' || unicode.IsSpace(r):
		default:
			return nil, fmt.Errorf("taxid: carácter no permitido en NIT: %q", r)
		}
	}
	return out, nil
}
