// Package taxid reúne las reglas de formato de identificaciones tributarias de empresas:
// EIN (Estados Unidos) y NIT (Colombia, DIAN).
package taxid

import "regexp"

var einPattern = regexp.MustCompile(`^[0-9]{2}-[0-9]{7}$`)

// IsEIN informa si s tiene formato EIN "NN-NNNNNNN". El prefijo "00" no lo asigna el IRS.
func IsEIN(s string) bool {
	if !einPattern.MatchString(s) {
		return false
	}
	return s[:2] != "00"
}
