package database

import "strings"

// ConvertIdentifier converts name to the case md stores unquoted
// identifiers in.
func ConvertIdentifier(md MetaData, name string) string {
	switch md.IdentifierCase() {
	case IdentifierUpper:
		return strings.ToUpper(name)
	case IdentifierLower:
		return strings.ToLower(name)
	default:
		return name
	}
}
