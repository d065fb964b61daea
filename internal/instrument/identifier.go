package instrument

import "regexp"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var cKeywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true,
	"sizeof": true, "static": true, "struct": true, "switch": true,
	"typedef": true, "union": true, "unsigned": true, "void": true,
	"volatile": true, "while": true,
}

// IsLegalIdentifier reports whether name can be used as a C variable name.
func IsLegalIdentifier(name string) bool {
	return identifierPattern.MatchString(name) && !cKeywords[name]
}

// declaredName strips pointer stars or a single address-of sign from a
// declared variable name.
func declaredName(name string) string {
	switch {
	case len(name) > 0 && name[0] == '*':
		for len(name) > 0 && name[0] == '*' {
			name = name[1:]
		}
	case len(name) > 0 && name[0] == '&':
		name = name[1:]
	}
	return name
}
