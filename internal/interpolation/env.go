// Package interpolation expands ${VAR} and ${VAR:default} references in configuration values.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// LookupFunc resolves a variable name, reporting whether it is set.
type LookupFunc func(name string) (string, bool)

// ${NAME} or ${NAME:default}; the colon is captured so ${NAME:} means an empty default.
var referencePattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// Expand replaces variable references in input using the process environment.
//
//	${VAR_NAME}
//	${VAR_NAME:default_value}
//
// A reference without a default whose variable is unset is an error; every such variable is
// reported and the reference is left in place.
func Expand(input string) (string, error) {
	return ExpandWith(input, defaultLookup)
}

func defaultLookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// ExpandWith is Expand with a custom lookup.
func ExpandWith(input string, lookup LookupFunc) (string, error) {
	if input == "" {
		return "", nil
	}

	var missing []error
	result := referencePattern.ReplaceAllStringFunc(input, func(match string) string {
		sub := referencePattern.FindStringSubmatch(match)
		name, hasDefault, def := sub[1], sub[2] == ":", sub[3]

		if value, ok := lookup(name); ok {
			return value
		}
		if hasDefault {
			return def
		}
		missing = append(missing, fmt.Errorf("%w: %s", ErrUndefinedVariable, name))
		return match
	})

	return result, errors.Join(missing...)
}
