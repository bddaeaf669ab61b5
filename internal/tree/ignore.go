package tree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const (
	nodeModulesDirectoryName = "node_modules"
	gitDirectoryName         = ".git"
	nextDirectoryName        = ".next"
	pycacheDirectoryName     = "__pycache__"

	errorEmptyIgnoreNameFormat     = "ignore name at position %d is empty"
	errorRelativeIgnoreNameFormat  = "ignore name %q refers to a relative directory"
	errorSeparatorIgnoreNameFormat = "ignore name %q contains a path separator; only base names are matched"
)

// IgnoreSet holds literal base names excluded from output and traversal.
type IgnoreSet map[string]struct{}

// DefaultIgnoreSet returns a newly allocated set of the built-in ignored names.
func DefaultIgnoreSet() IgnoreSet {
	return NewIgnoreSet(nodeModulesDirectoryName, gitDirectoryName, nextDirectoryName, pycacheDirectoryName)
}

// NewIgnoreSet builds a set from the provided names. Names are not validated.
func NewIgnoreSet(names ...string) IgnoreSet {
	ignoreSet := make(IgnoreSet, len(names))
	for _, name := range names {
		ignoreSet[name] = struct{}{}
	}
	return ignoreSet
}

// ParseIgnoreNames validates user supplied names and builds a set from them.
// Every invalid name is reported in the returned error.
func ParseIgnoreNames(names []string) (IgnoreSet, error) {
	var validationErrors *multierror.Error
	ignoreSet := make(IgnoreSet, len(names))
	for nameIndex, rawName := range names {
		name := strings.TrimSpace(rawName)
		switch {
		case name == "":
			validationErrors = multierror.Append(validationErrors, fmt.Errorf(errorEmptyIgnoreNameFormat, nameIndex))
		case name == "." || name == "..":
			validationErrors = multierror.Append(validationErrors, fmt.Errorf(errorRelativeIgnoreNameFormat, name))
		case strings.ContainsAny(name, `/\`):
			validationErrors = multierror.Append(validationErrors, fmt.Errorf(errorSeparatorIgnoreNameFormat, name))
		default:
			ignoreSet[name] = struct{}{}
		}
	}
	if validationErrors != nil {
		return nil, validationErrors.ErrorOrNil()
	}
	return ignoreSet, nil
}

// Contains reports whether name is ignored.
func (ignoreSet IgnoreSet) Contains(name string) bool {
	_, ignored := ignoreSet[name]
	return ignored
}

// Union returns a new set holding the members of both sets.
func (ignoreSet IgnoreSet) Union(other IgnoreSet) IgnoreSet {
	combined := make(IgnoreSet, len(ignoreSet)+len(other))
	for name := range ignoreSet {
		combined[name] = struct{}{}
	}
	for name := range other {
		combined[name] = struct{}{}
	}
	return combined
}

// Names returns the members in ascending order.
func (ignoreSet IgnoreSet) Names() []string {
	names := make([]string, 0, len(ignoreSet))
	for name := range ignoreSet {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
