// Package namespace groups the trackable definitions into hierarchical paths.
// The grouping is used only for discoverability - it never affects rendering.
package namespace

import (
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
)

// Separator divides the path segments.
const Separator = "/"

// Root is the empty path that contains all other paths.
const Root Path = ""

// Path is the hierarchical namespace name - i.e. 'LogMessages/Authentication/Security'.
type Path string

// New creates a path from the provided 'segments'.
func New(segments ...string) Path {
	return Path(strings.Join(segments, Separator))
}

// Parse parses and validates the path string.
func Parse(s string) (Path, error) {
	p := Path(strings.Trim(s, Separator))
	if err := p.Validate(); err != nil {
		return Root, err
	}
	return p, nil
}

// Child creates the subpath with provided 'segment'.
func (p Path) Child(segment string) Path {
	if p == Root {
		return Path(segment)
	}
	return p + Separator + Path(segment)
}

// Contains checks if the 'other' path is equal to 'p' or is one of its descendants.
func (p Path) Contains(other Path) bool {
	if p == Root || p == other {
		return true
	}
	return strings.HasPrefix(string(other), string(p)+Separator)
}

// Depth is the number of path segments.
func (p Path) Depth() int {
	if p == Root {
		return 0
	}
	return strings.Count(string(p), Separator) + 1
}

// Last gets the last segment of the path.
func (p Path) Last() string {
	i := strings.LastIndex(string(p), Separator)
	return string(p[i+1:])
}

// Parent gets the parent path. The parent of a single segment path is the Root.
func (p Path) Parent() Path {
	i := strings.LastIndex(string(p), Separator)
	if i == -1 {
		return Root
	}
	return p[:i]
}

// Segments splits the path into its segments.
func (p Path) Segments() []string {
	if p == Root {
		return nil
	}
	return strings.Split(string(p), Separator)
}

// String implements fmt.Stringer interface.
func (p Path) String() string {
	return string(p)
}

// Title gets the human readable form of the path - i.e.
// 'LogMessages/Authentication/AuthnOidc' is 'Log Messages > Authentication > Authn Oidc'.
func (p Path) Title() string {
	caser := cases.Title(language.English)
	segments := p.Segments()
	for i, segment := range segments {
		segments[i] = caser.String(strcase.ToDelimited(segment, ' '))
	}
	return strings.Join(segments, " > ")
}

// Validate checks if the path has no empty nor blank segments.
func (p Path) Validate() error {
	if p == Root {
		return nil
	}
	for _, segment := range p.Segments() {
		if strings.TrimSpace(segment) == "" {
			return errors.Newf(class.RegistryNamespaceInvalid, "namespace: '%s' contains an empty segment", p)
		}
		if strings.TrimSpace(segment) != segment {
			return errors.Newf(class.RegistryNamespaceInvalid, "namespace: '%s' segment: '%s' has surrounding whitespace", p, segment)
		}
	}
	return nil
}
