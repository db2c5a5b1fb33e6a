package namespace

import (
	"github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
)

// Index groups keys under namespace paths. Each key might belong to a single path only.
// Enumerating the index always yields the keys in their insertion order.
// The Index is not safe for concurrent use - the owner is responsible for the locking.
type Index struct {
	paths   []Path
	members map[Path][]string
	owners  map[string]Path
	order   []string
}

// NewIndex creates new empty Index.
func NewIndex() *Index {
	return &Index{
		members: make(map[Path][]string),
		owners:  make(map[string]Path),
	}
}

// Add groups the 'key' under the path 'p'. Adding the same key to the same path is a no-op,
// adding it to another path fails with the RegistryNamespaceConflict class.
func (i *Index) Add(p Path, key string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if owner, ok := i.owners[key]; ok {
		if owner == p {
			return nil
		}
		return errors.Newf(class.RegistryNamespaceConflict, "key: '%s' is already grouped under namespace: '%s'", key, owner)
	}

	if _, ok := i.members[p]; !ok {
		i.paths = append(i.paths, p)
	}
	i.members[p] = append(i.members[p], key)
	i.owners[key] = p
	i.order = append(i.order, key)
	return nil
}

// Len is the number of indexed keys.
func (i *Index) Len() int {
	return len(i.order)
}

// Members gets the keys grouped directly under the path 'p'.
func (i *Index) Members(p Path) []string {
	members := i.members[p]
	result := make([]string, len(members))
	copy(result, members)
	return result
}

// Owner gets the path of the 'key'.
func (i *Index) Owner(key string) (Path, bool) {
	p, ok := i.owners[key]
	return p, ok
}

// Paths gets the paths in the order of their first use.
func (i *Index) Paths() []Path {
	result := make([]Path, len(i.paths))
	copy(result, i.paths)
	return result
}

// Subtree gets the keys grouped under path 'p' and all of its descendants.
func (i *Index) Subtree(p Path) []string {
	var result []string
	for _, key := range i.order {
		if p.Contains(i.owners[key]) {
			result = append(result, key)
		}
	}
	return result
}
