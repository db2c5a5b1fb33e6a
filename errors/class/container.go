package class

import (
	"errors"
	"sync"
)

// container stores the names and descriptions registered on a single level of the
// classification tree. The identifiers are assigned sequentially starting from 1.
type container struct {
	lock         sync.RWMutex
	uniqueNames  map[string]uint16
	names        []string
	descriptions []string
	children     []*container
}

func newContainer() *container {
	return &container{uniqueNames: make(map[string]uint16)}
}

func (c *container) register(name string, limit int, description ...string) (uint16, error) {
	if name == "" {
		return 0, errors.New("empty classification name")
	}
	c.lock.Lock()
	defer c.lock.Unlock()

	if _, exists := c.uniqueNames[name]; exists {
		return 0, errors.New("classification name: '" + name + "' already registered")
	}
	if len(c.names) >= limit {
		return 0, errors.New("too many classifications registered")
	}

	c.names = append(c.names, name)
	var desc string
	if len(description) > 0 {
		desc = description[0]
	}
	c.descriptions = append(c.descriptions, desc)
	c.children = append(c.children, nil)

	id := uint16(len(c.names))
	c.uniqueNames[name] = id
	return id, nil
}

func (c *container) has(id uint16) bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return id != 0 && int(id) <= len(c.names)
}

func (c *container) count() uint16 {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return uint16(len(c.names))
}

func (c *container) name(id uint16) string {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if id == 0 || int(id) > len(c.names) {
		return ""
	}
	return c.names[id-1]
}

func (c *container) description(id uint16) string {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if id == 0 || int(id) > len(c.descriptions) {
		return ""
	}
	return c.descriptions[id-1]
}

// child gets the subclassification container of the 'id' entry. Creates it if not exists.
func (c *container) child(id uint16) *container {
	c.lock.Lock()
	defer c.lock.Unlock()
	if id == 0 || int(id) > len(c.children) {
		return nil
	}
	if c.children[id-1] == nil {
		c.children[id-1] = newContainer()
	}
	return c.children[id-1]
}

func (c *container) reset() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.uniqueNames = make(map[string]uint16)
	c.names = nil
	c.descriptions = nil
	c.children = nil
}
