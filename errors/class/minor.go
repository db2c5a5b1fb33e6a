package class

import (
	"errors"
)

// Minor is a 10 bit mid level error classification unique within given major.
type Minor struct {
	value uint16
	major Major
}

// Description gets the minor's description.
func (m Minor) Description() string {
	if !m.Valid() {
		return ""
	}
	return m.container().description(m.value)
}

// Indexes returns minor's registered indexes.
func (m Minor) Indexes() []Index {
	if !m.Valid() {
		return nil
	}
	count := m.container().child(m.value).count()
	indexes := make([]Index, count)
	for i := uint16(0); i < count; i++ {
		indexes[i] = Index{value: i + 1, minor: m}
	}
	return indexes
}

// Major gets the minor's root Major.
func (m Minor) Major() Major {
	return m.major
}

// MustRegisterIndex registers and returns index for given minor value.
// Panics if the index name already exists or the minor is not valid.
func (m Minor) MustRegisterIndex(name string, description ...string) Index {
	idx, err := m.RegisterIndex(name, description...)
	if err != nil {
		panic(err)
	}
	return idx
}

// Name gets the minor's registered name.
func (m Minor) Name() string {
	if !m.Valid() {
		return ""
	}
	return m.container().name(m.value)
}

// RegisterIndex registers the index for given Minor.
func (m Minor) RegisterIndex(name string, description ...string) (Index, error) {
	if !m.Valid() {
		return Index{}, errors.New("invalid minor provided")
	}
	id, err := m.container().child(m.value).register(name, maxIndexValue, description...)
	if err != nil {
		return Index{}, err
	}
	return Index{value: id, minor: m}, nil
}

// Valid checks if the Minor is registered within its major.
func (m Minor) Valid() bool {
	if !m.major.Valid() || m.value == 0 || m.value > maxMinorValue {
		return false
	}
	return m.container().has(m.value)
}

// Value gets the minor's uint16 value.
func (m Minor) Value() uint16 {
	return m.value
}

func (m Minor) container() *container {
	return majors.child(uint16(m.major))
}
