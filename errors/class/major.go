package class

import (
	"errors"
)

var majors = newContainer()

// Major is a 7 bit top level error classification.
type Major uint8

// Description gets the major registered description.
func (m Major) Description() string {
	return majors.description(uint16(m))
}

// Minors gets the registered minors for given major 'm'.
func (m Major) Minors() []Minor {
	if !m.Valid() {
		return nil
	}
	count := majors.child(uint16(m)).count()
	minors := make([]Minor, count)
	for i := uint16(0); i < count; i++ {
		minors[i] = Minor{value: i + 1, major: m}
	}
	return minors
}

// MustRegisterMinor registers the minor classification for given Major 'm', 'name' - unique
// name for given Major and optional 'description'. Panics when the major is invalid or the
// name is already taken.
func (m Major) MustRegisterMinor(name string, description ...string) Minor {
	minor, err := m.RegisterMinor(name, description...)
	if err != nil {
		panic(err)
	}
	return minor
}

// Name returns the major registered name.
func (m Major) Name() string {
	return majors.name(uint16(m))
}

// RegisterMinor registers the minor classification for given Major 'm', 'name' - unique name
// for given Major and optional 'description'.
func (m Major) RegisterMinor(name string, description ...string) (Minor, error) {
	if !m.Valid() {
		return Minor{}, errors.New("invalid major")
	}
	id, err := majors.child(uint16(m)).register(name, maxMinorValue, description...)
	if err != nil {
		return Minor{}, err
	}
	return Minor{value: id, major: m}, nil
}

// Valid checks if the major is registered.
func (m Major) Valid() bool {
	return m != 0 && m <= maxMajorValue && majors.has(uint16(m))
}

// RegisterMajor registers new major error classification with provided 'name' and optional
// 'description'. Returns an error if the name is already registered or there is already
// a maximum number of majors.
func RegisterMajor(name string, description ...string) (Major, error) {
	id, err := majors.register(name, maxMajorValue, description...)
	if err != nil {
		return Major(0), err
	}
	return Major(id), nil
}

// MustRegisterMajor registers new major error classification with provided 'name' and optional
// 'description'. Panics when the major already exists.
func MustRegisterMajor(name string, description ...string) Major {
	m, err := RegisterMajor(name, description...)
	if err != nil {
		panic(err)
	}
	return m
}

// Majors lists all registered majors in the registration order.
func Majors() []Major {
	count := majors.count()
	result := make([]Major, count)
	for i := uint16(0); i < count; i++ {
		result[i] = Major(i + 1)
	}
	return result
}
