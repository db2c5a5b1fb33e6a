package class

import (
	"errors"
	"strings"
)

const (
	majorBitSize = 7
	minorBitSize = 10
	indexBitSize = 32 - majorBitSize - minorBitSize

	maxIndexValue = (1 << indexBitSize) - 1
	maxMinorValue = (1 << minorBitSize) - 1
	maxMajorValue = (1 << majorBitSize) - 1

	majorMinorMask = uint32(maxMajorValue<<minorBitSize|maxMinorValue) << indexBitSize
)

// Class is the error classification of the trackable packages.
// It is composed of the major, minor and index subclassifications packed into a single
// 32-bit number: major takes 7, minor 10 and index 15 bits.
// Example:
//  0000001 0000000010 000000000000011
//  major 1 (Registry), minor 2 (Code), index 3 (Invalid).
// Major is a top level division - i.e. 'Registry', 'Template', 'Config'.
// Minor divides the major into subsystems - i.e. Registry 'Code', Registry 'State'.
// Index is the most precise classification - i.e. Registry - Code - Duplicate.
type Class uint32

// Index gets the index subclassification of the class.
func (c Class) Index() Index {
	return Index{value: uint16(c & maxIndexValue), minor: c.Minor()}
}

// IsMajor checks if the given class is composed of provided major 'm'.
func (c Class) IsMajor(m Major) bool {
	return c.Major() == m
}

// IsMinor checks if the given class is composed of provided minor 'm'.
func (c Class) IsMinor(m Minor) bool {
	return c.Minor() == m
}

// Major gets the major subclassification of the class.
func (c Class) Major() Major {
	return Major(c >> (32 - majorBitSize))
}

// Minor gets the minor subclassification of the class.
func (c Class) Minor() Minor {
	return Minor{value: uint16(uint32(c)>>indexBitSize) & maxMinorValue, major: c.Major()}
}

// MjrMnrMasked returns the class value masked by the major and minor value only.
func (c Class) MjrMnrMasked() uint32 {
	return uint32(c) & majorMinorMask
}

// String implements fmt.Stringer interface. The name is the concatenation of the
// registered major, minor and index names with the spaces removed.
func (c Class) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Replace(c.Major().Name(), " ", "", -1))

	minor := c.Minor()
	if !minor.Valid() {
		return sb.String()
	}
	sb.WriteString(strings.Replace(minor.Name(), " ", "", -1))

	if index := c.Index(); index.Valid() {
		sb.WriteString(strings.Replace(index.Name(), " ", "", -1))
	}
	return sb.String()
}

// NewClass gets new class for the provided 'index'.
// If the index or any of its parents is not registered the function returns an error.
func NewClass(index Index) (Class, error) {
	minor := index.Minor()
	if !minor.Major().Valid() {
		return Class(0), errors.New("provided invalid major")
	}
	if !minor.Valid() {
		return Class(0), errors.New("provided invalid minor")
	}
	if !index.Valid() {
		return Class(0), errors.New("provided invalid index")
	}
	return pack(minor.major, minor.value, index.value), nil
}

// MustNewClass gets new class for the provided 'index'. Panics on invalid index.
func MustNewClass(index Index) Class {
	c, err := NewClass(index)
	if err != nil {
		panic(err)
	}
	return c
}

// NewMinorClass gets the class composed only of the provided 'minor' and its major.
func NewMinorClass(minor Minor) (Class, error) {
	if !minor.Major().Valid() {
		return Class(0), errors.New("provided invalid major")
	}
	if !minor.Valid() {
		return Class(0), errors.New("provided invalid minor")
	}
	return pack(minor.major, minor.value, 0), nil
}

// MustNewMinorClass creates new minor class for provided argument.
// If the minor value is not valid the function panics.
func MustNewMinorClass(minor Minor) Class {
	c, err := NewMinorClass(minor)
	if err != nil {
		panic(err)
	}
	return c
}

func pack(major Major, minor, index uint16) Class {
	return Class(uint32(major)<<(32-majorBitSize) | uint32(minor)<<indexBitSize | uint32(index))
}
