package class

// Index is a 15 bit lowest level error classification.
// It is the most precise division - i.e.:
// 'major' Registry
//	'minor' Code
//	 'index' Duplicate.
type Index struct {
	value uint16
	minor Minor
}

// Class gets the index related class. Returns zero class for invalid index.
func (i Index) Class() Class {
	if !i.Valid() {
		return Class(0)
	}
	return pack(i.minor.major, i.minor.value, i.value)
}

// Description gets the index registered description.
func (i Index) Description() string {
	if !i.Valid() {
		return ""
	}
	return i.container().description(i.value)
}

// Minor returns index related Minor.
func (i Index) Minor() Minor {
	return i.minor
}

// Name gets the index stored name.
func (i Index) Name() string {
	if !i.Valid() {
		return ""
	}
	return i.container().name(i.value)
}

// Valid checks if the provided index is registered.
func (i Index) Valid() bool {
	if i.value == 0 || i.value > maxIndexValue || !i.minor.Valid() {
		return false
	}
	return i.container().has(i.value)
}

// Value gets the index uint16 value.
func (i Index) Value() uint16 {
	return i.value
}

func (i Index) container() *container {
	return i.minor.container().child(i.minor.value)
}
