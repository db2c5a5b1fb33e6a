package template

import (
	"strconv"
	"strings"

	"github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
)

// MaxSlotIndex is the highest placeholder index allowed within a template.
const MaxSlotIndex = 1<<10 - 1

// Slot is a single substitution point within a template.
type Slot struct {
	// Index is the position of the argument substituted in this slot.
	Index int
	// Name is an optional, documentation only, semantic name of the slot.
	Name string
}

// String implements fmt.Stringer interface. Returns the slot in its template form.
func (s Slot) String() string {
	if s.Name == "" {
		return "{" + strconv.Itoa(s.Index) + "}"
	}
	return "{" + strconv.Itoa(s.Index) + "-" + s.Name + "}"
}

// segment is either a literal text or a slot reference.
type segment struct {
	literal string
	slot    int
}

// Template is a parsed, immutable message template.
type Template struct {
	raw      string
	segments []segment
	slots    []Slot
	arity    int
}

// Parse parses the 'raw' template string. The placeholders are stored in the order of
// their appearance. An error is returned only if a placeholder index exceeds MaxSlotIndex.
func Parse(raw string) (*Template, error) {
	t := &Template{raw: raw}

	var literal strings.Builder
	for i := 0; i < len(raw); {
		if raw[i] != '{' {
			next := strings.IndexByte(raw[i:], '{')
			if next == -1 {
				next = len(raw) - i
			}
			literal.WriteString(raw[i : i+next])
			i += next
			continue
		}

		slot, size, ok := scanSlot(raw[i:])
		if !ok {
			literal.WriteByte('{')
			i++
			continue
		}
		if slot.Index > MaxSlotIndex {
			return nil, errors.Newf(class.TemplateParseIndex, "placeholder: '%s' index exceeds maximum: %d", raw[i:i+size], MaxSlotIndex)
		}

		if literal.Len() > 0 {
			t.segments = append(t.segments, segment{literal: literal.String(), slot: -1})
			literal.Reset()
		}
		t.segments = append(t.segments, segment{slot: len(t.slots)})
		t.slots = append(t.slots, slot)
		if slot.Index+1 > t.arity {
			t.arity = slot.Index + 1
		}
		i += size
	}
	if literal.Len() > 0 {
		t.segments = append(t.segments, segment{literal: literal.String(), slot: -1})
	}
	return t, nil
}

// MustParse parses the 'raw' template. Panics on error.
func MustParse(raw string) *Template {
	t, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// scanSlot scans the placeholder token at the beginning of 's'. The 's' must start with '{'.
// Returns the slot, the token length and true if the token is a valid placeholder.
func scanSlot(s string) (Slot, int, bool) {
	i := 1
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 1 || i == len(s) {
		return Slot{}, 0, false
	}
	digits := s[1:i]

	var name string
	switch s[i] {
	case '}':
	case '-':
		end := strings.IndexByte(s[i+1:], '}')
		if end < 1 {
			return Slot{}, 0, false
		}
		name = s[i+1 : i+1+end]
		i += end + 1
	default:
		return Slot{}, 0, false
	}

	index, err := strconv.Atoi(digits)
	if err != nil {
		// the digits overflow an int.
		index = MaxSlotIndex + 1
	}
	return Slot{Index: index, Name: name}, i + 1, true
}

// Arity is the number of arguments required to render the template.
// It equals the highest placeholder index plus one.
func (t *Template) Arity() int {
	return t.arity
}

// Raw gets the template source string.
func (t *Template) Raw() string {
	return t.raw
}

// Slots gets the template slots in the order of their appearance.
func (t *Template) Slots() []Slot {
	slots := make([]Slot, len(t.slots))
	copy(slots, t.slots)
	return slots
}

// String implements fmt.Stringer interface.
func (t *Template) String() string {
	return t.raw
}

// Render substitutes each slot with the argument at the slot's index converted by ToString.
// The number of arguments must be equal to the template's Arity, otherwise an error of class
// TemplateRenderArgumentMismatch is returned.
func (t *Template) Render(args ...interface{}) (string, error) {
	if len(args) != t.arity {
		return "", errors.Newf(class.TemplateRenderArgumentMismatch, "template: '%s' requires %d arguments, provided: %d", t.raw, t.arity, len(args))
	}
	if len(t.slots) == 0 {
		return t.raw, nil
	}

	converted := make([]string, len(args))
	for i, arg := range args {
		converted[i] = ToString(arg)
	}

	var sb strings.Builder
	for _, seg := range t.segments {
		if seg.slot == -1 {
			sb.WriteString(seg.literal)
			continue
		}
		sb.WriteString(converted[t.slots[seg.slot].Index])
	}
	return sb.String(), nil
}
