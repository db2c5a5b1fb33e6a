package registry

import (
	"reflect"
	"sync"

	"gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
	"github.com/neuronlabs/trackable/namespace"
)

// codeTag is the validation tag for the tracking codes.
const codeTag = "required,alphanum,max=32"

var (
	validate        = validator.New()
	defaultRegistry = New()
)

// Default gets the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Option is the registry creation option.
type Option func(r *Registry)

// WithStrictSeverity enforces the tracking codes to end with a known severity letter.
func WithStrictSeverity() Option {
	return func(r *Registry) {
		r.strictSeverity = true
	}
}

// Registry maps the tracking codes into the definitions.
type Registry struct {
	lock           sync.RWMutex
	definitions    map[Code]Definition
	order          []Code
	namespaces     *namespace.Index
	sealed         bool
	strictSeverity bool
}

// New creates new empty registry.
func New(options ...Option) *Registry {
	r := &Registry{
		definitions: make(map[Code]Definition),
		namespaces:  namespace.NewIndex(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// SetStrictSeverity enables or disables the severity suffix validation for next registrations.
func (r *Registry) SetStrictSeverity(strict bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.strictSeverity = strict
}

// Register stores the definition 'def' under its code. The registration is atomic - on
// failure nothing is stored. The code must be unique within the registry - a duplicate
// returns an error with class RegistryCodeDuplicate and the first definition stays intact.
func (r *Registry) Register(def Definition) error {
	if isNil(def) {
		return errors.New(class.RegistryDefinitionNil, "registering nil definition")
	}
	code := def.Code()

	r.lock.Lock()
	defer r.lock.Unlock()

	if r.sealed {
		return errors.Newf(class.RegistryStateSealed, "registering: '%s' in sealed registry", code)
	}
	if err := ValidateCode(code, r.strictSeverity); err != nil {
		return err
	}
	if _, exists := r.definitions[code]; exists {
		return errors.Newf(class.RegistryCodeDuplicate, "tracking code: '%s' is already registered", code)
	}
	if err := r.namespaces.Add(def.Namespace(), string(code)); err != nil {
		return err
	}
	r.definitions[code] = def
	r.order = append(r.order, code)
	return nil
}

// MustRegister registers the definition. Panics on error.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Lookup gets the definition registered under the 'code'. Unknown codes return
// an error with class RegistryCodeUnknown.
func (r *Registry) Lookup(code Code) (Definition, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	def, ok := r.definitions[code]
	if !ok {
		return nil, errors.Newf(class.RegistryCodeUnknown, "tracking code: '%s' is not registered", code)
	}
	return def, nil
}

// Contains checks if the 'code' is registered.
func (r *Registry) Contains(code Code) bool {
	r.lock.RLock()
	defer r.lock.RUnlock()

	_, ok := r.definitions[code]
	return ok
}

// Definitions gets all the definitions in the registration order.
func (r *Registry) Definitions() []Definition {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.definitionsFor(r.order)
}

// Len gets the number of registered definitions.
func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.order)
}

// Namespace gets the definitions grouped directly under the path 'p' in the registration order.
func (r *Registry) Namespace(p namespace.Path) []Definition {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.membersFor(r.namespaces.Members(p))
}

// Namespaces gets the namespace paths in the order of their first use.
func (r *Registry) Namespaces() []namespace.Path {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.namespaces.Paths()
}

// Subtree gets the definitions grouped under the path 'p' and all of its subpaths in the
// registration order.
func (r *Registry) Subtree(p namespace.Path) []Definition {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.membersFor(r.namespaces.Subtree(p))
}

// Seal makes the registry read-only. Any further registration fails with
// the RegistryStateSealed class.
func (r *Registry) Seal() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.sealed = true
}

// Sealed checks if the registry is read-only.
func (r *Registry) Sealed() bool {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.sealed
}

func (r *Registry) definitionsFor(codes []Code) []Definition {
	result := make([]Definition, len(codes))
	for i, code := range codes {
		result[i] = r.definitions[code]
	}
	return result
}

func (r *Registry) membersFor(keys []string) []Definition {
	result := make([]Definition, len(keys))
	for i, key := range keys {
		result[i] = r.definitions[Code(key)]
	}
	return result
}

// ValidateCode checks if the 'code' is well-formed: non-empty, alphanumeric and at most
// 32 characters long. With 'strict' set the code must also end with a known severity letter.
func ValidateCode(code Code, strict bool) error {
	if err := validate.Var(string(code), codeTag); err != nil {
		return errors.Newf(class.RegistryCodeInvalid, "invalid tracking code: '%s'", code).WithDetail(err.Error())
	}
	if strict && code.Severity() == SeverityUnknown {
		return errors.Newf(class.RegistryCodeInvalid, "tracking code: '%s' doesn't end with a known severity letter", code)
	}
	return nil
}

// Lookup gets the definition with provided 'code' from the Default registry.
func Lookup(code Code) (Definition, error) {
	return defaultRegistry.Lookup(code)
}

// Register stores the definition in the Default registry.
func Register(def Definition) error {
	return defaultRegistry.Register(def)
}

func isNil(def Definition) bool {
	if def == nil {
		return true
	}
	v := reflect.ValueOf(def)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
