package view

import (
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/viewkit/viewkit/document"
)

// A Constructor builds a typed model instance from a Document. The bool
// convention of the accessor callbacks does not apply here: polymorphic
// construction is an operation callers drive explicitly, so a shape the
// constructor cannot handle is an error, not silent absence.
type Constructor func(document.Document) (any, error)

// Scheme is a dynamic registry of model constructors, dispatched on a
// Document's "type" discriminator key. It covers the polymorphic case the
// per-call conversion callbacks cannot: a nested object whose concrete model
// shape is only known from the data itself.
type Scheme struct {
	mu sync.RWMutex
	// allowUnknown makes New fall back to a plain *View for unregistered
	// types instead of failing.
	allowUnknown bool
	logger       *slog.Logger
	constructors map[Type]Constructor
}

// NewScheme creates a new registry.
func NewScheme(opts ...SchemeOption) *Scheme {
	s := &Scheme{
		constructors: make(map[Type]Constructor),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type SchemeOption func(*Scheme)

// WithAllowUnknown allows unknown types to be constructed as plain Views.
func WithAllowUnknown() SchemeOption {
	return func(s *Scheme) {
		s.allowUnknown = true
	}
}

// WithLogger attaches a logger for debug-level registry events. A nil logger
// keeps the Scheme silent.
func WithLogger(logger *slog.Logger) SchemeOption {
	return func(s *Scheme) {
		s.logger = logger
	}
}

// Clone returns a copy of the Scheme with the same registrations.
func (s *Scheme) Clone() *Scheme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := NewScheme()
	clone.allowUnknown = s.allowUnknown
	clone.logger = s.logger
	maps.Copy(clone.constructors, s.constructors)
	return clone
}

// Register binds a constructor to one or more types. Registering a type
// twice is an error.
func (s *Scheme) Register(ctor Constructor, types ...Type) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, typ := range types {
		if _, exists := s.constructors[typ]; exists {
			return fmt.Errorf("type %q is already registered", typ)
		}
		s.constructors[typ] = ctor
		if s.logger != nil {
			s.logger.Debug("registered constructor", "type", typ.String())
		}
	}
	return nil
}

// MustRegister is Register, panicking on error.
func (s *Scheme) MustRegister(ctor Constructor, types ...Type) {
	if err := s.Register(ctor, types...); err != nil {
		panic(err)
	}
}

// IsRegistered reports whether a constructor is bound to typ.
func (s *Scheme) IsRegistered(typ Type) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.constructors[typ]
	return exists
}

// New constructs the model instance for doc by parsing its "type"
// discriminator and dispatching to the registered constructor. An
// unregistered type is an error unless the Scheme allows unknown types, in
// which case a plain *View over doc is returned.
func (s *Scheme) New(doc document.Document) (any, error) {
	rawType, ok := doc.Lookup(TypeKey)
	if !ok {
		return nil, fmt.Errorf("document has no %q key", TypeKey)
	}
	str, ok := rawType.(string)
	if !ok {
		return nil, fmt.Errorf("document %q key is %T, expected string", TypeKey, rawType)
	}
	typ, err := TypeFromString(str)
	if err != nil {
		return nil, fmt.Errorf("could not parse document type: %w", err)
	}

	s.mu.RLock()
	ctor, exists := s.constructors[typ]
	allowUnknown := s.allowUnknown
	logger := s.logger
	s.mu.RUnlock()

	if !exists {
		if allowUnknown {
			if logger != nil {
				logger.Debug("unknown type, constructing plain view", "type", typ.String())
			}
			return New(doc), nil
		}
		return nil, fmt.Errorf("unsupported type: %s", typ)
	}
	return ctor(doc)
}
