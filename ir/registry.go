package ir

import (
	"slices"
	"sync"
)

// Constructor builds the node for an object-call Name(args...).  It
// validates arity and argument domains and returns a *ConstructionError
// on violation.
type Constructor func(name string, args []*Node) (*Node, error)

// Registry maps object-call names to constructors.  Names absent from
// the registry construct generic objects.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry returns a registry holding the builtin types.
func NewRegistry() *Registry {
	r := &Registry{ctors: make(map[string]Constructor, len(builtins))}
	for name, ctor := range builtins {
		r.ctors[name] = ctor
	}
	return r
}

// Default is the process-wide registry used when no other registry is
// given.
var Default = NewRegistry()

// Register adds or replaces the constructor for name.  A nil ctor
// removes name, making it construct generic objects again.
func (r *Registry) Register(name string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ctor == nil {
		delete(r.ctors, name)
		return
	}
	r.ctors[name] = ctor
}

func (r *Registry) Lookup(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.ctors[name]
	return ctor, ok
}

// Construct builds name(args...).  If name is not registered the result
// is a generic object carrying name and args verbatim, and no error.
func (r *Registry) Construct(name string, args []*Node) (*Node, error) {
	ctor, ok := r.Lookup(name)
	if !ok {
		return NewObject(name, args...), nil
	}
	return ctor(name, args)
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

func Register(name string, ctor Constructor) {
	Default.Register(name, ctor)
}

func Lookup(name string) (Constructor, bool) {
	return Default.Lookup(name)
}

func Construct(name string, args []*Node) (*Node, error) {
	return Default.Construct(name, args)
}

func Names() []string {
	return Default.Names()
}

// Fixed returns a constructor accepting exactly arity arguments, each
// checked by check (which may be nil).
func Fixed(arity int, check func(i int, arg *Node) error) Constructor {
	return func(name string, args []*Node) (*Node, error) {
		if len(args) != arity {
			return nil, arityErr(name, args, arity)
		}
		if check != nil {
			for i, arg := range args {
				if err := check(i, arg); err != nil {
					return nil, &ConstructionError{Name: name, Args: args, Err: err}
				}
			}
		}
		return NewObject(name, args...), nil
	}
}
