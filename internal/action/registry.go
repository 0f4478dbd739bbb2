// Package action resolves free-text action names to the closed set of
// variants a command domain understands.
//
// Resolution is a case-insensitive exact match. Aliases are separate entries
// with their own variant, so a caller switching over the variants has to
// handle each alias on purpose.
package action

import (
	"fmt"
	"sort"
	"strings"

	"github.com/conneroisu/devutils/internal/errors"
)

// Registry maps the lower-cased names of a domain to its variants.
type Registry[A comparable] struct {
	domain string
	noun   string
	byName map[string]A
	names  map[A]string
	valid  []string
}

// NewRegistry builds a registry once at startup. Two names that collide
// after lower-casing, or two names for one variant, are programming errors
// and panic.
func NewRegistry[A comparable](domain string, entries map[string]A) *Registry[A] {
	return NewNamedRegistry(domain, "action", entries)
}

// NewNamedRegistry builds a registry whose names are not actions; noun is
// used in the error for an unknown name.
func NewNamedRegistry[A comparable](domain, noun string, entries map[string]A) *Registry[A] {
	r := &Registry[A]{
		domain: domain,
		noun:   noun,
		byName: make(map[string]A, len(entries)),
		names:  make(map[A]string, len(entries)),
		valid:  make([]string, 0, len(entries)),
	}

	for name, variant := range entries {
		key := strings.ToLower(name)
		if _, dup := r.byName[key]; dup {
			panic(fmt.Sprintf("action: duplicate %s %s %q", domain, noun, key))
		}
		if other, dup := r.names[variant]; dup {
			panic(fmt.Sprintf("action: %s names %q and %q share a variant", domain, other, key))
		}
		r.byName[key] = variant
		r.names[variant] = key
		r.valid = append(r.valid, key)
	}
	sort.Strings(r.valid)

	return r
}

// Domain returns the command domain the registry belongs to.
func (r *Registry[A]) Domain() string {
	return r.domain
}

// Resolve returns the variant named by raw.
func (r *Registry[A]) Resolve(raw string) (A, error) {
	if variant, ok := r.byName[strings.ToLower(raw)]; ok {
		return variant, nil
	}

	var zero A
	return zero, errors.NewInvalidNameError(r.domain, r.noun, raw, r.Names())
}

// Name returns the registered name of a variant.
func (r *Registry[A]) Name(variant A) string {
	return r.names[variant]
}

// Names returns every valid name, sorted and lower-cased.
func (r *Registry[A]) Names() []string {
	out := make([]string, len(r.valid))
	copy(out, r.valid)
	return out
}

// Unhandled is returned by a transformation whose switch has no case for a
// registered variant.
func Unhandled[A comparable](r *Registry[A], variant A) error {
	return errors.NewInternalError(fmt.Sprintf("%s %s %q has no implementation", r.domain, r.noun, r.Name(variant)), nil)
}

// Usage renders the valid names for help text.
func (r *Registry[A]) Usage() string {
	return strings.Join(r.valid, ", ")
}
