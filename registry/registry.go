package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mwantia/cmdline/platform"
	"github.com/mwantia/cmdline/value"
	"github.com/tidwall/btree"
)

// AnyOperands disables the operand count check for an action.
const AnyOperands = -1

var (
	ErrInvalidName   = errors.New("registry: invalid name")
	ErrDuplicateName = errors.New("registry: duplicate name")
)

// ActionSpec describes a registered action.
type ActionSpec struct {
	Name     string // normalized name
	Help     string // help text shown in usage
	Operands int    // exact operand count, or AnyOperands
}

// OptionSpec describes a registered option.
type OptionSpec struct {
	Name   string       // normalized name
	Help   string       // help text shown in usage
	Caster value.Caster // optional, replaces builtin casting when set
}

type ActionOpt func(*ActionSpec)

type OptionOpt func(*OptionSpec)

// WithOperands requires an action to be followed by exactly n operands.
func WithOperands(n int) ActionOpt {
	return func(spec *ActionSpec) {
		spec.Operands = n
	}
}

// WithCaster attaches a custom caster to an option.
func WithCaster(c value.Caster) OptionOpt {
	return func(spec *OptionSpec) {
		spec.Caster = c
	}
}

type Option func(*Registry)

// Strict rejects empty and duplicate names instead of overwriting.
func Strict() Option {
	return func(r *Registry) {
		r.strict = true
	}
}

// Registry holds the actions and options known to a command line, keyed by
// their normalized names. It must not be modified once parsing has started.
type Registry struct {
	profile platform.Profile
	strict  bool

	actions *btree.Map[string, ActionSpec]
	options *btree.Map[string, OptionSpec]
}

func New(profile platform.Profile, opts ...Option) *Registry {
	r := &Registry{
		profile: profile,
		actions: btree.NewMap[string, ActionSpec](0),
		options: btree.NewMap[string, OptionSpec](0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Profile returns the platform profile names are normalized with.
func (r *Registry) Profile() platform.Profile {
	return r.profile
}

// AddAction registers an action. Without options the action accepts any
// number of operands.
func (r *Registry) AddAction(name, help string, opts ...ActionOpt) error {
	spec, err := r.newAction(name, help, opts...)
	if err != nil {
		return err
	}

	r.actions.Set(spec.Name, spec)
	return nil
}

// CheckAction returns the error AddAction would fail with, without
// registering anything.
func (r *Registry) CheckAction(name string, opts ...ActionOpt) error {
	_, err := r.newAction(name, "", opts...)
	return err
}

func (r *Registry) newAction(name, help string, opts ...ActionOpt) (ActionSpec, error) {
	key := r.profile.Normalize(name)
	if err := r.check(key, hasKey(r.actions, key)); err != nil {
		return ActionSpec{}, fmt.Errorf("action '%s': %w", name, err)
	}

	spec := ActionSpec{
		Name:     key,
		Help:     help,
		Operands: AnyOperands,
	}
	for _, opt := range opts {
		opt(&spec)
	}
	if spec.Operands < AnyOperands {
		return ActionSpec{}, fmt.Errorf("action '%s': invalid operand count %d", name, spec.Operands)
	}
	return spec, nil
}

// AddOption registers an option.
func (r *Registry) AddOption(name, help string, opts ...OptionOpt) error {
	spec, err := r.newOption(name, help, opts...)
	if err != nil {
		return err
	}

	r.options.Set(spec.Name, spec)
	return nil
}

// CheckOption returns the error AddOption would fail with, without
// registering anything.
func (r *Registry) CheckOption(name string) error {
	_, err := r.newOption(name, "")
	return err
}

func (r *Registry) newOption(name, help string, opts ...OptionOpt) (OptionSpec, error) {
	key := r.profile.Normalize(name)
	if err := r.check(key, hasKey(r.options, key)); err != nil {
		return OptionSpec{}, fmt.Errorf("option '%s': %w", name, err)
	}

	spec := OptionSpec{
		Name: key,
		Help: help,
	}
	for _, opt := range opts {
		opt(&spec)
	}
	return spec, nil
}

func (r *Registry) check(key string, exists bool) error {
	if !r.strict {
		return nil
	}
	if key == "" || r.profile.HasDelimiter(key) || strings.IndexByte(key, r.profile.Separator) >= 0 {
		return ErrInvalidName
	}
	if exists {
		return ErrDuplicateName
	}
	return nil
}

// Action looks up an action by a raw token.
func (r *Registry) Action(token string) (ActionSpec, bool) {
	return r.actions.Get(r.profile.Normalize(token))
}

// Option looks up an option by a raw key without delimiter.
func (r *Registry) Option(key string) (OptionSpec, bool) {
	return r.options.Get(r.profile.Normalize(key))
}

func (r *Registry) HasActions() bool {
	return r.actions.Len() > 0
}

func (r *Registry) HasOptions() bool {
	return r.options.Len() > 0
}

// Actions returns all actions sorted by normalized name.
func (r *Registry) Actions() []ActionSpec {
	return values(r.actions)
}

// Options returns all options sorted by normalized name.
func (r *Registry) Options() []OptionSpec {
	return values(r.options)
}

// SuggestAction returns the single registered action related to token by
// substring containment.
func (r *Registry) SuggestAction(token string) (string, bool) {
	return suggest(r.actions, r.profile.Normalize(token))
}

// SuggestOption returns the single registered option related to key by
// substring containment.
func (r *Registry) SuggestOption(key string) (string, bool) {
	return suggest(r.options, r.profile.Normalize(key))
}

// suggest only considers plain containment in either direction. Anything
// other than exactly one candidate yields no suggestion.
func suggest[V any](m *btree.Map[string, V], token string) (string, bool) {
	if token == "" {
		return "", false
	}

	var candidates []string
	m.Scan(func(name string, _ V) bool {
		if strings.Contains(token, name) || strings.Contains(name, token) {
			candidates = append(candidates, name)
		}
		return len(candidates) < 2
	})

	if len(candidates) != 1 {
		return "", false
	}
	return candidates[0], true
}

func hasKey[V any](m *btree.Map[string, V], key string) bool {
	_, ok := m.Get(key)
	return ok
}

func values[V any](m *btree.Map[string, V]) []V {
	out := make([]V, 0, m.Len())
	m.Scan(func(_ string, v V) bool {
		out = append(out, v)
		return true
	})
	return out
}
