package protoenum

import (
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/vedadiyan/protoenum/errors"
)

type (
	// Registry owns the enum types a serializer knows about and the codecs
	// built for them. Each codec is built at most once, on first use.
	Registry struct {
		options RegistryOptions
		types   sync.Map // reflect.Type -> *EnumType
		codecs  sync.Map // *EnumType -> *lazyCodec
		builds  atomic.Int64
	}

	lazyCodec struct {
		once  sync.Once
		codec Codec
		err   error
	}
)

func NewRegistry(opts ...RegistryOption) *Registry {
	out := new(Registry)
	for _, opt := range opts {
		opt(&out.options)
	}
	if out.options.Logger == nil {
		out.options.Logger = Logger()
	}
	return out
}

// Register associates t with its Go type. Registering a different enum type
// for a Go type that already has one fails.
func (r *Registry) Register(t *EnumType) error {
	existing, loaded := r.types.LoadOrStore(t.goType, t)
	if loaded && existing.(*EnumType) != t {
		r.options.Logger.Warn("enum type already registered",
			zap.String("enum", t.name),
			zap.Stringer("go_type", t.goType),
			zap.String("registered", existing.(*EnumType).name),
		)
		return errors.New(errors.PhaseCompile, errors.KindConfiguration).
			Enum(t.name).
			Value(t.goType.String()).
			Detail("Go type %s is already registered as %s", t.goType, existing.(*EnumType).name).
			Build()
	}
	return nil
}

func (r *Registry) Lookup(goType reflect.Type) (*EnumType, bool) {
	value, ok := r.types.Load(goType)
	if !ok {
		return nil, false
	}
	return value.(*EnumType), true
}

// Codec returns the codec for t, building it on first use. Concurrent first
// calls share a single build.
func (r *Registry) Codec(t *EnumType) (Codec, error) {
	value, ok := r.codecs.Load(t)
	if !ok {
		value, _ = r.codecs.LoadOrStore(t, new(lazyCodec))
	}
	lazy := value.(*lazyCodec)
	lazy.once.Do(func() {
		lazy.codec, lazy.err = r.build(t)
	})
	return lazy.codec, lazy.err
}

// CodecFor returns the codec of the enum registered for goType.
func (r *Registry) CodecFor(goType reflect.Type) (Codec, error) {
	t, ok := r.Lookup(goType)
	if !ok {
		return nil, errors.New(errors.PhaseCompile, errors.KindConfiguration).
			Value(goType.String()).
			Detail("no enum type registered for %s", goType).
			Build()
	}
	return r.Codec(t)
}

func (r *Registry) build(t *EnumType) (Codec, error) {
	r.builds.Add(1)
	if r.options.Interpreted {
		return NewInterpreted(t), nil
	}
	dispatcher, err := Compile(t)
	if err != nil {
		r.options.Logger.Warn("failed to compile enum dispatcher",
			zap.String("enum", t.name),
			zap.Error(err),
		)
		return nil, err
	}
	entries := 0
	if t.values != nil {
		entries = t.values.Len()
	}
	r.options.Logger.Debug("compiled enum dispatcher",
		zap.String("enum", t.name),
		zap.Stringer("representation", t.kind),
		zap.Int("entries", entries),
		zap.Int("groups", len(dispatcher.groups)),
	)
	return dispatcher, nil
}
