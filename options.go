package protoenum

import "go.uber.org/zap"

type (
	RegistryOptions struct {
		Logger      *zap.Logger
		Interpreted bool
	}
	RegistryOption func(*RegistryOptions)
)

func WithLogger(logger *zap.Logger) RegistryOption {
	return func(ro *RegistryOptions) {
		ro.Logger = logger
	}
}

// WithInterpreted makes the registry hand out Interpreted codecs instead of
// compiling dispatchers.
func WithInterpreted() RegistryOption {
	return func(ro *RegistryOptions) {
		ro.Interpreted = true
	}
}
