package currency

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig indicates a registration attempt with a config missing
// its code, name, or symbol.
var ErrInvalidConfig = errors.New("invalid currency config")

var validate = validator.New()

// Registry maps currency codes to their configs. All methods are safe for
// concurrent use; monetary values snapshot their config at construction, so
// mutating the registry never affects values that already exist.
type Registry struct {
	mu      sync.RWMutex
	configs map[string]Config
}

// NewRegistry returns an empty registry. Most callers want the process
// default registry instead; see Default.
func NewRegistry() *Registry {
	return &Registry{configs: make(map[string]Config)}
}

// Register validates and inserts the given configs, overwriting any entry
// that shares a code. It returns the configs as stored (with derived fields
// filled in). On a validation failure the failing config and everything
// after it are not registered; earlier configs in the same call are.
func (r *Registry) Register(cfgs ...Config) ([]Config, error) {
	registered := make([]Config, 0, len(cfgs))
	for _, cfg := range cfgs {
		if err := validate.Struct(cfg); err != nil {
			return registered, fmt.Errorf("%w: %q: %v", ErrInvalidConfig, cfg.Code, firstViolation(err))
		}
		cfg = cfg.normalize()
		r.mu.Lock()
		r.configs[cfg.Code] = cfg
		r.mu.Unlock()
		registered = append(registered, cfg)
	}
	return registered, nil
}

// firstViolation reduces a validator error to the first offending field so
// the wrapped message names what was missing.
func firstViolation(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("field %s failed %q", verrs[0].Field(), verrs[0].Tag())
	}
	return err.Error()
}

// Unregister removes the entries with the given codes. Absent codes are
// ignored.
func (r *Registry) Unregister(codes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, code := range codes {
		delete(r.configs, code)
	}
}

// Get looks up a config by code.
func (r *Registry) Get(code string) (Config, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[code]
	return cfg, ok
}

// All returns every registered config. Order is unspecified.
func (r *Registry) All() []Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Config, 0, len(r.configs))
	for _, cfg := range r.configs {
		out = append(out, cfg)
	}
	return out
}

// Len reports the number of registered configs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.configs)
}

// Initialize wipes the registry and reseeds it: with cfgs when given, with
// the built-in default set otherwise.
func (r *Registry) Initialize(cfgs ...Config) error {
	r.mu.Lock()
	r.configs = make(map[string]Config)
	r.mu.Unlock()
	if len(cfgs) == 0 {
		cfgs = DefaultConfigs()
	}
	_, err := r.Register(cfgs...)
	return err
}
