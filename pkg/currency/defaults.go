package currency

import "sync"

// DefaultConfigs returns the built-in currency set: the major fiat
// currencies plus the two crypto assets the backend supports out of the box.
func DefaultConfigs() []Config {
	return []Config{
		{Code: "USD", Name: "US Dollar", Symbol: "$", Decimals: 2},
		{Code: "EUR", Name: "Euro", Symbol: "€", Decimals: 2},
		{Code: "GBP", Name: "Pound Sterling", Symbol: "£", Decimals: 2},
		{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Decimals: 2},
		{Code: "BTC", Name: "Bitcoin", Symbol: "₿", Decimals: 8, IsCrypto: true},
		{Code: "ETH", Name: "Ether", Symbol: "Ξ", Decimals: 18, IsCrypto: true},
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry, seeding it with the built-in
// set on first use.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		// Built-in configs always pass validation.
		_ = defaultRegistry.Initialize()
	})
	return defaultRegistry
}

// Register registers cfgs in the default registry.
func Register(cfgs ...Config) ([]Config, error) {
	return Default().Register(cfgs...)
}

// Unregister removes codes from the default registry.
func Unregister(codes ...string) {
	Default().Unregister(codes...)
}

// Get looks up a code in the default registry.
func Get(code string) (Config, bool) {
	return Default().Get(code)
}

// Initialize wipes and reseeds the default registry.
func Initialize(cfgs ...Config) error {
	return Default().Initialize(cfgs...)
}

// Convenience accessors for the built-in set. These resolve lazily against
// the default registry, so they reflect re-registration and return the zero
// Config if the entry has been removed.

// USD returns the registered US dollar config.
func USD() Config { return lookup("USD") }

// EUR returns the registered euro config.
func EUR() Config { return lookup("EUR") }

// GBP returns the registered pound sterling config.
func GBP() Config { return lookup("GBP") }

// JPY returns the registered Japanese yen config.
func JPY() Config { return lookup("JPY") }

// BTC returns the registered bitcoin config.
func BTC() Config { return lookup("BTC") }

// ETH returns the registered ether config.
func ETH() Config { return lookup("ETH") }

func lookup(code string) Config {
	cfg, _ := Default().Get(code)
	return cfg
}
