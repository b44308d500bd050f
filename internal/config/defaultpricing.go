package config

import (
	"errors"
	"sync/atomic"

	"github.com/spf13/viper"
)

// PriceIncrement is one entry of the default price list. It has no identity:
// the default pricing is a pure value, never persisted to the store.
type PriceIncrement struct {
	Price int    `json:"price" mapstructure:"price"`
	Name  string `json:"name" mapstructure:"name"`
	Value int    `json:"value" mapstructure:"value"`
}

// DefaultPriceList is the built-in fallback used when no pricing.yml exists.
func DefaultPriceList() []PriceIncrement {
	return []PriceIncrement{
		{Price: 3, Name: "10min", Value: 10},
		{Price: 5, Name: "20min", Value: 20},
		{Price: 12, Name: "60min", Value: 60},
	}
}

// DefaultPricingHolder holds the process-wide default price list, loaded once
// at startup and read-only thereafter.
type DefaultPricingHolder struct {
	current atomic.Value // holds []PriceIncrement
}

// NewDefaultPricingHolder loads the default price list from pricing.yml.
func NewDefaultPricingHolder() (*DefaultPricingHolder, error) {
	v := viper.New()

	v.SetConfigName("pricing")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/fleetrate/config") // Volume-mounted config
	v.AddConfigPath("/etc/fleetrate")            // System config
	v.AddConfigPath(".")                         // Current directory (dev mode)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// if config file not found, use defaults
		v.SetDefault("default_pricing", DefaultPriceList())
	}

	var items []PriceIncrement
	if err := v.UnmarshalKey("default_pricing", &items); err != nil {
		return nil, err
	}
	if err := validatePriceList(items); err != nil {
		return nil, err
	}

	return NewDefaultPricingHolderFromItems(items), nil
}

// NewDefaultPricingHolderFromItems wraps an already-loaded price list.
func NewDefaultPricingHolderFromItems(items []PriceIncrement) *DefaultPricingHolder {
	holder := &DefaultPricingHolder{}
	holder.current.Store(append([]PriceIncrement(nil), items...))
	return holder
}

// Get returns a copy of the default price list. Callers may mutate the result
// freely without corrupting the process-wide default.
func (h *DefaultPricingHolder) Get() []PriceIncrement {
	items := h.current.Load().([]PriceIncrement)
	return append([]PriceIncrement(nil), items...)
}

func validatePriceList(items []PriceIncrement) error {
	if len(items) == 0 {
		return errors.New("default pricing must not be empty")
	}
	for _, item := range items {
		if item.Name == "" {
			return errors.New("default pricing entry missing name")
		}
		if item.Price < 0 || item.Value < 0 {
			return errors.New("default pricing entry has negative amount")
		}
	}
	return nil
}
