package dataset

// DefaultExchangeRate converts source prices (USD) into the target currency
// (IDR) at load time.
const DefaultExchangeRate = 16000

var defaultDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// Option configures loading via functional options.
type Option func(*config)

type config struct {
	ExchangeRate float64
	DateLayouts  []string
	Sheet        string // XLSX sheet name; empty means first sheet
}

// WithExchangeRate overrides the fixed source-to-target conversion rate.
func WithExchangeRate(rate float64) Option {
	return func(c *config) { c.ExchangeRate = rate }
}

// WithDateLayouts replaces the accepted Order_Date/Delivery_Date layouts.
func WithDateLayouts(layouts ...string) Option {
	return func(c *config) { c.DateLayouts = layouts }
}

// WithSheet selects a named worksheet when loading XLSX input.
func WithSheet(name string) Option {
	return func(c *config) { c.Sheet = name }
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		ExchangeRate: DefaultExchangeRate,
		DateLayouts:  defaultDateLayouts,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
