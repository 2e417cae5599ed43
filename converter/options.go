package converter

import "github.com/erraggy/swagschema/schemaerrors"

// Option configures a Converter for the WithOptions entry points.
type Option func(c *Converter) error

// WithCopyDefinitions controls whether referenced definitions are copied
// into the result's definitions map. Defaults to true.
//
// Example:
//
//	result, err := converter.ConvertSchemaWithOptions(schema, root, swaggerRoot,
//	    converter.WithCopyDefinitions(false),
//	)
func WithCopyDefinitions(copy bool) Option {
	return func(c *Converter) error {
		c.CopyDefinitions = copy
		return nil
	}
}

// WithLogger sets a structured logger for debug output during conversion.
// A nil logger restores the default NopLogger.
//
// Use NewSlogAdapter to wrap a *slog.Logger:
//
//	result, err := converter.ConvertSchemaWithOptions(schema, root, swaggerRoot,
//	    converter.WithLogger(converter.NewSlogAdapter(slog.Default())),
//	)
func WithLogger(l Logger) Option {
	return func(c *Converter) error {
		if l == nil {
			l = NopLogger{}
		}
		c.Logger = l
		return nil
	}
}

// WithNormalizedNames enables definition-name normalization using the given
// configuration. Definition ids containing characters that are invalid in
// $ref values (Response[User], List<Item>) are rewritten while copying, and
// every $ref in the result is updated to match.
//
// Example:
//
//	result, err := converter.ConvertSchemaWithOptions(schema, root, swaggerRoot,
//	    converter.WithNormalizedNames(converter.DefaultNamingConfig()),
//	)
func WithNormalizedNames(cfg NamingConfig) Option {
	return func(c *Converter) error {
		if !cfg.Strategy.valid() {
			return &schemaerrors.ConfigError{
				Option:  "NamingStrategy",
				Value:   int(cfg.Strategy),
				Message: "unknown naming strategy",
			}
		}
		c.NormalizeNames = true
		c.Naming = cfg
		return nil
	}
}

// ConvertSchemaWithOptions converts a single Swagger schema using functional
// options. It's equivalent to creating a Converter with New(), applying each
// option, and calling ConvertSchema().
func ConvertSchemaWithOptions(schema, root, swaggerRoot map[string]any, opts ...Option) (map[string]any, error) {
	c, err := newWithOptions(opts)
	if err != nil {
		return nil, err
	}
	return c.ConvertSchema(schema, root, swaggerRoot)
}

// ConvertSchemaDefinitionsWithOptions converts an entire definitions section
// using functional options.
func ConvertSchemaDefinitionsWithOptions(definitions map[string]any, opts ...Option) (map[string]any, error) {
	c, err := newWithOptions(opts)
	if err != nil {
		return nil, err
	}
	return c.ConvertSchemaDefinitions(definitions)
}

func newWithOptions(opts []Option) (*Converter, error) {
	c := New()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
