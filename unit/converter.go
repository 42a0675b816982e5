package unit

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/viant/unitconv-mcp/internal/conv"
)

// Request is a single conversion call.
type Request struct {
	Value     float64
	FromUnit  string
	ToUnit    string
	Precision *int // nil selects the converter default
}

// Result describes a successful conversion.
type Result struct {
	Category   string  `json:"category" yaml:"category"`
	InputValue float64 `json:"input_value" yaml:"input_value"`
	FromUnit   string  `json:"from_unit" yaml:"from_unit"`
	ToUnit     string  `json:"to_unit" yaml:"to_unit"`
	Result     float64 `json:"result" yaml:"result"`
	Precision  int     `json:"precision" yaml:"precision"`
}

// Converter resolves, validates and converts unit quantities against an
// immutable catalog.
type Converter struct {
	catalog   *Catalog
	precision int
	logger    zerolog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for conversion records.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithDefaultPrecision overrides DefaultPrecision; the value is clamped.
func WithDefaultPrecision(precision int) Option {
	return func(c *Converter) {
		c.precision = ClampPrecision(precision)
	}
}

// NewConverter creates a converter.
func NewConverter(catalog *Catalog, opts ...Option) *Converter {
	ret := &Converter{catalog: catalog, precision: DefaultPrecision, logger: log.Logger}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Catalog returns the underlying catalog.
func (c *Converter) Catalog() *Catalog { return c.catalog }

// Document returns the catalog document verbatim.
func (c *Converter) Document() []byte { return c.catalog.Document() }

// DefaultPrecision returns the precision applied when a request has none.
func (c *Converter) DefaultPrecision() int { return c.precision }

// Convert converts req.Value from req.FromUnit to req.ToUnit.
func (c *Converter) Convert(req *Request) (*Result, error) {
	if req == nil {
		return nil, &ConversionError{Kind: ErrInvalidInput, Detail: "missing request"}
	}
	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		return nil, &ConversionError{Kind: ErrInvalidInput, Detail: strconv.FormatFloat(req.Value, 'g', -1, 64)}
	}
	src, ok := c.catalog.Resolve(req.FromUnit)
	if !ok {
		return nil, &ConversionError{Kind: ErrUnknownUnit, Unit: req.FromUnit, Role: RoleFrom}
	}
	dst, ok := c.catalog.Resolve(req.ToUnit)
	if !ok {
		return nil, &ConversionError{Kind: ErrUnknownUnit, Unit: req.ToUnit, Role: RoleTo}
	}

	fromCategory, okFrom := c.catalog.CategoryOf(src)
	toCategory, okTo := c.catalog.CategoryOf(dst)
	if !okFrom || !okTo || fromCategory != toCategory {
		return nil, &ConversionError{Kind: ErrIncompatibleUnits, FromUnit: req.FromUnit, ToUnit: req.ToUnit, FromCategory: fromCategory, ToCategory: toCategory}
	}
	category, ok := c.catalog.Category(fromCategory)
	if !ok {
		return nil, &ConversionError{Kind: ErrIncompatibleUnits, FromUnit: req.FromUnit, ToUnit: req.ToUnit, FromCategory: fromCategory, ToCategory: toCategory}
	}
	if !isSupported(category) {
		return nil, &ConversionError{Kind: ErrUnsupportedCategoryKind, CategoryKind: string(category.Kind), FromUnit: src, ToUnit: dst}
	}

	precision := ClampPrecision(conv.ValueOr(req.Precision, c.precision))
	raw, err := category.Convert(req.Value, src, dst)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return nil, &ConversionError{Kind: ErrResultOutOfRange, FromUnit: src, ToUnit: dst, Detail: strconv.FormatFloat(req.Value, 'g', -1, 64)}
	}
	rounded := Round(raw, precision)
	c.logger.Info().
		Float64("value", req.Value).
		Str("from", src).
		Float64("result", rounded).
		Str("to", dst).
		Str("category", fromCategory).
		Msg("converted")

	return &Result{
		Category:   fromCategory,
		InputValue: req.Value,
		FromUnit:   src,
		ToUnit:     dst,
		Result:     rounded,
		Precision:  precision,
	}, nil
}

func isSupported(category *Category) bool {
	switch category.Kind {
	case KindRatio:
		return true
	case KindAffine:
		return category.Name == TemperatureCategory
	}
	return false
}

// ParseValue accepts the numeric representations that reach the converter
// from decoded JSON or Go callers; anything else is ErrInvalidInput.
func ParseValue(value interface{}) (float64, error) {
	var ret float64
	switch actual := value.(type) {
	case float64:
		ret = actual
	case float32:
		ret = float64(actual)
	case int:
		ret = float64(actual)
	case int8:
		ret = float64(actual)
	case int16:
		ret = float64(actual)
	case int32:
		ret = float64(actual)
	case int64:
		ret = float64(actual)
	case uint:
		ret = float64(actual)
	case uint8:
		ret = float64(actual)
	case uint16:
		ret = float64(actual)
	case uint32:
		ret = float64(actual)
	case uint64:
		ret = float64(actual)
	case json.Number:
		f, err := actual.Float64()
		if err != nil {
			return 0, &ConversionError{Kind: ErrInvalidInput, Detail: err.Error()}
		}
		ret = f
	default:
		return 0, &ConversionError{Kind: ErrInvalidInput, Detail: fmt.Sprintf("%T", value)}
	}
	if math.IsNaN(ret) || math.IsInf(ret, 0) {
		return 0, &ConversionError{Kind: ErrInvalidInput, Detail: strconv.FormatFloat(ret, 'g', -1, 64)}
	}
	return ret, nil
}
