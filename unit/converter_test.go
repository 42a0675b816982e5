package unit

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConverter(t *testing.T) *Converter {
	t.Helper()
	cat, err := DefaultCatalog()
	require.NoError(t, err)
	return NewConverter(cat, WithLogger(zerolog.Nop()))
}

func precision(p int) *int { return &p }

func TestConverter_Convert(t *testing.T) {
	converter := newTestConverter(t)

	testCases := []struct {
		description string
		request     *Request
		expect      *Result
		delta       float64
	}{
		{
			description: "meters to centimeter",
			request:     &Request{Value: 100, FromUnit: "meters", ToUnit: "centimeter"},
			expect:      &Result{Category: "length", InputValue: 100, FromUnit: "m", ToUnit: "cm", Result: 10000, Precision: 6},
		},
		{
			description: "celsius to fahrenheit",
			request:     &Request{Value: 0, FromUnit: "celsius", ToUnit: "fahrenheit"},
			expect:      &Result{Category: "temperature", InputValue: 0, FromUnit: "C", ToUnit: "F", Result: 32, Precision: 6},
		},
		{
			description: "F to K",
			request:     &Request{Value: 212, FromUnit: "F", ToUnit: "K"},
			expect:      &Result{Category: "temperature", InputValue: 212, FromUnit: "F", ToUnit: "K", Result: 373.15, Precision: 6},
			delta:       1e-9,
		},
		{
			description: "identity temperature",
			request:     &Request{Value: 98.6, FromUnit: "fahrenheit", ToUnit: "fahrenheit"},
			expect:      &Result{Category: "temperature", InputValue: 98.6, FromUnit: "F", ToUnit: "F", Result: 98.6, Precision: 6},
		},
		{
			description: "pounds to kilograms with precision",
			request:     &Request{Value: 10, FromUnit: "lbs", ToUnit: "kg", Precision: precision(2)},
			expect:      &Result{Category: "mass", InputValue: 10, FromUnit: "lb", ToUnit: "kg", Result: 4.54, Precision: 2},
		},
		{
			description: "precision clamped high",
			request:     &Request{Value: 1, FromUnit: "in", ToUnit: "ft", Precision: precision(99)},
			expect:      &Result{Category: "length", InputValue: 1, FromUnit: "in", ToUnit: "ft", Result: 0.083333333333, Precision: 12},
		},
		{
			description: "precision clamped low",
			request:     &Request{Value: 1500, FromUnit: "m", ToUnit: "km", Precision: precision(-5)},
			expect:      &Result{Category: "length", InputValue: 1500, FromUnit: "m", ToUnit: "km", Result: 2, Precision: 0},
		},
		{
			description: "kelvin to celsius",
			request:     &Request{Value: 0, FromUnit: "kelvin", ToUnit: "°C", Precision: precision(2)},
			expect:      &Result{Category: "temperature", InputValue: 0, FromUnit: "K", ToUnit: "C", Result: -273.15, Precision: 2},
		},
		{
			description: "hours to minutes",
			request:     &Request{Value: 1.5, FromUnit: "hours", ToUnit: "minutes"},
			expect:      &Result{Category: "time", InputValue: 1.5, FromUnit: "h", ToUnit: "min", Result: 90, Precision: 6},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := converter.Convert(tc.request)
			require.NoError(t, err)
			if tc.delta > 0 {
				assert.InDelta(t, tc.expect.Result, actual.Result, tc.delta)
				actual.Result = tc.expect.Result
			}
			assert.EqualValues(t, tc.expect, actual)
		})
	}
}

func TestConverter_Errors(t *testing.T) {
	converter := newTestConverter(t)

	testCases := []struct {
		description string
		request     *Request
		kind        error
		message     string
	}{
		{
			description: "incompatible categories",
			request:     &Request{Value: 1, FromUnit: "kg", ToUnit: "seconds"},
			kind:        ErrIncompatibleUnits,
			message:     "Incompatible units 'kg' and 'seconds' (categories: mass vs time)",
		},
		{
			description: "unknown from unit",
			request:     &Request{Value: 5, FromUnit: "furlong", ToUnit: "meter"},
			kind:        ErrUnknownUnit,
			message:     "Unknown from_unit: 'furlong'",
		},
		{
			description: "unknown to unit",
			request:     &Request{Value: 5, FromUnit: "meter", ToUnit: "parsec"},
			kind:        ErrUnknownUnit,
			message:     "Unknown to_unit: 'parsec'",
		},
		{
			description: "from checked before to",
			request:     &Request{Value: 5, FromUnit: "furlong", ToUnit: "parsec"},
			kind:        ErrUnknownUnit,
			message:     "Unknown from_unit: 'furlong'",
		},
		{
			description: "not a number",
			request:     &Request{Value: math.NaN(), FromUnit: "m", ToUnit: "cm"},
			kind:        ErrInvalidInput,
		},
		{
			description: "infinite",
			request:     &Request{Value: math.Inf(1), FromUnit: "m", ToUnit: "cm"},
			kind:        ErrInvalidInput,
		},
		{
			description: "nil request",
			kind:        ErrInvalidInput,
		},
		{
			description: "ratio overflow",
			request:     &Request{Value: 1e308, FromUnit: "km", ToUnit: "mm"},
			kind:        ErrResultOutOfRange,
			message:     "Result out of range: 1e+308 km -> mm",
		},
		{
			description: "temperature overflow",
			request:     &Request{Value: 1.7e308, FromUnit: "C", ToUnit: "F"},
			kind:        ErrResultOutOfRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := converter.Convert(tc.request)
			assert.Nil(t, actual)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind), "expected %v, got %v", tc.kind, err)
			assert.True(t, IsKind(err, tc.kind))
			if tc.message != "" {
				assert.EqualValues(t, tc.message, err.Error())
			}
		})
	}

	_, err := converter.Convert(&Request{Value: 5, FromUnit: "furlong", ToUnit: "m"})
	var conversionErr *ConversionError
	require.True(t, errors.As(err, &conversionErr))
	assert.Equal(t, "furlong", conversionErr.Unit)
	assert.Equal(t, RoleFrom, conversionErr.Role)

	assert.EqualValues(t, "Unknown unit: 'furlong'", (&ConversionError{Kind: ErrUnknownUnit, Unit: "furlong"}).Error())
}

func TestConverter_UnsupportedKinds(t *testing.T) {
	cat, err := newTestCatalog(t, `{"categories":{
		"brightness":{"kind":"logarithmic","units":{"db":{"aliases":["decibel"]},"np":{"aliases":["neper"]}}},
		"pressure":{"kind":"affine","units":{"pa":{},"psi":{}}}
	}}`)
	require.NoError(t, err)
	converter := NewConverter(cat, WithLogger(zerolog.Nop()))

	_, err = converter.Convert(&Request{Value: 1, FromUnit: "decibel", ToUnit: "np"})
	assert.True(t, errors.Is(err, ErrUnsupportedCategoryKind))
	assert.EqualValues(t, "Unsupported category kind: logarithmic", err.Error())

	_, err = converter.Convert(&Request{Value: 1, FromUnit: "pa", ToUnit: "psi"})
	assert.True(t, errors.Is(err, ErrUnsupportedCategoryKind))
}

func TestConverter_CategoryClosure(t *testing.T) {
	converter := newTestConverter(t)
	cat := converter.Catalog()

	var keys []string
	for _, name := range cat.Categories() {
		category, _ := cat.Category(name)
		keys = append(keys, category.UnitKeys()...)
	}
	for _, from := range keys {
		for _, to := range keys {
			fromCategory, _ := cat.CategoryOf(from)
			toCategory, _ := cat.CategoryOf(to)
			result, err := converter.Convert(&Request{Value: 1, FromUnit: from, ToUnit: to})
			if fromCategory != toCategory {
				assert.True(t, errors.Is(err, ErrIncompatibleUnits), "%s -> %s", from, to)
				continue
			}
			if assert.NoError(t, err, "%s -> %s", from, to) {
				assert.Equal(t, fromCategory, result.Category)
			}
		}
	}
}

func TestConverter_RatioRoundTrip(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)
	// full precision keeps the round trip independent of factor magnitudes
	converter := NewConverter(cat, WithLogger(zerolog.Nop()), WithDefaultPrecision(MaxPrecision))

	for _, name := range cat.Categories() {
		category, _ := cat.Category(name)
		if category.Kind != KindRatio {
			continue
		}
		keys := category.UnitKeys()
		for _, a := range keys {
			for _, b := range keys {
				for _, v := range []float64{1, 42.5, 1234.5678} {
					there, err := category.Convert(v, a, b)
					require.NoError(t, err)
					back, err := category.Convert(there, b, a)
					require.NoError(t, err)
					assert.InEpsilon(t, v, back, 1e-9, "%s -> %s -> %s", a, b, a)
				}
				res, err := converter.Convert(&Request{Value: 7, FromUnit: a, ToUnit: b})
				require.NoError(t, err)
				back, err := converter.Convert(&Request{Value: res.Result, FromUnit: b, ToUnit: a})
				require.NoError(t, err)
				assert.InDelta(t, 7, back.Result, 1e-6*math.Max(1, category.Units[b].Factor/category.Units[a].Factor))
			}
		}
	}
}

func TestConverter_PrecisionClampEquivalence(t *testing.T) {
	converter := newTestConverter(t)
	high, err := converter.Convert(&Request{Value: 1, FromUnit: "mile", ToUnit: "km", Precision: precision(99)})
	require.NoError(t, err)
	twelve, err := converter.Convert(&Request{Value: 1, FromUnit: "mile", ToUnit: "km", Precision: precision(12)})
	require.NoError(t, err)
	assert.EqualValues(t, twelve, high)

	low, err := converter.Convert(&Request{Value: 1, FromUnit: "mile", ToUnit: "km", Precision: precision(-5)})
	require.NoError(t, err)
	zero, err := converter.Convert(&Request{Value: 1, FromUnit: "mile", ToUnit: "km", Precision: precision(0)})
	require.NoError(t, err)
	assert.EqualValues(t, zero, low)
	assert.EqualValues(t, 2, zero.Result)
}

func TestConverter_Logs(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	converter := NewConverter(cat, WithLogger(zerolog.New(buf)))

	_, err = converter.Convert(&Request{Value: 100, FromUnit: "meters", ToUnit: "cm"})
	require.NoError(t, err)
	_, err = converter.Convert(&Request{Value: 1, FromUnit: "kg", ToUnit: "s"})
	require.Error(t, err)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	record := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(lines[0], &record))
	assert.Equal(t, "info", record["level"])
	assert.Equal(t, "m", record["from"])
	assert.Equal(t, "cm", record["to"])
	assert.Equal(t, "length", record["category"])
	assert.EqualValues(t, 10000, record["result"])
}

func TestParseValue(t *testing.T) {
	testCases := []struct {
		in      interface{}
		out     float64
		invalid bool
	}{
		{in: 1.5, out: 1.5},
		{in: 3, out: 3},
		{in: int64(-2), out: -2},
		{in: float32(0.5), out: 0.5},
		{in: json.Number("12.25"), out: 12.25},
		{in: "12", invalid: true},
		{in: true, invalid: true},
		{in: nil, invalid: true},
		{in: json.Number("abc"), invalid: true},
		{in: math.NaN(), invalid: true},
	}
	for _, tc := range testCases {
		actual, err := ParseValue(tc.in)
		if tc.invalid {
			assert.True(t, errors.Is(err, ErrInvalidInput), "ParseValue(%v)", tc.in)
			continue
		}
		require.NoError(t, err)
		assert.EqualValues(t, tc.out, actual)
	}
}
