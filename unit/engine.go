package unit

import "strings"

// Convert applies the category's conversion model to canonical keys.
func (c *Category) Convert(value float64, from, to string) (float64, error) {
	switch c.Kind {
	case KindRatio:
		return ConvertRatio(value, from, to, c)
	case KindAffine:
		if c.Name == TemperatureCategory {
			return ConvertTemperature(value, from, to)
		}
	}
	return 0, &ConversionError{Kind: ErrUnsupportedCategoryKind, CategoryKind: string(c.Kind), FromUnit: from, ToUnit: to}
}

// ConvertRatio converts through the category base unit: value*factor(from)
// gives the base quantity, dividing by factor(to) gives the target.
func ConvertRatio(value float64, from, to string, category *Category) (float64, error) {
	fromDef, okFrom := category.Units[from]
	toDef, okTo := category.Units[to]
	if !okFrom || !okTo {
		return 0, &ConversionError{Kind: ErrUnsupportedUnitForCategory, FromUnit: from, ToUnit: to, FromCategory: category.Name, ToCategory: category.Name}
	}
	inBase := value * fromDef.Factor
	return inBase / toDef.Factor, nil
}

// ConvertTemperature converts between the C, K and F scales.
func ConvertTemperature(value float64, from, to string) (float64, error) {
	f := strings.ToUpper(from)
	t := strings.ToUpper(to)
	if f == t {
		return value, nil
	}
	switch [2]string{f, t} {
	case [2]string{"C", "K"}:
		return value + 273.15, nil
	case [2]string{"K", "C"}:
		return value - 273.15, nil
	case [2]string{"C", "F"}:
		return value*9.0/5.0 + 32.0, nil
	case [2]string{"F", "C"}:
		return (value - 32.0) * 5.0 / 9.0, nil
	case [2]string{"F", "K"}:
		return (value + 459.67) * 5.0 / 9.0, nil
	case [2]string{"K", "F"}:
		return value*9.0/5.0 - 459.67, nil
	}
	return 0, &ConversionError{Kind: ErrUnsupportedTemperatureConversion, FromUnit: from, ToUnit: to}
}
