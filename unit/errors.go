package unit

import (
	"errors"
	"fmt"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Error kinds, comparable with errors.Is.
var (
	ErrInvalidInput                     = constError("invalid input")
	ErrUnknownUnit                      = constError("unknown unit")
	ErrIncompatibleUnits                = constError("incompatible units")
	ErrUnsupportedCategoryKind          = constError("unsupported category kind")
	ErrUnsupportedUnitForCategory       = constError("unsupported unit for category")
	ErrUnsupportedTemperatureConversion = constError("unsupported temperature conversion")
	ErrResultOutOfRange                 = constError("result out of range")

	// ErrCatalogIntegrity is returned by NewCatalog for an inconsistent document.
	ErrCatalogIntegrity = constError("catalog integrity")
)

// Role identifies which side of a conversion an error refers to.
type Role string

const (
	RoleFrom Role = "from"
	RoleTo   Role = "to"
)

// ConversionError carries the context needed to build a user facing message.
type ConversionError struct {
	Kind         error
	Unit         string // raw unit as supplied by the caller
	Role         Role
	FromUnit     string
	ToUnit       string
	FromCategory string
	ToCategory   string
	CategoryKind string
	Detail       string
}

func (e *ConversionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ErrInvalidInput:
		if e.Detail != "" {
			return "value must be a number: " + e.Detail
		}
		return "value must be a number"
	case ErrUnknownUnit:
		if e.Role == "" {
			return fmt.Sprintf("Unknown unit: '%s'", e.Unit)
		}
		return fmt.Sprintf("Unknown %s_unit: '%s'", e.Role, e.Unit)
	case ErrIncompatibleUnits:
		return fmt.Sprintf("Incompatible units '%s' and '%s' (categories: %s vs %s)",
			e.FromUnit, e.ToUnit, categoryLabel(e.FromCategory), categoryLabel(e.ToCategory))
	case ErrUnsupportedCategoryKind:
		return fmt.Sprintf("Unsupported category kind: %s", e.CategoryKind)
	case ErrUnsupportedUnitForCategory:
		return fmt.Sprintf("Unsupported unit for this category: %s -> %s", e.FromUnit, e.ToUnit)
	case ErrUnsupportedTemperatureConversion:
		return fmt.Sprintf("Unsupported temperature conversion: %s -> %s", e.FromUnit, e.ToUnit)
	case ErrResultOutOfRange:
		return fmt.Sprintf("Result out of range: %s %s -> %s", e.Detail, e.FromUnit, e.ToUnit)
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return "conversion error"
}

func (e *ConversionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

// IsKind reports whether err is a conversion failure of the given kind.
func IsKind(err error, kind error) bool {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

func categoryLabel(name string) string {
	if name == "" {
		return "None"
	}
	return name
}

func integrityError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrCatalogIntegrity}, args...)...)
}
