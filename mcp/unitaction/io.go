package unitaction

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/viant/unitconv-mcp/unit"
)

// ConvertInput is the argument object of the convert method.
type ConvertInput struct {
	Value     float64 `json:"value" description:"The numeric value to convert."`
	FromUnit  string  `json:"from_unit" description:"Unit to convert FROM (aliases allowed, e.g. meters, centigrade)."`
	ToUnit    string  `json:"to_unit" description:"Unit to convert TO (aliases allowed)."`
	Precision *int    `json:"precision,omitempty" description:"Number of decimals to round the result to (default 6, 0-12 allowed)."`
}

// UnmarshalJSON rejects non numeric values with unit.ErrInvalidInput.
func (i *ConvertInput) UnmarshalJSON(data []byte) error {
	aux := struct {
		Value     json.RawMessage `json:"value"`
		FromUnit  string          `json:"from_unit"`
		ToUnit    string          `json:"to_unit"`
		Precision *int            `json:"precision,omitempty"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	decoder := json.NewDecoder(bytes.NewReader(aux.Value))
	decoder.UseNumber()
	var raw interface{}
	if len(aux.Value) > 0 {
		if err := decoder.Decode(&raw); err != nil {
			return &unit.ConversionError{Kind: unit.ErrInvalidInput, Detail: err.Error()}
		}
	}
	value, err := unit.ParseValue(raw)
	if err != nil {
		return err
	}
	i.Value = value
	i.FromUnit = aux.FromUnit
	i.ToUnit = aux.ToUnit
	i.Precision = aux.Precision
	return nil
}

// Request converts the input into a converter request.
func (i *ConvertInput) Request() *unit.Request {
	return &unit.Request{Value: i.Value, FromUnit: i.FromUnit, ToUnit: i.ToUnit, Precision: i.Precision}
}

// ResolveInput names a unit to resolve.
type ResolveInput struct {
	Unit string `json:"unit" description:"Unit name or alias to resolve."`
}

// ResolveOutput describes a resolved unit.
type ResolveOutput struct {
	Input      string   `json:"input"`
	Normalized string   `json:"normalized"`
	Unit       string   `json:"unit"`
	Category   string   `json:"category"`
	Kind       string   `json:"kind"`
	Base       string   `json:"base,omitempty"`
	Factor     float64  `json:"factor,omitempty"`
	Aliases    []string `json:"aliases,omitempty"`
}

// UnitsInput is the (empty) argument object of the units method.
type UnitsInput struct{}

// UnitsOutput carries the catalog document verbatim.
type UnitsOutput struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	Document string `json:"document"`
}

func (o *ResolveOutput) String() string {
	return fmt.Sprintf("%s -> %s (%s)", o.Input, o.Unit, o.Category)
}
