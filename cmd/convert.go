package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/unitconv-mcp/unit"
)

// ConvertCmd converts a value between units. Negative values need the
// --value=-40 form.
type ConvertCmd struct {
	Value     string `short:"v" long:"value" description:"numeric value to convert" required:"yes"`
	From      string `long:"from" description:"unit to convert from (aliases allowed)" required:"yes"`
	To        string `long:"to" description:"unit to convert to (aliases allowed)" required:"yes"`
	Precision *int   `short:"p" long:"precision" description:"decimals to round to (0-12, default 6)"`
	JSON      bool   `long:"json" description:"print result as JSON"`
}

func (c *ConvertCmd) Execute(_ []string) error {
	value, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
	if err != nil {
		return &unit.ConversionError{Kind: unit.ErrInvalidInput, Detail: fmt.Sprintf("%q", c.Value)}
	}
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	result, err := svc.Converter().Convert(&unit.Request{Value: value, FromUnit: c.From, ToUnit: c.To, Precision: c.Precision})
	if err != nil {
		return err
	}
	if c.JSON {
		return printJSON(result)
	}
	_, err = fmt.Fprintf(stdout, "%s %s = %s %s (%s)\n",
		formatNumber(result.InputValue), result.FromUnit, formatNumber(result.Result), result.ToUnit, result.Category)
	return err
}
