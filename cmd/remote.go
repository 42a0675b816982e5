package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/viant/mcp"
	"github.com/viant/unitconv-mcp/internal/conv"
	mcpctx "github.com/viant/unitconv-mcp/mcp/context"
	"github.com/viant/unitconv-mcp/mcp/unitaction"
	"github.com/viant/unitconv-mcp/unit"

	svcmcp "github.com/viant/unitconv-mcp/mcp"
)

// RemoteCmd talks to a remote unit converter MCP server: it reads the units
// resource, lists tools or converts a value.
type RemoteCmd struct {
	Address   string `short:"a" long:"address" description:"SSE address of the remote MCP server" required:"yes"`
	Token     string `long:"token" description:"bearer token"`
	Units     bool   `long:"units" description:"print the remote units document"`
	Tools     bool   `long:"tools" description:"list remote tools"`
	Value     string `short:"v" long:"value" description:"numeric value to convert"`
	From      string `long:"from" description:"unit to convert from"`
	To        string `long:"to" description:"unit to convert to"`
	Precision *int   `short:"p" long:"precision" description:"decimals to round to"`
	JSON      bool   `long:"json" description:"print result as JSON"`
}

func (c *RemoteCmd) Execute(_ []string) error {
	if !c.Units && !c.Tools && c.Value == "" {
		return fmt.Errorf("one of --units, --tools or --value is required")
	}
	var input *unitaction.ConvertInput
	if c.Value != "" {
		value, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
		if err != nil {
			return &unit.ConversionError{Kind: unit.ErrInvalidInput, Detail: fmt.Sprintf("%q", c.Value)}
		}
		if c.From == "" || c.To == "" {
			return fmt.Errorf("--from and --to are required with --value")
		}
		input = &unitaction.ConvertInput{Value: value, FromUnit: c.From, ToUnit: c.To, Precision: c.Precision}
	}

	ctx := mcpctx.WithAuthToken(context.Background(), c.Token)
	_, authenticated := mcpctx.AuthToken(ctx)
	log.Debug().Str("address", c.Address).Bool("authenticated", authenticated).Msg("remote unit server")

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	cli, err := svc.NewRemoteClient(ctx, &mcp.ClientOptions{
		Name:    "unitconv-remote",
		Version: "1.0",
		Transport: mcp.ClientTransport{
			Type:                "sse",
			ClientTransportHTTP: mcp.ClientTransportHTTP{URL: c.Address},
		},
	})
	if err != nil {
		return err
	}

	switch {
	case c.Units:
		document, err := svcmcp.RemoteUnits(ctx, cli)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, strings.TrimRight(document, "\n"))
		return err
	case c.Tools:
		tools, err := svcmcp.RemoteTools(ctx, cli)
		if err != nil {
			return err
		}
		for _, t := range tools {
			fmt.Fprintf(stdout, "%s\t%s\n", t.Name, conv.Dereference[string](t.Description))
		}
		return nil
	}
	result, err := svcmcp.RemoteConvert(ctx, cli, input)
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
