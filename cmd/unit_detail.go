package cmd

import (
	"fmt"
	"strings"
)

// UnitCmd resolves one unit name or alias.
type UnitCmd struct {
	Name string `short:"n" long:"name" description:"unit name or alias" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *UnitCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	info, err := svc.Units().Resolve(c.Name)
	if err != nil {
		return err
	}
	if c.JSON {
		return printJSON(info)
	}
	fmt.Fprintf(stdout, "Input      : %s\n", info.Input)
	fmt.Fprintf(stdout, "Normalized : %s\n", info.Normalized)
	fmt.Fprintf(stdout, "Unit       : %s\n", info.Unit)
	fmt.Fprintf(stdout, "Category   : %s (%s)\n", info.Category, info.Kind)
	if info.Base != "" {
		fmt.Fprintf(stdout, "Factor     : %s %s\n", formatNumber(info.Factor), info.Base)
	}
	if len(info.Aliases) > 0 {
		fmt.Fprintf(stdout, "Aliases    : %s\n", strings.Join(info.Aliases, ", "))
	}
	return nil
}
