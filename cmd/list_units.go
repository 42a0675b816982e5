package cmd

import (
	"fmt"
	"strings"
)

// ListUnitsCmd prints every category with its units and aliases.
type ListUnitsCmd struct {
	JSON bool `long:"json" description:"print the units document verbatim"`
}

func (c *ListUnitsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	converter := svc.Converter()
	if c.JSON {
		_, err = fmt.Fprintln(stdout, strings.TrimRight(string(converter.Document()), "\n"))
		return err
	}
	cat := converter.Catalog()
	for _, name := range cat.Categories() {
		category, _ := cat.Category(name)
		header := fmt.Sprintf("%s (%s", name, category.Kind)
		if category.Base != "" {
			header += ", base " + category.Base
		}
		fmt.Fprintln(stdout, header+")")
		for _, key := range category.UnitKeys() {
			def := category.Units[key]
			fmt.Fprintf(stdout, "  %s\t%s\n", key, strings.Join(def.Aliases, ", "))
		}
	}
	return nil
}
