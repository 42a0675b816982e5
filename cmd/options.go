package cmd

// Options is the root for the CLI, interpreted by github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"service configuration YAML/JSON path"`

	Convert   *ConvertCmd   `command:"convert"    description:"Convert a value between units"`
	ListUnits *ListUnitsCmd `command:"list-units" description:"List supported categories and units"`
	Unit      *UnitCmd      `command:"unit"       description:"Resolve a unit name or alias"`
	ListTools *ListToolsCmd `command:"list-tools" description:"List registered tools"`
	Tool      *ToolCmd      `command:"tool"       description:"Show detailed info about one tool"`
	Exec      *ExecCmd      `command:"exec"       description:"Execute a tool through the workflow runtime"`
	Serve     *ServeCmd     `command:"serve"      description:"Start MCP server exposing the unit converter"`
	Remote    *RemoteCmd    `command:"remote"     description:"Query a remote unit converter MCP server"`
}

// Init instantiates the sub-command referenced by name so that go-flags can
// populate its fields.
func (o *Options) Init(command string) {
	switch command {
	case "convert":
		o.Convert = &ConvertCmd{}
	case "list-units":
		o.ListUnits = &ListUnitsCmd{}
	case "unit":
		o.Unit = &UnitCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	case "remote":
		o.Remote = &RemoteCmd{}
	}
}
