package tool

import "strings"

// Name is an MCP tool name in the form <service>-<method>, where slashes of
// the service name are replaced with underscores (unit-convert,
// remote_upstream-unit_convert).
type Name string

func (t Name) Service() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return strings.ReplaceAll(tool[:idx], "_", "/")
	}
	return tool
}

func (t Name) Method() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return tool[idx+1:]
	}
	return ""
}

// Path returns the service/method form.
func (t Name) Path() string {
	return t.Service() + "/" + t.Method()
}

func (t Name) String() string {
	return string(t)
}

// NewName new name
func NewName(service, method string) Name {
	return Name(strings.ReplaceAll(service, "/", "_") + "-" + method)
}

// Canonical accepts service-method, service.method and service/method
// spellings and returns the tool name.
func Canonical(name string) string {
	if idx := strings.LastIndex(name, "-"); idx != -1 {
		return NewName(name[:idx], name[idx+1:]).String()
	}
	slash := strings.LastIndex(name, "/")
	if dot := strings.LastIndex(name, "."); dot > slash {
		return NewName(name[:dot], name[dot+1:]).String()
	}
	if slash != -1 {
		return NewName(name[:slash], name[slash+1:]).String()
	}
	return name
}

// MethodName turns a remote tool name into a method name that survives the
// service-method split.
func MethodName(toolName string) string {
	return strings.ReplaceAll(toolName, "-", "_")
}
