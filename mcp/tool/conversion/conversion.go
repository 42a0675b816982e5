package conversion

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/viant/fluxor/model/types"
	schema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/x"
)

// BuildSchema derives MCP tool metadata from an action signature.
func BuildSchema(sig *types.Signature) (schema.Tool, error) {
	var inputSchema schema.ToolInputSchema
	if sig.Input != nil {
		if err := inputSchema.Load(newSample(sig.Input)); err != nil {
			return schema.Tool{}, fmt.Errorf("failed to build input schema for %s: %w", sig.Name, err)
		}
	}
	if inputSchema.Type == "" {
		inputSchema.Type = "object"
	}
	var outputSchema *schema.ToolOutputSchema
	if out := structType(sig.Output); out != nil {
		props, required := schema.StructToProperties(out)
		outputSchema = &schema.ToolOutputSchema{Properties: props, Required: required, Type: "object"}
	}
	desc := sig.Description
	return schema.Tool{Name: sig.Name, Description: &desc, InputSchema: inputSchema, OutputSchema: outputSchema}, nil
}

func newSample(t reflect.Type) interface{} {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Interface()
}

func structType(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

var typeRegistry = x.NewRegistry()

// Registry returns the registry of types generated from remote schemas.
func Registry() *x.Registry {
	return typeRegistry
}

// RegisterType registers a generated type.
func RegisterType(t reflect.Type, options ...x.Option) {
	typeRegistry.Register(x.NewType(t, options...))
}

// TypeFromInputSchema converts a remote tool input schema into a struct type,
// so that BuildSchema can later re-create an equivalent schema. An empty
// schema yields an empty struct.
func TypeFromInputSchema(inputSchema schema.ToolInputSchema) (reflect.Type, error) {
	return typeFromProperties(inputSchema.Properties, inputSchema.Required)
}

// TypeFromOutputSchema is TypeFromInputSchema for output schemas.
func TypeFromOutputSchema(outputSchema schema.ToolOutputSchema) (reflect.Type, error) {
	return typeFromProperties(outputSchema.Properties, outputSchema.Required)
}

func typeFromProperties(props map[string]map[string]interface{}, required []string) (reflect.Type, error) {
	if len(props) == 0 {
		return reflect.StructOf([]reflect.StructField{}), nil
	}
	fields, err := buildFields(props, required)
	if err != nil {
		return nil, err
	}
	t := reflect.StructOf(fields)
	RegisterType(t)
	return t, nil
}

func buildFields(props map[string]map[string]interface{}, required []string) ([]reflect.StructField, error) {
	keys := make([]string, 0, len(props))
	for name := range props {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	requiredSet := make(map[string]struct{}, len(required))
	for _, n := range required {
		requiredSet[n] = struct{}{}
	}
	var fields []reflect.StructField
	for _, name := range keys {
		def := props[name]
		fieldType, err := goTypeFromDef(def)
		if err != nil {
			return nil, fmt.Errorf("failed to determine type for field %q: %w", name, err)
		}
		jsonTag := name
		if _, ok := requiredSet[name]; !ok {
			jsonTag += ",omitempty"
		}
		tag := fmt.Sprintf("json:%q", jsonTag)
		if desc, ok := def["description"].(string); ok && desc != "" {
			tag += fmt.Sprintf(" description:%q", desc)
		}
		fields = append(fields, reflect.StructField{
			Name: fieldName(name),
			Type: fieldType,
			Tag:  reflect.StructTag(tag),
		})
	}
	return fields, nil
}

// fieldName turns a JSON property (from_unit) into an exported Go name (FromUnit).
func fieldName(property string) string {
	var b strings.Builder
	upper := true
	for _, r := range property {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			upper = true
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	name := b.String()
	if name == "" || !unicode.IsLetter(rune(name[0])) {
		name = "F" + name
	}
	return name
}

func goTypeFromDef(def map[string]interface{}) (reflect.Type, error) {
	var typeStr string
	switch v := def["type"].(type) {
	case string:
		typeStr = v
	case []interface{}:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				typeStr = s
			}
		}
	}
	switch typeStr {
	case "string":
		if format, ok := def["format"].(string); ok && (format == "date-time" || format == "date") {
			return reflect.TypeOf(time.Time{}), nil
		}
		return reflect.TypeOf(""), nil
	case "integer":
		return reflect.TypeOf(int64(0)), nil
	case "number":
		return reflect.TypeOf(float64(0)), nil
	case "boolean":
		return reflect.TypeOf(true), nil
	case "object":
		nested := map[string]map[string]interface{}{}
		var nestedRequired []string
		if rawReq, ok := def["required"].([]interface{}); ok {
			for _, raw := range rawReq {
				if s, ok := raw.(string); ok {
					nestedRequired = append(nestedRequired, s)
				}
			}
		}
		if raw, ok := def["properties"].(map[string]interface{}); ok {
			for k, v := range raw {
				if m, ok := v.(map[string]interface{}); ok {
					nested[k] = m
				}
			}
		}
		if len(nested) == 0 {
			return reflect.TypeOf(map[string]interface{}{}), nil
		}
		fields, err := buildFields(nested, nestedRequired)
		if err != nil {
			return nil, err
		}
		nestedType := reflect.StructOf(fields)
		RegisterType(nestedType)
		return nestedType, nil
	case "array":
		if raw, ok := def["items"].(map[string]interface{}); ok {
			itemType, err := goTypeFromDef(raw)
			if err != nil {
				return nil, err
			}
			return reflect.SliceOf(itemType), nil
		}
		return reflect.SliceOf(reflect.TypeOf(new(interface{})).Elem()), nil
	default:
		return reflect.TypeOf(new(interface{})).Elem(), nil
	}
}
