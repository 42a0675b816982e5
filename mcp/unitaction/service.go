package unitaction

import (
	"context"
	"fmt"
	"reflect"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/unitconv-mcp/internal/conv"
	"github.com/viant/unitconv-mcp/unit"
	"github.com/viant/unitconv-mcp/unit/catalog"
	"github.com/viant/x"
)

// Name is the Fluxor service name; tools are published as unit-<method>.
const Name = "unit"

const (
	MethodConvert = "convert"
	MethodResolve = "resolve"
	MethodUnits   = "units"
)

// Service exposes converter operations as Fluxor actions.
type Service struct {
	converter *unit.Converter
	sigs      types.Signatures
	executors map[string]types.Executable
}

// New builds the action service around converter.
func New(converter *unit.Converter) *Service {
	s := &Service{
		converter: converter,
		executors: map[string]types.Executable{},
	}

	type op struct {
		name string
		in   reflect.Type
		out  reflect.Type
		call func(ctx context.Context, in interface{}) (interface{}, error)
		desc string
	}

	ops := []op{
		{
			name: MethodConvert,
			in:   reflect.TypeOf(&ConvertInput{}),
			out:  reflect.TypeOf(&unit.Result{}),
			call: func(_ context.Context, in interface{}) (interface{}, error) {
				return s.converter.Convert(in.(*ConvertInput).Request())
			},
			desc: "Convert a numeric value between supported units of the same category (length, mass, volume, time, temperature, ...).",
		},
		{
			name: MethodResolve,
			in:   reflect.TypeOf(&ResolveInput{}),
			out:  reflect.TypeOf(&ResolveOutput{}),
			call: func(_ context.Context, in interface{}) (interface{}, error) {
				return s.Resolve(in.(*ResolveInput).Unit)
			},
			desc: "Resolve a unit name or alias to its canonical unit and category.",
		},
		{
			name: MethodUnits,
			in:   reflect.TypeOf(&UnitsInput{}),
			out:  reflect.TypeOf(&UnitsOutput{}),
			call: func(_ context.Context, _ interface{}) (interface{}, error) {
				return s.Units(), nil
			},
			desc: "Return the document describing supported unit categories and units.",
		},
	}

	for _, o := range ops {
		opCopy := o
		exec := func(ctx context.Context, input, output interface{}) error {
			param := reflect.New(opCopy.in.Elem()).Interface()
			switch {
			case input == nil:
			case reflect.TypeOf(input) == opCopy.in:
				param = input
			default:
				if err := conv.Convert(input, param); err != nil {
					return err
				}
			}
			res, err := opCopy.call(ctx, param)
			if err != nil {
				return err
			}
			if output != nil {
				switch outPtr := output.(type) {
				case *interface{}:
					*outPtr = res
				default:
					if err := conv.Convert(res, outPtr); err != nil {
						return fmt.Errorf("%s: %w", opCopy.name, err)
					}
				}
			}
			return nil
		}
		s.executors[opCopy.name] = exec
		s.sigs = append(s.sigs, types.Signature{
			Name:        opCopy.name,
			Description: opCopy.desc,
			Input:       opCopy.in,
			Output:      opCopy.out,
		})
	}
	return s
}

// Name returns the service name.
func (s *Service) Name() string { return Name }

// Methods returns method signatures.
func (s *Service) Methods() types.Signatures { return s.sigs }

// Method returns an executable for the named method.
func (s *Service) Method(name string) (types.Executable, error) {
	if exec, ok := s.executors[name]; ok {
		return exec, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}

// Resolve describes the canonical unit behind raw.
func (s *Service) Resolve(raw string) (*ResolveOutput, error) {
	cat := s.converter.Catalog()
	key, ok := cat.Resolve(raw)
	if !ok {
		return nil, &unit.ConversionError{Kind: unit.ErrUnknownUnit, Unit: raw}
	}
	def, category, ok := cat.Unit(key)
	if !ok {
		return nil, &unit.ConversionError{Kind: unit.ErrUnknownUnit, Unit: raw}
	}
	return &ResolveOutput{
		Input:      raw,
		Normalized: unit.Normalize(raw),
		Unit:       key,
		Category:   category.Name,
		Kind:       string(category.Kind),
		Base:       category.Base,
		Factor:     def.Factor,
		Aliases:    def.Aliases,
	}, nil
}

// Units returns the catalog document.
func (s *Service) Units() *UnitsOutput {
	return &UnitsOutput{URI: catalog.DefaultURI, MimeType: "application/json", Document: string(s.converter.Document())}
}

// Types returns the action I/O types for registration with the workflow
// engine, so that workflow definitions can refer to them by name.
func Types() []*x.Type {
	return []*x.Type{
		x.NewType(reflect.TypeOf(ConvertInput{})),
		x.NewType(reflect.TypeOf(unit.Result{})),
		x.NewType(reflect.TypeOf(ResolveInput{})),
		x.NewType(reflect.TypeOf(ResolveOutput{})),
		x.NewType(reflect.TypeOf(UnitsOutput{})),
	}
}
