package conv

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Convert copies in into the value pointed to by outPtr. Assignable values
// are set directly; anything else goes through a JSON round trip, so custom
// UnmarshalJSON methods of the target (and their errors) apply. A nil input
// leaves the target untouched.
func Convert(in any, outPtr any) error {
	target := reflect.ValueOf(outPtr)
	if outPtr == nil || target.Kind() != reflect.Ptr || target.IsNil() {
		return fmt.Errorf("conv.Convert: outPtr must be a non-nil pointer, got %T", outPtr)
	}
	if in == nil {
		return nil
	}
	source := reflect.ValueOf(in)
	if source.Type().AssignableTo(target.Elem().Type()) {
		target.Elem().Set(source)
		return nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, outPtr)
}

// ToMap converts a struct or map into a JSON style map.
func ToMap(in any) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := Convert(in, &m); err != nil {
		return nil, err
	}
	return m, nil
}
