package catalog

import (
	"fmt"
	"sort"
)

// ConstraintType identifies the value domain kind of a device.
type ConstraintType string

const (
	// ConstraintEnum restricts a device to a fixed set of string values.
	ConstraintEnum ConstraintType = "enum"

	// ConstraintInt restricts a device to an integer range [Min, Max].
	ConstraintInt ConstraintType = "int"
)

// Constraint declares the permitted value domain for one device.
type Constraint struct {
	// Type is the domain kind: enum or int.
	Type ConstraintType `json:"type" yaml:"type"`

	// Values lists the permitted values for enum devices.
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`

	// Min is the inclusive lower bound for int devices.
	Min int `json:"min,omitempty" yaml:"min,omitempty"`

	// Max is the inclusive upper bound for int devices.
	Max int `json:"max,omitempty" yaml:"max,omitempty"`
}

// deviceConstraints is the static reference table of the simulated home.
var deviceConstraints = map[string]Constraint{
	// Living room
	"living_room_light": {Type: ConstraintEnum, Values: []string{"on", "off"}},
	"living_room_color": {Type: ConstraintEnum, Values: []string{"white", "red", "blue", "warm"}},
	// Bedroom
	"bedroom_light": {Type: ConstraintEnum, Values: []string{"on", "off"}},
	"bedroom_color": {Type: ConstraintEnum, Values: []string{"white", "warm", "blue", "red"}},
	// Climate control
	"ac":             {Type: ConstraintEnum, Values: []string{"on", "off"}},
	"ac_temperature": {Type: ConstraintInt, Min: 16, Max: 30},
	"fan_speed":      {Type: ConstraintEnum, Values: []string{"off", "low", "medium", "high"}},
	// Entertainment and security
	"music_volume":    {Type: ConstraintInt, Min: 0, Max: 10},
	"front_door_lock": {Type: ConstraintEnum, Values: []string{"locked", "unlocked"}},
	"kitchen_light":   {Type: ConstraintEnum, Values: []string{"on", "off"}},
}

// DeviceConstraints returns the full constraint table keyed by device identifier.
// The returned map is a copy; callers may not mutate the catalog.
func DeviceConstraints() map[string]Constraint {
	out := make(map[string]Constraint, len(deviceConstraints))
	for name, c := range deviceConstraints {
		out[name] = c
	}
	return out
}

// Devices returns all device identifiers in sorted order.
func Devices() []string {
	names := make([]string, 0, len(deviceConstraints))
	for name := range deviceConstraints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsDevice returns true if name is a declared device identifier.
func IsDevice(name string) bool {
	_, ok := deviceConstraints[name]
	return ok
}

// ValidateValue checks a value against the declared domain of a device.
// The catalog is advisory: the evaluation layer never calls this on the hot
// path, it exists for scenario authoring and loading-time validation.
func ValidateValue(device string, value any) error {
	constraint, ok := deviceConstraints[device]
	if !ok {
		return fmt.Errorf("unknown device: %s", device)
	}

	switch constraint.Type {
	case ConstraintEnum:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("device %s expects a string value, got %T", device, value)
		}
		for _, v := range constraint.Values {
			if v == s {
				return nil
			}
		}
		return fmt.Errorf("device %s does not permit value %q (permitted: %v)", device, s, constraint.Values)

	case ConstraintInt:
		n, ok := toInt(value)
		if !ok {
			return fmt.Errorf("device %s expects an integer value, got %T", device, value)
		}
		if n < constraint.Min || n > constraint.Max {
			return fmt.Errorf("device %s value %d out of range [%d, %d]", device, n, constraint.Min, constraint.Max)
		}
		return nil

	default:
		return fmt.Errorf("device %s has unknown constraint type: %s", device, constraint.Type)
	}
}

// toInt converts integral values to int, including whole float64 values as
// produced by JSON decoding.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}
