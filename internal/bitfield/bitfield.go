// Package bitfield packs a struct's tagged fields into a single integer.
// Adapted from a golang.org/x/text-derived bitfield helper
// (src/bitfield/bitfield.go); trimmed to the Pack half only, since this
// kernel only ever needs a compact, loggable descriptor of a process slot
// and never needs to regenerate Go source for one.
package bitfield

import (
	"fmt"
	"reflect"
)

// Pack packs every field of x tagged `bitfield:",N"` into the low bits of a
// uint64, in field declaration order, each field occupying N bits. It
// returns an error if a field's value does not fit in its declared width,
// or if the total width exceeds 64 bits.
func Pack(x any) (uint64, error) {
	v := reflect.ValueOf(x)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return 0, fmt.Errorf("bitfield.Pack: expected struct, got %v", v.Kind())
	}

	t := v.Type()
	var packed uint64
	var offset uint

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("bitfield")
		if tag == "" {
			continue
		}

		var bits uint
		if _, err := fmt.Sscanf(tag, ",%d", &bits); err != nil {
			return 0, fmt.Errorf("bitfield.Pack: invalid tag %q on field %s", tag, field.Name)
		}
		if bits == 0 || bits > 64 {
			return 0, fmt.Errorf("bitfield.Pack: field %s declares %d bits", field.Name, bits)
		}

		fv := v.Field(i)
		var raw uint64
		switch fv.Kind() {
		case reflect.Bool:
			if fv.Bool() {
				raw = 1
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			raw = fv.Uint()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if fv.Int() < 0 {
				return 0, fmt.Errorf("bitfield.Pack: negative value on field %s", field.Name)
			}
			raw = uint64(fv.Int())
		default:
			return 0, fmt.Errorf("bitfield.Pack: unsupported kind %v on field %s", fv.Kind(), field.Name)
		}

		max := uint64(1)<<bits - 1
		if raw > max {
			return 0, fmt.Errorf("bitfield.Pack: value %d exceeds %d bits on field %s", raw, bits, field.Name)
		}

		if offset+bits > 64 {
			return 0, fmt.Errorf("bitfield.Pack: total width exceeds 64 bits at field %s", field.Name)
		}
		packed |= raw << offset
		offset += bits
	}

	return packed, nil
}
