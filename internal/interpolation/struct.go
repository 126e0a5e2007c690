package interpolation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// TagName marks fields that take part in interpolation: `env_interpolation:"yes"`.
// Nested structs are only visited when their field carries the tag too.
const TagName = "env_interpolation"

// Struct expands tagged fields of the struct v points to, in place, using the process
// environment. Strings, string slices, nested structs and struct pointers are supported.
func Struct(v any) error {
	return StructWith(v, nil)
}

// StructWith is Struct with a custom lookup. A nil lookup uses the process environment.
func StructWith(v any, lookup LookupFunc) error {
	if v == nil {
		return nil
	}
	if lookup == nil {
		return structWith(reflect.ValueOf(v), defaultLookup)
	}
	return structWith(reflect.ValueOf(v), lookup)
}

func structWith(val reflect.Value, lookup LookupFunc) error {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("%w, got %s", ErrNotStruct, val.Kind())
	}

	typ := val.Type()
	var errs []error
	for i := range val.NumField() {
		field := val.Field(i)
		fieldType := typ.Field(i)
		if !field.CanSet() || strings.ToLower(fieldType.Tag.Get(TagName)) != "yes" {
			continue
		}

		if err := expandField(field, lookup); err != nil {
			errs = append(errs, fmt.Errorf("field %s: %w", fieldType.Name, err))
		}
	}
	return errors.Join(errs...)
}

func expandField(field reflect.Value, lookup LookupFunc) error {
	switch field.Kind() {
	case reflect.String:
		return expandString(field, lookup)

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return nil
		}
		var errs []error
		for j := range field.Len() {
			if err := expandString(field.Index(j), lookup); err != nil {
				errs = append(errs, fmt.Errorf("[%d]: %w", j, err))
			}
		}
		return errors.Join(errs...)

	case reflect.Struct:
		return structWith(field.Addr(), lookup)

	case reflect.Pointer:
		if field.Type().Elem().Kind() == reflect.Struct {
			return structWith(field, lookup)
		}
	}
	return nil
}

func expandString(v reflect.Value, lookup LookupFunc) error {
	original := v.String()
	if original == "" {
		return nil
	}
	expanded, err := ExpandWith(original, lookup)
	if err != nil {
		return err
	}
	v.SetString(expanded)
	return nil
}
