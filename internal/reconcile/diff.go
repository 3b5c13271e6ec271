package reconcile

import "reflect"

// needsPatch reports whether the observed remote state drifts from the
// desired state, considering only the fields that are set in desired.
//
// Comparison rules:
//   - nil pointers and empty strings in desired are "unset" and never
//     considered;
//   - scalars compare by equality;
//   - nested structs recurse over desired's set fields only;
//   - slices compare by length only. Content changes at equal length are
//     not detected; callers relying on list diffs must change the length
//     or patch explicitly.
func needsPatch(desired, observed any) bool {
	return drifted(reflect.ValueOf(desired), reflect.ValueOf(observed))
}

func drifted(d, o reflect.Value) bool {
	for d.Kind() == reflect.Pointer || d.Kind() == reflect.Interface {
		if d.IsNil() {
			return false
		}
		d = d.Elem()
	}
	for o.Kind() == reflect.Pointer || o.Kind() == reflect.Interface {
		if o.IsNil() {
			// Desired is set but the remote side has nothing here.
			return true
		}
		o = o.Elem()
	}

	switch d.Kind() {
	case reflect.Struct:
		if o.Kind() != reflect.Struct {
			return true
		}
		for i := 0; i < d.NumField(); i++ {
			field := d.Type().Field(i)
			if !field.IsExported() {
				continue
			}
			df := d.Field(i)
			if isUnset(df) {
				continue
			}
			of := o.FieldByName(field.Name)
			if !of.IsValid() {
				return true
			}
			if drifted(df, of) {
				return true
			}
		}
		return false
	case reflect.Slice, reflect.Array:
		if o.Kind() != reflect.Slice && o.Kind() != reflect.Array {
			return true
		}
		return d.Len() != o.Len()
	default:
		return !reflect.DeepEqual(d.Interface(), o.Interface())
	}
}

// isUnset reports whether a desired field carries no value: nil pointers,
// slices and maps, and empty strings. Zero numbers and false booleans are
// values (flags that must be unsettable are pointers in the wire types).
func isUnset(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	case reflect.String:
		return v.String() == ""
	default:
		return false
	}
}
