package prettyplot

import (
	"fmt"
	"reflect"
)

// Column extracts the numeric field or method named field from data,
// which must be a slice of structs ("slice of measurements"). Methods
// must take no arguments and return a single integer or float.
func Column(data interface{}, field string) ([]float64, error) {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("cannot extract column from %T", data)
	}
	t := v.Type().Elem()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot extract column from %T: elements are no structs", data)
	}

	var value func(elem reflect.Value) reflect.Value
	if f, ok := t.FieldByName(field); ok && f.PkgPath == "" {
		if !numeric(f.Type.Kind()) {
			return nil, fmt.Errorf("field %s of %s has non-numeric type %s", field, t, f.Type)
		}
		value = func(elem reflect.Value) reflect.Value {
			return elem.FieldByIndex(f.Index)
		}
	} else if m, ok := t.MethodByName(field); ok {
		mt := m.Type
		if mt.NumIn() != 1 || mt.NumOut() != 1 || !numeric(mt.Out(0).Kind()) {
			return nil, fmt.Errorf("method %s of %s has wrong signature %s", field, t, mt)
		}
		value = func(elem reflect.Value) reflect.Value {
			return m.Func.Call([]reflect.Value{elem})[0]
		}
	} else {
		return nil, fmt.Errorf("no such field %s in %s", field, t)
	}

	n := v.Len()
	col := make([]float64, n)
	for i := 0; i < n; i++ {
		x := value(v.Index(i))
		switch x.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			col[i] = float64(x.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			col[i] = float64(x.Uint())
		default:
			col[i] = x.Float()
		}
	}
	return col, nil
}

func numeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
