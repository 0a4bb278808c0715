package telemetry

import (
	"reflect"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

// TraceAttributes 將帶有 `trace:"key[,omitempty]"` tag 的欄位轉成 span attribute
// 巢狀 struct 與非 nil 指標會遞迴；map[string]T 展開為 key.mapKey
func TraceAttributes(obj any) []attribute.KeyValue {
	val := reflect.ValueOf(obj)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	var attrs []attribute.KeyValue
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("trace")
		if tag == "" || !field.IsExported() {
			continue
		}
		key, omitEmpty := parseTraceTag(tag)
		fieldVal := val.Field(i)
		if omitEmpty && fieldVal.IsZero() {
			continue
		}

		switch fieldVal.Kind() {
		case reflect.Struct, reflect.Ptr:
			attrs = append(attrs, TraceAttributes(fieldVal.Interface())...)
		case reflect.Map:
			if fieldVal.Type().Key().Kind() != reflect.String {
				continue
			}
			iter := fieldVal.MapRange()
			for iter.Next() {
				if kv, ok := scalarAttribute(key+"."+iter.Key().String(), iter.Value()); ok {
					attrs = append(attrs, kv)
				}
			}
		case reflect.Slice, reflect.Array:
			if fieldVal.Type().Elem().Kind() != reflect.String {
				continue
			}
			strs := make([]string, fieldVal.Len())
			for j := range strs {
				strs[j] = fieldVal.Index(j).String()
			}
			attrs = append(attrs, attribute.StringSlice(key, strs))
		default:
			if kv, ok := scalarAttribute(key, fieldVal); ok {
				attrs = append(attrs, kv)
			}
		}
	}
	return attrs
}

func parseTraceTag(tag string) (string, bool) {
	key, opts, _ := strings.Cut(tag, ",")
	return key, opts == "omitempty"
}

func scalarAttribute(key string, v reflect.Value) (attribute.KeyValue, bool) {
	switch v.Kind() {
	case reflect.String:
		return attribute.String(key, v.String()), true
	case reflect.Bool:
		return attribute.Bool(key, v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return attribute.Int64(key, v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return attribute.Int64(key, int64(v.Uint())), true
	case reflect.Float32, reflect.Float64:
		return attribute.Float64(key, v.Float()), true
	}
	return attribute.KeyValue{}, false
}
