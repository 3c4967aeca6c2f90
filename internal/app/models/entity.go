package models

import (
	"reflect"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// Entity is a record stored in one collection. ReferenceID returns the foreign
// key the collection is indexed by, empty when the kind has none.
type Entity interface {
	GetID() string
	ReferenceID() string
}

// ImmutableFields are never taken from a caller payload.
var ImmutableFields = []string{"id", "createdAt", "updatedAt"}

// Extras holds the stored fields that have no typed home on the record: keys
// the struct does not declare, and declared keys whose stored value has a
// different JSON type. They are written back exactly as read.
type Extras map[string]json.RawMessage

var fieldIndexCache sync.Map

// jsonFieldIndexes maps each json key of t to its field index, descending
// into embedded structs.
func jsonFieldIndexes(t reflect.Type) map[string][]int {
	if cached, ok := fieldIndexCache.Load(t); ok {
		return cached.(map[string][]int)
	}

	indexes := map[string][]int{}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			for name, index := range jsonFieldIndexes(field.Type) {
				indexes[name] = append([]int{i}, index...)
			}
			continue
		}
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		indexes[name] = []int{i}
	}

	fieldIndexCache.Store(t, indexes)
	return indexes
}

// decodeWithExtras fills the declared fields of target, a struct pointer, one
// key at a time. A value that does not fit its field leaves the field at its
// zero value and is kept in the returned Extras instead, so a record whose
// fields were written by another client still loads.
func decodeWithExtras(data []byte, target interface{}) (Extras, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	value := reflect.ValueOf(target).Elem()
	indexes := jsonFieldIndexes(value.Type())

	var extras Extras
	for key, raw := range fields {
		if index, ok := indexes[key]; ok {
			field := value.FieldByIndex(index)
			decoded := reflect.New(field.Type())
			if err := json.Unmarshal(raw, decoded.Interface()); err == nil {
				field.Set(decoded.Elem())
				continue
			}
		}
		if extras == nil {
			extras = Extras{}
		}
		extras[key] = raw
	}
	return extras, nil
}

// encodeWithExtras writes typed, a struct value, and lays extras over it. An
// extra under a declared key is only written while that field is still zero;
// once the field is set it is the newer value.
func encodeWithExtras(typed interface{}, extras Extras) ([]byte, error) {
	data, err := json.Marshal(typed)
	if err != nil || len(extras) == 0 {
		return data, err
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	value := reflect.ValueOf(typed)
	indexes := jsonFieldIndexes(value.Type())
	for key, raw := range extras {
		if index, ok := indexes[key]; ok && !value.FieldByIndex(index).IsZero() {
			continue
		}
		fields[key] = raw
	}
	return json.Marshal(fields)
}
