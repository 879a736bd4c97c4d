// Package vecmath has 2D/3D vector and ray value types.
package vecmath

import (
	"math"
	"reflect"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"golang.org/x/exp/constraints"
)

var ErrInvalidJSON = errors.New("vecmath: invalid vector json")

type Number interface {
	constraints.Integer | constraints.Float
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// encodeArray renders values as a flat JSON array.
func encodeArray(values ...any) ([]byte, error) {
	raw := []byte("[]")
	var err error
	for _, value := range values {
		if raw, err = sjson.SetBytes(raw, "-1", value); err != nil {
			return nil, errors.Wrap(err, "vecmath: encode")
		}
	}
	return raw, nil
}

// decodeArray expects a JSON array of exactly n numbers.
func decodeArray(data []byte, n int) ([]gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.Wrapf(ErrInvalidJSON, "%s", data)
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, errors.Wrapf(ErrInvalidJSON, "not an array: %s", data)
	}
	items := parsed.Array()
	if len(items) != n {
		return nil, errors.Wrapf(ErrInvalidJSON, "want %d components, got %d", n, len(items))
	}
	for i, item := range items {
		if item.Type != gjson.Number {
			return nil, errors.Wrapf(ErrInvalidJSON, "component %d is %s", i, item.Type)
		}
	}
	return items, nil
}

func fromResult[T Number](r gjson.Result) T {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return T(r.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return T(r.Uint())
	default:
		return T(r.Float())
	}
}
