package seqs

import (
	"fmt"
	"reflect"
	"time"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types Sum and the range constructors accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Equal is strict equality, for use as an equality predicate.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// Compare is the 3-way comparison of ordered values.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// DefaultCompare compares two values of the same dynamic type: numbers
// numerically, strings lexicographically and time.Time chronologically.
// Named types are compared by their underlying kind. It panics for any
// other type.
func DefaultCompare(a, b any) int {
	switch a.(type) {
	case int:
		return utils.IntComparator(a, b)
	case int8:
		return utils.Int8Comparator(a, b)
	case int16:
		return utils.Int16Comparator(a, b)
	case int32:
		return utils.Int32Comparator(a, b)
	case int64:
		return utils.Int64Comparator(a, b)
	case uint:
		return utils.UIntComparator(a, b)
	case uint8:
		return utils.UInt8Comparator(a, b)
	case uint16:
		return utils.UInt16Comparator(a, b)
	case uint32:
		return utils.UInt32Comparator(a, b)
	case uint64:
		return utils.UInt64Comparator(a, b)
	case float32:
		return utils.Float32Comparator(a, b)
	case float64:
		return utils.Float64Comparator(a, b)
	case string:
		return utils.StringComparator(a, b)
	case time.Time:
		return utils.TimeComparator(a, b)
	}
	return compareKinds(a, b)
}

func compareKinds(a, b any) int {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != vb.Kind() {
		panic(fmt.Sprintf("seqs: cannot compare %T with %T", a, b))
	}
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Compare(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Compare(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		return Compare(va.Float(), vb.Float())
	case reflect.String:
		return Compare(va.String(), vb.String())
	}
	panic(fmt.Sprintf("seqs: no default comparison for %T", a))
}

func strictEqual[T any](a, b T) bool {
	return any(a) == any(b)
}

func equalOrDefault[T any](equal func(a, b T) bool) func(a, b T) bool {
	if equal == nil {
		return strictEqual[T]
	}
	return equal
}

func compareOrDefault[T any](compare func(a, b T) int) func(a, b T) int {
	if compare == nil {
		return func(a, b T) int {
			return DefaultCompare(a, b)
		}
	}
	return compare
}

// truthy reports whether v differs from the zero value of its type.
func truthy[T any](v T) bool {
	return !reflect.ValueOf(&v).Elem().IsZero()
}
