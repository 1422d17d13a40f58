// Package reflectx provides reflection utilities for type introspection and function conversion.
// It supports getting type names and formatting caller information for diagnostics.
package reflectx

import (
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"
)

// TypeNameOf returns the type name of a value using fmt formatting.
func TypeNameOf(t any) string {
	return fmt.Sprintf("%T", t)
}

// ConvertFunc converts fn to the function type T when fn is a non-nil function
// whose signature matches T, e.g. a named func(...string) type to another.
func ConvertFunc[T any](fn any) (T, bool) {
	var zero T
	target := reflect.TypeFor[T]()
	if target.Kind() != reflect.Func || fn == nil {
		return zero, false
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() || !v.Type().ConvertibleTo(target) {
		return zero, false
	}
	return v.Convert(target).Interface().(T), true
}

// GetCallerName returns the caller's function name and source location (file:line) at the specified stack depth.
func GetCallerName(skip int) (string, string, int) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", "unknown", 0
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown", "unknown", 0
	}

	return fn.Name(), file, line
}

// FormatFunctionName formats a qualified function name to just the package.FuncName portion.
func FormatFunctionName(name string) string {
	// Split the caller string to extract the function name
	parts := strings.Split(name, "/")

	return parts[len(parts)-1]
}

// FormatFileName formats a file path to show the directory and filename (e.g., "dir/file.go").
func FormatFileName(file string) string {
	dir, fileName := path.Split(file)
	lastDir := path.Base(path.Clean(dir))
	return fmt.Sprintf("%s/%s", lastDir, fileName)
}
