package transform

import "github.com/mohae/deepcopy"

// deepCopy copies a decoded YAML value, including every nested map and list,
// so records never share structure with the profile they were built from.
func deepCopy[T any](v T) T {
	c, _ := deepcopy.Copy(v).(T)
	return c
}
