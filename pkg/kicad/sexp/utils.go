package sexp

import (
	"fmt"
	"strconv"
)

// Navigation helpers for parsed documents.

// FindNode returns the first child list of s whose name matches key.
// Example: FindNode(comp, "ref") finds (ref "C1").
func FindNode(s Node, key string) (*List, bool) {
	list, ok := s.(*List)
	if !ok {
		return nil, false
	}
	for _, item := range list.items {
		if sub, ok := item.(*List); ok && sub.Name() == key {
			return sub, true
		}
	}
	return nil, false
}

// FindAllNodes returns every child list of s whose name matches key.
func FindAllNodes(s Node, key string) []*List {
	list, ok := s.(*List)
	if !ok {
		return nil
	}
	var out []*List
	for _, item := range list.items {
		if sub, ok := item.(*List); ok && sub.Name() == key {
			out = append(out, sub)
		}
	}
	return out
}

// GetString extracts the atom at index as a string. Index 0 is the list
// name, 1 the first value. Quoted and unquoted atoms are both accepted,
// since KiCad quotes inconsistently across format versions.
func GetString(s Node, index int) (string, error) {
	list, ok := s.(*List)
	if !ok {
		return "", fmt.Errorf("expected list, got atom %q", s.String())
	}
	item := list.Get(index)
	if item == nil {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, list.Len())
	}
	switch v := item.(type) {
	case Symbol:
		return string(v), nil
	case Str:
		return string(v), nil
	}
	return "", fmt.Errorf("expected atom at index %d, got list", index)
}

// GetInt extracts the atom at index as an integer.
func GetInt(s Node, index int) (int, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("expected integer at index %d: %w", index, err)
	}
	return n, nil
}

// GetFloat extracts the atom at index as a float.
func GetFloat(s Node, index int) (float64, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("expected number at index %d: %w", index, err)
	}
	return f, nil
}

// ChildString returns the first value of the named child list, or "" when
// the child is absent. Handy for optional single-value fields like
// (value "10uF").
func ChildString(s Node, key string) string {
	node, found := FindNode(s, key)
	if !found {
		return ""
	}
	str, err := GetString(node, 1)
	if err != nil {
		return ""
	}
	return str
}
