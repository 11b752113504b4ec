package plogic

import (
	"fmt"
	"strconv"
	"strings"
)

// ForAll reports whether predicate holds for every element of domain.
// It is true for an empty domain and stops at the first failure.
func ForAll[T any](predicate func(T) bool, domain []T) bool {
	_, i := Counterexample(predicate, domain)
	return i < 0
}

// Exists reports whether predicate holds for at least one element of
// domain. It is false for an empty domain and stops at the first success.
func Exists[T any](predicate func(T) bool, domain []T) bool {
	_, i := Witness(predicate, domain)
	return i >= 0
}

// Counterexample returns the first element for which predicate fails and
// its index, or the zero value and -1.
func Counterexample[T any](predicate func(T) bool, domain []T) (T, int) {
	for i, x := range domain {
		if !predicate(x) {
			return x, i
		}
	}
	var zero T
	return zero, -1
}

// Witness returns the first element satisfying predicate and its index,
// or the zero value and -1.
func Witness[T any](predicate func(T) bool, domain []T) (T, int) {
	for i, x := range domain {
		if predicate(x) {
			return x, i
		}
	}
	var zero T
	return zero, -1
}

var comparisons = map[string]func(x, bound int) bool{
	">":  func(x, bound int) bool { return x > bound },
	">=": func(x, bound int) bool { return x >= bound },
	"<":  func(x, bound int) bool { return x < bound },
	"<=": func(x, bound int) bool { return x <= bound },
	"==": func(x, bound int) bool { return x == bound },
	"!=": func(x, bound int) bool { return x != bound },
}

// ParsePredicate builds an integer predicate from a comparison such as
// "> 0" or "<= -3". The space between operator and bound is optional.
func ParsePredicate(expr string) (func(int) bool, error) {
	s := strings.TrimSpace(expr)
	// two-character operators first so ">=" is not read as ">"
	for _, op := range []string{">=", "<=", "==", "!=", ">", "<"} {
		if !strings.HasPrefix(s, op) {
			continue
		}
		bound, err := strconv.Atoi(strings.TrimSpace(s[len(op):]))
		if err != nil {
			return nil, fmt.Errorf("invalid bound in predicate %q: %w", expr, err)
		}
		cmp := comparisons[op]
		return func(x int) bool { return cmp(x, bound) }, nil
	}
	return nil, fmt.Errorf("invalid predicate %q: expected one of > >= < <= == != followed by an integer", expr)
}

// ParseDomain parses a comma-separated list of integers such as "1,2,-3".
// An empty string yields an empty domain.
func ParseDomain(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	domain := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid domain element %q: %w", p, err)
		}
		domain = append(domain, n)
	}
	return domain, nil
}
