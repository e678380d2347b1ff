package sorting

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned when a name does not match any registry entry.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Func sorts a sequence of integers and returns a new slice.
// Implementations must not modify their argument.
type Func func([]int) []int

// Algorithm pairs a display name with its implementation.
type Algorithm struct {
	Name string
	Key  string // short selector used in configuration
	Sort Func
}

// Registry is an ordered list of algorithms. Iteration order is the order
// results are produced in, so it must stay stable between runs.
type Registry []Algorithm

// Default returns the built-in algorithms.
func Default() Registry {
	return Registry{
		{Name: "Insertion Sort", Key: "insertion", Sort: InsertionSort},
		{Name: "Bubble Sort", Key: "bubble", Sort: BubbleSort},
	}
}

// Lookup finds an algorithm by display name or key, ignoring case.
func (r Registry) Lookup(name string) (Algorithm, error) {
	want := strings.TrimSpace(name)
	for _, a := range r {
		if strings.EqualFold(a.Name, want) || strings.EqualFold(a.Key, want) {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Select returns the subset of r named in names, in registry order.
// An empty names list selects everything.
func (r Registry) Select(names []string) (Registry, error) {
	if len(names) == 0 {
		return r, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		a, err := r.Lookup(n)
		if err != nil {
			return nil, err
		}
		wanted[a.Name] = true
	}

	var selected Registry
	for _, a := range r {
		if wanted[a.Name] {
			selected = append(selected, a)
		}
	}
	return selected, nil
}

// Names lists the display names in order.
func (r Registry) Names() []string {
	names := make([]string, len(r))
	for i, a := range r {
		names[i] = a.Name
	}
	return names
}
