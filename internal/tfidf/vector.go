package tfidf

import (
	"math"
	"sort"
)

// Vector is a sparse term-weight vector keyed by feature index. Reductions
// walk indices in ascending order so equal vectors always yield bit-identical
// scores.
type Vector map[int]float64

func (v Vector) Dot(o Vector) float64 {
	a, b := v, o
	if len(b) < len(a) {
		a, b = b, a
	}

	sum := 0.0
	for _, idx := range a.Indices() {
		sum += a[idx] * b[idx]
	}
	return sum
}

func (v Vector) Norm() float64 {
	sum := 0.0
	for _, idx := range v.Indices() {
		sum += v[idx] * v[idx]
	}
	return math.Sqrt(sum)
}

// Cosine returns the cosine similarity of v and o, 0 when either is empty.
func (v Vector) Cosine(o Vector) float64 {
	nv, no := v.Norm(), o.Norm()
	if nv == 0 || no == 0 {
		return 0
	}
	return v.Dot(o) / (nv * no)
}

// Indices returns the populated feature indices in ascending order.
func (v Vector) Indices() []int {
	keys := make([]int, 0, len(v))
	for idx := range v {
		keys = append(keys, idx)
	}
	sort.Ints(keys)
	return keys
}

func (v Vector) normalize() Vector {
	norm := v.Norm()
	if norm == 0 {
		return v
	}
	for idx, w := range v {
		v[idx] = w / norm
	}
	return v
}
