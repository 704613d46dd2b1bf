package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry holds in-process game statistics shown in the HUD and the feed
// Writers cache pointers once; readers take sorted snapshots
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Float64]
	Labels *MetricMap[atomic.Value]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Float64](),
		Labels: NewMetricMap[atomic.Value](),
	}
}

// SetLabel stores a short string metric
func (r *Registry) SetLabel(key, val string) {
	r.Labels.Get(key).Store(val)
}

// Label returns a string metric or "" if unset
func (r *Registry) Label(key string) string {
	v, ok := r.Labels.Lookup(key)
	if !ok {
		return ""
	}
	s, _ := v.Load().(string)
	return s
}

// Float returns a float metric or 0 if unset
func (r *Registry) Float(key string) float64 {
	v, ok := r.Floats.Lookup(key)
	if !ok {
		return 0
	}
	return v.Load()
}

// Int returns an integer metric or 0 if unset
func (r *Registry) Int(key string) int64 {
	v, ok := r.Ints.Lookup(key)
	if !ok {
		return 0
	}
	return v.Load()
}

// Snapshot returns every metric formatted as a string, keyed by name
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out[k] = strconv.FormatInt(v.Load(), 10)
	})
	r.Floats.Range(func(k string, v *Float64) {
		out[k] = strconv.FormatFloat(v.Load(), 'f', 2, 64)
	})
	r.Labels.Range(func(k string, v *atomic.Value) {
		s, _ := v.Load().(string)
		out[k] = s
	})
	return out
}

// Lines returns "key: value" lines for ints then floats then labels, each sorted
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *Float64) {
		lines = append(lines, fmt.Sprintf("%s: %.2f", k, v.Load()))
	})
	r.Labels.Range(func(k string, v *atomic.Value) {
		s, _ := v.Load().(string)
		lines = append(lines, fmt.Sprintf("%s: %s", k, s))
	})
	return lines
}

func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Labels.Count()
}
