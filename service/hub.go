package service

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Sentinel errors
var (
	ErrDuplicate          = errors.New("service already registered")
	ErrMissingDependency  = errors.New("service depends on unregistered service")
	ErrCircularDependency = errors.New("circular dependency detected in services")
)

// Hub owns the process services and drives their lifecycle in dependency order
type Hub struct {
	mu       sync.Mutex
	services map[string]Service
	args     map[string][]any
	order    []string // Dependency order, resolved by InitAll
	started  []string // Successfully started, stopped in reverse
}

func NewHub() *Hub {
	return &Hub{
		services: make(map[string]Service),
		args:     make(map[string][]any),
	}
}

// Configure sets the Init args for one service, overriding the InitAll args
func (h *Hub) Configure(name string, args ...any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.args[name] = args
}

// Register adds a service; names must be unique
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	h.services[name] = svc
	h.order = nil
	return nil
}

// Lookup returns a registered service as T
func Lookup[T Service](h *Hub, name string) (T, bool) {
	h.mu.Lock()
	svc, ok := h.services[name]
	h.mu.Unlock()

	typed, ok2 := svc.(T)
	return typed, ok && ok2
}

// InitAll resolves dependency order and calls Init on every service
// args go to every service without its own Configure args
// On failure the services initialized so far are stopped in reverse, none of them started
func (h *Hub) InitAll(args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.order == nil {
		order, err := h.resolve()
		if err != nil {
			return err
		}
		h.order = order
	}

	for i, name := range h.order {
		svcArgs := args
		if own, ok := h.args[name]; ok {
			svcArgs = own
		}
		if err := h.services[name].Init(svcArgs...); err != nil {
			h.stopReverse(h.order[:i])
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
	}
	return nil
}

// StartAll calls Start in dependency order
// On failure the services started so far are stopped in reverse
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.started = h.started[:0]
	for _, name := range h.order {
		if err := h.services[name].Start(); err != nil {
			h.stopReverse(h.started)
			h.started = nil
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.started = append(h.started, name)
	}
	return nil
}

// StopAll stops every started service in reverse order
// Every service is stopped even if some fail; the errors are joined
func (h *Hub) StopAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	err := h.stopReverse(h.started)
	h.started = nil
	return err
}

func (h *Hub) stopReverse(names []string) error {
	var errs []error
	for _, name := range slices.Backward(names) {
		if err := h.services[name].Stop(); err != nil {
			errs = append(errs, fmt.Errorf("service %s stop: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// resolve orders services so each comes after its dependencies
// Depth-first over sorted names keeps the order deterministic
func (h *Hub) resolve() ([]string, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(h.services))
	order := make([]string, 0, len(h.services))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			return fmt.Errorf("%w: at %s", ErrCircularDependency, name)
		case done:
			return nil
		}
		state[name] = visiting

		deps := slices.Clone(h.services[name].Dependencies())
		slices.Sort(deps)
		for _, dep := range deps {
			if _, ok := h.services[dep]; !ok {
				return fmt.Errorf("%w: %s -> %s", ErrMissingDependency, name, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		state[name] = done
		order = append(order, name)
		return nil
	}

	for _, name := range slices.Sorted(maps.Keys(h.services)) {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Names returns the registered service names, sorted
func (h *Hub) Names() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Sorted(maps.Keys(h.services))
}
