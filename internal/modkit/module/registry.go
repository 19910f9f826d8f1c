package module

import "sync"

// Port sets are registered by name while main mounts modules so later modules can
// read them. Safe for concurrent use
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores ports under name, replacing any earlier set
func Register(name string, ports any) {
	mu.Lock()
	defer mu.Unlock()
	reg[name] = ports
}

// PortsAs returns the ports registered under name when they are a T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	out, ok2 := v.(T)
	return out, ok && ok2
}

// MustPortsAs is PortsAs for bootstrap code where a missing port is a wiring bug
func MustPortsAs[T any](name string) T {
	v, ok := PortsAs[T](name)
	if !ok {
		panic("module: no ports of the requested type registered as " + name)
	}
	return v
}

// Reset clears the registry; tests only
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	reg = map[string]any{}
}
