package singleton

import (
	"fmt"
	"sync"
)

// instanceCache is the process-wide keyed instance store. Values are stored
// once per key; a per-key mutex would be overkill since initializers for
// different keys rarely contend.
type instanceCache struct {
	mu     sync.RWMutex
	values map[string]any
}

var global = &instanceCache{
	values: make(map[string]any),
}

// Instance returns the shared instance stored under key, creating it with
// init on first request. All callers for the same key receive the same value.
// If the stored value is not assignable to T, a TypeMismatchError is
// returned.
//
// The initializer runs while the cache lock is held, so it must not call
// Instance, MustInstance, Forget, or ForgetAll itself; doing so deadlocks.
func Instance[T any](key string, init func() (T, error)) (T, error) {
	var zero T
	if init == nil {
		return zero, ErrNilInit
	}

	global.mu.RLock()
	cached, ok := global.values[key]
	global.mu.RUnlock()

	if !ok {
		global.mu.Lock()
		// Re-check under the write lock: another goroutine may have won the
		// race between our RUnlock and Lock.
		cached, ok = global.values[key]
		if !ok {
			v, err := init()
			if err != nil {
				global.mu.Unlock()
				return zero, err
			}
			global.values[key] = v
			cached = v
		}
		global.mu.Unlock()
	}

	v, ok := cached.(T)
	if !ok {
		return zero, &TypeMismatchError{
			Key:  key,
			Want: fmt.Sprintf("%T", zero),
			Got:  fmt.Sprintf("%T", cached),
		}
	}
	return v, nil
}

// MustInstance works like Instance but panics on failure. Useful at package
// initialization time where a missing singleton should prevent startup.
func MustInstance[T any](key string, init func() (T, error)) T {
	v, err := Instance(key, init)
	if err != nil {
		panic(fmt.Sprintf("singleton: instance %q: %v", key, err))
	}
	return v
}

// Forget removes the instance stored under key, if any. The next Instance
// call for the key re-runs its initializer. Intended for tests.
func Forget(key string) {
	global.mu.Lock()
	defer global.mu.Unlock()
	delete(global.values, key)
}

// ForgetAll clears every keyed instance. Intended for tests.
func ForgetAll() {
	global.mu.Lock()
	defer global.mu.Unlock()
	clear(global.values)
}
