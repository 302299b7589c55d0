/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// keyMapRegistry maps Go types to their storage key templates (PK, SK, etc.).

var (
	keyMapRegistry = make(map[reflect.Type]map[string]string)
	keyMapMu       sync.RWMutex
)

// RegisterKeyMap associates type T with a set of key templates. Templates
// may reference item fields with {Field} macros.
func RegisterKeyMap[T any](keyMap map[string]string) {
	var zero T
	t := reflect.TypeOf(zero)

	keyMapMu.Lock()
	defer keyMapMu.Unlock()
	keyMapRegistry[t] = keyMap
}

// GetKeyMap retrieves the key templates for type T, if any.
func GetKeyMap[T any]() (map[string]string, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	keyMapMu.RLock()
	defer keyMapMu.RUnlock()
	m, ok := keyMapRegistry[t]
	return m, ok
}
