/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// typeNameRegistry maps Go types to the tag carried on change notifications.

var (
	typeNameRegistry = make(map[reflect.Type]string)
	typeNameMu       sync.RWMutex
)

// RegisterTypeName associates type T with an explicit notification tag,
// overriding the reflect-derived default.
func RegisterTypeName[T any](name string) {
	var zero T
	t := reflect.TypeOf(zero)

	typeNameMu.Lock()
	defer typeNameMu.Unlock()
	typeNameRegistry[t] = name
}

// TypeNameFor returns the notification tag for type T: the registered name
// when one exists, otherwise the type's own name.
func TypeNameFor[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)

	typeNameMu.RLock()
	name, ok := typeNameRegistry[t]
	typeNameMu.RUnlock()
	if ok {
		return name
	}

	if t == nil {
		// T is an interface type; nothing better to report.
		return "interface"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
