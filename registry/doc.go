/*
Package registry holds per-type configuration that data clients and
repositories look up at runtime.

Key maps associate a Go type with the key templates a DynamoDB-backed client
needs to build partition and sort keys, using macro syntax:

	registry.RegisterKeyMap[User](map[string]string{
	    "PK": "USER#{ID}",
	    "SK": "USER#{ID}",
	})

Type names associate a Go type with the tag carried on change notifications.
Unregistered types fall back to their reflect-derived name.

Registrations are usually generated by cmd/keymapgen from a YAML manifest
rather than written by hand.
*/
package registry
