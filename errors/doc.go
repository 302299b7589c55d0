/*
Package errors defines the two error families raised by data clients.

Request errors cover everything the data source itself rejects or fails to
serve: a missing item, a permission refusal, or a generic request failure.
Decode errors cover responses the client could not deserialize or interpret.

Repositories propagate both families verbatim. Callers match either the
sentinel with errors.Is or the concrete type with errors.As:

	item, err := repo.Get(ctx, id)
	if errors.IsNotFound(err) {
	    // handle missing item
	}

No other error kinds cross the repository boundary.
*/
package errors
