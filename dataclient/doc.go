/*
Package dataclient defines the client interface repositories delegate to.

The main interface is DataClient[T], which provides the seven data operations
for an item type T:

	type DataClient[T any] interface {
	    Create(ctx context.Context, item T, scope string) (*models.Envelope[T], error)
	    Get(ctx context.Context, id string, scope string) (*models.Envelope[T], error)
	    List(ctx context.Context, q models.ListQuery) (*models.Envelope[models.Page[T]], error)
	    Update(ctx context.Context, id string, item T, scope string) (*models.Envelope[T], error)
	    Delete(ctx context.Context, id string, scope string) (*models.Envelope[models.Empty], error)
	    Count(ctx context.Context, q models.CountQuery) (*models.Envelope[int64], error)
	    Aggregate(ctx context.Context, pipeline models.Pipeline, scope string) (*models.Envelope[[]models.Record], error)
	}

Implementations:
  - ddb: DynamoDB implementation with support for single-table design
  - mock: In-memory mock implementation for testing

The package uses Go generics to ensure type safety at compile time while
keeping the repository layer independent of any particular backend.
*/
package dataclient
