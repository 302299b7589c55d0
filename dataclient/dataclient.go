/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataclient

import (
	"context"

	"github.com/suparena/itemstore/models"
)

// DataClient is the collaborator a Repository delegates every operation to.
// Implementations own transport, serialization, and query translation, and
// raise only the two error families defined in the errors package.
//
// Every response arrives envelope-wrapped. Optional arguments arrive as
// explicit zero values: an empty scope, a nil filter, a zero ListQuery.
type DataClient[T any] interface {
	Create(ctx context.Context, item T, scope string) (*models.Envelope[T], error)

	Get(ctx context.Context, id string, scope string) (*models.Envelope[T], error)

	List(ctx context.Context, q models.ListQuery) (*models.Envelope[models.Page[T]], error)

	Update(ctx context.Context, id string, item T, scope string) (*models.Envelope[T], error)

	Delete(ctx context.Context, id string, scope string) (*models.Envelope[models.Empty], error)

	Count(ctx context.Context, q models.CountQuery) (*models.Envelope[int64], error)

	Aggregate(ctx context.Context, pipeline models.Pipeline, scope string) (*models.Envelope[[]models.Record], error)
}
