/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

// Stage is one aggregation stage descriptor. The set of recognized stage
// names and the shape of Spec belong to the client implementation.
type Stage struct {
	Name string
	Spec map[string]any
}

// Pipeline is an ordered sequence of aggregation stages. Repositories pass
// it through unmodified; stage order is significant.
type Pipeline []Stage
