/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/itemstore/errors"
	"github.com/suparena/itemstore/models"
)

// aggregatePlan is a pipeline lowered onto what a filtered scan can serve.
type aggregatePlan struct {
	match    models.Filter
	project  []string
	limit    int
	countHit bool
}

// Aggregate runs the pipeline against a filtered scan. Recognized stages:
// match (field criteria), project (field list), limit (row cap), and count
// (terminal row count). Stages fold into a single plan regardless of their
// position: match criteria from all match stages merge, the last project
// and last limit win, and any count stage turns the result into one count
// row. The folded plan always executes as match, then limit, then
// projection or count.
func (d *DataClient[T]) Aggregate(ctx context.Context, pipeline models.Pipeline, scope string) (*models.Envelope[[]models.Record], error) {
	if len(pipeline) == 0 {
		return nil, errors.NewRequestError("Aggregate", fmt.Errorf("empty pipeline"))
	}

	plan, err := planPipeline(pipeline)
	if err != nil {
		return nil, errors.NewRequestError("Aggregate", err)
	}

	input, err := d.buildScanInput(scope, plan.match)
	if err != nil {
		return nil, errors.NewRequestError("Aggregate", err)
	}

	var raw []map[string]types.AttributeValue
	for {
		out, err := d.client.Scan(ctx, input)
		if err != nil {
			return nil, d.mapRequestError("Aggregate", "", err)
		}
		raw = append(raw, out.Items...)

		if plan.limit > 0 && len(raw) >= plan.limit {
			raw = raw[:plan.limit]
			break
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	if plan.countHit {
		return models.NewEnvelope([]models.Record{{"count": int64(len(raw))}}), nil
	}

	records := make([]models.Record, 0, len(raw))
	for _, item := range raw {
		var rec models.Record
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, errors.NewDecodeError(d.typeName, err)
		}
		stripKeyAttrs(rec)
		if len(plan.project) > 0 {
			rec = projectRecord(rec, plan.project)
		}
		records = append(records, rec)
	}

	return models.NewEnvelope(records), nil
}

// planPipeline validates the stages and folds them into a plan. Folding is
// order-insensitive; see Aggregate for the semantics.
func planPipeline(pipeline models.Pipeline) (*aggregatePlan, error) {
	plan := &aggregatePlan{}

	for i, stage := range pipeline {
		switch stage.Name {
		case "match":
			if len(stage.Spec) == 0 {
				return nil, fmt.Errorf("stage %d: match requires criteria", i)
			}
			if plan.match == nil {
				plan.match = models.Filter{}
			}
			for k, v := range stage.Spec {
				plan.match[k] = v
			}

		case "project":
			fields, err := projectFields(stage.Spec)
			if err != nil {
				return nil, fmt.Errorf("stage %d: %w", i, err)
			}
			plan.project = fields

		case "limit":
			n, err := limitValue(stage.Spec)
			if err != nil {
				return nil, fmt.Errorf("stage %d: %w", i, err)
			}
			plan.limit = n

		case "count":
			plan.countHit = true

		default:
			return nil, fmt.Errorf("stage %d: unsupported stage %q", i, stage.Name)
		}
	}

	return plan, nil
}

func projectFields(spec map[string]any) ([]string, error) {
	rawFields, ok := spec["fields"]
	if !ok {
		return nil, fmt.Errorf("project requires a fields list")
	}

	switch fv := rawFields.(type) {
	case []string:
		return fv, nil
	case []any:
		fields := make([]string, 0, len(fv))
		for _, f := range fv {
			s, ok := f.(string)
			if !ok {
				return nil, fmt.Errorf("project fields must be strings, got %T", f)
			}
			fields = append(fields, s)
		}
		return fields, nil
	default:
		return nil, fmt.Errorf("project fields must be a list, got %T", rawFields)
	}
}

func limitValue(spec map[string]any) (int, error) {
	raw, ok := spec["n"]
	if !ok {
		return 0, fmt.Errorf("limit requires n")
	}

	switch n := raw.(type) {
	case int:
		if n <= 0 {
			return 0, fmt.Errorf("limit must be positive, got %d", n)
		}
		return n, nil
	case int64:
		if n <= 0 {
			return 0, fmt.Errorf("limit must be positive, got %d", n)
		}
		return int(n), nil
	case float64:
		if n <= 0 {
			return 0, fmt.Errorf("limit must be positive, got %v", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("limit n must be a number, got %T", raw)
	}
}

// stripKeyAttrs drops the storage-layout attributes from a result record;
// they are an implementation detail of the single-table design.
func stripKeyAttrs(rec models.Record) {
	delete(rec, "PK")
	delete(rec, "SK")
	delete(rec, entityTypeAttr)
}

func projectRecord(rec models.Record, fields []string) models.Record {
	out := make(models.Record, len(fields))
	for _, f := range fields {
		if v, ok := rec[f]; ok {
			out[f] = v
		}
	}
	return out
}
