/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/itemstore/errors"
	"github.com/suparena/itemstore/models"
)

// List scans the table for items of this type, applying the query's scope,
// filter, pagination, and sort. Sorting happens client-side on the returned
// page; scans carry no server-side order.
func (d *DataClient[T]) List(ctx context.Context, q models.ListQuery) (*models.Envelope[models.Page[T]], error) {
	input, err := d.buildScanInput(q.Scope, q.Filter)
	if err != nil {
		return nil, errors.NewRequestError("List", err)
	}

	if q.Page != nil {
		if q.Page.Limit > 0 {
			input.Limit = aws.Int32(q.Page.Limit)
		}
		if q.Page.Cursor != "" {
			start, err := decodeCursor(q.Page.Cursor)
			if err != nil {
				return nil, errors.NewRequestError("List", err)
			}
			input.ExclusiveStartKey = start
		}
	}

	out, err := d.client.Scan(ctx, input)
	if err != nil {
		return nil, d.mapRequestError("List", "", err)
	}

	raw := out.Items
	if len(q.Sort) > 0 {
		sortRawItems(raw, q.Sort)
	}

	items := make([]T, 0, len(raw))
	for _, r := range raw {
		item, err := d.unmarshalItem(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	page := models.Page[T]{Items: items}
	if out.LastEvaluatedKey != nil {
		cursor, err := encodeCursor(out.LastEvaluatedKey)
		if err != nil {
			return nil, errors.NewDecodeError(d.typeName, err)
		}
		page.Cursor = cursor
		page.HasMore = true
	}

	return models.NewEnvelope(page), nil
}

// Count returns how many items of this type match the query, summing
// COUNT-only scan pages.
func (d *DataClient[T]) Count(ctx context.Context, q models.CountQuery) (*models.Envelope[int64], error) {
	input, err := d.buildScanInput(q.Scope, q.Filter)
	if err != nil {
		return nil, errors.NewRequestError("Count", err)
	}
	input.Select = types.SelectCount

	var total int64
	for {
		out, err := d.client.Scan(ctx, input)
		if err != nil {
			return nil, d.mapRequestError("Count", "", err)
		}
		total += int64(out.Count)

		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	return models.NewEnvelope(total), nil
}

// buildScanInput assembles the filter expression restricting a scan to this
// entity type, the scope's key range, and the caller's field criteria.
func (d *DataClient[T]) buildScanInput(scope string, filter models.Filter) (*sdk.ScanInput, error) {
	names := map[string]string{"#et": entityTypeAttr}
	values := map[string]types.AttributeValue{
		":et": &types.AttributeValueMemberS{Value: d.typeName},
	}
	expr := "#et = :et"

	if scope != "" {
		names["#pk"] = "PK"
		values[":scope"] = &types.AttributeValueMemberS{Value: scope + "#"}
		expr += " AND begins_with(#pk, :scope)"
	}

	// Deterministic placeholder order keeps expressions stable for tests.
	fields := make([]string, 0, len(filter))
	for f := range filter {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for i, f := range fields {
		av, err := attributevalue.Marshal(filter[f])
		if err != nil {
			return nil, fmt.Errorf("cannot marshal filter value for %q: %w", f, err)
		}
		nameph := "#f" + strconv.Itoa(i)
		valueph := ":v" + strconv.Itoa(i)
		names[nameph] = f
		values[valueph] = av
		expr += fmt.Sprintf(" AND %s = %s", nameph, valueph)
	}

	return &sdk.ScanInput{
		TableName:                 &d.tableName,
		FilterExpression:          &expr,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}, nil
}

// sortRawItems orders raw scan results by the sort fields, in slice order.
// Numeric attributes compare numerically, everything else as strings.
func sortRawItems(items []map[string]types.AttributeValue, fields []models.SortField) {
	sort.SliceStable(items, func(i, j int) bool {
		for _, sf := range fields {
			cmp := compareAttr(items[i][sf.Field], items[j][sf.Field])
			if cmp == 0 {
				continue
			}
			if sf.Order == models.SortDesc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func compareAttr(a, b types.AttributeValue) int {
	an, aIsN := a.(*types.AttributeValueMemberN)
	bn, bIsN := b.(*types.AttributeValueMemberN)
	if aIsN && bIsN {
		af, aerr := strconv.ParseFloat(an.Value, 64)
		bf, berr := strconv.ParseFloat(bn.Value, 64)
		if aerr == nil && berr == nil {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	as := attrString(a)
	bs := attrString(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func attrString(av types.AttributeValue) string {
	switch tv := av.(type) {
	case *types.AttributeValueMemberS:
		return tv.Value
	case *types.AttributeValueMemberN:
		return tv.Value
	case *types.AttributeValueMemberBOOL:
		return fmt.Sprintf("%v", tv.Value)
	default:
		return ""
	}
}

// encodeCursor folds a LastEvaluatedKey into an opaque, URL-safe token.
func encodeCursor(key map[string]types.AttributeValue) (string, error) {
	plain := make(map[string]any, len(key))
	if err := attributevalue.UnmarshalMap(key, &plain); err != nil {
		return "", fmt.Errorf("cannot flatten page key: %w", err)
	}
	b, err := json.Marshal(plain)
	if err != nil {
		return "", fmt.Errorf("cannot encode page key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// decodeCursor reverses encodeCursor.
func decodeCursor(cursor string) (map[string]types.AttributeValue, error) {
	b, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("malformed cursor: %w", err)
	}
	var plain map[string]any
	if err := json.Unmarshal(b, &plain); err != nil {
		return nil, fmt.Errorf("malformed cursor: %w", err)
	}
	key, err := attributevalue.MarshalMap(plain)
	if err != nil {
		return nil, fmt.Errorf("malformed cursor: %w", err)
	}
	return key, nil
}
