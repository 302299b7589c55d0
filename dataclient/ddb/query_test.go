/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/itemstore/models"
)

func testClient() *DataClient[keyTestEntity] {
	return &DataClient[keyTestEntity]{
		tableName: "test-table",
		typeName:  "keyTestEntity",
	}
}

func TestBuildScanInput(t *testing.T) {
	t.Run("TypeRestrictionAlwaysPresent", func(t *testing.T) {
		input, err := testClient().buildScanInput("", nil)
		if err != nil {
			t.Fatalf("buildScanInput failed: %v", err)
		}
		if *input.FilterExpression != "#et = :et" {
			t.Fatalf("unexpected expression: %q", *input.FilterExpression)
		}
		if input.ExpressionAttributeNames["#et"] != "EntityType" {
			t.Fatalf("unexpected names: %v", input.ExpressionAttributeNames)
		}
		et, ok := input.ExpressionAttributeValues[":et"].(*types.AttributeValueMemberS)
		if !ok || et.Value != "keyTestEntity" {
			t.Fatalf("unexpected :et value: %v", input.ExpressionAttributeValues[":et"])
		}
	})

	t.Run("ScopeRestrictsKeyRange", func(t *testing.T) {
		input, err := testClient().buildScanInput("tenant-a", nil)
		if err != nil {
			t.Fatalf("buildScanInput failed: %v", err)
		}
		if !strings.Contains(*input.FilterExpression, "begins_with(#pk, :scope)") {
			t.Fatalf("expected scope clause, got %q", *input.FilterExpression)
		}
		scope, ok := input.ExpressionAttributeValues[":scope"].(*types.AttributeValueMemberS)
		if !ok || scope.Value != "tenant-a#" {
			t.Fatalf("unexpected :scope value: %v", input.ExpressionAttributeValues[":scope"])
		}
	})

	t.Run("FilterFieldsInDeterministicOrder", func(t *testing.T) {
		filter := models.Filter{"status": "active", "country": "CH"}
		input, err := testClient().buildScanInput("", filter)
		if err != nil {
			t.Fatalf("buildScanInput failed: %v", err)
		}

		// Fields sort lexically: country before status.
		want := "#et = :et AND #f0 = :v0 AND #f1 = :v1"
		if *input.FilterExpression != want {
			t.Fatalf("expected %q, got %q", want, *input.FilterExpression)
		}
		if input.ExpressionAttributeNames["#f0"] != "country" ||
			input.ExpressionAttributeNames["#f1"] != "status" {
			t.Fatalf("unexpected names: %v", input.ExpressionAttributeNames)
		}
	})
}

func TestCursorRoundTrip(t *testing.T) {
	key := map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "ENT#42"},
		"SK": &types.AttributeValueMemberS{Value: "ENT#42"},
	}

	cursor, err := encodeCursor(key)
	if err != nil {
		t.Fatalf("encodeCursor failed: %v", err)
	}
	if cursor == "" {
		t.Fatal("expected non-empty cursor")
	}

	decoded, err := decodeCursor(cursor)
	if err != nil {
		t.Fatalf("decodeCursor failed: %v", err)
	}

	pk, ok := decoded["PK"].(*types.AttributeValueMemberS)
	if !ok || pk.Value != "ENT#42" {
		t.Fatalf("PK did not survive round trip: %v", decoded["PK"])
	}
	sk, ok := decoded["SK"].(*types.AttributeValueMemberS)
	if !ok || sk.Value != "ENT#42" {
		t.Fatalf("SK did not survive round trip: %v", decoded["SK"])
	}
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	if _, err := decodeCursor("!!not-base64!!"); err == nil {
		t.Fatal("expected error for malformed cursor")
	}
	if _, err := decodeCursor("bm90LWpzb24"); err == nil {
		t.Fatal("expected error for non-JSON cursor")
	}
}

func TestSortRawItems(t *testing.T) {
	items := func() []map[string]types.AttributeValue {
		return []map[string]types.AttributeValue{
			{
				"Name":   &types.AttributeValueMemberS{Value: "carol"},
				"Rating": &types.AttributeValueMemberN{Value: "1200"},
			},
			{
				"Name":   &types.AttributeValueMemberS{Value: "alice"},
				"Rating": &types.AttributeValueMemberN{Value: "900"},
			},
			{
				"Name":   &types.AttributeValueMemberS{Value: "bob"},
				"Rating": &types.AttributeValueMemberN{Value: "1200"},
			},
		}
	}

	t.Run("StringAscending", func(t *testing.T) {
		raw := items()
		sortRawItems(raw, []models.SortField{{Field: "Name", Order: models.SortAsc}})
		if attrString(raw[0]["Name"]) != "alice" || attrString(raw[2]["Name"]) != "carol" {
			t.Fatalf("unexpected order: %v %v %v",
				attrString(raw[0]["Name"]), attrString(raw[1]["Name"]), attrString(raw[2]["Name"]))
		}
	})

	t.Run("NumericDescendingThenName", func(t *testing.T) {
		raw := items()
		sortRawItems(raw, []models.SortField{
			{Field: "Rating", Order: models.SortDesc},
			{Field: "Name", Order: models.SortAsc},
		})
		// 1200/bob before 1200/carol, then 900/alice.
		if attrString(raw[0]["Name"]) != "bob" ||
			attrString(raw[1]["Name"]) != "carol" ||
			attrString(raw[2]["Name"]) != "alice" {
			t.Fatalf("unexpected order: %v %v %v",
				attrString(raw[0]["Name"]), attrString(raw[1]["Name"]), attrString(raw[2]["Name"]))
		}
	})

	t.Run("NumbersCompareNumerically", func(t *testing.T) {
		raw := []map[string]types.AttributeValue{
			{"Rating": &types.AttributeValueMemberN{Value: "900"}},
			{"Rating": &types.AttributeValueMemberN{Value: "80"}},
		}
		sortRawItems(raw, []models.SortField{{Field: "Rating", Order: models.SortAsc}})
		// Lexically "80" > "900"; numerically 80 < 900.
		first := raw[0]["Rating"].(*types.AttributeValueMemberN)
		if first.Value != "80" {
			t.Fatalf("expected numeric comparison, got first=%q", first.Value)
		}
	})
}
