/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandItemKeys expands the key templates of a key map using the fields of
// the item itself. A template like "USER#{ID}" resolves {ID} against the
// item's marshaled attributes.
func expandItemKeys(keyMap map[string]string, item any) (map[string]string, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item for key expansion: %w", err)
	}

	res := make(map[string]string, len(keyMap))

	for fieldName, template := range keyMap {
		expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			field := strings.Trim(macro, "{}")

			val, ok := av[field]
			if !ok {
				return ""
			}

			switch tv := val.(type) {
			case *types.AttributeValueMemberS:
				return tv.Value
			case *types.AttributeValueMemberN:
				return tv.Value
			case *types.AttributeValueMemberBOOL:
				return fmt.Sprintf("%v", tv.Value)
			default:
				// Null, binary, and set attributes cannot name a key.
				return ""
			}
		})
		res[fieldName] = expanded
	}

	return res, nil
}

// expandStringKey replaces every macro in the key map templates with the
// provided id. Used by Get, Update, and Delete, where the caller supplies a
// plain string id rather than a full item.
func expandStringKey(keyMap map[string]string, id string) map[string]string {
	expanded := make(map[string]string, len(keyMap))
	for field, template := range keyMap {
		expanded[field] = macroPattern.ReplaceAllString(template, id)
	}
	return expanded
}

// applyScope prefixes the partition key with the scope, keeping tenants on
// disjoint key ranges. An empty scope leaves the key untouched.
func applyScope(expanded map[string]string, scope string) {
	if scope == "" {
		return
	}
	if pk, ok := expanded["PK"]; ok {
		expanded["PK"] = scope + "#" + pk
	}
}

// buildKeyFromExpanded builds the DynamoDB primary key from an expanded key
// map. Both PK and SK must have resolved to non-empty values.
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded["PK"]
	sk, okSK := expanded["SK"]

	if !okPK || !okSK || pk == "" || sk == "" {
		return nil, fmt.Errorf("expanded key map missing valid PK or SK")
	}

	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, nil
}
