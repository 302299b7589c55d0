/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/joho/godotenv"

	"github.com/suparena/itemstore/dataclient"
	"github.com/suparena/itemstore/errors"
	"github.com/suparena/itemstore/models"
	"github.com/suparena/itemstore/registry"
)

// entityTypeAttr is stamped on every stored item so scans can restrict
// themselves to one item type.
const entityTypeAttr = "EntityType"

var _ dataclient.DataClient[struct{}] = (*DataClient[struct{}])(nil)

// DataClient implements dataclient.DataClient[T] on AWS DynamoDB.
type DataClient[T any] struct {
	client    *sdk.Client
	tableName string
	typeName  string
}

// NewDynamoDBClient initializes a DynamoDB client using static AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// NewDataClient constructs a DynamoDB-backed DataClient for type T.
// T must have a key map registered in the registry package.
func NewDataClient[T any](awsAccessKey, awsSecretKey, awsRegion, tableName string) (*DataClient[T], error) {
	if _, ok := registry.GetKeyMap[T](); !ok {
		return nil, fmt.Errorf("no key map registered for type %s", registry.TypeNameFor[T]())
	}

	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	return &DataClient[T]{
		client:    client,
		tableName: tableName,
		typeName:  registry.TypeNameFor[T](),
	}, nil
}

// NewDataClientFromEnv constructs a DataClient from the environment,
// loading a .env file first when one is present. It reads
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_REGION, and ITEMSTORE_TABLE.
func NewDataClientFromEnv[T any]() (*DataClient[T], error) {
	_ = godotenv.Load()

	table := os.Getenv("ITEMSTORE_TABLE")
	if table == "" {
		return nil, fmt.Errorf("ITEMSTORE_TABLE is not set")
	}

	return NewDataClient[T](
		os.Getenv("AWS_ACCESS_KEY_ID"),
		os.Getenv("AWS_SECRET_ACCESS_KEY"),
		os.Getenv("AWS_REGION"),
		table,
	)
}

// Create stores a new item. The partition key must not already exist;
// a collision surfaces as a failed request.
func (d *DataClient[T]) Create(ctx context.Context, item T, scope string) (*models.Envelope[T], error) {
	av, expanded, err := d.marshalWithKeys(item, scope)
	if err != nil {
		return nil, err
	}

	condition := "attribute_not_exists(PK)"
	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           &d.tableName,
		Item:                av,
		ConditionExpression: &condition,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			return nil, errors.NewRequestError("Create",
				fmt.Errorf("item with key %q already exists", expanded["PK"]))
		}
		return nil, d.mapRequestError("Create", "", err)
	}

	return models.NewEnvelope(item), nil
}

// keyForID builds the primary key for the item addressed by id, scoped.
func (d *DataClient[T]) keyForID(op, id, scope string) (map[string]types.AttributeValue, error) {
	keyMap, _ := registry.GetKeyMap[T]()
	expanded := expandStringKey(keyMap, id)
	applyScope(expanded, scope)

	key, err := buildKeyFromExpanded(expanded)
	if err != nil {
		return nil, errors.NewRequestError(op, err)
	}
	return key, nil
}

// Get retrieves the item stored under id.
func (d *DataClient[T]) Get(ctx context.Context, id string, scope string) (*models.Envelope[T], error) {
	key, err := d.keyForID("Get", id, scope)
	if err != nil {
		return nil, err
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       key,
	})
	if err != nil {
		return nil, d.mapRequestError("Get", id, err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError("Get", id)
	}

	item, err := d.unmarshalItem(out.Item)
	if err != nil {
		return nil, err
	}
	return models.NewEnvelope(item), nil
}

// Update replaces the item stored under id. The item must already exist.
// The write key comes from id, not from the item's key fields, so an item
// carrying stale identifiers cannot land under a different key.
func (d *DataClient[T]) Update(ctx context.Context, id string, item T, scope string) (*models.Envelope[T], error) {
	av, err := d.updateAttrs(id, item, scope)
	if err != nil {
		return nil, err
	}

	condition := "attribute_exists(PK)"
	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           &d.tableName,
		Item:                av,
		ConditionExpression: &condition,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			return nil, errors.NewNotFoundError("Update", id)
		}
		return nil, d.mapRequestError("Update", id, err)
	}

	return models.NewEnvelope(item), nil
}

// updateAttrs marshals the item for an update and stamps the id-derived
// primary key over whatever key attributes the item's own fields expanded to.
func (d *DataClient[T]) updateAttrs(id string, item T, scope string) (map[string]types.AttributeValue, error) {
	av, _, err := d.marshalWithKeys(item, scope)
	if err != nil {
		return nil, err
	}

	key, err := d.keyForID("Update", id, scope)
	if err != nil {
		return nil, err
	}
	for k, v := range key {
		av[k] = v
	}
	return av, nil
}

// Delete removes the item stored under id. Deleting a missing item
// surfaces as not found.
func (d *DataClient[T]) Delete(ctx context.Context, id string, scope string) (*models.Envelope[models.Empty], error) {
	key, err := d.keyForID("Delete", id, scope)
	if err != nil {
		return nil, err
	}

	condition := "attribute_exists(PK)"
	_, err = d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName:           &d.tableName,
		Key:                 key,
		ConditionExpression: &condition,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			return nil, errors.NewNotFoundError("Delete", id)
		}
		return nil, d.mapRequestError("Delete", id, err)
	}

	return models.NewEnvelope(models.Empty{}), nil
}

// marshalWithKeys marshals the item and injects the expanded key and
// entity-type attributes.
func (d *DataClient[T]) marshalWithKeys(item T, scope string) (map[string]types.AttributeValue, map[string]string, error) {
	keyMap, _ := registry.GetKeyMap[T]()

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, nil, errors.NewDecodeError(d.typeName, err)
	}

	expanded, err := expandItemKeys(keyMap, item)
	if err != nil {
		return nil, nil, errors.NewDecodeError(d.typeName, err)
	}
	applyScope(expanded, scope)

	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}
	av[entityTypeAttr] = &types.AttributeValueMemberS{Value: d.typeName}

	return av, expanded, nil
}

func (d *DataClient[T]) unmarshalItem(raw map[string]types.AttributeValue) (T, error) {
	var item T
	if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
		return item, errors.NewDecodeError(d.typeName, err)
	}
	return item, nil
}

// mapRequestError folds an SDK error into the request family, keeping
// permission refusals distinguishable from generic failures.
func (d *DataClient[T]) mapRequestError(op, key string, err error) error {
	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDeniedException", "UnauthorizedOperation":
			return errors.NewForbiddenError(op, err)
		case "ResourceNotFoundException":
			// The table itself is missing, not the item.
			return errors.NewRequestError(op, err)
		}
	}
	return &errors.RequestError{Kind: errors.KindFailed, Op: op, Key: key, Err: err}
}
