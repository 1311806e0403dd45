// internal/storage/dynamo.go
package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"peliculas-service/internal/model"
)

// MovieStore is the put-by-key store the handler writes movies to.
type MovieStore interface {
	Put(ctx context.Context, table string, movie model.Movie) (map[string]any, error)
}

type DynamoStore struct {
	Client *dynamodb.Client
}

// NewDynamoStore builds a DynamoDB-backed store. A non-empty endpoint
// overrides the client's base endpoint (used to target a local instance).
func NewDynamoStore(ctx context.Context, region, endpoint string) (*DynamoStore, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return &DynamoStore{Client: client}, nil
}

// Put writes the movie with a single PutItem partitioned by tenant_id. No
// condition expression and no read-modify-write: last write wins.
func (s *DynamoStore) Put(ctx context.Context, table string, movie model.Movie) (map[string]any, error) {
	item, err := attributevalue.MarshalMap(movie)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal movie: %w", err)
	}
	out, err := s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	})
	if err != nil {
		return nil, err
	}
	return putResponseMetadata(out), nil
}

// putResponseMetadata flattens the PutItem output into JSON-safe values. The
// shape is store specific; callers pass it through unchanged.
func putResponseMetadata(out *dynamodb.PutItemOutput) map[string]any {
	meta := map[string]any{}
	if rid, ok := awsmiddleware.GetRequestIDMetadata(out.ResultMetadata); ok {
		meta["request_id"] = rid
	}
	if cc := out.ConsumedCapacity; cc != nil {
		capacity := map[string]any{}
		if cc.TableName != nil {
			capacity["table_name"] = *cc.TableName
		}
		if cc.CapacityUnits != nil {
			capacity["capacity_units"] = *cc.CapacityUnits
		}
		meta["consumed_capacity"] = capacity
	}
	if len(out.Attributes) > 0 {
		var attrs map[string]any
		if err := attributevalue.UnmarshalMap(out.Attributes, &attrs); err == nil {
			meta["attributes"] = attrs
		} else {
			meta["attributes"] = fmt.Sprintf("%v", out.Attributes)
		}
	}
	return meta
}
