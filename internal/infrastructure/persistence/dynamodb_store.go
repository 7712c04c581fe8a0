package persistence

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/molpadia/molpashow/internal/domain/repository"
)

// The item layout of the DynamoDB table. The table is keyed by the "Key" attribute.
type dynamoItem struct {
	Key   string
	Value []byte
}

// DynamoDBStore keeps one item per key in a DynamoDB table.
type DynamoDBStore struct {
	db        dynamodbiface.DynamoDBAPI
	tableName string
}

func NewDynamoDBStore(sess *session.Session, tableName string) *DynamoDBStore {
	return &DynamoDBStore{dynamodb.New(sess), tableName}
}

// Get the value by the key. Reads are strongly consistent so a save is visible to the
// next load.
func (s *DynamoDBStore) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.db.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		Key:            map[string]*dynamodb.AttributeValue{"Key": {S: aws.String(key)}},
		TableName:      aws.String(s.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, &StoreError{Op: "get", Backend: "dynamodb", Key: key, Err: err}
	}
	if len(out.Item) == 0 {
		return nil, repository.ErrNotFound
	}
	var item dynamoItem
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		return nil, &StoreError{Op: "get", Backend: "dynamodb", Key: key, Err: err}
	}
	return item.Value, nil
}

// Put the value as a whole item.
func (s *DynamoDBStore) Set(ctx context.Context, key string, value []byte) error {
	av, err := dynamodbattribute.MarshalMap(dynamoItem{Key: key, Value: value})
	if err != nil {
		return &StoreError{Op: "set", Backend: "dynamodb", Key: key, Err: err}
	}
	_, err = s.db.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(s.tableName),
	})
	if err != nil {
		return &StoreError{Op: "set", Backend: "dynamodb", Key: key, Err: err}
	}
	return nil
}

func (s *DynamoDBStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.DeleteItemWithContext(ctx, &dynamodb.DeleteItemInput{
		Key:       map[string]*dynamodb.AttributeValue{"Key": {S: aws.String(key)}},
		TableName: aws.String(s.tableName),
	})
	if err != nil {
		return &StoreError{Op: "delete", Backend: "dynamodb", Key: key, Err: err}
	}
	return nil
}

func (s *DynamoDBStore) Close() error { return nil }
