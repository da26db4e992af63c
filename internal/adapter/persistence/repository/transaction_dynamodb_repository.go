package repository

import (
	"context"
	"errors"
	"time"

	"himmel_payments/internal/domain/entities"
	"himmel_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsUserIDIndex      = "user_id-index"
)

type transactionItem struct {
	OrderID   string                 `dynamodbav:"order_id"`
	RequestID string                 `dynamodbav:"request_id"`
	UserID    string                 `dynamodbav:"user_id"`
	Amount    string                 `dynamodbav:"amount"`
	Type      string                 `dynamodbav:"type"`
	Message   string                 `dynamodbav:"message"`
	Metadata  map[string]interface{} `dynamodbav:"metadata,omitempty"`
	Status    string                 `dynamodbav:"status"`
	CreatedAt string                 `dynamodbav:"created_at"`
	UpdatedAt string                 `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists payment transactions in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
//
// Status updates are conditional on the record's current status so two
// concurrent notifications for the same order cannot both win.
type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	it := toTransactionItem(tx)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#order_id)"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (r *TransactionDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

// UpdateStatus swaps the record's status from current to next. A lost
// condition (record missing or status already moved) returns a zero-value
// Transaction, not an error.
func (r *TransactionDynamoRepository) UpdateStatus(ctx context.Context, orderID string, current, next entities.PaymentStatus) (entities.Transaction, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression: aws.String("attribute_exists(#order_id) AND #status = :current"),
		UpdateExpression:    aws.String("SET #status = :next, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#order_id":   "order_id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":current":    &types.AttributeValueMemberS{Value: string(current)},
			":next":       &types.AttributeValueMemberS{Value: string(next)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Transaction{}, nil
		}
		return entities.Transaction{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

// ListByUserID returns the user's transactions ordered by creation time,
// most recent first (descending range-key scan on the GSI).
func (r *TransactionDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Transaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

func toTransactionItem(tx entities.Transaction) transactionItem {
	return transactionItem{
		OrderID:   tx.OrderID,
		RequestID: tx.RequestID,
		UserID:    tx.UserID,
		Amount:    tx.Amount,
		Type:      string(tx.Type),
		Message:   tx.Message,
		Metadata:  tx.Metadata,
		Status:    string(tx.Status),
		CreatedAt: tx.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: tx.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Transaction{
		OrderID:   it.OrderID,
		RequestID: it.RequestID,
		UserID:    it.UserID,
		Amount:    it.Amount,
		Type:      entities.TransactionType(it.Type),
		Message:   it.Message,
		Metadata:  it.Metadata,
		Status:    entities.PaymentStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
