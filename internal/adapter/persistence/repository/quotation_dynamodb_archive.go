package repository

import (
	"context"
	"log"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const DefaultQuotationsTableName = "quotations"

type dynamoPutter interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type quotationLineItemAttr struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
	LineTotal string `dynamodbav:"line_total"`
}

type quotationArchiveItem struct {
	ID            string                  `dynamodbav:"id"`
	CustomerName  string                  `dynamodbav:"customer_name"`
	CustomerEmail string                  `dynamodbav:"customer_email,omitempty"`
	CustomerPhone string                  `dynamodbav:"customer_phone,omitempty"`
	Items         []quotationLineItemAttr `dynamodbav:"items"`
	Subtotal      string                  `dynamodbav:"subtotal"`
	Tax           string                  `dynamodbav:"tax"`
	Total         string                  `dynamodbav:"total"`
	SendMethod    string                  `dynamodbav:"send_method"`
	CreatedAt     string                  `dynamodbav:"created_at"`
	SubmittedAt   string                  `dynamodbav:"submitted_at"`
}

// QuotationDynamoArchive writes submitted quotations to DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Monetary values are stored as exact decimal strings.
type QuotationDynamoArchive struct {
	ddb       dynamoPutter
	tableName string
}

var _ interfaces.IQuotationArchive = (*QuotationDynamoArchive)(nil)

func NewQuotationDynamoArchive(ddb *dynamodb.Client, tableName string) *QuotationDynamoArchive {
	return newQuotationDynamoArchive(ddb, tableName)
}

func newQuotationDynamoArchive(ddb dynamoPutter, tableName string) *QuotationDynamoArchive {
	if tableName == "" {
		tableName = DefaultQuotationsTableName
	}
	return &QuotationDynamoArchive{ddb: ddb, tableName: tableName}
}

func (r *QuotationDynamoArchive) Archive(ctx context.Context, snapshot entities.QuotationSnapshot) error {
	av, err := attributevalue.MarshalMap(toQuotationArchiveItem(snapshot))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		log.Printf("[quotation][archive] put failed quotation_id=%s err=%v", snapshot.ID, err)
		return err
	}
	return nil
}

func toQuotationArchiveItem(s entities.QuotationSnapshot) quotationArchiveItem {
	items := make([]quotationLineItemAttr, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, quotationLineItemAttr{
			ID:        it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.String(),
			LineTotal: it.LineTotal.String(),
		})
	}
	return quotationArchiveItem{
		ID:            s.ID,
		CustomerName:  s.Customer.Name,
		CustomerEmail: s.Customer.Email,
		CustomerPhone: s.Customer.Phone,
		Items:         items,
		Subtotal:      s.Subtotal.String(),
		Tax:           s.Tax.String(),
		Total:         s.Total.String(),
		SendMethod:    string(s.SendMethod),
		CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339Nano),
		SubmittedAt:   s.SubmittedAt.UTC().Format(time.RFC3339Nano),
	}
}

// NoopQuotationArchive is used when no archive backend is configured.
type NoopQuotationArchive struct{}

var _ interfaces.IQuotationArchive = NoopQuotationArchive{}

func (NoopQuotationArchive) Archive(_ context.Context, snapshot entities.QuotationSnapshot) error {
	log.Printf("[quotation][archive] disabled; skipping quotation_id=%s", snapshot.ID)
	return nil
}
