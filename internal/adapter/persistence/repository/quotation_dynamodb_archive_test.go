package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"quotedesk/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

type fakePutter struct {
	input *dynamodb.PutItemInput
	err   error
}

func (f *fakePutter) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func TestQuotationDynamoArchive_Archive(t *testing.T) {
	now := time.Date(2024, 2, 22, 10, 0, 0, 0, time.UTC)
	q := entities.NewQuotation("q-1", now)
	q.Customer = entities.Customer{Name: "Sarah Johnson", Email: "sarah@example.com"}
	id := q.Items()[0].ID
	q.SetQuantity(id, 2)
	q.SetUnitPrice(id, decimal.RequireFromString("10.05"))
	snap := q.Snapshot(entities.SendMethodEmail, now)

	t.Run("writes item with exact decimals", func(t *testing.T) {
		putter := &fakePutter{}
		archive := newQuotationDynamoArchive(putter, "")

		if err := archive.Archive(context.Background(), snap); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.ToString(putter.input.TableName) != DefaultQuotationsTableName {
			t.Fatalf("unexpected table: %s", aws.ToString(putter.input.TableName))
		}
		if aws.ToString(putter.input.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("archive must not overwrite existing quotations")
		}

		var stored quotationArchiveItem
		if err := attributevalue.UnmarshalMap(putter.input.Item, &stored); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if stored.ID != "q-1" || stored.CustomerName != "Sarah Johnson" || stored.SendMethod != "Email" {
			t.Fatalf("unexpected stored item: %+v", stored)
		}
		if stored.Subtotal != "20.1" || stored.Tax != "2.01" || stored.Total != "22.11" {
			t.Fatalf("unexpected amounts: %+v", stored)
		}
		if len(stored.Items) != 1 || stored.Items[0].Quantity != 2 || stored.Items[0].LineTotal != "20.1" {
			t.Fatalf("unexpected items: %+v", stored.Items)
		}
	})

	t.Run("propagates errors", func(t *testing.T) {
		putter := &fakePutter{err: errors.New("ddb down")}
		archive := newQuotationDynamoArchive(putter, "custom")
		if err := archive.Archive(context.Background(), snap); err == nil || err.Error() != "ddb down" {
			t.Fatalf("expected ddb down, got %v", err)
		}
		if aws.ToString(putter.input.TableName) != "custom" {
			t.Fatalf("expected custom table name")
		}
	})

	t.Run("noop", func(t *testing.T) {
		if err := (NoopQuotationArchive{}).Archive(context.Background(), snap); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
