package dynamodb

import (
	"context"
	"fmt"

	"moviecatalog/category"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// batchGetLimit is the maximum number of keys in one BatchGetItem call.
const batchGetLimit = 100

// maxUnprocessedRetries bounds how often unprocessed keys are re-requested.
const maxUnprocessedRetries = 5

type CategoryRepository struct {
	client *dynamodb.Client
	table  string
}

type categoryItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

func NewCategoryRepository(client *dynamodb.Client, table string) *CategoryRepository {
	return &CategoryRepository{
		client: client,
		table:  table,
	}
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, c category.Category) (category.Category, error) {
	if err := validateTable(r.table); err != nil {
		return category.Category{}, err
	}

	item := categoryItem{
		ID:   uuid.NewString(),
		Name: c.Name,
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return category.Category{}, fmt.Errorf("dynamodb: marshal category: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &r.table,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return category.Category{}, fmt.Errorf("dynamodb: put category: %w", err)
	}

	return category.Category{ID: item.ID, Name: item.Name}, nil
}

func (r *CategoryRepository) CategoriesByIDs(ctx context.Context, ids []string) ([]category.Category, error) {
	if err := validateTable(r.table); err != nil {
		return nil, err
	}

	byID := make(map[string]category.Category, len(ids))
	for _, chunk := range chunkKeys(ids, batchGetLimit) {
		request := map[string]types.KeysAndAttributes{
			r.table: {Keys: chunk, ConsistentRead: aws.Bool(true)},
		}
		for attempt := 0; len(request) > 0; attempt++ {
			if attempt > maxUnprocessedRetries {
				return nil, fmt.Errorf("dynamodb: batch get categories: unprocessed keys remain")
			}

			out, err := r.client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, fmt.Errorf("dynamodb: batch get categories: %w", err)
			}

			var items []categoryItem
			if err := attributevalue.UnmarshalListOfMaps(out.Responses[r.table], &items); err != nil {
				return nil, fmt.Errorf("dynamodb: unmarshal categories: %w", err)
			}
			for _, item := range items {
				byID[item.ID] = category.Category{ID: item.ID, Name: item.Name}
			}
			request = out.UnprocessedKeys
		}
	}

	categories := make([]category.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

// chunkKeys splits ids into de-duplicated key batches of at most size keys.
func chunkKeys(ids []string, size int) [][]map[string]types.AttributeValue {
	seen := make(map[string]bool, len(ids))
	var (
		chunks  [][]map[string]types.AttributeValue
		current []map[string]types.AttributeValue
	)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		current = append(current, idKey(id))
		if len(current) == size {
			chunks = append(chunks, current)
			current = nil
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}
