package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"moviecatalog/movie"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// searchAttributes maps a searchable field to its lower-cased shadow
// attribute. DynamoDB's contains() is case-sensitive, so search runs against
// the shadows.
var searchAttributes = map[movie.Field]string{
	movie.FieldName:        "name_lower",
	movie.FieldDescription: "description_lower",
}

type movieItem struct {
	ID               string    `dynamodbav:"id"`
	Name             string    `dynamodbav:"name"`
	NameLower        string    `dynamodbav:"name_lower"`
	Description      string    `dynamodbav:"description"`
	DescriptionLower string    `dynamodbav:"description_lower"`
	ReleaseDate      time.Time `dynamodbav:"release_date"`
	Rating           *float64  `dynamodbav:"rating,omitempty"`
	Categories       []string  `dynamodbav:"categories"`
	CreatedAt        int64     `dynamodbav:"created_at"`
}

func (i movieItem) toMovie() movie.Movie {
	categories := i.Categories
	if categories == nil {
		categories = []string{}
	}
	return movie.Movie{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		ReleaseDate: i.ReleaseDate.UTC(),
		Rating:      i.Rating,
		Categories:  categories,
	}
}

// MovieRepository implements movie.Repository on a DynamoDB table keyed by
// id. Listing scans the table; results are ordered by creation time.
type MovieRepository struct {
	client *dynamodb.Client
	table  string
	now    func() time.Time
}

func NewMovieRepository(client *dynamodb.Client, table string) *MovieRepository {
	return &MovieRepository{
		client: client,
		table:  table,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

type scanFilter struct {
	expression *string
	names      map[string]string
	values     map[string]types.AttributeValue
}

// searchScanFilter ANDs one contains() condition per clause.
func searchScanFilter(clauses []movie.Clause) scanFilter {
	if len(clauses) == 0 {
		return scanFilter{}
	}

	conditions := make([]string, 0, len(clauses))
	names := make(map[string]string, len(clauses))
	values := make(map[string]types.AttributeValue, len(clauses))
	for i, c := range clauses {
		name := fmt.Sprintf("#f%d", i)
		value := fmt.Sprintf(":v%d", i)
		conditions = append(conditions, fmt.Sprintf("contains(%s, %s)", name, value))
		names[name] = searchAttributes[c.Field]
		values[value] = &types.AttributeValueMemberS{Value: strings.ToLower(c.Substring)}
	}

	return scanFilter{
		expression: aws.String(strings.Join(conditions, " AND ")),
		names:      names,
		values:     values,
	}
}

func (r *MovieRepository) FindMovies(ctx context.Context, f movie.Filter, p movie.Page) ([]movie.Movie, error) {
	items, err := r.scan(ctx, searchScanFilter(f.Clauses()))
	if err != nil {
		return nil, err
	}

	skip := p.Skip()
	if skip >= len(items) {
		return []movie.Movie{}, nil
	}
	end := skip + p.Limit
	if end > len(items) {
		end = len(items)
	}

	movies := make([]movie.Movie, 0, end-skip)
	for _, item := range items[skip:end] {
		movies = append(movies, item.toMovie())
	}
	return movies, nil
}

func (r *MovieRepository) CountMovies(ctx context.Context, f movie.Filter) (int64, error) {
	if err := validateTable(r.table); err != nil {
		return 0, err
	}

	filter := searchScanFilter(f.Clauses())
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:                 &r.table,
		Select:                    types.SelectCount,
		FilterExpression:          filter.expression,
		ExpressionAttributeNames:  filter.names,
		ExpressionAttributeValues: filter.values,
	})

	var count int64
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("dynamodb: count movies: %w", err)
		}
		count += int64(out.Count)
	}
	return count, nil
}

func (r *MovieRepository) GetMovie(ctx context.Context, id string) (movie.Movie, error) {
	if err := validateTable(r.table); err != nil {
		return movie.Movie{}, err
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      &r.table,
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: get movie: %w", err)
	}
	if len(out.Item) == 0 {
		return movie.Movie{}, movie.ErrMovieNotFound
	}

	var item movieItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: unmarshal movie: %w", err)
	}
	return item.toMovie(), nil
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	if err := validateTable(r.table); err != nil {
		return movie.Movie{}, err
	}

	item := newMovieItem(uuid.NewString(), m)
	item.CreatedAt = r.now().UnixNano()
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: marshal movie: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &r.table,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: put movie: %w", err)
	}
	return item.toMovie(), nil
}

// ReplaceMovie overwrites every stored attribute except id and created_at.
func (r *MovieRepository) ReplaceMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	if err := validateTable(r.table); err != nil {
		return movie.Movie{}, err
	}

	item := newMovieItem(m.ID, m)
	releaseDate, err := attributevalue.Marshal(item.ReleaseDate)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: marshal release date: %w", err)
	}
	categories, err := attributevalue.Marshal(item.Categories)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: marshal categories: %w", err)
	}

	names := map[string]string{
		"#id":   "id",
		"#n":    "name",
		"#nl":   "name_lower",
		"#d":    "description",
		"#dl":   "description_lower",
		"#rd":   "release_date",
		"#c":    "categories",
		"#rate": "rating",
	}
	values := map[string]types.AttributeValue{
		":n":  &types.AttributeValueMemberS{Value: item.Name},
		":nl": &types.AttributeValueMemberS{Value: item.NameLower},
		":d":  &types.AttributeValueMemberS{Value: item.Description},
		":dl": &types.AttributeValueMemberS{Value: item.DescriptionLower},
		":rd": releaseDate,
		":c":  categories,
	}
	update := "SET #n = :n, #nl = :nl, #d = :d, #dl = :dl, #rd = :rd, #c = :c"
	if item.Rating != nil {
		rating, err := attributevalue.Marshal(*item.Rating)
		if err != nil {
			return movie.Movie{}, fmt.Errorf("dynamodb: marshal rating: %w", err)
		}
		values[":rate"] = rating
		update += ", #rate = :rate"
	} else {
		update += " REMOVE #rate"
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 &r.table,
		Key:                       idKey(m.ID),
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return movie.Movie{}, movie.ErrMovieNotFound
		}
		return movie.Movie{}, fmt.Errorf("dynamodb: update movie: %w", err)
	}

	var updated movieItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: unmarshal movie: %w", err)
	}
	return updated.toMovie(), nil
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id string) error {
	if err := validateTable(r.table); err != nil {
		return err
	}

	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                &r.table,
		Key:                      idKey(id),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return movie.ErrMovieNotFound
		}
		return fmt.Errorf("dynamodb: delete movie: %w", err)
	}
	return nil
}

func (r *MovieRepository) MoviesByCategory(ctx context.Context, categoryID string) ([]movie.Movie, error) {
	items, err := r.scan(ctx, scanFilter{
		expression: aws.String("contains(#c, :c)"),
		names:      map[string]string{"#c": "categories"},
		values: map[string]types.AttributeValue{
			":c": &types.AttributeValueMemberS{Value: categoryID},
		},
	})
	if err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(items))
	for i, item := range items {
		movies[i] = item.toMovie()
	}
	return movies, nil
}

// scan reads every matching item, ordered by creation time then id.
func (r *MovieRepository) scan(ctx context.Context, filter scanFilter) ([]movieItem, error) {
	if err := validateTable(r.table); err != nil {
		return nil, err
	}

	var items []movieItem
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:                 &r.table,
		FilterExpression:          filter.expression,
		ExpressionAttributeNames:  filter.names,
		ExpressionAttributeValues: filter.values,
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: scan movies: %w", err)
		}

		var page []movieItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("dynamodb: unmarshal movies: %w", err)
		}
		items = append(items, page...)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt < items[j].CreatedAt
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func newMovieItem(id string, m movie.Movie) movieItem {
	categories := m.Categories
	if categories == nil {
		categories = []string{}
	}
	return movieItem{
		ID:               id,
		Name:             m.Name,
		NameLower:        strings.ToLower(m.Name),
		Description:      m.Description,
		DescriptionLower: strings.ToLower(m.Description),
		ReleaseDate:      m.ReleaseDate.UTC(),
		Rating:           m.Rating,
		Categories:       categories,
	}
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
