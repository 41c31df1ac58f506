package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"moviecatalog/movie"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type movieDocument struct {
	ID          bson.ObjectID   `bson:"_id"`
	Name        string          `bson:"name"`
	Description string          `bson:"description"`
	ReleaseDate time.Time       `bson:"releaseDate"`
	Rating      *float64        `bson:"rating,omitempty"`
	Categories  []bson.ObjectID `bson:"categories"`
}

func (d movieDocument) toMovie() movie.Movie {
	categories := make([]string, len(d.Categories))
	for i, id := range d.Categories {
		categories[i] = id.Hex()
	}
	return movie.Movie{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		ReleaseDate: d.ReleaseDate.UTC(),
		Rating:      d.Rating,
		Categories:  categories,
	}
}

// MovieRepository implements movie.Repository on a MongoDB collection.
type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{coll: db.Collection(moviesCollection)}
}

// searchFilter ANDs one case-insensitive regex per clause. The substring is
// quoted so it always matches literally.
func searchFilter(clauses []movie.Clause) bson.D {
	filter := bson.D{}
	for _, c := range clauses {
		filter = append(filter, bson.E{
			Key:   string(c.Field),
			Value: bson.Regex{Pattern: regexp.QuoteMeta(c.Substring), Options: "i"},
		})
	}
	return filter
}

func (r *MovieRepository) FindMovies(ctx context.Context, f movie.Filter, p movie.Page) ([]movie.Movie, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(p.Skip())).
		SetLimit(int64(p.Limit))

	return r.find(ctx, searchFilter(f.Clauses()), opts)
}

func (r *MovieRepository) CountMovies(ctx context.Context, f movie.Filter) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, searchFilter(f.Clauses()))
	if err != nil {
		return 0, fmt.Errorf("mongodb: count movies: %w", err)
	}
	return count, nil
}

func (r *MovieRepository) GetMovie(ctx context.Context, id string) (movie.Movie, error) {
	oid, err := objectID("movie", id)
	if err != nil {
		return movie.Movie{}, err
	}

	var doc movieDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return movie.Movie{}, movie.ErrMovieNotFound
	}
	if err != nil {
		return movie.Movie{}, fmt.Errorf("mongodb: find movie: %w", err)
	}
	return doc.toMovie(), nil
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	doc, err := newMovieDocument(bson.NewObjectID(), m)
	if err != nil {
		return movie.Movie{}, err
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return movie.Movie{}, fmt.Errorf("mongodb: insert movie: %w", err)
	}
	return doc.toMovie(), nil
}

func (r *MovieRepository) ReplaceMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	oid, err := objectID("movie", m.ID)
	if err != nil {
		return movie.Movie{}, err
	}
	doc, err := newMovieDocument(oid, m)
	if err != nil {
		return movie.Movie{}, err
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("mongodb: replace movie: %w", err)
	}
	if res.MatchedCount == 0 {
		return movie.Movie{}, movie.ErrMovieNotFound
	}
	return doc.toMovie(), nil
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id string) error {
	oid, err := objectID("movie", id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("mongodb: delete movie: %w", err)
	}
	if res.DeletedCount == 0 {
		return movie.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) MoviesByCategory(ctx context.Context, categoryID string) ([]movie.Movie, error) {
	oid, err := objectID("category", categoryID)
	if err != nil {
		return nil, err
	}

	return r.find(ctx, bson.M{"categories": oid}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (r *MovieRepository) find(ctx context.Context, filter interface{}, opts *options.FindOptionsBuilder) ([]movie.Movie, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: find movies: %w", err)
	}

	var docs []movieDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb: decode movies: %w", err)
	}

	movies := make([]movie.Movie, len(docs))
	for i, doc := range docs {
		movies[i] = doc.toMovie()
	}
	return movies, nil
}

// newMovieDocument keeps releaseDate at the millisecond precision of a BSON
// datetime so the returned movie matches what a later read yields.
func newMovieDocument(id bson.ObjectID, m movie.Movie) (movieDocument, error) {
	categories := make([]bson.ObjectID, len(m.Categories))
	for i, ref := range m.Categories {
		oid, err := bson.ObjectIDFromHex(ref)
		if err != nil {
			return movieDocument{}, movie.ErrInvalidReference
		}
		categories[i] = oid
	}

	return movieDocument{
		ID:          id,
		Name:        m.Name,
		Description: m.Description,
		ReleaseDate: m.ReleaseDate.UTC().Truncate(time.Millisecond),
		Rating:      m.Rating,
		Categories:  categories,
	}, nil
}

// objectID parses a path id. Malformed ids are store errors, not lookups
// that missed.
func objectID(kind, id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("mongodb: invalid %s id %q: %w", kind, id, err)
	}
	return oid, nil
}
