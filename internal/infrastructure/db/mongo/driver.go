package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/query"
	"github.com/magicvilla/villa-api/internal/core/repository"
)

const (
	collectionCounters = "counters"
	idField            = "_id"
)

// caseInsensitive matches the unique indexes and the EqFold translation.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

var _ repository.Driver[domain.Villa] = (*Driver[domain.Villa])(nil)

// Driver stores one entity type in a collection named after its schema.
// Generated keys come from a per-collection sequence in the counters
// collection so that identities stay integers.
type Driver[T any] struct {
	col      *mongo.Collection
	counters *mongo.Collection
	schema   repository.Schema[T]
}

// NewDriver returns a Driver for schema backed by db.
func NewDriver[T any](db *mongo.Database, schema repository.Schema[T]) *Driver[T] {
	return &Driver[T]{
		col:      db.Collection(schema.Name),
		counters: db.Collection(collectionCounters),
		schema:   schema,
	}
}

func (d *Driver[T]) Find(ctx context.Context, filter query.Filter, limit int) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: idField, Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := d.col.Find(ctx, toBSON(filter, d.schema.Key), opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", d.schema.Name, err)
	}
	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", d.schema.Name, err)
	}
	return out, nil
}

func (d *Driver[T]) Insert(ctx context.Context, entity *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if d.schema.GeneratedKey {
		id, err := d.nextID(ctx)
		if err != nil {
			return err
		}
		d.schema.SetID(entity, id)
	}

	if _, err := d.col.InsertOne(ctx, document(d.schema, entity)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", domain.ErrConflict, err.Error())
		}
		return fmt.Errorf("insert %s: %w", d.schema.Name, err)
	}
	return nil
}

func (d *Driver[T]) Update(ctx context.Context, entity *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id := d.schema.ID(entity)
	res, err := d.col.UpdateOne(ctx, bson.M{idField: id}, bson.M{"$set": mutableFields(d.schema, entity)})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", domain.ErrConflict, err.Error())
		}
		return fmt.Errorf("update %s %d: %w", d.schema.Name, id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s %d: %w", d.schema.Name, id, domain.ErrNotFound)
	}
	return nil
}

func (d *Driver[T]) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := d.col.DeleteOne(ctx, bson.M{idField: id})
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", d.schema.Name, id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s %d: %w", d.schema.Name, id, domain.ErrNotFound)
	}
	return nil
}

// EnsureIndexes creates a case-insensitive unique index for every unique
// column of the schema.
func (d *Driver[T]) EnsureIndexes(ctx context.Context) error {
	if len(d.schema.Unique) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := make([]mongo.IndexModel, 0, len(d.schema.Unique))
	for _, col := range d.schema.Unique {
		indexes = append(indexes, mongo.IndexModel{
			Keys: bson.D{{Key: col, Value: 1}},
			Options: options.Index().
				SetName("uniq_" + col).
				SetUnique(true).
				SetCollation(caseInsensitive),
		})
	}
	if _, err := d.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("ensure indexes on %s: %w", d.schema.Name, err)
	}
	return nil
}

type counter struct {
	Seq int `bson:"seq"`
}

func (d *Driver[T]) nextID(ctx context.Context) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c counter
	err := d.counters.FindOneAndUpdate(ctx,
		bson.M{idField: d.schema.Name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, fmt.Errorf("sequence %s: no counter returned", d.schema.Name)
		}
		return 0, fmt.Errorf("sequence %s: %w", d.schema.Name, err)
	}
	return c.Seq, nil
}

// fieldName maps a schema column to its document field.
func fieldName(col, key string) string {
	if col == key {
		return idField
	}
	return col
}

func document[T any](s repository.Schema[T], e *T) bson.D {
	vals := s.Values(e)
	doc := make(bson.D, 0, len(s.Columns))
	for i, c := range s.Columns {
		doc = append(doc, bson.E{Key: fieldName(c.Name, s.Key), Value: vals[i]})
	}
	return doc
}

func mutableFields[T any](s repository.Schema[T], e *T) bson.D {
	vals := s.Values(e)
	set := bson.D{}
	for _, i := range s.Mutable() {
		set = append(set, bson.E{Key: s.Columns[i].Name, Value: vals[i]})
	}
	return set
}

// toBSON translates a filter into a query document. EqFold becomes an
// anchored case-insensitive regex over the literal value.
func toBSON(f query.Filter, key string) bson.D {
	doc := bson.D{}
	for _, c := range f {
		name := fieldName(c.Field, key)
		switch c.Op {
		case query.OpEqFold:
			s, _ := c.Value.(string)
			doc = append(doc, bson.E{Key: name, Value: primitive.Regex{
				Pattern: "^" + regexp.QuoteMeta(s) + "$",
				Options: "i",
			}})
		default:
			doc = append(doc, bson.E{Key: name, Value: c.Value})
		}
	}
	return doc
}
