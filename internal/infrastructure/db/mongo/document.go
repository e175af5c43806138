package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carparts/carparts-api/internal/core/domain"
)

// documents wraps a collection of schemaless documents and converts between
// driver types and domain.Document / acknowledgments.
type documents struct {
	col *mongo.Collection
}

func newDocuments(db *mongo.Database, name string) documents {
	return documents{col: db.Collection(name)}
}

func (d documents) find(ctx context.Context, filter bson.M) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := d.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", d.col.Name(), err)
	}
	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", d.col.Name(), err)
	}

	out := make([]domain.Document, 0, len(raw))
	for _, m := range raw {
		out = append(out, toDocument(m))
	}
	return out, nil
}

func (d documents) findOne(ctx context.Context, filter bson.M) (domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m bson.M
	if err := d.col.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find one %s: %w", d.col.Name(), err)
	}
	return toDocument(m), nil
}

func (d documents) insertOne(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := d.col.InsertOne(ctx, bson.M(doc.Without(domain.FieldID)))
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", d.col.Name(), err)
	}
	return &domain.InsertResult{Acknowledged: true, InsertedID: idString(res.InsertedID)}, nil
}

func (d documents) updateOne(ctx context.Context, filter bson.M, set bson.M, upsert bool) (*domain.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := d.col.UpdateOne(ctx, filter, bson.M{"$set": set}, options.Update().SetUpsert(upsert))
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", d.col.Name(), err)
	}
	return toUpdateResult(res), nil
}

func (d documents) deleteOne(ctx context.Context, filter bson.M) (*domain.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := d.col.DeleteOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("delete %s: %w", d.col.Name(), err)
	}
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// objectID parses a path identifier. Anything that is not a 24-hex ObjectID
// is domain.ErrInvalidID.
func objectID(id string) (primitive.ObjectID, error) {
	if err := domain.CheckID(id); err != nil {
		return primitive.NilObjectID, err
	}
	return primitive.ObjectIDFromHex(id)
}

func idFilter(id string) (bson.M, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": oid}, nil
}

func toDocument(m bson.M) domain.Document {
	doc := domain.Document(m)
	if id, ok := m["_id"]; ok {
		doc[domain.FieldID] = idString(id)
	}
	return doc
}

func toUpdateResult(res *mongo.UpdateResult) *domain.UpdateResult {
	out := &domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		out.UpsertedID = idString(res.UpsertedID)
	}
	return out
}

func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}
