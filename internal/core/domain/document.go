package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Field names read or written by the API. Everything else in a document is
// stored and returned as submitted.
const (
	FieldID            = "_id"
	FieldQuantity      = "quantity"
	FieldClient        = "client"
	FieldPaid          = "paid"
	FieldTransactionID = "transactionId"
	FieldEmail         = "email"
	FieldRole          = "role"
)

// Document is a loosely-typed record as stored in one of the collections
// (parts, orders, users, payments). Identifiers are exposed as hex strings
// under FieldID.
type Document map[string]any

// ID returns the document identifier, or "" when it has none.
func (d Document) ID() string {
	id, _ := d[FieldID].(string)
	return id
}

// String returns the value of key when it is a string.
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Clone returns a shallow copy of d.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Without returns a copy of d with the given keys removed.
func (d Document) Without(keys ...string) Document {
	out := d.Clone()
	if out == nil {
		out = Document{}
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// CheckID reports domain.ErrInvalidID unless id is a 24-hex ObjectID.
func CheckID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrInvalidID
	}
	return nil
}
