package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
)

// wrapErr traduce E11000 a domain.ErrDuplicate; el resto se envuelve con op.
func wrapErr(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return domain.WithCause(domain.ErrDuplicate, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// parseID valida un ObjectId hexadecimal; si no, domain.ErrInvalidID.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

// assignID asigna un ObjectId nuevo si id está vacío, o valida el existente.
func assignID(id *string) (primitive.ObjectID, error) {
	if *id == "" {
		oid := primitive.NewObjectID()
		*id = oid.Hex()
		return oid, nil
	}
	return parseID(*id)
}
