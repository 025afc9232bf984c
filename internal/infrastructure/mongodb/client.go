package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/L20660042/Backend-Proy-sub001/pkg/config"
)

// Nombres de colecciones.
const (
	colUsers          = "users"
	colTeachers       = "teachers"
	colCalificaciones = "calificaciones"
	colEnrollments    = "enrollments"
)

// Connect abre el cliente, verifica con Ping y devuelve la base configurada.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(10 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes crea los índices únicos de los que dependen las reglas de duplicado.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		colUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		colTeachers: {
			{Keys: bson.D{{Key: "employee_number", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		colCalificaciones: {
			{Keys: bson.D{{Key: "student_id", Value: 1}}},
		},
		colEnrollments: {
			{
				Keys: bson.D{
					{Key: "kind", Value: 1},
					{Key: "period_id", Value: 1},
					{Key: "student_id", Value: 1},
					{Key: "target_id", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
		},
	}
	for col, models := range specs {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo índices %s: %w", col, err)
		}
	}
	return nil
}
