package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/repository"
)

var _ repository.CalificacionRepository = (*CalificacionRepo)(nil)

// score se guarda como Decimal128 para no perder precisión.
type calificacionDoc struct {
	ID         primitive.ObjectID   `bson:"_id"`
	StudentID  string               `bson:"student_id"`
	Subject    string               `bson:"subject"`
	Score      primitive.Decimal128 `bson:"score"`
	Evaluation string               `bson:"evaluation"`
	Date       time.Time            `bson:"date"`
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	return primitive.ParseDecimal128(d.String())
}

func (doc *calificacionDoc) toEntity() (*entity.Calificacion, error) {
	score, err := decimal.NewFromString(doc.Score.String())
	if err != nil {
		return nil, fmt.Errorf("score %q: %w", doc.Score.String(), err)
	}
	return &entity.Calificacion{
		ID:         doc.ID.Hex(),
		StudentID:  doc.StudentID,
		Subject:    doc.Subject,
		Score:      score,
		Evaluation: doc.Evaluation,
		Date:       doc.Date,
	}, nil
}

// CalificacionRepo adaptador MongoDB para calificaciones.
type CalificacionRepo struct {
	col *mongo.Collection
}

// NewCalificacionRepository construye el repositorio sobre la colección calificaciones.
func NewCalificacionRepository(db *mongo.Database) *CalificacionRepo {
	return &CalificacionRepo{col: db.Collection(colCalificaciones)}
}

func (r *CalificacionRepo) Create(ctx context.Context, c *entity.Calificacion) error {
	oid, err := assignID(&c.ID)
	if err != nil {
		return err
	}
	score, err := toDecimal128(c.Score)
	if err != nil {
		return fmt.Errorf("score: %w", err)
	}
	doc := calificacionDoc{
		ID: oid, StudentID: c.StudentID, Subject: c.Subject, Score: score,
		Evaluation: c.Evaluation, Date: c.Date,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return wrapErr("insert calificacion", err)
	}
	return nil
}

func (r *CalificacionRepo) GetByID(ctx context.Context, id string) (*entity.Calificacion, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc calificacionDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find calificacion: %w", err)
	}
	return doc.toEntity()
}

// ListByStudent ordena por _id, que crece con el momento de inserción.
func (r *CalificacionRepo) ListByStudent(ctx context.Context, studentID string) ([]*entity.Calificacion, error) {
	cur, err := r.col.Find(ctx, bson.M{"student_id": studentID}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list calificaciones: %w", err)
	}
	var docs []calificacionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode calificaciones: %w", err)
	}
	list := make([]*entity.Calificacion, 0, len(docs))
	for i := range docs {
		c, err := docs[i].toEntity()
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}

func (r *CalificacionRepo) Update(ctx context.Context, c *entity.Calificacion) (bool, error) {
	oid, err := parseID(c.ID)
	if err != nil {
		return false, err
	}
	score, err := toDecimal128(c.Score)
	if err != nil {
		return false, fmt.Errorf("score: %w", err)
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"subject":    c.Subject,
		"score":      score,
		"evaluation": c.Evaluation,
		"date":       c.Date,
	}})
	if err != nil {
		return false, wrapErr("update calificacion", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *CalificacionRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete calificacion: %w", err)
	}
	return res.DeletedCount > 0, nil
}
