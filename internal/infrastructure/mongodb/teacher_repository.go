package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/repository"
)

var _ repository.TeacherRepository = (*TeacherRepo)(nil)

type teacherDoc struct {
	ID             primitive.ObjectID `bson:"_id"`
	Name           string             `bson:"name"`
	EmployeeNumber string             `bson:"employee_number"`
	DivisionID     *string            `bson:"division_id"`
	Status         string             `bson:"status"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (d *teacherDoc) toEntity() *entity.Teacher {
	return &entity.Teacher{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		EmployeeNumber: d.EmployeeNumber,
		DivisionID:     d.DivisionID,
		Status:         d.Status,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// TeacherRepo adaptador MongoDB para docentes.
type TeacherRepo struct {
	col *mongo.Collection
}

// NewTeacherRepository construye el repositorio sobre la colección teachers.
func NewTeacherRepository(db *mongo.Database) *TeacherRepo {
	return &TeacherRepo{col: db.Collection(colTeachers)}
}

func (r *TeacherRepo) Create(ctx context.Context, t *entity.Teacher) error {
	oid, err := assignID(&t.ID)
	if err != nil {
		return err
	}
	doc := teacherDoc{
		ID: oid, Name: t.Name, EmployeeNumber: t.EmployeeNumber, DivisionID: t.DivisionID,
		Status: t.Status, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return wrapErr("insert teacher", err)
	}
	return nil
}

func (r *TeacherRepo) GetByID(ctx context.Context, id string) (*entity.Teacher, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc teacherDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find teacher: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *TeacherRepo) List(ctx context.Context, f entity.TeacherFilter) ([]*entity.Teacher, error) {
	filter := bson.M{}
	if f.Status != nil {
		filter["status"] = *f.Status
	}
	if f.DivisionID != nil {
		filter["division_id"] = *f.DivisionID
	}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	var docs []teacherDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode teachers: %w", err)
	}
	list := make([]*entity.Teacher, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}

func (r *TeacherRepo) Update(ctx context.Context, t *entity.Teacher) (bool, error) {
	oid, err := parseID(t.ID)
	if err != nil {
		return false, err
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"name":            t.Name,
		"employee_number": t.EmployeeNumber,
		"division_id":     t.DivisionID,
		"status":          t.Status,
		"updated_at":      t.UpdatedAt,
	}})
	if err != nil {
		return false, wrapErr("update teacher", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *TeacherRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete teacher: %w", err)
	}
	return res.DeletedCount > 0, nil
}
