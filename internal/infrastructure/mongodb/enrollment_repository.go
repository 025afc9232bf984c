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

var _ repository.EnrollmentRepository = (*EnrollmentRepo)(nil)

type unitGradeDoc struct {
	Unit  int     `bson:"unit"`
	Score float64 `bson:"score"`
}

type enrollmentDoc struct {
	ID         primitive.ObjectID `bson:"_id"`
	Kind       string             `bson:"kind"`
	PeriodID   string             `bson:"period_id"`
	StudentID  string             `bson:"student_id"`
	TargetID   string             `bson:"target_id"`
	Status     string             `bson:"status"`
	UnitGrades []unitGradeDoc     `bson:"unit_grades"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func toUnitGradeDocs(g []entity.UnitGrade) []unitGradeDoc {
	out := make([]unitGradeDoc, 0, len(g))
	for _, x := range g {
		out = append(out, unitGradeDoc{Unit: x.Unit, Score: x.Score})
	}
	return out
}

func (d *enrollmentDoc) toEntity() *entity.Enrollment {
	e := &entity.Enrollment{
		ID:        d.ID.Hex(),
		Kind:      d.Kind,
		PeriodID:  d.PeriodID,
		StudentID: d.StudentID,
		TargetID:  d.TargetID,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	for _, g := range d.UnitGrades {
		e.UnitGrades = append(e.UnitGrades, entity.UnitGrade{Unit: g.Unit, Score: g.Score})
	}
	return e
}

// EnrollmentRepo adaptador MongoDB para inscripciones.
type EnrollmentRepo struct {
	col *mongo.Collection
}

// NewEnrollmentRepository construye el repositorio sobre la colección enrollments.
func NewEnrollmentRepository(db *mongo.Database) *EnrollmentRepo {
	return &EnrollmentRepo{col: db.Collection(colEnrollments)}
}

func (r *EnrollmentRepo) Create(ctx context.Context, e *entity.Enrollment) error {
	oid, err := assignID(&e.ID)
	if err != nil {
		return err
	}
	doc := enrollmentDoc{
		ID: oid, Kind: e.Kind, PeriodID: e.PeriodID, StudentID: e.StudentID, TargetID: e.TargetID,
		Status: e.Status, UnitGrades: toUnitGradeDocs(e.UnitGrades), CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return wrapErr("insert enrollment", err)
	}
	return nil
}

func (r *EnrollmentRepo) GetByID(ctx context.Context, id string) (*entity.Enrollment, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc enrollmentDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *EnrollmentRepo) List(ctx context.Context, f entity.EnrollmentFilter) ([]*entity.Enrollment, error) {
	filter := bson.M{}
	for field, val := range map[string]string{
		"kind":       f.Kind,
		"period_id":  f.PeriodID,
		"student_id": f.StudentID,
		"target_id":  f.TargetID,
		"status":     f.Status,
	} {
		if val != "" {
			filter[field] = val
		}
	}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	var docs []enrollmentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode enrollments: %w", err)
	}
	list := make([]*entity.Enrollment, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}

func (r *EnrollmentRepo) Update(ctx context.Context, e *entity.Enrollment) (bool, error) {
	oid, err := parseID(e.ID)
	if err != nil {
		return false, err
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"status":      e.Status,
		"unit_grades": toUnitGradeDocs(e.UnitGrades),
		"updated_at":  e.UpdatedAt,
	}})
	if err != nil {
		return false, wrapErr("update enrollment", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *EnrollmentRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete enrollment: %w", err)
	}
	return res.DeletedCount > 0, nil
}
