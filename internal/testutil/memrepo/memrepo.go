// Package memrepo implementa los puertos de persistencia en memoria para los tests de casos de
// uso y handlers. Respeta los mismos contratos que los adaptadores reales: IDs UUID asignados al
// crear, (nil, nil) si no existe, domain.ErrInvalidID ante ids malformados y domain.ErrDuplicate
// ante violaciones de unicidad.
package memrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/repository"
)

var (
	_ repository.UserRepository         = (*Users)(nil)
	_ repository.TeacherRepository      = (*Teachers)(nil)
	_ repository.CalificacionRepository = (*Calificaciones)(nil)
	_ repository.EnrollmentRepository   = (*Enrollments)(nil)
)

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil || len(id) != 36 {
		return domain.ErrInvalidID
	}
	return nil
}

// ─── Users ────────────────────────────────────────────────────────────────────

// Users repositorio de usuarios en memoria.
type Users struct {
	mu   sync.Mutex
	rows map[string]entity.User
}

func NewUsers() *Users { return &Users{rows: map[string]entity.User{}} }

func (r *Users) emailTaken(email, exceptID string) bool {
	for id, u := range r.rows {
		if u.Email == email && id != exceptID {
			return true
		}
	}
	return false
}

func (r *Users) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(u.Email, "") {
		return domain.ErrDuplicate
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.rows[u.ID] = *u
	return nil
}

func (r *Users) GetByID(_ context.Context, id string) (*entity.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *Users) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *Users) List(_ context.Context, role string, limit, offset int) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.rows))
	for _, u := range r.rows {
		if role != "" && u.Role != role {
			continue
		}
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return page(out, limit, offset), nil
}

func (r *Users) Update(_ context.Context, u *entity.User) (bool, error) {
	if err := checkID(u.ID); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[u.ID]; !ok {
		return false, nil
	}
	if r.emailTaken(u.Email, u.ID) {
		return false, domain.ErrDuplicate
	}
	r.rows[u.ID] = *u
	return true, nil
}

func (r *Users) Upsert(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.rows {
		if existing.Email == u.Email {
			u.ID = id
			u.CreatedAt = existing.CreatedAt
			r.rows[id] = *u
			return nil
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.rows[u.ID] = *u
	return nil
}

func (r *Users) Delete(_ context.Context, id string) (bool, error) {
	if err := checkID(id); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

// ─── Teachers ─────────────────────────────────────────────────────────────────

// Teachers repositorio de docentes en memoria.
type Teachers struct {
	mu   sync.Mutex
	rows map[string]entity.Teacher
}

func NewTeachers() *Teachers { return &Teachers{rows: map[string]entity.Teacher{}} }

func (r *Teachers) numberTaken(num, exceptID string) bool {
	for id, t := range r.rows {
		if t.EmployeeNumber == num && id != exceptID {
			return true
		}
	}
	return false
}

func (r *Teachers) Create(_ context.Context, t *entity.Teacher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.numberTaken(t.EmployeeNumber, "") {
		return domain.ErrDuplicate
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	r.rows[t.ID] = cloneTeacher(*t)
	return nil
}

func (r *Teachers) GetByID(_ context.Context, id string) (*entity.Teacher, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	t = cloneTeacher(t)
	return &t, nil
}

func (r *Teachers) List(_ context.Context, f entity.TeacherFilter) ([]*entity.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Teacher, 0, len(r.rows))
	for _, t := range r.rows {
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		if f.DivisionID != nil && (t.DivisionID == nil || *t.DivisionID != *f.DivisionID) {
			continue
		}
		t = cloneTeacher(t)
		out = append(out, &t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Teachers) Update(_ context.Context, t *entity.Teacher) (bool, error) {
	if err := checkID(t.ID); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[t.ID]; !ok {
		return false, nil
	}
	if r.numberTaken(t.EmployeeNumber, t.ID) {
		return false, domain.ErrDuplicate
	}
	r.rows[t.ID] = cloneTeacher(*t)
	return true, nil
}

func (r *Teachers) Delete(_ context.Context, id string) (bool, error) {
	if err := checkID(id); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func cloneTeacher(t entity.Teacher) entity.Teacher {
	if t.DivisionID != nil {
		d := *t.DivisionID
		t.DivisionID = &d
	}
	return t
}

// ─── Calificaciones ───────────────────────────────────────────────────────────

// Calificaciones repositorio de calificaciones en memoria; conserva el orden de inserción.
type Calificaciones struct {
	mu   sync.Mutex
	rows []entity.Calificacion
}

func NewCalificaciones() *Calificaciones { return &Calificaciones{} }

func (r *Calificaciones) index(id string) int {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Calificaciones) Create(_ context.Context, c *entity.Calificacion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	r.rows = append(r.rows, *c)
	return nil
}

func (r *Calificaciones) GetByID(_ context.Context, id string) (*entity.Calificacion, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return nil, nil
	}
	c := r.rows[i]
	return &c, nil
}

func (r *Calificaciones) ListByStudent(_ context.Context, studentID string) ([]*entity.Calificacion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Calificacion{}
	for _, c := range r.rows {
		if c.StudentID == studentID {
			c := c
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *Calificaciones) Update(_ context.Context, c *entity.Calificacion) (bool, error) {
	if err := checkID(c.ID); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(c.ID)
	if i < 0 {
		return false, nil
	}
	r.rows[i] = *c
	return true, nil
}

func (r *Calificaciones) Delete(_ context.Context, id string) (bool, error) {
	if err := checkID(id); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return false, nil
	}
	r.rows = append(r.rows[:i], r.rows[i+1:]...)
	return true, nil
}

// ─── Enrollments ──────────────────────────────────────────────────────────────

// Enrollments repositorio de inscripciones en memoria.
type Enrollments struct {
	mu   sync.Mutex
	rows map[string]entity.Enrollment
}

func NewEnrollments() *Enrollments { return &Enrollments{rows: map[string]entity.Enrollment{}} }

func (r *Enrollments) tupleTaken(e *entity.Enrollment) bool {
	for id, x := range r.rows {
		if id != e.ID && x.Kind == e.Kind && x.PeriodID == e.PeriodID &&
			x.StudentID == e.StudentID && x.TargetID == e.TargetID {
			return true
		}
	}
	return false
}

func (r *Enrollments) Create(_ context.Context, e *entity.Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tupleTaken(e) {
		return domain.ErrDuplicate
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	r.rows[e.ID] = cloneEnrollment(*e)
	return nil
}

func (r *Enrollments) GetByID(_ context.Context, id string) (*entity.Enrollment, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	e = cloneEnrollment(e)
	return &e, nil
}

func (r *Enrollments) List(_ context.Context, f entity.EnrollmentFilter) ([]*entity.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Enrollment{}
	for _, e := range r.rows {
		if (f.Kind != "" && e.Kind != f.Kind) ||
			(f.PeriodID != "" && e.PeriodID != f.PeriodID) ||
			(f.StudentID != "" && e.StudentID != f.StudentID) ||
			(f.TargetID != "" && e.TargetID != f.TargetID) ||
			(f.Status != "" && e.Status != f.Status) {
			continue
		}
		e = cloneEnrollment(e)
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *Enrollments) Update(_ context.Context, e *entity.Enrollment) (bool, error) {
	if err := checkID(e.ID); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[e.ID]; !ok {
		return false, nil
	}
	if r.tupleTaken(e) {
		return false, domain.ErrDuplicate
	}
	r.rows[e.ID] = cloneEnrollment(*e)
	return true, nil
}

func (r *Enrollments) Delete(_ context.Context, id string) (bool, error) {
	if err := checkID(id); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func cloneEnrollment(e entity.Enrollment) entity.Enrollment {
	if e.UnitGrades != nil {
		e.UnitGrades = append([]entity.UnitGrade(nil), e.UnitGrades...)
	}
	return e
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return list[:0]
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
