// Package permission contiene la tabla fija rol → capacidades.
//
// La tabla es plana: no hay herencia entre roles. Un rol con más alcance simplemente
// enumera más capacidades. Se construye al arrancar el proceso y no se modifica.
package permission

import (
	"sort"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
)

// Capacidades.
const (
	UsersCreate = "users:create"
	UsersRead   = "users:read"
	UsersUpdate = "users:update"
	UsersDelete = "users:delete"

	TeachersCreate = "teachers:create"
	TeachersRead   = "teachers:read"
	TeachersUpdate = "teachers:update"
	TeachersDelete = "teachers:delete"

	GradesCreate  = "grades:create"
	GradesRead    = "grades:read"
	GradesReadOwn = "grades:read_own"
	GradesUpdate  = "grades:update"
	GradesDelete  = "grades:delete"

	RiskRead    = "risk:read"
	RiskReadOwn = "risk:read_own"

	EnrollmentsCreate = "enrollments:create"
	EnrollmentsRead   = "enrollments:read"
	EnrollmentsUpdate = "enrollments:update"
	EnrollmentsDelete = "enrollments:delete"

	ReportsRead    = "reports:read"
	ReportsReadOwn = "reports:read_own"
)

// Set conjunto de capacidades.
type Set map[string]struct{}

var table = map[string]Set{
	entity.RoleSuperAdmin: newSet(
		UsersCreate, UsersRead, UsersUpdate, UsersDelete,
		TeachersCreate, TeachersRead, TeachersUpdate, TeachersDelete,
		GradesCreate, GradesRead, GradesUpdate, GradesDelete,
		RiskRead,
		EnrollmentsCreate, EnrollmentsRead, EnrollmentsUpdate, EnrollmentsDelete,
		ReportsRead,
	),
	entity.RoleAdmin: newSet(
		UsersCreate, UsersRead, UsersUpdate, UsersDelete,
		TeachersCreate, TeachersRead, TeachersUpdate, TeachersDelete,
		GradesRead,
		RiskRead,
		EnrollmentsCreate, EnrollmentsRead, EnrollmentsUpdate, EnrollmentsDelete,
		ReportsRead,
	),
	entity.RoleDepartmentHead: newSet(
		TeachersRead, TeachersUpdate,
		GradesRead,
		RiskRead,
		EnrollmentsRead,
		ReportsRead,
	),
	entity.RoleTeacher: newSet(
		GradesCreate, GradesRead, GradesUpdate,
		RiskRead,
		EnrollmentsRead, EnrollmentsUpdate,
	),
	entity.RoleTutor: newSet(
		GradesRead,
		RiskRead,
		EnrollmentsRead,
		ReportsRead,
	),
	entity.RoleTrainingCoordinator: newSet(
		GradesRead,
		EnrollmentsCreate, EnrollmentsRead, EnrollmentsUpdate, EnrollmentsDelete,
	),
	entity.RoleRegistrar: newSet(
		UsersCreate, UsersRead,
		GradesRead,
		EnrollmentsCreate, EnrollmentsRead, EnrollmentsUpdate, EnrollmentsDelete,
		ReportsRead,
	),
	entity.RoleStudent: newSet(
		GradesReadOwn,
		RiskReadOwn,
		ReportsReadOwn,
	),
}

// grants roles que cada rol puede otorgar o administrar. Nadie fuera de superadmin
// crea, modifica ni elimina cuentas superadmin o admin.
var grants = map[string]map[string]struct{}{
	entity.RoleSuperAdmin: roleSet(entity.Roles...),

	entity.RoleAdmin: roleSet(
		entity.RoleDepartmentHead, entity.RoleTeacher, entity.RoleTutor,
		entity.RoleTrainingCoordinator, entity.RoleRegistrar, entity.RoleStudent,
	),

	entity.RoleRegistrar: roleSet(entity.RoleStudent),
}

func roleSet(roles ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// CanAssignRole informa si actor puede otorgar target a una cuenta, o administrar una cuenta con ese rol.
func CanAssignRole(actor, target string) bool {
	_, ok := grants[actor][target]
	return ok
}

func newSet(perms ...string) Set {
	s := make(Set, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// ForRole devuelve una copia de las capacidades del rol; vacío si el rol no existe.
func ForRole(role string) Set {
	src := table[role]
	out := make(Set, len(src))
	for p := range src {
		out[p] = struct{}{}
	}
	return out
}

// Has informa si required está en perms.
func Has(perms Set, required string) bool {
	_, ok := perms[required]
	return ok
}

// RoleHas atajo de Has(ForRole(role), required) sin copiar la tabla.
func RoleHas(role, required string) bool {
	return Has(table[role], required)
}

// List devuelve las capacidades ordenadas alfabéticamente.
func (s Set) List() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
