package entity

import "time"

// Roles válidos para User. La tabla de permisos de cada rol vive en domain/permission.
const (
	RoleSuperAdmin          = "superadmin"
	RoleAdmin               = "admin"
	RoleDepartmentHead      = "department_head"
	RoleTeacher             = "teacher"
	RoleTutor               = "tutor"
	RoleTrainingCoordinator = "training_coordinator"
	RoleRegistrar           = "registrar"
	RoleStudent             = "student"
)

// Roles lista cerrada de roles, en el orden en que se documentan.
var Roles = []string{
	RoleSuperAdmin, RoleAdmin, RoleDepartmentHead, RoleTeacher,
	RoleTutor, RoleTrainingCoordinator, RoleRegistrar, RoleStudent,
}

// IsValidRole informa si role pertenece a la lista cerrada.
func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User representa una cuenta del sistema (personal o estudiante).
type User struct {
	ID           string
	FullName     string
	Email        string // siempre en minúsculas
	PasswordHash string // bcrypt
	Role         string
	Active       bool // una cuenta inactiva no puede autenticarse
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
