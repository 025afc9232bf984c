package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/auth"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/calificaciones"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/usecase"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/validation"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/permission"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	TeacherUC      *usecase.TeacherUseCase
	CalificacionUC *calificaciones.UseCase
	EnrollmentUC   *usecase.EnrollmentUseCase
	Validator      *validation.Validator
	JWTSecret      string
}

// Listas de roles por ruta para docentes y calificaciones.
var (
	teacherAdmins  = []string{entity.RoleSuperAdmin, entity.RoleAdmin}
	teacherEditors = []string{entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleDepartmentHead}

	gradeWriters = []string{entity.RoleSuperAdmin, entity.RoleTeacher}
	gradeReaders = []string{
		entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleDepartmentHead, entity.RoleTeacher,
		entity.RoleTutor, entity.RoleTrainingCoordinator, entity.RoleRegistrar, entity.RoleStudent,
	}
	riskReaders = []string{
		entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleDepartmentHead,
		entity.RoleTeacher, entity.RoleTutor, entity.RoleStudent,
	}
	reportReaders = []string{
		entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleDepartmentHead,
		entity.RoleTutor, entity.RoleRegistrar, entity.RoleStudent,
	}
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	v := deps.Validator
	if v == nil {
		v = validation.New()
	}
	authMW := AuthMiddleware(deps.JWTSecret)

	// Auth (login y códigos son públicos)
	authHandler := NewAuthHandler(deps.AuthUC, v)
	authGroup := app.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/verification-code", authHandler.SendVerificationCode)
	authGroup.Post("/verification-code/verify", authHandler.VerifyCode)
	authGroup.Get("/me", authMW, authHandler.Me)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC, v)
	users := app.Group("/users", authMW)
	users.Post("/", RequirePermission(permission.UsersCreate), userHandler.Create)
	users.Get("/", RequirePermission(permission.UsersRead), userHandler.List)
	users.Get("/:id", RequirePermission(permission.UsersRead), userHandler.GetByID)
	users.Patch("/:id", RequirePermission(permission.UsersUpdate), userHandler.Update)
	users.Delete("/:id", RequirePermission(permission.UsersDelete), userHandler.Delete)

	// Docentes
	teacherHandler := NewTeacherHandler(deps.TeacherUC, v)
	teachers := app.Group("/academic/teachers", authMW)
	teachers.Post("/", RequireRole(teacherAdmins...), teacherHandler.Create)
	teachers.Get("/", RequireRole(teacherEditors...), teacherHandler.List)
	teachers.Get("/:id", RequireRole(teacherEditors...), teacherHandler.GetByID)
	teachers.Patch("/:id", RequireRole(teacherEditors...), teacherHandler.Update)
	teachers.Delete("/:id", RequireRole(teacherAdmins...), teacherHandler.Delete)

	// Inscripciones
	enrollmentHandler := NewEnrollmentHandler(deps.EnrollmentUC, v)
	enrollments := app.Group("/academic/enrollments", authMW)
	enrollments.Post("/courses", RequirePermission(permission.EnrollmentsCreate), enrollmentHandler.CreateCourse)
	enrollments.Post("/activities", RequirePermission(permission.EnrollmentsCreate), enrollmentHandler.CreateActivity)
	enrollments.Post("/activities/bulk", RequirePermission(permission.EnrollmentsCreate), enrollmentHandler.BulkCreateActivity)
	enrollments.Get("/", RequirePermission(permission.EnrollmentsRead), enrollmentHandler.List)
	enrollments.Get("/:id", RequirePermission(permission.EnrollmentsRead), enrollmentHandler.GetByID)
	enrollments.Patch("/:id/status", RequirePermission(permission.EnrollmentsUpdate), enrollmentHandler.UpdateStatus)
	enrollments.Put("/:id/grades", RequirePermission(permission.EnrollmentsUpdate), enrollmentHandler.SetUnitGrades)
	enrollments.Delete("/:id", RequirePermission(permission.EnrollmentsDelete), enrollmentHandler.Delete)

	// Calificaciones. Un estudiante solo accede a su propio estudianteId.
	calHandler := NewCalificacionHandler(deps.CalificacionUC, v)
	cal := app.Group("/calificaciones", authMW)
	cal.Post("/", RequireRole(gradeWriters...), calHandler.Create)
	cal.Get("/:estudianteId", RequireRole(gradeReaders...), RequireSelfWhenStudent("estudianteId"), calHandler.ListByStudent)
	cal.Put("/:id", RequireRole(gradeWriters...), calHandler.Update)
	cal.Delete("/:id", RequireRole(entity.RoleSuperAdmin), calHandler.Delete)
	cal.Get("/:estudianteId/riesgo", RequireRole(riskReaders...), RequireSelfWhenStudent("estudianteId"), calHandler.Risk)
	cal.Get("/:estudianteId/boleta", RequireRole(reportReaders...), RequireSelfWhenStudent("estudianteId"), calHandler.ReportCard)
}
