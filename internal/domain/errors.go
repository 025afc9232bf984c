package domain

import "errors"

// Clases de error de dominio (sin dependencias externas). La capa HTTP traduce cada clase
// a un status; los errores específicos de abajo envuelven una de estas clases.
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrInvalidID    = errors.New("identificador inválido")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrUpstream     = errors.New("servicio externo no disponible")
)

// ErrDuplicate lo devuelven los adaptadores de persistencia ante una violación de índice único
// (23505 en PostgreSQL, 11000 en MongoDB). Los casos de uso lo traducen a un conflicto específico.
var ErrDuplicate = New(ErrConflict, "recurso duplicado")

// Errores específicos con mensaje para el usuario.
var (
	ErrUserNotFound            = New(ErrNotFound, "usuario no encontrado")
	ErrEmailAlreadyExists      = New(ErrConflict, "el email ya está registrado")
	ErrInvalidCredentials      = New(ErrUnauthorized, "credenciales inválidas")
	ErrInactiveUser            = New(ErrForbidden, "la cuenta está inactiva")
	ErrInvalidVerificationCode = New(ErrInvalidInput, "código de verificación inválido o expirado")
	ErrRoleNotAssignable       = New(ErrForbidden, "no tiene permiso para administrar usuarios con ese rol")
	ErrNameTooShort            = New(ErrInvalidInput, "el nombre debe tener al menos 3 caracteres")

	ErrTeacherNotFound      = New(ErrNotFound, "docente no encontrado")
	ErrEmployeeNumberExists = New(ErrConflict, "el número de empleado ya existe")

	ErrCalificacionNotFound   = New(ErrNotFound, "calificación no encontrada")
	ErrRiskServiceUnavailable = New(ErrUpstream, "no se pudo contactar el servicio de riesgo académico")

	ErrEnrollmentNotFound  = New(ErrNotFound, "inscripción no encontrada")
	ErrAlreadyEnrolled     = New(ErrConflict, "el estudiante ya está inscrito")
	ErrNotCourseEnrollment = New(ErrInvalidInput, "solo las inscripciones a cursos tienen calificaciones por unidad")
)

// Error es un error de dominio con clase, mensaje visible para el usuario y causa opcional.
type Error struct {
	Kind  error
	Msg   string
	Cause error
}

// New crea un error de la clase kind con el mensaje msg.
func New(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// WithCause adjunta la causa técnica a un error de dominio conservando su identidad para errors.Is.
func WithCause(base *Error, cause error) *Error {
	return &Error{Kind: base, Msg: base.Msg, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// Message devuelve el mensaje apto para el cliente, sin detalles técnicos de la causa.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Msg
	}
	return err.Error()
}
