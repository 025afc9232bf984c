package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	"github.com/google/uuid"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
)

// Tags propios.
const (
	tagNotBlank = "notblank"
	tagEntityID = "entityid"
	tagRole     = "role"
	tagTrimMin  = "trimmin"
)

var objectIDRe = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// Validator valida DTOs con go-playground/validator y traduce los mensajes al español.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New construye el validador con los tags propios y las traducciones al español.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_es := es.New()
	uni := ut.New(_es, _es)
	trans, _ := uni.GetTranslator("es")
	_ = es_translations.RegisterDefaultTranslations(v, trans)

	// Nombres de campo tal como viajan en JSON (o query string).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})

	v.RegisterCustomTypeFunc(nullableString, dto.Nullable[string]{})

	_ = v.RegisterValidation(tagNotBlank, notBlank)
	_ = v.RegisterValidation(tagEntityID, entityID)
	_ = v.RegisterValidation(tagRole, validRole)
	_ = v.RegisterValidation(tagTrimMin, trimMin)

	registerCustomTranslations(v, trans, map[string]string{
		tagNotBlank: "{0} no puede estar vacío",
		tagEntityID: "{0} debe ser un identificador válido",
		tagRole:     "{0} debe ser uno de: " + strings.Join(entity.Roles, ", "),
	})
	_ = v.RegisterTranslation(tagTrimMin, trans,
		func(ut ut.Translator) error {
			return ut.Add(tagTrimMin, "{0} debe tener al menos {1} caracteres sin contar espacios", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(tagTrimMin, fe.Field(), fe.Param())
			if err != nil {
				return fe.Error()
			}
			return t
		})

	return &Validator{validate: v, translator: trans}
}

func registerCustomTranslations(v *validator.Validate, trans ut.Translator, msgs map[string]string) {
	for tag, msg := range msgs {
		tag, msg := tag, msg
		_ = v.RegisterTranslation(tag, trans,
			func(ut ut.Translator) error { return ut.Add(tag, msg, true) },
			func(ut ut.Translator, fe validator.FieldError) string {
				t, err := ut.T(tag, fe.Field())
				if err != nil {
					return fe.Error()
				}
				return t
			})
	}
}

// Struct valida s y devuelve *ValidationError con todos los campos que fallaron.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.WithCause(domain.New(domain.ErrInvalidInput, "solicitud inválida"), err)
	}
	fields := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, dto.FieldError{
			Field:   fieldPath(fe),
			Message: fe.Translate(v.translator),
		})
	}
	return &ValidationError{Fields: fields}
}

// fieldPath quita el nombre del struct raíz: "UpdateUnitGradesRequest.grades[0].score" -> "grades[0].score".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// ValidationError error de validación de una solicitud; envuelve domain.ErrInvalidInput.
type ValidationError struct {
	Fields []dto.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// IsEntityID acepta UUID (PostgreSQL) o ObjectId hexadecimal de 24 caracteres (MongoDB).
func IsEntityID(s string) bool {
	if objectIDRe.MatchString(s) {
		return true
	}
	_, err := uuid.Parse(s)
	return err == nil && len(s) == 36
}

func nullableString(field reflect.Value) interface{} {
	if n, ok := field.Interface().(dto.Nullable[string]); ok && n.HasValue() {
		return n.Value
	}
	return nil
}

func notBlank(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return false
}

func entityID(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return IsEntityID(s)
	}
	return false
}

func validRole(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return entity.IsValidRole(s)
	}
	return false
}

// trimMin exige un mínimo de caracteres una vez recortados los espacios de los extremos.
func trimMin(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= n
}
