package http

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
)

var validate = newValidator()

// newValidator usa el nombre JSON del campo en los mensajes.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// errBadRequest ya respondido; el handler solo debe retornar.
var errBadRequest = errors.New("solicitud inválida")

// bindJSON parsea y valida el body. Si falla, escribe la respuesta 400.
func bindJSON(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return errBadRequest
	}
	return check(c, out)
}

// bindQuery parsea y valida la query string.
func bindQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
		return errBadRequest
	}
	return check(c, out)
}

func check(c *fiber.Ctx, out any) error {
	if err := validate.Struct(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
		return errBadRequest
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, e.Namespace()+": "+fieldMessage(e))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "requerido"
	case "email":
		return "email inválido"
	case "url":
		return "URL inválida"
	case "min":
		return "mínimo " + e.Param()
	case "max":
		return "máximo " + e.Param()
	case "oneof":
		return "debe ser uno de: " + e.Param()
	default:
		return "valor inválido"
	}
}

// queryDate lee una fecha "YYYY-MM-DD" (en loc) o RFC3339; vacío devuelve nil.
func queryDate(c *fiber.Ctx, key string, loc *time.Location) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, raw, loc); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: key + ": formato YYYY-MM-DD o RFC3339"})
		return nil, errBadRequest
	}
	return &t, nil
}

// queryDateRange lee date_from y date_to.
func queryDateRange(c *fiber.Ctx, loc *time.Location) (from, to *time.Time, err error) {
	if from, err = queryDate(c, "date_from", loc); err != nil {
		return nil, nil, err
	}
	if to, err = queryDate(c, "date_to", loc); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

// queryList separa "a,b,c" descartando vacíos.
func queryList(c *fiber.Ctx, key string) []string {
	var out []string
	for _, s := range strings.Split(c.Query(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
