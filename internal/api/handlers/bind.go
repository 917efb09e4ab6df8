package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/projecthub-go/internal/application"
	"github.com/linskybing/projecthub-go/pkg/types"
)

// bind decodes the operation payload into dst and validates it. Failures come
// back as validation errors with a readable message.
func bind(c *gin.Context, dst any) error {
	if err := c.ShouldBindBodyWith(dst, binding.JSON); err != nil {
		return &application.OpError{Kind: application.ErrValidation, Message: describeBindError(err), Err: err}
	}
	return nil
}

func describeBindError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, describeField(fe))
		}
		return strings.Join(msgs, "; ")
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type.String())
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "request body is not valid JSON"
	}
	return "invalid request payload"
}

func describeField(fe validator.FieldError) string {
	name := fe.Namespace()
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "notblank":
		return name + " must not be blank"
	case "project_code":
		return name + " must be 4 to 32 letters, digits or dashes"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", name, fe.Param())
	case "datetime":
		return name + " must be a date formatted YYYY-MM-DD"
	case "base64":
		return name + " must be base64 encoded"
	case "min":
		return fmt.Sprintf("%s must have at least %s item(s) or be at least %s", name, fe.Param(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
}

// subjectUser resolves whose records a read operation is about. Callers may
// always read their own; reading someone else's needs a teacher.
func subjectUser(actor *types.Claims, requested *uint) (uint, error) {
	if requested == nil || *requested == 0 || *requested == actor.UserID {
		return actor.UserID, nil
	}
	if !actor.HasRole(types.RoleTeacher) {
		return 0, fmt.Errorf("%w: cannot read another user's records", errForbidden)
	}
	return *requested, nil
}

type userRef struct {
	UserID *uint `json:"user_id"`
}
