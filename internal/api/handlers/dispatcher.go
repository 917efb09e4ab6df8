package handlers

import (
	"errors"
	"log"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/linskybing/projecthub-go/internal/application"
	"github.com/linskybing/projecthub-go/pkg/response"
	"github.com/linskybing/projecthub-go/pkg/types"
	"github.com/linskybing/projecthub-go/pkg/utils"
)

// OperationFunc handles one named operation. It binds its own payload from the
// request body and returns the success message and data for the envelope.
type OperationFunc func(c *gin.Context, actor *types.Claims) (message string, data any, err error)

type operation struct {
	fn    OperationFunc
	roles []string
}

// Dispatcher resolves the "operation" field of a request to a registered handler.
type Dispatcher struct {
	ops map[string]operation
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{ops: make(map[string]operation)}
}

// Register adds an operation. With no roles every authenticated caller may run it.
func (d *Dispatcher) Register(name string, fn OperationFunc, roles ...string) {
	if _, dup := d.ops[name]; dup {
		panic("handlers: operation registered twice: " + name)
	}
	d.ops[name] = operation{fn: fn, roles: roles}
}

// Operations returns the registered operation names in order.
func (d *Dispatcher) Operations() []string {
	names := make([]string, 0, len(d.ops))
	for name := range d.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type envelopeRequest struct {
	Operation string `json:"operation" binding:"required"`
}

// Handle godoc
// @Summary Run a named operation
// @Description The body carries "operation" plus the fields of that operation.
// @Tags operations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /operations [post]
func (d *Dispatcher) Handle(c *gin.Context) {
	var env envelopeRequest
	if err := c.ShouldBindBodyWith(&env, binding.JSON); err != nil {
		response.Fail(c, http.StatusBadRequest, "request must be a JSON object with an operation field")
		return
	}
	op, ok := d.ops[env.Operation]
	if !ok {
		response.Fail(c, http.StatusBadRequest, "unknown operation: "+env.Operation)
		return
	}
	c.Set("operation", env.Operation)

	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if len(op.roles) > 0 && !claims.HasRole(op.roles...) {
		response.Fail(c, http.StatusForbidden, "operation not allowed for role "+claims.Role)
		return
	}

	message, data, err := op.fn(c, claims)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, message, data)
}

var errForbidden = errors.New("forbidden")

func statusFor(err error) int {
	if errors.Is(err, errForbidden) {
		return http.StatusForbidden
	}
	switch application.Kind(err) {
	case application.ErrValidation:
		return http.StatusBadRequest
	case application.ErrNotFound:
		return http.StatusNotFound
	case application.ErrConflict:
		return http.StatusConflict
	case application.ErrForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// writeError renders err as an error envelope. Causes of storage failures are
// logged and never sent to the caller.
func writeError(c *gin.Context, err error) {
	code := statusFor(err)
	message := "internal server error"
	var op *application.OpError
	if errors.As(err, &op) {
		message = op.Message
	} else if code != http.StatusInternalServerError {
		message = err.Error()
	}
	if code == http.StatusInternalServerError {
		log.Printf("[Dispatch] %s op=%s: %v", c.GetString("request_id"), c.GetString("operation"), err)
	}
	response.Fail(c, code, message)
}
