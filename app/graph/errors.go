package graph

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mytheresa/cookbook/models"
)

const (
	codeNotFound = "NOT_FOUND"
	codeConflict = "CONFLICT"
	codeInternal = "INTERNAL"
)

// resolverError keeps the store's message and adds a machine-readable code
// under the GraphQL error's extensions.
type resolverError struct {
	err  error
	code string
}

func (e *resolverError) Error() string { return e.err.Error() }

func (e *resolverError) Unwrap() error { return e.err }

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

func (r *Resolver) fail(op string, err error) error {
	switch {
	case models.IsNotFound(err):
		return &resolverError{err: err, code: codeNotFound}
	case errors.Is(err, models.ErrCategoryInUse):
		return &resolverError{err: err, code: codeConflict}
	default:
		r.log.Error("resolver failed", zap.String("op", op), zap.Error(err))
		return &resolverError{err: err, code: codeInternal}
	}
}
