package graph

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mytheresa/cookbook/models"
)

// Resolver is the root resolver for queries and mutations.
type Resolver struct {
	repo models.Repository
	log  *zap.Logger
}

func NewResolver(repo models.Repository, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{repo: repo, log: log}
}

// toID maps a GraphQL Int onto a row id. Negative values become 0,
// which the store never assigns.
func toID(v int32) uint {
	if v < 0 {
		return 0
	}
	return uint(v)
}

// deletePayload is shared by deleteCategory and deleteIngredient.
type deletePayload struct {
	ok bool
}

func (p *deletePayload) Ok() bool { return p.ok }

type panicLogger struct {
	log *zap.Logger
}

func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.log.Error("graphql resolver panic", zap.String("panic", fmt.Sprint(value)))
}
