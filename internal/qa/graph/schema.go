package graph

import (
	_ "embed"
	"fmt"

	"github.com/gogotex/qa-service/internal/qa/service"
	graphql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var SchemaText string

// Config tunes query execution limits.
type Config struct {
	MaxDepth       int
	MaxParallelism int
}

// NewSchema parses the qa schema and binds it to resolvers backed by svc.
func NewSchema(svc *service.Service, cfg Config) (*graphql.Schema, error) {
	opts := []graphql.SchemaOpt{graphql.Logger(panicLogger{})}
	if cfg.MaxDepth > 0 {
		opts = append(opts, graphql.MaxDepth(cfg.MaxDepth))
	}
	if cfg.MaxParallelism > 0 {
		opts = append(opts, graphql.MaxParallelism(cfg.MaxParallelism))
	}
	schema, err := graphql.ParseSchema(SchemaText, NewResolver(svc), opts...)
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}
	return schema, nil
}
