package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Request is the standard GraphQL-over-HTTP request body.
type Request struct {
	Query         string                 `json:"query" form:"query"`
	OperationName string                 `json:"operationName" form:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// RegisterRoutes mounts the GraphQL endpoint at /graphql. GET only runs queries.
func RegisterRoutes(r gin.IRoutes, schema *graphql.Schema) {
	h := NewHandler(schema)
	r.POST("/graphql", h.Serve)
	r.GET("/graphql", h.Serve)
}

// Handler executes GraphQL requests against a parsed schema.
type Handler struct {
	schema *graphql.Schema
}

func NewHandler(schema *graphql.Schema) *Handler {
	return &Handler{schema: schema}
}

func (h *Handler) Serve(c *gin.Context) {
	req, err := bindRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, errorBody("query is required"))
		return
	}
	if c.Request.Method == http.MethodGet {
		op, err := operationType(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		if op != ast.Query {
			c.Header("Allow", http.MethodPost)
			c.JSON(http.StatusMethodNotAllowed, errorBody(string(op)+" operations require POST"))
			return
		}
	}
	// store calls are not interrupted when the client goes away
	ctx := context.WithoutCancel(c.Request.Context())
	resp := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
	c.JSON(http.StatusOK, resp)
}

func bindRequest(c *gin.Context) (*Request, error) {
	var req Request
	if c.Request.Method == http.MethodGet {
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
		if v := c.Query("variables"); v != "" {
			if err := json.Unmarshal([]byte(v), &req.Variables); err != nil {
				return nil, err
			}
		}
		return &req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// operationType reports the type of the operation req selects.
func operationType(req *Request) (ast.Operation, error) {
	doc, err := parser.ParseQuery(&ast.Source{Input: req.Query})
	if err != nil {
		return "", err
	}
	op := doc.Operations.ForName(req.OperationName)
	if op == nil {
		return "", fmt.Errorf("unknown operation %q", req.OperationName)
	}
	return op.Operation, nil
}

func errorBody(msg string) gin.H {
	return gin.H{"errors": []gin.H{{"message": msg}}}
}
