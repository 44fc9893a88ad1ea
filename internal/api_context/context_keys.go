package api_context

import (
	"context"

	"github.com/AlexXia007/comfyui-nodes/internal/graph"
)

type ctxKey string

const (
	NodeKey       ctxKey = "node"
	AuthUserIDKey ctxKey = "authUserID"
	AuthRolesKey  ctxKey = "authRoles"
)

func NodeFromContext(ctx context.Context) (graph.Node, bool) {
	n, ok := ctx.Value(NodeKey).(graph.Node)
	return n, ok
}

func AuthUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(string)
	return id, ok
}

func AuthRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(AuthRolesKey).([]string)
	return roles, ok
}
