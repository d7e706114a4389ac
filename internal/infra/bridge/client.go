// Package bridge reaches the backend process over an MCP stdio transport.
// Task operations are exposed by the backend as tools named tasks_<intent>;
// this package maps the domain.Transport port onto those tools.
package bridge

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Ensure Client implements domain.Transport.
var _ domain.Transport = (*Client)(nil)

// toolPrefix is prepended to every intent to form the backend tool name.
const toolPrefix = "tasks_"

// Client is the MCP stdio transport to the backend. The backend process is
// spawned lazily on first call and kept alive for the client's lifetime.
type Client struct {
	mcp       *client.Client
	logger    domain.Logger
	command   string
	version   string
	args      []string
	startOnce sync.Once
	startErr  error
}

// New creates a Client for the given backend command. The process is not
// started until the first remote call.
func New(command string, args []string, version string, logger domain.Logger) *Client {
	return &Client{
		command: command,
		args:    args,
		version: version,
		logger:  logger,
	}
}

// start spawns the backend and performs the MCP initialize handshake.
func (c *Client) start(ctx context.Context) error {
	c.startOnce.Do(func() {
		if c.command == "" {
			c.startErr = domain.ErrBackendNotStarted
			return
		}
		mc, err := client.NewStdioMCPClient(c.command, nil, c.args...)
		if err != nil {
			c.startErr = fmt.Errorf("spawn backend: %w", err)
			return
		}

		initReq := mcp.InitializeRequest{}
		initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
		initReq.Params.ClientInfo = mcp.Implementation{
			Name:    "taskdeck",
			Version: c.version,
		}
		if _, err := mc.Initialize(ctx, initReq); err != nil {
			_ = mc.Close()
			c.startErr = fmt.Errorf("initialize backend: %w", err)
			return
		}

		c.mcp = mc
		c.logger.Info("bridge", "backend started: "+c.command)
	})
	return c.startErr
}

// call invokes one backend tool and decodes its JSON envelope into out.
func (c *Client) call(ctx context.Context, intent string, args map[string]any, out any) error {
	if err := c.start(ctx); err != nil {
		return err
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = toolPrefix + intent
	req.Params.Arguments = args

	res, err := c.mcp.CallTool(ctx, req)
	if err != nil {
		c.logger.Error("bridge", intent+": "+err.Error())
		return fmt.Errorf("%s: %w", intent, err)
	}

	text, ok := firstText(res)
	if !ok {
		return fmt.Errorf("%s: empty response", intent)
	}
	if res.IsError {
		// Tool-level errors arrive as plain text rather than an envelope.
		return domain.NewRemoteError(intent, text)
	}
	return decodeEnvelope(intent, []byte(text), out)
}

// firstText extracts the first text content block from a tool result.
func firstText(res *mcp.CallToolResult) (string, bool) {
	for _, content := range res.Content {
		if tc, ok := content.(mcp.TextContent); ok {
			return tc.Text, true
		}
	}
	return "", false
}

// ListTasks retrieves tasks matching the filter.
func (c *Client) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, int, error) {
	args := map[string]any{}
	if filter.Namespace != "" {
		args["namespace"] = filter.Namespace
	}
	if filter.Status != "" {
		args["status"] = string(filter.Status)
	}
	if filter.Domain != "" {
		args["domain"] = filter.Domain
	}

	var out struct {
		Tasks []*domain.Task `json:"tasks"`
		Total int            `json:"total"`
	}
	if err := c.call(ctx, "list", args, &out); err != nil {
		return nil, 0, err
	}
	return out.Tasks, out.Total, nil
}

// ShowTask retrieves a single task.
func (c *Client) ShowTask(ctx context.Context, taskID, dom string) (*domain.Task, error) {
	args := map[string]any{"task": taskID}
	if dom != "" {
		args["domain"] = dom
	}

	var out struct {
		Task *domain.Task `json:"task"`
	}
	if err := c.call(ctx, "show", args, &out); err != nil {
		return nil, err
	}
	if out.Task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return out.Task, nil
}

// CreateTask creates a task and returns the server-assigned record.
func (c *Client) CreateTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	args := map[string]any{"title": draft.Title}
	if draft.Description != "" {
		args["description"] = draft.Description
	}
	if draft.Context != "" {
		args["context"] = draft.Context
	}
	if draft.Priority != "" {
		args["priority"] = draft.Priority
	}
	if draft.Namespace != "" {
		args["namespace"] = draft.Namespace
	}
	if len(draft.Tags) > 0 {
		args["tags"] = draft.Tags
	}

	var out struct {
		Task *domain.Task `json:"task"`
	}
	if err := c.call(ctx, "create", args, &out); err != nil {
		return nil, err
	}
	return out.Task, nil
}

// EditTask applies a partial field update.
func (c *Client) EditTask(ctx context.Context, taskID string, patch domain.TaskPatch) error {
	args := map[string]any{"task": taskID}
	if patch.Title != nil {
		args["title"] = *patch.Title
	}
	if patch.Description != nil {
		args["description"] = *patch.Description
	}
	if patch.Context != nil {
		args["context"] = *patch.Context
	}
	if patch.Priority != nil {
		args["priority"] = *patch.Priority
	}
	if patch.Tags != nil {
		args["tags"] = *patch.Tags
	}
	return c.call(ctx, "edit", args, nil)
}

// UpdateStatus transitions a task to the given status.
func (c *Client) UpdateStatus(ctx context.Context, taskID string, status domain.Status) error {
	return c.call(ctx, "update_status", map[string]any{
		"task":   taskID,
		"status": string(status),
	}, nil)
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.call(ctx, "delete", map[string]any{"task": taskID}, nil)
}

// ToggleStep sets the completion flag of one step-tree node.
func (c *Client) ToggleStep(ctx context.Context, taskID string, path domain.StepPath, completed bool) error {
	return c.call(ctx, "set_step_status", map[string]any{
		"task":      taskID,
		"path":      path.String(),
		"completed": completed,
	}, nil)
}

// GetStorage returns namespaces and the backend's storage state.
func (c *Client) GetStorage(ctx context.Context) (*domain.StorageInfo, error) {
	var out domain.StorageInfo
	if err := c.call(ctx, "storage_get", map[string]any{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetStorageMode switches the backend storage mode.
func (c *Client) SetStorageMode(ctx context.Context, mode string) (bool, error) {
	if !domain.ValidStorageMode(mode) {
		return false, domain.ErrInvalidStorage
	}
	var out struct {
		Restarted bool `json:"restarted"`
	}
	if err := c.call(ctx, "storage_set_mode", map[string]any{"mode": mode}, &out); err != nil {
		return false, err
	}
	return out.Restarted, nil
}

// History returns the most recent operation history entries.
func (c *Client) History(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	args := map[string]any{}
	if limit > 0 {
		args["limit"] = limit
	}
	var out struct {
		History []domain.HistoryEntry `json:"history"`
	}
	if err := c.call(ctx, "get_history", args, &out); err != nil {
		return nil, err
	}
	return out.History, nil
}

// Undo reverts the most recent operation.
func (c *Client) Undo(ctx context.Context) error {
	return c.call(ctx, "undo", map[string]any{}, nil)
}

// Redo re-applies the most recently undone operation.
func (c *Client) Redo(ctx context.Context) error {
	return c.call(ctx, "redo", map[string]any{}, nil)
}

// Close shuts down the backend connection.
func (c *Client) Close() error {
	if c.mcp == nil {
		return nil
	}
	return c.mcp.Close()
}
