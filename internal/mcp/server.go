// Package mcp exposes the desktop over the Model Context Protocol, so an
// agent on stdio can open, arrange, and close windows programmatically.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"deskwm/internal/desktop"
	"deskwm/internal/layout"
)

const (
	ServerName    = "deskwm"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for desktop window control.
type Server struct {
	mcpServer *mcpsdk.Server
	desktop   *desktop.Desktop
	store     *layout.Store
}

// NewServer creates an MCP server driving the given desktop session.
func NewServer(d *desktop.Desktop, store *layout.Store) *Server {
	s := &Server{desktop: d, store: store}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "create_window",
		Description: "Open a new window. Without x/y the window is cascade-placed below and right of the previous one. The new window is focused and on top. Returns the created window including its assigned id.",
	}, s.handleCreateWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List all windows with their geometry, z-order, and focus/minimize/maximize state, in creation order.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_window",
		Description: "Move a window to an absolute position. The position is clamped to the viewport the same way a drag would be.",
	}, s.handleMoveWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_window",
		Description: "Resize a window to an absolute size. The size is clamped to the window's min/max constraints.",
	}, s.handleResizeWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "snap_window",
		Description: "Snap a window into a named zone: left, right, top, bottom (halves) or top-left, top-right, bottom-left, bottom-right (quarters). Applies the same geometry a drag release into that zone would.",
	}, s.handleSnapWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_window",
		Description: "Focus a window, raising it to the top of the stack. A minimized window is restored first.",
	}, s.handleFocusWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "cycle_focus",
		Description: "Move focus to the next (or previous) window in stacking order, wrapping around.",
	}, s.handleCycleFocus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "minimize_window",
		Description: "Minimize a window, hiding it from the stack. Focus moves to the next-highest visible window.",
	}, s.handleMinimizeWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "maximize_window",
		Description: "Toggle a window between maximized (filling the usable viewport) and its remembered normal frame.",
	}, s.handleMaximizeWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_window",
		Description: "Close a window. If it was focused, focus transfers to the highest remaining window.",
	}, s.handleCloseWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "save_layout",
		Description: "Save the current window arrangement under a name for later restore.",
	}, s.handleSaveLayout)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "load_layout",
		Description: "Replace the current window arrangement with a previously saved layout.",
	}, s.handleLoadLayout)
}
