package mcp

import (
	"context"
	"fmt"
	"path/filepath"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"deskwm/internal/geometry"
	"deskwm/internal/layout"
	"deskwm/internal/registry"
)

func windowInfo(w registry.Window) WindowInfo {
	return WindowInfo{
		ID:        w.ID,
		Title:     w.Title,
		X:         w.Frame.X,
		Y:         w.Frame.Y,
		Width:     w.Frame.Width,
		Height:    w.Frame.Height,
		Z:         w.Z,
		Focused:   w.Focused,
		Minimized: w.Minimized,
		Maximized: w.Maximized,
	}
}

func (s *Server) windowInfos() []WindowInfo {
	windows := s.desktop.Registry().List()
	out := make([]WindowInfo, 0, len(windows))
	for _, w := range windows {
		out = append(out, windowInfo(w))
	}
	return out
}

func (s *Server) handleCreateWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args CreateWindowInput) (*mcpsdk.CallToolResult, CreateWindowOutput, error) {
	spec := registry.Spec{
		Title:     args.Title,
		Width:     args.Width,
		Height:    args.Height,
		AutoPlace: args.X == nil || args.Y == nil,
	}
	if args.X != nil {
		spec.X = *args.X
	}
	if args.Y != nil {
		spec.Y = *args.Y
	}

	w, err := s.desktop.CreateWindow(spec)
	if err != nil {
		return nil, CreateWindowOutput{}, err
	}
	return nil, CreateWindowOutput{Window: windowInfo(w)}, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	return nil, ListWindowsOutput{Windows: s.windowInfos()}, nil
}

func (s *Server) handleMoveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveWindowInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	reg := s.desktop.Registry()

	w, err := reg.Get(args.ID)
	if err != nil {
		return nil, WindowOutput{}, err
	}

	candidate := w.Frame
	candidate.X = args.X
	candidate.Y = args.Y
	clamped := geometry.ClampToViewport(candidate, reg.Viewport(), w.MinSize)

	updated, err := reg.Update(args.ID, registry.Patch{X: &clamped.X, Y: &clamped.Y})
	if err != nil {
		return nil, WindowOutput{}, err
	}
	return nil, WindowOutput{Window: windowInfo(updated)}, nil
}

func (s *Server) handleResizeWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args ResizeWindowInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	if args.Width <= 0 || args.Height <= 0 {
		return nil, WindowOutput{}, fmt.Errorf("invalid size %dx%d", args.Width, args.Height)
	}

	updated, err := s.desktop.Registry().Update(args.ID, registry.Patch{
		Width: &args.Width, Height: &args.Height,
	})
	if err != nil {
		return nil, WindowOutput{}, err
	}
	return nil, WindowOutput{Window: windowInfo(updated)}, nil
}

func (s *Server) handleSnapWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args SnapWindowInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	zone := geometry.ParseSnapZone(args.Zone)
	if zone == geometry.ZoneNone {
		return nil, WindowOutput{}, fmt.Errorf("unknown snap zone %q", args.Zone)
	}
	if err := s.desktop.SnapWindow(args.ID, zone); err != nil {
		return nil, WindowOutput{}, err
	}

	w, err := s.desktop.Registry().Get(args.ID)
	if err != nil {
		return nil, WindowOutput{}, err
	}
	return nil, WindowOutput{Window: windowInfo(w)}, nil
}

func (s *Server) handleFocusWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args FocusWindowInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	if err := s.desktop.FocusWindow(args.ID); err != nil {
		return nil, WindowOutput{}, err
	}
	w, err := s.desktop.Registry().Get(args.ID)
	if err != nil {
		return nil, WindowOutput{}, err
	}
	return nil, WindowOutput{Window: windowInfo(w)}, nil
}

func (s *Server) handleCycleFocus(_ context.Context, _ *mcpsdk.CallToolRequest, args CycleFocusInput) (*mcpsdk.CallToolResult, CycleFocusOutput, error) {
	if err := s.desktop.CycleFocus(!args.Backward); err != nil {
		return nil, CycleFocusOutput{}, err
	}
	out := CycleFocusOutput{}
	if w, ok := s.desktop.Registry().Focused(); ok {
		out.FocusedID = w.ID
	}
	return nil, out, nil
}

func (s *Server) handleMinimizeWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MinimizeWindowInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	if err := s.desktop.MinimizeWindow(args.ID); err != nil {
		return nil, WindowOutput{}, err
	}
	w, err := s.desktop.Registry().Get(args.ID)
	if err != nil {
		return nil, WindowOutput{}, err
	}
	return nil, WindowOutput{Window: windowInfo(w)}, nil
}

func (s *Server) handleMaximizeWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MaximizeWindowInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	if err := s.desktop.ToggleMaximize(args.ID); err != nil {
		return nil, WindowOutput{}, err
	}
	w, err := s.desktop.Registry().Get(args.ID)
	if err != nil {
		return nil, WindowOutput{}, err
	}
	return nil, WindowOutput{Window: windowInfo(w)}, nil
}

func (s *Server) handleCloseWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args CloseWindowInput) (*mcpsdk.CallToolResult, any, error) {
	if err := s.desktop.CloseWindow(args.ID); err != nil {
		return nil, nil, err
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: fmt.Sprintf("closed %s", args.ID)},
		},
	}, nil, nil
}

func (s *Server) handleSaveLayout(_ context.Context, _ *mcpsdk.CallToolRequest, args SaveLayoutInput) (*mcpsdk.CallToolResult, SaveLayoutOutput, error) {
	snap := layout.Capture(args.Name, s.desktop.Registry())
	if err := s.store.Save(snap); err != nil {
		return nil, SaveLayoutOutput{}, err
	}
	return nil, SaveLayoutOutput{
		Name:    args.Name,
		Windows: len(snap.Windows),
		Path:    filepath.Join(s.store.Dir(), args.Name+".json"),
	}, nil
}

func (s *Server) handleLoadLayout(_ context.Context, _ *mcpsdk.CallToolRequest, args LoadLayoutInput) (*mcpsdk.CallToolResult, LoadLayoutOutput, error) {
	snap, err := s.store.Load(args.Name)
	if err != nil {
		return nil, LoadLayoutOutput{}, err
	}
	snap.Apply(s.desktop.Registry())
	return nil, LoadLayoutOutput{Name: args.Name, Windows: s.windowInfos()}, nil
}
