package mcp

// WindowInfo is the wire form of one window record.
type WindowInfo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Z         int    `json:"z"`
	Focused   bool   `json:"focused"`
	Minimized bool   `json:"minimized"`
	Maximized bool   `json:"maximized"`
}

// CreateWindowInput is the input for the create_window tool.
type CreateWindowInput struct {
	Title  string `json:"title" jsonschema:"required,Window title"`
	X      *int   `json:"x,omitempty" jsonschema:"Left edge in pixels. Omit both x and y for cascade placement."`
	Y      *int   `json:"y,omitempty" jsonschema:"Top edge in pixels. Omit both x and y for cascade placement."`
	Width  int    `json:"width,omitempty" jsonschema:"Width in pixels (default from config)"`
	Height int    `json:"height,omitempty" jsonschema:"Height in pixels (default from config)"`
}

// CreateWindowOutput is the output for the create_window tool.
type CreateWindowOutput struct {
	Window WindowInfo `json:"window"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// MoveWindowInput is the input for the move_window tool.
type MoveWindowInput struct {
	ID string `json:"id" jsonschema:"required,Window id"`
	X  int    `json:"x" jsonschema:"required,Target left edge in pixels"`
	Y  int    `json:"y" jsonschema:"required,Target top edge in pixels"`
}

// ResizeWindowInput is the input for the resize_window tool.
type ResizeWindowInput struct {
	ID     string `json:"id" jsonschema:"required,Window id"`
	Width  int    `json:"width" jsonschema:"required,Target width in pixels"`
	Height int    `json:"height" jsonschema:"required,Target height in pixels"`
}

// SnapWindowInput is the input for the snap_window tool.
type SnapWindowInput struct {
	ID   string `json:"id" jsonschema:"required,Window id"`
	Zone string `json:"zone" jsonschema:"required,Snap zone: left/right/top/bottom or top-left/top-right/bottom-left/bottom-right"`
}

// FocusWindowInput is the input for the focus_window tool.
type FocusWindowInput struct {
	ID string `json:"id" jsonschema:"required,Window id"`
}

// CycleFocusInput is the input for the cycle_focus tool.
type CycleFocusInput struct {
	Backward bool `json:"backward,omitempty" jsonschema:"Cycle toward the bottom of the stack instead of the top"`
}

// CycleFocusOutput is the output for the cycle_focus tool.
type CycleFocusOutput struct {
	FocusedID string `json:"focused_id,omitempty"`
}

// MinimizeWindowInput is the input for the minimize_window tool.
type MinimizeWindowInput struct {
	ID string `json:"id" jsonschema:"required,Window id"`
}

// MaximizeWindowInput is the input for the maximize_window tool.
type MaximizeWindowInput struct {
	ID string `json:"id" jsonschema:"required,Window id"`
}

// CloseWindowInput is the input for the close_window tool.
type CloseWindowInput struct {
	ID string `json:"id" jsonschema:"required,Window id"`
}

// WindowOutput is the common output carrying the updated window record.
type WindowOutput struct {
	Window WindowInfo `json:"window"`
}

// SaveLayoutInput is the input for the save_layout tool.
type SaveLayoutInput struct {
	Name string `json:"name" jsonschema:"required,Layout name"`
}

// SaveLayoutOutput is the output for the save_layout tool.
type SaveLayoutOutput struct {
	Name    string `json:"name"`
	Windows int    `json:"windows"`
	Path    string `json:"path"`
}

// LoadLayoutInput is the input for the load_layout tool.
type LoadLayoutInput struct {
	Name string `json:"name" jsonschema:"required,Layout name"`
}

// LoadLayoutOutput is the output for the load_layout tool.
type LoadLayoutOutput struct {
	Name    string       `json:"name"`
	Windows []WindowInfo `json:"windows"`
}
