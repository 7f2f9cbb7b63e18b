package editor

import "fmt"

// Tool identifies the active editing tool. The engine itself does not act on
// the tool; it only gates which operations the caller invokes.
type Tool int

const (
	ToolSelect Tool = iota
	ToolCrop
	ToolBrush
	ToolText
	ToolMove
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolCrop:
		return "crop"
	case ToolBrush:
		return "brush"
	case ToolText:
		return "text"
	case ToolMove:
		return "move"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// ParseTool returns the tool named by s.
func ParseTool(s string) (Tool, error) {
	switch s {
	case "select":
		return ToolSelect, nil
	case "crop":
		return ToolCrop, nil
	case "brush":
		return ToolBrush, nil
	case "text":
		return ToolText, nil
	case "move":
		return ToolMove, nil
	default:
		return ToolSelect, fmt.Errorf("unknown tool %q", s)
	}
}
