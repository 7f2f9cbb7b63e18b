package config

import (
	"fmt"
	"image/color"
	"strings"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Brush holds freehand drawing defaults.
type Brush struct {
	Size  int
	Color color.RGBA
}

// Text holds text stamping defaults.
type Text struct {
	Size     float64
	FontPath string
}

// Config holds the application configuration.
type Config struct {
	SaveDir string
	Brush   Brush
	Text    Text
	Notify  Notify
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Brush: Brush{
			Size:  10,
			Color: color.RGBA{R: 255, A: 255},
		},
		Text: Text{
			Size: 20,
		},
		Notify: Notify{
			Save: false,
			Copy: false,
		},
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[brush]\n")
	fmt.Fprintf(&sb, "size = %d\n", c.Brush.Size)
	fmt.Fprintf(&sb, "color = %s\n", toHex(c.Brush.Color))
	sb.WriteString("\n")

	sb.WriteString("[text]\n")
	fmt.Fprintf(&sb, "size = %g\n", c.Text.Size)
	if c.Text.FontPath != "" {
		fmt.Fprintf(&sb, "font = %s\n", c.Text.FontPath)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	return sb.String()
}

func toHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
