package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/konverner/gnome-nano-image-edit/internal/editor"
)

// newCmd creates a blank image file of the requested size and fill color.
type newCmd struct {
	width     int
	height    int
	colorSpec string
	fill      color.RGBA
	output    string
	*root
	fs *flag.FlagSet
}

func (n *newCmd) FlagSet() *flag.FlagSet {
	return n.fs
}

func parseNewCmd(args []string, r *root) (*newCmd, error) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	n := &newCmd{root: r, fs: fs}
	fs.Usage = usageFunc(n)
	fs.IntVar(&n.width, "width", 640, "image width in pixels")
	fs.IntVar(&n.height, "height", 480, "image height in pixels")
	fs.StringVar(&n.colorSpec, "color", "white", "fill color name or hex value")
	fs.StringVar(&n.output, "output", "", "output file path")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if n.output == "" {
		return nil, fmt.Errorf("output file is required")
	}
	fill, err := parseColor(n.colorSpec)
	if err != nil {
		return nil, err
	}
	n.fill = fill
	return n, nil
}

func (n *newCmd) Run() error {
	eng := editor.New()
	if err := eng.CreateBlank(n.width, n.height, n.fill); err != nil {
		return err
	}
	if err := eng.Save(n.output); err != nil {
		return err
	}
	saved := n.output
	if abs, err := filepath.Abs(n.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "created %s\n", saved)
	if n.root != nil {
		n.root.notifySave(saved)
	}
	return nil
}
