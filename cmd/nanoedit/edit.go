package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/konverner/gnome-nano-image-edit/internal/clipboard"
	"github.com/konverner/gnome-nano-image-edit/internal/editor"
)

// editCmd applies a single edit operation to an image file or clipboard
// content and writes the result back out.
type editCmd struct {
	file          string
	output        string
	fromClipboard bool
	toClipboard   bool
	colorSpec     string
	color         color.RGBA
	fillSpec      string
	fill          color.RGBA
	width         int
	textSize      float64
	fontPath      string
	anchorSpec    string
	anchor        editor.Anchor
	panX          float64
	panY          float64
	op            string
	coords        []int
	text          string
	*root
	fs *flag.FlagSet
}

func (e *editCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseColor(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	if spec == "transparent" || spec == "none" {
		return color.RGBA{}, nil
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if strings.HasPrefix(spec, "#") && (len(spec) == 7 || len(spec) == 9) {
		r, err := strconv.ParseUint(spec[1:3], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		g, err := strconv.ParseUint(spec[3:5], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		b, err := strconv.ParseUint(spec[5:7], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		a := uint64(255)
		if len(spec) == 9 {
			val, err := strconv.ParseUint(spec[7:9], 16, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("invalid color %q", s)
			}
			a = val
		}
		return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q", s)
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	e := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(e)

	defaultWidth := 10
	defaultColor := "red"
	defaultTextSize := 20.0
	defaultFont := ""
	if r != nil && r.config != nil {
		defaultWidth = r.config.Brush.Size
		defaultColor = colorSpecFor(r.config.Brush.Color)
		defaultTextSize = r.config.Text.Size
		defaultFont = r.config.Text.FontPath
	}

	fs.StringVar(&e.file, "file", "", "input image file")
	fs.StringVar(&e.output, "output", "", "output file path (defaults to input file)")
	fs.BoolVar(&e.fromClipboard, "from-clipboard", false, "read the input image from the clipboard")
	fs.BoolVar(&e.fromClipboard, "from-clip", false, "read the input image from the clipboard (alias)")
	fs.BoolVar(&e.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&e.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")
	fs.StringVar(&e.colorSpec, "color", defaultColor, "brush or text color name or hex value")
	fs.StringVar(&e.fillSpec, "fill", "transparent", "fill color for areas exposed by resize")
	fs.IntVar(&e.width, "width", defaultWidth, "brush width in pixels")
	fs.Float64Var(&e.textSize, "text-size", defaultTextSize, "text size in points")
	fs.StringVar(&e.fontPath, "font", defaultFont, "path to a TTF or OTF font file")
	fs.StringVar(&e.anchorSpec, "anchor", "top-left", "resize anchor (top-left, top, center, bottom-right, ...)")
	fs.Float64Var(&e.panX, "pan-x", 0, "horizontal crop pan offset in pixels")
	fs.Float64Var(&e.panY, "pan-y", 0, "vertical crop pan offset in pixels")

	flagArgs, positionals, err := splitEditArgs(args)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if len(positionals) < 1 {
		return nil, &UsageError{of: e}
	}
	e.op = strings.ToLower(positionals[0])
	remaining := positionals[1:]
	switch e.op {
	case "brush":
		if len(remaining) < 4 || len(remaining)%2 != 0 {
			return nil, fmt.Errorf("brush requires an even number of at least 4 coordinates")
		}
		e.coords, err = expectInts(remaining, len(remaining), e.op)
	case "dab":
		e.coords, err = expectInts(remaining, 2, e.op)
	case "text":
		if len(remaining) < 3 {
			return nil, fmt.Errorf("text requires x y and content")
		}
		var coords []int
		coords, err = expectInts(remaining[:2], 2, e.op)
		if err != nil {
			return nil, err
		}
		e.coords = coords
		e.text = strings.Join(remaining[2:], " ")
		if strings.TrimSpace(e.text) == "" {
			return nil, fmt.Errorf("text content cannot be empty")
		}
	case "crop", "cut", "copy":
		e.coords, err = expectInts(remaining, 4, e.op)
	case "move":
		e.coords, err = expectInts(remaining, 6, e.op)
	case "resize":
		e.coords, err = expectInts(remaining, 2, e.op)
	case "convert":
		if len(remaining) != 0 {
			return nil, fmt.Errorf("convert takes no positional arguments")
		}
	default:
		return nil, fmt.Errorf("unsupported operation %q", e.op)
	}
	if err != nil {
		return nil, err
	}

	colorVal, err := parseColor(e.colorSpec)
	if err != nil {
		return nil, err
	}
	e.color = colorVal
	fillVal, err := parseColor(e.fillSpec)
	if err != nil {
		return nil, err
	}
	e.fill = fillVal
	anchor, err := editor.ParseAnchor(e.anchorSpec)
	if err != nil {
		return nil, err
	}
	e.anchor = anchor

	if e.op == "copy" {
		// copy only reads, so neither an output path nor a write is needed
		if !e.fromClipboard && e.file == "" {
			return nil, fmt.Errorf("input file is required")
		}
		return e, nil
	}
	if e.fromClipboard {
		if e.output == "" {
			if e.file != "" {
				e.output = e.file
			} else {
				return nil, fmt.Errorf("output file is required when reading from the clipboard")
			}
		}
	} else {
		if e.file == "" {
			return nil, fmt.Errorf("input file is required")
		}
		if e.output == "" {
			e.output = e.file
		}
	}
	if e.width < 1 {
		e.width = 1
	}
	if e.textSize <= 0 {
		e.textSize = 20
	}
	return e, nil
}

func colorSpecFor(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (e *editCmd) Run() error {
	eng := editor.New()
	if e.fromClipboard {
		img, err := clipboard.ReadImage()
		if err != nil {
			return fmt.Errorf("read clipboard image: %w", err)
		}
		if err := eng.SetImage(img); err != nil {
			return err
		}
	} else {
		if _, err := eng.Load(e.file); err != nil {
			return err
		}
	}

	if err := e.apply(eng); err != nil {
		return err
	}
	if e.op == "copy" {
		return nil
	}

	if err := eng.Save(e.output); err != nil {
		return err
	}
	saved := e.output
	if abs, err := filepath.Abs(e.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", saved)
	if e.root != nil {
		e.root.notifySave(saved)
	}
	if e.toClipboard {
		if err := clipboard.WriteImage(eng.Image()); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		detail := filepath.Base(e.output)
		if detail == "" {
			detail = "image"
		}
		fmt.Fprintf(os.Stderr, "copied %s to clipboard\n", detail)
		if e.root != nil {
			e.root.notifyCopy(detail, eng.Image())
		}
	}
	return nil
}

func (e *editCmd) apply(eng *editor.Engine) error {
	switch e.op {
	case "brush":
		pts := make([]image.Point, 0, len(e.coords)/2)
		for i := 0; i+1 < len(e.coords); i += 2 {
			pts = append(pts, image.Pt(e.coords[i], e.coords[i+1]))
		}
		eng.BeginStroke()
		eng.DrawStroke(pts, e.width, e.color)
	case "dab":
		eng.DrawDab(image.Pt(e.coords[0], e.coords[1]), e.width, e.color)
	case "text":
		return eng.AddText(e.text, e.coords[0], e.coords[1], e.fontPath, e.textSize, e.color)
	case "crop":
		rect := rectFromCoords(e.coords)
		if rect.Empty() {
			return fmt.Errorf("crop region must not be empty")
		}
		eng.StartCrop()
		eng.SetSelection(rect)
		eng.SetCropPan(e.panX, e.panY)
		eng.ApplyCrop()
	case "cut":
		rect := rectFromCoords(e.coords)
		if rect.Empty() {
			return fmt.Errorf("cut region must not be empty")
		}
		eng.Cut(rect)
		eng.ClearFloating()
	case "copy":
		rect := rectFromCoords(e.coords)
		if rect.Empty() {
			return fmt.Errorf("copy region must not be empty")
		}
		region := eng.Copy(rect)
		if region == nil {
			return fmt.Errorf("copy region is outside the image")
		}
		if err := clipboard.WriteImage(region); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		detail := fmt.Sprintf("%dx%d region", rect.Dx(), rect.Dy())
		fmt.Fprintf(os.Stderr, "copied %s to clipboard\n", detail)
		if e.root != nil {
			e.root.notifyCopy(detail, region)
		}
	case "move":
		rect := rectFromCoords(e.coords[:4])
		if rect.Empty() {
			return fmt.Errorf("move region must not be empty")
		}
		dx, dy := e.coords[4], e.coords[5]
		eng.Cut(rect)
		eng.MoveFloating(rect.Min.X+dx, rect.Min.Y+dy)
		eng.Paste()
	case "resize":
		eng.ResizeCanvas(e.coords[0], e.coords[1], e.anchor, e.fill)
	case "convert":
		// load and save already do the work
	default:
		return fmt.Errorf("unhandled operation %q", e.op)
	}
	return nil
}

func rectFromCoords(c []int) image.Rectangle {
	return image.Rect(c[0], c[1], c[0]+c[2], c[1]+c[3]).Canon()
}

func expectInts(args []string, n int, op string) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d integer arguments", op, n)
	}
	vals := make([]int, n)
	for i, raw := range args {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}

var editFlagNames = map[string]struct{}{
	"file":           {},
	"output":         {},
	"from-clipboard": {},
	"from-clip":      {},
	"to-clipboard":   {},
	"to-clip":        {},
	"color":          {},
	"fill":           {},
	"width":          {},
	"text-size":      {},
	"font":           {},
	"anchor":         {},
	"pan-x":          {},
	"pan-y":          {},
}

var editBoolFlags = map[string]struct{}{
	"from-clipboard": {},
	"from-clip":      {},
	"to-clipboard":   {},
	"to-clip":        {},
}

func splitEditArgs(args []string) ([]string, []string, error) {
	var flags []string
	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positionals = append(positionals, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if name == "" {
			positionals = append(positionals, arg)
			continue
		}
		parts := strings.SplitN(name, "=", 2)
		base := strings.ToLower(parts[0])
		if _, ok := editFlagNames[base]; !ok {
			// Negative coordinates look like flags; treat unknown names as
			// positionals so "-5" parses.
			positionals = append(positionals, arg)
			continue
		}
		norm := "-" + base
		if len(parts) == 2 {
			flags = append(flags, norm+"="+parts[1])
			continue
		}
		if _, ok := editBoolFlags[base]; ok {
			flags = append(flags, norm)
			continue
		}
		if i+1 >= len(args) {
			return nil, nil, fmt.Errorf("flag %s requires a value", arg)
		}
		flags = append(flags, norm, args[i+1])
		i++
	}
	return flags, positionals, nil
}
