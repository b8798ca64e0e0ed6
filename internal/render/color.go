package render

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// ColorKind tags which shape a Color was given in.
type ColorKind int

const (
	ColorNone ColorKind = iota
	ColorName
	ColorRGB
	ColorRGBA
)

// Color is a tagged union over the three JSON shapes render_settings allows: a
// named string, an [r,g,b] triple, or an [r,g,b,opacity] quadruple.
// Grounded on json_reader.cpp's NodeToColor / svg.h's svg::Color variant.
type Color struct {
	Kind    ColorKind
	Name    string
	R, G, B uint8
	A       float64
}

// UnmarshalJSON decodes the string|array union shape.
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = Color{Kind: ColorName, Name: name}
		return nil
	}

	var nums []float64
	if err := json.Unmarshal(data, &nums); err != nil {
		return fmt.Errorf("render: color must be a string or a numeric array: %w", err)
	}
	switch len(nums) {
	case 3:
		*c = Color{Kind: ColorRGB, R: uint8(nums[0]), G: uint8(nums[1]), B: uint8(nums[2])}
	case 4:
		*c = Color{Kind: ColorRGBA, R: uint8(nums[0]), G: uint8(nums[1]), B: uint8(nums[2]), A: nums[3]}
	default:
		return fmt.Errorf("render: color array must have 3 or 4 elements, got %d", len(nums))
	}
	return nil
}

// MarshalJSON re-encodes a Color in whichever shape it was decoded from.
func (c Color) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case ColorName:
		return json.Marshal(c.Name)
	case ColorRGB:
		// Not []uint8: a byte slice would serialize as base64.
		return json.Marshal([]int{int(c.R), int(c.G), int(c.B)})
	case ColorRGBA:
		return json.Marshal([]float64{float64(c.R), float64(c.G), float64(c.B), c.A})
	default:
		return json.Marshal(nil)
	}
}

// SVG renders the color in the syntax an SVG attribute expects.
func (c Color) SVG() string {
	switch c.Kind {
	case ColorName:
		return c.Name
	case ColorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	case ColorRGBA:
		return fmt.Sprintf("rgba(%d,%d,%d,%g)", c.R, c.G, c.B, c.A)
	default:
		return "none"
	}
}
