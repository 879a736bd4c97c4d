// Package color has RGB and RGBA value types with channels in [0, 1].
package color

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

var ErrInvalidHex = errors.New("color: invalid hex color")

type Color3 struct {
	R, G, B float64
}

// ParseHex3 reads "RRGGBB" with an optional leading '#'.
func ParseHex3(hex string) (Color3, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return Color3{}, errors.Wrapf(ErrInvalidHex, "%q", hex)
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color3{}, errors.Wrapf(ErrInvalidHex, "%q: %v", hex, err)
	}
	return Color3{R: c.R, G: c.G, B: c.B}, nil
}

func Color3FromBytes(data [3]byte) Color3 {
	return Color3{
		R: float64(data[0]) / 255,
		G: float64(data[1]) / 255,
		B: float64(data[2]) / 255,
	}
}

func (c Color3) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Hex formats as upper-case "RRGGBB"; channels are clamped first.
func (c Color3) Hex() string {
	return strings.ToUpper(strings.TrimPrefix(c.colorful().Clamped().Hex(), "#"))
}

func (c Color3) Bytes() [3]byte {
	return [3]byte{channelByte(c.R), channelByte(c.G), channelByte(c.B)}
}

// Uint32 packs r, g, b and a constant 1 as little-endian bytes.
func (c Color3) Uint32() uint32 {
	b := c.Bytes()
	return binary.LittleEndian.Uint32([]byte{b[0], b[1], b[2], 1})
}

func (c Color3) Add(o Color3) Color3 {
	return Color3{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

func (c Color3) Sub(o Color3) Color3 {
	return Color3{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

func (c Color3) Mul(o Color3) Color3 {
	return Color3{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

func (c Color3) Scale(factor float64) Color3 {
	return Color3{R: c.R * factor, G: c.G * factor, B: c.B * factor}
}

func (c Color3) Div(factor float64) Color3 {
	return Color3{R: c.R / factor, G: c.G / factor, B: c.B / factor}
}

func (c Color3) Clamp() Color3 {
	clamped := c.colorful().Clamped()
	return Color3{R: clamped.R, G: clamped.G, B: clamped.B}
}

func (c Color3) String() string {
	return fmt.Sprintf("Color3(%f, %f, %f)", c.R, c.G, c.B)
}

func channelByte(v float64) byte {
	return byte(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
