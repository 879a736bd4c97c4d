package color

import (
	"encoding/binary"
	"fmt"
)

// Color is an RGB color with opacity.
type Color struct {
	Color3
	Opacity float64
}

func NewColor(r, g, b, opacity float64) Color {
	return Color{Color3: Color3{R: r, G: g, B: b}, Opacity: opacity}
}

func ColorFromBytes(data [4]byte) Color {
	return Color{
		Color3:  Color3FromBytes([3]byte{data[0], data[1], data[2]}),
		Opacity: float64(data[3]) / 255,
	}
}

func (c Color) Bytes() [4]byte {
	rgb := c.Color3.Bytes()
	return [4]byte{rgb[0], rgb[1], rgb[2], channelByte(c.Opacity)}
}

// Uint32 packs r, g, b, opacity as little-endian bytes.
func (c Color) Uint32() uint32 {
	b := c.Bytes()
	return binary.LittleEndian.Uint32(b[:])
}

func (c Color) Add(o Color) Color {
	return Color{Color3: c.Color3.Add(o.Color3), Opacity: c.Opacity + o.Opacity}
}

func (c Color) Mul(o Color) Color {
	return Color{Color3: c.Color3.Mul(o.Color3), Opacity: c.Opacity * o.Opacity}
}

func (c Color) Scale(factor float64) Color {
	return Color{Color3: c.Color3.Scale(factor), Opacity: c.Opacity * factor}
}

func (c Color) Div(factor float64) Color {
	return Color{Color3: c.Color3.Div(factor), Opacity: c.Opacity / factor}
}

// Blend composites c over bg. When both are fully transparent the color
// channels are left untouched.
func (c Color) Blend(bg Color) Color {
	srcAlpha := c.Opacity
	dstAlpha := bg.Opacity * (1 - srcAlpha)
	outAlpha := srcAlpha + dstAlpha

	out := c
	if outAlpha > 0 {
		out.Color3 = c.Color3.Scale(srcAlpha).Add(bg.Color3.Scale(dstAlpha)).Div(outAlpha)
	}
	out.Opacity = outAlpha
	return out
}

func (c Color) Clamp() Color {
	return Color{Color3: c.Color3.Clamp(), Opacity: clamp01(c.Opacity)}
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%s, %f)", c.Color3, c.Opacity)
}
