package vecmath

import (
	"fmt"
	"math"
)

type Vector2[T Number] struct {
	X, Y T
}

func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul multiplies component-wise.
func (v Vector2[T]) Mul(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X * o.X, Y: v.Y * o.Y}
}

func (v Vector2[T]) Scale(f T) Vector2[T] {
	return Vector2[T]{X: v.X * f, Y: v.Y * f}
}

func (v Vector2[T]) Div(f T) Vector2[T] {
	return Vector2[T]{X: v.X / f, Y: v.Y / f}
}

func (v Vector2[T]) Length() float64 {
	x, y := float64(v.X), float64(v.Y)
	return math.Sqrt(x*x + y*y)
}

// Rotate turns the vector counter-clockwise by angle degrees.
func (v Vector2[T]) Rotate(angle float64) Vector2[T] {
	rad := radians(angle)
	c, s := math.Cos(rad), math.Sin(rad)
	x, y := float64(v.X), float64(v.Y)
	return Vector2[T]{X: T(x*c - y*s), Y: T(x*s + y*c)}
}

// Unit divides by Length; the zero vector yields NaN components for floats.
func (v Vector2[T]) Unit() Vector2[T] {
	l := v.Length()
	return Vector2[T]{X: T(float64(v.X) / l), Y: T(float64(v.Y) / l)}
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

func (v Vector2[T]) MarshalJSON() ([]byte, error) {
	return encodeArray(v.X, v.Y)
}

func (v *Vector2[T]) UnmarshalJSON(data []byte) error {
	items, err := decodeArray(data, 2)
	if err != nil {
		return err
	}
	v.X = fromResult[T](items[0])
	v.Y = fromResult[T](items[1])
	return nil
}
