package vecmath

import (
	"fmt"
	"math"
)

type Vector3[T Number] struct {
	X, Y, Z T
}

func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Mul multiplies component-wise.
func (v Vector3[T]) Mul(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

func (v Vector3[T]) Scale(f T) Vector3[T] {
	return Vector3[T]{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

func (v Vector3[T]) Div(f T) Vector3[T] {
	return Vector3[T]{X: v.X / f, Y: v.Y / f, Z: v.Z / f}
}

func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3[T]) Dot(o Vector3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Reflect mirrors v about a unit normal.
func (v Vector3[T]) Reflect(normal Vector3[T]) Vector3[T] {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

func (v Vector3[T]) SquaredNorm() float64 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return x*x + y*y + z*z
}

func (v Vector3[T]) Length() float64 {
	return math.Sqrt(v.SquaredNorm())
}

func (v Vector3[T]) Unit() Vector3[T] {
	l := v.Length()
	return Vector3[T]{X: T(float64(v.X) / l), Y: T(float64(v.Y) / l), Z: T(float64(v.Z) / l)}
}

// Rotate applies the inverse of Rz(angleZ)·Ry(angleY)·Rx(angleX), angles in degrees.
func (v Vector3[T]) Rotate(angleX, angleY, angleZ float64) Vector3[T] {
	sinX, cosX := math.Sincos(radians(angleX))
	sinY, cosY := math.Sincos(radians(angleY))
	sinZ, cosZ := math.Sincos(radians(angleZ))
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)

	return Vector3[T]{
		X: T(x*(cosY*cosZ) + y*(cosY*sinZ) + z*-sinY),
		Y: T(x*(sinX*sinY*cosZ-cosX*sinZ) + y*(sinX*sinY*sinZ+cosX*cosZ) + z*sinX*cosY),
		Z: T(x*(cosX*sinY*cosZ+sinX*sinZ) + y*(cosX*sinY*sinZ-sinX*cosZ) + z*cosX*cosY),
	}
}

// RotateBy reads the three angles from a vector.
func (v Vector3[T]) RotateBy(angles Vector3[T]) Vector3[T] {
	return v.Rotate(float64(angles.X), float64(angles.Y), float64(angles.Z))
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

func (v Vector3[T]) MarshalJSON() ([]byte, error) {
	return encodeArray(v.X, v.Y, v.Z)
}

func (v *Vector3[T]) UnmarshalJSON(data []byte) error {
	items, err := decodeArray(data, 3)
	if err != nil {
		return err
	}
	v.X = fromResult[T](items[0])
	v.Y = fromResult[T](items[1])
	v.Z = fromResult[T](items[2])
	return nil
}
