package vecmath

type Ray struct {
	Origin    Vector3[float64]
	Direction Vector3[float64]
}

func NewRay(origin, direction Vector3[float64]) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// DefaultRay starts at the origin and points along +z.
func DefaultRay() Ray {
	return Ray{Direction: Vector3[float64]{Z: 1}}
}

func (r Ray) At(t float64) Vector3[float64] {
	return r.Origin.Add(r.Direction.Scale(t))
}
