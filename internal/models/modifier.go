package models

import "fmt"

// ModifierType selects how a modifier value is applied to an attribute.
type ModifierType int

const (
	// replace the current value
	Override ModifierType = iota
	// add to the current value
	Increment
	// subtract from the current value
	Decrement
)

func (t ModifierType) String() string {
	switch t {
	case Override:
		return "override"
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	}
	return fmt.Sprintf("ModifierType(%d)", int(t))
}

// CoordinateModifierType is ModifierType for two-axis values, with the extra
// variants giving each axis its own sign.
type CoordinateModifierType int

const (
	CoordinateOverride CoordinateModifierType = iota
	CoordinateIncrement
	CoordinateDecrement
	// add to x, subtract from y
	CoordinateIncrementDecrement
	// subtract from x, add to y
	CoordinateDecrementIncrement
)

// ApplyModifier stores value in base for Override, or the signed value in
// delta for Increment and Decrement. Delta is wider than base so that
// negation never wraps.
func ApplyModifier[B ~uint8 | ~uint16, D ~int16 | ~int32](t ModifierType, value B, base **B, delta **D) {
	switch t {
	case Override:
		*base = &value
	case Increment:
		d := D(value)
		*delta = &d
	case Decrement:
		d := -D(value)
		*delta = &d
	}
}

func ApplyCoordinateModifier(t CoordinateModifierType, value [2]float32, base, delta **[2]float32) {
	x, y := value[0], value[1]
	var d [2]float32
	switch t {
	case CoordinateOverride:
		*base = &value
		return
	case CoordinateIncrement:
		d = [2]float32{x, y}
	case CoordinateDecrement:
		d = [2]float32{-x, -y}
	case CoordinateIncrementDecrement:
		d = [2]float32{x, -y}
	case CoordinateDecrementIncrement:
		d = [2]float32{-x, y}
	default:
		return
	}
	*delta = &d
}
