package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wheelibin/huelib/internal/light"
	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/wire"
)

// parseModifier reads "+N" as an increment, "-N" as a decrement and "N" as
// an absolute value no larger than max.
func parseModifier(arg string, max uint64) (models.ModifierType, uint64, error) {
	t := models.Override
	digits := arg
	switch {
	case strings.HasPrefix(arg, "+"):
		t, digits = models.Increment, arg[1:]
	case strings.HasPrefix(arg, "-"):
		t, digits = models.Decrement, arg[1:]
	}
	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value %q", arg)
	}
	if value > max {
		return 0, 0, fmt.Errorf("value %q out of range, the maximum is %d", arg, max)
	}
	return t, value, nil
}

// parseCoordinates reads "x,y". A leading + or - on both axes selects the
// matching coordinate modifier, e.g. "+0.1,-0.05".
func parseCoordinates(arg string) (models.CoordinateModifierType, [2]float32, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		return 0, [2]float32{}, fmt.Errorf("invalid coordinates %q, expected x,y", arg)
	}

	signs := [2]byte{}
	var xy [2]float32
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if strings.HasPrefix(p, "+") || strings.HasPrefix(p, "-") {
			signs[i] = p[0]
			p = p[1:]
		}
		v, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return 0, [2]float32{}, fmt.Errorf("invalid coordinate %q", parts[i])
		}
		xy[i] = float32(v)
	}

	switch signs {
	case [2]byte{}:
		return models.CoordinateOverride, xy, nil
	case [2]byte{'+', '+'}:
		return models.CoordinateIncrement, xy, nil
	case [2]byte{'-', '-'}:
		return models.CoordinateDecrement, xy, nil
	case [2]byte{'+', '-'}:
		return models.CoordinateIncrementDecrement, xy, nil
	case [2]byte{'-', '+'}:
		return models.CoordinateDecrementIncrement, xy, nil
	}
	return 0, [2]float32{}, fmt.Errorf("invalid coordinates %q, give a sign for both axes or none", arg)
}

type stateArgs struct {
	on         bool
	off        bool
	brightness string
	hue        string
	saturation string
	ct         string
	xy         string
	alert      string
	effect     string
	transition int
}

func (a stateArgs) modifier() (light.StateModifier, error) {
	m := light.StateModifier{}
	if a.on && a.off {
		return m, fmt.Errorf("--on and --off exclude each other")
	}
	if a.on || a.off {
		m = m.On(a.on)
	}
	if a.brightness != "" {
		t, v, err := parseModifier(a.brightness, 254)
		if err != nil {
			return m, fmt.Errorf("--bri: %w", err)
		}
		m = m.Brightness(t, uint8(v))
	}
	if a.hue != "" {
		t, v, err := parseModifier(a.hue, 65535)
		if err != nil {
			return m, fmt.Errorf("--hue: %w", err)
		}
		m = m.Hue(t, uint16(v))
	}
	if a.saturation != "" {
		t, v, err := parseModifier(a.saturation, 254)
		if err != nil {
			return m, fmt.Errorf("--sat: %w", err)
		}
		m = m.Saturation(t, uint8(v))
	}
	if a.ct != "" {
		t, v, err := parseModifier(a.ct, 500)
		if err != nil {
			return m, fmt.Errorf("--ct: %w", err)
		}
		m = m.ColorTemperature(t, uint16(v))
	}
	if a.xy != "" {
		t, v, err := parseCoordinates(a.xy)
		if err != nil {
			return m, fmt.Errorf("--xy: %w", err)
		}
		m = m.ColorSpaceCoordinates(t, v)
	}
	if a.alert != "" {
		alert, err := wire.ParseToken(a.alert, models.Alerts...)
		if err != nil {
			return m, fmt.Errorf("--alert: %w", err)
		}
		m = m.Alert(alert)
	}
	if a.effect != "" {
		effect, err := wire.ParseToken(a.effect, models.Effects...)
		if err != nil {
			return m, fmt.Errorf("--effect: %w", err)
		}
		m = m.Effect(effect)
	}
	if a.transition > 65535 {
		return m, fmt.Errorf("--transition: %d is out of range", a.transition)
	}
	if a.transition >= 0 {
		m = m.TransitionTime(uint16(a.transition))
	}
	return m, nil
}
