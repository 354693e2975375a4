package daylight

import (
	"errors"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/wheelibin/huelib/internal/sensor"
)

var ErrNoSunriseSunset = errors.New("the sun does not rise or set on this day")

// Period is the part of a day the bridge treats as daylight.
type Period struct {
	Sunrise time.Time
	Sunset  time.Time
}

// Window returns sunrise and sunset at lat, lng on the day of date, moved by
// the offsets in minutes. A positive sunrise offset makes daylight start
// later, a positive sunset offset makes it end later.
func Window(lat, lng float64, date time.Time, sunriseOffset, sunsetOffset int8) (Period, error) {
	rise, set := sunrise.SunriseSunset(
		lat, lng,
		date.Year(), date.Month(), date.Day(),
	)
	if rise.IsZero() || set.IsZero() {
		return Period{}, ErrNoSunriseSunset
	}
	return Period{
		Sunrise: rise.Add(time.Duration(sunriseOffset) * time.Minute),
		Sunset:  set.Add(time.Duration(sunsetOffset) * time.Minute),
	}, nil
}

// ForSensor computes the window with the offsets configured on a Daylight
// sensor. Offsets that are not set count as zero.
func ForSensor(s sensor.Sensor, lat, lng float64, date time.Time) (Period, error) {
	var rise, set int8
	if s.Config.SunriseOffset != nil {
		rise = *s.Config.SunriseOffset
	}
	if s.Config.SunsetOffset != nil {
		set = *s.Config.SunsetOffset
	}
	return Window(lat, lng, date, rise, set)
}

func IsDaylight(at time.Time, p Period) bool {
	return !at.Before(p.Sunrise) && at.Before(p.Sunset)
}
