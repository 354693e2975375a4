package repos

import (
	"database/sql"
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/huelib/internal/light"
	"github.com/wheelibin/huelib/internal/models"
)

const initSchema = `
  CREATE TABLE IF NOT EXISTS light_state (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    light_id TEXT NOT NULL,
    name TEXT,
    observed_at TIMESTAMP NOT NULL,
    reachable INTEGER NOT NULL,
    on_state INTEGER,
    brightness INTEGER,
    hue INTEGER,
    saturation INTEGER,
    x REAL,
    y REAL,
    colour_temp INTEGER,
    alert TEXT,
    effect TEXT,
    colour_mode TEXT
  );

  CREATE INDEX IF NOT EXISTS light_state_light_id ON light_state (light_id, observed_at);
`

const selectColumns = `light_id, name, observed_at, reachable, on_state, brightness, hue, saturation, x, y, colour_temp, alert, effect, colour_mode`

// StateRecord is a light state as observed at one point in time.
type StateRecord struct {
	LightID    string
	Name       string
	ObservedAt time.Time
	State      light.State
}

// LightRepo keeps the history of light states in sqlite.
type LightRepo struct {
	logger *log.Logger
	db     *sql.DB
}

func NewLightRepo(logger *log.Logger, db *sql.DB) (*LightRepo, error) {

	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("Error initialising light schema: %w", err)
	}

	return &LightRepo{logger: logger, db: db}, nil
}

// Record stores the state of l unless it equals the latest stored state of
// the light. It reports whether a row was written.
func (r *LightRepo) Record(l light.Light, at time.Time) (bool, error) {
	latest, err := r.Latest(l.ID)
	if err != nil {
		return false, err
	}
	if latest != nil && reflect.DeepEqual(latest.State, l.State) {
		return false, nil
	}

	s := l.State
	var x, y *float32
	if s.ColorSpaceCoordinates != nil {
		x, y = &s.ColorSpaceCoordinates[0], &s.ColorSpaceCoordinates[1]
	}
	_, err = r.db.Exec(
		`INSERT INTO light_state
      (light_id, name, observed_at, reachable, on_state, brightness, hue, saturation, x, y, colour_temp, alert, effect, colour_mode)
     VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
		l.ID,
		l.Name,
		at.UTC(),
		s.Reachable,
		s.On,
		s.Brightness,
		s.Hue,
		s.Saturation,
		x,
		y,
		s.ColorTemperature,
		s.Alert,
		s.Effect,
		s.ColorMode,
	)
	if err != nil {
		return false, fmt.Errorf("Error recording state of light (%s): %w", l.ID, err)
	}
	r.logger.Debug("recorded light state", "id", l.ID, "name", l.Name)
	return true, nil
}

// Latest returns the most recent state of the light, or nil when none was
// recorded.
func (r *LightRepo) Latest(lightID string) (*StateRecord, error) {
	records, err := r.History(lightID, 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// History returns up to limit states of the light, newest first.
func (r *LightRepo) History(lightID string, limit int) ([]StateRecord, error) {
	rows, err := r.db.Query(
		`SELECT `+selectColumns+`
     FROM light_state
     WHERE light_id = $1
     ORDER BY observed_at DESC, id DESC
     LIMIT $2`, lightID, limit)
	if err != nil {
		return nil, fmt.Errorf("Error reading history for light (%s): %w", lightID, err)
	}
	defer rows.Close()

	records := []StateRecord{}

	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("Error reading history for light (%s): %w", lightID, err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func scanRecord(rows *sql.Rows) (StateRecord, error) {
	var (
		rec        StateRecord
		name       sql.NullString
		on         sql.NullBool
		bri        sql.NullInt64
		hue        sql.NullInt64
		sat        sql.NullInt64
		x          sql.NullFloat64
		y          sql.NullFloat64
		ct         sql.NullInt64
		alert      sql.NullString
		effect     sql.NullString
		colourMode sql.NullString
	)
	err := rows.Scan(&rec.LightID, &name, &rec.ObservedAt, &rec.State.Reachable, &on, &bri, &hue, &sat, &x, &y, &ct, &alert, &effect, &colourMode)
	if err != nil {
		return StateRecord{}, err
	}

	rec.Name = name.String
	s := &rec.State
	if on.Valid {
		s.On = &on.Bool
	}
	if bri.Valid {
		v := uint8(bri.Int64)
		s.Brightness = &v
	}
	if hue.Valid {
		v := uint16(hue.Int64)
		s.Hue = &v
	}
	if sat.Valid {
		v := uint8(sat.Int64)
		s.Saturation = &v
	}
	if x.Valid && y.Valid {
		s.ColorSpaceCoordinates = &[2]float32{float32(x.Float64), float32(y.Float64)}
	}
	if ct.Valid {
		v := uint16(ct.Int64)
		s.ColorTemperature = &v
	}
	if alert.Valid {
		v := models.Alert(alert.String)
		s.Alert = &v
	}
	if effect.Valid {
		v := models.Effect(effect.String)
		s.Effect = &v
	}
	if colourMode.Valid {
		v := models.ColorMode(colourMode.String)
		s.ColorMode = &v
	}
	return rec, nil
}
