package models

import (
	"encoding/json"
	"time"

	"github.com/wheelibin/huelib/internal/wire"
)

const lastScanKey = "lastscan"

type LastScanStatus int

const (
	// the bridge has not scanned since it was powered on
	LastScanNone LastScanStatus = iota
	// the bridge is scanning right now
	LastScanActive
	// Time holds when the last scan finished
	LastScanCompleted
)

type LastScan struct {
	Status LastScanStatus
	Time   time.Time
}

func ParseLastScan(s string) (LastScan, error) {
	switch s {
	case "active":
		return LastScan{Status: LastScanActive}, nil
	case wire.None:
		return LastScan{Status: LastScanNone}, nil
	}
	t, err := wire.ParseDateTime(s)
	if err != nil {
		return LastScan{}, err
	}
	return LastScan{Status: LastScanCompleted, Time: t}, nil
}

// Scan is the result of GET /lights/new or /sensors/new.
type Scan struct {
	LastScan LastScan
	Devices  []ScanDevice
}

// ScanDevice is a device found by the last scan.
type ScanDevice struct {
	ID   string
	Name string
}

// DecodeScan decodes a scan result. The object mixes the fixed "lastscan"
// member with one member per discovered device keyed by its new id, so the
// members are dispatched by key in a single pass.
func DecodeScan(data []byte) (Scan, error) {
	scan := Scan{Devices: []ScanDevice{}}
	seenLastScan := false

	err := wire.EachMember(data, func(key string, value json.RawMessage) error {
		if key == lastScanKey {
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return wire.At(key, err)
			}
			lastScan, err := ParseLastScan(s)
			if err != nil {
				return wire.At(key, err)
			}
			scan.LastScan = lastScan
			seenLastScan = true
			return nil
		}

		o, err := wire.ReadObject(value)
		if err != nil {
			return wire.At(key, err)
		}
		device := ScanDevice{ID: key}
		o.Required("name", &device.Name)
		if err := o.Err(); err != nil {
			return wire.At(key, err)
		}
		scan.Devices = append(scan.Devices, device)
		return nil
	})
	if err != nil {
		return Scan{}, err
	}

	if !seenLastScan {
		return Scan{}, &wire.FieldError{Path: lastScanKey, Err: wire.ErrMissingField}
	}
	return scan, nil
}
