package models

import "time"

// an event batch received from the bridge event stream
type Event struct {
	CreationTime time.Time   `json:"creationtime"`
	Data         []EventData `json:"data"`
	Type         string      `json:"type"`
}

type EventData struct {
	Id string `json:"id"`
	// path of the matching v1 resource, e.g. /lights/3
	IdV1 string `json:"id_v1"`
	On   *struct {
		On bool `json:"on"`
	} `json:"on"`
	Dimming *struct {
		Brightness float64 `json:"brightness"`
	} `json:"dimming"`
	ColorTemperature *struct {
		Mirek *int `json:"mirek"`
	} `json:"color_temperature"`
	Type   string `json:"type"`
	Status string `json:"status"`
}
