package hue

import (
	"bytes"

	"github.com/wheelibin/huelib/internal/response"
)

// DiscoveredBridge is a bridge found by the discovery endpoint.
type DiscoveredBridge struct {
	ID                string `json:"id"`
	InternalIPAddress string `json:"internalipaddress"`
	Port              int    `json:"port"`
}

// User is a registered application.
type User struct {
	Username string
	// only set when a client key was requested
	ClientKey *string
}

type registerRequest struct {
	DeviceType        string `json:"devicetype"`
	GenerateClientKey *bool  `json:"generateclientkey,omitempty"`
}

type searchRequest struct {
	DeviceIDs []string `json:"deviceid,omitempty"`
}

// readError returns the first bridge error when a GET answered with a
// response list instead of the requested object, e.g. for unknown ids.
func readError(body []byte) error {
	if !bytes.HasPrefix(bytes.TrimSpace(body), []byte("[")) {
		return nil
	}
	responses, err := response.Parse(body)
	if err != nil {
		return err
	}
	if errs := response.Errors(responses); len(errs) > 0 {
		return errs[0]
	}
	return nil
}
