package hue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/huelib/internal/response"
)

var ErrNoUsername = errors.New("bridge returned no username")

// RegisterUser creates an application key on the bridge at address. The link
// button of the bridge must have been pressed shortly before; otherwise the
// bridge error (type 101) is returned.
func RegisterUser(ctx context.Context, address string, deviceType string, generateClientKey bool, logger *log.Logger) (User, error) {
	req := registerRequest{DeviceType: deviceType}
	if generateClientKey {
		req.GenerateClientKey = &generateClientKey
	}
	body, err := json.Marshal(req)
	if err != nil {
		return User{}, err
	}

	respBody, err := NewClient(address, "", logger).POST(ctx, "", body)
	if err != nil {
		return User{}, fmt.Errorf("error registering user: %w", err)
	}
	responses, err := response.Parse(respBody)
	if err != nil {
		return User{}, fmt.Errorf("error parsing register response: %w", err)
	}
	if errs := response.Errors(responses); len(errs) > 0 {
		return User{}, errs[0]
	}

	username, ok := response.Username(responses)
	if !ok {
		return User{}, ErrNoUsername
	}
	user := User{Username: username}
	if key, ok := response.ClientKey(responses); ok {
		user.ClientKey = &key
	}
	logger.Info("registered user", "devicetype", deviceType)
	return user, nil
}

// Discover lists the bridges the discovery service knows for this network.
func Discover(ctx context.Context, url string) ([]DiscoveredBridge, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling discovery service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Method: http.MethodGet, URL: url, StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	bridges := []DiscoveredBridge{}
	if err := json.Unmarshal(body, &bridges); err != nil {
		return nil, fmt.Errorf("error parsing discovery response: %w", err)
	}
	return bridges, nil
}
