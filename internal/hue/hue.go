package hue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/huelib/internal/bridgeconfig"
	"github.com/wheelibin/huelib/internal/capabilities"
	"github.com/wheelibin/huelib/internal/concurrency"
	"github.com/wheelibin/huelib/internal/constants"
	"github.com/wheelibin/huelib/internal/group"
	"github.com/wheelibin/huelib/internal/light"
	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/resourcelink"
	"github.com/wheelibin/huelib/internal/response"
	"github.com/wheelibin/huelib/internal/rule"
	"github.com/wheelibin/huelib/internal/scene"
	"github.com/wheelibin/huelib/internal/schedule"
	"github.com/wheelibin/huelib/internal/sensor"
	"github.com/wheelibin/huelib/internal/wire"
)

// Bridge reads and changes the resources of one bridge.
type Bridge struct {
	client *Client
	logger *log.Logger
}

func NewBridge(client *Client, logger *log.Logger) *Bridge {
	return &Bridge{client: client, logger: logger}
}

func get[T any](ctx context.Context, b *Bridge, path string, decode func([]byte) (T, error)) (T, error) {
	var zero T
	body, err := b.client.GET(ctx, path)
	if err != nil {
		return zero, fmt.Errorf("error reading %s from hue bridge: %w", path, err)
	}
	if err := readError(body); err != nil {
		return zero, fmt.Errorf("error reading %s from hue bridge: %w", path, err)
	}
	v, err := decode(body)
	if err != nil {
		return zero, fmt.Errorf("error parsing %s response: %w", path, err)
	}
	return v, nil
}

// set sends m with PUT. Empty modifiers are not sent and return no outcomes.
func (b *Bridge) set(ctx context.Context, path string, m wire.Modifier) ([]response.Response, error) {
	if m.IsEmpty() {
		b.logger.Debug("skipping empty modifier", "path", path)
		return nil, nil
	}
	body, err := wire.Encode(m)
	if err != nil {
		return nil, err
	}
	return b.send(path, func() ([]byte, error) { return b.client.PUT(ctx, path, body) })
}

// create sends creator with POST and returns the id of the new resource.
func (b *Bridge) create(ctx context.Context, path string, creator any) (string, error) {
	body, err := json.Marshal(creator)
	if err != nil {
		return "", err
	}
	responses, err := b.send(path, func() ([]byte, error) { return b.client.POST(ctx, path, body) })
	if err != nil {
		return "", err
	}
	if errs := response.Errors(responses); len(errs) > 0 {
		return "", fmt.Errorf("error creating %s: %w", path, errs[0])
	}
	id, ok := response.CreatedID(responses)
	if !ok {
		return "", fmt.Errorf("error creating %s: no id in response", path)
	}
	return id, nil
}

func (b *Bridge) delete(ctx context.Context, path string) ([]response.Response, error) {
	return b.send(path, func() ([]byte, error) { return b.client.DELETE(ctx, path) })
}

func (b *Bridge) send(path string, request func() ([]byte, error)) ([]response.Response, error) {
	body, err := request()
	if err != nil {
		return nil, fmt.Errorf("error calling %s on hue bridge: %w", path, err)
	}
	responses, err := response.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s response: %w", path, err)
	}
	for _, e := range response.Errors(responses) {
		b.logger.Warn("bridge reported an error", "type", e.Type, "address", e.Address, "description", e.Description)
	}
	return responses, nil
}

// lights

func (b *Bridge) GetLight(ctx context.Context, id string) (light.Light, error) {
	l, err := get(ctx, b, "/lights/"+id, light.Decode)
	if err != nil {
		return light.Light{}, err
	}
	l.ID = id
	return l, nil
}

func (b *Bridge) GetAllLights(ctx context.Context) ([]light.Light, error) {
	return get(ctx, b, "/lights", light.DecodeAll)
}

func (b *Bridge) SetLightAttributes(ctx context.Context, id string, m light.AttributeModifier) ([]response.Response, error) {
	return b.set(ctx, "/lights/"+id, m)
}

func (b *Bridge) SetLightState(ctx context.Context, id string, m light.StateModifier) ([]response.Response, error) {
	return b.set(ctx, "/lights/"+id+"/state", m)
}

// SetLightStates sends m to every light in ids, spacing the requests so the
// bridge does not drop them. Failed requests are logged and have no entry in
// the result.
func (b *Bridge) SetLightStates(ctx context.Context, ids []string, m light.StateModifier) map[string][]response.Response {
	if m.IsEmpty() {
		return map[string][]response.Response{}
	}
	worker := concurrency.NewThrottledWorker(constants.BridgeRequestInterval, func(ctx context.Context, id string) ([]response.Response, error) {
		return b.SetLightState(ctx, id, m)
	})
	results := worker.Run(ctx, lo.Uniq(ids))

	for _, r := range results {
		if r.Err != nil {
			b.logger.Error("error setting light state", "id", r.Arg, "err", r.Err)
		}
	}
	ok := lo.Filter(results, func(r concurrency.Result[string, []response.Response], _ int) bool { return r.Err == nil })
	return lo.SliceToMap(ok, func(r concurrency.Result[string, []response.Response]) (string, []response.Response) {
		return r.Arg, r.Value
	})
}

func (b *Bridge) DeleteLight(ctx context.Context, id string) ([]response.Response, error) {
	return b.delete(ctx, "/lights/"+id)
}

// SearchNewLights starts a scan for new lights. The bridge searches for
// about 40 seconds; GetNewLights reports the result.
func (b *Bridge) SearchNewLights(ctx context.Context, deviceIDs ...string) ([]response.Response, error) {
	return b.search(ctx, "/lights", deviceIDs)
}

func (b *Bridge) GetNewLights(ctx context.Context) (models.Scan, error) {
	return get(ctx, b, "/lights/new", models.DecodeScan)
}

func (b *Bridge) search(ctx context.Context, path string, deviceIDs []string) ([]response.Response, error) {
	body, err := json.Marshal(searchRequest{DeviceIDs: deviceIDs})
	if err != nil {
		return nil, err
	}
	return b.send(path, func() ([]byte, error) { return b.client.POST(ctx, path, body) })
}

// sensors

func (b *Bridge) GetSensor(ctx context.Context, id string) (sensor.Sensor, error) {
	s, err := get(ctx, b, "/sensors/"+id, sensor.Decode)
	if err != nil {
		return sensor.Sensor{}, err
	}
	s.ID = id
	return s, nil
}

func (b *Bridge) GetAllSensors(ctx context.Context) ([]sensor.Sensor, error) {
	return get(ctx, b, "/sensors", sensor.DecodeAll)
}

func (b *Bridge) SetSensorAttributes(ctx context.Context, id string, m sensor.AttributeModifier) ([]response.Response, error) {
	return b.set(ctx, "/sensors/"+id, m)
}

func (b *Bridge) SetSensorState(ctx context.Context, id string, m sensor.StateModifier) ([]response.Response, error) {
	return b.set(ctx, "/sensors/"+id+"/state", m)
}

func (b *Bridge) SetSensorConfig(ctx context.Context, id string, m sensor.ConfigModifier) ([]response.Response, error) {
	return b.set(ctx, "/sensors/"+id+"/config", m)
}

func (b *Bridge) DeleteSensor(ctx context.Context, id string) ([]response.Response, error) {
	return b.delete(ctx, "/sensors/"+id)
}

func (b *Bridge) SearchNewSensors(ctx context.Context) ([]response.Response, error) {
	return b.search(ctx, "/sensors", nil)
}

func (b *Bridge) GetNewSensors(ctx context.Context) (models.Scan, error) {
	return get(ctx, b, "/sensors/new", models.DecodeScan)
}

// configuration

func (b *Bridge) GetConfig(ctx context.Context) (bridgeconfig.Config, error) {
	return get(ctx, b, "/config", bridgeconfig.Decode)
}

func (b *Bridge) SetConfig(ctx context.Context, m bridgeconfig.Modifier) ([]response.Response, error) {
	return b.set(ctx, "/config", m)
}

// GetCapabilities reports the free resource slots of the bridge.
func (b *Bridge) GetCapabilities(ctx context.Context) (capabilities.Capabilities, error) {
	return get(ctx, b, "/capabilities", capabilities.Decode)
}

// groups

func (b *Bridge) GetGroup(ctx context.Context, id string) (group.Group, error) {
	g, err := get(ctx, b, "/groups/"+id, group.Decode)
	if err != nil {
		return group.Group{}, err
	}
	g.ID = id
	return g, nil
}

func (b *Bridge) GetAllGroups(ctx context.Context) ([]group.Group, error) {
	return get(ctx, b, "/groups", group.DecodeAll)
}

func (b *Bridge) SetGroupAttributes(ctx context.Context, id string, m group.AttributeModifier) ([]response.Response, error) {
	return b.set(ctx, "/groups/"+id, m)
}

// SetGroupState changes all lights of a group. Group 0 contains every light.
func (b *Bridge) SetGroupState(ctx context.Context, id string, m group.StateModifier) ([]response.Response, error) {
	return b.set(ctx, "/groups/"+id+"/action", m)
}

func (b *Bridge) CreateGroup(ctx context.Context, c group.Creator) (string, error) {
	return b.create(ctx, "/groups", c)
}

func (b *Bridge) DeleteGroup(ctx context.Context, id string) ([]response.Response, error) {
	return b.delete(ctx, "/groups/"+id)
}

// schedules

func (b *Bridge) GetSchedule(ctx context.Context, id string) (schedule.Schedule, error) {
	s, err := get(ctx, b, "/schedules/"+id, schedule.Decode)
	if err != nil {
		return schedule.Schedule{}, err
	}
	s.ID = id
	return s, nil
}

func (b *Bridge) GetAllSchedules(ctx context.Context) ([]schedule.Schedule, error) {
	return get(ctx, b, "/schedules", schedule.DecodeAll)
}

func (b *Bridge) SetSchedule(ctx context.Context, id string, m schedule.Modifier) ([]response.Response, error) {
	return b.set(ctx, "/schedules/"+id, m)
}

func (b *Bridge) CreateSchedule(ctx context.Context, c schedule.Creator) (string, error) {
	return b.create(ctx, "/schedules", c)
}

func (b *Bridge) DeleteSchedule(ctx context.Context, id string) ([]response.Response, error) {
	return b.delete(ctx, "/schedules/"+id)
}

// rules

func (b *Bridge) GetRule(ctx context.Context, id string) (rule.Rule, error) {
	r, err := get(ctx, b, "/rules/"+id, rule.Decode)
	if err != nil {
		return rule.Rule{}, err
	}
	r.ID = id
	return r, nil
}

func (b *Bridge) GetAllRules(ctx context.Context) ([]rule.Rule, error) {
	return get(ctx, b, "/rules", rule.DecodeAll)
}

func (b *Bridge) SetRule(ctx context.Context, id string, m rule.Modifier) ([]response.Response, error) {
	return b.set(ctx, "/rules/"+id, m)
}

func (b *Bridge) CreateRule(ctx context.Context, c rule.Creator) (string, error) {
	return b.create(ctx, "/rules", c)
}

func (b *Bridge) DeleteRule(ctx context.Context, id string) ([]response.Response, error) {
	return b.delete(ctx, "/rules/"+id)
}

// scenes

func (b *Bridge) GetScene(ctx context.Context, id string) (scene.Scene, error) {
	s, err := get(ctx, b, "/scenes/"+id, scene.Decode)
	if err != nil {
		return scene.Scene{}, err
	}
	s.ID = id
	return s, nil
}

func (b *Bridge) GetAllScenes(ctx context.Context) ([]scene.Scene, error) {
	return get(ctx, b, "/scenes", scene.DecodeAll)
}

func (b *Bridge) SetScene(ctx context.Context, id string, m scene.Modifier) ([]response.Response, error) {
	return b.set(ctx, "/scenes/"+id, m)
}

func (b *Bridge) SetSceneLightState(ctx context.Context, id string, lightID string, m scene.LightStateModifier) ([]response.Response, error) {
	return b.set(ctx, "/scenes/"+id+"/lightstates/"+lightID, m)
}

func (b *Bridge) CreateScene(ctx context.Context, c scene.Creator) (string, error) {
	return b.create(ctx, "/scenes", c)
}

func (b *Bridge) DeleteScene(ctx context.Context, id string) ([]response.Response, error) {
	return b.delete(ctx, "/scenes/"+id)
}

// resourcelinks

func (b *Bridge) GetResourcelink(ctx context.Context, id string) (resourcelink.Resourcelink, error) {
	r, err := get(ctx, b, "/resourcelinks/"+id, resourcelink.Decode)
	if err != nil {
		return resourcelink.Resourcelink{}, err
	}
	r.ID = id
	return r, nil
}

func (b *Bridge) GetAllResourcelinks(ctx context.Context) ([]resourcelink.Resourcelink, error) {
	return get(ctx, b, "/resourcelinks", resourcelink.DecodeAll)
}

func (b *Bridge) SetResourcelink(ctx context.Context, id string, m resourcelink.Modifier) ([]response.Response, error) {
	return b.set(ctx, "/resourcelinks/"+id, m)
}

func (b *Bridge) CreateResourcelink(ctx context.Context, c resourcelink.Creator) (string, error) {
	return b.create(ctx, "/resourcelinks", c)
}

func (b *Bridge) DeleteResourcelink(ctx context.Context, id string) ([]response.Response, error) {
	return b.delete(ctx, "/resourcelinks/"+id)
}
