package hue

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/samber/lo"
	"github.com/wheelibin/huelib/internal/constants"
	"github.com/wheelibin/huelib/internal/models"
)

// EventConsumer listens to the bridge event stream. The stream belongs to the
// v2 API; its resources carry the path of the matching v1 resource.
type EventConsumer struct {
	Logger *log.Logger

	url          string
	appKey       string
	client       *sse.Client
	eventChannel chan *sse.Event
}

func NewEventConsumer(address string, appKey string, logger *log.Logger) *EventConsumer {
	baseURL := address
	if !strings.Contains(address, "://") {
		baseURL = "https://" + address
	}
	return &EventConsumer{Logger: logger, url: baseURL + "/eventstream/clip/v2", appKey: appKey}
}

func (h *EventConsumer) Subscribe(eventChannel chan *sse.Event) error {

	h.eventChannel = eventChannel
	h.client = sse.NewClient(h.url)

	h.client.Connection.Transport = &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	h.client.Headers["hue-application-key"] = h.appKey

	h.client.OnConnect(func(_ *sse.Client) {
		h.Logger.Info("Connected to HUE bridge, listening for events...")
	})
	h.client.OnDisconnect(func(_ *sse.Client) {
		h.Logger.Info("Disconnected from HUE bridge")
	})

	if err := h.client.SubscribeChan("", h.eventChannel); err != nil {
		return fmt.Errorf("error subscribing to bridge events: %w", err)
	}
	return nil
}

func (h *EventConsumer) Unsubscribe() {
	h.Logger.Debug("Unsubscribe events")
	if h.client != nil {
		h.client.Unsubscribe(h.eventChannel)
	}
}

// ParseEvents decodes the data of one stream message, a list of event batches.
func ParseEvents(data []byte) ([]models.Event, error) {
	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("error parsing bridge event: %w", err)
	}
	return events, nil
}

var lightEventTypes = []string{constants.EventTypeLight, constants.EventTypeZigbeeConnectivity}

// ChangedLightIDs returns the v1 ids of the lights updated by events. A
// connectivity change counts as a change of the light it belongs to.
func ChangedLightIDs(events []models.Event) []string {
	updates := lo.Filter(events, func(e models.Event, _ int) bool {
		return e.Type == constants.EventBatchTypeUpdate
	})
	ids := lo.FlatMap(updates, func(e models.Event, _ int) []string {
		return lo.FilterMap(e.Data, func(d models.EventData, _ int) (string, bool) {
			id, ok := strings.CutPrefix(d.IdV1, "/lights/")
			return id, ok && id != "" && lo.Contains(lightEventTypes, d.Type)
		})
	})
	return lo.Uniq(ids)
}
