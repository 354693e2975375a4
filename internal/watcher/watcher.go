package watcher

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/wheelibin/huelib/internal/hue"
	"github.com/wheelibin/huelib/internal/light"
)

type bridge interface {
	GetAllLights(ctx context.Context) ([]light.Light, error)
	GetLight(ctx context.Context, id string) (light.Light, error)
}

type eventSource interface {
	Subscribe(eventChannel chan *sse.Event) error
	Unsubscribe()
}

type lightRecorder interface {
	Record(l light.Light, at time.Time) (bool, error)
}

type lightPublisher interface {
	PublishLight(l light.Light) error
}

// Watcher keeps the recorded light states in line with the bridge. It polls
// all lights periodically and refetches single lights when the bridge
// reports a change.
type Watcher struct {
	bridge       bridge
	events       eventSource
	recorder     lightRecorder
	publisher    lightPublisher
	logger       *log.Logger
	pollInterval time.Duration
	now          func() time.Time
}

// NewWatcher creates a watcher. publisher may be nil.
func NewWatcher(
	logger *log.Logger,
	pollInterval time.Duration,
	bridge bridge,
	events eventSource,
	recorder lightRecorder,
	publisher lightPublisher,
) *Watcher {
	return &Watcher{
		bridge:       bridge,
		events:       events,
		recorder:     recorder,
		publisher:    publisher,
		logger:       logger,
		pollInterval: pollInterval,
		now:          time.Now,
	}
}

func (w *Watcher) Run(ctx context.Context) {
	w.logger.Debug("Watcher.Run")

	// start listening to hue bridge events
	eventChannel := make(chan *sse.Event)
	if err := w.events.Subscribe(eventChannel); err != nil {
		w.logger.Error("bridge events unavailable, polling only", "err", err)
	} else {
		defer w.events.Unsubscribe()
	}

	pollTimer := time.NewTicker(w.pollInterval)
	defer pollTimer.Stop()

	// read all lights straight away
	w.PollAll(ctx)

	// start the main application loop
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Watcher.Run: stop signal received")
			return

		case event := <-eventChannel:
			w.logger.Debug("Watcher.Run: Received hue bridge event")
			w.HandleBridgeEvent(ctx, event)

		case t := <-pollTimer.C:
			w.logger.Debug("Watcher.Run: polling lights...", "t", t)
			w.PollAll(ctx)
		}
	}
}

func (w *Watcher) PollAll(ctx context.Context) {
	lights, err := w.bridge.GetAllLights(ctx)
	if err != nil {
		w.logger.Error(err)
		return
	}
	for _, l := range lights {
		w.observe(l)
	}
}

// HandleBridgeEvent refetches every light the event reports as changed.
func (w *Watcher) HandleBridgeEvent(ctx context.Context, event *sse.Event) {
	if event == nil || len(event.Data) == 0 {
		return
	}
	events, err := hue.ParseEvents(event.Data)
	if err != nil {
		w.logger.Error(err)
		return
	}
	for _, id := range hue.ChangedLightIDs(events) {
		l, err := w.bridge.GetLight(ctx, id)
		if err != nil {
			w.logger.Error("error reading changed light", "id", id, "err", err)
			continue
		}
		w.observe(l)
	}
}

func (w *Watcher) observe(l light.Light) {
	changed, err := w.recorder.Record(l, w.now())
	if err != nil {
		w.logger.Error(err)
		return
	}
	if !changed {
		return
	}
	w.logger.Info("light changed", "id", l.ID, "name", l.Name, "reachable", l.State.Reachable)
	if w.publisher == nil {
		return
	}
	if err := w.publisher.PublishLight(l); err != nil {
		w.logger.Error("error publishing light", "id", l.ID, "err", err)
	}
}
