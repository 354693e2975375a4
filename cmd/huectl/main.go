package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wheelibin/huelib/internal/config"
	"github.com/wheelibin/huelib/internal/constants"
	"github.com/wheelibin/huelib/internal/daylight"
	"github.com/wheelibin/huelib/internal/hue"
	"github.com/wheelibin/huelib/internal/light"
	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/repos"
	"github.com/wheelibin/huelib/internal/response"
	"github.com/wheelibin/huelib/internal/sensor"
	"github.com/wheelibin/huelib/internal/wire"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

const usage = `usage: huectl [flags] <command> [args]

commands:
  discover                 list bridges on the local network
  register <devicetype>    create an application key (press the link button first)
  lights                   list lights
  light <id>               show one light
  set <id>... [flags]      change the state of lights
  rename <id> <name>       rename a light
  scan                     search for new lights
  new                      show the result of the last scan
  sensors | groups | scenes | schedules | rules | resourcelinks
  config                   show the bridge configuration
  capabilities             show free resource slots on the bridge
  daylight                 show today's daylight window
  history <id>             show recorded states of a light

flags:
`

type options struct {
	state     stateArgs
	clientKey bool
	limit     int
}

func main() {

	flags := pflag.NewFlagSet("huectl", pflag.ContinueOnError)
	configFile := flags.String("config", "", "config file")
	flags.String("bridge", "", "bridge address")
	flags.String("username", "", "application key")
	flags.String("log-level", "", "debug, info, warn or error")

	opts := options{}
	flags.BoolVar(&opts.state.on, "on", false, "turn lights on")
	flags.BoolVar(&opts.state.off, "off", false, "turn lights off")
	flags.StringVar(&opts.state.brightness, "bri", "", "brightness 1-254, +N or -N")
	flags.StringVar(&opts.state.hue, "hue", "", "hue 0-65535, +N or -N")
	flags.StringVar(&opts.state.saturation, "sat", "", "saturation 0-254, +N or -N")
	flags.StringVar(&opts.state.ct, "ct", "", "colour temperature in mired, +N or -N")
	flags.StringVar(&opts.state.xy, "xy", "", "colour coordinates x,y (signs on both axes change relatively)")
	flags.StringVar(&opts.state.alert, "alert", "", "select, lselect or none")
	flags.StringVar(&opts.state.effect, "effect", "", "colorloop or none")
	flags.IntVar(&opts.state.transition, "transition", -1, "transition time in multiples of 100ms")
	flags.BoolVar(&opts.clientKey, "clientkey", false, "also generate an entertainment client key when registering")
	flags.IntVar(&opts.limit, "limit", 20, "number of history entries")
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	_ = viper.BindPFlag("bridgeIp", flags.Lookup("bridge"))
	_ = viper.BindPFlag("username", flags.Lookup("username"))
	_ = viper.BindPFlag("logLevel", flags.Lookup("log-level"))

	if err := config.InitialiseConfig(*configFile); err != nil {
		fail(err)
	}
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		fail(err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if flags.NArg() == 0 {
		flags.Usage()
		os.Exit(2)
	}
	if err := run(ctx, cfg, logger, flags.Args(), opts); err != nil {
		stop()
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
	os.Exit(1)
}

func run(ctx context.Context, cfg config.Config, logger *log.Logger, args []string, opts options) error {
	command, args := args[0], args[1:]

	switch command {
	case "discover":
		return discover(ctx)
	case "register":
		return register(ctx, cfg, logger, args, opts.clientKey)
	case "history":
		return history(cfg, logger, args, opts.limit)
	}

	if cfg.BridgeIP == "" || cfg.Username == "" {
		return errors.New("bridgeIp and username must be configured, see huectl discover and huectl register")
	}
	bridge := hue.NewBridge(hue.NewClient(cfg.BridgeIP, cfg.Username, logger), logger)

	switch command {
	case "lights":
		return listLights(ctx, bridge)
	case "light":
		return showLight(ctx, bridge, args)
	case "set":
		return setLights(ctx, bridge, args, opts.state)
	case "rename":
		if len(args) != 2 {
			return errors.New("usage: huectl rename <id> <name>")
		}
		responses, err := bridge.SetLightAttributes(ctx, args[0], light.AttributeModifier{}.Name(args[1]))
		if err != nil {
			return err
		}
		printResponses(responses)
		return nil
	case "scan":
		responses, err := bridge.SearchNewLights(ctx, args...)
		if err != nil {
			return err
		}
		printResponses(responses)
		return nil
	case "new":
		return showNewLights(ctx, bridge)
	case "sensors":
		return listSensors(ctx, bridge)
	case "groups":
		return listGroups(ctx, bridge)
	case "scenes":
		return listScenes(ctx, bridge)
	case "schedules":
		return listSchedules(ctx, bridge)
	case "rules":
		return listRules(ctx, bridge)
	case "resourcelinks":
		return listResourcelinks(ctx, bridge)
	case "config":
		return showConfig(ctx, bridge)
	case "capabilities":
		return showCapabilities(ctx, bridge)
	case "daylight":
		return showDaylight(ctx, bridge, cfg)
	}
	return fmt.Errorf("unknown command %q", command)
}

func newTable(columns ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, headerStyle.Render(strings.Join(columns, "\t")))
	return w
}

func row(w *tabwriter.Writer, values ...any) {
	fmt.Fprintln(w, strings.Join(lo.Map(values, func(v any, _ int) string { return fmt.Sprint(v) }), "\t"))
}

func opt[T any](v *T) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

func printResponses(responses []response.Response) {
	if len(responses) == 0 {
		fmt.Println("nothing to change")
		return
	}
	for _, r := range responses {
		if r.Error != nil {
			fmt.Println(errorStyle.Render(r.Error.Error()))
			continue
		}
		for path, value := range r.Success {
			fmt.Println(okStyle.Render(fmt.Sprintf("%s = %v", path, value)))
		}
	}
}

func discover(ctx context.Context) error {
	bridges, err := hue.Discover(ctx, constants.DiscoveryURL)
	if err != nil {
		return err
	}
	w := newTable("ID", "ADDRESS")
	for _, b := range bridges {
		row(w, b.ID, b.InternalIPAddress)
	}
	return w.Flush()
}

func register(ctx context.Context, cfg config.Config, logger *log.Logger, args []string, clientKey bool) error {
	if len(args) != 1 {
		return errors.New("usage: huectl register <devicetype>")
	}
	if cfg.BridgeIP == "" {
		return errors.New("bridgeIp must be configured")
	}
	user, err := hue.RegisterUser(ctx, cfg.BridgeIP, args[0], clientKey, logger)
	if err != nil {
		return err
	}
	fmt.Println("username:", user.Username)
	if user.ClientKey != nil {
		fmt.Println("clientkey:", *user.ClientKey)
	}
	return nil
}

func listLights(ctx context.Context, bridge *hue.Bridge) error {
	lights, err := bridge.GetAllLights(ctx)
	if err != nil {
		return err
	}
	w := newTable("ID", "NAME", "TYPE", "ON", "BRI", "CT", "REACHABLE")
	for _, l := range lights {
		row(w, l.ID, l.Name, l.Kind, opt(l.State.On), opt(l.State.Brightness), opt(l.State.ColorTemperature), l.State.Reachable)
	}
	return w.Flush()
}

func showLight(ctx context.Context, bridge *hue.Bridge, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: huectl light <id>")
	}
	l, err := bridge.GetLight(ctx, args[0])
	if err != nil {
		return err
	}
	s := l.State
	w := newTable("ATTRIBUTE", "VALUE")
	row(w, "name", l.Name)
	row(w, "type", l.Kind)
	row(w, "model", l.ModelID)
	row(w, "product", opt(l.ProductName))
	row(w, "software", l.SoftwareVersion)
	row(w, "update", l.SoftwareUpdate.State)
	row(w, "on", opt(s.On))
	row(w, "bri", opt(s.Brightness))
	row(w, "hue", opt(s.Hue))
	row(w, "sat", opt(s.Saturation))
	row(w, "xy", opt(s.ColorSpaceCoordinates))
	row(w, "ct", opt(s.ColorTemperature))
	row(w, "colormode", opt(s.ColorMode))
	row(w, "reachable", s.Reachable)
	return w.Flush()
}

func setLights(ctx context.Context, bridge *hue.Bridge, ids []string, state stateArgs) error {
	if len(ids) == 0 {
		return errors.New("usage: huectl set <id>... [state flags]")
	}
	m, err := state.modifier()
	if err != nil {
		return err
	}
	if m.IsEmpty() {
		return errors.New("no state flags given")
	}
	if len(ids) == 1 {
		responses, err := bridge.SetLightState(ctx, ids[0], m)
		if err != nil {
			return err
		}
		printResponses(responses)
		return nil
	}
	outcomes := bridge.SetLightStates(ctx, ids, m)
	for _, id := range ids {
		if responses, ok := outcomes[id]; ok {
			printResponses(responses)
		}
	}
	return nil
}

func showNewLights(ctx context.Context, bridge *hue.Bridge) error {
	scan, err := bridge.GetNewLights(ctx)
	if err != nil {
		return err
	}
	switch scan.LastScan.Status {
	case models.LastScanActive:
		fmt.Println("scan in progress")
	case models.LastScanNone:
		fmt.Println("no scan since the bridge started")
	default:
		fmt.Println("last scan:", scan.LastScan.Time.Local().Format(time.DateTime))
	}
	w := newTable("ID", "NAME")
	for _, d := range scan.Devices {
		row(w, d.ID, d.Name)
	}
	return w.Flush()
}

func listSensors(ctx context.Context, bridge *hue.Bridge) error {
	sensors, err := bridge.GetAllSensors(ctx)
	if err != nil {
		return err
	}
	w := newTable("ID", "NAME", "TYPE", "ON", "BATTERY", "LAST UPDATED")
	for _, s := range sensors {
		lastUpdated := "-"
		if s.State.LastUpdated != nil {
			lastUpdated = wire.FormatDateTime(*s.State.LastUpdated)
		}
		row(w, s.ID, s.Name, s.TypeName, s.Config.On, opt(s.Config.Battery), lastUpdated)
	}
	return w.Flush()
}

func listGroups(ctx context.Context, bridge *hue.Bridge) error {
	groups, err := bridge.GetAllGroups(ctx)
	if err != nil {
		return err
	}
	w := newTable("ID", "NAME", "TYPE", "CLASS", "LIGHTS", "ANY ON")
	for _, g := range groups {
		row(w, g.ID, g.Name, g.Kind, opt(g.Class), strings.Join(g.Lights, ","), g.State.AnyOn)
	}
	return w.Flush()
}

func listScenes(ctx context.Context, bridge *hue.Bridge) error {
	scenes, err := bridge.GetAllScenes(ctx)
	if err != nil {
		return err
	}
	w := newTable("ID", "NAME", "TYPE", "GROUP", "LIGHTS")
	for _, s := range scenes {
		row(w, s.ID, s.Name, s.Kind, opt(s.Group), strings.Join(s.Lights, ","))
	}
	return w.Flush()
}

func listSchedules(ctx context.Context, bridge *hue.Bridge) error {
	schedules, err := bridge.GetAllSchedules(ctx)
	if err != nil {
		return err
	}
	w := newTable("ID", "NAME", "STATUS", "TIME", "COMMAND")
	for _, s := range schedules {
		row(w, s.ID, s.Name, s.Status, s.LocalTime, string(s.Command.Method)+" "+s.Command.Address)
	}
	return w.Flush()
}

func listRules(ctx context.Context, bridge *hue.Bridge) error {
	rules, err := bridge.GetAllRules(ctx)
	if err != nil {
		return err
	}
	w := newTable("ID", "NAME", "STATUS", "CONDITIONS", "ACTIONS", "TRIGGERED")
	for _, r := range rules {
		row(w, r.ID, r.Name, r.Status, len(r.Conditions), len(r.Actions), r.TimesTriggered)
	}
	return w.Flush()
}

func listResourcelinks(ctx context.Context, bridge *hue.Bridge) error {
	links, err := bridge.GetAllResourcelinks(ctx)
	if err != nil {
		return err
	}
	w := newTable("ID", "NAME", "CLASS", "LINKS")
	for _, l := range links {
		row(w, l.ID, l.Name, l.ClassID, strings.Join(l.Links, ","))
	}
	return w.Flush()
}

func showConfig(ctx context.Context, bridge *hue.Bridge) error {
	c, err := bridge.GetConfig(ctx)
	if err != nil {
		return err
	}
	w := newTable("ATTRIBUTE", "VALUE")
	row(w, "name", c.Name)
	row(w, "bridge id", c.BridgeID)
	row(w, "model", c.ModelID)
	row(w, "software", c.SoftwareVersion)
	row(w, "api", c.APIVersion)
	row(w, "update", c.SoftwareUpdate.State)
	row(w, "address", c.IPAddress)
	row(w, "gateway", c.Gateway)
	row(w, "dhcp", c.DHCP)
	row(w, "zigbee channel", c.ZigbeeChannel)
	row(w, "timezone", opt(c.Timezone))
	row(w, "time (UTC)", wire.FormatDateTime(c.CurrentTime))
	row(w, "portal", c.PortalConnection)
	row(w, "users", len(c.Whitelist))
	return w.Flush()
}

func showCapabilities(ctx context.Context, bridge *hue.Bridge) error {
	c, err := bridge.GetCapabilities(ctx)
	if err != nil {
		return err
	}
	w := newTable("RESOURCE", "AVAILABLE", "TOTAL")
	row(w, "lights", c.Lights.Available, c.Lights.Total)
	row(w, "sensors", c.Sensors.Available, c.Sensors.Total)
	row(w, "groups", c.Groups.Available, c.Groups.Total)
	row(w, "scenes", c.Scenes.Available, c.Scenes.Total)
	row(w, "scene light states", c.Scenes.LightStates.Available, c.Scenes.LightStates.Total)
	row(w, "schedules", c.Schedules.Available, c.Schedules.Total)
	row(w, "rules", c.Rules.Available, c.Rules.Total)
	row(w, "rule conditions", c.Rules.Conditions.Available, c.Rules.Conditions.Total)
	row(w, "rule actions", c.Rules.Actions.Available, c.Rules.Actions.Total)
	row(w, "resourcelinks", c.Resourcelinks.Available, c.Resourcelinks.Total)
	row(w, "streaming", c.Streaming.Available, c.Streaming.Total)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println(len(c.Timezones), "timezones supported")
	return nil
}

// showDaylight uses the offsets of the bridge's Daylight sensor, if any.
func showDaylight(ctx context.Context, bridge *hue.Bridge, cfg config.Config) error {
	lat, lng, err := cfg.LatLng()
	if err != nil {
		return err
	}
	sensors, err := bridge.GetAllSensors(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	var period daylight.Period
	if s, ok := lo.Find(sensors, func(s sensor.Sensor) bool { return s.TypeName == "Daylight" }); ok {
		period, err = daylight.ForSensor(s, lat, lng, now)
	} else {
		period, err = daylight.Window(lat, lng, now, 0, 0)
	}
	if err != nil {
		return err
	}

	fmt.Println("sunrise:", period.Sunrise.Local().Format(time.Kitchen))
	fmt.Println("sunset: ", period.Sunset.Local().Format(time.Kitchen))
	fmt.Println("daylight now:", daylight.IsDaylight(now, period))
	return nil
}

func history(cfg config.Config, logger *log.Logger, args []string, limit int) error {
	if len(args) != 1 {
		return errors.New("usage: huectl history <id>")
	}
	db, err := sql.Open("sqlite3", cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	repo, err := repos.NewLightRepo(logger, db)
	if err != nil {
		return err
	}
	records, err := repo.History(args[0], limit)
	if err != nil {
		return err
	}

	w := newTable("TIME", "NAME", "REACHABLE", "ON", "BRI", "CT", "XY")
	for _, r := range records {
		s := r.State
		row(w, r.ObservedAt.Local().Format(time.DateTime), r.Name, s.Reachable, opt(s.On), opt(s.Brightness), opt(s.ColorTemperature), opt(s.ColorSpaceCoordinates))
	}
	return w.Flush()
}
