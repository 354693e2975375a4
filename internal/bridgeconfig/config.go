package bridgeconfig

import (
	"encoding/json"
	"net/netip"
	"time"

	"github.com/wheelibin/huelib/internal/wire"
)

// Config is the configuration of the bridge itself (GET /config).
type Config struct {
	Name            string
	SoftwareUpdate  SoftwareUpdate
	SoftwareVersion string
	APIVersion      string
	// whether the link button was pressed within the last 30 seconds
	LinkButton       bool
	IPAddress        netip.Addr
	MACAddress       string
	Netmask          string
	Gateway          netip.Addr
	DHCP             bool
	PortalServices   bool
	PortalConnection ServiceStatus
	PortalState      PortalState
	InternetServices InternetServices
	CurrentTime      time.Time
	LocalTime        *time.Time
	// Olson id, e.g. Europe/Amsterdam
	Timezone *string
	// 11, 15, 20, 25, or 0 when factory new
	ZigbeeChannel uint8
	ModelID       string
	BridgeID      string
	FactoryNew    bool
	// id of the bridge a backup was restored from
	ReplacesBridgeID *string
	DatastoreVersion string
	StarterkitID     string
	Backup           Backup
	Whitelist        Whitelist
}

func (c *Config) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("name", &c.Name)
	o.Required("swupdate2", &c.SoftwareUpdate)
	o.Required("swversion", &c.SoftwareVersion)
	o.Required("apiversion", &c.APIVersion)
	o.Required("linkbutton", &c.LinkButton)
	o.Required("ipaddress", &c.IPAddress)
	o.Required("mac", &c.MACAddress)
	o.Required("netmask", &c.Netmask)
	o.Required("gateway", &c.Gateway)
	o.Required("dhcp", &c.DHCP)
	o.Required("portalservices", &c.PortalServices)
	o.Required("portalconnection", &c.PortalConnection)
	o.Required("portalstate", &c.PortalState)
	o.Required("internetservices", &c.InternetServices)
	o.DateTime("UTC", &c.CurrentTime)
	o.OptionalDateTime("localtime", &c.LocalTime)
	o.OptionalString("timezone", &c.Timezone)
	o.Required("zigbeechannel", &c.ZigbeeChannel)
	o.Required("modelid", &c.ModelID)
	o.Required("bridgeid", &c.BridgeID)
	o.Required("factorynew", &c.FactoryNew)
	o.Optional("replacesbridgeid", &c.ReplacesBridgeID)
	o.Required("datastoreversion", &c.DatastoreVersion)
	o.Required("starterkitid", &c.StarterkitID)
	o.Required("backup", &c.Backup)
	o.Required("whitelist", &c.Whitelist)
	return o.Err()
}

type SoftwareUpdate struct {
	State SoftwareUpdateState
	// set to true to make the bridge check for updates
	Check       bool
	AutoInstall AutoInstall
	LastChange  *time.Time
	LastInstall *time.Time
}

func (u *SoftwareUpdate) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("state", &u.State)
	o.Required("checkforupdate", &u.Check)
	o.Required("autoinstall", &u.AutoInstall)
	o.OptionalDateTime("lastchange", &u.LastChange)
	o.OptionalDateTime("lastinstall", &u.LastInstall)
	return o.Err()
}

type SoftwareUpdateState string

const (
	SoftwareUpdateUnknown           SoftwareUpdateState = "unknown"
	SoftwareUpdateNoUpdates         SoftwareUpdateState = "noupdates"
	SoftwareUpdateTransferring      SoftwareUpdateState = "transferring"
	SoftwareUpdateAnyReadyToInstall SoftwareUpdateState = "anyreadytoinstall"
	SoftwareUpdateAllReadyToInstall SoftwareUpdateState = "allreadytoinstall"
	SoftwareUpdateInstalling        SoftwareUpdateState = "installing"
)

var SoftwareUpdateStates = []SoftwareUpdateState{
	SoftwareUpdateUnknown,
	SoftwareUpdateNoUpdates,
	SoftwareUpdateTransferring,
	SoftwareUpdateAnyReadyToInstall,
	SoftwareUpdateAllReadyToInstall,
	SoftwareUpdateInstalling,
}

func (s *SoftwareUpdateState) UnmarshalJSON(data []byte) error {
	return wire.DecodeToken(data, s, SoftwareUpdateStates...)
}

type AutoInstall struct {
	On bool
	// time of day, date part is zero
	UpdateTime *time.Time
}

func (a *AutoInstall) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("on", &a.On)
	o.OptionalClock("updatetime", &a.UpdateTime)
	return o.Err()
}

type PortalState struct {
	SignedOn      bool
	Incoming      bool
	Outgoing      bool
	Communication ServiceStatus
}

func (p *PortalState) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("signedon", &p.SignedOn)
	o.Required("incoming", &p.Incoming)
	o.Required("outgoing", &p.Outgoing)
	o.Required("communication", &p.Communication)
	return o.Err()
}

type InternetServices struct {
	Internet       ServiceStatus
	RemoteAccess   ServiceStatus
	Time           ServiceStatus
	SoftwareUpdate ServiceStatus
}

func (s *InternetServices) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("internet", &s.Internet)
	o.Required("remoteaccess", &s.RemoteAccess)
	o.Required("time", &s.Time)
	o.Required("swupdate", &s.SoftwareUpdate)
	return o.Err()
}

type ServiceStatus string

const (
	ServiceConnected    ServiceStatus = "connected"
	ServiceDisconnected ServiceStatus = "disconnected"
)

func (s *ServiceStatus) UnmarshalJSON(data []byte) error {
	return wire.DecodeToken(data, s, ServiceConnected, ServiceDisconnected)
}

type Backup struct {
	Status BackupStatus
	// last error, cleared when a backup import or export starts
	Error BackupError
}

func (b *Backup) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("status", &b.Status)
	o.Required("errorcode", &b.Error)
	return o.Err()
}

type BackupStatus string

const (
	BackupIdle              BackupStatus = "idle"
	BackupStartMigration    BackupStatus = "startmigration"
	BackupFilereadyDisabled BackupStatus = "fileready_disabled"
	BackupPrepareRestore    BackupStatus = "prepare_restore"
	BackupRestoring         BackupStatus = "restoring"
)

var BackupStatuses = []BackupStatus{
	BackupIdle,
	BackupStartMigration,
	BackupFilereadyDisabled,
	BackupPrepareRestore,
	BackupRestoring,
}

func (s *BackupStatus) UnmarshalJSON(data []byte) error {
	return wire.DecodeToken(data, s, BackupStatuses...)
}

// BackupError is sent as an integer code.
type BackupError uint8

const (
	BackupErrorNone         BackupError = 0
	BackupErrorExportFailed BackupError = 1
	BackupErrorImportFailed BackupError = 2
)

func (e *BackupError) UnmarshalJSON(data []byte) error {
	return wire.DecodeCode(data, e, BackupErrorNone, BackupErrorExportFailed, BackupErrorImportFailed)
}

// User is a whitelisted application key.
type User struct {
	// the application key itself
	ID          string
	Name        string
	LastUseDate time.Time
	CreateDate  time.Time
}

func (u *User) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("name", &u.Name)
	o.DateTime("last use date", &u.LastUseDate)
	o.DateTime("create date", &u.CreateDate)
	return o.Err()
}

// Whitelist arrives as an object keyed by application key.
type Whitelist []User

func (w *Whitelist) UnmarshalJSON(data []byte) error {
	users, err := wire.DecodeCollection(data, func(u *User, id string) {
		u.ID = id
	})
	if err != nil {
		return err
	}
	*w = users
	return nil
}

func Decode(data []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
