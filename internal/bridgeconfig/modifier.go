package bridgeconfig

import (
	"encoding/json"
	"net/netip"
	"time"

	"github.com/wheelibin/huelib/internal/wire"
)

// Modifier changes the bridge configuration (PUT /config).
type Modifier struct {
	fields struct {
		Name          *string     `json:"name,omitempty"`
		IPAddress     *netip.Addr `json:"ipaddress,omitempty"`
		Netmask       *string     `json:"netmask,omitempty"`
		Gateway       *netip.Addr `json:"gateway,omitempty"`
		DHCP          *bool       `json:"dhcp,omitempty"`
		ProxyPort     *uint16     `json:"proxyport,omitempty"`
		ProxyAddress  *string     `json:"proxyaddress,omitempty"`
		LinkButton    *bool       `json:"linkbutton,omitempty"`
		Touchlink     *bool       `json:"touchlink,omitempty"`
		ZigbeeChannel *uint8      `json:"zigbeechannel,omitempty"`
		CurrentTime   *string     `json:"UTC,omitempty"`
		Timezone      *string     `json:"timezone,omitempty"`
	}
}

func (m Modifier) Name(value string) Modifier {
	m.fields.Name = &value
	return m
}

func (m Modifier) IPAddress(value netip.Addr) Modifier {
	m.fields.IPAddress = &value
	return m
}

func (m Modifier) Netmask(value string) Modifier {
	m.fields.Netmask = &value
	return m
}

func (m Modifier) Gateway(value netip.Addr) Modifier {
	m.fields.Gateway = &value
	return m
}

func (m Modifier) DHCP(value bool) Modifier {
	m.fields.DHCP = &value
	return m
}

// ProxyPort sets the proxy port, 0 disables the proxy.
func (m Modifier) ProxyPort(value uint16) Modifier {
	m.fields.ProxyPort = &value
	return m
}

// ProxyAddress sets the proxy address. A nil address disables the proxy.
func (m Modifier) ProxyAddress(value *netip.Addr) Modifier {
	address := wire.None
	if value != nil {
		address = value.String()
	}
	m.fields.ProxyAddress = &address
	return m
}

// LinkButton is only writable through the portal.
func (m Modifier) LinkButton(value bool) Modifier {
	m.fields.LinkButton = &value
	return m
}

// Touchlink adds the closest lamp to the ZigBee network. It shows up in the
// next search for new lights.
func (m Modifier) Touchlink() Modifier {
	touchlink := true
	m.fields.Touchlink = &touchlink
	return m
}

// ZigbeeChannel accepts 11, 15, 20 or 25.
func (m Modifier) ZigbeeChannel(value uint8) Modifier {
	m.fields.ZigbeeChannel = &value
	return m
}

func (m Modifier) CurrentTime(value time.Time) Modifier {
	utc := wire.FormatDateTime(value.UTC())
	m.fields.CurrentTime = &utc
	return m
}

func (m Modifier) Timezone(value string) Modifier {
	m.fields.Timezone = &value
	return m
}

func (m Modifier) IsEmpty() bool {
	return wire.IsEmpty(m)
}

func (m Modifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.fields)
}
