package constants

import "time"

// the bridge handles about ten light commands per second
const BridgeRequestInterval = 100 * time.Millisecond

const DefaultPollInterval = time.Minute
const DefaultHTTPTimeout = 10 * time.Second

const DiscoveryURL = "https://discovery.meethue.com"

// bridge events
const EventBatchTypeUpdate = "update"

const EventTypeZigbeeConnectivity = "zigbee_connectivity"
const EventTypeLight = "light"

const DefaultTopicPrefix = "huelib"
