// Package address holds the transport address records of providers and their
// serialized form, as stored in GlobalDiscoveryEntry.Address.
package address

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"

	"capability-typing/typing"
)

// TypeCollection is the interface definition collection of the address records.
const TypeCollection = "joynr.system.RoutingTypes"

var (
	ErrUnknownAddressType = errors.New("unknown address type")
	ErrMissingTypeName    = errors.New("serialized address carries no type name")
)

// Address is a transport address of a provider.
type Address interface {
	typing.Typed
	isAddress()
}

// MqttAddress reaches a provider through an MQTT broker.
type MqttAddress struct {
	BrokerURI string `json:"brokerUri"`
	Topic     string `json:"topic"`
}

func (MqttAddress) TypeName() string { return TypeCollection + ".MqttAddress" }
func (MqttAddress) isAddress()        {}

// WebSocketProtocol is the scheme of a WebSocketAddress.
type WebSocketProtocol string

const (
	WebSocketProtocolWS  WebSocketProtocol = "WS"
	WebSocketProtocolWSS WebSocketProtocol = "WSS"
)

// WebSocketAddress reaches a provider through a websocket server.
type WebSocketAddress struct {
	Protocol WebSocketProtocol `json:"protocol"`
	Host     string            `json:"host"`
	Port     int32             `json:"port"`
	Path     string            `json:"path"`
}

func (WebSocketAddress) TypeName() string { return TypeCollection + ".WebSocketAddress" }
func (WebSocketAddress) isAddress()        {}

// UdsAddress reaches a provider through a unix domain socket.
type UdsAddress struct {
	Path string `json:"path"`
}

func (UdsAddress) TypeName() string { return TypeCollection + ".UdsAddress" }
func (UdsAddress) isAddress()        {}

var factories = map[string]func() Address{
	MqttAddress{}.TypeName():      func() Address { return &MqttAddress{} },
	WebSocketAddress{}.TypeName(): func() Address { return &WebSocketAddress{} },
	UdsAddress{}.TypeName():       func() Address { return &UdsAddress{} },
}

// Serialize encodes addr as canonical JSON (RFC 8785) carrying "_typeName".
// Equal addresses always serialize to equal strings.
func Serialize(addr Address) (string, error) {
	if addr == nil {
		return "", fmt.Errorf("%w: nil", ErrUnknownAddressType)
	}
	if rv := reflect.ValueOf(addr); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", fmt.Errorf("%w: nil %T", ErrUnknownAddressType, addr)
	}

	data, err := json.Marshal(addr)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", addr.TypeName(), err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", addr.TypeName(), err)
	}

	fields[typing.TypeNameKey] = addr.TypeName()

	if data, err = json.Marshal(fields); err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", addr.TypeName(), err)
	}

	canonical, err := jsoncanonicalizer.Transform(data)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize %s: %w", addr.TypeName(), err)
	}

	return string(canonical), nil
}

// Deserialize decodes an address produced by Serialize. The returned value is
// a pointer to the concrete address record.
func Deserialize(s string) (Address, error) {
	var probe struct {
		TypeName string `json:"_typeName"`
	}

	if err := json.Unmarshal([]byte(s), &probe); err != nil {
		return nil, fmt.Errorf("failed to parse address: %w", err)
	}

	if probe.TypeName == "" {
		return nil, ErrMissingTypeName
	}

	newAddr, ok := factories[probe.TypeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAddressType, probe.TypeName)
	}

	addr := newAddr()
	if err := json.Unmarshal([]byte(s), addr); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", probe.TypeName, err)
	}

	return addr, nil
}
