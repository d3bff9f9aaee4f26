package models

import (
	"context"
	"errors"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/dsl"
)

// phoneNumberPattern is the E.164 form with a leading '+'.
const phoneNumberPattern = `^\+[1-9][0-9]{4,14}$`

func phoneNumberSchema() *dsl.StringSchema { return dsl.String().Pattern(phoneNumberPattern) }

// DeviceIpv4Addr identifies a device by its public IPv4 address, together
// with either the private address or the public port.
type DeviceIpv4Addr struct {
	PublicAddress  string
	PrivateAddress camara.Optional[string]
	PublicPort     camara.Optional[int64]
	Extra          camara.Extras
}

func (d DeviceIpv4Addr) WithPublicAddress(v string) DeviceIpv4Addr {
	d.PublicAddress = v
	return d
}

func (d DeviceIpv4Addr) WithPrivateAddress(v string) DeviceIpv4Addr {
	d.PrivateAddress = camara.Some(v)
	return d
}

func (d DeviceIpv4Addr) WithPublicPort(v int64) DeviceIpv4Addr {
	d.PublicPort = camara.Some(v)
	return d
}

func deviceIpv4AddrSchema() camara.Schema[DeviceIpv4Addr] {
	return dsl.Model[DeviceIpv4Addr](NameDeviceIpv4Addr).
		Field(dsl.Req("publicAddress", dsl.String().MinLen(7).MaxLen(15), func(m *DeviceIpv4Addr) *string { return &m.PublicAddress })).
		Field(dsl.Opt("privateAddress", dsl.String().MinLen(7).MaxLen(15), func(m *DeviceIpv4Addr) *camara.Optional[string] { return &m.PrivateAddress })).
		Field(dsl.Opt("publicPort", portSchema(), func(m *DeviceIpv4Addr) *camara.Optional[int64] { return &m.PublicPort })).
		Unknown(func(m *DeviceIpv4Addr) *camara.Extras { return &m.Extra }).
		MustBuild()
}

// Device identifies the end-user equipment. At least one identifier is set.
type Device struct {
	PhoneNumber             camara.Optional[string]
	NetworkAccessIdentifier camara.Optional[string]
	Ipv4Address             camara.Optional[DeviceIpv4Addr]
	Ipv6Address             camara.Optional[string]
	Extra                   camara.Extras
}

func (d Device) WithPhoneNumber(v string) Device {
	d.PhoneNumber = camara.Some(v)
	return d
}

func (d Device) WithNetworkAccessIdentifier(v string) Device {
	d.NetworkAccessIdentifier = camara.Some(v)
	return d
}

func (d Device) WithIpv4Address(v DeviceIpv4Addr) Device {
	d.Ipv4Address = camara.Some(v)
	return d
}

func (d Device) WithIpv6Address(v string) Device {
	d.Ipv6Address = camara.Some(v)
	return d
}

var errNoDeviceIdentifier = errors.New("at least one device identifier is required")

func deviceSchema(r *camara.Registry) camara.Schema[Device] {
	return dsl.Model[Device](NameDevice).
		Field(dsl.Opt("phoneNumber", phoneNumberSchema(), func(m *Device) *camara.Optional[string] { return &m.PhoneNumber })).
		Field(dsl.Opt("networkAccessIdentifier", dsl.String(), func(m *Device) *camara.Optional[string] { return &m.NetworkAccessIdentifier })).
		Field(dsl.Opt("ipv4Address", dsl.Ref[DeviceIpv4Addr](r, NameDeviceIpv4Addr), func(m *Device) *camara.Optional[DeviceIpv4Addr] { return &m.Ipv4Address })).
		Field(dsl.Opt("ipv6Address", dsl.String(), func(m *Device) *camara.Optional[string] { return &m.Ipv6Address })).
		Unknown(func(m *Device) *camara.Extras { return &m.Extra }).
		Refine("identifier", func(_ context.Context, m Device) error {
			if m.PhoneNumber.IsSet() || m.NetworkAccessIdentifier.IsSet() || m.Ipv4Address.IsSet() || m.Ipv6Address.IsSet() {
				return nil
			}
			return errNoDeviceIdentifier
		}).
		MustBuild()
}

// SubscriptionDetail names the event type of a subscription and the device
// it concerns.
type SubscriptionDetail struct {
	Device camara.Optional[Device]
	Type   string
	Extra  camara.Extras
}

func (s SubscriptionDetail) WithDevice(v Device) SubscriptionDetail {
	s.Device = camara.Some(v)
	return s
}

func (s SubscriptionDetail) WithType(v string) SubscriptionDetail {
	s.Type = v
	return s
}

func subscriptionDetailSchema(r *camara.Registry) camara.Schema[SubscriptionDetail] {
	return dsl.Model[SubscriptionDetail](NameSubscriptionDetail).
		Field(dsl.Opt("device", dsl.Ref[Device](r, NameDevice), func(m *SubscriptionDetail) *camara.Optional[Device] { return &m.Device })).
		Field(dsl.Req("type", dsl.String().MinLen(1), func(m *SubscriptionDetail) *string { return &m.Type })).
		Unknown(func(m *SubscriptionDetail) *camara.Extras { return &m.Extra }).
		MustBuild()
}
