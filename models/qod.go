package models

import (
	"context"
	"errors"
	"time"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/dsl"
	"github.com/google/uuid"
)

// ApplicationServer is the server a QoD session reaches. At least one
// address is set.
type ApplicationServer struct {
	Ipv4Address camara.Optional[string]
	Ipv6Address camara.Optional[string]
	Extra       camara.Extras
}

func (a ApplicationServer) WithIpv4Address(v string) ApplicationServer {
	a.Ipv4Address = camara.Some(v)
	return a
}

func (a ApplicationServer) WithIpv6Address(v string) ApplicationServer {
	a.Ipv6Address = camara.Some(v)
	return a
}

func applicationServerSchema() camara.Schema[ApplicationServer] {
	return dsl.Model[ApplicationServer](NameApplicationServer).
		Field(dsl.Opt("ipv4Address", dsl.String().MinLen(7), func(m *ApplicationServer) *camara.Optional[string] { return &m.Ipv4Address })).
		Field(dsl.Opt("ipv6Address", dsl.String().MinLen(2), func(m *ApplicationServer) *camara.Optional[string] { return &m.Ipv6Address })).
		Unknown(func(m *ApplicationServer) *camara.Extras { return &m.Extra }).
		Refine("address", func(_ context.Context, m ApplicationServer) error {
			if !m.Ipv4Address.IsSet() && !m.Ipv6Address.IsSet() {
				return errors.New("one of ipv4Address or ipv6Address is required")
			}
			return nil
		}).
		MustBuild()
}

// CreateSession requests a QoD session for a device.
type CreateSession struct {
	Device                 camara.Optional[Device]
	ApplicationServer      ApplicationServer
	DevicePorts            camara.Optional[ApplicationServerPorts]
	ApplicationServerPorts camara.Optional[ApplicationServerPorts]
	QosProfile             string
	Duration               int64
	Sink                   camara.Optional[string]
	SinkCredential         camara.Optional[SinkCredential]
	Extra                  camara.Extras
}

// NewCreateSession returns a request for profile on server lasting duration seconds.
func NewCreateSession(server ApplicationServer, profile string, duration int64) CreateSession {
	return CreateSession{ApplicationServer: server, QosProfile: profile, Duration: duration}
}

func (c CreateSession) WithDevice(v Device) CreateSession {
	c.Device = camara.Some(v)
	return c
}

func (c CreateSession) WithDevicePorts(v ApplicationServerPorts) CreateSession {
	c.DevicePorts = camara.Some(v)
	return c
}

func (c CreateSession) WithApplicationServerPorts(v ApplicationServerPorts) CreateSession {
	c.ApplicationServerPorts = camara.Some(v)
	return c
}

func (c CreateSession) WithSink(v string) CreateSession {
	c.Sink = camara.Some(v)
	return c
}

func (c CreateSession) WithSinkCredential(v SinkCredential) CreateSession {
	c.SinkCredential = camara.Some(v)
	return c
}

func qosProfileSchema() *dsl.StringSchema {
	return dsl.String().MinLen(3).MaxLen(256).Pattern(`^[a-zA-Z0-9_.-]+$`)
}

func createSessionSchema(r *camara.Registry) camara.Schema[CreateSession] {
	return dsl.Model[CreateSession](NameCreateSession).
		Field(dsl.Opt("device", dsl.Ref[Device](r, NameDevice), func(m *CreateSession) *camara.Optional[Device] { return &m.Device })).
		Field(dsl.Req("applicationServer", dsl.Ref[ApplicationServer](r, NameApplicationServer), func(m *CreateSession) *ApplicationServer { return &m.ApplicationServer })).
		Field(dsl.Opt("devicePorts", dsl.Ref[ApplicationServerPorts](r, NameApplicationServerPorts), func(m *CreateSession) *camara.Optional[ApplicationServerPorts] { return &m.DevicePorts })).
		Field(dsl.Opt("applicationServerPorts", dsl.Ref[ApplicationServerPorts](r, NameApplicationServerPorts), func(m *CreateSession) *camara.Optional[ApplicationServerPorts] { return &m.ApplicationServerPorts })).
		Field(dsl.Req("qosProfile", qosProfileSchema(), func(m *CreateSession) *string { return &m.QosProfile })).
		Field(dsl.Req("duration", dsl.Int().Min(1), func(m *CreateSession) *int64 { return &m.Duration })).
		Field(dsl.Opt("sink", dsl.String(), func(m *CreateSession) *camara.Optional[string] { return &m.Sink })).
		Field(dsl.Opt("sinkCredential", dsl.Ref[SinkCredential](r, NameSinkCredential), func(m *CreateSession) *camara.Optional[SinkCredential] { return &m.SinkCredential })).
		Unknown(func(m *CreateSession) *camara.Extras { return &m.Extra }).
		MustBuild()
}

// SessionInfo describes an existing QoD session.
type SessionInfo struct {
	SessionID              uuid.UUID
	Device                 camara.Optional[Device]
	ApplicationServer      ApplicationServer
	DevicePorts            camara.Optional[ApplicationServerPorts]
	ApplicationServerPorts camara.Optional[ApplicationServerPorts]
	QosProfile             string
	Duration               int64
	StartedAt              camara.Optional[camara.DateTime]
	ExpiresAt              camara.Optional[camara.DateTime]
	QosStatus              QosStatus
	StatusInfo             camara.Optional[StatusInfo]
	Sink                   camara.Optional[string]
	SinkCredential         camara.Optional[SinkCredential]
	Extra                  camara.Extras
}

func (s SessionInfo) WithQosStatus(v QosStatus) SessionInfo {
	s.QosStatus = v
	return s
}

func (s SessionInfo) WithStatusInfo(v StatusInfo) SessionInfo {
	s.StatusInfo = camara.Some(v)
	return s
}

func (s SessionInfo) WithStartedAt(v time.Time) SessionInfo {
	s.StartedAt = camara.Some(camara.NewDateTime(v))
	return s
}

func (s SessionInfo) WithExpiresAt(v time.Time) SessionInfo {
	s.ExpiresAt = camara.Some(camara.NewDateTime(v))
	return s
}

func (s SessionInfo) WithDuration(v int64) SessionInfo {
	s.Duration = v
	return s
}

func sessionInfoSchema(r *camara.Registry) camara.Schema[SessionInfo] {
	return dsl.Model[SessionInfo](NameSessionInfo).
		Field(dsl.Req("sessionId", dsl.UUID(), func(m *SessionInfo) *uuid.UUID { return &m.SessionID }).As("SessionID")).
		Field(dsl.Opt("device", dsl.Ref[Device](r, NameDevice), func(m *SessionInfo) *camara.Optional[Device] { return &m.Device })).
		Field(dsl.Req("applicationServer", dsl.Ref[ApplicationServer](r, NameApplicationServer), func(m *SessionInfo) *ApplicationServer { return &m.ApplicationServer })).
		Field(dsl.Opt("devicePorts", dsl.Ref[ApplicationServerPorts](r, NameApplicationServerPorts), func(m *SessionInfo) *camara.Optional[ApplicationServerPorts] { return &m.DevicePorts })).
		Field(dsl.Opt("applicationServerPorts", dsl.Ref[ApplicationServerPorts](r, NameApplicationServerPorts), func(m *SessionInfo) *camara.Optional[ApplicationServerPorts] { return &m.ApplicationServerPorts })).
		Field(dsl.Req("qosProfile", qosProfileSchema(), func(m *SessionInfo) *string { return &m.QosProfile })).
		Field(dsl.Req("duration", dsl.Int().Min(1), func(m *SessionInfo) *int64 { return &m.Duration })).
		Field(dsl.Opt("startedAt", dsl.DateTime(), func(m *SessionInfo) *camara.Optional[camara.DateTime] { return &m.StartedAt })).
		Field(dsl.Opt("expiresAt", dsl.DateTime(), func(m *SessionInfo) *camara.Optional[camara.DateTime] { return &m.ExpiresAt })).
		Field(dsl.Req("qosStatus", qosStatusEnum, func(m *SessionInfo) *QosStatus { return &m.QosStatus })).
		Field(dsl.Opt("statusInfo", statusInfoEnum, func(m *SessionInfo) *camara.Optional[StatusInfo] { return &m.StatusInfo })).
		Field(dsl.Opt("sink", dsl.String(), func(m *SessionInfo) *camara.Optional[string] { return &m.Sink })).
		Field(dsl.Opt("sinkCredential", dsl.Ref[SinkCredential](r, NameSinkCredential), func(m *SessionInfo) *camara.Optional[SinkCredential] { return &m.SinkCredential })).
		Unknown(func(m *SessionInfo) *camara.Extras { return &m.Extra }).
		MustBuild()
}
