package models

import (
	"time"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/dsl"
)

// SubscriptionRequest asks for event notifications to be delivered to Sink.
type SubscriptionRequest struct {
	Protocol               string
	Sink                   string
	SinkCredential         camara.Optional[SinkCredential]
	SubscriptionDetail     SubscriptionDetail
	SubscriptionExpireTime camara.Optional[camara.DateTime]
	SubscriptionMaxEvents  camara.Optional[int64]
	Extra                  camara.Extras
}

// NewSubscriptionRequest returns an HTTP subscription delivering to sink.
func NewSubscriptionRequest(sink string, detail SubscriptionDetail) SubscriptionRequest {
	return SubscriptionRequest{Protocol: "HTTP", Sink: sink, SubscriptionDetail: detail}
}

func (s SubscriptionRequest) WithSinkCredential(v SinkCredential) SubscriptionRequest {
	s.SinkCredential = camara.Some(v)
	return s
}

func (s SubscriptionRequest) WithSubscriptionExpireTime(v time.Time) SubscriptionRequest {
	s.SubscriptionExpireTime = camara.Some(camara.NewDateTime(v))
	return s
}

func (s SubscriptionRequest) WithSubscriptionMaxEvents(v int64) SubscriptionRequest {
	s.SubscriptionMaxEvents = camara.Some(v)
	return s
}

func subscriptionRequestSchema(r *camara.Registry) camara.Schema[SubscriptionRequest] {
	return dsl.Model[SubscriptionRequest](NameSubscriptionRequest).
		Field(dsl.Req("protocol", dsl.String().MinLen(1), func(m *SubscriptionRequest) *string { return &m.Protocol })).
		Field(dsl.Req("sink", dsl.String().MinLen(1), func(m *SubscriptionRequest) *string { return &m.Sink })).
		Field(dsl.Opt("sinkCredential", dsl.Ref[SinkCredential](r, NameSinkCredential), func(m *SubscriptionRequest) *camara.Optional[SinkCredential] { return &m.SinkCredential })).
		Field(dsl.Req("subscriptionDetail", dsl.Ref[SubscriptionDetail](r, NameSubscriptionDetail), func(m *SubscriptionRequest) *SubscriptionDetail { return &m.SubscriptionDetail })).
		Field(dsl.Opt("subscriptionExpireTime", dsl.DateTime(), func(m *SubscriptionRequest) *camara.Optional[camara.DateTime] { return &m.SubscriptionExpireTime })).
		Field(dsl.Opt("subscriptionMaxEvents", dsl.Int().Min(1), func(m *SubscriptionRequest) *camara.Optional[int64] { return &m.SubscriptionMaxEvents })).
		Unknown(func(m *SubscriptionRequest) *camara.Extras { return &m.Extra }).
		MustBuild()
}
