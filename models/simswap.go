package models

import (
	"time"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/dsl"
)

// SimSwapInfo reports the latest SIM change of a line. LatestSimChange is
// null when no swap happened within the monitored period.
type SimSwapInfo struct {
	LatestSimChange camara.Optional[camara.DateTime]
	MonitoredPeriod camara.Optional[int64]
	Extra           camara.Extras
}

func (s SimSwapInfo) WithLatestSimChange(v time.Time) SimSwapInfo {
	s.LatestSimChange = camara.Some(camara.NewDateTime(v))
	return s
}

func (s SimSwapInfo) WithMonitoredPeriod(v int64) SimSwapInfo {
	s.MonitoredPeriod = camara.Some(v)
	return s
}

func simSwapInfoSchema() camara.Schema[SimSwapInfo] {
	return dsl.Model[SimSwapInfo](NameSimSwapInfo).
		Field(dsl.Opt("latestSimChange", dsl.DateTime(), func(m *SimSwapInfo) *camara.Optional[camara.DateTime] { return &m.LatestSimChange }).Required().Nullable()).
		Field(dsl.Opt("monitoredPeriod", dsl.Int().Min(0), func(m *SimSwapInfo) *camara.Optional[int64] { return &m.MonitoredPeriod })).
		Unknown(func(m *SimSwapInfo) *camara.Extras { return &m.Extra }).
		MustBuild()
}

// CheckSimSwapInfo reports whether a SIM swap happened within the requested period.
type CheckSimSwapInfo struct {
	Swapped bool
	Extra   camara.Extras
}

func (c CheckSimSwapInfo) WithSwapped(v bool) CheckSimSwapInfo {
	c.Swapped = v
	return c
}

func checkSimSwapInfoSchema() camara.Schema[CheckSimSwapInfo] {
	return dsl.Model[CheckSimSwapInfo](NameCheckSimSwapInfo).
		Field(dsl.Req("swapped", dsl.Bool(), func(m *CheckSimSwapInfo) *bool { return &m.Swapped })).
		Unknown(func(m *CheckSimSwapInfo) *camara.Extras { return &m.Extra }).
		MustBuild()
}

// CreateSimSwapDate asks for the latest SIM swap date of PhoneNumber. The
// phone number may be omitted when the access token identifies the line.
type CreateSimSwapDate struct {
	PhoneNumber camara.Optional[string]
	Extra       camara.Extras
}

func (c CreateSimSwapDate) WithPhoneNumber(v string) CreateSimSwapDate {
	c.PhoneNumber = camara.Some(v)
	return c
}

func createSimSwapDateSchema() camara.Schema[CreateSimSwapDate] {
	return dsl.Model[CreateSimSwapDate](NameCreateSimSwapDate).
		Field(dsl.Opt("phoneNumber", phoneNumberSchema(), func(m *CreateSimSwapDate) *camara.Optional[string] { return &m.PhoneNumber })).
		Unknown(func(m *CreateSimSwapDate) *camara.Extras { return &m.Extra }).
		MustBuild()
}

// CreateCheckSimSwap asks whether PhoneNumber had a SIM swap in the last
// MaxAge hours.
type CreateCheckSimSwap struct {
	PhoneNumber camara.Optional[string]
	MaxAge      camara.Optional[int64]
	Extra       camara.Extras
}

func (c CreateCheckSimSwap) WithPhoneNumber(v string) CreateCheckSimSwap {
	c.PhoneNumber = camara.Some(v)
	return c
}

func (c CreateCheckSimSwap) WithMaxAge(v int64) CreateCheckSimSwap {
	c.MaxAge = camara.Some(v)
	return c
}

func createCheckSimSwapSchema() camara.Schema[CreateCheckSimSwap] {
	return dsl.Model[CreateCheckSimSwap](NameCreateCheckSimSwap).
		Field(dsl.Opt("phoneNumber", phoneNumberSchema(), func(m *CreateCheckSimSwap) *camara.Optional[string] { return &m.PhoneNumber })).
		Field(dsl.Opt("maxAge", dsl.Int().Min(1).Max(2400), func(m *CreateCheckSimSwap) *camara.Optional[int64] { return &m.MaxAge })).
		Unknown(func(m *CreateCheckSimSwap) *camara.Extras { return &m.Extra }).
		MustBuild()
}
