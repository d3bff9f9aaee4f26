package models

import (
	"context"
	"fmt"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/dsl"
)

func portSchema() *dsl.IntSchema { return dsl.Int().Min(0).Max(65535) }

// PortRange is an inclusive range of TCP/UDP ports.
type PortRange struct {
	From  int64
	To    int64
	Extra camara.Extras
}

func (p PortRange) WithFrom(v int64) PortRange {
	p.From = v
	return p
}

func (p PortRange) WithTo(v int64) PortRange {
	p.To = v
	return p
}

func portRangeSchema() camara.Schema[PortRange] {
	return dsl.Model[PortRange](NamePortRange).
		Field(dsl.Req("from", portSchema(), func(m *PortRange) *int64 { return &m.From })).
		Field(dsl.Req("to", portSchema(), func(m *PortRange) *int64 { return &m.To })).
		Unknown(func(m *PortRange) *camara.Extras { return &m.Extra }).
		Refine("from<=to", func(_ context.Context, m PortRange) error {
			if m.From > m.To {
				return fmt.Errorf("from (%d) is greater than to (%d)", m.From, m.To)
			}
			return nil
		}).
		MustBuild()
}

// ApplicationServerPorts lists ports as ranges and single values. At least
// one of the two must be present.
type ApplicationServerPorts struct {
	Ranges camara.Optional[[]PortRange]
	Ports  camara.Optional[[]int64]
	Extra  camara.Extras
}

func (a ApplicationServerPorts) WithRanges(v ...PortRange) ApplicationServerPorts {
	a.Ranges = camara.Some(append([]PortRange(nil), v...))
	return a
}

func (a ApplicationServerPorts) WithPorts(v ...int64) ApplicationServerPorts {
	a.Ports = camara.Some(append([]int64(nil), v...))
	return a
}

func applicationServerPortsSchema(r *camara.Registry) camara.Schema[ApplicationServerPorts] {
	return dsl.Model[ApplicationServerPorts](NameApplicationServerPorts).
		Field(dsl.Opt("ranges", dsl.List(dsl.Ref[PortRange](r, NamePortRange)).Min(1), func(m *ApplicationServerPorts) *camara.Optional[[]PortRange] { return &m.Ranges })).
		Field(dsl.Opt("ports", dsl.List[int64](portSchema()).Min(1), func(m *ApplicationServerPorts) *camara.Optional[[]int64] { return &m.Ports })).
		Unknown(func(m *ApplicationServerPorts) *camara.Extras { return &m.Extra }).
		Refine("ranges|ports", func(_ context.Context, m ApplicationServerPorts) error {
			if !m.Ranges.IsSet() && !m.Ports.IsSet() {
				return fmt.Errorf("one of ranges or ports is required")
			}
			return nil
		}).
		MustBuild()
}
