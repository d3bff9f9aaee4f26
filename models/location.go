package models

import (
	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/dsl"
)

// Point is a WGS84 coordinate.
type Point struct {
	Latitude  float64
	Longitude float64
	Extra     camara.Extras
}

func (p Point) WithLatitude(v float64) Point {
	p.Latitude = v
	return p
}

func (p Point) WithLongitude(v float64) Point {
	p.Longitude = v
	return p
}

func latitudeSchema() *dsl.FloatSchema  { return dsl.Float().Min(-90).Max(90) }
func longitudeSchema() *dsl.FloatSchema { return dsl.Float().Min(-180).Max(180) }

func pointSchema() camara.Schema[Point] {
	return dsl.Model[Point](NamePoint).
		Field(dsl.Req("latitude", latitudeSchema(), func(m *Point) *float64 { return &m.Latitude })).
		Field(dsl.Req("longitude", longitudeSchema(), func(m *Point) *float64 { return &m.Longitude })).
		Unknown(func(m *Point) *camara.Extras { return &m.Extra }).
		MustBuild()
}

// Coordinates is a location estimate: a Circle or an Ellipsoid. The wire
// form has no discriminator; Circle is tried first.
type Coordinates interface{ isCoordinates() }

// Circle is a center point with an uncertainty radius in meters.
type Circle struct {
	Latitude  float64
	Longitude float64
	Radius    float64
	Extra     camara.Extras
}

func (Circle) isCoordinates() {}

func (c Circle) WithRadius(v float64) Circle {
	c.Radius = v
	return c
}

// Ellipsoid is a 3D uncertainty ellipsoid around a point.
type Ellipsoid struct {
	Latitude         float64
	Longitude        float64
	SemiMajorAxis    float64
	SemiMinorAxis    float64
	OrientationAngle float64
	Confidence       int64
	Altitude         float64
	Extra            camara.Extras
}

func (Ellipsoid) isCoordinates() {}

func (e Ellipsoid) WithConfidence(v int64) Ellipsoid {
	e.Confidence = v
	return e
}

func (e Ellipsoid) WithAltitude(v float64) Ellipsoid {
	e.Altitude = v
	return e
}

func circleSchema() camara.Schema[Circle] {
	return dsl.Model[Circle](NameCircle).
		Field(dsl.Req("latitude", latitudeSchema(), func(m *Circle) *float64 { return &m.Latitude })).
		Field(dsl.Req("longitude", longitudeSchema(), func(m *Circle) *float64 { return &m.Longitude })).
		Field(dsl.Req("radius", dsl.Float().Min(0), func(m *Circle) *float64 { return &m.Radius })).
		Unknown(func(m *Circle) *camara.Extras { return &m.Extra }).
		MustBuild()
}

func ellipsoidSchema() camara.Schema[Ellipsoid] {
	return dsl.Model[Ellipsoid](NameEllipsoid).
		Field(dsl.Req("latitude", latitudeSchema(), func(m *Ellipsoid) *float64 { return &m.Latitude })).
		Field(dsl.Req("longitude", longitudeSchema(), func(m *Ellipsoid) *float64 { return &m.Longitude })).
		Field(dsl.Req("semiMajorAxis", dsl.Float().Min(0), func(m *Ellipsoid) *float64 { return &m.SemiMajorAxis })).
		Field(dsl.Req("semiMinorAxis", dsl.Float().Min(0), func(m *Ellipsoid) *float64 { return &m.SemiMinorAxis })).
		Field(dsl.Req("orientationAngle", dsl.Float().Min(0).Max(360), func(m *Ellipsoid) *float64 { return &m.OrientationAngle })).
		Field(dsl.Req("confidence", dsl.Int().Min(0).Max(100), func(m *Ellipsoid) *int64 { return &m.Confidence })).
		Field(dsl.Req("altitude", dsl.Float(), func(m *Ellipsoid) *float64 { return &m.Altitude })).
		Unknown(func(m *Ellipsoid) *camara.Extras { return &m.Extra }).
		MustBuild()
}

func coordinatesSchema(r *camara.Registry) camara.Schema[Coordinates] {
	return dsl.Union[Coordinates](NameCoordinates).
		Variant(
			dsl.Case[Coordinates](NameCircle, dsl.Ref[Circle](r, NameCircle)),
			dsl.Case[Coordinates](NameEllipsoid, dsl.Ref[Ellipsoid](r, NameEllipsoid)),
		).
		MustBuild()
}

// Area is a geographic area selected by areaType.
type Area interface {
	isArea()
	Type() AreaType
}

// CircleArea is a circular area around Center.
type CircleArea struct {
	AreaType AreaType
	Center   Point
	Radius   float64
	Extra    camara.Extras
}

// NewCircleArea returns a CIRCLE area.
func NewCircleArea(center Point, radius float64) CircleArea {
	return CircleArea{AreaType: AreaTypeCircle, Center: center, Radius: radius}
}

func (CircleArea) isArea()          {}
func (c CircleArea) Type() AreaType { return c.AreaType }

func (c CircleArea) WithCenter(v Point) CircleArea {
	c.Center = v
	return c
}

func (c CircleArea) WithRadius(v float64) CircleArea {
	c.Radius = v
	return c
}

// PolygonArea is a closed polygon through Boundary.
type PolygonArea struct {
	AreaType AreaType
	Boundary []Point
	Extra    camara.Extras
}

// NewPolygonArea returns a POLYGON area.
func NewPolygonArea(boundary ...Point) PolygonArea {
	return PolygonArea{AreaType: AreaTypePolygon, Boundary: append([]Point(nil), boundary...)}
}

func (PolygonArea) isArea()          {}
func (p PolygonArea) Type() AreaType { return p.AreaType }

func (p PolygonArea) WithBoundary(v ...Point) PolygonArea {
	p.Boundary = append([]Point(nil), v...)
	return p
}

func circleAreaSchema(r *camara.Registry) camara.Schema[CircleArea] {
	return dsl.Model[CircleArea](NameCircleArea).
		Field(dsl.Req("areaType", areaTypeEnum, func(m *CircleArea) *AreaType { return &m.AreaType })).
		Field(dsl.Req("center", dsl.Ref[Point](r, NamePoint), func(m *CircleArea) *Point { return &m.Center })).
		Field(dsl.Req("radius", dsl.Float().Min(1), func(m *CircleArea) *float64 { return &m.Radius })).
		Unknown(func(m *CircleArea) *camara.Extras { return &m.Extra }).
		MustBuild()
}

func polygonAreaSchema(r *camara.Registry) camara.Schema[PolygonArea] {
	return dsl.Model[PolygonArea](NamePolygonArea).
		Field(dsl.Req("areaType", areaTypeEnum, func(m *PolygonArea) *AreaType { return &m.AreaType })).
		Field(dsl.Req("boundary", dsl.List(dsl.Ref[Point](r, NamePoint)).Min(3).Max(15), func(m *PolygonArea) *[]Point { return &m.Boundary })).
		Unknown(func(m *PolygonArea) *camara.Extras { return &m.Extra }).
		MustBuild()
}

func areaSchema(r *camara.Registry) camara.Schema[Area] {
	return dsl.Union[Area](NameArea).
		Discriminator("areaType").
		Variant(
			dsl.Case[Area](string(AreaTypeCircle), dsl.Ref[CircleArea](r, NameCircleArea)),
			dsl.Case[Area](string(AreaTypePolygon), dsl.Ref[PolygonArea](r, NamePolygonArea)),
		).
		MustBuild()
}

// DeviceLocationRequest asks whether a device is within Area. MaxAge bounds
// the age of the location information in seconds.
type DeviceLocationRequest struct {
	Device           camara.Optional[Device]
	Area             Area
	MaxAge           camara.Optional[int64]
	AuthenticationID camara.Optional[string]
	Extra            camara.Extras
}

func (d DeviceLocationRequest) WithDevice(v Device) DeviceLocationRequest {
	d.Device = camara.Some(v)
	return d
}

func (d DeviceLocationRequest) WithArea(v Area) DeviceLocationRequest {
	d.Area = v
	return d
}

func (d DeviceLocationRequest) WithMaxAge(v int64) DeviceLocationRequest {
	d.MaxAge = camara.Some(v)
	return d
}

func (d DeviceLocationRequest) WithAuthenticationID(v string) DeviceLocationRequest {
	d.AuthenticationID = camara.Some(v)
	return d
}

func deviceLocationRequestSchema(r *camara.Registry) camara.Schema[DeviceLocationRequest] {
	return dsl.Model[DeviceLocationRequest](NameDeviceLocationRequest).
		Field(dsl.Opt("device", dsl.Ref[Device](r, NameDevice), func(m *DeviceLocationRequest) *camara.Optional[Device] { return &m.Device })).
		Field(dsl.Req("area", dsl.Ref[Area](r, NameArea), func(m *DeviceLocationRequest) *Area { return &m.Area })).
		Field(dsl.Opt("maxAge", dsl.Int().Min(60), func(m *DeviceLocationRequest) *camara.Optional[int64] { return &m.MaxAge })).
		Field(dsl.Opt("authenticationId", dsl.String(), func(m *DeviceLocationRequest) *camara.Optional[string] { return &m.AuthenticationID }).As("AuthenticationID")).
		Unknown(func(m *DeviceLocationRequest) *camara.Extras { return &m.Extra }).
		MustBuild()
}
