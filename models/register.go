package models

import camara "github.com/camara-go/camara"

// Schema names, as used in the registry and in components/schemas.
const (
	NameSinkCredential         = "SinkCredential"
	NameAccessTokenCredential  = "AccessTokenCredential"
	NamePortRange              = "PortRange"
	NameApplicationServerPorts = "ApplicationServerPorts"
	NameApplicationServer      = "ApplicationServer"
	NameDeviceIpv4Addr         = "DeviceIpv4Addr"
	NameDevice                 = "Device"
	NameSubscriptionDetail     = "SubscriptionDetail"
	NameSubscriptionRequest    = "SubscriptionRequest"
	NamePoint                  = "Point"
	NameCircle                 = "Circle"
	NameEllipsoid              = "Ellipsoid"
	NameCoordinates            = "Coordinates"
	NameCircleArea             = "CircleArea"
	NamePolygonArea            = "PolygonArea"
	NameArea                   = "Area"
	NameDeviceLocationRequest  = "DeviceLocationRequest"
	NameCreateSession          = "CreateSession"
	NameSessionInfo            = "SessionInfo"
	NameSimSwapInfo            = "SimSwapInfo"
	NameCheckSimSwapInfo       = "CheckSimSwapInfo"
	NameCreateSimSwapDate      = "CreateSimSwapDate"
	NameCreateCheckSimSwap     = "CreateCheckSimSwap"
	NameErrorInfo              = "ErrorInfo"
)

func init() { Register(camara.DefaultRegistry) }

// Register adds every model schema to r. Schemas refer to each other by name
// through r, so they must be registered together.
func Register(r *camara.Registry) {
	camara.RegisterSchema(r, NameSinkCredential, sinkCredentialSchema)
	camara.RegisterSchema(r, NameAccessTokenCredential, accessTokenCredentialSchema)
	camara.RegisterSchema(r, NamePortRange, portRangeSchema)
	camara.RegisterSchema(r, NameApplicationServerPorts, func() camara.Schema[ApplicationServerPorts] { return applicationServerPortsSchema(r) })
	camara.RegisterSchema(r, NameApplicationServer, applicationServerSchema)
	camara.RegisterSchema(r, NameDeviceIpv4Addr, deviceIpv4AddrSchema)
	camara.RegisterSchema(r, NameDevice, func() camara.Schema[Device] { return deviceSchema(r) })
	camara.RegisterSchema(r, NameSubscriptionDetail, func() camara.Schema[SubscriptionDetail] { return subscriptionDetailSchema(r) })
	camara.RegisterSchema(r, NameSubscriptionRequest, func() camara.Schema[SubscriptionRequest] { return subscriptionRequestSchema(r) })
	camara.RegisterSchema(r, NamePoint, pointSchema)
	camara.RegisterSchema(r, NameCircle, circleSchema)
	camara.RegisterSchema(r, NameEllipsoid, ellipsoidSchema)
	camara.RegisterSchema(r, NameCoordinates, func() camara.Schema[Coordinates] { return coordinatesSchema(r) })
	camara.RegisterSchema(r, NameCircleArea, func() camara.Schema[CircleArea] { return circleAreaSchema(r) })
	camara.RegisterSchema(r, NamePolygonArea, func() camara.Schema[PolygonArea] { return polygonAreaSchema(r) })
	camara.RegisterSchema(r, NameArea, func() camara.Schema[Area] { return areaSchema(r) })
	camara.RegisterSchema(r, NameDeviceLocationRequest, func() camara.Schema[DeviceLocationRequest] { return deviceLocationRequestSchema(r) })
	camara.RegisterSchema(r, NameCreateSession, func() camara.Schema[CreateSession] { return createSessionSchema(r) })
	camara.RegisterSchema(r, NameSessionInfo, func() camara.Schema[SessionInfo] { return sessionInfoSchema(r) })
	camara.RegisterSchema(r, NameSimSwapInfo, simSwapInfoSchema)
	camara.RegisterSchema(r, NameCheckSimSwapInfo, checkSimSwapInfoSchema)
	camara.RegisterSchema(r, NameCreateSimSwapDate, createSimSwapDateSchema)
	camara.RegisterSchema(r, NameCreateCheckSimSwap, createCheckSimSwapSchema)
	camara.RegisterSchema(r, NameErrorInfo, errorInfoSchema)
}

// SinkCredentialSchema returns the registered SinkCredential schema.
func SinkCredentialSchema() camara.Schema[SinkCredential] {
	return camara.MustSchema[SinkCredential](camara.DefaultRegistry, NameSinkCredential)
}

func AccessTokenCredentialSchema() camara.Schema[AccessTokenCredential] {
	return camara.MustSchema[AccessTokenCredential](camara.DefaultRegistry, NameAccessTokenCredential)
}

func PortRangeSchema() camara.Schema[PortRange] {
	return camara.MustSchema[PortRange](camara.DefaultRegistry, NamePortRange)
}

func ApplicationServerPortsSchema() camara.Schema[ApplicationServerPorts] {
	return camara.MustSchema[ApplicationServerPorts](camara.DefaultRegistry, NameApplicationServerPorts)
}

func DeviceSchema() camara.Schema[Device] {
	return camara.MustSchema[Device](camara.DefaultRegistry, NameDevice)
}

func SubscriptionRequestSchema() camara.Schema[SubscriptionRequest] {
	return camara.MustSchema[SubscriptionRequest](camara.DefaultRegistry, NameSubscriptionRequest)
}

func CoordinatesSchema() camara.Schema[Coordinates] {
	return camara.MustSchema[Coordinates](camara.DefaultRegistry, NameCoordinates)
}

func AreaSchema() camara.Schema[Area] {
	return camara.MustSchema[Area](camara.DefaultRegistry, NameArea)
}

func DeviceLocationRequestSchema() camara.Schema[DeviceLocationRequest] {
	return camara.MustSchema[DeviceLocationRequest](camara.DefaultRegistry, NameDeviceLocationRequest)
}

func CreateSessionSchema() camara.Schema[CreateSession] {
	return camara.MustSchema[CreateSession](camara.DefaultRegistry, NameCreateSession)
}

func SessionInfoSchema() camara.Schema[SessionInfo] {
	return camara.MustSchema[SessionInfo](camara.DefaultRegistry, NameSessionInfo)
}

func SimSwapInfoSchema() camara.Schema[SimSwapInfo] {
	return camara.MustSchema[SimSwapInfo](camara.DefaultRegistry, NameSimSwapInfo)
}

func CheckSimSwapInfoSchema() camara.Schema[CheckSimSwapInfo] {
	return camara.MustSchema[CheckSimSwapInfo](camara.DefaultRegistry, NameCheckSimSwapInfo)
}

func CreateSimSwapDateSchema() camara.Schema[CreateSimSwapDate] {
	return camara.MustSchema[CreateSimSwapDate](camara.DefaultRegistry, NameCreateSimSwapDate)
}

func CreateCheckSimSwapSchema() camara.Schema[CreateCheckSimSwap] {
	return camara.MustSchema[CreateCheckSimSwap](camara.DefaultRegistry, NameCreateCheckSimSwap)
}

func ErrorInfoSchema() camara.Schema[ErrorInfo] {
	return camara.MustSchema[ErrorInfo](camara.DefaultRegistry, NameErrorInfo)
}
