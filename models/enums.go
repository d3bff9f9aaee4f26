package models

import "github.com/camara-go/camara/dsl"

// CredentialType is the type of a sink credential.
type CredentialType string

const (
	CredentialTypePlain        CredentialType = "PLAIN"
	CredentialTypeAccessToken  CredentialType = "ACCESSTOKEN"
	CredentialTypeRefreshToken CredentialType = "REFRESHTOKEN"
)

var credentialTypeEnum = dsl.Enum(CredentialTypePlain, CredentialTypeAccessToken, CredentialTypeRefreshToken)

// Known reports whether c is a value this SDK version declares. Values read
// in lenient mode may not be.
func (c CredentialType) Known() bool { return credentialTypeEnum.Known(c) }

// AccessTokenType is the type of an access token credential.
type AccessTokenType string

const AccessTokenTypeBearer AccessTokenType = "bearer"

var accessTokenTypeEnum = dsl.Enum(AccessTokenTypeBearer)

func (a AccessTokenType) Known() bool { return accessTokenTypeEnum.Known(a) }

// QosStatus is the status of a QoD session.
type QosStatus string

const (
	QosStatusRequested   QosStatus = "REQUESTED"
	QosStatusAvailable   QosStatus = "AVAILABLE"
	QosStatusUnavailable QosStatus = "UNAVAILABLE"
)

var qosStatusEnum = dsl.Enum(QosStatusRequested, QosStatusAvailable, QosStatusUnavailable)

func (q QosStatus) Known() bool { return qosStatusEnum.Known(q) }

// StatusInfo explains why a QoD session became unavailable.
type StatusInfo string

const (
	StatusInfoDurationExpired   StatusInfo = "DURATION_EXPIRED"
	StatusInfoNetworkTerminated StatusInfo = "NETWORK_TERMINATED"
	StatusInfoDeleteRequested   StatusInfo = "DELETE_REQUESTED"
)

var statusInfoEnum = dsl.Enum(StatusInfoDurationExpired, StatusInfoNetworkTerminated, StatusInfoDeleteRequested)

func (s StatusInfo) Known() bool { return statusInfoEnum.Known(s) }

// AreaType discriminates the Area union.
type AreaType string

const (
	AreaTypeCircle  AreaType = "CIRCLE"
	AreaTypePolygon AreaType = "POLYGON"
)

var areaTypeEnum = dsl.Enum(AreaTypeCircle, AreaTypePolygon)

func (a AreaType) Known() bool { return areaTypeEnum.Known(a) }
