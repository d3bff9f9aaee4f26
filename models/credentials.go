package models

import (
	"context"
	"fmt"
	"time"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/dsl"
)

// SinkCredential is the credential a notification sink expects. Its
// type-specific members travel in Extra.
type SinkCredential struct {
	CredentialType CredentialType
	Extra          camara.Extras
}

func (s SinkCredential) WithCredentialType(v CredentialType) SinkCredential {
	s.CredentialType = v
	return s
}

func (s SinkCredential) WithExtra(key string, v any) SinkCredential {
	s.Extra = s.Extra.With(key, v)
	return s
}

func sinkCredentialSchema() camara.Schema[SinkCredential] {
	return dsl.Model[SinkCredential](NameSinkCredential).
		Field(dsl.Req("credentialType", credentialTypeEnum, func(m *SinkCredential) *CredentialType { return &m.CredentialType })).
		Unknown(func(m *SinkCredential) *camara.Extras { return &m.Extra }).
		MustBuild()
}

// AccessTokenCredential is a sink credential of type ACCESSTOKEN.
type AccessTokenCredential struct {
	CredentialType        CredentialType
	AccessToken           string
	AccessTokenExpiresUtc camara.DateTime
	AccessTokenType       AccessTokenType
	Extra                 camara.Extras
}

// NewAccessTokenCredential returns a bearer credential expiring at expires.
func NewAccessTokenCredential(token string, expires time.Time) AccessTokenCredential {
	return AccessTokenCredential{
		CredentialType:        CredentialTypeAccessToken,
		AccessToken:           token,
		AccessTokenExpiresUtc: camara.NewDateTime(expires),
		AccessTokenType:       AccessTokenTypeBearer,
	}
}

func (a AccessTokenCredential) WithAccessToken(v string) AccessTokenCredential {
	a.AccessToken = v
	return a
}

func (a AccessTokenCredential) WithAccessTokenExpiresUtc(v time.Time) AccessTokenCredential {
	a.AccessTokenExpiresUtc = camara.NewDateTime(v)
	return a
}

func (a AccessTokenCredential) WithAccessTokenType(v AccessTokenType) AccessTokenCredential {
	a.AccessTokenType = v
	return a
}

func accessTokenCredentialSchema() camara.Schema[AccessTokenCredential] {
	return dsl.Model[AccessTokenCredential](NameAccessTokenCredential).
		Field(dsl.Req("credentialType", credentialTypeEnum, func(m *AccessTokenCredential) *CredentialType { return &m.CredentialType })).
		Field(dsl.Req("accessToken", dsl.String().MinLen(1), func(m *AccessTokenCredential) *string { return &m.AccessToken })).
		Field(dsl.Req("accessTokenExpiresUtc", dsl.DateTime(), func(m *AccessTokenCredential) *camara.DateTime { return &m.AccessTokenExpiresUtc })).
		Field(dsl.Req("accessTokenType", accessTokenTypeEnum, func(m *AccessTokenCredential) *AccessTokenType { return &m.AccessTokenType })).
		Unknown(func(m *AccessTokenCredential) *camara.Extras { return &m.Extra }).
		Refine("credentialType", func(_ context.Context, m AccessTokenCredential) error {
			if m.CredentialType != CredentialTypeAccessToken {
				return fmt.Errorf("credentialType must be %s", CredentialTypeAccessToken)
			}
			return nil
		}).
		MustBuild()
}
