package models

import (
	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/dsl"
)

// ErrorInfo is the error body every CAMARA API returns.
type ErrorInfo struct {
	Status  int64
	Code    string
	Message string
	Extra   camara.Extras
}

func (e ErrorInfo) WithStatus(v int64) ErrorInfo {
	e.Status = v
	return e
}

func (e ErrorInfo) WithCode(v string) ErrorInfo {
	e.Code = v
	return e
}

func (e ErrorInfo) WithMessage(v string) ErrorInfo {
	e.Message = v
	return e
}

func errorInfoSchema() camara.Schema[ErrorInfo] {
	return dsl.Model[ErrorInfo](NameErrorInfo).
		Field(dsl.Req("status", dsl.Int(), func(m *ErrorInfo) *int64 { return &m.Status })).
		Field(dsl.Req("code", dsl.String(), func(m *ErrorInfo) *string { return &m.Code })).
		Field(dsl.Req("message", dsl.String(), func(m *ErrorInfo) *string { return &m.Message })).
		Unknown(func(m *ErrorInfo) *camara.Extras { return &m.Extra }).
		MustBuild()
}
