package camara

import (
	eng "github.com/camara-go/camara/internal/engine"
)

// DuplicateKeys scans a JSON document and reports every duplicated object key
// as a duplicate_key issue, without failing on the first one. The returned
// error is non-nil only when the document is not valid JSON.
func DuplicateKeys(data []byte) (Issues, error) {
	var iss Issues
	src := eng.Enforce(eng.NewBytes(data), eng.Limits{
		Duplicates: eng.Report,
		Report: func(f eng.Finding) {
			iss = AppendIssues(iss, Issue{Code: f.Code, Path: f.Pointer, Message: f.Message})
		},
	})
	if _, err := eng.DecodeAnyFromSource(src); err != nil {
		return nil, toIssues(err)
	}
	return iss, nil
}
