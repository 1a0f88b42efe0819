package normalize

import "github.com/xilec/ruvox/core"

// newTestDiagnostics returns a fresh Diagnostics collector for assertions on
// the MalformedNumber/UnknownUnit/RecordUnknownWord side effects of the
// normalizer functions under test.
func newTestDiagnostics() *core.Diagnostics {
	return core.NewDiagnostics()
}
