package sink

import "strings"

// Field is one key/value pair of diagnostic context attached to a remote
// report. Fields are kept as a slice to preserve a stated iteration order.
type Field struct {
	Key   string
	Value string
}

// DiagnosticSource supplies best-effort diagnostic context for remote
// reports (e.g. request identifiers, deployment metadata).
//
// Presence/absence and the order of Fields are the implementation's
// contract. Implementations must be fast, must not block, and must be safe
// for concurrent use.
type DiagnosticSource interface {
	Fields() []Field
}

// StaticDiagnostics is a DiagnosticSource backed by a fixed field list,
// snapshotted at construction time.
type StaticDiagnostics struct {
	fields []Field
}

// NewStaticDiagnostics returns a DiagnosticSource serving a copy of fields.
func NewStaticDiagnostics(fields ...Field) *StaticDiagnostics {
	out := make([]Field, len(fields))
	copy(out, fields)
	return &StaticDiagnostics{fields: out}
}

// Fields implements DiagnosticSource.
func (s *StaticDiagnostics) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// diagnosticPlaceholder is sent when no diagnostic context is available.
const diagnosticPlaceholder = "unknown"

// renderDiagnostics serializes fields as key:'escaped-value' pairs joined by
// commas. Absent source or empty field list yields the fixed placeholder.
func renderDiagnostics(src DiagnosticSource) string {
	if src == nil {
		return diagnosticPlaceholder
	}
	fields := src.Fields()
	if len(fields) == 0 {
		return diagnosticPlaceholder
	}

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.Key)
		b.WriteString(":'")
		b.WriteString(escapeDiagnosticValue(f.Value))
		b.WriteByte('\'')
	}
	return b.String()
}

func escapeDiagnosticValue(s string) string {
	if !strings.ContainsAny(s, `\'`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '\'':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
