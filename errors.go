package automaton

import "fmt"

// ErrDecode is returned when a textual automaton record cannot be decoded.
// The simulation itself never fails; only the textual boundary does.
type ErrDecode struct {
	Kind Kind
	Err  error
}

func (e *ErrDecode) Error() string {
	return fmt.Sprintf("automaton: failed to decode %s record: %v", e.Kind, e.Err)
}

// Unwrap provides compatibility with errors.Is and errors.As.
func (e *ErrDecode) Unwrap() error { return e.Err }

// ErrUnknownKind is returned when a document names an engine variant other
// than KindDFA or KindNFA.
type ErrUnknownKind struct {
	Kind Kind
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("automaton: unknown automaton kind %q", e.Kind)
}

// ErrUnknownFormat is returned for a document encoding other than JSON or YAML.
type ErrUnknownFormat struct {
	Format Encoding
}

func (e *ErrUnknownFormat) Error() string {
	return fmt.Sprintf("automaton: unsupported document encoding %q", e.Format)
}
