package automaton

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/enetx/g"
	"gopkg.in/yaml.v3"
)

// Encoding names a textual document encoding.
type Encoding g.String

const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// EncodingOf picks an encoding from a file name: ".json" is JSON, anything
// else is YAML.
func EncodingOf(path string) Encoding {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return EncodingJSON
	}

	return EncodingYAML
}

// Tests lists inputs an automaton is expected to accept and to reject.
type Tests struct {
	Accept g.Slice[g.String] `json:"accept,omitempty" yaml:"accept,omitempty"`
	Reject g.Slice[g.String] `json:"reject,omitempty" yaml:"reject,omitempty"`
}

// Document is a saved automaton: its kind, its record and the bulk tests
// stored alongside it. Exactly one of DFA and NFA is set, matching Kind.
type Document struct {
	Kind  Kind
	DFA   *DFARecord
	NFA   *NFARecord
	Tests Tests
}

type jsonDocument struct {
	Kind      Kind            `json:"kind"`
	Automaton json.RawMessage `json:"automaton"`
	Tests     Tests           `json:"tests"`
}

type yamlDocument struct {
	Kind      Kind      `yaml:"kind"`
	Automaton yaml.Node `yaml:"automaton"`
	Tests     Tests     `yaml:"tests"`
}

type outDocument struct {
	Kind      Kind  `json:"kind" yaml:"kind"`
	Automaton any   `json:"automaton" yaml:"automaton"`
	Tests     Tests `json:"tests" yaml:"tests"`
}

// NewDocument captures the current structure of a together with tests.
func NewDocument(a Automaton, tests Tests) (*Document, error) {
	data, err := a.MarshalJSON()
	if err != nil {
		return nil, err
	}

	doc := &Document{Kind: a.Kind(), Tests: tests}

	switch doc.Kind {
	case KindDFA:
		doc.DFA = new(DFARecord)
		err = json.Unmarshal(data, doc.DFA)
	case KindNFA:
		doc.NFA = new(NFARecord)
		err = json.Unmarshal(data, doc.NFA)
	default:
		return nil, &ErrUnknownKind{Kind: doc.Kind}
	}

	if err != nil {
		return nil, &ErrDecode{Kind: doc.Kind, Err: err}
	}

	return doc, nil
}

// ParseDocument decodes a document in the given encoding.
func ParseDocument(data []byte, enc Encoding) (*Document, error) {
	doc := new(Document)

	var err error
	switch enc {
	case EncodingJSON:
		err = json.Unmarshal(data, doc)
	case EncodingYAML:
		err = yaml.Unmarshal(data, doc)
	default:
		return nil, &ErrUnknownFormat{Format: enc}
	}

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// Encode renders the document in the given encoding.
func (d *Document) Encode(enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingJSON:
		return json.MarshalIndent(d, "", "  ")
	case EncodingYAML:
		return yaml.Marshal(d)
	default:
		return nil, &ErrUnknownFormat{Format: enc}
	}
}

// Build creates a fresh engine of the document's kind loaded with its record.
func (d *Document) Build() (Automaton, error) {
	switch d.Kind {
	case KindDFA:
		var r DFARecord
		if d.DFA != nil {
			r = *d.DFA
		}

		return NewDFA().Deserialize(r), nil
	case KindNFA:
		var r NFARecord
		if d.NFA != nil {
			r = *d.NFA
		}

		return NewNFA().Deserialize(r), nil
	default:
		return nil, &ErrUnknownKind{Kind: d.Kind}
	}
}

func (d *Document) record() any {
	if d.Kind == KindNFA {
		return d.NFA
	}

	return d.DFA
}

// MarshalJSON implements the json.Marshaler interface.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(outDocument{Kind: d.Kind, Automaton: d.record(), Tests: d.Tests})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Document) UnmarshalJSON(data []byte) error {
	var w jsonDocument
	if err := json.Unmarshal(data, &w); err != nil {
		return &ErrDecode{Kind: w.Kind, Err: err}
	}

	d.Kind, d.Tests, d.DFA, d.NFA = w.Kind, w.Tests, nil, nil

	var err error
	switch w.Kind {
	case KindDFA:
		d.DFA = new(DFARecord)
		if len(w.Automaton) != 0 {
			err = json.Unmarshal(w.Automaton, d.DFA)
		}
	case KindNFA:
		d.NFA = new(NFARecord)
		if len(w.Automaton) != 0 {
			err = json.Unmarshal(w.Automaton, d.NFA)
		}
	default:
		return &ErrUnknownKind{Kind: w.Kind}
	}

	if err != nil {
		return &ErrDecode{Kind: w.Kind, Err: err}
	}

	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (d *Document) MarshalYAML() (any, error) {
	return outDocument{Kind: d.Kind, Automaton: d.record(), Tests: d.Tests}, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	var w yamlDocument
	if err := value.Decode(&w); err != nil {
		return &ErrDecode{Kind: w.Kind, Err: err}
	}

	d.Kind, d.Tests, d.DFA, d.NFA = w.Kind, w.Tests, nil, nil

	var err error
	switch w.Kind {
	case KindDFA:
		d.DFA = new(DFARecord)
		if !w.Automaton.IsZero() {
			err = w.Automaton.Decode(d.DFA)
		}
	case KindNFA:
		d.NFA = new(NFARecord)
		if !w.Automaton.IsZero() {
			err = w.Automaton.Decode(d.NFA)
		}
	default:
		return &ErrUnknownKind{Kind: w.Kind}
	}

	if err != nil {
		return &ErrDecode{Kind: w.Kind, Err: err}
	}

	return nil
}
