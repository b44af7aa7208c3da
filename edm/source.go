package edm

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLSource reads a stream of YAML documents, one MemEvent each.
type YAMLSource struct {
	dec *yaml.Decoder
	n   int
}

func NewYAMLSource(r io.Reader) *YAMLSource {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	return &YAMLSource{dec: dec}
}

// Next returns the next event, or io.EOF at the end of the stream.
func (src *YAMLSource) Next() (*MemEvent, error) {
	var evt MemEvent
	err := src.dec.Decode(&evt)
	if err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, fmt.Errorf("edm: could not decode event #%d: %w", src.n, err)
	}
	src.n++
	return &evt, nil
}

// YAMLSink writes events as a stream of YAML documents.
type YAMLSink struct {
	enc *yaml.Encoder
}

func NewYAMLSink(w io.Writer) *YAMLSink {
	return &YAMLSink{enc: yaml.NewEncoder(w)}
}

func (sink *YAMLSink) Write(evt *MemEvent) error {
	return sink.enc.Encode(evt)
}

func (sink *YAMLSink) Close() error {
	return sink.enc.Close()
}
