// SPDX-License-Identifier: MIT

// Package report renders dmlstat results in a pluggable output format.
//
// Encoders are looked up by name in a Registry. The defaults are:
//
//	text:    aligned, human-readable columns
//	json:    indented JSON via github.com/goccy/go-json
//	msgpack: binary MessagePack via github.com/shamaton/msgpack/v2
package report

import (
	"io"
	"sort"

	"github.com/hyp3rd/ewrap"

	"github.com/katalvlaran/dml/internal/sentinel"
	"github.com/katalvlaran/dml/scaler"
	"github.com/katalvlaran/dml/stats"
	"github.com/katalvlaran/dml/vector"
)

// ErrUnknownFormat is returned by Registry.New for an unregistered name.
var ErrUnknownFormat = sentinel.ErrUnknownFormat

// Report is everything one dmlstat run produces.
type Report struct {
	Source   string          `json:"source" msgpack:"source"`
	Rows     int             `json:"rows" msgpack:"rows"`
	Cols     int             `json:"cols" msgpack:"cols"`
	Columns  []stats.Summary `json:"columns" msgpack:"columns"`
	Sample   vector.Vector   `json:"sample,omitempty" msgpack:"sample"`
	Rescaled vector.Vector   `json:"rescaled,omitempty" msgpack:"rescaled"`
	Affine   *scaler.Affine  `json:"affine,omitempty" msgpack:"affine"`
}

// Encoder writes a Report to w.
type Encoder interface {
	Encode(w io.Writer, r *Report) error
}

// Registry manages encoder constructors.
type Registry struct {
	encoders map[string]func() Encoder
}

// getDefaultEncoders returns the default set of encoders.
func getDefaultEncoders() map[string]func() Encoder {
	return map[string]func() Encoder{
		"text":    func() Encoder { return &TextEncoder{} },
		"json":    func() Encoder { return &JSONEncoder{} },
		"msgpack": func() Encoder { return &MsgpackEncoder{} },
	}
}

// NewRegistry creates a registry with the default encoders pre-registered.
func NewRegistry() *Registry {
	registry := &Registry{encoders: make(map[string]func() Encoder)}
	for name, createFunc := range getDefaultEncoders() {
		registry.Register(name, createFunc)
	}

	return registry
}

// Register registers (or replaces) an encoder under name.
func (r *Registry) Register(name string, createFunc func() Encoder) {
	r.encoders[name] = createFunc
}

// Names lists registered encoder names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.encoders))
	for name := range r.encoders {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// New returns a fresh encoder registered under name.
func (r *Registry) New(name string) (Encoder, error) {
	createFunc, ok := r.encoders[name]
	if !ok {
		return nil, ewrap.Wrapf(ErrUnknownFormat, "report format %q", name)
	}

	return createFunc(), nil
}

// New returns an encoder from a default registry.
func New(name string) (Encoder, error) {
	return NewRegistry().New(name)
}
