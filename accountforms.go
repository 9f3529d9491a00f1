// Package accountforms re-exports the core types of the account-list form
// engine so most callers only import the module root.
package accountforms

import (
	"github.com/goliatone/go-accountforms/pkg/category"
	"github.com/goliatone/go-accountforms/pkg/host"
	"github.com/goliatone/go-accountforms/pkg/rowengine"
	"github.com/goliatone/go-accountforms/pkg/schema"
	"github.com/goliatone/go-accountforms/pkg/submission"
)

// Category identifies the configured account/document type.
type Category = category.Category

// RegistrationOption is one entry of a category's registration select.
type RegistrationOption = category.RegistrationOption

// Decision is the three-valued probate outcome.
type Decision = category.Decision

// FieldSchema is the ordered field layout for one category.
type FieldSchema = schema.FieldSchema

// Resolution reports how a category label mapped to a schema.
type Resolution = schema.Resolution

// Engine owns the ordered row list for one widget instance.
type Engine = rowengine.Engine

// Row is one user-editable schema instance.
type Row = rowengine.Row

// ValidationError describes why the last row blocked a row addition.
type ValidationError = rowengine.ValidationError

// Payload is the canonical submission shape.
type Payload = submission.Payload

// Host is the embedding runtime boundary.
type Host = host.Host

// Session drives one widget instance against a Host.
type Session = host.Session

// NewEngine constructs a row engine for a raw category label, resolving the
// schema the same way a session would.
func NewEngine(label string, options ...rowengine.Option) *Engine {
	fs, res := schema.NewResolver().Resolve(label)
	opts := append([]rowengine.Option{rowengine.WithAccountType(label)}, options...)
	return rowengine.New(res.Category, fs, opts...)
}

// NewSession wires a session to its host.
func NewSession(h Host, options ...host.SessionOption) *Session {
	return host.NewSession(h, options...)
}
