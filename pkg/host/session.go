package host

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/goliatone/go-accountforms/pkg/rowengine"
	"github.com/goliatone/go-accountforms/pkg/schema"
	"github.com/goliatone/go-accountforms/pkg/submission"
)

// ErrMissingAccountLabel reports a host that never configured the widget.
var ErrMissingAccountLabel = errors.New("host: accountLabel setting is not set")

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger directs the session's log-and-continue paths to the given
// logger. Without it those events are dropped.
func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithResolver substitutes a resolver, typically one carrying a UI-text
// overlay.
func WithResolver(resolver *schema.Resolver) SessionOption {
	return func(s *Session) {
		if resolver != nil {
			s.resolver = resolver
		}
	}
}

// WithConfirm injects the row-removal confirmation dialog.
func WithConfirm(fn rowengine.ConfirmFunc) SessionOption {
	return func(s *Session) {
		s.confirm = fn
	}
}

// WithLegacySendData switches the per-mutation data payload to the older
// shape: the last row's raw field map instead of the full serialized list.
func WithLegacySendData() SessionOption {
	return func(s *Session) {
		s.legacy = true
	}
}

// Session drives one widget instance: it owns the engine, mediates every
// mutation, and reports state back to the host. All methods run on a single
// logical thread; Session does no locking.
type Session struct {
	host    Host
	logger  *log.Logger
	confirm rowengine.ConfirmFunc
	legacy  bool

	resolver     *schema.Resolver
	resolution   schema.Resolution
	eng          *rowengine.Engine
	defaultTitle string
}

// NewSession wires a session to its host. Call Init before anything else.
func NewSession(h Host, options ...SessionOption) *Session {
	s := &Session{
		host:     h,
		resolver: schema.NewResolver(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Init resolves the configured category, derives the default account title
// from the form filler's name, and seeds the row list from saved data or a
// single blank row. Everything except a missing accountLabel setting is
// recoverable: decode and lookup failures are logged and the session comes
// up with defaults.
func (s *Session) Init(ctx context.Context, saved any) error {
	label := s.host.WidgetSetting(SettingAccountLabel)
	if strings.TrimSpace(label) == "" {
		return ErrMissingAccountLabel
	}

	fs, res := s.resolver.Resolve(label)
	s.resolution = res
	if res.Default {
		s.logf("host: no schema for category label %q, using default", label)
	}
	s.eng = rowengine.New(res.Category, fs,
		rowengine.WithAccountType(label),
		rowengine.WithConfirmFunc(s.confirm))

	s.defaultTitle = s.fetchDefaultTitle(ctx)

	if err := submission.Hydrate(s.eng, saved); err != nil {
		s.logf("host: %v", err)
	}
	if s.eng.Len() == 0 {
		if _, err := s.eng.Append(); err != nil {
			return fmt.Errorf("host: seed initial row: %w", err)
		}
	}

	s.sendData(s.eng.ValidateLast(false))
	return nil
}

// fetchDefaultTitle assembles "<Full Name>'s Account" from the form filler
// name components, suffix joined with a comma. Any lookup failure yields an
// empty default.
func (s *Session) fetchDefaultTitle(ctx context.Context) string {
	part := func(id string) string {
		value, err := s.host.FieldValue(ctx, id)
		if err != nil {
			s.logf("host: field value %s: %v", id, err)
			return ""
		}
		return strings.TrimSpace(value)
	}
	full := strings.TrimSpace(strings.Join([]string{
		part(FieldFillerFirst), part(FieldFillerMiddle), part(FieldFillerLast),
	}, " "))
	full = strings.Join(strings.Fields(full), " ")
	if full == "" {
		return ""
	}
	if suffix := part(FieldFillerSuffix); suffix != "" {
		full += ", " + suffix
	}
	return full + "'s Account"
}

// Engine exposes the underlying row engine for renderers.
func (s *Session) Engine() *rowengine.Engine { return s.eng }

// Resolution reports how the configured label mapped to a category.
func (s *Session) Resolution() schema.Resolution { return s.resolution }

// DefaultTitle returns the derived account title, empty when the form
// filler's name was unavailable.
func (s *Session) DefaultTitle() string { return s.defaultTitle }

// HandleChange applies one field edit, revalidates, and reports to the
// host. Checking the same-as-name box copies the derived title into the
// row's title field.
func (s *Session) HandleChange(rowIndex int, field, value string) error {
	if err := s.eng.SetField(rowIndex, field, value); err != nil {
		return err
	}
	if rowengine.BaseFieldName(field) == schema.FieldSameAsName && value == "true" && s.defaultTitle != "" {
		if err := s.eng.SetField(rowIndex, schema.FieldTitle, s.defaultTitle); err != nil {
			return err
		}
	}
	s.sendData(s.eng.ValidateLast(false))
	return nil
}

// AddRow appends a fresh row after the current last row validates. On
// validation failure the engine stays untouched and the *ValidationError
// describes the offending fields for the renderer.
func (s *Session) AddRow() error {
	if _, err := s.eng.Append(); err != nil {
		return err
	}
	s.sendData(s.eng.ValidateLast(false))
	return nil
}

// RemoveRow drops the last row, honoring the confirmation hook. The sole
// remaining row is never removed.
func (s *Session) RemoveRow() error {
	if err := s.eng.Remove(); err != nil {
		return err
	}
	s.sendData(s.eng.ValidateLast(false))
	return nil
}

// Submit serializes every qualifying row and emits the final payload. An
// empty list submits a null value; the submission itself is always marked
// valid, matching the always-render error posture.
func (s *Session) Submit(ctx context.Context) error {
	payload := submission.Build(s.eng)
	if payload.Empty() {
		s.host.SendSubmit(SubmitPayload{Valid: true})
		return nil
	}
	wire, err := submission.Marshal(payload)
	if err != nil {
		return err
	}
	if err := submission.ValidateWire(ctx, []byte(wire)); err != nil {
		s.logf("host: %v", err)
	}
	s.host.SendSubmit(SubmitPayload{Valid: true, Value: &wire})
	return nil
}

// NotifyContentHeight forwards a measured content height as a frame resize
// request.
func (s *Session) NotifyContentHeight(contentPx int) {
	s.host.RequestFrameResize(FrameHeight(contentPx))
}

func (s *Session) sendData(result rowengine.Result) {
	if s.legacy {
		value, err := result.MarshalValues()
		if err != nil {
			s.logf("host: marshal row values: %v", err)
			value = "{}"
		}
		s.host.SendData(DataPayload{Valid: result.Valid, Value: value})
		return
	}
	wire, err := submission.Marshal(submission.Build(s.eng))
	if err != nil {
		s.logf("host: %v", err)
		return
	}
	s.host.SendData(DataPayload{Valid: result.Valid, Value: wire})
}

func (s *Session) logf(format string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Printf(format, args...)
}
