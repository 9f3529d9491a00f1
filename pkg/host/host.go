// Package host defines the embedding-runtime boundary and the session that
// drives one widget instance against it.
package host

import "context"

// Setting names the host runtime exposes to the widget.
const (
	SettingAccountLabel = "accountLabel"
)

// Form-filler name components fetched once at startup to derive the default
// account title.
const (
	FieldFillerFirst  = "q31_FormFillerName[first]"
	FieldFillerMiddle = "q31_FormFillerName[middle]"
	FieldFillerLast   = "q31_FormFillerName[last]"
	FieldFillerSuffix = "q31_FormFillerName[suffix]"
)

// DataPayload is the incremental validity report sent after every mutation.
type DataPayload struct {
	Valid bool
	Value string
}

// SubmitPayload carries the canonical account-list JSON at form submission.
// Value is nil when no row qualifies.
type SubmitPayload struct {
	Valid bool
	Value *string
}

// Host is the embedding runtime: the source of widget settings and form
// field values, and the sink for data, submit, and resize messages. All
// calls happen on the session's single logical thread.
type Host interface {
	WidgetSetting(name string) string
	FieldValue(ctx context.Context, id string) (string, error)
	SendData(payload DataPayload)
	SendSubmit(payload SubmitPayload)
	RequestFrameResize(heightPx int)
}

// Frame sizing constants: the chrome allowance added to the content height
// and the floor below which the frame never shrinks.
const (
	framePadding   = 50
	frameMinHeight = 450
)

// FrameHeight converts a measured content height into the frame height
// requested from the host.
func FrameHeight(contentPx int) int {
	if h := contentPx + framePadding; h > frameMinHeight {
		return h
	}
	return frameMinHeight
}
