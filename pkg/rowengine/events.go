package rowengine

import "fmt"

// Event is one discrete user interaction. Events are applied strictly in
// arrival order; the engine never reorders or batches them, so a handler for
// a given row always observes that row's latest prior state.
type Event interface {
	isEvent()
}

// FieldChanged records an input or select change on one row. Field may carry
// the rendering layer's ordinal suffix.
type FieldChanged struct {
	Row   int
	Field string
	Value string
}

// RowAdded requests a new row at the end of the list.
type RowAdded struct{}

// RowRemoved requests removal of the last row.
type RowRemoved struct{}

func (FieldChanged) isEvent() {}
func (RowAdded) isEvent()     {}
func (RowRemoved) isEvent()   {}

// Apply runs one event through the engine, returning the validation state of
// the last row afterwards. The UI renders the derived state; it holds none
// of its own.
func (e *Engine) Apply(event Event) (Result, error) {
	var err error
	switch ev := event.(type) {
	case FieldChanged:
		err = e.SetField(ev.Row, ev.Field, ev.Value)
	case RowAdded:
		_, err = e.Append()
	case RowRemoved:
		err = e.Remove()
	case nil:
		err = fmt.Errorf("rowengine: nil event")
	default:
		err = fmt.Errorf("rowengine: unknown event %T", event)
	}
	if err != nil {
		return Result{}, err
	}
	return e.ValidateLast(false), nil
}
