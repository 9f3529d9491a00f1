package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-accountforms/pkg/host"
	"github.com/goliatone/go-accountforms/pkg/preview"
	"github.com/goliatone/go-accountforms/pkg/rowengine"
	"github.com/goliatone/go-accountforms/pkg/schema"
)

// Menu entries of the interactive loop.
const (
	menuEdit    = "Edit last row"
	menuAdd     = "Add row"
	menuRemove  = "Remove last row"
	menuSummary = "Show summary"
	menuSubmit  = "Submit and exit"
)

// Editor drives a session through terminal prompts.
type Editor struct {
	driver  Driver
	summary *preview.Renderer
}

// NewEditor builds an editor over the given prompt driver.
func NewEditor(driver Driver) (*Editor, error) {
	summary, err := preview.New()
	if err != nil {
		return nil, err
	}
	return &Editor{driver: driver, summary: summary}, nil
}

// Confirmer adapts the driver's confirm prompt to the engine's row-removal
// hook.
func (ed *Editor) Confirmer() rowengine.ConfirmFunc {
	return func(rowLabel string) bool {
		ok, err := ed.driver.Confirm(context.Background(), ConfirmConfig{
			Message: fmt.Sprintf("Remove this %s?", rowLabel),
		})
		return err == nil && ok
	}
}

// Run loops the menu until the user submits or interrupts. An interrupt
// exits cleanly without submitting.
func (ed *Editor) Run(ctx context.Context, s *host.Session) error {
	menu := []string{menuEdit, menuAdd, menuRemove, menuSummary, menuSubmit}
	for {
		idx, err := ed.driver.Select(ctx, SelectConfig{
			Message: "Account list",
			Options: menu,
		})
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		switch menu[idx] {
		case menuEdit:
			if err := ed.editRow(ctx, s, s.Engine().Len()); err != nil {
				return err
			}
		case menuAdd:
			err := s.AddRow()
			var verr *rowengine.ValidationError
			switch {
			case errors.As(err, &verr):
				ed.info(ctx, verr.Error())
			case err != nil:
				return err
			}
		case menuRemove:
			if err := s.RemoveRow(); errors.Is(err, rowengine.ErrCannotRemoveLastRow) {
				ed.info(ctx, "The last remaining row cannot be removed.")
			} else if err != nil {
				return err
			}
		case menuSummary:
			text, err := ed.summary.Render(s.Engine())
			if err != nil {
				return err
			}
			ed.info(ctx, text)
		case menuSubmit:
			return s.Submit(ctx)
		}
	}
}

// editRow walks the row's fields in schema order, re-checking visibility
// after every answer so conditional fields appear as soon as their trigger
// is set.
func (ed *Editor) editRow(ctx context.Context, s *host.Session, rowIndex int) error {
	eng := s.Engine()
	for _, field := range eng.Schema().Fields {
		if !field.Kind.Input() {
			continue
		}
		row := eng.Rows()[rowIndex-1]
		if !row.Visible(field.Name) {
			continue
		}

		value, err := ed.promptField(ctx, eng, field, row.Value(field.Name))
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.HandleChange(rowIndex, field.Name, value); err != nil {
			return err
		}
	}
	return nil
}

func (ed *Editor) promptField(ctx context.Context, eng *rowengine.Engine, field schema.FieldDescriptor, current string) (string, error) {
	label := field.Placeholder
	if label == "" {
		label = field.Text
	}

	switch field.Kind {
	case schema.KindSelect:
		options := make([]string, 0, len(eng.Options()))
		defaultIdx := 0
		for i, opt := range eng.Options() {
			options = append(options, opt.Text)
			if opt.Text == current {
				defaultIdx = i
			}
		}
		idx, err := ed.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      options,
			DefaultIndex: defaultIdx,
			PageSize:     10,
		})
		if err != nil {
			return "", err
		}
		return options[idx], nil

	case schema.KindFancyRadio:
		defaultIdx := 0
		for i, opt := range field.Options {
			if opt == current {
				defaultIdx = i
			}
		}
		idx, err := ed.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      field.Options,
			DefaultIndex: defaultIdx,
		})
		if err != nil {
			return "", err
		}
		return field.Options[idx], nil

	case schema.KindCheckbox:
		ok, err := ed.driver.Confirm(ctx, ConfirmConfig{
			Message: label,
			Default: current == "true",
		})
		if err != nil {
			return "", err
		}
		if ok {
			return "true", nil
		}
		return "", nil

	default:
		return ed.driver.Input(ctx, InputConfig{
			Message: label,
			Default: current,
		})
	}
}

func (ed *Editor) info(ctx context.Context, msg string) {
	_ = ed.driver.Info(ctx, msg)
}
