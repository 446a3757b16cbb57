//go:build windows
// +build windows

package trayui

import (
	"github.com/lxn/walk"
	"github.com/scjalliance/procwatch/settings"

	ui "github.com/lxn/walk/declarative"
)

// TimingDialog edits the check interval and alert duration.
type TimingDialog struct {
	ui       *ui.Dialog
	form     *walk.Dialog
	interval *walk.NumberEdit
	duration *walk.NumberEdit
	apply    func(interval float64, duration int) (settings.Settings, error)
}

// NewTimingDialog returns a timing dialog primed with the values of s.
// The apply function is called when the user accepts the dialog; the
// dialog stays open if it returns an error.
func NewTimingDialog(s settings.Settings, apply func(interval float64, duration int) (settings.Settings, error)) (dlg *TimingDialog, err error) {
	dlg = &TimingDialog{
		apply: apply,
	}

	var accept, cancel *walk.PushButton

	dlg.ui = &ui.Dialog{
		Icon:          walk.IconInformation(),
		Title:         "Timing",
		MinSize:       ui.Size{Width: 300, Height: 150},
		Layout:        ui.Grid{Columns: 2},
		AssignTo:      &dlg.form,
		DefaultButton: &accept,
		CancelButton:  &cancel,
		Children: []ui.Widget{
			ui.Label{Text: "Check interval (seconds):", Row: 0, Column: 0},
			ui.NumberEdit{
				Row:      0,
				Column:   1,
				AssignTo: &dlg.interval,
				Value:    s.CheckInterval,
				Decimals: 2,
				MinValue: settings.MinCheckInterval,
				MaxValue: settings.MaxCheckInterval,
			},
			ui.Label{Text: "Alert duration (seconds):", Row: 1, Column: 0},
			ui.NumberEdit{
				Row:      1,
				Column:   1,
				AssignTo: &dlg.duration,
				Value:    float64(s.AlertDuration),
				MinValue: settings.MinAlertDuration,
				MaxValue: settings.MaxAlertDuration,
			},
			ui.VSpacer{Row: 2, Column: 0, ColumnSpan: 2},
			ui.Composite{
				Row:        3,
				Column:     0,
				ColumnSpan: 2,
				Layout:     ui.HBox{},
				Children: []ui.Widget{
					ui.HSpacer{},
					ui.PushButton{
						AssignTo:  &accept,
						Text:      "OK",
						OnClicked: dlg.accept,
					},
					ui.PushButton{
						AssignTo: &cancel,
						Text:     "Cancel",
						OnClicked: func() {
							dlg.form.Cancel()
						},
					},
				},
			},
		},
	}

	err = dlg.ui.Create(nil)

	return
}

// Run displays the dialog and blocks until it is closed.
func (dlg *TimingDialog) Run() int {
	return dlg.form.Run()
}

func (dlg *TimingDialog) accept() {
	interval := dlg.interval.Value()
	duration := int(dlg.duration.Value())

	if err := settings.ValidateInterval(interval); err != nil {
		walk.MsgBox(dlg.form, "Invalid check interval", err.Error(), walk.MsgBoxIconWarning)
		return
	}
	if err := settings.ValidateAlertDuration(duration); err != nil {
		walk.MsgBox(dlg.form, "Invalid alert duration", err.Error(), walk.MsgBoxIconWarning)
		return
	}
	if _, err := dlg.apply(interval, duration); err != nil {
		walk.MsgBox(dlg.form, "Unable to save timing", err.Error(), walk.MsgBoxIconError)
		return
	}

	dlg.form.Accept()
}
