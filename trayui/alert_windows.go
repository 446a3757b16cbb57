//go:build windows
// +build windows

package trayui

import (
	"time"

	"github.com/lxn/walk"
	"github.com/lxn/win"
	"github.com/scjalliance/procwatch/reaction"

	ui "github.com/lxn/walk/declarative"
)

// TopmostHold is how long an alert is held above other windows before it
// returns to the normal z-order.
const TopmostHold = 100 * time.Millisecond

// ShowAlert displays notice in a small window that closes itself after
// notice.Duration.
//
// ShowAlert must be called on the user interface thread.
func ShowAlert(notice reaction.Notice) error {
	var form *walk.Dialog

	size := ui.Size{Width: 320, Height: 110}
	dlg := ui.Dialog{
		Icon:     walk.IconWarning(),
		Title:    notice.Title,
		MinSize:  size,
		MaxSize:  size,
		Layout:   ui.VBox{},
		AssignTo: &form,
		Children: []ui.Widget{
			ui.Label{Text: notice.Title, Font: ui.Font{PointSize: 12, Bold: true}},
			ui.Label{Text: notice.Message},
		},
	}

	if err := dlg.Create(nil); err != nil {
		return err
	}

	form.Show()

	if notice.Topmost {
		hwnd := form.Handle()
		win.SetWindowPos(hwnd, win.HWND_TOPMOST, 0, 0, 0, 0, win.SWP_NOMOVE|win.SWP_NOSIZE)
		time.AfterFunc(TopmostHold, func() {
			form.Synchronize(func() {
				win.SetWindowPos(hwnd, win.HWND_NOTOPMOST, 0, 0, 0, 0, win.SWP_NOMOVE|win.SWP_NOSIZE|win.SWP_NOACTIVATE)
			})
		})
	}

	duration := notice.Duration
	if duration <= 0 {
		duration = 3 * time.Second
	}
	time.AfterFunc(duration, func() {
		form.Synchronize(func() {
			form.Close(walk.DlgCmdNone)
		})
	})

	return nil
}
