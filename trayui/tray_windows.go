//go:build windows
// +build windows

package trayui

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/lxn/walk"
	"github.com/scjalliance/procwatch/event"
	"github.com/scjalliance/procwatch/monitor"
	"github.com/scjalliance/procwatch/reaction"
	"github.com/scjalliance/procwatch/settings"
)

type trayData struct {
	Window     *walk.MainWindow
	Tray       *walk.NotifyIcon
	Completion <-chan int
	Err        error
}

// Tray is a system tray agent for the watcher.
type Tray struct {
	name     string
	version  string
	handlers Handlers
	logger   event.Logger

	mutex   sync.RWMutex
	stop    context.CancelFunc
	stopped <-chan struct{}
	updates chan<- monitor.Status
	notices chan<- reaction.Notice
}

// NewTray returns a new system tray instance.
func NewTray(name, version string, handlers Handlers, logger event.Logger) *Tray {
	return &Tray{
		name:     name,
		version:  version,
		handlers: handlers,
		logger:   logger,
	}
}

// Start causes the tray to begin operation. The tray displays status until
// the first update arrives.
func (t *Tray) Start(status monitor.Status) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.stop != nil {
		return errors.New("the tray instance is already running")
	}

	// Create the tray objects and start the tray on a dedicated thread
	startup := make(chan trayData)
	go t.run(startup)

	// Collect information about the tray once it's been initialized
	data := <-startup
	if data.Err != nil {
		return data.Err
	}

	// Prepare a context to stop the tray on request
	ctx, stop := context.WithCancel(context.Background())
	stopped := make(chan struct{})

	// Prepare input channels
	updates := make(chan monitor.Status, 128)
	notices := make(chan reaction.Notice, 128)
	updates <- status

	// Start a manager that updates the tray in response to input
	v := &view{
		tray:   t,
		window: data.Window,
		ni:     data.Tray,
		status: status,
	}
	go v.manage(ctx, data.Completion, stopped, updates, notices)

	t.stop = stop
	t.stopped = stopped
	t.updates = updates
	t.notices = notices

	log(t.logger, "Tray started")

	return nil
}

// Stop instructs the tray to cease operation and waits for it to close.
func (t *Tray) Stop() error {
	t.mutex.RLock()
	stop, stopped := t.stop, t.stopped
	t.mutex.RUnlock()

	if stop == nil {
		return errors.New("the tray instance is not running")
	}

	stop()
	<-stopped

	return nil
}

// Update updates the menu, icon and tool tip of the tray.
func (t *Tray) Update(status monitor.Status) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	if t.updates != nil {
		select {
		case t.updates <- status:
		default:
		}
	}
}

// Notify causes the tray to display a notice. Alerts are shown in their own
// window, other notices as balloon messages.
func (t *Tray) Notify(notice reaction.Notice) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	if t.notices != nil {
		select {
		case t.notices <- notice:
		default:
			debug(t.logger, "Dropped notice \"%s\"", notice.Title)
		}
	}
}

func (t *Tray) run(startup chan<- trayData) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	mw, ni, err := createSystemTray()
	if err != nil {
		startup <- trayData{Err: err}
		close(startup)
		return
	}
	defer ni.Dispose()
	defer mw.Dispose()

	completion := make(chan int)
	defer close(completion)

	startup <- trayData{
		Window:     mw,
		Tray:       ni,
		Completion: completion,
	}
	close(startup)

	result := mw.Run()

	t.mutex.Lock()
	t.stop = nil
	t.stopped = nil
	t.updates = nil
	t.notices = nil
	t.mutex.Unlock()

	completion <- result
}

// view holds the state of a running tray. Its fields other than status are
// only touched on the user interface thread.
type view struct {
	tray   *Tray
	window *walk.MainWindow
	ni     *walk.NotifyIcon
	icon   *walk.Icon

	mutex  sync.Mutex
	status monitor.Status
}

func (v *view) manage(ctx context.Context, completion <-chan int, stopped chan<- struct{}, updates <-chan monitor.Status, notices <-chan reaction.Notice) {
	defer close(stopped)
	for {
		select {
		case <-completion:
			return
		case status := <-updates:
			v.mutex.Lock()
			v.status = status
			v.mutex.Unlock()
			v.window.Synchronize(func() {
				v.render(status)
			})
		case notice := <-notices:
			v.window.Synchronize(func() {
				v.show(notice)
			})
		case <-ctx.Done():
			// Here we use the synchronize function to ensure that our call to Close
			// pushes the WM_CLOSE message onto the message queue of the correct
			// thread. If we call Close() directly it could fail silently and
			// deadlock.
			v.window.Synchronize(func() {
				v.window.Close()
			})
			<-completion
			return
		}
	}
}

func (v *view) current() monitor.Status {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	return v.status
}

func (v *view) render(status monitor.Status) {
	v.ni.SetToolTip(ToolTip(status.States))

	if icon, err := walk.NewIconFromImage(Icon(status.Settings, status.States)); err != nil {
		debug(v.tray.logger, "Unable to render icon: %v", err)
	} else if err := v.ni.SetIcon(icon); err != nil {
		icon.Dispose()
		debug(v.tray.logger, "Unable to set icon: %v", err)
	} else {
		if v.icon != nil {
			v.icon.Dispose()
		}
		v.icon = icon
	}

	actions := v.ni.ContextMenu().Actions()
	actions.Clear()
	{
		action := walk.NewAction()
		action.SetText(fmt.Sprintf("%s %s", v.tray.name, v.tray.version))
		action.SetEnabled(false)
		actions.Add(action)
	}
	actions.Add(walk.NewSeparatorAction())
	for _, item := range Menu(status.Settings) {
		field := item.Field
		action := walk.NewAction()
		action.SetText(item.Label)
		action.SetCheckable(true)
		action.SetChecked(item.Checked)
		action.Triggered().Attach(func() {
			v.toggle(field)
		})
		actions.Add(action)
	}
	actions.Add(walk.NewSeparatorAction())
	{
		action := walk.NewAction()
		action.SetText("Timing...")
		action.Triggered().Attach(v.editTiming)
		actions.Add(action)
	}
	{
		action := walk.NewAction()
		action.SetText("Status")
		action.Triggered().Attach(v.showStatus)
		actions.Add(action)
	}
	actions.Add(walk.NewSeparatorAction())
	{
		action := walk.NewAction()
		action.SetText("Exit")
		action.Triggered().Attach(func() {
			if v.tray.handlers.Exit != nil {
				v.tray.handlers.Exit()
			}
		})
		actions.Add(action)
	}
}

func (v *view) toggle(field settings.Field) {
	if v.tray.handlers.Toggle == nil {
		return
	}
	if _, err := v.tray.handlers.Toggle(field); err != nil {
		log(v.tray.logger, "Unable to change %s: %v", field, err)
		v.ni.ShowWarning(field.Title(), err.Error())
		// Restore the check mark from the last known settings
		v.render(v.current())
	}
}

func (v *view) editTiming() {
	if v.tray.handlers.SetTiming == nil {
		return
	}
	dlg, err := NewTimingDialog(v.current().Settings, v.tray.handlers.SetTiming)
	if err != nil {
		log(v.tray.logger, "Unable to open timing dialog: %v", err)
		return
	}
	dlg.Run()
}

func (v *view) showStatus() {
	status := v.current()
	walk.MsgBox(v.window, v.tray.name, StatusText(status.Settings, status.States), walk.MsgBoxIconInformation)
}

func (v *view) show(notice reaction.Notice) {
	var err error
	switch notice.Kind {
	case reaction.Alert:
		err = ShowAlert(notice)
	case reaction.Warning:
		err = v.ni.ShowWarning(notice.Title, notice.Message)
	default:
		err = v.ni.ShowInfo(notice.Title, notice.Message)
	}
	if err != nil {
		log(v.tray.logger, "Unable to show notice \"%s\": %v", notice.Title, err)
	}
}

func createSystemTray() (mw *walk.MainWindow, ni *walk.NotifyIcon, err error) {
	mw, err = walk.NewMainWindow()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create window: %v", err)
	}

	ni, err = createNotifyIcon(mw)
	if err != nil {
		mw.Dispose()
		return nil, nil, fmt.Errorf("failed to create system tray: %v", err)
	}

	return mw, ni, nil
}

func createNotifyIcon(form walk.Form) (*walk.NotifyIcon, error) {
	ni, err := walk.NewNotifyIcon(form)
	if err != nil {
		return nil, fmt.Errorf("creation failed: %v", err)
	}

	if err := ni.SetIcon(walk.IconInformation()); err != nil {
		ni.Dispose()
		return nil, fmt.Errorf("unable to set icon: %v", err)
	}

	if err := ni.SetVisible(true); err != nil {
		ni.Dispose()
		return nil, fmt.Errorf("unable to make the system tray visible: %v", err)
	}

	return ni, nil
}
