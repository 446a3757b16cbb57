package main

import (
	"path/filepath"
	"testing"

	"github.com/scjalliance/procwatch/watcher"
)

func TestConfigProcesses(t *testing.T) {
	conf := Config{
		Watch: []string{"zoom.exe", "RTCREMOTEDESKTOP.EXE", "", "zoom.exe"},
	}
	procs := conf.Processes()

	want := []string{watcher.RemoteDesktopAgent, watcher.ScreenCaptureAgent, "zoom.exe"}
	if len(procs) != len(want) {
		t.Fatalf("got %d processes, want %d", len(procs), len(want))
	}
	for i, name := range want {
		if procs[i].Name != name {
			t.Errorf("process %d is %s, want %s", i, procs[i].Name, name)
		}
	}
	if procs[0].Severity != watcher.High {
		t.Errorf("the remote desktop agent lost its severity")
	}
}

func TestConfigPaths(t *testing.T) {
	dir := t.TempDir()
	conf := Config{SettingsPath: filepath.Join(dir, "settings.json")}
	if got := conf.HistoryPath(); got != filepath.Join(dir, HistoryFileName) {
		t.Errorf("history path %s", got)
	}
	if got := conf.LogPath(); got != filepath.Join(dir, LogFileName) {
		t.Errorf("log path %s", got)
	}
}
