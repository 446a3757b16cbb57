//go:build windows
// +build windows

package main

import (
	"fmt"

	"github.com/gentlemanautomaton/winsession"
)

// printSessions lists the interactive sessions on the local machine. A
// remote desktop agent usually shows up alongside a remote session.
func printSessions() {
	sessions, err := winsession.Local.Sessions(
		winsession.Exclude(winsession.MatchID(0)),
		winsession.CollectSessionInfo,
	)
	if err != nil {
		fmt.Printf("\nUnable to list sessions: %v\n", err)
		return
	}

	fmt.Printf("\nSessions:\n")
	for _, session := range sessions {
		user := session.Info.User()
		if user == "" {
			user = "(no user)"
		}
		fmt.Printf("  %d %s %v %s\n", session.ID, session.WindowStation, session.State, user)
	}
}
