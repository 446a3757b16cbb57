package main

//go:generate go run -tags generate builder.go version.go

// Version is the version of the program.
const Version = "1.2.0"

// ProgramName is the name displayed to the user.
const ProgramName = "Global Process Watcher"
