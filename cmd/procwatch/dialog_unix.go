//go:build !windows
// +build !windows

package main

func msgBox(title, msg string) {}
