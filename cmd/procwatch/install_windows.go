//go:build windows
// +build windows

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gentlemanautomaton/filework"
	"github.com/gentlemanautomaton/filework/fwos"
	"github.com/scjalliance/procwatch/osaction"
)

func install(conf Config) error {
	// Determine the source path
	sourcePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate the running executable: %v", err)
	}

	// The program lives beside its settings
	dest := conf.Dir()

	source, exe := filepath.Split(sourcePath)
	if !strings.HasSuffix(strings.ToLower(exe), ".exe") {
		exe += ".exe"
	}
	fmt.Printf("Installing %s to: %s\n", exe, dest)

	// Ensure that we can open the source file data
	sourceFile, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to install %s: %v", exe, err)
	}
	defer sourceFile.Close()

	// Check to see if there's an existing file with the expected content
	diff, err := filework.CompareFileContent(sourceFile, fwos.Dir(dest), exe)
	if err != nil {
		return fmt.Errorf("failed to examine existing %s file: %v", exe, err)
	}

	switch diff {
	case filework.Same:
		fmt.Printf("Existing %s file is up to date.\n", exe)
	default:
		if diff == filework.Different {
			fmt.Printf("Existing %s file is out of date.\n", exe)
		}

		if err := ensureDir(conf); err != nil {
			return fmt.Errorf("failed to create installation directory \"%s\": %v", dest, err)
		}

		result := filework.CopyFile(fwos.Dir(source), exe, sourceFile, fwos.Dir(dest), exe)
		if result.Err != nil {
			return fmt.Errorf("failed to copy %s: %v", exe, result.Err)
		}
		fmt.Printf("%s copied to %s\n", exe, dest)
	}

	target := filepath.Join(dest, exe)
	if err := setAutostart(conf, osaction.Autostart{Path: target}, true); err != nil {
		return err
	}
	fmt.Printf("%s will start when you sign in.\n", ProgramName)

	return nil
}
