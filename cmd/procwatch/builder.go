//go:build generate
// +build generate

package main

import (
	"log"
	"runtime"
	"strconv"
	"strings"

	"github.com/josephspurrier/goversioninfo"
)

// main writes the Windows version resource that is linked into
// procwatch.exe.
func main() {
	v := fileVersion(Version)

	var info goversioninfo.VersionInfo
	info.FixedFileInfo.FileVersion = v
	info.FixedFileInfo.ProductVersion = v
	info.FixedFileInfo.FileFlagsMask = "3f"
	info.FixedFileInfo.FileOS = "040004" // NT, 32-bit Windows
	info.FixedFileInfo.FileType = "01"   // Application
	info.StringFileInfo = goversioninfo.StringFileInfo{
		CompanyName:      "SCJ Alliance",
		FileDescription:  ProgramName,
		FileVersion:      Version,
		InternalName:     "procwatch",
		OriginalFilename: "procwatch.exe",
		ProductName:      ProgramName,
		ProductVersion:   Version,
	}
	info.VarFileInfo.Translation.LangID = goversioninfo.LngUSEnglish
	info.VarFileInfo.Translation.CharsetID = goversioninfo.CsUnicode

	info.Build()
	info.Walk()
	if err := info.WriteSyso("procwatch.syso", runtime.GOARCH); err != nil {
		log.Fatalf("unable to write version resource: %v", err)
	}
}

// fileVersion parses a dotted version of up to four numbers. Missing or
// malformed numbers are zero.
func fileVersion(version string) goversioninfo.FileVersion {
	var n [4]int
	for i, part := range strings.SplitN(version, ".", len(n)) {
		n[i], _ = strconv.Atoi(part)
	}
	return goversioninfo.FileVersion{Major: n[0], Minor: n[1], Patch: n[2], Build: n[3]}
}
