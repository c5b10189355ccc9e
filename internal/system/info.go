package system

import (
	"bufio"
	"os"
	"runtime"
	"strings"
)

const osReleasePath = "/etc/os-release"

// HostInfo describes the host a verification ran on. It is attached to every
// report so a rendered or exported report can be traced back to a machine.
type HostInfo struct {
	Hostname  string `json:"hostname"`
	OSType    string `json:"os_type"`
	OSVersion string `json:"os_version"`
	Arch      string `json:"arch"`
}

// Collect gathers basic host information. Missing pieces are left empty rather
// than failing; host info is report metadata, not a check input.
func Collect() HostInfo {
	info := HostInfo{
		OSType: runtime.GOOS,
		Arch:   runtime.GOARCH,
	}

	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}

	if info.OSType == "linux" {
		info.OSVersion = readOSRelease(osReleasePath)
	}

	return info
}

// readOSRelease returns the PRETTY_NAME from an os-release file, falling back
// to NAME, or empty if neither can be read.
func readOSRelease(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	var name string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "PRETTY_NAME":
			return value
		case "NAME":
			name = value
		}
	}
	return name
}
