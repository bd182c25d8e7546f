package models

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ArtifactKind classifies a file found in the output directory.
type ArtifactKind int

const (
	// ArtifactOther is any file the analyzer does not produce itself.
	ArtifactOther ArtifactKind = iota
	// ArtifactChart is a rendered trend chart.
	ArtifactChart
	// ArtifactWorkbook is an exported spreadsheet.
	ArtifactWorkbook
	// ArtifactLog is a log file written in interactive mode.
	ArtifactLog
)

// String returns the display name for an artifact kind.
func (k ArtifactKind) String() string {
	switch k {
	case ArtifactChart:
		return "chart"
	case ArtifactWorkbook:
		return "workbook"
	case ArtifactLog:
		return "log"
	default:
		return "file"
	}
}

// KindForPath infers the artifact kind from a file extension.
func KindForPath(path string) ArtifactKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return ArtifactChart
	case ".xlsx":
		return ArtifactWorkbook
	case ".log":
		return ArtifactLog
	default:
		return ArtifactOther
	}
}

// Artifact is a file in the output directory.
type Artifact struct {
	Name    string
	Path    string
	Kind    ArtifactKind
	Size    int64
	ModTime time.Time
}

// HumanSize formats the file size, e.g. "82 kB".
func (a Artifact) HumanSize() string {
	if a.Size < 0 {
		return "0 B"
	}
	return humanize.Bytes(uint64(a.Size))
}

// Age formats how long ago the file was written, e.g. "3 minutes ago".
func (a Artifact) Age() string {
	if a.ModTime.IsZero() {
		return "-"
	}
	return humanize.Time(a.ModTime)
}
