// Package tree renders a directory hierarchy as indented text.
package tree

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	// IndentGlyph is repeated once per depth level in front of an entry.
	IndentGlyph = "│   "
	// BranchGlyph precedes every entry name.
	BranchGlyph = "├── "

	entryLineTerminator = "\n"

	debugSkipIgnoredMessage = "skipping ignored entry"
	debugSkipSymlinkMessage = "not following symbolic link"
	pathLogField            = "path"
)

// Printer writes the tree of a directory to an output writer.
type Printer struct {
	FileSystem afero.Fs
	Output     io.Writer
	Logger     *zap.Logger
}

// NewPrinter constructs a Printer reading from fileSystem and writing to output.
func NewPrinter(fileSystem afero.Fs, output io.Writer, logger *zap.Logger) *Printer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Printer{
		FileSystem: fileSystem,
		Output:     output,
		Logger:     logger,
	}
}

// PrintTree writes one line per entry below startPath, depth first, in ascending
// name order. Entries whose base name is in ignoreSet are neither printed nor
// descended into. A nil ignoreSet selects DefaultIgnoreSet.
//
// Symbolic links are printed but never followed. The first read or write
// failure stops the traversal and is returned as a *FileSystemError; lines
// written before the failure are left in place.
func (printer *Printer) PrintTree(startPath string, ignoreSet IgnoreSet) error {
	if ignoreSet == nil {
		ignoreSet = DefaultIgnoreSet()
	}
	return printer.printDirectory(startPath, 0, ignoreSet)
}

func (printer *Printer) printDirectory(directoryPath string, depth int, ignoreSet IgnoreSet) error {
	entries, readDirectoryError := afero.ReadDir(printer.FileSystem, directoryPath)
	if readDirectoryError != nil {
		return &FileSystemError{Operation: operationReadDirectory, Path: directoryPath, Err: readDirectoryError}
	}
	sort.Slice(entries, func(left, right int) bool {
		return entries[left].Name() < entries[right].Name()
	})

	prefix := strings.Repeat(IndentGlyph, depth)
	for _, entry := range entries {
		entryName := entry.Name()
		entryPath := filepath.Join(directoryPath, entryName)
		if ignoreSet.Contains(entryName) {
			printer.logger().Debug(debugSkipIgnoredMessage, zap.String(pathLogField, entryPath))
			continue
		}

		if _, writeError := io.WriteString(printer.Output, prefix+BranchGlyph+entryName+entryLineTerminator); writeError != nil {
			return &FileSystemError{Operation: operationWriteEntry, Path: entryPath, Err: writeError}
		}

		if entry.Mode()&os.ModeSymlink != 0 {
			printer.logger().Debug(debugSkipSymlinkMessage, zap.String(pathLogField, entryPath))
			continue
		}
		if !entry.IsDir() {
			continue
		}
		if descendError := printer.printDirectory(entryPath, depth+1, ignoreSet); descendError != nil {
			return descendError
		}
	}
	return nil
}

func (printer *Printer) logger() *zap.Logger {
	if printer.Logger == nil {
		return zap.NewNop()
	}
	return printer.Logger
}
