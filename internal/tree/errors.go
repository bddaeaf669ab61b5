package tree

import "fmt"

const (
	operationReadDirectory = "read directory"
	operationWriteEntry    = "write entry"

	fileSystemErrorFormat = "%s %s: %v"
)

// FileSystemError reports a filesystem or output failure that aborted a traversal.
type FileSystemError struct {
	Operation string
	Path      string
	Err       error
}

func (fileSystemError *FileSystemError) Error() string {
	return fmt.Sprintf(fileSystemErrorFormat, fileSystemError.Operation, fileSystemError.Path, fileSystemError.Err)
}

func (fileSystemError *FileSystemError) Unwrap() error {
	return fileSystemError.Err
}
