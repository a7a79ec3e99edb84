package ritematica

import "fmt"

type unsupportedVersionError int32

func (e unsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported litematica version %d (expected 6 or 7)", int32(e))
}

type invalidExtensionErr struct {
	path string
}

func (e *invalidExtensionErr) Error() string {
	return fmt.Sprintf("%q does not have a .litematic extension", e.path)
}

func invalidExtensionError(path string) error {
	return &invalidExtensionErr{path: path}
}
