//go:build !((darwin || freebsd || linux) && !android) && !windows

package dlloader

const (
	libPrefix = "lib"
	libSuffix = ".so"
)

func openLibrary(string) (uintptr, error) {
	return 0, ErrUnsupported
}

func lookupSymbol(uintptr, string) (uintptr, error) {
	return 0, ErrUnsupported
}

func closeLibrary(uintptr) error {
	return ErrUnsupported
}

func call(uintptr, []uintptr) uintptr {
	return 0
}
