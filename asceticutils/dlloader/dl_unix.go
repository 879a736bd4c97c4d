//go:build (darwin || freebsd || linux) && !android

package dlloader

import (
	"runtime"

	"github.com/ebitengine/purego"
)

const libPrefix = "lib"

var libSuffix = func() string {
	if runtime.GOOS == "darwin" {
		return ".dylib"
	}
	return ".so"
}()

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_LAZY)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}

func call(fn uintptr, args []uintptr) uintptr {
	r1, _, _ := purego.SyscallN(fn, args...)
	return r1
}
