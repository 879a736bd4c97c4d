// Package dlloader opens a shared library by name and builds instances
// through constructor symbols it exports.
package dlloader

import (
	"path/filepath"
	"unsafe"

	"github.com/pkg/errors"
)

var (
	ErrLoad        = errors.New("dlloader: cannot load library")
	ErrSymbol      = errors.New("dlloader: cannot load symbol")
	ErrNotLoaded   = errors.New("dlloader: no library loaded")
	ErrNilInstance = errors.New("dlloader: constructor returned nil")
	ErrUnsupported = errors.New("dlloader: unsupported platform")
)

// LibraryPath builds dir/<prefix>name<suffix>, e.g. dir/libfoo.so on linux.
func LibraryPath(dir, name string) string {
	return filepath.Join(dir, libPrefix+name+libSuffix)
}

// Loader holds at most one open library.
type Loader struct {
	handle uintptr
	path   string
}

func Open(dir, name string) (*Loader, error) {
	l := &Loader{}
	if err := l.Load(dir, name); err != nil {
		return nil, err
	}
	return l, nil
}

// Load closes the current library, if any, and opens another one.
func (l *Loader) Load(dir, name string) error {
	if err := l.Close(); err != nil {
		return err
	}
	path := LibraryPath(dir, name)
	handle, err := openLibrary(path)
	if err != nil {
		return errors.Wrapf(ErrLoad, "%s: %v", path, err)
	}
	l.handle = handle
	l.path = path
	return nil
}

func (l *Loader) Path() string {
	return l.path
}

func (l *Loader) Loaded() bool {
	return l.handle != 0
}

func (l *Loader) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := closeLibrary(l.handle)
	l.handle = 0
	l.path = ""
	return errors.Wrap(err, "dlloader: close")
}

func (l *Loader) Symbol(name string) (uintptr, error) {
	if l.handle == 0 {
		return 0, ErrNotLoaded
	}
	sym, err := lookupSymbol(l.handle, name)
	if err != nil {
		return 0, errors.Wrapf(ErrSymbol, "%q: %v", name, err)
	}
	if sym == 0 {
		return 0, errors.Wrapf(ErrSymbol, "%q", name)
	}
	return sym, nil
}

// Instance calls the C function exported as symbol with args and treats
// its return value as a *T owned by the library.
func Instance[T any](l *Loader, symbol string, args ...uintptr) (*T, error) {
	fn, err := l.Symbol(symbol)
	if err != nil {
		return nil, err
	}
	ptr := call(fn, args)
	if ptr == 0 {
		return nil, errors.Wrapf(ErrNilInstance, "%q", symbol)
	}
	return (*T)(unsafe.Pointer(ptr)), nil
}
