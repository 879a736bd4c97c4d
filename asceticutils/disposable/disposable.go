package disposable

// Disposable releases whatever it was handed out for: a subscription, a registration.
type Disposable interface {
	Dispose()
}

type callbackDisposable struct {
	callback func()
	disposed bool
}

// NewDisposable wraps callback so that it runs on the first Dispose only.
func NewDisposable(callback func()) Disposable {
	return &callbackDisposable{callback: callback}
}

func (d *callbackDisposable) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	d.callback()
}

type compositeDisposable struct {
	delegates []Disposable
}

// NewCompositeDisposable disposes every delegate in the order given.
func NewCompositeDisposable(delegates ...Disposable) Disposable {
	return &compositeDisposable{delegates: delegates}
}

func (d *compositeDisposable) Dispose() {
	for _, delegate := range d.delegates {
		delegate.Dispose()
	}
}
