package kernel

// PanicInfo contains details about a recovered task panic.
type PanicInfo struct {
	TaskID TaskID
	Value  any
	Stack  []byte
}

type panicState struct {
	active  bool
	handler func(PanicInfo)
}

// InPanicMode reports whether a task has panicked. No task runs afterwards.
func (k *Kernel) InPanicMode() bool { return k.panics.active }

// SetPanicHandler installs the handler invoked on the first task panic. It must not panic.
func (k *Kernel) SetPanicHandler(fn func(PanicInfo)) {
	k.panics.handler = fn
}

func (p *panicState) trigger(info PanicInfo) {
	if p.active {
		return
	}
	p.active = true
	info.Stack = captureStack()
	if p.handler != nil {
		p.handler(info)
	}
}
