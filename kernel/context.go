package kernel

// Context provides task-local access to kernel operations during one Step.
type Context struct {
	k      *Kernel
	taskID TaskID

	blocked   bool
	blockOnEP bool
	blockOn   Endpoint
	wakeAt    uint64
	waitTick  bool
}

// TaskID returns the current task ID.
func (c *Context) TaskID() TaskID { return c.taskID }

// NowTick returns the last observed tick value.
func (c *Context) NowTick() uint64 {
	if c.k == nil {
		return 0
	}
	return c.k.now
}

// Send queues a message on the capability endpoint and wakes its waiters.
func (c *Context) Send(to Capability, kind uint16, payload []byte) SendResult {
	if !to.valid() {
		return SendErrInvalidCap
	}
	if !to.canSend() {
		return SendErrNoSendRight
	}
	return c.k.send(to.ep, kind, payload)
}

// TryRecv reads one message from the capability endpoint without blocking.
func (c *Context) TryRecv(from Capability) (Message, bool) {
	if !from.valid() || !from.canRecv() {
		return Message{}, false
	}
	return c.k.recv(from.ep)
}

// Lost reports how many messages the endpoint rejected because its queue was
// full, and resets the count. It needs the receive right.
func (c *Context) Lost(from Capability) int {
	if !from.valid() || !from.canRecv() || from.ep >= c.k.endpointCount {
		return 0
	}
	return c.k.endpoints[from.ep].q.takeLost()
}

// BlockOn parks the task after this Step until a message arrives on the endpoint.
// It does nothing if a message is already queued.
func (c *Context) BlockOn(from Capability) {
	if !from.valid() || !from.canRecv() || from.ep >= c.k.endpointCount {
		return
	}
	if c.k.endpoints[from.ep].q.len() > 0 {
		return
	}
	c.blocked = true
	c.blockOnEP = true
	c.blockOn = from.ep
}

// SleepUntil parks the task until the clock reaches tick. It combines with
// BlockOn: whichever happens first wakes the task.
func (c *Context) SleepUntil(tick uint64) {
	if tick <= c.NowTick() {
		return
	}
	c.blocked = true
	if c.wakeAt == 0 || tick < c.wakeAt {
		c.wakeAt = tick
	}
}

// BlockOnTick parks the task until the next clock advance.
func (c *Context) BlockOnTick() {
	c.blocked = true
	c.waitTick = true
}
