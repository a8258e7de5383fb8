// Package kernel is a small cooperative scheduler: tasks take turns running
// one Step at a time on a single goroutine, block on a mailbox or a tick
// deadline, and are woken by sends and by the tick source.
package kernel

const (
	maxTasks     = 16
	maxEndpoints = 16
	mailboxSlots = 8
)

type TaskID uint8

// Rights define which operations are allowed for a capability.
type Rights uint8

const (
	RightSend Rights = 1 << iota
	RightRecv
)

// Endpoint identifies a mailbox.
type Endpoint uint8

// Capability grants access to an endpoint. The zero value grants nothing.
type Capability struct {
	ep     Endpoint
	rights Rights
}

func (c Capability) valid() bool   { return c.rights != 0 }
func (c Capability) Valid() bool   { return c.valid() }
func (c Capability) canSend() bool { return c.rights&RightSend != 0 }
func (c Capability) canRecv() bool { return c.rights&RightRecv != 0 }

// Restrict returns a capability with a reduced set of rights.
func (c Capability) Restrict(rights Rights) Capability {
	if !c.valid() {
		return Capability{}
	}
	r := c.rights & rights
	if r == 0 {
		return Capability{}
	}
	return Capability{ep: c.ep, rights: r}
}

// MaxMessageBytes is the maximum payload size. Messages carry events, not data.
const MaxMessageBytes = 16

// Message is a fixed-size envelope.
type Message struct {
	Kind uint16
	Len  uint8
	Data [MaxMessageBytes]byte
}

// Payload returns the valid part of Data.
func (m *Message) Payload() []byte {
	n := int(m.Len)
	if n > MaxMessageBytes {
		n = MaxMessageBytes
	}
	return m.Data[:n]
}

// SendResult describes the outcome of a send attempt.
type SendResult uint8

const (
	SendOK SendResult = iota
	SendErrInvalidCap
	SendErrNoSendRight
	SendErrNoEndpoint
	SendErrPayloadTooLarge
	SendErrQueueFull
)

func (r SendResult) String() string {
	switch r {
	case SendOK:
		return "ok"
	case SendErrInvalidCap:
		return "invalid capability"
	case SendErrNoSendRight:
		return "capability has no send right"
	case SendErrNoEndpoint:
		return "no such endpoint"
	case SendErrPayloadTooLarge:
		return "payload too large"
	case SendErrQueueFull:
		return "queue full"
	default:
		return "unknown"
	}
}

// Task is a cooperative unit of execution. Step must return promptly.
type Task interface {
	Step(*Context)
}

// TaskFunc adapts a function to Task.
type TaskFunc func(*Context)

func (f TaskFunc) Step(ctx *Context) { f(ctx) }

type taskState struct {
	task     Task
	runnable bool
	dead     bool
	wakeAt   uint64 // 0: no deadline
	waitTick bool
}

// Kernel is a minimal cooperative scheduler plus mailbox router.
// It is not safe for concurrent use; drive it from one goroutine.
type Kernel struct {
	endpoints     [maxEndpoints]endpointState
	endpointCount Endpoint

	tasks     [maxTasks]taskState
	taskCount TaskID

	rr  TaskID
	now uint64

	panics panicState
}

type endpointState struct {
	q        eventQueue
	waitMask uint32
}

// New creates a kernel instance.
func New() *Kernel {
	return &Kernel{}
}

// NewEndpoint allocates a new endpoint and returns a capability for it.
func (k *Kernel) NewEndpoint(rights Rights) Capability {
	if k.endpointCount >= maxEndpoints || rights == 0 {
		return Capability{}
	}
	ep := k.endpointCount
	k.endpointCount++
	return Capability{ep: ep, rights: rights}
}

// AddTask registers a task and returns its ID. ok is false when the table is full.
func (k *Kernel) AddTask(t Task) (id TaskID, ok bool) {
	if k.taskCount >= maxTasks || t == nil {
		return 0, false
	}
	id = k.taskCount
	k.taskCount++
	k.tasks[id] = taskState{task: t, runnable: true}
	return id, true
}

// Now returns the last tick passed to TickTo.
func (k *Kernel) Now() uint64 { return k.now }

// Step runs at most one runnable task step and reports whether one ran.
func (k *Kernel) Step() bool {
	if k.taskCount == 0 || k.panics.active {
		return false
	}

	for i := TaskID(0); i < k.taskCount; i++ {
		id := (k.rr + i) % k.taskCount
		st := &k.tasks[id]
		if st.task == nil || st.dead || !st.runnable {
			continue
		}

		k.rr = (id + 1) % k.taskCount
		ctx := &Context{k: k, taskID: id}
		k.run(id, st, ctx)

		if ctx.blocked && !st.dead {
			st.runnable = false
			st.wakeAt = ctx.wakeAt
			st.waitTick = ctx.waitTick
			if ctx.blockOnEP {
				k.endpoints[ctx.blockOn].waitMask |= 1 << id
			}
		}
		return true
	}
	return false
}

// RunReady steps until no task is runnable or limit steps have run.
// It returns the number of steps taken.
func (k *Kernel) RunReady(limit int) int {
	n := 0
	for n < limit && k.Step() {
		n++
	}
	return n
}

func (k *Kernel) run(id TaskID, st *taskState, ctx *Context) {
	defer func() {
		if r := recover(); r != nil {
			st.dead = true
			st.runnable = false
			k.panics.trigger(PanicInfo{TaskID: id, Value: r})
		}
	}()
	st.task.Step(ctx)
}

// TickTo advances the clock and wakes tasks whose deadline has passed or that
// wait for the next tick. Time never moves backwards.
func (k *Kernel) TickTo(now uint64) {
	if now <= k.now {
		return
	}
	k.now = now
	for tid := TaskID(0); tid < k.taskCount; tid++ {
		st := &k.tasks[tid]
		if st.runnable || st.dead {
			continue
		}
		if st.waitTick || (st.wakeAt != 0 && st.wakeAt <= now) {
			k.wake(tid)
		}
	}
}

func (k *Kernel) wake(tid TaskID) {
	st := &k.tasks[tid]
	st.runnable = true
	st.waitTick = false
	st.wakeAt = 0
	for ep := Endpoint(0); ep < k.endpointCount; ep++ {
		k.endpoints[ep].waitMask &^= 1 << tid
	}
}

func (k *Kernel) send(to Endpoint, kind uint16, payload []byte) SendResult {
	if to >= k.endpointCount {
		return SendErrNoEndpoint
	}
	if len(payload) > MaxMessageBytes {
		return SendErrPayloadTooLarge
	}

	var msg Message
	msg.Kind = kind
	msg.Len = uint8(len(payload))
	copy(msg.Data[:], payload)

	ep := &k.endpoints[to]
	if !ep.q.push(msg) {
		return SendErrQueueFull
	}

	wait := ep.waitMask
	for tid := TaskID(0); tid < k.taskCount && wait != 0; tid++ {
		if wait&(1<<tid) == 0 {
			continue
		}
		wait &^= 1 << tid
		k.wake(tid)
	}
	return SendOK
}

func (k *Kernel) recv(to Endpoint) (Message, bool) {
	if to >= k.endpointCount {
		return Message{}, false
	}
	return k.endpoints[to].q.pop()
}
