package kernel

// eventQueue holds pending event messages for one endpoint. It never blocks
// the sender: a full queue rejects the message and counts it as lost.
type eventQueue struct {
	buf   [mailboxSlots]Message
	start int
	n     int
	lost  uint16
}

func (q *eventQueue) push(msg Message) bool {
	if q.n == len(q.buf) {
		if q.lost < ^uint16(0) {
			q.lost++
		}
		return false
	}
	q.buf[(q.start+q.n)%len(q.buf)] = msg
	q.n++
	return true
}

func (q *eventQueue) pop() (Message, bool) {
	if q.n == 0 {
		return Message{}, false
	}
	msg := q.buf[q.start]
	q.buf[q.start] = Message{}
	q.start = (q.start + 1) % len(q.buf)
	q.n--
	return msg, true
}

func (q *eventQueue) len() int { return q.n }

// takeLost returns the number of rejected messages since the last call.
func (q *eventQueue) takeLost() int {
	n := q.lost
	q.lost = 0
	return int(n)
}
