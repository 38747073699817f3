package buffer

// A Message is a unit of data stored in the Buffer, and sent to and from an
// engine over Readers and Writers.
type Message interface {

	// IsMessage is a marker method. A programmer must explicitly mark a type
	// as a Message by implementing this method.
	IsMessage()
}

// A Reader is a read-only channel of Messages.
type Reader (<-chan Message)

// A Writer is a write-only channel of Messages.
type Writer (chan<- Message)

// A ReaderWriter is a bi-directional channel of Messages. It is recommended
// to typecast a ReaderWriter down into a Reader or a Writer before using it.
type ReaderWriter (chan Message)

// Reader returns the read-only direction of a ReaderWriter.
func (rw ReaderWriter) Reader() Reader {
	return (chan Message)(rw)
}

// Writer returns the write-only direction of a ReaderWriter.
func (rw ReaderWriter) Writer() Writer {
	return (chan Message)(rw)
}

// NewReaderWriter returns an asynchronous ReaderWriter with a capacity of
// `cap`. Using a `cap` of zero will return a synchronous ReaderWriter.
func NewReaderWriter(cap int) ReaderWriter {
	return make(ReaderWriter, cap)
}

// A Buffer is a FIFO queue of Messages with a limited capacity. It will not
// accept Messages while it is full. An engine uses a Buffer to hold output
// Messages that have not been flushed to its Writer yet.
type Buffer struct {
	top      int
	free     int
	empty    bool
	messages []Message
}

// New returns an empty Buffer with a capacity of `cap`. This function will
// panic if `cap` is less than, or equal, to zero.
func New(cap int) Buffer {
	if cap <= 0 {
		panic("buffer capacity must be greater than zero")
	}
	return Buffer{
		top:      0,
		free:     0,
		empty:    true,
		messages: make([]Message, cap, cap),
	}
}

// Enqueue a Message at the end of the Buffer. Returns true if the Buffer
// accepted the Message, otherwise it returns false. The Buffer will not
// accept a Message when its internal queue is full.
func (buf *Buffer) Enqueue(message Message) bool {
	if buf.IsFull() {
		return false
	}

	buf.messages[buf.free] = message
	buf.free = (buf.free + 1) % len(buf.messages)
	buf.empty = false

	return true
}

// Dequeue a Message from the front of the Buffer. Returns true if the Buffer
// dropped a Message from its internal queue, otherwise it returns false. The
// Buffer will not drop a Message when its internal queue is empty.
func (buf *Buffer) Dequeue() bool {
	if buf.IsEmpty() {
		return false
	}

	buf.top = (buf.top + 1) % len(buf.messages)
	buf.empty = buf.top == buf.free

	return true
}

// Peek clones the Message at the front of the Buffer and returns a Reader
// that will produce this Message. The Message is not dequeued. Peek returns
// a nil Reader when the Buffer is empty, so it can be selected on directly;
// receiving from a nil channel blocks forever.
func (buf *Buffer) Peek() Reader {
	if buf.IsEmpty() {
		return nil
	}

	peek := NewReaderWriter(1)
	peek <- buf.messages[buf.top]

	return peek.Reader()
}

// IsFull returns true if the Buffer is full, otherwise it returns false. If
// the Buffer is full, a call to `Buffer.Enqueue` will fail, otherwise it
// will succeed.
func (buf *Buffer) IsFull() bool {
	return buf.top == buf.free && !buf.empty
}

// IsEmpty returns true if the Buffer is empty, otherwise it returns false.
// If the Buffer is empty, a call to `Buffer.Dequeue` will fail, otherwise it
// will succeed.
func (buf *Buffer) IsEmpty() bool {
	return buf.empty
}
