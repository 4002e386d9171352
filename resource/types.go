package resource

// Handle identifies a live acquisition in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Kind classifies what an acquisition holds.
type Kind uint8

const (
	KindPinnedArray  Kind = iota + 1 // primitive array pinned for native access
	KindStringChars                  // UTF chars borrowed from a managed string
	KindNativeBuffer                 // memory allocated on the native heap
)

func (k Kind) String() string {
	switch k {
	case KindPinnedArray:
		return "pinned-array"
	case KindStringChars:
		return "string-chars"
	case KindNativeBuffer:
		return "native-buffer"
	default:
		return "unknown"
	}
}

// EventType is an acquisition lifecycle transition.
type EventType uint8

const (
	EventAcquired EventType = iota
	EventReleased
)

func (t EventType) String() string {
	if t == EventReleased {
		return "released"
	}
	return "acquired"
}

// Event is delivered to observers on every acquire and release.
type Event struct {
	Value  any
	Handle Handle
	Kind   Kind
	Type   EventType
}

// Observer receives acquisition lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) OnResourceEvent(e Event) { f(e) }

// Releaser is optionally implemented by values that free something when
// they leave the table.
type Releaser interface {
	Release()
}
