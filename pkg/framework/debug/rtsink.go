package debug

import "sync/atomic"

// Note is a fault report from the audio path. Messages are fixed
// strings so the report never formats or allocates on the deadline
// path.
type Note struct {
	Level LogLevel
	Msg   string
}

// RTSink is a bounded queue between the audio thread and the logger.
// Pushes never block; when the queue is full the note is dropped and
// counted. A control-context goroutine drains the queue into a Logger.
type RTSink struct {
	notes   chan Note
	dropped atomic.Uint64
}

// NewRTSink creates a sink holding up to capacity pending notes.
func NewRTSink(capacity int) *RTSink {
	if capacity <= 0 {
		capacity = 64
	}
	return &RTSink{notes: make(chan Note, capacity)}
}

// Note records a fault from the audio thread. Never blocks.
func (s *RTSink) Note(level LogLevel, msg string) {
	select {
	case s.notes <- Note{Level: level, Msg: msg}:
	default:
		s.dropped.Add(1)
	}
}

// Drain forwards all pending notes to the logger. Control context only.
func (s *RTSink) Drain(l *Logger) {
	for {
		select {
		case n := <-s.notes:
			switch n.Level {
			case LogLevelDebug:
				l.Debugf("%s", n.Msg)
			case LogLevelWarn:
				l.Warnf("%s", n.Msg)
			case LogLevelError:
				l.Errorf("%s", n.Msg)
			default:
				l.Infof("%s", n.Msg)
			}
		default:
			return
		}
	}
}

// Dropped returns the number of notes lost to a full queue.
func (s *RTSink) Dropped() uint64 {
	return s.dropped.Load()
}
