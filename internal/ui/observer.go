package ui

// ChannelObserver bridges driver progress callbacks to the Bubble Tea
// model. It satisfies driver.FileObserver; the channel must be closed by
// the producer side once the run is over.
type ChannelObserver struct {
	ch chan Event
}

// NewChannelObserver returns an observer with a buffered event channel.
func NewChannelObserver(buf int) *ChannelObserver {
	if buf <= 0 {
		buf = 64
	}
	return &ChannelObserver{ch: make(chan Event, buf)}
}

// Events exposes the channel the progress model listens on.
func (o *ChannelObserver) Events() <-chan Event {
	return o.ch
}

// Close signals the model that no more events will arrive.
func (o *ChannelObserver) Close() {
	close(o.ch)
}

func (o *ChannelObserver) FileStarted(path string) {
	o.ch <- Event{File: path, Status: StatusChecking}
}

func (o *ChannelObserver) FileFinished(path string, diagnostics int, fromCache bool) {
	status := StatusClean
	switch {
	case fromCache:
		status = StatusCached
	case diagnostics > 0:
		status = StatusIssues
	}
	o.ch <- Event{File: path, Status: status, Diagnostics: diagnostics}
}
