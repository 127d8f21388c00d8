package histcompare

import (
	"context"
	"fmt"
	"sync"
)

// Slot identifies one of the two images of a comparison.
type Slot int

const (
	// First is the first image. Its strokes are shifted to the left.
	First Slot = iota

	// Second is the second image. Its strokes are shifted to the right.
	Second
)

// Slots is the number of images in a comparison.
const Slots = 2

// String returns a 1-based name for the slot.
func (slot Slot) String() string {
	return fmt.Sprintf("image %d", int(slot)+1)
}

// SlotState is the state of an image slot.
type SlotState int

const (
	// Empty means no image was selected yet.
	Empty SlotState = iota

	// Decoding means an image was selected and its histogram is being
	// computed.
	Decoding

	// Ready means the slot has a histogram.
	Ready

	// Failed means the selected image could not be decoded. The slot stays
	// failed until another image is selected.
	Failed
)

// String returns the lower-case name of the state.
func (state SlotState) String() string {
	switch state {
	case Empty:
		return "empty"
	case Decoding:
		return "decoding"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("SlotState(%d)", int(state))
}

// Request is handed out when a new image is selected for a slot. Its result
// is applied with Session.Complete.
type Request struct {
	// Slot is the slot the image was selected for.
	Slot Slot

	// Generation distinguishes successive selections for the same slot.
	Generation uint64

	// Locator identifies the selected image.
	Locator string
}

// slotData is the state of one slot.
type slotData struct {
	state      SlotState
	generation uint64
	locator    string
	hist       *Histogram
	err        error
}

// Session holds the state of one comparison: the two image slots and the
// histogram mode. Images are decoded outside the session. Each selection
// hands out a Request and only the result of the latest Request of a slot is
// accepted, so a slow decode can never overwrite the histogram of an image
// selected after it.
//
// Session's methods are concurrency safe.
type Session struct {
	sync.Mutex

	slots [Slots]slotData
	mode  Mode
}

// NewSession returns a session with two empty slots in Brightness mode.
func NewSession() *Session {
	return new(Session)
}

// Begin selects a new image for the slot. The slot's previous histogram is
// discarded and the slot is decoding until the returned Request is completed.
func (session *Session) Begin(slot Slot, locator string) Request {
	session.Lock()
	defer session.Unlock()

	data := &session.slots[slot]
	data.generation++
	data.state = Decoding
	data.locator = locator
	data.hist = nil
	data.err = nil

	return Request{Slot: slot, Generation: data.generation, Locator: locator}
}

// Complete applies the result of decoding the image of a Request. If err is
// nil, the slot becomes ready with the given histogram. Otherwise it fails.
//
// If another image was selected for the slot since the Request was issued,
// or the Request was already completed, nothing changes and false is
// returned.
func (session *Session) Complete(request Request, hist *Histogram, err error) bool {
	session.Lock()
	defer session.Unlock()

	data := &session.slots[request.Slot]
	if data.generation != request.Generation || data.state != Decoding {
		// Stale.
		return false
	}

	if err != nil {
		data.state = Failed
		data.err = err
		return true
	}
	if hist == nil {
		hist = new(Histogram)
	}
	data.state = Ready
	data.hist = hist
	return true
}

// Load selects the image for the slot and decodes it with the sampler,
// blocking until done. Decoding errors leave the slot failed and are
// returned.
func (session *Session) Load(ctx context.Context, sampler *Sampler, slot Slot, locator string) error {
	request := session.Begin(slot, locator)
	hist, err := sampler.Histogram(ctx, locator)
	session.Complete(request, hist, err)
	return err
}

// SetMode sets the histogram mode.
func (session *Session) SetMode(mode Mode) {
	session.Lock()
	defer session.Unlock()
	session.mode = mode
}

// Mode returns the current histogram mode.
func (session *Session) Mode() Mode {
	session.Lock()
	defer session.Unlock()
	return session.mode
}

// State returns the state of the slot.
func (session *Session) State(slot Slot) SlotState {
	session.Lock()
	defer session.Unlock()
	return session.slots[slot].state
}

// Locator returns the locator of the image last selected for the slot.
func (session *Session) Locator(slot Slot) string {
	session.Lock()
	defer session.Unlock()
	return session.slots[slot].locator
}

// Err returns the error of a failed slot or nil.
func (session *Session) Err(slot Slot) error {
	session.Lock()
	defer session.Unlock()
	return session.slots[slot].err
}

// Histograms returns the histograms of the two slots. Slots that are not
// ready yield nil.
func (session *Session) Histograms() (first, second *Histogram) {
	session.Lock()
	defer session.Unlock()
	return session.slots[First].hist, session.slots[Second].hist
}

// Render draws the histograms of all ready slots in the current mode. See
// Renderer.Render.
func (session *Session) Render(renderer *Renderer, surface Surface) bool {
	session.Lock()
	first, second, mode := session.slots[First].hist, session.slots[Second].hist, session.mode
	session.Unlock()

	return renderer.Render(surface, mode, first, second)
}
