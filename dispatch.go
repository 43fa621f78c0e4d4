package gesture

// EntityStore is the interface for optional ECS integration.
// When set on a Dispatcher, every gesture event is forwarded to it.
type EntityStore interface {
	EmitEvent(event Event)
}

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

type handlerRegistry struct {
	touchDown []handler[TouchDownEvent]
	drag      []handler[DragEvent]
	touchUp   []handler[TouchUpEvent]
	zoom      []handler[ZoomEvent]
	nextID    uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventTouchDown:
		h.reg.touchDown = removeHandler(h.reg.touchDown, h.id)
	case EventDrag:
		h.reg.drag = removeHandler(h.reg.drag, h.id)
	case EventTouchUp:
		h.reg.touchUp = removeHandler(h.reg.touchUp, h.id)
	case EventZoom:
		h.reg.zoom = removeHandler(h.reg.zoom, h.id)
	}
}

// removeHandler returns s without id in a fresh backing array, so a
// dispatch ranging over the old slice still reaches every handler.
func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	for i := range s {
		if s[i].id == id {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

// Dispatcher delivers gesture events to subscribers. Delivery is
// fire-and-forget, in registration order. Handlers may remove themselves or
// others while an event is being delivered; removals take effect from the
// next event.
type Dispatcher struct {
	handlers handlerRegistry
	store    EntityStore
}

// NewDispatcher creates a dispatcher with no subscribers.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// SetEntityStore sets the optional ECS bridge.
func (d *Dispatcher) SetEntityStore(store EntityStore) {
	d.store = store
}

// OnTouchDown registers a callback for TouchDown events.
func (d *Dispatcher) OnTouchDown(fn func(TouchDownEvent)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.touchDown = append(d.handlers.touchDown, handler[TouchDownEvent]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventTouchDown}
}

// OnDrag registers a callback for Drag events.
func (d *Dispatcher) OnDrag(fn func(DragEvent)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.drag = append(d.handlers.drag, handler[DragEvent]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventDrag}
}

// OnTouchUp registers a callback for TouchUp events.
func (d *Dispatcher) OnTouchUp(fn func(TouchUpEvent)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.touchUp = append(d.handlers.touchUp, handler[TouchUpEvent]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventTouchUp}
}

// OnZoom registers a callback for Zoom events.
func (d *Dispatcher) OnZoom(fn func(ZoomEvent)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.zoom = append(d.handlers.zoom, handler[ZoomEvent]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventZoom}
}

// Dispatch delivers events in order.
func (d *Dispatcher) Dispatch(events []Event) {
	for i := range events {
		d.fire(events[i])
	}
}

func (d *Dispatcher) fire(e Event) {
	switch e.Type {
	case EventTouchDown:
		ctx := e.TouchDown()
		for _, h := range d.handlers.touchDown {
			h.fn(ctx)
		}
	case EventDrag:
		ctx := e.Drag()
		for _, h := range d.handlers.drag {
			h.fn(ctx)
		}
	case EventTouchUp:
		ctx := e.TouchUp()
		for _, h := range d.handlers.touchUp {
			h.fn(ctx)
		}
	case EventZoom:
		ctx := e.Zoom()
		for _, h := range d.handlers.zoom {
			h.fn(ctx)
		}
	}
	if d.store != nil {
		d.store.EmitEvent(e)
	}
}
