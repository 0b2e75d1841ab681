package dashboard

import (
	"sort"
	"sync"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
)

// Stream eventos de una vista en vivo. Guarda solo el último evento por clave (inventario,
// y por selector: estado, error y selección), así que un lector lento o que llega tarde
// recibe siempre la foto más reciente de cada parte. Atiende a un consumidor a la vez.
type Stream struct {
	mu     sync.Mutex
	seq    uint64
	last   map[string]streamEntry
	cur    *Subscription
	closed bool
}

type streamEntry struct {
	ev  dto.LiveEvent
	seq uint64
}

// Subscription consumidor del stream. Done se cierra cuando otro consumidor lo desplaza,
// al hacer Detach o al cerrar el stream.
type Subscription struct {
	s      *Stream
	notify chan struct{}
	done   chan struct{}
	sent   uint64
}

// NewStream crea un stream vacío.
func NewStream() *Stream {
	return &Stream{last: make(map[string]streamEntry)}
}

// eventKey clave de coalescencia. Datos y error del inventario comparten clave: gana el
// último resultado del filtro.
func eventKey(ev dto.LiveEvent) string {
	switch ev.Type {
	case EventInventory, EventInventoryError:
		return EventInventory
	}
	if pe, ok := ev.Data.(PickerEvent); ok {
		return ev.Type + ":" + string(pe.Kind)
	}
	return ev.Type
}

// Publish no bloquea; reemplaza el evento anterior con la misma clave. Tras Close no hace nada.
func (s *Stream) Publish(ev dto.LiveEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.seq++
	s.last[eventKey(ev)] = streamEntry{ev: ev, seq: s.seq}
	if s.cur != nil {
		signal(s.cur.notify)
	}
}

// Attach registra un consumidor nuevo y desplaza al anterior. El nuevo recibe primero
// la última foto de cada clave.
func (s *Stream) Attach() *Subscription {
	sub := &Subscription{s: s, notify: make(chan struct{}, 1), done: make(chan struct{})}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(sub.done)
		return sub
	}
	if s.cur != nil {
		close(s.cur.done)
	}
	s.cur = sub
	if len(s.last) > 0 {
		signal(sub.notify)
	}
	return sub
}

// Attached indica si hay un consumidor conectado.
func (s *Stream) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur != nil
}

// Close idempotente; cierra Done del consumidor actual.
func (s *Stream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.cur != nil {
		close(s.cur.done)
		s.cur = nil
	}
}

// Notify recibe una señal cuando hay eventos pendientes.
func (sub *Subscription) Notify() <-chan struct{} { return sub.notify }

// Done se cierra cuando el consumidor deja de ser el actual.
func (sub *Subscription) Done() <-chan struct{} { return sub.done }

// Next devuelve los eventos aún no entregados a este consumidor, en orden de publicación.
// Un consumidor desplazado no recibe nada.
func (sub *Subscription) Next() []dto.LiveEvent {
	s := sub.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur != sub {
		return nil
	}
	pending := make([]streamEntry, 0, len(s.last))
	for _, e := range s.last {
		if e.seq > sub.sent {
			pending = append(pending, e)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].seq < pending[j].seq })
	out := make([]dto.LiveEvent, len(pending))
	for i, e := range pending {
		out[i] = e.ev
	}
	if len(pending) > 0 {
		sub.sent = pending[len(pending)-1].seq
	}
	return out
}

// Detach suelta el stream si este consumidor sigue siendo el actual.
func (sub *Subscription) Detach() {
	s := sub.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == sub {
		s.cur = nil
		close(sub.done)
	}
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
