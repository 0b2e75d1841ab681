package suggest

import (
	"strings"
	"sync"
	"time"
)

// Key tecla relevante para la lista desplegable.
type Key string

const (
	KeyArrowDown Key = "ArrowDown"
	KeyArrowUp   Key = "ArrowUp"
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
)

// BlurGrace espera antes de cerrar la lista al perder el foco, para que una
// selección con puntero sobre la lista alcance a registrarse.
const BlurGrace = 150 * time.Millisecond

// State foto del estado de la lista. HighlightIndex = -1 significa ninguno.
type State[T any] struct {
	Query          string
	Candidates     []T
	HighlightIndex int
	IsOpen         bool
}

// Item candidato listo para mostrar, con los tramos resaltados.
type Item struct {
	Key         string    `json:"key"`
	Label       []Segment `json:"label"`
	Detail      []Segment `json:"detail,omitempty"`
	Highlighted bool      `json:"highlighted"`
}

// Navigator máquina de estados Closed / Open(highlightIndex) de una lista con búsqueda.
// Es seguro para uso concurrente: el cierre diferido por pérdida de foco corre en otra goroutine.
type Navigator[T any] struct {
	mu        sync.Mutex
	source    Source[T]
	query     string
	all       []T
	visible   []T
	highlight int
	open      bool
	grace     time.Duration
	blurTimer *time.Timer

	onCommit func(T)
	onChange func()
}

// NavigatorOption configura un Navigator.
type NavigatorOption[T any] func(*Navigator[T])

// WithCommit callback invocado al confirmar una selección (teclado o puntero).
func WithCommit[T any](fn func(T)) NavigatorOption[T] {
	return func(n *Navigator[T]) { n.onCommit = fn }
}

// WithChange callback invocado tras cada cambio de estado.
func WithChange[T any](fn func()) NavigatorOption[T] {
	return func(n *Navigator[T]) { n.onChange = fn }
}

// WithBlurGrace reemplaza BlurGrace.
func WithBlurGrace[T any](d time.Duration) NavigatorOption[T] {
	return func(n *Navigator[T]) { n.grace = d }
}

// NewNavigator crea una lista cerrada sin candidatos.
func NewNavigator[T any](source Source[T], opts ...NavigatorOption[T]) *Navigator[T] {
	n := &Navigator[T]{source: source, highlight: -1, grace: BlurGrace}
	for _, o := range opts {
		o(n)
	}
	return n
}

// SetCandidates reemplaza el conjunto de candidatos (p. ej. tras una búsqueda remota)
// y recalcula la lista visible con la consulta actual.
func (n *Navigator[T]) SetCandidates(all []T) {
	n.mu.Lock()
	n.all = all
	n.refilter()
	n.mu.Unlock()
	n.changed()
}

// Input el usuario escribió: la lista se abre sin resaltado.
func (n *Navigator[T]) Input(query string) {
	n.mu.Lock()
	n.cancelBlur()
	n.query = query
	n.refilter()
	n.open = true
	n.highlight = -1
	n.mu.Unlock()
	n.changed()
}

// Focus abre la lista sin resaltado.
func (n *Navigator[T]) Focus() {
	n.mu.Lock()
	n.cancelBlur()
	n.open = true
	n.highlight = -1
	n.mu.Unlock()
	n.changed()
}

// Press aplica una tecla. Con la lista cerrada las teclas se ignoran.
// Devuelve el candidato confirmado cuando Enter selecciona uno.
func (n *Navigator[T]) Press(k Key) (T, bool) {
	var zero T
	n.mu.Lock()
	if !n.open {
		n.mu.Unlock()
		return zero, false
	}
	switch k {
	case KeyArrowDown:
		n.highlight = min(n.highlight+1, len(n.visible)-1)
	case KeyArrowUp:
		if len(n.visible) > 0 {
			n.highlight = max(n.highlight-1, 0)
		}
	case KeyEnter:
		if n.highlight >= 0 && n.highlight < len(n.visible) {
			item := n.visible[n.highlight]
			n.close()
			n.mu.Unlock()
			n.commit(item)
			return item, true
		}
	case KeyEscape:
		n.close()
	default:
		n.mu.Unlock()
		return zero, false
	}
	n.mu.Unlock()
	n.changed()
	return zero, false
}

// Hover resalta el candidato bajo el puntero.
func (n *Navigator[T]) Hover(index int) {
	n.mu.Lock()
	if !n.open || index < 0 || index >= len(n.visible) {
		n.mu.Unlock()
		return
	}
	n.highlight = index
	n.mu.Unlock()
	n.changed()
}

// Select confirma el candidato visible index (selección con puntero).
// Con la lista cerrada no confirma nada; durante la gracia del Blur sigue abierta.
func (n *Navigator[T]) Select(index int) (T, bool) {
	var zero T
	n.mu.Lock()
	if !n.open || index < 0 || index >= len(n.visible) {
		n.mu.Unlock()
		return zero, false
	}
	item := n.visible[index]
	n.close()
	n.mu.Unlock()
	n.commit(item)
	return item, true
}

// Blur programa el cierre tras el periodo de gracia. Un Focus, Input o Select
// posterior cancela el cierre pendiente.
func (n *Navigator[T]) Blur() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancelBlur()
	var t *time.Timer
	t = time.AfterFunc(n.grace, func() {
		n.mu.Lock()
		if n.blurTimer != t {
			n.mu.Unlock()
			return
		}
		n.blurTimer = nil
		n.close()
		n.mu.Unlock()
		n.changed()
	})
	n.blurTimer = t
}

// Dispose cancela cualquier cierre pendiente; no se emiten más cambios por el temporizador.
func (n *Navigator[T]) Dispose() {
	n.mu.Lock()
	n.cancelBlur()
	n.mu.Unlock()
}

// State devuelve una copia del estado actual.
func (n *Navigator[T]) State() State[T] {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := make([]T, len(n.visible))
	copy(c, n.visible)
	return State[T]{Query: n.query, Candidates: c, HighlightIndex: n.highlight, IsOpen: n.open}
}

// Items candidatos visibles con resaltado de la consulta, listos para la UI.
// Con la lista cerrada devuelve una lista vacía.
func (n *Navigator[T]) Items() []Item {
	st := n.State()
	if !st.IsOpen {
		return []Item{}
	}
	return RenderItems(n.source, st.Candidates, st.Query, st.HighlightIndex)
}

// RenderItems aplica Render y Highlight a cada candidato; highlight = -1 para ninguno.
func RenderItems[T any](src Source[T], visible []T, query string, highlight int) []Item {
	items := make([]Item, 0, len(visible))
	if src.Render == nil {
		return items
	}
	q := strings.TrimSpace(query)
	for i, c := range visible {
		d := src.Render(c)
		it := Item{Key: d.Key, Label: Highlight(d.Label, q), Highlighted: i == highlight}
		if d.Detail != "" {
			it.Detail = Highlight(d.Detail, q)
		}
		items = append(items, it)
	}
	return items
}

func (n *Navigator[T]) refilter() {
	n.visible = n.source.Suggest(n.all, n.query)
	if n.highlight >= len(n.visible) {
		n.highlight = len(n.visible) - 1
	}
}

// close debe llamarse con mu tomado. Toda selección o cierre deja highlight en -1.
func (n *Navigator[T]) close() {
	n.cancelBlur()
	n.open = false
	n.highlight = -1
}

func (n *Navigator[T]) cancelBlur() {
	if n.blurTimer != nil {
		n.blurTimer.Stop()
		n.blurTimer = nil
	}
}

func (n *Navigator[T]) commit(item T) {
	if n.onCommit != nil {
		n.onCommit(item)
	}
	n.changed()
}

func (n *Navigator[T]) changed() {
	if n.onChange != nil {
		n.onChange()
	}
}
