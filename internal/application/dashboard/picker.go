package dashboard

import (
	"sync"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/suggest"
)

// PickerKind selector de una vista en vivo.
type PickerKind string

const (
	PickerSku       PickerKind = "sku"
	PickerWarehouse PickerKind = "warehouse"
)

// picker operaciones de un selector, independientes del tipo de candidato.
type picker interface {
	input(query string)
	focus()
	press(k suggest.Key)
	blur()
	selectAt(index int)
	state() dto.PickerStateResponse
	dispose()
}

// navPicker adapta un Navigator tipado a picker y recuerda la última selección confirmada.
type navPicker[T any] struct {
	src     suggest.Source[T]
	nav     *suggest.Navigator[T]
	key     func(T) string
	onInput func(string)

	mu       sync.Mutex
	selected string
}

func newNavPicker[T any](src suggest.Source[T], key func(T) string, onChange func(), onCommit func(string)) *navPicker[T] {
	p := &navPicker[T]{src: src, key: key}
	p.nav = suggest.NewNavigator(src,
		suggest.WithChange[T](onChange),
		suggest.WithCommit(func(item T) {
			k := key(item)
			p.mu.Lock()
			p.selected = k
			p.mu.Unlock()
			if onCommit != nil {
				onCommit(k)
			}
		}),
	)
	return p
}

func (p *navPicker[T]) input(query string) {
	p.nav.Input(query)
	if p.onInput != nil {
		p.onInput(query)
	}
}

func (p *navPicker[T]) focus()              { p.nav.Focus() }
func (p *navPicker[T]) press(k suggest.Key) { p.nav.Press(k) }
func (p *navPicker[T]) blur()               { p.nav.Blur() }
func (p *navPicker[T]) selectAt(index int)  { p.nav.Select(index) }
func (p *navPicker[T]) dispose()            { p.nav.Dispose() }

func (p *navPicker[T]) state() dto.PickerStateResponse {
	st := p.nav.State()
	p.mu.Lock()
	sel := p.selected
	p.mu.Unlock()
	items := []suggest.Item{}
	if st.IsOpen {
		items = suggest.RenderItems(p.src, st.Candidates, st.Query, st.HighlightIndex)
	}
	return dto.PickerStateResponse{
		Query:          st.Query,
		IsOpen:         st.IsOpen,
		HighlightIndex: st.HighlightIndex,
		Selected:       sel,
		Items:          items,
	}
}
