package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/debounce"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/suggest"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// Tipos de evento publicados por una vista de inventario.
const (
	EventInventory      = "inventory"
	EventInventoryError = "inventory_error"
	EventPicker         = "picker"
	EventPickerError    = "picker_error"
	EventSelected       = "selected"
)

// Nombres de controlador para métricas.
const (
	ctrlFilter     = "inventory_filter"
	ctrlSkuSearch  = "sku_search"
	ctrlWarehouses = "warehouse_load"
)

// ErrUnknownPicker el selector pedido no existe en la vista.
var ErrUnknownPicker = errors.New("selector desconocido")

// Observer métricas de las vistas en vivo; nil desactiva.
type Observer interface {
	Committed(name string)
	Stale(name string)
	LiveViewOpened()
	LiveViewClosed()
}

type nopObserver struct{}

func (nopObserver) Committed(string) {}
func (nopObserver) Stale(string)     {}
func (nopObserver) LiveViewOpened()  {}
func (nopObserver) LiveViewClosed()  {}

// PickerEvent payload de EventPicker / EventSelected / EventPickerError.
type PickerEvent struct {
	Kind     PickerKind               `json:"kind"`
	State    *dto.PickerStateResponse `json:"state,omitempty"`
	Selected string                   `json:"selected,omitempty"`
	Error    string                   `json:"error,omitempty"`
}

// InventoryView vista en vivo de la página de inventario: barra de filtros con debounce de 400 ms,
// selector de SKU con búsqueda remota (300 ms) y selector de bodega con filtro local.
// Todo cambio de estado se publica en Stream.
type InventoryView struct {
	ID    string
	Owner string

	api    ports.InventoryAPI
	log    *logger.Logger
	obs    Observer
	stream *Stream

	filter     *debounce.Controller[entity.InventoryFilter, []entity.InventoryRow]
	skuSearch  *debounce.Controller[string, []entity.SkuRecord]
	warehouses *debounce.Controller[struct{}, []entity.WarehouseRecord]

	skuPicker *navPicker[entity.SkuRecord]
	whPicker  *navPicker[entity.WarehouseRecord]

	mu         sync.Mutex
	lastFilter entity.InventoryFilter
	lastSeen   time.Time
	disposed   bool
}

// ViewDelays retardos de debounce; los tests los acortan.
type ViewDelays struct {
	Filter time.Duration
	Picker time.Duration
}

// DefaultDelays retardos de la política de UI.
var DefaultDelays = ViewDelays{Filter: debounce.FilterDelay, Picker: debounce.PickerDelay}

// NewInventoryView arma la vista; Start lanza las cargas iniciales.
func NewInventoryView(id, owner string, api ports.InventoryAPI, delays ViewDelays, log *logger.Logger, obs Observer) *InventoryView {
	if log == nil {
		log = logger.Nop()
	}
	if obs == nil {
		obs = nopObserver{}
	}
	v := &InventoryView{
		ID:       id,
		Owner:    owner,
		api:      api,
		log:      log.Component("live_inventory"),
		obs:      obs,
		stream:   NewStream(),
		lastSeen: time.Now(),
	}

	v.filter = debounce.New(delays.Filter,
		func(ctx context.Context, f entity.InventoryFilter) ([]entity.InventoryRow, error) {
			return v.api.ListInventory(ctx, f)
		},
		func(_ entity.InventoryFilter, rows []entity.InventoryRow) {
			v.stream.Publish(dto.LiveEvent{Type: EventInventory, Data: BuildInventoryList(rows)})
		},
		func(f entity.InventoryFilter, err error) {
			v.log.Warn().Err(err).Str("sku", f.SKU).Str("location", f.Location).Msg("carga de inventario fallida")
			v.stream.Publish(dto.LiveEvent{Type: EventInventoryError, Data: domain.UserMessage(err, "Error al cargar el inventario")})
		},
	).WithHooks(hooksFor[entity.InventoryFilter](obs, ctrlFilter))

	v.skuPicker = newNavPicker(SkuSource,
		func(s entity.SkuRecord) string { return s.SKU },
		func() { v.publishPicker(PickerSku) },
		func(key string) { v.publishSelected(PickerSku, key) },
	)
	v.whPicker = newNavPicker(WarehouseSource,
		func(w entity.WarehouseRecord) string { return w.Code },
		func() { v.publishPicker(PickerWarehouse) },
		func(key string) { v.publishSelected(PickerWarehouse, key) },
	)

	v.skuSearch = debounce.New(delays.Picker,
		func(ctx context.Context, q string) ([]entity.SkuRecord, error) {
			return v.api.ListSkus(ctx, entity.SkuFilter{Query: q})
		},
		func(_ string, skus []entity.SkuRecord) { v.skuPicker.nav.SetCandidates(skus) },
		func(_ string, err error) { v.publishPickerError(PickerSku, err) },
	).WithHooks(hooksFor[string](obs, ctrlSkuSearch))
	v.skuPicker.onInput = func(q string) { v.skuSearch.Input(strings.TrimSpace(q)) }

	v.warehouses = debounce.New(0,
		func(ctx context.Context, _ struct{}) ([]entity.WarehouseRecord, error) {
			return v.api.ListWarehouses(ctx)
		},
		func(_ struct{}, whs []entity.WarehouseRecord) { v.whPicker.nav.SetCandidates(whs) },
		func(_ struct{}, err error) { v.publishPickerError(PickerWarehouse, err) },
	).WithHooks(hooksFor[struct{}](obs, ctrlWarehouses))

	return v
}

func hooksFor[Q any](obs Observer, name string) debounce.Hooks[Q] {
	return debounce.Hooks[Q]{
		Committed: func(Q) { obs.Committed(name) },
		Stale:     func(Q) { obs.Stale(name) },
	}
}

// Start carga inventario sin filtros, la primera página de SKUs y las bodegas.
func (v *InventoryView) Start() {
	v.filter.Flush(entity.InventoryFilter{})
	v.skuSearch.Flush("")
	v.warehouses.Flush(struct{}{})
}

// Attach conecta un consumidor de eventos; desplaza al anterior y recibe primero la última
// foto de inventario y de cada selector.
func (v *InventoryView) Attach() *Subscription {
	v.touch()
	return v.stream.Attach()
}

// Detach desconecta al consumidor; la vista sigue abierta hasta que el registro la recoja.
func (v *InventoryView) Detach(sub *Subscription) {
	sub.Detach()
	v.touch()
}

// Idle indica si la vista no tiene consumidor y no ha tenido actividad desde hace más de ttl.
func (v *InventoryView) Idle(now time.Time, ttl time.Duration) bool {
	if v.stream.Attached() {
		return false
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return now.Sub(v.lastSeen) > ttl
}

// Attached indica si hay un consumidor SSE conectado.
func (v *InventoryView) Attached() bool { return v.stream.Attached() }

// LastSeen última actividad del cliente.
func (v *InventoryView) LastSeen() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastSeen
}

func (v *InventoryView) touch() {
	v.mu.Lock()
	v.lastSeen = time.Now()
	v.mu.Unlock()
}

// SetFilter texto de la barra de filtros; la carga se confirma 400 ms después de la última tecla.
func (v *InventoryView) SetFilter(f entity.InventoryFilter) {
	f = entity.InventoryFilter{SKU: strings.TrimSpace(f.SKU), Location: strings.TrimSpace(f.Location)}
	v.mu.Lock()
	v.lastFilter = f
	v.lastSeen = time.Now()
	v.mu.Unlock()
	v.filter.Input(f)
}

// Refresh recarga de inmediato con el último filtro (p. ej. tras guardar una fila).
func (v *InventoryView) Refresh() *debounce.Task {
	v.mu.Lock()
	f := v.lastFilter
	v.lastSeen = time.Now()
	v.mu.Unlock()
	return v.filter.Flush(f)
}

// PickerInput texto tecleado en un selector.
func (v *InventoryView) PickerInput(kind PickerKind, query string) error {
	p, err := v.picker(kind)
	if err != nil {
		return err
	}
	p.input(query)
	return nil
}

// PickerFocus el selector recibe el foco.
func (v *InventoryView) PickerFocus(kind PickerKind) error {
	p, err := v.picker(kind)
	if err != nil {
		return err
	}
	p.focus()
	return nil
}

// PickerKey tecla en un selector. Teclas desconocidas se ignoran.
func (v *InventoryView) PickerKey(kind PickerKind, key string) error {
	p, err := v.picker(kind)
	if err != nil {
		return err
	}
	p.press(suggest.Key(key))
	return nil
}

// PickerBlur el selector pierde el foco; la lista se cierra tras el periodo de gracia.
func (v *InventoryView) PickerBlur(kind PickerKind) error {
	p, err := v.picker(kind)
	if err != nil {
		return err
	}
	p.blur()
	return nil
}

// PickerSelect selección con puntero del candidato visible index.
func (v *InventoryView) PickerSelect(kind PickerKind, index int) error {
	p, err := v.picker(kind)
	if err != nil {
		return err
	}
	p.selectAt(index)
	return nil
}

// PickerState foto del selector.
func (v *InventoryView) PickerState(kind PickerKind) (dto.PickerStateResponse, error) {
	p, err := v.picker(kind)
	if err != nil {
		return dto.PickerStateResponse{}, err
	}
	return p.state(), nil
}

// Dispose cancela temporizadores y consultas en curso; ningún resultado posterior se publica.
func (v *InventoryView) Dispose() {
	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return
	}
	v.disposed = true
	v.mu.Unlock()

	v.filter.Dispose()
	v.skuSearch.Dispose()
	v.warehouses.Dispose()
	v.skuPicker.dispose()
	v.whPicker.dispose()
	v.stream.Close()
}

// Wait espera las consultas en curso (tests y apagado ordenado).
func (v *InventoryView) Wait() {
	v.filter.Wait()
	v.skuSearch.Wait()
	v.warehouses.Wait()
}

func (v *InventoryView) picker(kind PickerKind) (picker, error) {
	v.touch()
	return v.lookup(kind)
}

func (v *InventoryView) lookup(kind PickerKind) (picker, error) {
	switch kind {
	case PickerSku:
		return v.skuPicker, nil
	case PickerWarehouse:
		return v.whPicker, nil
	}
	return nil, ErrUnknownPicker
}

func (v *InventoryView) publishPicker(kind PickerKind) {
	p, err := v.lookup(kind)
	if err != nil {
		return
	}
	st := p.state()
	v.stream.Publish(dto.LiveEvent{Type: EventPicker, Data: PickerEvent{Kind: kind, State: &st}})
}

func (v *InventoryView) publishSelected(kind PickerKind, key string) {
	v.stream.Publish(dto.LiveEvent{Type: EventSelected, Data: PickerEvent{Kind: kind, Selected: key}})
}

func (v *InventoryView) publishPickerError(kind PickerKind, err error) {
	v.log.Warn().Err(err).Str("picker", string(kind)).Msg("carga de candidatos fallida")
	msg := domain.UserMessage(err, "Error al cargar sugerencias")
	v.stream.Publish(dto.LiveEvent{Type: EventPickerError, Data: PickerEvent{Kind: kind, Error: msg}})
}
