package dashboard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

var fastDelays = dashboard.ViewDelays{Filter: 30 * time.Millisecond, Picker: 20 * time.Millisecond}

// eventReader consumidor de prueba de una vista.
type eventReader struct {
	sub     *dashboard.Subscription
	pending []dto.LiveEvent
}

// nextEvent espera el siguiente evento del tipo indicado, descartando los demás.
func (r *eventReader) nextEvent(t *testing.T, typ string) dto.LiveEvent {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		for len(r.pending) > 0 {
			ev := r.pending[0]
			r.pending = r.pending[1:]
			if ev.Type == typ {
				return ev
			}
		}
		select {
		case <-r.sub.Notify():
			r.pending = append(r.pending, r.sub.Next()...)
		case <-r.sub.Done():
			t.Fatalf("stream cerrado esperando %s", typ)
		case <-timeout:
			t.Fatalf("sin evento %s", typ)
		}
	}
}

func openView(t *testing.T, api *fakeAPI) (*dashboard.InventoryView, *eventReader) {
	t.Helper()
	reg := dashboard.NewLiveRegistry(fastDelays, nil, nil)
	v, err := reg.OpenInventory("sess-1", api)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Close(v.ID, "sess-1") })
	return v, &eventReader{sub: v.Attach()}
}

func TestInventoryView_CargaInicial(t *testing.T) {
	api := newFakeAPI()
	api.rows = sampleRows()
	_, r := openView(t, api)

	ev := r.nextEvent(t, dashboard.EventInventory)
	list := ev.Data.(dto.InventoryListResponse)
	assert.Equal(t, 4, list.Meta.Records)
}

func TestInventoryView_RafagaDeFiltroUnaSolaConsulta(t *testing.T) {
	api := newFakeAPI()
	api.rows = sampleRows()
	v, r := openView(t, api)
	r.nextEvent(t, dashboard.EventInventory)
	v.Wait()
	before := api.calls()

	for _, s := range []string{"A", "A1", "B", "B2"} {
		v.SetFilter(entity.InventoryFilter{SKU: s})
	}
	ev := r.nextEvent(t, dashboard.EventInventory)
	v.Wait()

	list := ev.Data.(dto.InventoryListResponse)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "B2", list.Items[0].SKU)
	assert.Equal(t, before+1, api.calls())
}

func TestInventoryView_RespuestaViejaDescartada(t *testing.T) {
	api := newFakeAPI()
	api.rows = sampleRows()
	api.inventoryDelay = map[string]time.Duration{"A1": 200 * time.Millisecond}
	v, r := openView(t, api)
	r.nextEvent(t, dashboard.EventInventory)

	v.SetFilter(entity.InventoryFilter{SKU: "A1"})
	time.Sleep(60 * time.Millisecond) // A1 confirmado y en vuelo
	v.SetFilter(entity.InventoryFilter{SKU: "B2"})

	ev := r.nextEvent(t, dashboard.EventInventory)
	assert.Equal(t, "B2", ev.Data.(dto.InventoryListResponse).Items[0].SKU)

	v.Wait()
	for _, ev := range append(r.pending, r.sub.Next()...) {
		if ev.Type == dashboard.EventInventory {
			t.Fatalf("llegó una respuesta vieja: %+v", ev.Data)
		}
	}
}

func TestInventoryView_ErrorNoDetieneElCiclo(t *testing.T) {
	api := newFakeAPI()
	api.rows = sampleRows()
	v, r := openView(t, api)
	r.nextEvent(t, dashboard.EventInventory)
	v.Wait()

	api.mu.Lock()
	api.errInventory = assert.AnError
	api.mu.Unlock()
	v.SetFilter(entity.InventoryFilter{SKU: "A1"})
	r.nextEvent(t, dashboard.EventInventoryError)
	v.Wait()

	api.mu.Lock()
	api.errInventory = nil
	api.mu.Unlock()
	v.SetFilter(entity.InventoryFilter{SKU: "B2"})
	ev := r.nextEvent(t, dashboard.EventInventory)
	assert.Len(t, ev.Data.(dto.InventoryListResponse).Items, 1)
}

func TestInventoryView_SelectorSkuConTeclado(t *testing.T) {
	api := newFakeAPI()
	api.skus = []entity.SkuRecord{{SKU: "A1", Name: "Tornillo"}, {SKU: "A2", Name: "Tuerca"}, {SKU: "B1", Name: "Arandela"}}
	v, r := openView(t, api)
	v.Wait()

	require.NoError(t, v.PickerInput(dashboard.PickerSku, "a"))
	// esperar a que la búsqueda remota (debounce 20 ms) actualice candidatos
	require.Eventually(t, func() bool {
		st, _ := v.PickerState(dashboard.PickerSku)
		return st.IsOpen && len(st.Items) == 3
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, v.PickerKey(dashboard.PickerSku, "ArrowDown"))
	require.NoError(t, v.PickerKey(dashboard.PickerSku, "ArrowDown"))
	st, _ := v.PickerState(dashboard.PickerSku)
	assert.Equal(t, 1, st.HighlightIndex)

	require.NoError(t, v.PickerKey(dashboard.PickerSku, "Enter"))
	ev := r.nextEvent(t, dashboard.EventSelected)
	assert.Equal(t, dashboard.PickerEvent{Kind: dashboard.PickerSku, Selected: "A2"}, ev.Data)

	st, _ = v.PickerState(dashboard.PickerSku)
	assert.False(t, st.IsOpen)
	assert.Equal(t, -1, st.HighlightIndex)
	assert.Equal(t, "A2", st.Selected)
}

func TestInventoryView_SelectorBodegaConPuntero(t *testing.T) {
	api := newFakeAPI()
	api.warehouses = sampleWarehouses()
	v, r := openView(t, api)
	v.Wait()

	require.NoError(t, v.PickerFocus(dashboard.PickerWarehouse))
	require.NoError(t, v.PickerBlur(dashboard.PickerWarehouse))
	require.NoError(t, v.PickerSelect(dashboard.PickerWarehouse, 2))

	ev := r.nextEvent(t, dashboard.EventSelected)
	assert.Equal(t, "W3", ev.Data.(dashboard.PickerEvent).Selected)
}

func TestInventoryView_SelectorDesconocido(t *testing.T) {
	v, _ := openView(t, newFakeAPI())
	assert.ErrorIs(t, v.PickerInput("color", "x"), dashboard.ErrUnknownPicker)
}

func TestInventoryView_DisposeSuprimeActualizaciones(t *testing.T) {
	api := newFakeAPI()
	api.rows = sampleRows()
	reg := dashboard.NewLiveRegistry(fastDelays, nil, nil)
	v, err := reg.OpenInventory("sess-1", api)
	require.NoError(t, err)
	r := &eventReader{sub: v.Attach()}
	r.nextEvent(t, dashboard.EventInventory)
	v.Wait()
	before := api.calls()

	v.SetFilter(entity.InventoryFilter{SKU: "A1"})
	require.NoError(t, reg.Close(v.ID, "sess-1"))
	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, before, api.calls(), "el temporizador pendiente no dispara")
	_, open := <-r.sub.Done()
	assert.False(t, open, "el consumidor termina al desmontar")
	assert.Empty(t, r.sub.Next(), "no hay eventos tras desmontar")
}

func TestInventoryView_ReconexionRecibeUltimaFoto(t *testing.T) {
	api := newFakeAPI()
	api.rows = sampleRows()
	v, first := openView(t, api)
	first.nextEvent(t, dashboard.EventInventory)

	v.SetFilter(entity.InventoryFilter{SKU: "B2"})
	first.nextEvent(t, dashboard.EventInventory)

	second := &eventReader{sub: v.Attach()}
	_, open := <-first.sub.Done()
	assert.False(t, open, "el consumidor anterior queda desplazado")

	ev := second.nextEvent(t, dashboard.EventInventory)
	items := ev.Data.(dto.InventoryListResponse).Items
	require.Len(t, items, 1)
	assert.Equal(t, "B2", items[0].SKU)
}

// ─── Registro ────────────────────────────────────────────────────────────────

func TestLiveRegistry_AisladoPorSesion(t *testing.T) {
	reg := dashboard.NewLiveRegistry(fastDelays, nil, nil)
	v, err := reg.OpenInventory("sess-1", newFakeAPI())
	require.NoError(t, err)
	defer reg.CloseAll()

	_, err = reg.Get(v.ID, "sess-2")
	assert.ErrorIs(t, err, dashboard.ErrViewNotFound)
	assert.ErrorIs(t, reg.Close(v.ID, "sess-2"), dashboard.ErrViewNotFound)

	got, err := reg.Get(v.ID, "sess-1")
	require.NoError(t, err)
	assert.Same(t, v, got)
}

func TestLiveRegistry_LimitePorSesionYCloseOwner(t *testing.T) {
	reg := dashboard.NewLiveRegistry(fastDelays, nil, nil)
	for i := 0; i < dashboard.MaxViewsPerOwner; i++ {
		v, err := reg.OpenInventory("sess-1", newFakeAPI())
		require.NoError(t, err)
		v.Attach()
	}
	_, err := reg.OpenInventory("sess-1", newFakeAPI())
	assert.ErrorIs(t, err, dashboard.ErrTooManyViews, "todas las vistas tienen consumidor")

	_, err = reg.OpenInventory("sess-2", newFakeAPI())
	require.NoError(t, err)

	reg.CloseOwner("sess-1")
	assert.Equal(t, 1, reg.Count())
	reg.CloseAll()
	assert.Equal(t, 0, reg.Count())
}

func TestLiveRegistry_PestanasAbandonadasNoBloqueanNuevaVista(t *testing.T) {
	reg := dashboard.NewLiveRegistry(fastDelays, nil, nil)
	defer reg.CloseAll()
	var first *dashboard.InventoryView
	for i := 0; i < dashboard.MaxViewsPerOwner; i++ {
		v, err := reg.OpenInventory("sess-1", newFakeAPI())
		require.NoError(t, err)
		if first == nil {
			first = v
		}
		time.Sleep(time.Millisecond)
	}

	v, err := reg.OpenInventory("sess-1", newFakeAPI())

	require.NoError(t, err)
	assert.Equal(t, dashboard.MaxViewsPerOwner, reg.Count())
	_, err = reg.Get(first.ID, "sess-1")
	assert.ErrorIs(t, err, dashboard.ErrViewNotFound, "se reemplaza la vista con menos actividad")
	_, err = reg.Get(v.ID, "sess-1")
	assert.NoError(t, err)
}

func TestLiveRegistry_SweepCierraVistasInactivasSinConsumidor(t *testing.T) {
	reg := dashboard.NewLiveRegistry(fastDelays, nil, nil)
	defer reg.CloseAll()
	idle, err := reg.OpenInventory("sess-1", newFakeAPI())
	require.NoError(t, err)
	watched, err := reg.OpenInventory("sess-1", newFakeAPI())
	require.NoError(t, err)
	watched.Attach()

	assert.Equal(t, 0, reg.Sweep(time.Now(), time.Minute), "dentro del periodo de gracia")

	closed := reg.Sweep(time.Now().Add(2*time.Minute), time.Minute)

	assert.Equal(t, 1, closed)
	_, err = reg.Get(idle.ID, "sess-1")
	assert.ErrorIs(t, err, dashboard.ErrViewNotFound)
	_, err = reg.Get(watched.ID, "sess-1")
	assert.NoError(t, err, "la vista con consumidor sigue abierta")
}

func TestLiveRegistry_SweeperPeriodicoYCloseAll(t *testing.T) {
	reg := dashboard.NewLiveRegistry(fastDelays, nil, nil)
	_, err := reg.OpenInventory("sess-1", newFakeAPI())
	require.NoError(t, err)

	reg.StartSweeper(10*time.Millisecond, 20*time.Millisecond)
	reg.StartSweeper(10*time.Millisecond, 20*time.Millisecond)

	assert.Eventually(t, func() bool { return reg.Count() == 0 }, time.Second, 5*time.Millisecond)
	reg.CloseAll()
	reg.CloseAll()
}
