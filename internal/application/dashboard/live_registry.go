package dashboard

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

const (
	// MaxViewsPerOwner vistas abiertas simultáneas por sesión.
	MaxViewsPerOwner = 8
	// IdleViewTTL una vista sin consumidor SSE ni actividad durante este tiempo se cierra.
	IdleViewTTL = 2 * time.Minute
	// SweepInterval frecuencia de la limpieza de vistas inactivas.
	SweepInterval = 30 * time.Second
)

var (
	// ErrViewNotFound la vista no existe o pertenece a otra sesión.
	ErrViewNotFound = errors.New("vista no encontrada")
	// ErrTooManyViews la sesión alcanzó MaxViewsPerOwner con todas sus vistas conectadas.
	ErrTooManyViews = errors.New("demasiadas vistas abiertas")
)

// LiveRegistry vistas en vivo abiertas, indexadas por id. Cada vista pertenece a una sesión
// y no comparte estado con otras.
type LiveRegistry struct {
	delays ViewDelays
	log    *logger.Logger
	obs    Observer

	mu        sync.Mutex
	views     map[string]*InventoryView
	sweepStop chan struct{}
}

// NewLiveRegistry construye el registro.
func NewLiveRegistry(delays ViewDelays, log *logger.Logger, obs Observer) *LiveRegistry {
	if log == nil {
		log = logger.Nop()
	}
	if obs == nil {
		obs = nopObserver{}
	}
	return &LiveRegistry{delays: delays, log: log.Component("live"), obs: obs, views: make(map[string]*InventoryView)}
}

// OpenInventory crea y arranca una vista de inventario para owner. En el límite por sesión
// reemplaza la vista sin consumidor con menos actividad reciente (pestaña abandonada).
func (r *LiveRegistry) OpenInventory(owner string, api ports.InventoryAPI) (*InventoryView, error) {
	r.mu.Lock()
	n := 0
	var evict *InventoryView
	for _, v := range r.views {
		if v.Owner != owner {
			continue
		}
		n++
		if !v.Attached() && (evict == nil || v.LastSeen().Before(evict.LastSeen())) {
			evict = v
		}
	}
	if n >= MaxViewsPerOwner {
		if evict == nil {
			r.mu.Unlock()
			return nil, ErrTooManyViews
		}
		delete(r.views, evict.ID)
	} else {
		evict = nil
	}
	v := NewInventoryView(uuid.New().String(), owner, api, r.delays, r.log, r.obs)
	r.views[v.ID] = v
	total := len(r.views)
	r.mu.Unlock()

	if evict != nil {
		evict.Dispose()
		r.obs.LiveViewClosed()
		r.log.Debug().Str("view", evict.ID).Str("session", owner).Msg("vista sin consumidor reemplazada")
	}
	r.obs.LiveViewOpened()
	r.log.Debug().Str("view", v.ID).Str("session", owner).Int("total", total).Msg("vista abierta")
	v.Start()
	return v, nil
}

// Get devuelve la vista si pertenece a owner.
func (r *LiveRegistry) Get(id, owner string) (*InventoryView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[id]
	if !ok || v.Owner != owner {
		return nil, ErrViewNotFound
	}
	return v, nil
}

// Close desmonta la vista.
func (r *LiveRegistry) Close(id, owner string) error {
	r.mu.Lock()
	v, ok := r.views[id]
	if !ok || v.Owner != owner {
		r.mu.Unlock()
		return ErrViewNotFound
	}
	delete(r.views, id)
	r.mu.Unlock()

	v.Dispose()
	r.obs.LiveViewClosed()
	r.log.Debug().Str("view", id).Msg("vista cerrada")
	return nil
}

// CloseOwner desmonta todas las vistas de una sesión (logout).
func (r *LiveRegistry) CloseOwner(owner string) {
	r.closeWhere(func(v *InventoryView) bool { return v.Owner == owner })
}

// CloseAll detiene la limpieza y desmonta todas las vistas (apagado).
func (r *LiveRegistry) CloseAll() {
	r.mu.Lock()
	if r.sweepStop != nil {
		close(r.sweepStop)
		r.sweepStop = nil
	}
	r.mu.Unlock()
	r.closeWhere(func(*InventoryView) bool { return true })
}

// StartSweeper cierra cada every las vistas sin consumidor inactivas más de ttl.
// Llamadas repetidas no lanzan otra goroutine; CloseAll la detiene.
func (r *LiveRegistry) StartSweeper(every, ttl time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sweepStop != nil {
		return
	}
	stop := make(chan struct{})
	r.sweepStop = stop
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				r.Sweep(now, ttl)
			}
		}
	}()
}

// Sweep cierra las vistas sin consumidor cuya última actividad es anterior a now-ttl.
// Devuelve cuántas cerró.
func (r *LiveRegistry) Sweep(now time.Time, ttl time.Duration) int {
	n := r.closeWhere(func(v *InventoryView) bool { return v.Idle(now, ttl) })
	if n > 0 {
		r.log.Info().Int("closed", n).Msg("vistas inactivas cerradas")
	}
	return n
}

// Count vistas abiertas.
func (r *LiveRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

func (r *LiveRegistry) closeWhere(match func(*InventoryView) bool) int {
	r.mu.Lock()
	var closing []*InventoryView
	for id, v := range r.views {
		if match(v) {
			closing = append(closing, v)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()
	for _, v := range closing {
		v.Dispose()
		r.obs.LiveViewClosed()
	}
	return len(closing)
}
