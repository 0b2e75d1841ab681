// Package debounce coordina entrada del usuario → consulta remota diferida → resultado.
//
// Cada nuevo valor reinicia el temporizador (debounce final). Al vencer, el último valor se
// confirma y dispara exactamente una consulta. Solo el resultado de la confirmación más
// reciente puede actualizar el estado: las respuestas que llegan tarde se descartan
// comparando la generación, sin depender de que el transporte soporte abortar.
package debounce

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Retardos fijos de la política de UI.
const (
	PickerDelay = 300 * time.Millisecond // búsqueda en selectores de SKU/bodega
	FilterDelay = 400 * time.Millisecond // barra de filtros de inventario
)

// Fetcher ejecuta la consulta remota para un valor confirmado.
type Fetcher[Q, R any] func(ctx context.Context, q Q) (R, error)

// Hooks callbacks opcionales de observación (métricas, logs).
type Hooks[Q any] struct {
	Committed func(q Q)
	Stale     func(q Q)
}

// Controller debounce con guardia de generación. Seguro para uso concurrente.
type Controller[Q, R any] struct {
	delay    time.Duration
	fetch    Fetcher[Q, R]
	onResult func(Q, R)
	onError  func(Q, error)
	hooks    Hooks[Q]

	mu       sync.Mutex
	timer    *time.Timer
	pending  Q
	gen      uint64
	disposed bool
	ctx      context.Context
	cancel   context.CancelFunc
	tasks    sync.WaitGroup

	// deliver serializa verificación de generación + callback para que una
	// respuesta vieja nunca se entregue después de una más nueva.
	deliver sync.Mutex
}

// New crea un controlador. onResult y onError se invocan solo para la confirmación vigente.
func New[Q, R any](delay time.Duration, fetch Fetcher[Q, R], onResult func(Q, R), onError func(Q, error)) *Controller[Q, R] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller[Q, R]{
		delay:    delay,
		fetch:    fetch,
		onResult: onResult,
		onError:  onError,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// WithHooks registra hooks de observación. Debe llamarse antes del primer Input.
func (c *Controller[Q, R]) WithHooks(h Hooks[Q]) *Controller[Q, R] {
	c.hooks = h
	return c
}

// Input registra un nuevo valor y reinicia el temporizador.
func (c *Controller[Q, R]) Input(q Q) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.pending = q
	if c.timer != nil {
		c.timer.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		if c.disposed || c.timer != t {
			c.mu.Unlock()
			return
		}
		c.timer = nil
		c.commitLocked(c.pending)
		c.mu.Unlock()
	})
	c.timer = t
}

// Flush confirma q de inmediato (carga inicial, botón "Aplicar"), cancelando el temporizador pendiente.
func (c *Controller[Q, R]) Flush(q Q) *Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return doneTask()
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.pending = q
	return c.commitLocked(q)
}

// Dispose suprime el temporizador pendiente y cualquier actualización de estado futura.
// Las consultas en curso reciben un contexto cancelado y su resultado se descarta.
func (c *Controller[Q, R]) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	c.cancel()
}

// Disposed indica si el consumidor ya fue desmontado.
func (c *Controller[Q, R]) Disposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

// Wait espera a que terminen las consultas lanzadas hasta ahora.
func (c *Controller[Q, R]) Wait() {
	c.tasks.Wait()
}

// commitLocked debe llamarse con mu tomado.
func (c *Controller[Q, R]) commitLocked(q Q) *Task {
	c.gen++
	gen := c.gen
	ctx, cancel := context.WithCancel(c.ctx)
	task := &Task{cancel: cancel, done: make(chan struct{})}
	if c.hooks.Committed != nil {
		c.hooks.Committed(q)
	}
	c.tasks.Add(1)
	go c.run(ctx, task, gen, q)
	return task
}

func (c *Controller[Q, R]) run(ctx context.Context, task *Task, gen uint64, q Q) {
	defer c.tasks.Done()
	defer close(task.done)
	defer task.cancel()

	res, err := c.safeFetch(ctx, q)

	c.deliver.Lock()
	defer c.deliver.Unlock()
	if !c.current(gen) || task.cancelled() {
		if c.hooks.Stale != nil {
			c.hooks.Stale(q)
		}
		return
	}
	if err != nil {
		if c.onError != nil {
			c.onError(q, err)
		}
		return
	}
	if c.onResult != nil {
		c.onResult(q, res)
	}
}

func (c *Controller[Q, R]) current(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.disposed && gen == c.gen
}

// safeFetch convierte un panic del fetcher en error para no romper el ciclo.
func (c *Controller[Q, R]) safeFetch(ctx context.Context, q Q) (res R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("debounce: consulta abortada: %v", r)
		}
	}()
	return c.fetch(ctx, q)
}

// Task manejador cancelable de una consulta confirmada.
type Task struct {
	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
	done    chan struct{}
}

// Cancel cancela la consulta; su resultado no actualizará el estado.
func (t *Task) Cancel() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
	t.cancel()
}

// Done se cierra cuando la consulta terminó (entregada o descartada).
func (t *Task) Done() <-chan struct{} { return t.done }

func (t *Task) cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

func doneTask() *Task {
	t := &Task{cancel: func() {}, done: make(chan struct{}), stopped: true}
	close(t.done)
	return t
}
