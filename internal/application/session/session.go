// Package session reemplaza el almacenamiento clave-valor ambiental del navegador por un
// objeto de sesión explícito: se carga al iniciar sesión (o al arrancar), se inyecta en
// las vistas que lo necesitan y se guarda en cada cambio.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// Temas de UI admitidos.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ErrNotFound la sesión no existe o fue cerrada.
var ErrNotFound = errors.New("sesión no encontrada")

// User usuario autenticado.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Settings preferencias del usuario.
type Settings struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Theme string `json:"theme"`
}

// Session estado de un usuario autenticado. Token es la credencial bearer del API externo.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"-"`
	User      User      `json:"user"`
	Settings  Settings  `json:"settings"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store persistencia de sesiones.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// tombstoneTTL cuánto se recuerda un logout para que una carga en curso no reviva la sesión.
const tombstoneTTL = time.Minute

// pruneEvery frecuencia mínima de la limpieza de la caché.
const pruneEvery = time.Minute

// Manager ciclo de vida de sesiones: crear al iniciar sesión, cargar bajo demanda,
// guardar en cada cambio, borrar al cerrar sesión.
// Con TTL las sesiones vencen a partir de CreatedAt y salen de la caché.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time

	mu        sync.Mutex
	live      map[string]*Session
	deleted   map[string]time.Time
	lastPrune time.Time
}

// ManagerOption configura un Manager.
type ManagerOption func(*Manager)

// WithTTL vida de una sesión; 0 = sin vencimiento.
func WithTTL(d time.Duration) ManagerOption {
	return func(m *Manager) { m.ttl = d }
}

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) { m.now = now }
}

// NewManager construye el manager sobre un Store.
func NewManager(store Store, opts ...ManagerOption) *Manager {
	m := &Manager{store: store, now: time.Now, live: make(map[string]*Session), deleted: make(map[string]time.Time)}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Create abre una sesión nueva para la credencial y el usuario dados y la guarda.
func (m *Manager) Create(ctx context.Context, token string, user User) (*Session, error) {
	now := m.now()
	s := &Session{
		ID:    uuid.New().String(),
		Token: token,
		User:  user,
		Settings: Settings{
			Name:  user.Name,
			Email: user.Email,
			Theme: ThemeDark,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	m.mu.Lock()
	m.pruneLocked(now)
	m.live[s.ID] = s
	m.mu.Unlock()
	return clone(s), nil
}

// Get devuelve una copia de la sesión, cargándola del store si no está en memoria.
// Una sesión vencida se borra y se reporta como ErrNotFound.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	now := m.now()
	m.mu.Lock()
	m.pruneLocked(now)
	s, ok := m.live[id]
	if ok && m.expired(s, now) {
		delete(m.live, id)
	}
	m.mu.Unlock()
	if ok {
		if m.expired(s, now) {
			_ = m.store.Delete(ctx, id)
			return nil, ErrNotFound
		}
		return clone(s), nil
	}

	loaded, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.expired(loaded, now) {
		_ = m.store.Delete(ctx, id)
		return nil, ErrNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, gone := m.deleted[id]; gone {
		return nil, ErrNotFound
	}
	if cur, ok := m.live[id]; ok {
		return clone(cur), nil
	}
	m.live[id] = loaded
	return clone(loaded), nil
}

// UpdateSettings valida y guarda las preferencias; la sesión solo cambia si el guardado tuvo éxito.
func (m *Manager) UpdateSettings(ctx context.Context, id string, in Settings) (*Session, error) {
	if err := ValidateSettings(in); err != nil {
		return nil, err
	}
	current, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Settings == in {
		return current, nil
	}
	current.Settings = in
	current.UpdatedAt = m.now()
	if err := m.store.Save(ctx, current); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	m.mu.Lock()
	if _, gone := m.deleted[id]; gone {
		m.mu.Unlock()
		_ = m.store.Delete(ctx, id)
		return nil, ErrNotFound
	}
	m.live[id] = current
	m.mu.Unlock()
	return clone(current), nil
}

// Delete cierra la sesión.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.live, id)
	m.deleted[id] = m.now()
	m.mu.Unlock()
	if err := m.store.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// Cached sesiones en memoria.
func (m *Manager) Cached() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.CreatedAt) > m.ttl
}

// pruneLocked saca de la caché las sesiones vencidas y olvida los logouts viejos. Requiere m.mu.
func (m *Manager) pruneLocked(now time.Time) {
	if now.Sub(m.lastPrune) < pruneEvery {
		return
	}
	m.lastPrune = now
	for id, s := range m.live {
		if m.expired(s, now) {
			delete(m.live, id)
		}
	}
	for id, at := range m.deleted {
		if now.Sub(at) > tombstoneTTL {
			delete(m.deleted, id)
		}
	}
}

// ValidateSettings reglas del formulario de preferencias.
func ValidateSettings(in Settings) error {
	if in.Name == "" {
		return domain.Invalid("name", "El nombre es obligatorio.")
	}
	if in.Email == "" {
		return domain.Invalid("email", "El email es obligatorio.")
	}
	if in.Theme != ThemeDark && in.Theme != ThemeLight {
		return domain.Invalid("theme", "Tema no soportado.")
	}
	return nil
}

func clone(s *Session) *Session {
	c := *s
	return &c
}

// MemoryStore Store en memoria (desarrollo y tests).
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]Session
}

// NewMemoryStore construye un store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]Session)}
}

func (s *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &v, nil
}

func (s *MemoryStore) Save(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sess.ID] = *sess
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}
