// Package screen conserva el último estado conocido de cada pantalla por sesión.
//
// Cada carga obtiene un ticket con número de secuencia creciente en todo el almacén; solo el
// ticket más reciente puede publicar su resultado. Una respuesta lenta que llega
// después de una más nueva se descarta en lugar de sobrescribir datos frescos.
package screen

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/jhoicas/ims-client/pkg/logger"
)

// Ticket identifica una carga en curso para una clave.
type Ticket struct {
	key string
	seq uint64
}

// Result valor entregado a la pantalla.
// Stale indica que la carga falló y Value es el último valor conocido.
type Result[T any] struct {
	Value     T
	Stale     bool
	UpdatedAt time.Time
	Err       error
}

type entry[T any] struct {
	key       string
	issued    uint64
	committed uint64
	settled   uint64 // mayor ticket terminado (publicado, descartado o fallido)
	value     T
	has       bool
	updatedAt time.Time
	expiresAt time.Time
}

// Store estado por clave con TTL y desalojo LRU por tamaño.
type Store[T any] struct {
	mu      sync.Mutex
	seq     uint64
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List
	now     func() time.Time
	log     *logger.Logger
}

// NewStore crea un almacén con capacidad maxSize y expiración ttl.
func NewStore[T any](maxSize int, ttl time.Duration, log *logger.Logger) *Store[T] {
	if maxSize < 1 {
		maxSize = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Store[T]{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
		now:     time.Now,
		log:     log,
	}
}

// Key compone la clave de estado de una pantalla para una sesión.
func Key(sessionID, screen string, parts ...string) string {
	k := sessionID + "|" + screen
	for _, p := range parts {
		k += "|" + p
	}
	return k
}

// Begin registra una carga nueva e invalida las anteriores para la misma clave.
func (s *Store[T]) Begin(key string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entry(key)
	s.seq++
	e.issued = s.seq
	return Ticket{key: key, seq: e.issued}
}

// Commit publica el valor si t sigue siendo la carga más reciente. Devuelve false si se descartó.
func (s *Store[T]) Commit(t Ticket, v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[t.key]
	if !ok {
		return false
	}
	e := elem.Value.(*entry[T])
	e.settle(t.seq)
	if t.seq != e.issued || t.seq <= e.committed {
		return false
	}
	now := s.now()
	e.committed = t.seq
	e.value = v
	e.has = true
	e.updatedAt = now
	e.expiresAt = now.Add(s.ttl)
	s.lru.MoveToFront(elem)
	return true
}

// Last devuelve el último valor publicado y cuándo se publicó.
func (s *Store[T]) Last(key string) (T, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	elem, ok := s.items[key]
	if !ok {
		return zero, time.Time{}, false
	}
	e := elem.Value.(*entry[T])
	if !e.has {
		return zero, time.Time{}, false
	}
	if s.now().After(e.expiresAt) {
		e.value = zero
		e.has = false
		return zero, time.Time{}, false
	}
	return e.value, e.updatedAt, true
}

// Load ejecuta fetch bajo un ticket nuevo.
// Si fetch falla y hay un valor previo, lo devuelve marcado como Stale junto al error;
// sin valor previo devuelve el error.
// Si una carga más reciente ya publicó, devuelve ese valor; si aún no publicó nadie,
// devuelve el valor descartado marcado como Stale.
func (s *Store[T]) Load(ctx context.Context, key string, fetch func(context.Context) (T, error)) (Result[T], error) {
	t := s.Begin(key)
	v, err := fetch(ctx)
	if err != nil {
		s.Release(t)
		if last, at, ok := s.Last(key); ok {
			s.log.Warn().Err(err).Str("key", key).Msg("carga fallida; se conserva el último estado")
			return Result[T]{Value: last, Stale: true, UpdatedAt: at, Err: err}, nil
		}
		return Result[T]{}, err
	}
	if !s.Commit(t, v) {
		s.log.Debug().Str("key", key).Msg("respuesta superada por una carga más reciente")
		if last, at, ok := s.Last(key); ok {
			return Result[T]{Value: last, UpdatedAt: at}, nil
		}
		return Result[T]{Value: v, Stale: true, UpdatedAt: s.now()}, nil
	}
	return Result[T]{Value: v, UpdatedAt: s.now()}, nil
}

// Release da por terminada una carga que no va a publicar (p. ej. porque falló).
func (s *Store[T]) Release(t Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if elem, ok := s.items[t.key]; ok {
		elem.Value.(*entry[T]).settle(t.seq)
	}
}

// Invalidate elimina el estado de una clave (p. ej. tras una mutación).
func (s *Store[T]) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if elem, ok := s.items[key]; ok {
		s.removeElement(elem)
	}
}

// CleanExpired elimina las entradas vencidas sin cargas pendientes; devuelve cuántas eliminó.
func (s *Store[T]) CleanExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var toRemove []*list.Element
	for elem := s.lru.Front(); elem != nil; elem = elem.Next() {
		e := elem.Value.(*entry[T])
		if e.settled >= e.issued && now.After(e.expiresAt) {
			toRemove = append(toRemove, elem)
		}
	}
	for _, elem := range toRemove {
		s.removeElement(elem)
	}
	return len(toRemove)
}

// Size número de claves retenidas.
func (s *Store[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// entry se llama con el lock tomado; crea la entrada si no existe.
func (s *Store[T]) entry(key string) *entry[T] {
	if elem, ok := s.items[key]; ok {
		s.lru.MoveToFront(elem)
		return elem.Value.(*entry[T])
	}
	e := &entry[T]{key: key, expiresAt: s.now().Add(s.ttl)}
	s.items[key] = s.lru.PushFront(e)
	if s.lru.Len() > s.maxSize {
		if oldest := s.lru.Back(); oldest != nil {
			s.removeElement(oldest)
		}
	}
	return e
}

func (s *Store[T]) removeElement(elem *list.Element) {
	e := elem.Value.(*entry[T])
	delete(s.items, e.key)
	s.lru.Remove(elem)
}

func (e *entry[T]) settle(seq uint64) {
	if seq > e.settled {
		e.settled = seq
	}
}
