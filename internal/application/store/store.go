// Package store implementa el mapa id→entidad que cada pantalla mantiene
// como estado propio: se reconstruye completo en cada fetch y se parchea en
// sitio con la entidad que devuelve cada mutación (parche optimista, sin
// refetch de la colección).
package store

// Keyed almacena entidades por id conservando el orden de inserción del
// último fetch. No es seguro para uso concurrente: cada pantalla es dueña
// del suyo y solo lo muta desde sus propios handlers de eventos.
type Keyed[K comparable, V any] struct {
	key   func(V) K
	items map[K]V
	order []K
}

// NewKeyed construye un store vacío con la función de clave dada.
func NewKeyed[K comparable, V any](key func(V) K) *Keyed[K, V] {
	return &Keyed[K, V]{
		key:   key,
		items: make(map[K]V),
	}
}

// Replace reconstruye el store completo a partir de un fetch. Ids duplicados
// colapsan: conserva la posición de la primera aparición y el valor de la
// última, igual que al indexar un objeto por clave.
func (s *Keyed[K, V]) Replace(list []V) {
	s.items = make(map[K]V, len(list))
	s.order = s.order[:0]
	for _, v := range list {
		k := s.key(v)
		if _, seen := s.items[k]; !seen {
			s.order = append(s.order, k)
		}
		s.items[k] = v
	}
}

// List devuelve las entidades en orden de inserción.
func (s *Keyed[K, V]) List() []V {
	out := make([]V, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.items[k])
	}
	return out
}

// Get busca por id.
func (s *Keyed[K, V]) Get(k K) (V, bool) {
	v, ok := s.items[k]
	return v, ok
}

// Upsert parchea la entidad en sitio si ya existe, o la añade al final.
func (s *Keyed[K, V]) Upsert(v V) {
	k := s.key(v)
	if _, ok := s.items[k]; !ok {
		s.order = append(s.order, k)
	}
	s.items[k] = v
}

// Remove elimina exactamente ese id, si existe.
func (s *Keyed[K, V]) Remove(k K) {
	if _, ok := s.items[k]; !ok {
		return
	}
	delete(s.items, k)
	for i, ok := range s.order {
		if ok == k {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len cantidad de entidades.
func (s *Keyed[K, V]) Len() int {
	return len(s.items)
}
