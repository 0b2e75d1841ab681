// Package suggest motor de sugerencias para listas desplegables con búsqueda:
// filtro por subcadena, resaltado de coincidencias y navegación por teclado.
// Es genérico sobre el tipo de candidato (SKU, bodega, ...).
package suggest

import (
	"strings"

	"golang.org/x/text/cases"
)

// DefaultMaxItems máximo de candidatos visibles en la lista.
const DefaultMaxItems = 10

// Display representación de un candidato para la UI.
type Display struct {
	Key    string
	Label  string
	Detail string
}

// Source describe cómo buscar y mostrar candidatos de tipo T.
type Source[T any] struct {
	// Fields campos contra los que se compara la consulta.
	Fields func(T) []string
	// Render texto que se muestra por candidato.
	Render func(T) Display
	// MaxItems límite de candidatos visibles; <= 0 usa DefaultMaxItems.
	MaxItems int
}

func (s Source[T]) maxItems() int {
	if s.MaxItems <= 0 {
		return DefaultMaxItems
	}
	return s.MaxItems
}

// Suggest filtra candidates por query y recorta al límite visible.
func (s Source[T]) Suggest(candidates []T, query string) []T {
	return Visible(Filter(candidates, query, s.Fields, s.maxItems()), s.maxItems())
}

// Filter coincidencia por subcadena sin distinguir mayúsculas contra cualquiera de los campos.
// Con query vacía devuelve los primeros maxItems sin filtrar; si no, todas las coincidencias.
// En ambos casos se conserva el orden de entrada.
func Filter[T any](candidates []T, query string, fields func(T) []string, maxItems int) []T {
	if len(candidates) == 0 {
		return []T{}
	}
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return Visible(candidates, maxItems)
	}
	out := []T{}
	if fields == nil {
		return out
	}
	for _, c := range candidates {
		for _, f := range fields(c) {
			if strings.Contains(fold(f), q) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Visible recorta items a los primeros max elementos (copia).
func Visible[T any](items []T, max int) []T {
	if max <= 0 {
		max = DefaultMaxItems
	}
	if len(items) > max {
		items = items[:max]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func fold(s string) string {
	return cases.Fold().String(s)
}
