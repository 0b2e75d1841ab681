package suggest

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Segment tramo de texto; IsMatch indica si coincide con la consulta.
type Segment struct {
	Text    string `json:"text"`
	IsMatch bool   `json:"is_match"`
}

// Highlight divide text en tramos según las apariciones de query (sin distinguir mayúsculas),
// buscando de izquierda a derecha y sin solapamiento: cada búsqueda empieza donde terminó la anterior.
// Con query vacía devuelve el texto completo como un único tramo sin coincidencia.
func Highlight(text, query string) []Segment {
	if query == "" || text == "" {
		return []Segment{{Text: text}}
	}
	folded, starts, ends := foldWithOffsets(text)
	q := cases.Fold().String(query)
	if q == "" {
		return []Segment{{Text: text}}
	}

	var segs []Segment
	orig := 0 // offset en text ya emitido
	idx := 0  // offset de búsqueda en folded
	for idx < len(folded) {
		i := strings.Index(folded[idx:], q)
		if i < 0 {
			break
		}
		fs := idx + i
		fe := fs + len(q)
		ms, me := starts[fs], ends[fe-1]
		if ms < orig {
			// La coincidencia empieza dentro de una runa ya emitida (plegado que expande runas).
			ms = orig
		}
		if ms > orig {
			segs = append(segs, Segment{Text: text[orig:ms]})
		}
		if me > ms {
			segs = append(segs, Segment{Text: text[ms:me], IsMatch: true})
		}
		orig = me
		idx = fe
	}
	if orig < len(text) {
		segs = append(segs, Segment{Text: text[orig:]})
	}
	return segs
}

// foldWithOffsets pliega text runa a runa y guarda, por cada byte plegado,
// el inicio y fin de la runa original de la que proviene.
func foldWithOffsets(text string) (string, []int, []int) {
	c := cases.Fold()
	var b strings.Builder
	starts := make([]int, 0, len(text))
	ends := make([]int, 0, len(text))
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		f := c.String(text[i : i+size])
		b.WriteString(f)
		for j := 0; j < len(f); j++ {
			starts = append(starts, i)
			ends = append(ends, i+size)
		}
		i += size
	}
	return b.String(), starts, ends
}
