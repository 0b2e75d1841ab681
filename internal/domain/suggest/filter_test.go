package suggest_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/suggest"
)

func skuFields(s entity.SkuRecord) []string { return []string{s.SKU, s.Name} }

func buildSkus(n int) []entity.SkuRecord {
	out := make([]entity.SkuRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entity.SkuRecord{SKU: fmt.Sprintf("P-%03d", i), Name: fmt.Sprintf("Producto %d", i)})
	}
	return out
}

func TestFilter_QueryVacia_PrimerosMaxItemsEnOrden(t *testing.T) {
	cands := buildSkus(50)

	got := suggest.Filter(cands, "", skuFields, 10)

	assert.Len(t, got, 10)
	assert.Equal(t, cands[:10], got, "debe conservar el orden original")
}

func TestFilter_CoincidenciaPorCualquierCampo_OrdenRelativo(t *testing.T) {
	cands := buildSkus(50)
	cands[3].Name = "Skateboard"
	cands[17].SKU = "SK-17"
	cands[42].Name = "Mask negra"

	got := suggest.Filter(cands, "sk", skuFields, 10)

	assert.Equal(t, []entity.SkuRecord{cands[3], cands[17], cands[42]}, got)
}

func TestFilter_SinDistinguirMayusculas(t *testing.T) {
	cands := []entity.SkuRecord{{SKU: "abc-1", Name: "Camisa"}, {SKU: "X", Name: "CAMISETA"}}

	got := suggest.Filter(cands, "  CaMi ", skuFields, 10)

	assert.Len(t, got, 2)
}

func TestFilter_QueryConMasCoincidenciasQueMaxItems_DevuelveTodas(t *testing.T) {
	got := suggest.Filter(buildSkus(30), "p-", skuFields, 10)
	assert.Len(t, got, 30, "el filtro no recorta; el límite visible lo aplica Visible")

	src := suggest.Source[entity.SkuRecord]{Fields: skuFields}
	assert.Len(t, src.Suggest(buildSkus(30), "p-"), suggest.DefaultMaxItems)
}

func TestFilter_EntradaVaciaONil(t *testing.T) {
	assert.Empty(t, suggest.Filter[entity.SkuRecord](nil, "x", skuFields, 10))
	assert.Empty(t, suggest.Filter(buildSkus(3), "x", nil, 10))
	assert.NotNil(t, suggest.Filter[entity.SkuRecord](nil, "", skuFields, 10))
}
