package inventory

import "github.com/jhoicas/Inventario-dashboard/internal/domain/entity"

// WarehouseAggregate totales de una bodega a través de todos sus SKUs.
type WarehouseAggregate struct {
	Code             string
	DistinctSkuCount int
	TotalStock       int
}

// BreakdownLine detalle por SKU dentro de una bodega.
type BreakdownLine struct {
	SKU       string
	Available int
	Reserved  int
}

// Todas las funciones de agregación son puras y totales: no modifican rows,
// no fallan y devuelven agregados vacíos/cero para una colección vacía.

// TotalsBySku suma Available agrupado por SKU (a través de todas las bodegas).
func TotalsBySku(rows []entity.InventoryRow) map[string]int {
	totals := make(map[string]int)
	for _, r := range rows {
		totals[r.SKU] += r.Available
	}
	return totals
}

// TotalsByWarehouse agrupa por Location: cantidad de SKUs distintos y stock disponible total.
// Las filas sin Location no pertenecen a ninguna bodega y se omiten.
func TotalsByWarehouse(rows []entity.InventoryRow) map[string]WarehouseAggregate {
	skus := make(map[string]map[string]struct{})
	out := make(map[string]WarehouseAggregate)
	for _, r := range rows {
		if r.Location == "" {
			continue
		}
		agg := out[r.Location]
		agg.Code = r.Location
		agg.TotalStock += r.Available
		set, ok := skus[r.Location]
		if !ok {
			set = make(map[string]struct{})
			skus[r.Location] = set
		}
		if r.SKU != "" {
			if _, seen := set[r.SKU]; !seen {
				set[r.SKU] = struct{}{}
				agg.DistinctSkuCount++
			}
		}
		out[r.Location] = agg
	}
	return out
}

// GrandTotalAvailable suma Available de todas las filas, sin agrupar.
func GrandTotalAvailable(rows []entity.InventoryRow) int {
	total := 0
	for _, r := range rows {
		total += r.Available
	}
	return total
}

// DistinctSkuCount cantidad de SKUs únicos en toda la colección.
func DistinctSkuCount(rows []entity.InventoryRow) int {
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		seen[r.SKU] = struct{}{}
	}
	return len(seen)
}

// BreakdownForWarehouse detalle por SKU de la bodega code, sumando Available y Reserved por separado.
// El orden es el de primera aparición entre las filas de esa bodega.
func BreakdownForWarehouse(rows []entity.InventoryRow, code string) []BreakdownLine {
	index := make(map[string]int)
	lines := []BreakdownLine{}
	for _, r := range rows {
		if r.Location != code {
			continue
		}
		i, ok := index[r.SKU]
		if !ok {
			i = len(lines)
			index[r.SKU] = i
			lines = append(lines, BreakdownLine{SKU: r.SKU})
		}
		lines[i].Available += r.Available
		lines[i].Reserved += r.Reserved
	}
	return lines
}
