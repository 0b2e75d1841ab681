package inventory

import "github.com/jhoicas/Inventario-dashboard/internal/domain/entity"

// Discrepancy diferencia entre un contador de /api/stats y el mismo valor calculado localmente.
type Discrepancy struct {
	Field  string
	Server int
	Client int
}

// CheckStatsConsistency compara los contadores del servidor con las fórmulas locales.
// Solo tiene sentido cuando rows es el conjunto completo (sin filtros ni paginación);
// con un subconjunto las diferencias son esperables y el llamador no debe invocarla.
func CheckStatsConsistency(rows []entity.InventoryRow, stats entity.Stats) []Discrepancy {
	var out []Discrepancy
	check := func(field string, server, client int) {
		if server != client {
			out = append(out, Discrepancy{Field: field, Server: server, Client: client})
		}
	}
	check("totalAvailable", stats.TotalAvailable, GrandTotalAvailable(rows))
	check("inventoryRows", stats.InventoryRows, len(rows))
	return out
}
