package dashboard

import (
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/suggest"
)

// SkuSource sugerencias de SKU: código o nombre.
var SkuSource = suggest.Source[entity.SkuRecord]{
	Fields: func(s entity.SkuRecord) []string { return []string{s.SKU, s.Name} },
	Render: func(s entity.SkuRecord) suggest.Display {
		return suggest.Display{Key: s.SKU, Label: s.SKU, Detail: s.Name}
	},
}

// WarehouseSource sugerencias de bodega: código, nombre o ciudad.
var WarehouseSource = suggest.Source[entity.WarehouseRecord]{
	Fields: func(w entity.WarehouseRecord) []string { return []string{w.Code, w.Name, w.City} },
	Render: func(w entity.WarehouseRecord) suggest.Display {
		return suggest.Display{Key: w.Code, Label: w.Code, Detail: w.Name}
	},
}
