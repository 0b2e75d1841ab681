package dashboard

import (
	"strconv"
	"strings"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// Mensajes de validación de formularios.
const (
	MsgSkuAndLocation   = "Selecciona un SKU e indica la bodega."
	MsgStocksNumeric    = "Las existencias deben ser números."
	MsgStocksNegative   = "Las existencias no pueden ser negativas."
	MsgWarehouseName    = "El nombre de la bodega es obligatorio."
	MsgWarehouseCode    = "El código de la bodega es obligatorio al editar."
	MsgSkuFieldsMissing = "Completa todos los campos."
)

// ParseInventoryForm valida el formulario de inventario sin tocar la red. El SKU puede quedar
// pendiente de resolver (fila con SKU vacío y query no vacía); ver ResolveSku.
func ParseInventoryForm(req dto.InventoryRequest) (row entity.InventoryRow, skuQuery string, err error) {
	sku := strings.TrimSpace(req.SKU)
	skuQuery = strings.TrimSpace(req.SKUQuery)
	location := strings.TrimSpace(req.Location)
	if (sku == "" && skuQuery == "") || location == "" {
		return row, "", domain.Invalid("sku", MsgSkuAndLocation)
	}
	available, err := parseStock(req.Available)
	if err != nil {
		return row, "", err
	}
	reserved, err := parseStock(req.Reserved)
	if err != nil {
		return row, "", err
	}
	return entity.InventoryRow{SKU: sku, Location: location, Available: available, Reserved: reserved}, skuQuery, nil
}

// parseStock texto vacío cuenta como 0.
func parseStock(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.Invalid("stock", MsgStocksNumeric)
	}
	if n < 0 {
		return 0, domain.Invalid("stock", MsgStocksNegative)
	}
	return n, nil
}

// ResolveSku busca un SKU cuyo código coincida exactamente con query.
func ResolveSku(query string, skus []entity.SkuRecord) (string, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", false
	}
	for _, s := range skus {
		if s.SKU == q {
			return s.SKU, true
		}
	}
	return "", false
}

// ParseWarehouseForm valida el formulario de bodega. Al crear el código puede ir vacío (lo asigna el API).
func ParseWarehouseForm(req dto.WarehouseRequest, editing bool) (entity.WarehouseRecord, error) {
	w := entity.WarehouseRecord{
		Code:     strings.TrimSpace(req.Code),
		Name:     strings.TrimSpace(req.Name),
		Type:     strings.TrimSpace(req.Type),
		City:     strings.TrimSpace(req.City),
		IsActive: true,
	}
	if w.Name == "" {
		return w, domain.Invalid("name", MsgWarehouseName)
	}
	if editing && w.Code == "" {
		return w, domain.Invalid("code", MsgWarehouseCode)
	}
	if w.Type == "" {
		w.Type = entity.WarehouseOwn
	}
	if req.IsActive != nil {
		w.IsActive = *req.IsActive
	}
	return w, nil
}

// ParseSkuForm valida el formulario de SKU.
func ParseSkuForm(req dto.SkuRequest) (entity.SkuRecord, error) {
	s := entity.SkuRecord{
		Name:     strings.TrimSpace(req.Name),
		Category: strings.TrimSpace(req.Category),
		Status:   strings.TrimSpace(req.Status),
	}
	if s.Name == "" || s.Category == "" || s.Status == "" {
		return s, domain.Invalid("sku", MsgSkuFieldsMissing)
	}
	return s, nil
}
