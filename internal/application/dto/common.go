package dto

// ErrorResponse cuerpo de error HTTP fuera del sobre de resultados (auth, ruta desconocida).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDRequest argumentos de las herramientas get_* por ID.
type IDRequest struct {
	ProductID   int64 `json:"product_id"`
	WarehouseID int64 `json:"warehouse_id"`
	OrderID     int64 `json:"order_id"`
	ShipmentID  int64 `json:"shipment_id"`
	PaymentID   int64 `json:"payment_id"`
}

// OrderNumberRequest argumentos de get_order_by_number.
type OrderNumberRequest struct {
	OrderNumber string `json:"order_number"`
}

// AgentRequest comando de texto para el despachador.
type AgentRequest struct {
	Command string `json:"command"`
}
