package testutil

import (
	"github.com/Wilsonthoma/Ecommerce-sub002/dataview"
	"github.com/Wilsonthoma/Ecommerce-sub002/log"
	"go.uber.org/zap"
)

func TestLogger() log.Logger {
	return log.NewZapLogger(zap.NewExample())
}

// Products returns the catalog fixture used across engine and endpoint
// tests. Values are float64 and string to mirror decoded JSON.
func Products() []dataview.Record {
	return []dataview.Record{
		{"id": float64(1), "name": "Widget", "price": float64(10), "stock": float64(0), "status": "active", "createdAt": "2024-01-05T10:00:00Z", "tags": []interface{}{"tools", "metal"}},
		{"id": float64(2), "name": "Gadget", "price": float64(25), "stock": float64(5), "status": "draft", "createdAt": "2024-02-10T10:00:00Z", "tags": []interface{}{"electronics"}},
		{"id": float64(3), "name": "Gizmo", "price": float64(10), "stock": float64(50), "status": "active", "createdAt": "2024-03-15T10:00:00Z", "tags": []interface{}{"gifts"}},
	}
}

// Orders returns the order fixture.
func Orders() []dataview.Record {
	return []dataview.Record{
		{"id": "ord-1", "orderNumber": "1001", "totalAmount": float64(99.5), "status": "pending", "createdAt": "2024-04-01T09:00:00Z", "customer": map[string]interface{}{"name": "Ada", "email": "ada@example.com"}},
		{"id": "ord-2", "orderNumber": "1002", "totalAmount": float64(12), "status": "shipped", "createdAt": "2024-04-02T09:00:00Z", "customer": map[string]interface{}{"name": "Brin", "email": "brin@example.com"}},
		{"id": "ord-3", "orderNumber": "1003", "totalAmount": float64(250), "status": "pending", "createdAt": "2024-04-03T09:00:00Z", "customer": map[string]interface{}{"name": "Cleo", "email": "cleo@example.com"}},
	}
}

// Users returns the user fixture.
func Users() []dataview.Record {
	return []dataview.Record{
		{"id": "u-1", "email": "ada@example.com", "name": "Ada", "role": "admin", "createdAt": "2023-11-01T08:00:00Z"},
		{"id": "u-2", "email": "brin@example.com", "name": "Brin", "role": "staff", "createdAt": "2023-12-01T08:00:00Z"},
		{"id": "u-3", "email": "cleo@example.com", "name": "Cleo", "role": "customer", "createdAt": "2024-01-01T08:00:00Z"},
	}
}
