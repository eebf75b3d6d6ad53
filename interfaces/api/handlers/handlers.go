package handlers

import (
	"ads-api/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	AdService              services.AdService
	CategoryService        services.CategoryService
	FieldDefinitionService services.FieldDefinitionService
	HealthCheckers         []HealthChecker
	AppName                string
	Debug                  bool // ส่ง error จริงกลับใน response
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AdHandler       *AdHandler
	CategoryHandler *CategoryHandler
	AdminHandler    *AdminHandler
	HealthHandler   *HealthHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AdHandler:       NewAdHandler(services.AdService, services.Debug),
		CategoryHandler: NewCategoryHandler(services.CategoryService),
		AdminHandler:    NewAdminHandler(services.FieldDefinitionService),
		HealthHandler:   NewHealthHandler(services.AppName, services.HealthCheckers...),
	}
}
