package main

import (
	"encoding/json"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/swaggo/swag"
)

// openAPIDoc hands the huma-generated OpenAPI document to swag, which is
// where gin-swagger reads /swagger/doc.json from.
type openAPIDoc struct {
	mu  sync.RWMutex
	api huma.API
}

var apiDoc = &openAPIDoc{}

func init() {
	swag.Register(swag.Name, apiDoc)
}

func (d *openAPIDoc) set(api huma.API) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.api = api
}

// ReadDoc implements swag.Swagger
func (d *openAPIDoc) ReadDoc() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.api == nil {
		return "{}"
	}
	b, err := json.Marshal(d.api.OpenAPI())
	if err != nil {
		return "{}"
	}
	return string(b)
}
