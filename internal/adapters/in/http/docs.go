package http

import (
	"courierdispatch/api"

	"github.com/swaggo/swag"
)

type apiDoc struct{}

func (apiDoc) ReadDoc() string {
	return string(api.JSON())
}

func init() {
	swag.Register(swag.Name, apiDoc{})
}
