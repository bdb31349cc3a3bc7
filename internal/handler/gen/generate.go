// Package gen holds the code oapi-codegen generates from spec/openapi.yaml.
// Edit spec/openapi.yaml and run `go generate ./...`; never edit api.gen.go by hand.
package gen

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.5.1 --config=cfg.yaml ../../../spec/openapi.yaml
