package providers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterProvider_MethodQualifiedPatterns(t *testing.T) {
	router := NewRouterProvider()
	noop := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})

	router.Post("/command", noop)
	router.Get("/roster", noop)
	router.Put("/roster", noop)

	routes := router.GetRoutes()
	require.Len(t, routes, 3)
	assert.Equal(t, "POST /command", routes[0].Url)
	assert.Equal(t, "GET /roster", routes[1].Url)
	assert.Equal(t, "PUT /roster", routes[2].Url)
}

func TestRouterProvider_SamePathDifferentMethodsCoexist(t *testing.T) {
	router := NewRouterProvider()
	noop := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})
	router.Get("/roster", noop)
	router.Put("/roster", noop)

	// Patterns must be registrable on one ServeMux without a panic.
	mux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		mux.Handle(route.Url, route.Handler)
	}
}
