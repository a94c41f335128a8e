package handlers

import (
	"net/http"

	"github.com/Cheertaboi/storefront-checkout/internal/catalog"
	"github.com/Cheertaboi/storefront-checkout/internal/service"
)

// ListProducts handles GET /products?category=
func ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products": catalog.ByCategory(r.URL.Query().Get("category")),
	})
}

// GetProduct handles GET /products/{id}
func GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		badRequest(w, "invalid product id")
		return
	}
	p, found := catalog.Get(id)
	if !found {
		writeError(w, r, service.ErrProductNotFound, nil)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
