package store

import "cart-service/internal/models"

func emptyProducts() models.ProductState {
	return models.ProductState{Entities: map[models.ProductID]models.Product{}}
}

// reduceProducts is the catalog slice state machine: a loading flag and
// an entity map replaced wholesale on a successful fetch. A fetch error
// clears the flag and leaves whatever was loaded before intact.
func reduceProducts(state models.ProductState, action models.Action) models.ProductState {
	switch a := action.(type) {
	case models.FetchProductsNext:
		return models.ProductState{Loading: true, Entities: state.Entities}

	case models.FetchProductsComplete:
		entities := make(map[models.ProductID]models.Product, len(a.Products))
		for _, p := range a.Products {
			entities[p.ID] = p
		}
		return models.ProductState{Loading: false, Entities: entities}

	case models.FetchProductsError:
		return models.ProductState{Loading: false, Entities: state.Entities}
	}

	return state
}
