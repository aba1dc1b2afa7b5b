// Package graphql exposes a read-only catalog query API alongside the
// REST surface.
package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/pkg/response"
)

// ProductSource supplies catalog data to the resolvers.
type ProductSource interface {
	List() ([]models.Product, error)
	FindByID(id uint) (models.Product, error)
}

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":                &graphql.Field{Type: graphql.Int},
		"code":              &graphql.Field{Type: graphql.String},
		"name":              &graphql.Field{Type: graphql.String},
		"description":       &graphql.Field{Type: graphql.String},
		"image":             &graphql.Field{Type: graphql.String},
		"category":          &graphql.Field{Type: graphql.String},
		"price":             &graphql.Field{Type: graphql.Float},
		"quantity":          &graphql.Field{Type: graphql.Int},
		"internalReference": &graphql.Field{Type: graphql.String},
		"shellId":           &graphql.Field{Type: graphql.Int},
		"inventoryStatus":   &graphql.Field{Type: graphql.String},
		"rating":            &graphql.Field{Type: graphql.Float},
	},
})

func toMap(p models.Product) map[string]interface{} {
	return map[string]interface{}{
		"id":                int(p.ID),
		"code":              p.Code,
		"name":              p.Name,
		"description":       p.Description,
		"image":             p.Image,
		"category":          p.Category,
		"price":             p.Price,
		"quantity":          p.Quantity,
		"internalReference": p.InternalReference,
		"shellId":           p.ShellID,
		"inventoryStatus":   string(p.InventoryStatus),
		"rating":            p.Rating,
	}
}

// NewSchema builds the catalog query schema over the given source.
func NewSchema(src ProductSource) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					products, err := src.List()
					if err != nil {
						return nil, err
					}

					category, _ := p.Args["category"].(string)

					out := make([]map[string]interface{}, 0, len(products))
					for _, prod := range products {
						if category != "" && prod.Category != category {
							continue
						}
						out = append(out, toMap(prod))
					}
					return out, nil
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					prod, err := src.FindByID(uint(id))
					if err != nil {
						return nil, err
					}
					return toMap(prod), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// Handler serves POST /graphql requests against the schema.
func Handler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid GraphQL request body")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			Context:        r.Context(),
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}
