package ledger

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
	"github.com/mamadbah2/sewmaster/internal/domain/names"
)

// ErrInvalidProduct is returned when a catalog product fails validation.
var ErrInvalidProduct = errors.New("invalid catalog product")

// Catalog is the product price list. Editing it never touches existing
// production entries, which captured their unit value when recorded.
type Catalog struct {
	mu       sync.RWMutex
	products []models.ProductCatalog
	newID    func() string
}

// NewCatalog builds a catalog over the given products.
func NewCatalog(products []models.ProductCatalog) *Catalog {
	cp := make([]models.ProductCatalog, len(products))
	copy(cp, products)
	return &Catalog{products: cp, newID: uuid.NewString}
}

// Add appends a product.
func (c *Catalog) Add(name string, price decimal.Decimal) (models.ProductCatalog, error) {
	if err := validateProduct(name, price); err != nil {
		return models.ProductCatalog{}, err
	}

	p := models.ProductCatalog{ID: c.newID(), Name: strings.TrimSpace(name), ProductionPrice: price}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, p)
	return p, nil
}

// Update renames or reprices the product with the given id.
func (c *Catalog) Update(id, name string, price decimal.Decimal) (models.ProductCatalog, bool, error) {
	if err := validateProduct(name, price); err != nil {
		return models.ProductCatalog{}, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			c.products[i].Name = strings.TrimSpace(name)
			c.products[i].ProductionPrice = price
			return c.products[i], true, nil
		}
	}
	return models.ProductCatalog{}, false, nil
}

// Remove deletes the product with the given id.
func (c *Catalog) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true
		}
	}
	return false
}

// FindByName looks a product up by name, ignoring case and extra whitespace.
// When names collide the first product wins.
func (c *Catalog) FindByName(name string) (models.ProductCatalog, bool) {
	key := names.Key(name)
	if key == "" {
		return models.ProductCatalog{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if names.Key(p.Name) == key {
			return p, true
		}
	}
	return models.ProductCatalog{}, false
}

// List returns a snapshot of the catalog in insertion order.
func (c *Catalog) List() []models.ProductCatalog {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.ProductCatalog, len(c.products))
	copy(out, c.products)
	return out
}

func validateProduct(name string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if !price.IsPositive() {
		return fmt.Errorf("%w: production price must be positive", ErrInvalidProduct)
	}
	return nil
}
