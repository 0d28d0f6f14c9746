package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/famousshop/internal/catalog"
	"github.com/dmitrijs2005/famousshop/internal/models"
)

const defaultShowcaseRounds = 5

// loadProducts fetches the catalog once per App and serves it from memory
// afterwards.
func (a *App) loadProducts(ctx context.Context) ([]models.Product, error) {
	if a.products != nil {
		return a.products, nil
	}

	products, err := a.catalog.Products(ctx)
	if err != nil {
		a.log.Error(ctx, "error fetching products", "error", err)
		return nil, err
	}
	a.products = products
	return products, nil
}

// lookupProduct resolves id against the cached catalog, asking the API for
// that single product when it is not there.
func (a *App) lookupProduct(ctx context.Context, rawID string) (models.Product, error) {
	id, err := parseID(rawID)
	if err != nil {
		return models.Product{}, err
	}

	if products, err := a.loadProducts(ctx); err == nil {
		if p, ok := catalog.Find(products, id); ok {
			return p, nil
		}
	}

	return a.catalog.Product(ctx, id)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", raw)
	}
	return id, nil
}

func (a *App) printProducts(products []models.Product) {
	for _, p := range products {
		a.printf("#%-3d %-8s %s\n", p.ID, p.PriceString(), p.Title)
	}
}

// Products lists the whole catalog.
func (a *App) Products(ctx context.Context) error {
	products, err := a.loadProducts(ctx)
	if err != nil {
		return err
	}
	a.printProducts(products)
	return nil
}

// Search lists the products whose title contains term, ignoring case.
func (a *App) Search(ctx context.Context, term string) error {
	products, err := a.loadProducts(ctx)
	if err != nil {
		return err
	}

	found := catalog.Filter(products, term)
	if len(found) == 0 {
		a.println("No products found.")
		return nil
	}
	a.printProducts(found)
	return nil
}

// View prints the product detail card.
func (a *App) View(ctx context.Context, rawID string) error {
	p, err := a.lookupProduct(ctx, rawID)
	if err != nil {
		return err
	}

	a.println(p.Title)
	a.println(p.PriceString())
	a.println(p.Description)
	a.printf("Category: %s\n", p.Category)
	a.printf("Image: %s\n", p.Image)
	return nil
}

// Showcase prints product images in carousel order, rounds times.
func (a *App) Showcase(ctx context.Context, rawRounds string) error {
	rounds := defaultShowcaseRounds
	if rawRounds != "" {
		n, err := strconv.Atoi(rawRounds)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid number of rounds %q", rawRounds)
		}
		rounds = n
	}

	products, err := a.loadProducts(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		a.println("No products to show.")
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.printf("%s  %s\n", products[0].Image, products[0].Title)
	ticks := catalog.Carousel(ctx, len(products), a.carouselPeriod)
	for shown := 1; shown < rounds; shown++ {
		i, ok := <-ticks
		if !ok {
			return ctx.Err()
		}
		a.printf("%s  %s\n", products[i].Image, products[i].Title)
	}
	return nil
}
