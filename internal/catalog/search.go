package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/famousshop/internal/models"
)

// Filter returns the products whose title contains term, ignoring case.
// An empty term matches everything. The input order is kept.
func Filter(products []models.Product, term string) []models.Product {
	needle := strings.ToLower(term)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the product with the given id.
func Find(products []models.Product, id int64) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// DefaultCarouselPeriod is how long the home page shows each product image.
const DefaultCarouselPeriod = 2 * time.Second

// NextIndex advances a carousel over n items, wrapping to the start.
func NextIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i + 1) % n
}

// Carousel emits the next image index every period until ctx is done, then
// closes the channel. It emits nothing when n is zero.
func Carousel(ctx context.Context, n int, period time.Duration) <-chan int {
	ch := make(chan int)

	go func() {
		defer close(ch)
		if n <= 0 {
			return
		}

		ticker := time.NewTicker(period)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-ticker.C:
				i = NextIndex(i, n)
				select {
				case ch <- i:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}
