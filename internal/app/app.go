// Package app wires the demo: it builds the reference cart, records
// telemetry and writes the cart to the configured output.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/pricecart/internal/domain/cart"
	"github.com/xenking/pricecart/internal/domain/item"
)

const meterName = "github.com/xenking/pricecart"

// instruments groups the metric instruments recorded by Run.
type instruments struct {
	itemsAdded metric.Int64Counter
	subtotal   metric.Int64Histogram
}

func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	meter := mp.Meter(meterName)

	itemsAdded, err := meter.Int64Counter("cart.items.added",
		metric.WithDescription("Items added to a cart"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "items counter")
	}
	subtotal, err := meter.Int64Histogram("cart.subtotal",
		metric.WithDescription("Cart subtotal in minor currency units"),
		metric.WithUnit("{cent}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "subtotal histogram")
	}

	return &instruments{itemsAdded: itemsAdded, subtotal: subtotal}, nil
}

// Run builds the reference cart and writes it to out in the configured
// format. It is the single wiring point for the demo.
func Run(ctx context.Context, lg *zap.Logger, mp metric.MeterProvider, out io.Writer, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	inst, err := newInstruments(mp)
	if err != nil {
		return errors.Wrap(err, "create instruments")
	}

	c := cart.New()
	lg = lg.With(zap.Stringer("cart_id", c.ID()))

	for _, it := range SampleItems() {
		c.Add(it)

		kind := kindOf(it)
		inst.itemsAdded.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
		lg.Debug("Item added",
			zap.String("kind", kind),
			zap.String("description", it.Description()),
			zap.Int64("price", int64(it.Price())),
		)
	}

	subtotal := c.Subtotal()
	inst.subtotal.Record(ctx, int64(subtotal))
	lg.Info("Cart ready",
		zap.Int("items", c.Len()),
		zap.Int64("subtotal", int64(subtotal)),
		zap.Stringer("subtotal_exact", c.ExactSubtotal()),
	)

	if err := write(out, c, cfg); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}

func write(out io.Writer, c *cart.Cart, cfg *Config) error {
	switch cfg.Format {
	case FormatJSON:
		var e jx.Encoder
		c.EncodeJSON(&e)
		_, err := out.Write(append(e.Bytes(), '\n'))
		return err
	case FormatText:
		if cfg.Receipt {
			if _, err := io.WriteString(out, c.Render()); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(out, "subtotal = %s\n", c.Subtotal().Major())
		return err
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "format %q", cfg.Format)
	}
}

func kindOf(it item.Priced) string {
	if k, ok := it.(item.Kinded); ok {
		return k.Kind()
	}
	return "unknown"
}
