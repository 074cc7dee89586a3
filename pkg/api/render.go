package api

import (
	"bytes"
	"fmt"
	"io"

	"github.com/uhyunpark/tradebook/pkg/app/core"
)

// RenderBook writes a plain-text view of the book followed by per-side totals.
func RenderBook(w io.Writer, book BookReader) error {
	snap := snapshotOf(book)

	var buf bytes.Buffer
	buf.WriteString("=== ORDER BOOK ===\n")
	writeSide(&buf, core.Buy, snap.Buys)
	writeSide(&buf, core.Sell, snap.Sells)
	buf.WriteString("==================\n\n")

	fmt.Fprintf(&buf, "Total orders: %d\n", snap.Count())
	fmt.Fprintf(&buf, "Buy orders: %d\n", len(snap.Buys))
	fmt.Fprintf(&buf, "Sell orders: %d\n", len(snap.Sells))
	fmt.Fprintf(&buf, "Buy orders total value: $%.2f\n", snap.BuyNotional)
	fmt.Fprintf(&buf, "Sell orders total value: $%.2f\n", snap.SellNotional)

	_, err := w.Write(buf.Bytes())
	return err
}

func writeSide(buf *bytes.Buffer, side core.Side, orders []core.Order) {
	switch side {
	case core.Buy:
		buf.WriteString("\n BUY ORDERS:\n")
	default:
		buf.WriteString("\n SELL ORDERS:\n")
	}
	if len(orders) == 0 {
		fmt.Fprintf(buf, "  No %s orders\n", side)
		return
	}
	for _, o := range orders {
		fmt.Fprintf(buf, "  ID: %d | Type: %s | Amount: %.2f | Price: $%.2f\n",
			o.ID, o.Side.Label(), o.Amount, o.Price)
	}
}
