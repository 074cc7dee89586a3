package api

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhyunpark/tradebook/pkg/app/core"
)

func TestRenderBook(t *testing.T) {
	reg := core.NewRegistry()
	reg.Submit(core.Buy, 100.0, 50.25)
	reg.Submit(core.Buy, 200.0, 49.80)
	reg.Submit(core.Sell, 75.0, 52.50)

	var buf bytes.Buffer
	require.NoError(t, RenderBook(&buf, reg))

	want := "=== ORDER BOOK ===\n" +
		"\n BUY ORDERS:\n" +
		"  ID: 1 | Type: Buy | Amount: 100.00 | Price: $50.25\n" +
		"  ID: 2 | Type: Buy | Amount: 200.00 | Price: $49.80\n" +
		"\n SELL ORDERS:\n" +
		"  ID: 3 | Type: Sell | Amount: 75.00 | Price: $52.50\n" +
		"==================\n\n" +
		"Total orders: 3\n" +
		"Buy orders: 2\n" +
		"Sell orders: 1\n" +
		"Buy orders total value: $14985.00\n" +
		"Sell orders total value: $3937.50\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderBook_EmptySides(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderBook(&buf, core.NewSyncRegistry()))

	assert.Contains(t, buf.String(), "  No buy orders\n")
	assert.Contains(t, buf.String(), "  No sell orders\n")
	assert.Contains(t, buf.String(), "Total orders: 0\n")
}
