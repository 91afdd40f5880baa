package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/olekukonko/tablewriter"
)

// Output formats for the list printed when a session ends.
const (
	FormatPanel = "panel"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatNone  = "none"
)

// PrintSummary writes the session's final list to the configured stdout.
func PrintSummary(items []model.ShoppingItem, format string) error {
	return WriteSummary(stdout, items, format)
}

func WriteSummary(w io.Writer, items []model.ShoppingItem, format string) error {
	switch format {
	case FormatNone:
		return nil
	case FormatJSON:
		if items == nil {
			items = []model.ShoppingItem{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(items); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
		return nil
	case FormatTable:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"#", "NAME", "QTY"})
		table.SetAutoFormatHeaders(false)
		for _, it := range items {
			table.Append([]string{strconv.Itoa(it.ID), it.Name, strconv.Itoa(it.Quantity)})
		}
		table.Render()
		return nil
	case FormatPanel, "":
		Panel(w, SummaryLines(items))
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

// SummaryLines renders the header and one line per item.
func SummaryLines(items []model.ShoppingItem) []string {
	t := Current()
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d",
			C(t.Title, "Shopping list"),
			C(t.Accent, "Items"), len(items),
			C(t.Quantity, "Units"), total),
		"",
	}
	if len(items) == 0 {
		return append(lines, C(t.Muted, "no items"))
	}
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%s %-16s %s",
			C(dim, fmt.Sprintf("%2d.", i+1)), it.Name, C(t.Quantity, "Qty: "+strconv.Itoa(it.Quantity))))
	}
	return lines
}
