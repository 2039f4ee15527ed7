package report

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/gtriggiano/geoip-lookup/pkg/geoip"
)

// WriteTable writes the records as a bordered table with centered cells:
//
//	+------------+-----------+
//	| IP Address | AS Number |
//	+------------+-----------+
//	|   1.0.0.5  |   64500   |
//	+------------+-----------+
func WriteTable(w io.Writer, records []geoip.Record) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleDefault)
	style := tw.Style()
	style.Format.Header = text.FormatDefault
	style.Format.HeaderAlign = text.AlignCenter
	style.Format.RowAlign = text.AlignCenter

	tw.AppendHeader(tableRow(Header))
	for _, rec := range records {
		tw.AppendRow(tableRow(Row(rec)))
	}

	_, err := io.WriteString(w, tw.Render()+"\n")
	return err
}

func tableRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, cell := range cells {
		row[i] = cell
	}
	return row
}
