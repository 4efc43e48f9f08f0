package htmltable

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"statementAnalyzer/internal/ports"
)

// Reader implements ports.TableSource for HTML statement exports.
type Reader struct {
	logger ports.Logger
}

// NewReader creates a table reader.
func NewReader(logger ports.Logger) (*Reader, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required for HTML table reader")
	}
	return &Reader{logger: logger}, nil
}

// ReadTable parses r as HTML and returns the text of every cell of the first <table>, row by row.
// Cells spanning several columns are repeated colspan times so rows keep their column positions.
func (rd *Reader) ReadTable(ctx context.Context, r io.Reader) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse HTML: %v", ports.ErrDataFormat, err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: %w", ports.ErrDataFormat, ports.ErrTableMissing)
	}

	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		// Skip rows that belong to a nested table.
		if tr.Closest("table").Get(0) != table.Get(0) {
			return
		}
		var cells []string
		tr.ChildrenFiltered("td, th").Each(func(_ int, cell *goquery.Selection) {
			text := strings.TrimSpace(cell.Text())
			span := 1
			if v, ok := cell.Attr("colspan"); ok {
				if _, err := fmt.Sscanf(v, "%d", &span); err != nil || span < 1 {
					span = 1
				}
			}
			for i := 0; i < span; i++ {
				cells = append(cells, text)
			}
		})
		rows = append(rows, cells)
	})

	rd.logger.Debug(ctx, "Statement table extracted", map[string]interface{}{"rows": len(rows)})
	return rows, nil
}
