package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"costbase/types"
)

// CSVFeed reads a brokerage order-history export from disk.
type CSVFeed struct {
	path string
}

func NewCSVFeed(path string) *CSVFeed {
	return &CSVFeed{path: path}
}

func (f *CSVFeed) Orders() ([]types.RawOrder, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open orders file: %w", err)
	}
	defer fh.Close()

	return ReadOrders(fh)
}

// ReadOrders parses order rows from any reader. The first row is a header;
// column order is not assumed, and columns the export does not carry come
// back as empty strings for the normalizer to judge.
func ReadOrders(r io.Reader) ([]types.RawOrder, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var orders []types.RawOrder
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		orders = append(orders, types.RawOrder{
			Instrument:   field(record, "instrument"),
			Side:         field(record, "side"),
			Quantity:     field(record, "quantity"),
			Price:        field(record, "price"),
			AveragePrice: field(record, "average_price"),
			CreatedAt:    field(record, "created_at"),
			State:        field(record, "state"),
		})
	}
	return orders, nil
}
