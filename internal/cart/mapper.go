package cart

// RowsToLines flattens joined cart rows into caller-visible lines. Product
// fields left NULL by a deleted product default to empty strings and a "0"
// price so a stale cart never breaks rendering or checkout.
func RowsToLines(rows []CartRow) []Line {
	lines := make([]Line, 0, len(rows))

	for _, r := range rows {
		line := Line{
			ProductID: r.ProductID,
			Price:     "0",
			Quantity:  r.Quantity,
		}
		if r.Title != nil {
			line.Title = *r.Title
		}
		if r.Price != nil {
			line.Price = *r.Price
		}
		if r.ImageURL != nil {
			line.ImageURL = *r.ImageURL
		}

		lines = append(lines, line)
	}

	return lines
}
