package pipeline

import "adrgoods/internal/sheet"

const rowWidth = 21

// mkRow builds a full-width row from column index to cell value.
func mkRow(cells map[int]any) sheet.Row {
	row := make(sheet.Row, rowWidth)
	for i, v := range cells {
		row[i] = v
	}
	return row
}

func headerRows() []sheet.Row {
	return []sheet.Row{
		mkRow(map[int]any{0: "Tabel A: Lijst van gevaarlijke goederen"}),
		mkRow(map[int]any{0: "UN-nummer", 2: "Naam en beschrijving", 20: "Vervoerscategorie (Tunnelbeperkingscode)"}),
		mkRow(map[int]any{0: "(1)", 2: "(2)", 20: "(15)"}),
	}
}

func sp(v string) *string { return &v }
