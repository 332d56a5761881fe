package document

import (
	"encoding/csv"
	"io"
	"strings"
)

// WriteCSV renders the summary as semicolon-separated CSV, the layout the
// construction office imports into its spreadsheets.
func WriteCSV(w io.Writer, sum *Summary) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	head := [][]string{
		{"Projekt", sum.ProjectName},
		{"Adresse", sum.ProjectAddress},
		{"Wohnung", sum.ApartmentName},
		{"Kunde", sum.CustomerName},
		{"Zugangscode", sum.AccessCode},
	}
	if sum.CompletedAt != nil {
		head = append(head, []string{"Abgeschlossen am", sum.CompletedAt.Format("02.01.2006 15:04")})
	}
	head = append(head, []string{})
	for _, rec := range head {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	if err := cw.Write([]string{"Kategorie", "Auswahl", "Beschreibung", "Hinweis", "Bilder", "Preis"}); err != nil {
		return err
	}
	for _, row := range sum.Rows {
		rec := []string{
			row.CategoryName,
			row.OptionName,
			row.Description,
			row.InfoText,
			strings.Join(row.ImageURLs, " "),
			row.PriceLabel,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	if err := cw.Write([]string{}); err != nil {
		return err
	}
	if err := cw.Write([]string{"Gesamt", "", "", "", "", sum.TotalLabel}); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
