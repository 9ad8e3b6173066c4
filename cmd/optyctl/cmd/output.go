package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"

	apiclient "github.com/donaldgifford/opty-search/internal/api/client"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProductsTable(w io.Writer, products []domain.Product) error {
	tw := newTabWriter(w)
	tw.writef("#\tTITLE\tPRICE\tLINK\n")
	for i := range products {
		tw.writef("%d\t%s\t%s\t%s\n",
			i+1,
			truncate(products[i].Title, 50),
			products[i].Price,
			truncate(products[i].Link, 60),
		)
	}
	return tw.finish()
}

func printSearchResult(w io.Writer, res *domain.SearchResult) error {
	tw := newTabWriter(w)
	tw.writef("Query:\t%s\n", res.Query)
	tw.writef("Normalized:\t%s\n", res.NormalizedQuery)
	tw.writef("Products:\t%d (skipped %d)\n\n", res.Total, res.Skipped)
	if err := tw.finish(); err != nil {
		return err
	}
	return printProductsTable(w, res.Products)
}

func printUsersTable(w io.Writer, users []domain.User) error {
	tw := newTabWriter(w)
	tw.writef("AUTH ID\tEMAIL\tNAME\tROLE\tCREATED\n")
	for i := range users {
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			users[i].AuthID,
			users[i].Email,
			truncate(users[i].Name, 30),
			users[i].Role,
			users[i].CreatedAt.Format(timeLayout),
		)
	}
	return tw.finish()
}

func printUserDetail(w io.Writer, u *domain.User) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", u.ID)
	tw.writef("Auth ID:\t%s\n", u.AuthID)
	tw.writef("Email:\t%s\n", u.Email)
	tw.writef("Name:\t%s\n", u.Name)
	tw.writef("Role:\t%s\n", u.Role)
	tw.writef("Active:\t%v\n", u.IsActive)
	tw.writef("Created:\t%s\n", u.CreatedAt.Format(timeLayout))
	tw.writef("Updated:\t%s\n", u.UpdatedAt.Format(timeLayout))
	return tw.finish()
}

func printServiceInfo(w io.Writer, info *apiclient.ServiceInfo) error {
	tw := newTabWriter(w)
	tw.writef("Name:\t%s\n", info.Name)
	tw.writef("Version:\t%s (%s)\n", info.Version, info.Commit)
	tw.writef("LLM Backend:\t%s\n", info.LLMBackend)
	tw.writef("Cache:\t%v\n", info.CacheEnabled)
	tw.writef("Layout Probe:\t%v\n", info.ProbeEnabled)
	tw.writef("Users:\t%v\n", info.UsersEnabled)
	return tw.finish()
}

func printProbeResult(w io.Writer, res *apiclient.ProbeResult) error {
	tw := newTabWriter(w)
	tw.writef("Layout OK:\t%v\n", res.LayoutOK)
	tw.writef("Products:\t%d\n", res.Products)
	if res.Error != "" {
		tw.writef("Error:\t%s\n", res.Error)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Latin text only; ambiguous-width runes count as one cell.
var cells = &runewidth.Condition{EastAsianWidth: false}

// truncate shortens s to maxLen display cells; titles are usually Portuguese.
func truncate(s string, maxLen int) string {
	return cells.Truncate(s, maxLen, "...")
}
