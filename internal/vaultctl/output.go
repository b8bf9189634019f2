package vaultctl

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func userTable(w io.Writer, p service.UserPage) {
	if len(p.Users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tCONFIRMED\tACCOUNTS")
	for _, u := range p.Users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%d\n", u.ID, u.Name, u.Email, u.IsAuthenticated, u.AccountsCount)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nPage %d of %d (%d users)\n", p.CurrentPage, p.TotalPages, p.TotalItems)
}

func statsTable(w io.Writer, regs service.RegistrationStats, domains []service.DomainBucket) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "MONTH\tYEAR\tREGISTRATIONS")
	for _, m := range regs.Data {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", m.Month, m.Year, m.Value)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "DOMAIN\tACCOUNTS")
	for _, d := range domains {
		fmt.Fprintf(tw, "%s\t%d\n", d.Domain, d.Value)
	}
	tw.Flush()
}
