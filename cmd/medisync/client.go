package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"medisync-api/internal/client"
	"medisync-api/internal/config"
	"medisync-api/internal/inventory"
	"medisync-api/internal/model"
	"medisync-api/internal/search"
)

func dial() (*client.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	c, err := client.Dial(cfg.ServerAddr, cfg.SessionFile)
	if err != nil {
		return nil, nil, err
	}
	return c, cfg, nil
}

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			in := bufio.NewReader(cmd.InOrStdin())
			if email == "" {
				email = prompt(cmd.OutOrStdout(), in, "Email: ")
			}
			if password == "" {
				password = prompt(cmd.OutOrStdout(), in, "Password: ")
			}

			c, _, err := dial()
			if err != nil {
				return err
			}
			defer c.Close()
			s, err := c.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s (%s)\n", s.Email, s.Role)
			return nil
		},
	}
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password (prompted when empty)")
	return cmd
}

func prompt(w io.Writer, r *bufio.Reader, label string) string {
	fmt.Fprint(w, label)
	line, _ := r.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and forget it",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := dial()
			if err != nil {
				return err
			}
			defer c.Close()
			if err := c.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user and profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := dial()
			if err != nil {
				return err
			}
			defer c.Close()
			resp, err := c.WhoAmI(cmd.Context())
			if errors.Is(err, client.ErrNoSession) {
				return fmt.Errorf("%w, run `medisync login`", err)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s #%d)\n", resp.User.Email, resp.User.Type, resp.User.Id)
			switch p := resp.Profile; {
			case p.Patient != nil:
				fmt.Fprintf(out, "%s %s, %s, %s\n", p.Patient.FirstName, p.Patient.LastName, p.Patient.Contact, p.Patient.Address)
			case p.Doctor != nil:
				fmt.Fprintf(out, "Dr. %s, %s, %s\n", p.Doctor.Name, p.Doctor.Specialization, p.Doctor.ClinicLocation)
			case p.Pharmacist != nil:
				fmt.Fprintf(out, "%s, %s, %s\n", p.Pharmacist.Name, p.Pharmacist.PharmacyName, p.Pharmacist.Address)
			}
			return nil
		},
	}
}

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search medicines; without a query, read queries from stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := dial()
			if err != nil {
				return err
			}
			defer c.Close()

			out := cmd.OutOrStdout()
			if all, _ := cmd.Flags().GetBool("all"); all {
				meds, err := c.Medicines(cmd.Context())
				if err != nil {
					return err
				}
				printMedicines(out, meds)
				return nil
			}
			if len(args) == 1 {
				meds, err := c.Search(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printMedicines(out, meds)
				return nil
			}
			return interactiveSearch(cmd.Context(), cmd.InOrStdin(), out, cfg, c.Search)
		},
	}
	cmd.Flags().Bool("all", false, "List every medicine record")
	return cmd
}

// interactiveSearch treats every stdin line as the current input. At end of
// input it waits for the answer to the last line.
func interactiveSearch(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, fn search.Func) error {
	var shown atomic.Uint64
	tick := make(chan struct{}, 1)
	d := search.New(cfg.SearchDebounce, fn, func(r search.Result) {
		switch {
		case r.Err != nil:
			fmt.Fprintf(out, "search failed: %v\n", r.Err)
		case r.Query == "":
			fmt.Fprintln(out, "(cleared)")
		default:
			printMedicines(out, r.Medicines)
		}
		shown.Store(r.Gen)
		select {
		case tick <- struct{}{}:
		default:
		}
	})
	defer d.Close()

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		d.Submit(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return err
	}

	last := d.Latest()
	for shown.Load() < last {
		select {
		case <-tick:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func printMedicines(w io.Writer, meds []model.Medicine) {
	if len(meds) == 0 {
		fmt.Fprintln(w, "No results found")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMEDICINE\tPHARMACY\tADDRESS\tAVAILABLE")
	for _, m := range meds {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", m.ID, m.MedicineName, m.PharmacyName, m.Address, yesNo(m.Availability))
	}
	tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func inventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Show or change your pharmacy's availability",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your pharmacy's medicines",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := dial()
			if err != nil {
				return err
			}
			defer c.Close()
			meds, err := c.PharmacyMedicines(cmd.Context())
			if err != nil {
				return err
			}
			printMedicines(cmd.OutOrStdout(), meds)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set id=true|false...",
		Short: "Stage availability changes and commit them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edits, err := parseEdits(args)
			if err != nil {
				return err
			}
			c, _, err := dial()
			if err != nil {
				return err
			}
			defer c.Close()

			meds, err := c.PharmacyMedicines(cmd.Context())
			if err != nil {
				return err
			}
			d := inventory.NewDraft(meds)
			for _, e := range edits {
				if err := d.Stage(e.ID, e.Availability); err != nil {
					return err
				}
			}
			updated, err := d.Commit(cmd.Context(), c)
			fmt.Fprintf(cmd.OutOrStdout(), "updated %d of %d\n", len(updated), len(edits))
			printMedicines(cmd.OutOrStdout(), d.View())
			return err
		},
	})
	return cmd
}

// parseEdits reads "id=bool" arguments. A repeated id keeps its last value.
func parseEdits(args []string) ([]inventory.Edit, error) {
	byID := map[int64]bool{}
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("bad edit %q, want id=true|false", a)
		}
		id, err := strconv.ParseInt(strings.TrimSpace(k), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("bad medicine id %q", k)
		}
		avail, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("bad availability %q for %d", v, id)
		}
		byID[id] = avail
	}
	edits := make([]inventory.Edit, 0, len(byID))
	for id, v := range byID {
		edits = append(edits, inventory.Edit{ID: id, Availability: v})
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].ID < edits[j].ID })
	return edits, nil
}
