// Public domain.

package vpprog

import (
	"fmt"
	"strconv"

	"github.com/soniakeys/sexagesimal"
	"github.com/spf13/cobra"

	"github.com/soniakeys/varphot/internal/catalog"
	"github.com/soniakeys/varphot/internal/fileutil"
)

func newCandidatesCommand(a *app) *cobra.Command {
	var output string
	var list bool
	cmd := &cobra.Command{
		Use:   "candidates <catalog.csv>",
		Short: "Select observable candidates from a variable star catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.candidates(args[0], output, list)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "candidates.csv", "candidate list to write")
	cmd.Flags().BoolVar(&list, "list", false, "print the selected candidates")
	return cmd
}

func (a *app) candidates(fn, output string, list bool) error {
	if err := fileutil.Check(fn); err != nil {
		return err
	}
	cat, err := catalog.ReadFile(fn)
	if err != nil {
		return err
	}
	a.log.Debug("catalog read", "path", fn, "entries", len(cat.Entries))
	kept, rejected := catalog.Select(cat.Entries, a.cfg.SouthLimit(), a.cfg.Constraints())
	for _, r := range rejected {
		a.log.Info("entry rejected", "index", r.Entry.Index, "reason", string(r.Reason))
	}
	if err := catalog.WriteFile(output, cat.Header, kept); err != nil {
		return err
	}

	counts := map[catalog.Reason]int{}
	for _, r := range rejected {
		counts[r.Reason]++
	}
	rows := [][]string{
		{"Catalog entries", strconv.Itoa(len(cat.Entries))},
		{"Selected", strconv.Itoa(len(kept))},
	}
	for _, r := range []catalog.Reason{
		catalog.ReasonInvalidPeriod,
		catalog.ReasonVisibility,
		catalog.ReasonDeclination,
		catalog.ReasonRightAscension,
		catalog.ReasonPeriod,
		catalog.ReasonBrightness,
	} {
		if counts[r] > 0 {
			rows = append(rows, []string{"Rejected, " + string(r), strconv.Itoa(counts[r])})
		}
	}
	renderTable(a.out, "Candidates written to "+output,
		[]string{"", "Count"}, rows,
		[]columnAlignment{alignLeft, alignRight})

	if list && len(kept) > 0 {
		rows = rows[:0]
		for i := range kept {
			e := &kept[i]
			rows = append(rows, []string{
				strconv.Itoa(e.Index),
				fmt.Sprintf("%.1s", sexa.FmtRA(e.Pos.RA)),
				fmt.Sprintf("%+.0s", sexa.FmtAngle(e.Pos.Dec)),
				strconv.FormatFloat(e.Period, 'f', -1, 64),
				strconv.FormatFloat(e.MinI, 'f', -1, 64),
				strconv.FormatFloat(e.MinII, 'f', -1, 64),
			})
		}
		renderTable(a.out, "",
			[]string{"Row", "RA", "Dec", "Period [d]", "MinI", "MinII"}, rows,
			[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight, alignRight})
	}
	return nil
}
