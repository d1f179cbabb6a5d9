package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/sanmei/internal/roster"
	"github.com/mesh-intelligence/sanmei/pkg/types"
)

// render writes v as JSON or YAML, or calls text for the text format.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case types.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case types.FormatText, "":
		return text(w)
	}
	return fmt.Errorf("%q: %w", format, types.ErrFormatUnknown)
}

// talent is one labelled position of a report.
type talent struct {
	label string
	pos   types.Position
}

// Personal report order: identity first, then public face, work, private
// life and stress response.
var personalTalents = []talent{
	{"Core values you never give up (center)", types.Center},
	{"Face shown to society and superiors (head)", types.Head},
	{"How you deal with colleagues (right)", types.Right},
	{"Private and family face (left)", types.Left},
	{"Behaviour under stress (feet)", types.Feet},
}

// The partner's manual covers the three positions a colleague meets.
var manualTalents = []talent{
	{"Core values (center)", types.Center},
	{"Face toward superiors and society (head)", types.Head},
	{"Style on the front line (right)", types.Right},
}

func displayName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

// writeChart prints the pillars and the five positions in cross layout.
func writeChart(w io.Writer, r types.Reading) {
	c := r.Chart
	fmt.Fprintf(w, "%s  %s\n", displayName(r.Name, "Chart"), c.Date)
	fmt.Fprintf(w, "Pillars  year %s  month %s  day %s\n", c.Year, c.Month, c.Day)
	fmt.Fprintf(w, "Inauspicious group  %s\n\n", r.Group)

	cell := func(p types.Position) string { return fmt.Sprintf("%-6s %s", p, c.Stars.At(p)) }
	pad := strings.Repeat(" ", 18)
	fmt.Fprintf(w, "%s%s\n", pad, cell(types.Head))
	fmt.Fprintf(w, "%-18s%-18s%s\n", cell(types.Left), cell(types.Center), cell(types.Right))
	fmt.Fprintf(w, "%s%s\n", pad, cell(types.Feet))
}

func writeTalents(w io.Writer, stars types.FiveVirtues, list []talent, business bool) {
	for _, t := range list {
		star := stars.At(t.pos)
		adv := star.Profile().Personal
		verb := "Strategy"
		if business {
			adv = star.Profile().Business
			verb = "How to work with them"
		}
		fmt.Fprintf(w, "[%s] %s\n", t.label, star)
		fmt.Fprintf(w, "  Nature: %s\n", adv.Description)
		fmt.Fprintf(w, "  %s: %s\n", verb, adv.Strategy)
	}
}

// writeReading prints the personal report.
func writeReading(w io.Writer, r types.Reading) error {
	writeChart(w, r)
	name := displayName(r.Name, "You")

	fmt.Fprintf(w, "\n■ %s: five talents and how to use them\n", name)
	writeTalents(w, r.Chart.Stars, personalTalents, false)

	fmt.Fprintln(w, "\n■ Life biorhythm (inauspicious group)")
	fmt.Fprintf(w, "You belong to the %s group. In its periods avoid major decisions such as "+
		"changing jobs, founding a company or moving house, and use the time to recharge "+
		"and build skills instead.\n", r.Group)

	fmt.Fprintf(w, "\nThis is the nature %s was born with. If work or relationships feel "+
		"stifling, the cause is a mismatch between these stars and the environment, "+
		"not a lack of ability.\n", name)
	return nil
}

// writePairing prints the business compatibility report: B's manual, then
// the four verdicts as separate sections.
func writePairing(w io.Writer, p types.Pairing) error {
	nb := displayName(p.B.Name, "Person B")

	writeChart(w, p.A)
	fmt.Fprintln(w)
	writeChart(w, p.B)

	fmt.Fprintf(w, "\n■ %s's manual: pitfalls and how to work with them\n", nb)
	writeTalents(w, p.B.Chart.Stars, manualTalents, true)

	as := p.Assessment
	for _, s := range []struct{ title, msg string }{
		{as.Identity.Title, as.Identity.Message},
		{as.Field.Title, as.Field.Message},
		{as.Crisis.Title, as.Crisis.Message},
		{as.Biorhythm.Title, as.Biorhythm.Message},
	} {
		fmt.Fprintf(w, "\n■ %s\n%s\n", s.title, s.msg)
	}
	return nil
}

// writeRoster prints one line per member and one per pairing.
func writeRoster(w io.Writer, res roster.Result) error {
	if res.Team != "" {
		fmt.Fprintf(w, "Team %s\n\n", res.Team)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MEMBER\tBIRTH\tDAY\tCENTER\tGROUP")
	for _, r := range res.Readings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Name, r.Chart.Date, r.Chart.Day, r.Chart.Stars.Center, r.Group)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(res.Pairings) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PAIR\tIDENTITY\tFIELD\tCRISIS\tBIORHYTHM")
	for _, p := range res.Pairings {
		as := p.Assessment
		fmt.Fprintf(tw, "%s × %s\t%s\t%s\t%s\t%s\n", p.A.Name, p.B.Name,
			as.Identity.Kind, as.Field.Kind, as.Crisis.Kind, as.Biorhythm.Kind)
	}
	return tw.Flush()
}
