package presentation

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText prints a RouteView as aligned plain text for terminals.
func WriteText(w io.Writer, v RouteView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Mode:\t%s (%s)\n", v.Mode, v.Source)
	fmt.Fprintf(tw, "Distance:\t%s\n", v.TotalDistance)
	fmt.Fprintf(tw, "Time:\t%s\n", v.TotalTime)
	fmt.Fprintf(tw, "Cost:\t%s\n", v.Cost)

	if len(v.Legs) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "FROM\tTO\tDISTANCE\tTIME\tCOST")
		for _, l := range v.Legs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", l.From, l.To, l.Distance, l.Time, l.Cost)
		}
	}

	if len(v.Stops) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "#\tMISSION\tLOCATION\tDATE\tFORFEIT\tFROM PREVIOUS")
		for _, s := range v.Stops {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", s.Position, s.Title, s.Location, s.Date, s.Forfeit, s.DistanceFromPrevious)
		}
	}

	if len(v.Unroutable) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Missing coordinates:")
		for _, u := range v.Unroutable {
			fmt.Fprintf(tw, "-\t%s\t%s\n", u.Title, u.Location)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write route text: %w", err)
	}
	return nil
}
