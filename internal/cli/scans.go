package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"wifidash/wifi/scanlog"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func addScans(topLevel *cobra.Command, o *options) {
	cmd := &cobra.Command{
		Use:   "scans",
		Short: "Inspect recorded scans.",
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded scans, oldest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(o)
			if err != nil {
				return err
			}
			scans, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			if limit > 0 && len(scans) > limit {
				scans = scans[len(scans)-limit:]
			}
			printScans(cmd.OutOrStdout(), scans)
			return nil
		},
	}
	list.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the newest N scans.")

	show := &cobra.Command{
		Use:   "show [id]",
		Short: "Show the stations of one scan (default: the latest).",
		Example: `
wifidash scans show
wifidash scans show 00000042
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(o)
			if err != nil {
				return err
			}
			var sc scanlog.Scan
			if len(args) == 0 {
				sc, err = st.Latest(cmd.Context())
			} else {
				sc, err = st.Get(args[0])
			}
			if err != nil {
				return err
			}
			printStations(cmd.OutOrStdout(), sc)
			return nil
		},
	}

	cmd.AddCommand(list, show)
	topLevel.AddCommand(cmd)
}

func openStore(o *options) (*scanlog.Store, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, err
	}
	return scanlog.Open(cfg.Scan.Dir)
}

func printScans(w io.Writer, scans []scanlog.Scan) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Taken"), bold.Sprint("Source"), bold.Sprint("Stations"), bold.Sprint("Strongest"))
	for _, sc := range scans {
		strongest := "-"
		if len(sc.Stations) > 0 {
			best := sc.Stations[0]
			for _, s := range sc.Stations[1:] {
				if s.RSSI > best.RSSI {
					best = s
				}
			}
			strongest = fmt.Sprintf("%s (%d dBm)", best.DisplaySSID(), best.RSSI)
		}
		tbl.AddRow(sc.ID, sc.Taken.Local().Format(time.DateTime), sc.Source, len(sc.Stations), strongest)
	}
	tbl.RightAlign(3)

	_, _ = fmt.Fprintln(w, tbl)
}

// rssiColor grades a level the way the heatmap does: strong, usable, weak.
func rssiColor(rssi int) *color.Color {
	switch {
	case rssi >= -55:
		return color.New(color.FgGreen)
	case rssi >= -75:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func printStations(w io.Writer, sc scanlog.Scan) {
	bold := color.New(color.Bold)
	_, _ = fmt.Fprintf(w, "%s %s  %s  %d stations\n\n", bold.Sprint("Scan"), sc.ID, sc.Taken.Local().Format(time.DateTime), len(sc.Stations))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 32
	tbl.AddRow(bold.Sprint("SSID"), bold.Sprint("BSSID"), bold.Sprint("Chan"), bold.Sprint("Band"), bold.Sprint("RSSI"), bold.Sprint("Auth"), bold.Sprint("PHY"))
	for _, s := range sc.Stations {
		tbl.AddRow(s.DisplaySSID(), s.BSSID, s.Channel, s.Band(), rssiColor(s.RSSI).Sprint(strconv.Itoa(s.RSSI)), s.Auth, s.PHY)
	}
	tbl.RightAlign(2)
	tbl.RightAlign(4)

	_, _ = fmt.Fprintln(w, tbl)
}
