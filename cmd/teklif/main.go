package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"warda-panel/internal/teklif"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		raw    teklif.RawInput
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:           "teklif",
		Short:         "İhale teklif hesaplama",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := teklif.Calculate(raw.Parse())
			if err != nil {
				return fmt.Errorf("hesaplama hatası: %w", err)
			}
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(teklif.CalculateResponse{Result: res, Formatted: res.Formatted()})
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			for _, row := range res.Formatted() {
				fmt.Fprintf(w, "%s\t%s\t\n", row.Label, row.Value)
			}
			return w.Flush()
		},
	}
	cmd.SetOut(out)

	cmd.Flags().StringVar(&raw.Material, "malzeme", "", "Malzeme maliyeti")
	cmd.Flags().StringVar(&raw.Labor, "iscilik", "", "İşçilik maliyeti")
	cmd.Flags().StringVar(&raw.Machine, "makine", "", "Makine/ekipman maliyeti")
	cmd.Flags().StringVar(&raw.Insurance, "sigorta", "", "Sigorta (opsiyonel)")
	cmd.Flags().StringVar(&raw.Taxes, "vergi", "", "Vergi ve harçlar (opsiyonel)")
	cmd.Flags().StringVar(&raw.OverheadPct, "genel-gider", "", "Genel gider yüzdesi")
	cmd.Flags().StringVar(&raw.ProfitPct, "kar", "", "Kâr marjı yüzdesi")
	cmd.Flags().StringVar(&raw.VATPct, "kdv", "20", "KDV yüzdesi")
	cmd.Flags().StringVar(&raw.RiskPct, "risk", "", "Risk payı yüzdesi (opsiyonel)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Sonucu JSON olarak yaz")

	return cmd
}
