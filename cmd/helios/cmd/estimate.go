package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nfrund/helios/internal/savings"
)

var (
	estimateBill   float64
	estimateOutput string
	estimateLocale string
)

var (
	errNegativeBill = errors.New("bill must not be negative")
	errBillTooLarge = fmt.Errorf("bill must be a finite amount up to %d", int64(savings.MaxEstimateBill))
)

// checkBill rejects bills the estimator would only saturate.
func checkBill(bill float64) error {
	switch {
	case math.IsNaN(bill) || math.IsInf(bill, 0) || bill > savings.MaxEstimateBill:
		return errBillTooLarge
	case bill < 0:
		return errNegativeBill
	}
	return nil
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate rooftop solar savings for a monthly electricity bill",
	Long: `Prints the recommended system size, savings, subsidy and CO2 offset for
a monthly bill in rupees. Without --bill the bill is asked for interactively.`,
	Example: `  helios estimate --bill 8000
  helios estimate --bill 8000 --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bill := estimateBill
		if !cmd.Flags().Changed("bill") {
			answer, err := promptBill()
			if err != nil {
				return err
			}
			bill = answer
		}
		if err := checkBill(bill); err != nil {
			return err
		}

		est := savings.Calculate(bill)
		switch strings.ToLower(estimateOutput) {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(est)
		case "table", "":
			return writeEstimate(cmd.OutOrStdout(), est, savings.NewFormatter(estimateLocale))
		default:
			return fmt.Errorf("unknown output format %q (want table or json)", estimateOutput)
		}
	},
}

func init() {
	estimateCmd.Flags().Float64Var(&estimateBill, "bill", savings.DefaultBill, "average monthly electricity bill in rupees")
	estimateCmd.Flags().StringVarP(&estimateOutput, "output", "o", "table", "output format: table or json")
	estimateCmd.Flags().StringVar(&estimateLocale, "locale", "en-IN", "locale used to format numbers")
	rootCmd.AddCommand(estimateCmd)
}

func promptBill() (float64, error) {
	var answer string
	prompt := &survey.Input{
		Message: "Average monthly electricity bill (₹):",
		Default: strconv.Itoa(savings.DefaultBill),
	}
	if err := survey.AskOne(prompt, &answer, survey.WithValidator(survey.Required), survey.WithValidator(validateBill)); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(answer), 64)
}

func validateBill(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return errors.New("expected a number")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter the bill as a number, for example 3000")
	}
	return checkBill(v)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	labelStyle = lipgloss.NewStyle().Faint(true).Width(22)
	valueStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#D97706")).Padding(0, 1)
)

func writeEstimate(w io.Writer, est savings.Estimate, f *savings.Formatter) error {
	rows := []struct{ label, value string }{
		{"Monthly bill", f.Rupees(est.Bill)},
		{"Monthly consumption", f.Number(est.MonthlyUnits) + " kWh"},
		{"Recommended system", f.Kilowatts(est.SystemKW)},
		{"Monthly savings", f.Rupees(est.MonthlySavings)},
		{"Yearly savings", f.Rupees(est.YearlySavings)},
		{"Government subsidy", f.Rupees(est.Subsidy)},
		{"CO2 offset", f.Number(est.CO2OffsetKg) + " kg / month"},
	}

	lines := []string{titleStyle.Render("☀ Helios savings estimate"), ""}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r.label), valueStyle.Render(r.value)))
	}

	_, err := fmt.Fprintln(w, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	return err
}
