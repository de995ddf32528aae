package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/helios/internal/savings"
)

// CalculatorResultsID is the element replaced when the bill changes.
const CalculatorResultsID = "calculator-results"

// Calculator is the landing page section with the bill slider.
func Calculator(est savings.Estimate, f *savings.Formatter) g.Node {
	return html.Section(
		html.ID("calculator"),
		html.Class("section"),
		html.Div(
			html.Class("container"),
			html.H2(Animate(0), g.Text("Estimate your savings")),
			html.P(html.Class("lead"), g.Text("Move the slider to your average monthly electricity bill.")),
			html.Div(
				html.Class("calculator card"),
				Animate(1),
				g.El("form",
					html.Action("/calculator"),
					html.Method("get"),
					g.El("label", html.For("bill"), g.Text("Monthly bill")),
					g.El("output", html.ID("bill-output"), html.For("bill"), g.Text(f.Rupees(est.Bill))),
					html.Input(
						html.ID("bill"),
						html.Name("bill"),
						html.Type("range"),
						html.Min(strconv.Itoa(savings.MinBill)),
						html.Max(strconv.Itoa(savings.MaxBill)),
						html.Step(strconv.Itoa(savings.BillStep)),
						html.Value(strconv.Itoa(est.Bill)),
						hx.Get("/calculator"),
						hx.Trigger("input changed delay:150ms"),
						hx.Target("#"+CalculatorResultsID),
						hx.Swap("outerHTML"),
					),
					g.El("noscript", html.Button(html.Type("submit"), html.Class("btn"), g.Text("Calculate"))),
				),
				CalculatorResults(est, f),
			),
		),
	)
}

// CalculatorResults is the fragment returned by GET /calculator.
func CalculatorResults(est savings.Estimate, f *savings.Formatter) g.Node {
	return html.Dl(
		html.ID(CalculatorResultsID),
		html.Class("results"),
		result("System size", f.Kilowatts(est.SystemKW)),
		result("Monthly savings", f.Rupees(est.MonthlySavings)),
		result("Yearly savings", f.Rupees(est.YearlySavings)),
		result("Government subsidy", f.Rupees(est.Subsidy)),
		result("Monthly consumption", f.Number(est.MonthlyUnits)+" kWh"),
		result("CO2 offset", f.Number(est.CO2OffsetKg)+" kg / month"),
	)
}

func result(label, value string) g.Node {
	return html.Div(html.Dt(g.Text(label)), html.Dd(g.Text(value)))
}
