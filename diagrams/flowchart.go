package diagrams

import (
	"flowpaint/connector"
	"flowpaint/geometry"
	"flowpaint/scene"
	"flowpaint/shape"
	"flowpaint/style"
)

// Flowchart is the property booking workflow, from search to confirmation.
func Flowchart() Definition {
	styles := mustRegistry(
		style.Category{
			Name:  "terminal",
			Label: "Start/End",
			Style: style.Style{Fill: style.MustHex("#90EE90"), Stroke: style.MustHex("#008000"), StrokeWidth: 2},
		},
		style.Category{
			Name:  "process",
			Label: "Process",
			Style: style.Style{Fill: style.MustHex("#E8F4F8"), Stroke: style.MustHex("#2c5aa0"), StrokeWidth: 2},
		},
		style.Category{
			Name:  "decision",
			Label: "Decision",
			Style: style.Style{Fill: style.MustHex("#FFE5B4"), Stroke: style.MustHex("#FF8C00"), StrokeWidth: 2},
		},
		style.Category{
			Name:  "data",
			Label: "Data/Document",
			Style: style.Style{Fill: style.MustHex("#F0E68C"), Stroke: style.MustHex("#8B6914"), StrokeWidth: 2},
		},
		style.Category{
			Name:  "step",
			Style: style.Style{Stroke: ink, StrokeWidth: 1.8},
		},
	)
	return Definition{
		Name:        "flowchart",
		Description: "Property booking process flowchart",
		Output:      "booking-flowchart.png",
		Styles:      styles,
		Build: func() (*scene.Scene, error) {
			return buildFlowchart(styles)
		},
	}
}

func buildFlowchart(styles *style.Registry) (*scene.Scene, error) {
	b := scene.NewBuilder(geometry.Canvas{Origin: geometry.Pt(0, -1.5), Width: 17, Height: 25.5})
	b.SetTitle("Property Booking Process Flowchart").
		SetFooter("This flowchart illustrates the complete property booking workflow from search to confirmation")

	terminal := func(x, y float64, label string) shape.Ref {
		return b.Place(shape.RoundedBox(x, y, 2.5, 1.0, 0.15).
			WithLabel(shape.SplitLabel(label)...).
			WithFont(9, true).
			WithCategory("terminal"))
	}
	process := func(x, y float64, label string) shape.Ref {
		return b.Place(shape.RoundedBox(x, y, 2.7, 1.0, 0.1).
			WithLabel(shape.SplitLabel(label)...).
			WithFont(9, true).
			WithCategory("process"))
	}
	decision := func(x, y float64, label string) shape.Ref {
		return b.Place(shape.Diamond(x, y, 0.8, shape.DiamondRotation).
			WithLabel(shape.SplitLabel(label)...).
			WithFont(8, true).
			WithCategory("decision"))
	}
	data := func(x, y float64, label string) shape.Ref {
		return b.Place(shape.Parallelogram(x, y, 2.5, 0.8, 0.2).
			WithLabel(shape.SplitLabel(label)...).
			WithFont(8, true).
			WithCategory("data"))
	}
	arrow := func(from, to connector.Endpoint, label string) {
		b.Connect(connector.Straight(from, to).
			WithLabel(shape.SplitLabel(label)...).
			WithLabelOffset(0, 0.15).
			WithFont(7, true).
			WithCategory("step"))
	}
	at := connector.At
	of := connector.Of

	terminal(7, 22.5, "START")
	process(7, 21.5, "Guest searches\nfor properties")
	data(7, 20.5, "Display search\nresults")
	process(7, 19.5, "Guest selects\nproperty")
	data(7, 18.5, "View property\ndetails")
	loggedIn := decision(7, 17.5, "User\nlogged in?")

	login := process(4, 16.5, "Login or\nRegister")
	arrow(of(loggedIn, shape.Left), of(login, shape.Top), "")
	process(4, 15.5, "Return to\nproperty page")
	arrow(at(4, 16.2), at(4, 15.8), "")

	process(7, 16.5, "Select dates\nand guests")
	process(7, 15.5, "Check property\navailability")
	available := decision(7, 14.5, "Property\navailable?")

	notAvailable := process(4, 13.5, "Show not available\nmessage")
	arrow(of(available, shape.Left), of(notAvailable, shape.Top), "")
	process(4, 12.5, "Return to\nsearch")
	arrow(at(4, 13.2), at(4, 12.8), "")

	process(10, 14.5, "Calculate total\nprice")
	data(10, 13.5, "Display booking\nsummary")
	process(10, 12.5, "Guest reviews\nbooking details")
	proceed := decision(10, 11.5, "Proceed to\npayment?")

	modify := process(7.5, 10.5, "Modify booking\ndetails")
	arrow(of(proceed, shape.Left), of(modify, shape.TopRight), "")
	arrow(at(7.5, 10.2), at(7, 16.8), "Back")

	enterPayment := process(12.5, 11.5, "Enter payment\ninformation")
	arrow(of(proceed, shape.Right), of(enterPayment, shape.Left), "Yes")

	process(12.5, 10.5, "Validate payment\ndetails")
	valid := decision(12.5, 9.5, "Payment\nvalid?")

	paymentError := process(10, 8.5, "Show payment\nerror")
	arrow(of(valid, shape.Left), of(paymentError, shape.TopRight), "")
	arrow(at(10, 8.2), at(12.5, 11.2), "Retry")

	process(12.5, 8.5, "Process payment\nwith gateway")
	arrow(at(12.5, 9.2), at(12.5, 9.0), "")
	successful := decision(12.5, 7.5, "Payment\nsuccessful?")

	failed := process(10, 6.5, "Payment failed\nhandle error")
	arrow(of(successful, shape.Left), of(failed, shape.TopRight), "")
	process(10, 5.5, "Notify guest\nof failure")
	arrow(at(10, 6.2), at(10, 6.0), "")
	terminal(10, 4.5, "END\n(Booking Failed)")

	create := process(15, 7.5, "Create booking\nrecord")
	arrow(of(successful, shape.Right), of(create, shape.Left), "Yes")
	process(15, 6.5, "Update property\navailability")
	data(15, 5.5, "Save booking to\ndatabase")
	process(15, 4.5, "Send confirmation\nemail")
	data(15, 3.5, "Generate booking\ninvoice")
	process(15, 2.5, "Notify host of\nnew booking")
	process(15, 1.5, "Set booking status\nto \"Confirmed\"")
	process(15, 0.5, "Display booking\nconfirmation")
	terminal(15, -0.5, "END\n(Booking Confirmed)")

	arrow(at(4, 15.2), at(7, 16.8), "")
	arrow(at(4, 12.2), at(7, 20.8), "Search again")

	if err := b.AddLegendEntries(styles, "terminal", "process", "decision", "data"); err != nil {
		return nil, err
	}
	b.SetLegendLayout(scene.LegendTopLeft, 1, "Flowchart Symbols")
	return b.Build()
}
