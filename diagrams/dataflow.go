package diagrams

import (
	"flowpaint/connector"
	"flowpaint/geometry"
	"flowpaint/scene"
	"flowpaint/shape"
	"flowpaint/style"
)

// DataFlow is the level 0 data flow diagram of the booking backend.
func DataFlow() Definition {
	styles := mustRegistry(
		style.Category{
			Name:  "external",
			Label: "External Entity",
			Style: style.Style{Fill: style.MustHex("#FFE5B4"), Stroke: black, StrokeWidth: 2},
		},
		style.Category{
			Name:  "process",
			Label: "Process",
			Style: style.Style{Fill: style.MustHex("#E8F4F8"), Stroke: style.MustHex("#2c5aa0"), StrokeWidth: 2},
		},
		style.Category{
			Name:  "store",
			Label: "Data Store",
			Style: style.Style{Fill: style.MustHex("#F0E68C"), Stroke: black, StrokeWidth: 2},
		},
		style.Category{
			Name:  "flow",
			Style: style.Style{Stroke: ink, StrokeWidth: 1.8},
		},
	)
	return Definition{
		Name:        "dataflow",
		Description: "Level 0 data flow diagram",
		Output:      "data-flow.png",
		Styles:      styles,
		Build: func() (*scene.Scene, error) {
			return buildDataFlow(styles)
		},
	}
}

type dataFlow struct {
	x1, y1, x2, y2 float64
	label          string
	offset         float64
}

var dataFlows = []dataFlow{
	// guest
	{4.5, 14, 5.15, 13.5, "Login Credentials", 0.2},
	{4.5, 14, 9.15, 13.5, "Profile Updates", 0.2},
	{4.5, 14, 5.15, 11, "Property Search\nRequest", 0.2},
	{4.5, 14, 9.15, 11, "Booking Request", 0.2},
	{4.5, 14, 11.15, 11, "Booking\nModifications", 0.2},
	{4.5, 14, 5.15, 8.5, "Payment Info", 0.2},
	{4.5, 14, 9.15, 8.5, "Review Data", 0.2},
	{4.5, 14, 13.15, 11, "Message", 0.2},

	// host
	{4.5, 11, 5.15, 11, "Property Data", 0.2},
	{4.5, 11, 9.15, 11, "Booking\nResponses", 0.2},
	{4.5, 11, 11.15, 11, "Availability\nUpdates", 0.2},
	{4.5, 11, 13.15, 8.5, "Review Data", 0.2},
	{4.5, 11, 13.15, 11, "Message", 0.2},

	// admin
	{4.5, 8, 13.15, 8.5, "Moderation\nActions", 0.2},

	// external services
	{17.85, 13, 11.15, 8.5, "Payment\nConfirmation", 0.2},
	{11.85, 8.5, 17.15, 13, "Payment\nRequest", 0.2},
	{13.85, 11, 17.15, 10, "Notification\nData", 0.2},
	{17.85, 10, 5.15, 13.5, "Verification\nStatus", 0.2},
	{5.15, 11, 17.15, 7, "Property\nImages", 0.2},
	{17.85, 7, 5.15, 11, "Image URLs", 0.2},

	// processes to stores
	{6, 12.75, 6, 7.2, "User Data", 0.2},
	{10, 12.75, 6, 7.2, "Profile Updates", -0.2},
	{6, 10.25, 10, 7.2, "Property Data", 0.2},
	{6, 10.25, 10, 7.2, "Property\nUpdates", 0.4},
	{10, 10.25, 14, 7.2, "Booking Data", 0.2},
	{10, 10.25, 14, 7.2, "Booking\nStatus", -0.4},
	{6, 7.75, 18, 12.2, "Payment Records", 0.2},
	{6, 7.75, 18, 12.2, "Transaction\nData", 0.3},
	{10, 7.75, 18, 9.2, "Review Data", 0.2},
	{10, 7.75, 18, 9.2, "Ratings", -0.3},
	{6, 10.25, 18, 6.2, "Image Files", 0.2},

	// stores to processes
	{6, 6.8, 5.15, 13.5, "User Info", 0.2},
	{6, 6.8, 9.15, 13.5, "Profile Data", 0.2},
	{10, 7.2, 5.15, 11, "Property\nListings", 0.2},
	{10, 7.2, 9.15, 11, "Property\nDetails", 0.2},
	{14, 7.2, 9.15, 11, "Booking\nHistory", 0.2},
	{14, 7.2, 13.15, 8.5, "Booking\nInfo", 0.2},
	{18, 12.2, 6, 8.5, "Payment\nHistory", 0.2},
	{18, 9.2, 10, 8.5, "Review\nData", 0.2},
	{18, 6.8, 6, 11, "Image URLs", 0.2},
	{18, 6.8, 10, 11, "Image URLs", 0.2},

	// process to process
	{8.4, 13.5, 9.15, 13.5, "User Auth", -0.1},
	{6, 12, 9.15, 11.5, "User\nVerification", 0.2},
	{10, 11.5, 11.15, 8.5, "Booking\nConfirmation", 0.2},
	{10, 10.5, 11.15, 8.5, "Payment\nRequired", 0.2},
	{8.4, 8.5, 9.15, 8.5, "Payment\nStatus", 0.2},
}

func buildDataFlow(styles *style.Registry) (*scene.Scene, error) {
	b := scene.NewBuilder(geometry.NewCanvas(22, 16))
	b.SetTitle("Airbnb Clone Backend - Data Flow Diagram (Level 0)").
		SetFooter("Data flows show movement of information through the system")

	external := func(x, y float64, label string) {
		b.Place(shape.RoundedBox(x, y, 2.8, 1.5, 0.15).
			WithLabel(shape.SplitLabel(label)...).
			WithFont(10, true).
			WithCategory("external"))
	}
	process := func(x, y float64, label string) {
		b.Place(shape.RoundedBox(x, y, 3.2, 1.9, 0.2).
			WithLabel(shape.SplitLabel(label)...).
			WithFont(9, true).
			WithCategory("process"))
	}
	store := func(x, y float64, label string) {
		b.Place(shape.OpenStore(x, y, 2.2, 1.2, 0.2).
			WithLabel(shape.SplitLabel(label)...).
			WithFont(9, true).
			WithCategory("store"))
	}

	external(2, 14, "Guest")
	external(2, 11, "Host")
	external(2, 8, "Admin")
	external(20, 13, "Payment\nGateway")
	external(20, 10, "Email\nService")
	external(20, 7, "Storage\n(Images)")

	process(6, 13.5, "Authenticate\nUser")
	process(10, 13.5, "Manage\nUser Profile")
	process(6, 11, "Manage\nProperties")
	process(10, 11, "Process\nBookings")
	process(6, 8.5, "Process\nPayments")
	process(10, 8.5, "Handle\nReviews")
	process(14, 11, "Send\nNotifications")
	process(14, 8.5, "Admin\nManagement")

	store(6, 6, "User\nDatabase")
	store(10, 6, "Property\nDatabase")
	store(14, 6, "Booking\nDatabase")
	store(18, 13, "Payment\nDatabase")
	store(18, 10, "Review\nDatabase")
	store(18, 7, "Image\nStorage")

	for _, f := range dataFlows {
		b.Connect(connector.New(connector.At(f.x1, f.y1), connector.At(f.x2, f.y2)).
			WithLabel(shape.SplitLabel(f.label)...).
			WithLabelOffset(f.offset, f.offset).
			WithCategory("flow"))
	}

	if err := b.AddLegendEntries(styles, "external", "process", "store"); err != nil {
		return nil, err
	}
	b.SetLegendLayout(scene.LegendBottom, 3, "")
	return b.Build()
}
