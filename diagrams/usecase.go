package diagrams

import (
	"flowpaint/connector"
	"flowpaint/geometry"
	"flowpaint/scene"
	"flowpaint/shape"
	"flowpaint/style"
)

// UseCase maps the platform's actors to the use cases they take part in.
func UseCase() Definition {
	styles := mustRegistry(
		style.Category{
			Name:  "actor",
			Label: "Actor",
			Style: style.Style{Fill: style.MustHex("#f7f7f7"), Stroke: ink, StrokeWidth: 1.5},
		},
		style.Category{
			Name:  "usecase",
			Label: "Use Case",
			Style: style.Style{Fill: style.MustHex("#e8f1ff"), Stroke: style.MustHex("#2c5aa0"), StrokeWidth: 1.8},
		},
		style.Category{
			Name:  "association",
			Style: style.Style{Stroke: style.MustHex("#666666"), StrokeWidth: 1.4},
		},
	)
	return Definition{
		Name:        "usecase",
		Description: "Actors and use cases",
		Output:      "use_case_diagram.png",
		Styles:      styles,
		Build: func() (*scene.Scene, error) {
			return buildUseCase()
		},
	}
}

type useCase struct {
	label string
	x, y  float64
}

var useCases = []useCase{
	{"Register Account", 7.5, 12.0},
	{"Login", 7.5, 10.0},
	{"Verify Email", 7.5, 8.0},
	{"Manage Profile", 7.5, 6.0},
	{"Search Listings", 10.5, 12.0},
	{"View Listing Details", 10.5, 10.0},
	{"Book Property", 10.5, 8.0},
	{"Manage Booking", 10.5, 6.0},
	{"Cancel Booking", 10.5, 4.2},
	{"Make Payment", 13.5, 8.0},
	{"Refund Payment", 13.5, 6.0},
	{"List Property", 7.5, 4.2},
	{"Manage Listing", 7.5, 2.6},
	{"Set Availability", 10.5, 2.6},
	{"Message Host/Guest", 13.5, 12.0},
	{"Leave Review", 13.5, 10.0},
	{"Moderate Users", 7.5, 0.9},
	{"Moderate Properties", 10.5, 0.9},
	{"Moderate Bookings", 13.5, 0.9},
	{"Receive Notifications", 16.5, 4.2},
}

// participation lists, per actor, the use cases it is associated with.
var participation = []struct {
	actor    string
	x, y     float64
	external bool
	cases    []string
}{
	{"Guest", 2, 12, false, []string{
		"Register Account", "Login", "Verify Email", "Manage Profile",
		"Search Listings", "View Listing Details", "Book Property", "Manage Booking",
		"Cancel Booking", "Message Host/Guest", "Leave Review", "Make Payment",
		"Refund Payment", "Receive Notifications",
	}},
	{"Host", 2, 8.5, false, []string{
		"Manage Profile", "List Property", "Manage Listing", "Set Availability",
		"Manage Booking", "Message Host/Guest", "Receive Notifications",
	}},
	{"Admin", 2, 5.0, false, []string{
		"Moderate Users", "Moderate Properties", "Moderate Bookings", "Receive Notifications",
	}},
	{"Payment Provider", 18, 9.5, true, []string{"Make Payment", "Refund Payment"}},
	{"Email Service", 18, 6.0, true, []string{"Verify Email"}},
}

func buildUseCase() (*scene.Scene, error) {
	b := scene.NewBuilder(geometry.NewCanvas(20, 14))
	b.SetTitle("Airbnb Clone - Use Case Diagram")

	refs := make(map[string]shape.Ref, len(useCases))
	for _, p := range participation {
		refs[p.actor] = b.Place(shape.RoundedBox(p.x, p.y, 3.2, 1.6, 0.2).
			WithLabel(p.actor).
			WithFont(11, true).
			WithCategory("actor"))
	}
	for _, uc := range useCases {
		refs[uc.label] = b.Place(shape.Ellipse(uc.x, uc.y, 3.8, 1.6).
			WithLabel(uc.label).
			WithFont(10, false).
			WithCategory("usecase"))
	}

	// Actors on the left reach their use cases from the right edge, external
	// systems on the right from the left edge.
	for _, p := range participation {
		from, to := shape.Right, shape.Left
		if p.external {
			from, to = shape.Left, shape.Right
		}
		for _, name := range p.cases {
			uc, ok := refs[name]
			if !ok {
				uc = -1
			}
			b.Connect(connector.Line(connector.Of(refs[p.actor], from), connector.Of(uc, to)).
				WithCategory("association"))
		}
	}
	return b.Build()
}
