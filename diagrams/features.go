package diagrams

import (
	"strings"

	"flowpaint/connector"
	"flowpaint/geometry"
	"flowpaint/scene"
	"flowpaint/shape"
	"flowpaint/style"
)

type feature struct {
	name     string
	category string
	x, y     float64 // lower-left corner
	details  []string
}

var featureAreas = []struct {
	name, label, fill string
}{
	{"auth", "Authentication", "#4A90E2"},
	{"property", "Property", "#50C878"},
	{"booking", "Booking", "#FF6B6B"},
	{"payment", "Payment", "#FFD93D"},
	{"review", "Reviews", "#9B59B6"},
	{"search", "Search", "#3498DB"},
	{"message", "Messaging", "#E67E22"},
	{"image", "Images", "#1ABC9C"},
	{"notification", "Notifications", "#34495E"},
	{"admin", "Admin", "#E74C3C"},
	{"additional", "Additional", "#95A5A6"},
}

var features = []feature{
	{"User Authentication\n&\nAuthorization", "auth", 1, 13, []string{"Registration", "Login", "OAuth", "Profile", "Roles"}},
	{"Property\nManagement", "property", 5.5, 13, []string{"CRUD", "Location", "Pricing", "Amenities", "Calendar"}},
	{"Booking\nSystem", "booking", 10, 13, []string{"Create", "Manage", "Status", "Cancellation"}},
	{"Payment\nProcessing", "payment", 14.5, 13, []string{"Gateway", "Transactions", "Payouts", "Refunds"}},

	{"Reviews &\nRatings", "review", 1, 9.5, []string{"Submit", "Display", "Moderate", "Aggregate"}},
	{"Search &\nFiltering", "search", 5.5, 9.5, []string{"Location", "Filters", "Sorting", "Map"}},
	{"Messaging &\nCommunication", "message", 10, 9.5, []string{"In-App", "Threads", "Notifications"}},
	{"Image\nManagement", "image", 14.5, 9.5, []string{"Upload", "Storage", "Optimization", "CDN"}},

	{"Notifications\nSystem", "notification", 1, 6, []string{"Email", "Push", "SMS", "Preferences"}},
	{"Admin\nDashboard", "admin", 5.5, 6, []string{"Users", "Properties", "Bookings", "Analytics"}},
	{"Additional\nFeatures", "additional", 10, 6, []string{"Wishlists", "Recommendations", "API", "Analytics"}},
	{"Security\nFeatures", "security", 14.5, 6, []string{"Encryption", "HTTPS", "Auth", "Validation"}},
}

// relationships between feature areas, as raw from/to points
var featureLinks = [][4]float64{
	{2.75, 13, 5.5, 11.25},  // auth -> property
	{5.25, 13, 10, 11.25},   // auth -> booking
	{9, 13, 14.5, 11.25},    // booking -> payment
	{7.25, 13, 10, 13},      // property -> booking
	{10, 12, 2.75, 11},      // booking -> reviews
	{7.25, 9.5, 5.5, 9.5},   // search -> property
	{10, 9.5, 10, 11.25},    // messaging <-> booking
	{16.25, 9.5, 9, 13},     // images -> property
	{7.25, 6, 3.25, 13},     // admin -> auth
	{7.25, 6, 7.25, 13},     // admin -> property
	{7.25, 6, 11.75, 13},    // admin -> booking
	{7.25, 6, 16.25, 13},    // admin -> payment
	{2.75, 8, 10, 13},       // notifications -> booking
	{2.75, 8, 11.75, 9.5},   // notifications -> messaging
}

const techStack = `Backend: Python (Flask/Django) | Node.js (Express) | Ruby on Rails
Database: PostgreSQL | MySQL | MongoDB | Caching: Redis
Storage: AWS S3 | Google Cloud | Payment: Stripe | PayPal
Email: SendGrid | Mailgun | Real-time: WebSockets | Search: Elasticsearch`

// Features is the feature map of the booking backend.
func Features() Definition {
	categories := make([]style.Category, 0, len(featureAreas)+3)
	for _, a := range featureAreas {
		categories = append(categories, style.Category{
			Name:  a.name,
			Label: a.label,
			Style: style.Style{Fill: style.MustHex(a.fill), Stroke: black, StrokeWidth: 2},
		})
	}
	categories = append(categories,
		style.Category{
			Name:  "security",
			Label: "Security",
			Style: style.Style{Fill: style.MustHex("#C0392B"), Stroke: black, StrokeWidth: 2},
		},
		style.Category{
			Name:  "stack",
			Label: "Technology Stack",
			Style: style.Style{Fill: style.MustHex("#ECF0F1"), Stroke: black, StrokeWidth: 2, Opacity: 0.9},
		},
		style.Category{
			Name:  "relation",
			Style: style.Style{Stroke: gray, StrokeWidth: 1.5}.Faded(0.6),
		},
	)
	styles := mustRegistry(categories...)

	return Definition{
		Name:        "features",
		Description: "Feature areas and their relationships",
		Output:      "backend_features_diagram.png",
		Styles:      styles,
		Build: func() (*scene.Scene, error) {
			return buildFeatures(styles)
		},
	}
}

func buildFeatures(styles *style.Registry) (*scene.Scene, error) {
	const w, h, pad = 3.5, 2.5, 0.1

	b := scene.NewBuilder(geometry.NewCanvas(20, 16))
	b.SetTitle("Airbnb Clone Backend - Features & Functionalities").
		SetFooter("Airbnb Clone Backend Architecture - Feature Overview")

	for _, f := range features {
		st := styles.MustLookup(f.category).Faded(0.8)
		details := make([]string, len(f.details))
		for i, d := range f.details {
			details[i] = "• " + d
		}
		b.Place(shape.RoundedBox(f.x+w/2, f.y+h/2, w+2*pad, h+2*pad, pad).
			WithTitle(f.name).
			WithLabel(details...).
			WithLabelOffset(0, -0.3).
			WithFont(8, false).
			WithCategory(f.category).
			WithStyle(st))
	}

	for _, l := range featureLinks {
		b.Connect(connector.New(connector.At(l[0], l[1]), connector.At(l[2], l[3])).
			WithCategory("relation"))
	}

	b.Place(shape.RoundedBox(10, 2, 18.4, 3.4, 0.2).WithCategory("stack"))
	b.Annotate(scene.Text{
		At:       geometry.Pt(10, 3),
		Lines:    []string{"Technology Stack"},
		VAlign:   scene.AlignTop,
		FontSize: 12,
		Bold:     true,
	})
	b.Annotate(scene.Text{
		At:       geometry.Pt(10, 2.2),
		Lines:    strings.Split(techStack, "\n"),
		VAlign:   scene.AlignTop,
		FontSize: 9,
		Patch:    true,
	})

	names := make([]string, len(featureAreas))
	for i, a := range featureAreas {
		names[i] = a.name
	}
	if err := b.AddLegendEntries(styles, names...); err != nil {
		return nil, err
	}
	b.SetLegendLayout(scene.LegendBottom, 6, "")
	return b.Build()
}
