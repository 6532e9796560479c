// Package pricing implements the quote arithmetic for booking requests
// and the generation of request numbers. The cost table is fixed:
// catering is the only per-guest add-on, everything else is flat.
package pricing

// CateringPerGuest is the per-guest cost of the catering add-on.
const CateringPerGuest = 300

// flatCosts maps every flat-priced service key to its cost.
var flatCosts = map[string]int64{
	"decoration":  5000,
	"sound":       4000,
	"photography": 7000,
	"permit":      2000,
}

// ServiceCost returns the cost contribution of one add-on service for
// the given guest count. Unrecognized keys cost zero; they are ignored
// rather than rejected.
func ServiceCost(key string, guests int) int64 {
	if key == "catering" {
		return CateringPerGuest * int64(guests)
	}
	return flatCosts[key]
}

// Total computes the quote total:
//
//	base_price * guests + sum of selected service costs
//
// Duplicate keys in services are counted each time they appear, which
// cannot happen through the form (checkboxes submit each key at most
// once).
func Total(basePrice int64, guests int, services []string) int64 {
	total := basePrice * int64(guests)
	for _, s := range services {
		total += ServiceCost(s, guests)
	}
	return total
}

// Option describes one selectable add-on for the quote form.
type Option struct {
	Key   string
	Label string
}

// Options lists the selectable add-ons in display order.
func Options() []Option {
	return []Option{
		{Key: "catering", Label: "Catering (300 per guest)"},
		{Key: "decoration", Label: "Decoration (5000)"},
		{Key: "sound", Label: "Sound system (4000)"},
		{Key: "photography", Label: "Photography (7000)"},
		{Key: "permit", Label: "Permits & licensing (2000)"},
	}
}
