package bar

// ZoneGap is the fixed gap between module elements within a zone
// (§4.7: "Module elements within a zone are separated by 4 pt gaps").
const ZoneGap = 4.0

// WidthSpec is a module's sizing contract within its zone (§8 B3).
type WidthSpec struct {
	Flex        bool
	NaturalWidth float64
	MinWidth    float64
	MaxWidth    float64
}

// ResolveWidths implements Boundary B3: a non-flex module keeps its
// natural width; flex modules share the zone's remaining space equally,
// each clamped to [min_width, max_width].
func ResolveWidths(specs []WidthSpec, zoneWidth float64) []float64 {
	widths := make([]float64, len(specs))

	fixedTotal := 0.0
	flexCount := 0
	for i, s := range specs {
		if !s.Flex {
			widths[i] = s.NaturalWidth
			fixedTotal += s.NaturalWidth
		} else {
			flexCount++
		}
	}
	if flexCount == 0 {
		return widths
	}

	gaps := ZoneGap * float64(len(specs)-1)
	if len(specs) <= 1 {
		gaps = 0
	}
	remaining := zoneWidth - fixedTotal - gaps
	if remaining < 0 {
		remaining = 0
	}
	share := remaining / float64(flexCount)

	for i, s := range specs {
		if !s.Flex {
			continue
		}
		w := share
		if s.MinWidth > 0 && w < s.MinWidth {
			w = s.MinWidth
		}
		if s.MaxWidth > 0 && w > s.MaxWidth {
			w = s.MaxWidth
		}
		widths[i] = w
	}
	return widths
}
