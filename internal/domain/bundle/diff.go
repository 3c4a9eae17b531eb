package bundle

// CoverSource is the name+image pair the cover compositor works from.
type CoverSource struct {
	Name     string
	ImageURL string
}

// CoverSources projects a product list into compositor inputs.
func CoverSources(products []ProductItem) []CoverSource {
	out := make([]CoverSource, len(products))
	for i, p := range products {
		out[i] = CoverSource{Name: p.Name, ImageURL: p.ImageURL}
	}
	return out
}

// CoverNeedsRegen decides whether an edit requires regenerating the cover
// image, the most expensive step of a sync round. It regenerates when the
// multiset of product names changed, or when more than half of the previous
// images are no longer referenced. Identical sets, in any order, never
// regenerate.
func CoverNeedsRegen(old, updated []CoverSource) bool {
	if len(old) == 0 {
		return len(updated) > 0
	}

	names := make(map[string]int, len(old))
	for _, s := range old {
		names[s.Name]++
	}
	for _, s := range updated {
		names[s.Name]--
	}
	for _, n := range names {
		if n != 0 {
			return true
		}
	}

	kept := make(map[string]struct{}, len(updated))
	for _, s := range updated {
		if s.ImageURL != "" {
			kept[s.ImageURL] = struct{}{}
		}
	}
	var existing, missing int
	for _, s := range old {
		if s.ImageURL == "" {
			continue
		}
		existing++
		if _, ok := kept[s.ImageURL]; !ok {
			missing++
		}
	}
	return existing > 0 && missing*2 > existing
}
