package grimoire

// RawRecord is one untrusted source object. Key names vary across datasets.
type RawRecord map[string]any

// RawGroup is a batch of records sharing an element declared once for the group
type RawGroup struct {
	Element string
	Records []RawRecord
}

// RawInput is a decoded dataset. Exactly one of Records or Groups is populated
// for a well-formed dataset; an empty dataset has neither.
type RawInput struct {
	Records []RawRecord
	Groups  []RawGroup
}

// Len returns the number of raw records across both shapes
func (in *RawInput) Len() int {
	if in == nil {
		return 0
	}

	n := len(in.Records)
	for _, g := range in.Groups {
		n += len(g.Records)
	}
	return n
}

// IsGrouped reports whether the dataset was element-grouped
func (in *RawInput) IsGrouped() bool {
	return in != nil && len(in.Groups) > 0
}
