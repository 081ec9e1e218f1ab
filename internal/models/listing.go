package models

// Listing represents one unit of sellable or rentable real estate as it
// appears on the listing board. All fields are display strings taken
// directly from the upstream spreadsheet row; they are always present and
// may be empty, never absent. Listings are immutable value records; the
// search pipeline copies, it never mutates.
type Listing struct {
	// Type is the transaction or property category label (매매, 전세,
	// 아파트, 상가 ...). The engine treats it as opaque text.
	Type string `json:"type"`
	// Complex is the building/complex name.
	Complex string `json:"complex"`
	// Size is the string-encoded floor-area class. It may carry a
	// trailing 평 glyph or an A/B sub-type suffix.
	Size string `json:"size"`
	// Unit is the building/floor descriptor.
	Unit string `json:"unit"`
	// Price is the string-encoded price, either "<억> <만>" lump sum or
	// "<deposit>/<monthly>" for lease-with-rent.
	Price string `json:"price"`
	// Features holds free-text descriptive tags.
	Features string `json:"features"`
	// Category is a coarse grouping tag.
	Category string `json:"category"`
}
