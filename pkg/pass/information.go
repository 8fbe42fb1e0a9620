package pass

// Style is the discriminator selecting which of the five content layouts a
// pass uses. It doubles as the JSON key the layout's field buckets are
// nested under in the descriptor.
type Style string

const (
	StyleBoardingPass Style = "boardingPass"
	StyleCoupon       Style = "coupon"
	StyleEventTicket  Style = "eventTicket"
	StyleGeneric      Style = "generic"
	StyleStoreCard    Style = "storeCard"
)

// TransitType is the mode of transport shown on a boarding pass.
type TransitType string

const (
	TransitTypeAir     TransitType = "PKTransitTypeAir"
	TransitTypeTrain   TransitType = "PKTransitTypeTrain"
	TransitTypeBus     TransitType = "PKTransitTypeBus"
	TransitTypeBoat    TransitType = "PKTransitTypeBoat"
	TransitTypeGeneric TransitType = "PKTransitTypeGeneric"
)

// PassInformation is one of the five mutually exclusive content layouts a
// pass can carry. Field buckets are append-only and owned by the layout;
// there is no removal operation.
type PassInformation struct {
	style       Style
	transitType TransitType // boarding pass only

	headerFields    []Field
	primaryFields   []Field
	secondaryFields []Field
	backFields      []Field
	auxiliaryFields []Field
}

// NewBoardingPass creates a boarding pass layout for the given transit type.
func NewBoardingPass(transitType TransitType) *PassInformation {
	if transitType == "" {
		transitType = TransitTypeAir
	}
	return &PassInformation{style: StyleBoardingPass, transitType: transitType}
}

// NewCoupon creates a coupon layout.
func NewCoupon() *PassInformation {
	return &PassInformation{style: StyleCoupon}
}

// NewEventTicket creates an event ticket layout.
func NewEventTicket() *PassInformation {
	return &PassInformation{style: StyleEventTicket}
}

// NewGeneric creates a generic layout.
func NewGeneric() *PassInformation {
	return &PassInformation{style: StyleGeneric}
}

// NewStoreCard creates a store card layout.
func NewStoreCard() *PassInformation {
	return &PassInformation{style: StyleStoreCard}
}

// Style returns the layout discriminator.
func (pi *PassInformation) Style() Style {
	return pi.style
}

// TransitType returns the transit type of a boarding pass layout, or the
// empty string for any other style.
func (pi *PassInformation) TransitType() TransitType {
	return pi.transitType
}

// AddHeaderField appends a field to the header bucket.
func (pi *PassInformation) AddHeaderField(f Field) {
	pi.headerFields = append(pi.headerFields, f)
}

// AddPrimaryField appends a field to the primary bucket.
func (pi *PassInformation) AddPrimaryField(f Field) {
	pi.primaryFields = append(pi.primaryFields, f)
}

// AddSecondaryField appends a field to the secondary bucket.
func (pi *PassInformation) AddSecondaryField(f Field) {
	pi.secondaryFields = append(pi.secondaryFields, f)
}

// AddBackField appends a field to the back-of-pass bucket.
func (pi *PassInformation) AddBackField(f Field) {
	pi.backFields = append(pi.backFields, f)
}

// AddAuxiliaryField appends a field to the auxiliary bucket.
func (pi *PassInformation) AddAuxiliaryField(f Field) {
	pi.auxiliaryFields = append(pi.auxiliaryFields, f)
}

// jsonMap emits the non-empty buckets, plus transitType for boarding passes.
func (pi *PassInformation) jsonMap() map[string]any {
	m := map[string]any{}
	addBucket := func(name string, fields []Field) {
		if len(fields) == 0 {
			return
		}
		entries := make([]map[string]any, 0, len(fields))
		for _, f := range fields {
			entries = append(entries, f.jsonMap())
		}
		m[name] = entries
	}
	addBucket("headerFields", pi.headerFields)
	addBucket("primaryFields", pi.primaryFields)
	addBucket("secondaryFields", pi.secondaryFields)
	addBucket("backFields", pi.backFields)
	addBucket("auxiliaryFields", pi.auxiliaryFields)
	if pi.style == StyleBoardingPass {
		m["transitType"] = pi.transitType
	}
	return m
}
