// Package pass models a wallet pass: its display fields, barcodes,
// relevance data, and attached asset files. A populated Pass projects
// itself into the descriptor JSON consumed by the signing pipeline.
//
// Construction is additive: field buckets, barcodes, and files are
// appended through explicit operations and never removed. A Pass is not
// safe for concurrent mutation; build each aggregate on a single
// goroutine, then hand it to the pipeline read-only.
package pass

import (
	"errors"
	"fmt"
	"io"
)

// FormatVersion is the only schema version this model produces.
const FormatVersion = 1

// Validation errors returned by this package.
var (
	ErrNoPassInformation = errors.New("pass has no content layout attached")
	ErrMissingField      = errors.New("required field is empty")
	ErrInvalidBarcode    = errors.New("invalid barcode")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrOrphanAuthToken   = errors.New("authenticationToken set without webServiceURL")
)

// Pass is the top-level aggregate: identity fields, optional appearance and
// relevance data, exactly one content layout, and the asset files bundled
// verbatim into the archive.
type Pass struct {
	// Required identity fields, set at construction.
	TeamIdentifier     string
	PassTypeIdentifier string
	OrganizationName   string
	SerialNumber       string
	Description        string

	// Visual appearance.
	BackgroundColor    string
	ForegroundColor    string
	LabelColor         string
	LogoText           string
	SuppressStripShine bool

	// Web service pairing: once WebServiceURL is set the token is emitted
	// alongside it, even when empty.
	WebServiceURL       string
	AuthenticationToken string

	// Relevance.
	RelevantDate               string
	ExpirationDate             string
	Voided                     bool
	AssociatedStoreIdentifiers []int64
	AppLaunchURL               string

	// UserInfo is an opaque payload passed through to the descriptor.
	UserInfo map[string]any

	info      *PassInformation
	barcode   *Barcode
	barcodes  []Barcode
	locations []Location
	beacons   []IBeacon
	files     map[string][]byte
}

// NewPass creates a pass with its required identity fields and content
// layout. FormatVersion is fixed at 1.
func NewPass(teamID, passTypeID, organizationName, serialNumber, description string, info *PassInformation) *Pass {
	return &Pass{
		TeamIdentifier:     teamID,
		PassTypeIdentifier: passTypeID,
		OrganizationName:   organizationName,
		SerialNumber:       serialNumber,
		Description:        description,
		info:               info,
		files:              make(map[string][]byte),
	}
}

// Information returns the attached content layout, or nil.
func (p *Pass) Information() *PassInformation {
	return p.info
}

// SetBarcode sets the legacy singular barcode. The descriptor always emits
// a barcodes array alongside it.
func (p *Pass) SetBarcode(b Barcode) {
	p.barcode = &b
}

// AddBarcode appends an additional barcode to the barcodes array.
func (p *Pass) AddBarcode(b Barcode) {
	p.barcodes = append(p.barcodes, b)
}

// AddLocation appends a relevance location.
func (p *Pass) AddLocation(l Location) {
	p.locations = append(p.locations, l)
}

// AddBeacon appends a relevance beacon.
func (p *Pass) AddBeacon(b IBeacon) {
	p.beacons = append(p.beacons, b)
}

// AddFile attaches an asset file to be written into the archive verbatim
// under the given name. Adding the same name twice replaces the content.
func (p *Pass) AddFile(name string, data []byte) {
	if p.files == nil {
		p.files = make(map[string][]byte)
	}
	p.files[name] = data
}

// AddFileReader reads r to completion and attaches the content as an asset.
func (p *Pass) AddFileReader(name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read asset %s: %w", name, err)
	}
	p.AddFile(name, data)
	return nil
}

// Files returns a copy of the attached asset file set.
func (p *Pass) Files() map[string][]byte {
	files := make(map[string][]byte, len(p.files))
	for name, data := range p.files {
		files[name] = data
	}
	return files
}

// Validate checks the schema invariants that must hold before projection:
// required identity fields are non-empty, exactly one content layout is
// attached, barcodes are structurally valid, and the web service pairing
// is consistent.
func (p *Pass) Validate() error {
	required := []struct{ name, value string }{
		{"teamIdentifier", p.TeamIdentifier},
		{"passTypeIdentifier", p.PassTypeIdentifier},
		{"organizationName", p.OrganizationName},
		{"serialNumber", p.SerialNumber},
		{"description", p.Description},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	if p.info == nil {
		return ErrNoPassInformation
	}
	switch p.info.style {
	case StyleBoardingPass, StyleCoupon, StyleEventTicket, StyleGeneric, StyleStoreCard:
	default:
		// A layout that did not come from one of the constructors has no
		// style and would project under an empty key.
		return fmt.Errorf("%w: layout has no style", ErrNoPassInformation)
	}
	if p.barcode != nil && !p.barcode.valid() {
		return fmt.Errorf("%w: barcode", ErrInvalidBarcode)
	}
	for i, b := range p.barcodes {
		if !b.valid() {
			return fmt.Errorf("%w: barcodes[%d]", ErrInvalidBarcode, i)
		}
	}
	if p.AuthenticationToken != "" && p.WebServiceURL == "" {
		return ErrOrphanAuthToken
	}
	return nil
}
