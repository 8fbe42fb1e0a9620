package pass

import (
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// Descriptor projects the pass into its canonical descriptor JSON, the
// bytes written to the archive as pass.json and hashed into the manifest.
//
// Unset optionals are omitted entirely; the schema conflates empty and
// absent for these keys, so an empty string or empty collection never
// produces a key. The output is canonicalized per RFC 8785 so identical
// passes always project to identical bytes.
func (p *Pass) Descriptor() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m := map[string]any{
		"description":        p.Description,
		"formatVersion":      FormatVersion,
		"organizationName":   p.OrganizationName,
		"passTypeIdentifier": p.PassTypeIdentifier,
		"serialNumber":       p.SerialNumber,
		"teamIdentifier":     p.TeamIdentifier,
		"suppressStripShine": p.SuppressStripShine,

		string(p.info.style): p.info.jsonMap(),
	}

	p.projectBarcodes(m)

	setIfNotEmpty := func(key, value string) {
		if value != "" {
			m[key] = value
		}
	}
	setIfNotEmpty("relevantDate", p.RelevantDate)
	setIfNotEmpty("backgroundColor", p.BackgroundColor)
	setIfNotEmpty("foregroundColor", p.ForegroundColor)
	setIfNotEmpty("labelColor", p.LabelColor)
	setIfNotEmpty("logoText", p.LogoText)
	setIfNotEmpty("appLaunchURL", p.AppLaunchURL)
	setIfNotEmpty("expirationDate", p.ExpirationDate)

	if len(p.locations) > 0 {
		locations := make([]map[string]any, 0, len(p.locations))
		for _, l := range p.locations {
			locations = append(locations, l.jsonMap())
		}
		m["locations"] = locations
	}
	if len(p.beacons) > 0 {
		beacons := make([]map[string]any, 0, len(p.beacons))
		for _, b := range p.beacons {
			beacons = append(beacons, b.jsonMap())
		}
		m["ibeacons"] = beacons
	}
	if len(p.UserInfo) > 0 {
		m["userInfo"] = p.UserInfo
	}
	if len(p.AssociatedStoreIdentifiers) > 0 {
		m["associatedStoreIdentifiers"] = p.AssociatedStoreIdentifiers
	}
	if p.Voided {
		m["voided"] = true
	}

	// The token rides along once the URL is set, even when empty.
	if p.WebServiceURL != "" {
		m["webServiceURL"] = p.WebServiceURL
		m["authenticationToken"] = p.AuthenticationToken
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal descriptor: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize descriptor: %w", err)
	}
	return canonical, nil
}

// projectBarcodes applies the legacy dual-emission rule. The singular
// barcode key only understands the three original formats, so a Code128
// barcode is backfilled there as PDF417 while the barcodes array keeps
// the real format.
func (p *Pass) projectBarcodes(m map[string]any) {
	all := make([]map[string]any, 0, len(p.barcodes)+1)

	if p.barcode != nil {
		legacy := *p.barcode
		if !legacy.isLegacyFormat() {
			replacement := NewBarcode(BarcodeFormatPDF417, legacy.Message)
			replacement.AltText = legacy.AltText
			legacy = replacement
		}
		m["barcode"] = legacy.jsonMap()
		all = append(all, p.barcode.jsonMap())
	}
	for _, b := range p.barcodes {
		all = append(all, b.jsonMap())
	}
	if len(all) > 0 {
		m["barcodes"] = all
	}
}
