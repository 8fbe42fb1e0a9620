package pass

// BarcodeFormat is one of the four symbologies supported by the wallet schema.
type BarcodeFormat string

const (
	BarcodeFormatPDF417  BarcodeFormat = "PKBarcodeFormatPDF417"
	BarcodeFormatQR      BarcodeFormat = "PKBarcodeFormatQR"
	BarcodeFormatAztec   BarcodeFormat = "PKBarcodeFormatAztec"
	BarcodeFormatCode128 BarcodeFormat = "PKBarcodeFormatCode128"
)

// DefaultMessageEncoding is the text encoding wallet readers assume when
// decoding a barcode message.
const DefaultMessageEncoding = "iso-8859-1"

// Barcode describes a scannable code shown on the pass. Barcodes are
// attached by value and never mutated afterwards.
type Barcode struct {
	Format  BarcodeFormat
	Message string

	// MessageEncoding is the text encoding used to convert Message into
	// barcode data. Defaults to Latin-1.
	MessageEncoding string

	// AltText is displayed near the barcode. Omitted from the descriptor
	// when empty.
	AltText string
}

// NewBarcode creates a barcode with the default Latin-1 message encoding.
func NewBarcode(format BarcodeFormat, message string) Barcode {
	return Barcode{
		Format:          format,
		Message:         message,
		MessageEncoding: DefaultMessageEncoding,
	}
}

// isLegacyFormat reports whether the format is understood by readers that
// predate the multi-barcode schema. Code128 is the only post-legacy format.
func (b Barcode) isLegacyFormat() bool {
	switch b.Format {
	case BarcodeFormatPDF417, BarcodeFormatQR, BarcodeFormatAztec:
		return true
	}
	return false
}

func (b Barcode) valid() bool {
	switch b.Format {
	case BarcodeFormatPDF417, BarcodeFormatQR, BarcodeFormatAztec, BarcodeFormatCode128:
		return b.Message != ""
	}
	return false
}

func (b Barcode) jsonMap() map[string]any {
	encoding := b.MessageEncoding
	if encoding == "" {
		encoding = DefaultMessageEncoding
	}
	m := map[string]any{
		"format":          b.Format,
		"message":         b.Message,
		"messageEncoding": encoding,
	}
	if b.AltText != "" {
		m["altText"] = b.AltText
	}
	return m
}
