package pass

// TextAlignment controls how a field value is aligned when rendered.
type TextAlignment string

const (
	AlignmentLeft      TextAlignment = "PKTextAlignmentLeft"
	AlignmentCenter    TextAlignment = "PKTextAlignmentCenter"
	AlignmentRight     TextAlignment = "PKTextAlignmentRight"
	AlignmentJustified TextAlignment = "PKTextAlignmentJustified"
	AlignmentNatural   TextAlignment = "PKTextAlignmentNatural"
)

// DateStyle selects the rendering style for the date or time component
// of a DateField.
type DateStyle string

const (
	DateStyleNone   DateStyle = "PKDateStyleNone"
	DateStyleShort  DateStyle = "PKDateStyleShort"
	DateStyleMedium DateStyle = "PKDateStyleMedium"
	DateStyleLong   DateStyle = "PKDateStyleLong"
	DateStyleFull   DateStyle = "PKDateStyleFull"
)

// NumberStyle selects the rendering style for a NumberField value.
type NumberStyle string

const (
	NumberStyleDecimal    NumberStyle = "PKNumberStyleDecimal"
	NumberStylePercent    NumberStyle = "PKNumberStylePercent"
	NumberStyleScientific NumberStyle = "PKNumberStyleScientific"
	NumberStyleSpellOut   NumberStyle = "PKNumberStyleSpellOut"
)

// Field is implemented by all display field types that can be added to a
// pass information bucket. Key uniqueness within a bucket is the caller's
// responsibility; the model does not validate it.
type Field interface {
	jsonMap() map[string]any
}

// TextField is the common envelope shared by all field types: a key unique
// within its bucket, a display value, and optional label, change-notification
// template, and alignment.
type TextField struct {
	Key   string
	Value string

	// Label is the text displayed above the value. May be empty.
	Label string

	// ChangeMessage is the format string for the notification shown when
	// the field value changes. Omitted from the descriptor when empty.
	ChangeMessage string

	// TextAlignment defaults to AlignmentLeft.
	TextAlignment TextAlignment
}

// NewTextField creates a text field with the default left alignment.
func NewTextField(key, value, label string) *TextField {
	return &TextField{
		Key:           key,
		Value:         value,
		Label:         label,
		TextAlignment: AlignmentLeft,
	}
}

func (f *TextField) jsonMap() map[string]any {
	alignment := f.TextAlignment
	if alignment == "" {
		alignment = AlignmentLeft
	}
	m := map[string]any{
		"key":           f.Key,
		"value":         f.Value,
		"label":         f.Label,
		"textAlignment": alignment,
	}
	if f.ChangeMessage != "" {
		m["changeMessage"] = f.ChangeMessage
	}
	return m
}

// DateField displays a date/time value with a style pair.
type DateField struct {
	TextField

	DateStyle DateStyle
	TimeStyle DateStyle

	// IsRelative displays the value as a relative date when true.
	IsRelative bool

	// IgnoresTimeZone is only emitted when set.
	IgnoresTimeZone bool
}

// NewDateField creates a date field with short date and time styles.
func NewDateField(key, value, label string) *DateField {
	return &DateField{
		TextField: *NewTextField(key, value, label),
		DateStyle: DateStyleShort,
		TimeStyle: DateStyleShort,
	}
}

func (f *DateField) jsonMap() map[string]any {
	m := f.TextField.jsonMap()
	m["dateStyle"] = f.DateStyle
	m["timeStyle"] = f.TimeStyle
	m["isRelative"] = f.IsRelative
	if f.IgnoresTimeZone {
		m["ignoresTimeZone"] = true
	}
	return m
}

// NumberField displays a numeric value.
type NumberField struct {
	TextField

	NumberStyle NumberStyle
}

// NewNumberField creates a number field with the decimal style.
func NewNumberField(key, value, label string) *NumberField {
	return &NumberField{
		TextField:   *NewTextField(key, value, label),
		NumberStyle: NumberStyleDecimal,
	}
}

func (f *NumberField) jsonMap() map[string]any {
	m := f.TextField.jsonMap()
	m["numberStyle"] = f.NumberStyle
	return m
}

// CurrencyField displays a monetary value in a given currency.
type CurrencyField struct {
	TextField

	// CurrencyCode is the ISO 4217 code, e.g. "EUR".
	CurrencyCode string
}

// NewCurrencyField creates a currency field.
func NewCurrencyField(key, value, label, currencyCode string) *CurrencyField {
	return &CurrencyField{
		TextField:    *NewTextField(key, value, label),
		CurrencyCode: currencyCode,
	}
}

func (f *CurrencyField) jsonMap() map[string]any {
	m := f.TextField.jsonMap()
	m["currencyCode"] = f.CurrencyCode
	return m
}
