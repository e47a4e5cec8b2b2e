package convert

import "fmt"

//go:generate go tool stringer -type=Conversion,MACStorage -linecomment -output=conversion_string.go

// Conversion is the type conversion applied to a value before it is stored
// in a destination field.
type Conversion int

const (
	None   Conversion = iota // none
	Date                     // date
	IP                       // ip
	Long                     // long
	Double                   // double
	MAC                      // mac
)

// Conversions lists every conversion in declaration order.
var Conversions = []Conversion{None, Date, IP, Long, Double, MAC}

// ParseConversion returns the conversion named s. The empty string is None.
func ParseConversion(s string) (Conversion, error) {
	if s == "" {
		return None, nil
	}

	for _, c := range Conversions {
		if c.String() == s {
			return c, nil
		}
	}

	return None, fmt.Errorf("unknown conversion %q", s)
}

// IsNone reports whether values are stored without conversion.
func (c Conversion) IsNone() bool {
	return c == None
}

// MACStorage selects the schema storage type used for MAC addresses.
type MACStorage int

const (
	MACAsKeyword MACStorage = iota // keyword
	MACAsMAC                       // mac
)

// StorageType returns the schema storage type for values converted with c.
// Unconverted values are keywords; MAC addresses follow the given policy.
func StorageType(c Conversion, mac MACStorage) string {
	switch c {
	case None:
		return "keyword"
	case MAC:
		if mac == MACAsMAC {
			return "mac"
		}

		return "keyword"
	default:
		return c.String()
	}
}
