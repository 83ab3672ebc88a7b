package valueobject

// PrefixClass is the institution category encoded in the first two digits
// of a routing number.
type PrefixClass struct {
	value string
}

var (
	PrefixGovernment      = PrefixClass{"GOVERNMENT"}
	PrefixPrimary         = PrefixClass{"PRIMARY"}
	PrefixThrift          = PrefixClass{"THRIFT"}
	PrefixElectronic      = PrefixClass{"ELECTRONIC"}
	PrefixTravelersCheque = PrefixClass{"TRAVELERS_CHEQUE"}
	PrefixUnknown         = PrefixClass{"UNKNOWN"}
)

// String returns the string representation of the prefix class.
func (p PrefixClass) String() string {
	return p.value
}

// District returns the Federal Reserve district (1-12) for prefixes that
// map to one, and 0 otherwise. Thrift prefixes are offset by 20 and
// electronic prefixes by 60.
func (r RoutingNumber) District() int {
	prefix := r.prefix()
	switch {
	case prefix >= 1 && prefix <= 12:
		return prefix
	case prefix >= 21 && prefix <= 32:
		return prefix - 20
	case prefix >= 61 && prefix <= 72:
		return prefix - 60
	default:
		return 0
	}
}

// Class classifies the routing number by its two digit prefix.
func (r RoutingNumber) Class() PrefixClass {
	prefix := r.prefix()
	switch {
	case prefix == 0:
		return PrefixGovernment
	case prefix >= 1 && prefix <= 12:
		return PrefixPrimary
	case prefix >= 21 && prefix <= 32:
		return PrefixThrift
	case prefix >= 61 && prefix <= 72:
		return PrefixElectronic
	case prefix == 80:
		return PrefixTravelersCheque
	default:
		return PrefixUnknown
	}
}

func (r RoutingNumber) prefix() int {
	return int(r.value[0]-'0')*10 + int(r.value[1]-'0')
}
