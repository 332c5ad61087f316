package sexp

// AttributeType classifies the value of a part attribute.
type AttributeType string

const (
	TypeVoltage     AttributeType = "voltage"
	TypeString      AttributeType = "string"
	TypeCurrent     AttributeType = "current"
	TypeResistance  AttributeType = "resistance"
	TypeCapacitance AttributeType = "capacitance"
	TypePower       AttributeType = "power"
	TypeInductance  AttributeType = "inductance"
	TypeFrequency   AttributeType = "frequency"
)

// Unit returns the base unit belonging to the attribute type.
func (t AttributeType) Unit() string {
	switch t {
	case TypeVoltage:
		return "volt"
	case TypeCurrent:
		return "ampere"
	case TypeFrequency:
		return "hertz"
	case TypeResistance:
		return "ohm"
	case TypeInductance:
		return "henry"
	case TypePower:
		return "watt"
	case TypeCapacitance:
		return "farad"
	default:
		return "none"
	}
}

// MetricPrefix scales an attribute unit.
type MetricPrefix string

const (
	PrefixPico  MetricPrefix = "pico"
	PrefixNano  MetricPrefix = "nano"
	PrefixMicro MetricPrefix = "micro"
	PrefixMilli MetricPrefix = "milli"
	PrefixNone  MetricPrefix = ""
	PrefixKilo  MetricPrefix = "kilo"
	PrefixMega  MetricPrefix = "mega"
	PrefixGiga  MetricPrefix = "giga"
)

// Attribute is a typed key/value annotation on a part.
type Attribute struct {
	Name   string
	Value  string
	Type   AttributeType
	Prefix MetricPrefix
}

func (a Attribute) String() string {
	typ := a.Type
	if typ == "" {
		typ = TypeString
	}
	unit := string(a.Prefix) + typ.Unit()
	return "(attribute \"" + EscapeString(a.Name) + "\" (type " + string(typ) + ")" +
		" (unit " + unit + ") " + String("value", a.Value).String() + ")"
}
