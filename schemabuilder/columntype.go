package schemabuilder

// ColumnType is the textual CQL rendering of a column data type. The closed
// set of implementations is NativeType for primitive and collection types
// and UDTType for user-defined types, which are referenced by name only
// since the builder has no access to the schema catalog.
type ColumnType interface {
	AsCQL() string
}

// NativeType is a native CQL data type name, e.g. "text" or "list<int>".
type NativeType string

func (t NativeType) AsCQL() string {
	return string(t)
}

const (
	TypeAscii     NativeType = "ascii"
	TypeBigInt    NativeType = "bigint"
	TypeBlob      NativeType = "blob"
	TypeBoolean   NativeType = "boolean"
	TypeCounter   NativeType = "counter"
	TypeDecimal   NativeType = "decimal"
	TypeDouble    NativeType = "double"
	TypeFloat     NativeType = "float"
	TypeInet      NativeType = "inet"
	TypeInt       NativeType = "int"
	TypeText      NativeType = "text"
	TypeTimestamp NativeType = "timestamp"
	TypeTimeUUID  NativeType = "timeuuid"
	TypeUUID      NativeType = "uuid"
	TypeVarchar   NativeType = "varchar"
	TypeVarint    NativeType = "varint"
)

// ListOf builds the list collection type of a native element type.
func ListOf(element NativeType) NativeType {
	return "list<" + element + ">"
}

// SetOf builds the set collection type of a native element type.
func SetOf(element NativeType) NativeType {
	return "set<" + element + ">"
}

// MapOf builds the map collection type of native key and value types.
func MapOf(key NativeType, value NativeType) NativeType {
	return "map<" + key + ", " + value + ">"
}

// UDTType is a CQL type expression containing a user-defined type. Use
// Frozen or UDTLiteral to obtain instances; collection forms are produced by
// the AddUDT*Column builder calls.
//
// A UDTType built from an invalid argument carries the error along; it
// surfaces from the builder call the type is eventually passed to, keeping
// construction chainable.
type UDTType struct {
	cql string
	err error
}

func (t UDTType) AsCQL() string {
	return t.cql
}

func frozenUDT(udtName string) UDTType {
	if err := validateNotEmpty(udtName, "UDT name"); err != nil {
		return UDTType{err: err}
	}
	return UDTType{cql: "frozen<" + udtName + ">"}
}

func rawUDTLiteral(literal string) UDTType {
	if err := validateNotEmpty(literal, "UDT type literal"); err != nil {
		return UDTType{err: err}
	}
	return UDTType{cql: literal}
}

func udtListOf(element UDTType) UDTType {
	return UDTType{cql: "list<" + element.cql + ">", err: element.err}
}

func udtSetOf(element UDTType) UDTType {
	return UDTType{cql: "set<" + element.cql + ">", err: element.err}
}

func mapWithUDTKey(key UDTType, value NativeType) UDTType {
	return UDTType{cql: "map<" + key.cql + ", " + string(value) + ">", err: key.err}
}

func mapWithUDTValue(key NativeType, value UDTType) UDTType {
	return UDTType{cql: "map<" + string(key) + ", " + value.cql + ">", err: value.err}
}

func mapWithUDTKeyAndValue(key UDTType, value UDTType) UDTType {
	t := UDTType{cql: "map<" + key.cql + ", " + value.cql + ">", err: key.err}
	if t.err == nil {
		t.err = value.err
	}
	return t
}

// columnTypeError reports the deferred construction error of a type, if any.
func columnTypeError(t ColumnType) error {
	if udt, ok := t.(UDTType); ok {
		return udt.err
	}
	return nil
}
