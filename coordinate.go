package simm

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// defaultIRCrifBucket is the CRIF bucket of interest-rate sensitivities that do
// not carry one.
const defaultIRCrifBucket = "1"

// Coordinate locates a sensitivity along the SIMM taxonomy axes.
//
// Coordinates are immutable values. They are comparable, so they can be used
// directly as map keys: two coordinates are equal when all seven fields are
// equal, absent optional fields being equal only to absent ones.
type Coordinate struct {
	vertex       Vertex
	subCurve     Optional[SubCurve]
	qualifier    Qualifier
	bucketKey    Optional[string] // raw CRIF Bucket column.
	riskClass    RiskClass
	marginType   MarginType
	productClass ProductClass
}

// NewCoordinate creates a Coordinate from typed axes.
func NewCoordinate(vertex Vertex, subCurve Optional[SubCurve], qualifier Qualifier, bucketKey Optional[string], riskClass RiskClass, marginType MarginType, productClass ProductClass) Coordinate {
	return Coordinate{
		vertex:       vertex,
		subCurve:     subCurve,
		qualifier:    qualifier,
		bucketKey:    bucketKey,
		riskClass:    riskClass,
		marginType:   marginType,
		productClass: productClass,
	}
}

// ParseCoordinate creates a Coordinate from the string form used by risk input
// records: tenor, qualifier, bucket, risk class, risk type and product class.
//
// The tenor follows ParseVertex, enumerations must be given by their exact
// names. An empty bucket is an absent bucket key, and the sub-curve is absent.
//
// Deprecated: use NewCoordinate with typed axes.
func ParseCoordinate(tenor, qualifier, bucket, riskClass, riskType, productClass string) (Coordinate, error) {
	v, err := ParseVertex(tenor)
	if err != nil {
		return Coordinate{}, err
	}
	rc, err := ParseRiskClass(riskClass)
	if err != nil {
		return Coordinate{}, err
	}
	mt, err := ParseMarginType(riskType)
	if err != nil {
		return Coordinate{}, err
	}
	pc, err := ParseProductClass(productClass)
	if err != nil {
		return Coordinate{}, err
	}
	var bucketKey Optional[string]
	if bucket != "" {
		bucketKey = Some(bucket)
	}
	return NewCoordinate(v, None[SubCurve](), Qualifier(qualifier), bucketKey, rc, mt, pc), nil
}

// Vertex returns the tenor of the risk factor.
func (c Coordinate) Vertex() Vertex { return c.vertex }

// SubCurve returns the interest-rate sub-curve, if any.
func (c Coordinate) SubCurve() Optional[SubCurve] { return c.subCurve }

// Qualifier returns the identifier narrowing the risk class, see Qualifier.
func (c Coordinate) Qualifier() Qualifier { return c.qualifier }

// BucketKey returns the raw bucket as found in the risk input record.
func (c Coordinate) BucketKey() Optional[string] { return c.bucketKey }

// RiskClass returns the broad risk family of the sensitivity.
func (c Coordinate) RiskClass() RiskClass { return c.riskClass }

// RiskType returns the margin type, under its CRIF column name.
func (c Coordinate) RiskType() MarginType { return c.marginType }

// MarginType returns the kind of sensitivity, same as RiskType.
func (c Coordinate) MarginType() MarginType { return c.marginType }

// ProductClass returns the product family the sensitivity is booked under.
func (c Coordinate) ProductClass() ProductClass { return c.productClass }

// CrifBucket returns the bucket as numbered in CRIF files.
//
// Interest-rate records without a bucket are in bucket "1". Every other
// coordinate returns its bucket key unchanged.
func (c Coordinate) CrifBucket() Optional[string] {
	if c.riskClass == InterestRate && !c.bucketKey.IsPresent() {
		return Some(defaultIRCrifBucket)
	}
	return c.bucketKey
}

// SimmBucket returns the bucket used for margin aggregation.
//
// Interest-rate risk is aggregated per currency: the bucket is the currency of
// the qualifier and the bucket key is ignored. Every other coordinate returns
// its bucket key unchanged.
func (c Coordinate) SimmBucket() Optional[string] {
	if c.riskClass == InterestRate {
		return Some(c.qualifier.Currency())
	}
	return c.bucketKey
}

// Equal reports whether c and d have the same seven fields.
func (c Coordinate) Equal(d Coordinate) bool { return c == d }

// Hash returns a 64-bit hash of the coordinate. Equal coordinates have equal hashes.
func (c Coordinate) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		d.Write(buf[:])
	}
	writeString := func(s string) {
		writeInt(len(s))
		d.WriteString(s)
	}
	writeInt(int(c.vertex))
	sc, ok := c.subCurve.Get()
	writeInt(boolInt(ok))
	writeInt(int(sc))
	writeString(string(c.qualifier))
	bk, ok := c.bucketKey.Get()
	writeInt(boolInt(ok))
	writeString(bk)
	writeInt(int(c.riskClass))
	writeInt(int(c.marginType))
	writeInt(int(c.productClass))
	return d.Sum64()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// String returns the coordinate in risk input field order.
func (c Coordinate) String() string {
	return fmt.Sprintf("%s/%s/%s/%s/%s/%s/%s",
		c.vertex, c.subCurve, c.qualifier, c.bucketKey, c.riskClass, c.marginType, c.productClass)
}
