// Package simm classifies risk sensitivities along the taxonomy of the
// Standard Initial Margin Model (SIMM).
//
// The core type is Coordinate, an immutable and comparable key over the axes
// of a sensitivity: tenor (Vertex), interest-rate sub-curve (SubCurve),
// Qualifier, raw bucket, RiskClass, MarginType and ProductClass.
//
// Risk input files (CRIF) and the margin aggregation do not number
// interest-rate buckets the same way: CRIF records leave the bucket empty, or
// put it in bucket "1", whereas the aggregation groups interest-rate risk per
// currency. Coordinate.CrifBucket and Coordinate.SimmBucket provide both views.
//
// Sensitivities accumulates amounts under their coordinate and nets them per
// bucket. The valuation subpackage combines priced products into portfolios.
package simm
