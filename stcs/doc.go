// Package stcs composes per-shape MOCs from an already-parsed STC-S AST.
// The STC-S text grammar itself is an external collaborator (spec.md §1);
// this package only walks the AST (UNION/INTERSECTION/NOT/DIFFERENCE over
// Circle/Polygon/Box/Ellipse/Ring/Zone shapes) and drives region's shape
// constructors plus the moc operator algebra.
//
// Two intentional deviations from the STC-S text standard, both at the
// public interface:
//   - DIFFERENCE is evaluated as symmetric difference, not set difference.
//   - Polygon shapes admit self-intersecting vertex lists and resolve to
//     the smallest-area interpretation (see region.Polygon).
package stcs
