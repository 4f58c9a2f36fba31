// Package geom provides the small amount of plane and space geometry the
// sketches share:
//
//   - [Point]: 2D position or offset on the drawing surface
//   - [Vec3]: 3D vector used by the particle simulator
//   - [PointsAlongArc]: evenly spaced points on a circle
//   - [CircleFrom3Points]: circumscribed circle of a triangle
//
// Angles are in radians and follow the drawing surface convention: the
// positive direction turns from +X toward +Y.
package geom
