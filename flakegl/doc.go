// Package flakegl provides the small, predictable 2D pipeline the snowflake
// demo draws with.
//
// Pipeline (fixed):
//
//	VertexBuffer → vertex stage (TransformMat, Time) → NDC → Surface triangles → flat Color.
//
// Matrices are 3x3 homogeneous transforms stored row-major and applied to
// column vectors (x, y, 1). The vertex stage runs on the CPU; rasterization is
// delegated to a Surface, which is either the software RGB565Target in this
// package or the ebiten GPU surface provided by the host HAL. Both surfaces
// use the same Program, and the GPU surface compiles the program's Kage
// fragment source.
package flakegl
