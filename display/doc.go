// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package display is the render-side glue for sprite canvases.
//
// It magnifies canvases onto any draw.Image with nearest-neighbour
// scaling, paints transparency checkerboards, and lays canvas pixels out
// for upload into a GPU texture. It does not create GPU resources; the
// host owns the device and copies Texture.Data itself.
package display
